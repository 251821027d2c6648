package instance

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Instance Serialization API
// =============================================================================

// Marshal converts an instance to JSON bytes.
// Relations are sorted by name for deterministic output.
func Marshal(in *Instance) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeTo(in, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes an instance to a JSON file.
// The file is created with 0644 permissions.
func WriteFile(in *Instance, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeTo(in, f)
}

// Write writes an instance as JSON to an io.Writer.
// Use Marshal for in-memory serialization or WriteFile for files.
func Write(in *Instance, w io.Writer) error {
	return writeTo(in, w)
}

// ReadFile reads a JSON file and returns the decoded instance.
// The decoded instance is validated before being returned.
func ReadFile(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readFrom(f)
}

// Read decodes a JSON instance from an io.Reader.
// Use ReadFile for files or pass bytes.NewReader for in-memory data.
func Read(r io.Reader) (*Instance, error) {
	return readFrom(r)
}

// =============================================================================
// Internal Implementation
// =============================================================================

func writeTo(in *Instance, w io.Writer) error {
	in.SortRelations()
	// Nil slices still serialize as [], keeping the two top-level
	// collections present for consumers.
	out := struct {
		Atoms     []Atom     `json:"atoms"`
		Relations []Relation `json:"relations"`
	}{
		Atoms:     in.Atoms,
		Relations: in.Relations,
	}
	if out.Atoms == nil {
		out.Atoms = []Atom{}
	}
	if out.Relations == nil {
		out.Relations = []Relation{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readFrom(r io.Reader) (*Instance, error) {
	var in Instance
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return &in, nil
}
