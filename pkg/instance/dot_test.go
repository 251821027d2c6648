package instance

import (
	"strings"
	"testing"
)

func TestToDOTBinaryRelation(t *testing.T) {
	dot := sampleInstance().ToDOT()

	if !strings.HasPrefix(dot, "digraph Instance {") {
		t.Errorf("DOT should start with digraph header, got %q", dot[:30])
	}
	if !strings.Contains(dot, `"atom0" [label="Person"]`) {
		t.Error("DOT missing aggregate atom node")
	}
	if !strings.Contains(dot, `"atom1" [label="Alice: string"]`) {
		t.Error("DOT missing labeled value node")
	}
	if !strings.Contains(dot, `"atom0" -> "atom1" [label="name"]`) {
		t.Error("DOT missing field edge")
	}
	if !strings.HasSuffix(strings.TrimSpace(dot), "}") {
		t.Error("DOT should be closed")
	}
}

func TestToDOTIndexTuple(t *testing.T) {
	in := &Instance{
		Atoms: []Atom{
			{ID: "atom0", Type: TypeSequence, Label: "seq[2]"},
			{ID: "atom1", Type: "int", Label: "10"},
			{ID: "atom2", Type: "int", Label: "20"},
		},
		Relations: []Relation{
			{
				ID: RelIndex, Name: RelIndex, Types: []string{TypeSequence, TypeIndex, TypeAtom},
				Tuples: []Tuple{
					{Atoms: []string{"atom0", "0", "atom1"}, Types: []string{TypeSequence, TypeIndex, "int"}},
					{Atoms: []string{"atom0", "1", "atom2"}, Types: []string{TypeSequence, TypeIndex, "int"}},
				},
			},
		},
	}

	dot := in.ToDOT()
	if !strings.Contains(dot, `"atom0" -> "atom1" [label="idx[0]"]`) {
		t.Errorf("DOT missing idx[0] edge:\n%s", dot)
	}
	if !strings.Contains(dot, `"atom0" -> "atom2" [label="idx[1]"]`) {
		t.Errorf("DOT missing idx[1] edge:\n%s", dot)
	}
	// Position literals must not appear as nodes.
	if strings.Contains(dot, `"0" [label`) {
		t.Error("index literal rendered as node")
	}
}

func TestToDOTDeterministic(t *testing.T) {
	a := sampleInstance().ToDOT()
	b := sampleInstance().ToDOT()
	if a != b {
		t.Error("ToDOT should be deterministic")
	}
}
