package instance

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrDuplicateAtomID is returned by [Instance.Validate] when two atoms
	// share an id. Atom ids must be unique within one instance.
	ErrDuplicateAtomID = errors.New("duplicate atom ID")

	// ErrUnknownAtomRef is returned by [Instance.Validate] when a tuple
	// references an atom id that does not exist. This indicates a corrupted
	// export.
	ErrUnknownAtomRef = errors.New("tuple references unknown atom")

	// ErrMismatchedArity is returned by [Instance.Validate] when the tuples
	// of one relation do not all share the same arity.
	ErrMismatchedArity = errors.New("relation tuples have mismatched arity")

	// ErrMismatchedSignature is returned by [Instance.Validate] when a tuple's
	// column count does not match its own type tag count.
	ErrMismatchedSignature = errors.New("tuple atom/type counts differ")
)

// Relation names and type tags with a fixed wire meaning. Structural
// containers use these instead of a declared type name.
const (
	// TypeAtom is the generic column type tag for positions that may hold
	// any atom.
	TypeAtom = "atom"
	// TypeIndex is the column type tag for positional index columns.
	TypeIndex = "index"

	// TypeSequence is the atom type for dynamically-sized lists.
	TypeSequence = "sequence"
	// TypeTuple is the atom type for fixed-arity positional containers.
	TypeTuple = "tuple"
	// TypeMap is the atom type for associative containers.
	TypeMap = "map"

	// RelIndex is the relation name for positional container membership:
	// idx(container, position, element).
	RelIndex = "idx"
	// RelMapEntry is the relation name for associative membership:
	// map_entry(map, key, value).
	RelMapEntry = "map_entry"
	// RelVariantValue is the relation name linking a single-payload variant
	// atom to its payload atom.
	RelVariantValue = "variant_value"
)

// Atom is one node in the exported graph: a single emitted value.
// Atoms are immutable once created; the exporter never rewrites them.
type Atom struct {
	ID    string `json:"id"`    // Process-unique, monotonically assigned
	Type  string `json:"type"`  // Semantic category (kind name, type name, or shape tag)
	Label string `json:"label"` // Human-readable rendering of the value
}

// Tuple is one row of a relation: ordered atom ids plus parallel type tags.
type Tuple struct {
	Atoms []string `json:"atoms"`
	Types []string `json:"types"`
}

// Relation is a named, typed n-ary edge set. All tuples of one relation share
// the same arity and column-type signature; repeated field names across many
// instances of the same aggregate accumulate into one relation.
type Relation struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Types  []string `json:"types"`
	Tuples []Tuple  `json:"tuples"`
}

// Instance is the full exported document: the output of one export pass.
type Instance struct {
	Atoms     []Atom     `json:"atoms"`
	Relations []Relation `json:"relations"`
}

// Atom returns the atom with the given id, if present.
func (in *Instance) Atom(id string) (Atom, bool) {
	for _, a := range in.Atoms {
		if a.ID == id {
			return a, true
		}
	}
	return Atom{}, false
}

// Relation returns the relation with the given name, if present.
func (in *Instance) Relation(name string) (Relation, bool) {
	for _, r := range in.Relations {
		if r.Name == name {
			return r, true
		}
	}
	return Relation{}, false
}

// AtomsOfType returns all atoms whose type tag equals typ, in creation order.
func (in *Instance) AtomsOfType(typ string) []Atom {
	var out []Atom
	for _, a := range in.Atoms {
		if a.Type == typ {
			out = append(out, a)
		}
	}
	return out
}

// SortRelations orders relations by name in place. Atoms keep creation order.
// Serialization calls this so output is deterministic.
func (in *Instance) SortRelations() {
	slices.SortFunc(in.Relations, func(a, b Relation) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		default:
			return 0
		}
	})
}

// Validate checks the structural invariants of the instance:
//
//   - atom ids are unique
//   - every tuple column references an existing atom or is an index literal
//   - all tuples of one relation share the relation's arity
//   - each tuple's atom and type counts match
//
// A nil return means the instance is internally consistent; it says nothing
// about whether the data is meaningful.
func (in *Instance) Validate() error {
	ids := make(map[string]struct{}, len(in.Atoms))
	for _, a := range in.Atoms {
		if _, dup := ids[a.ID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateAtomID, a.ID)
		}
		ids[a.ID] = struct{}{}
	}

	for _, r := range in.Relations {
		arity := len(r.Types)
		for _, tup := range r.Tuples {
			if len(tup.Atoms) != len(tup.Types) {
				return fmt.Errorf("%w: relation %s", ErrMismatchedSignature, r.Name)
			}
			if len(tup.Atoms) != arity {
				return fmt.Errorf("%w: relation %s has arity %d, tuple has %d",
					ErrMismatchedArity, r.Name, arity, len(tup.Atoms))
			}
			for i, id := range tup.Atoms {
				// Index columns carry position literals, not atom ids.
				if tup.Types[i] == TypeIndex {
					continue
				}
				if _, ok := ids[id]; !ok {
					return fmt.Errorf("%w: relation %s references %s", ErrUnknownAtomRef, r.Name, id)
				}
			}
		}
	}
	return nil
}
