package instance

import (
	"errors"
	"testing"
)

func sampleInstance() *Instance {
	return &Instance{
		Atoms: []Atom{
			{ID: "atom0", Type: "Person", Label: "Person"},
			{ID: "atom1", Type: "string", Label: "Alice"},
			{ID: "atom2", Type: "int", Label: "30"},
		},
		Relations: []Relation{
			{
				ID: "name", Name: "name", Types: []string{"Person", TypeAtom},
				Tuples: []Tuple{{Atoms: []string{"atom0", "atom1"}, Types: []string{"Person", "string"}}},
			},
			{
				ID: "age", Name: "age", Types: []string{"Person", TypeAtom},
				Tuples: []Tuple{{Atoms: []string{"atom0", "atom2"}, Types: []string{"Person", "int"}}},
			},
		},
	}
}

func TestValidateOK(t *testing.T) {
	if err := sampleInstance().Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidateDuplicateAtomID(t *testing.T) {
	in := sampleInstance()
	in.Atoms = append(in.Atoms, Atom{ID: "atom0", Type: "string", Label: "dup"})
	if err := in.Validate(); !errors.Is(err, ErrDuplicateAtomID) {
		t.Errorf("Validate() = %v, want ErrDuplicateAtomID", err)
	}
}

func TestValidateUnknownAtomRef(t *testing.T) {
	in := sampleInstance()
	in.Relations[0].Tuples = append(in.Relations[0].Tuples,
		Tuple{Atoms: []string{"atom0", "atom99"}, Types: []string{"Person", "string"}})
	if err := in.Validate(); !errors.Is(err, ErrUnknownAtomRef) {
		t.Errorf("Validate() = %v, want ErrUnknownAtomRef", err)
	}
}

func TestValidateMismatchedArity(t *testing.T) {
	in := sampleInstance()
	in.Relations[0].Tuples = append(in.Relations[0].Tuples,
		Tuple{Atoms: []string{"atom0", "atom1", "atom2"}, Types: []string{"Person", "string", "int"}})
	if err := in.Validate(); !errors.Is(err, ErrMismatchedArity) {
		t.Errorf("Validate() = %v, want ErrMismatchedArity", err)
	}
}

func TestValidateMismatchedSignature(t *testing.T) {
	in := sampleInstance()
	in.Relations[0].Tuples[0].Types = []string{"Person"}
	if err := in.Validate(); !errors.Is(err, ErrMismatchedSignature) {
		t.Errorf("Validate() = %v, want ErrMismatchedSignature", err)
	}
}

func TestValidateIndexColumnNotAtomRef(t *testing.T) {
	// Index columns hold position literals, not atom ids.
	in := &Instance{
		Atoms: []Atom{
			{ID: "atom0", Type: TypeSequence, Label: "seq[1]"},
			{ID: "atom1", Type: "int", Label: "10"},
		},
		Relations: []Relation{
			{
				ID: RelIndex, Name: RelIndex, Types: []string{TypeSequence, TypeIndex, TypeAtom},
				Tuples: []Tuple{{Atoms: []string{"atom0", "0", "atom1"}, Types: []string{TypeSequence, TypeIndex, "int"}}},
			},
		},
	}
	if err := in.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestLookups(t *testing.T) {
	in := sampleInstance()

	a, ok := in.Atom("atom1")
	if !ok || a.Label != "Alice" {
		t.Errorf("Atom(atom1) = %+v, %v", a, ok)
	}
	if _, ok := in.Atom("missing"); ok {
		t.Error("Atom(missing) should not be found")
	}

	r, ok := in.Relation("age")
	if !ok || len(r.Tuples) != 1 {
		t.Errorf("Relation(age) = %+v, %v", r, ok)
	}
	if _, ok := in.Relation("missing"); ok {
		t.Error("Relation(missing) should not be found")
	}

	persons := in.AtomsOfType("Person")
	if len(persons) != 1 || persons[0].ID != "atom0" {
		t.Errorf("AtomsOfType(Person) = %+v", persons)
	}
}

func TestSortRelations(t *testing.T) {
	in := sampleInstance()
	in.SortRelations()
	if in.Relations[0].Name != "age" || in.Relations[1].Name != "name" {
		t.Errorf("SortRelations order = %s, %s", in.Relations[0].Name, in.Relations[1].Name)
	}
}
