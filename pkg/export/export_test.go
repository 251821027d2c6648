package export

import (
	"testing"
	"time"

	"github.com/lukastens/relviz/pkg/errors"
	"github.com/lukastens/relviz/pkg/instance"
	"github.com/lukastens/relviz/pkg/observability"
)

type person struct {
	Name string
	Age  int
}

type company struct {
	Name      string
	Employees []person
}

func mustExport(t *testing.T, v any) *instance.Instance {
	t.Helper()
	in, err := Export(v)
	if err != nil {
		t.Fatalf("Export(%v) failed: %v", v, err)
	}
	if err := in.Validate(); err != nil {
		t.Fatalf("exported instance fails validation: %v", err)
	}
	return in
}

func TestExportScalars(t *testing.T) {
	tests := []struct {
		name  string
		value any
		typ   string
		label string
	}{
		{"int", 42, "int", "42"},
		{"negative", int64(-7), "int64", "-7"},
		{"uint", uint8(255), "uint8", "255"},
		{"float", 2.5, "float64", "2.5"},
		{"string", "hello", "string", "hello"},
		{"bool", true, "bool", "true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := mustExport(t, tt.value)
			if len(in.Atoms) != 1 || len(in.Relations) != 0 {
				t.Fatalf("got %d atoms, %d relations, want 1 and 0", len(in.Atoms), len(in.Relations))
			}
			a := in.Atoms[0]
			if a.Type != tt.typ || a.Label != tt.label {
				t.Errorf("atom = (%s, %s), want (%s, %s)", a.Type, a.Label, tt.typ, tt.label)
			}
		})
	}
}

func TestExportNil(t *testing.T) {
	var p *person
	in := mustExport(t, p)
	if len(in.Atoms) != 1 {
		t.Fatalf("got %d atoms, want 1", len(in.Atoms))
	}
	if a := in.Atoms[0]; a.Type != "None" || a.Label != "None" {
		t.Errorf("atom = (%s, %s), want (None, None)", a.Type, a.Label)
	}
}

func TestExportPointerTransparent(t *testing.T) {
	n := 7
	in := mustExport(t, &n)
	if len(in.Atoms) != 1 || in.Atoms[0].Type != "int" || in.Atoms[0].Label != "7" {
		t.Errorf("pointer did not deref transparently: %+v", in.Atoms)
	}
}

func TestExportSequence(t *testing.T) {
	in := mustExport(t, []int{10, 20, 30})

	seq := in.AtomsOfType(instance.TypeSequence)
	if len(seq) != 1 || seq[0].Label != "seq[3]" {
		t.Fatalf("sequence atoms = %+v, want one labeled seq[3]", seq)
	}
	idx, ok := in.Relation(instance.RelIndex)
	if !ok {
		t.Fatal("idx relation missing")
	}
	wantTypes := []string{instance.TypeSequence, instance.TypeIndex, instance.TypeAtom}
	for i, w := range wantTypes {
		if idx.Types[i] != w {
			t.Errorf("idx.Types[%d] = %s, want %s", i, idx.Types[i], w)
		}
	}
	if len(idx.Tuples) != 3 {
		t.Fatalf("idx has %d tuples, want 3", len(idx.Tuples))
	}
	for i, tup := range idx.Tuples {
		if tup.Atoms[0] != seq[0].ID {
			t.Errorf("tuple %d container = %s, want %s", i, tup.Atoms[0], seq[0].ID)
		}
		if want := []string{"0", "1", "2"}[i]; tup.Atoms[1] != want {
			t.Errorf("tuple %d position = %s, want %s", i, tup.Atoms[1], want)
		}
		elem, _ := in.Atom(tup.Atoms[2])
		if want := []string{"10", "20", "30"}[i]; elem.Label != want {
			t.Errorf("tuple %d element = %s, want %s", i, elem.Label, want)
		}
	}
}

func TestExportArray(t *testing.T) {
	in := mustExport(t, [2]string{"a", "b"})
	tup := in.AtomsOfType(instance.TypeTuple)
	if len(tup) != 1 || tup[0].Label != "tuple[2]" {
		t.Fatalf("tuple atoms = %+v, want one labeled tuple[2]", tup)
	}
	idx, _ := in.Relation(instance.RelIndex)
	if len(idx.Tuples) != 2 {
		t.Errorf("idx has %d tuples, want 2", len(idx.Tuples))
	}
	if idx.Types[0] != instance.TypeTuple {
		t.Errorf("idx.Types[0] = %s, want tuple", idx.Types[0])
	}
}

func TestExportBytes(t *testing.T) {
	in := mustExport(t, []byte{1, 2})
	if len(in.Atoms) != 1 || in.Atoms[0].Type != "bytes" {
		t.Fatalf("byte slice should export as a single bytes atom, got %+v", in.Atoms)
	}
}

func TestExportMap(t *testing.T) {
	in := mustExport(t, map[string]int{"b": 2, "a": 1})

	m := in.AtomsOfType(instance.TypeMap)
	if len(m) != 1 || m[0].Label != "map[2]" {
		t.Fatalf("map atoms = %+v, want one labeled map[2]", m)
	}
	rel, ok := in.Relation(instance.RelMapEntry)
	if !ok || len(rel.Tuples) != 2 {
		t.Fatalf("map_entry relation = %+v, want 2 tuples", rel)
	}
	// Keys are walked in sorted order for deterministic output.
	first, _ := in.Atom(rel.Tuples[0].Atoms[1])
	second, _ := in.Atom(rel.Tuples[1].Atoms[1])
	if first.Label != "a" || second.Label != "b" {
		t.Errorf("key order = %s, %s, want a, b", first.Label, second.Label)
	}
	val, _ := in.Atom(rel.Tuples[0].Atoms[2])
	if val.Label != "1" {
		t.Errorf("value for key a = %s, want 1", val.Label)
	}
}

func TestExportStruct(t *testing.T) {
	in := mustExport(t, person{Name: "Alice", Age: 30})

	owners := in.AtomsOfType("person")
	if len(owners) != 1 || owners[0].Label != "person" {
		t.Fatalf("person atoms = %+v, want exactly one", owners)
	}
	for field, wantLabel := range map[string]string{"Name": "Alice", "Age": "30"} {
		rel, ok := in.Relation(field)
		if !ok || len(rel.Tuples) != 1 {
			t.Fatalf("relation %s = %+v, want 1 tuple", field, rel)
		}
		if rel.Types[0] != "person" || rel.Types[1] != instance.TypeAtom {
			t.Errorf("relation %s types = %v, want [person atom]", field, rel.Types)
		}
		if rel.Tuples[0].Atoms[0] != owners[0].ID {
			t.Errorf("relation %s owner = %s, want %s", field, rel.Tuples[0].Atoms[0], owners[0].ID)
		}
		value, _ := in.Atom(rel.Tuples[0].Atoms[1])
		if value.Label != wantLabel {
			t.Errorf("relation %s value = %s, want %s", field, value.Label, wantLabel)
		}
	}
}

func TestExportStructTags(t *testing.T) {
	type account struct {
		User   string `viz:"owner"`
		Secret string `viz:"-"`
		ID     int
	}
	in := mustExport(t, account{User: "bob", Secret: "hunter2", ID: 1})

	if _, ok := in.Relation("owner"); !ok {
		t.Error("renamed field owner missing")
	}
	if _, ok := in.Relation("User"); ok {
		t.Error("original field name User should not appear after rename")
	}
	if _, ok := in.Relation("Secret"); ok {
		t.Error("field tagged viz:\"-\" should be skipped")
	}
	for _, a := range in.Atoms {
		if a.Label == "hunter2" {
			t.Error("skipped field value leaked into atoms")
		}
	}
}

func TestExportNested(t *testing.T) {
	c := company{
		Name: "Acme",
		Employees: []person{
			{Name: "Alice", Age: 30},
			{Name: "Bob", Age: 25},
		},
	}
	in := mustExport(t, c)

	if got := len(in.AtomsOfType("company")); got != 1 {
		t.Errorf("company atoms = %d, want 1", got)
	}
	if got := len(in.AtomsOfType("person")); got != 2 {
		t.Errorf("person atoms = %d, want 2", got)
	}

	// The three Name fields (company + two persons) accumulate in one relation.
	name, _ := in.Relation("Name")
	if len(name.Tuples) != 3 {
		t.Errorf("Name relation has %d tuples, want 3", len(name.Tuples))
	}
	age, _ := in.Relation("Age")
	if len(age.Tuples) != 2 {
		t.Errorf("Age relation has %d tuples, want 2", len(age.Tuples))
	}
	idx, _ := in.Relation(instance.RelIndex)
	if len(idx.Tuples) != 2 {
		t.Errorf("idx relation has %d tuples, want 2", len(idx.Tuples))
	}
	emp, _ := in.Relation("Employees")
	if len(emp.Tuples) != 1 {
		t.Errorf("Employees relation has %d tuples, want 1", len(emp.Tuples))
	}
}

func TestStructsNeverDeduplicated(t *testing.T) {
	// Two structurally equal values are still two distinct entities.
	in := mustExport(t, []person{{Name: "Alice", Age: 30}, {Name: "Alice", Age: 30}})
	if got := len(in.AtomsOfType("person")); got != 2 {
		t.Errorf("person atoms = %d, want 2 distinct atoms for equal values", got)
	}
}

func TestBoolSingleton(t *testing.T) {
	in := mustExport(t, []bool{true, false, true})
	if got := len(in.AtomsOfType("bool")); got != 2 {
		t.Fatalf("bool atoms = %d, want 2 (true and false each once)", got)
	}
	idx, _ := in.Relation(instance.RelIndex)
	if idx.Tuples[0].Atoms[2] != idx.Tuples[2].Atoms[2] {
		t.Error("repeated true values should share one atom")
	}
	if idx.Tuples[0].Atoms[2] == idx.Tuples[1].Atoms[2] {
		t.Error("true and false must not share an atom")
	}
}

func TestUnitStructSingleton(t *testing.T) {
	type marker struct{}
	in := mustExport(t, []marker{{}, {}})
	units := in.AtomsOfType("unit_struct")
	if len(units) != 1 || units[0].Label != "marker" {
		t.Errorf("unit_struct atoms = %+v, want one labeled marker", units)
	}
}

func TestScalarsNotDeduplicated(t *testing.T) {
	in := mustExport(t, []int{5, 5})
	if got := len(in.AtomsOfType("int")); got != 2 {
		t.Errorf("int atoms = %d, want 2; numbers carry no singleton identity", got)
	}
}

func TestUnsupportedKind(t *testing.T) {
	type withChan struct {
		C chan int
	}
	_, err := Export(withChan{C: make(chan int)})
	if !errors.Is(err, errors.ErrCodeUnsupportedKind) {
		t.Errorf("Export(chan field) = %v, want UNSUPPORTED_KIND", err)
	}
}

func TestDepthLimit(t *testing.T) {
	type node struct {
		Next *node
	}
	a, b := &node{}, &node{}
	a.Next, b.Next = b, a

	_, err := New(WithMaxDepth(50)).Export(a)
	if !errors.Is(err, errors.ErrCodeDepthExceeded) {
		t.Errorf("Export(cycle) = %v, want DEPTH_EXCEEDED", err)
	}
}

func TestAtomIDsMonotonic(t *testing.T) {
	in := mustExport(t, person{Name: "A", Age: 1})
	for i, a := range in.Atoms {
		if want := "atom" + string(rune('0'+i)); a.ID != want {
			t.Errorf("atom %d id = %s, want %s", i, a.ID, want)
		}
	}
}

func TestSingletonCachePerCall(t *testing.T) {
	e := New()
	first := mustExportWith(t, e, true)
	second := mustExportWith(t, e, true)
	if first.Atoms[0].ID != second.Atoms[0].ID {
		t.Errorf("fresh calls should restart ids: %s vs %s", first.Atoms[0].ID, second.Atoms[0].ID)
	}
}

type countingHooks struct {
	observability.NoopExportHooks
	starts, completes, singletonHits int
}

func (h *countingHooks) OnExportStart(string) { h.starts++ }
func (h *countingHooks) OnExportComplete(string, int, int, time.Duration, error) {
	h.completes++
}
func (h *countingHooks) OnSingletonHit(string, string) { h.singletonHits++ }

func TestWithHooks(t *testing.T) {
	hooks := &countingHooks{}
	e := New(WithHooks(hooks))

	if _, err := e.Export([]bool{true, true, true}); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if hooks.starts != 1 || hooks.completes != 1 {
		t.Errorf("lifecycle events = %d/%d, want 1/1", hooks.starts, hooks.completes)
	}
	if hooks.singletonHits != 2 {
		t.Errorf("singleton hits = %d, want 2", hooks.singletonHits)
	}
}

func mustExportWith(t *testing.T, e *Exporter, v any) *instance.Instance {
	t.Helper()
	in, err := e.Export(v)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	return in
}
