package export

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"

	"github.com/lukastens/relviz/pkg/decor"
	"github.com/lukastens/relviz/pkg/errors"
	"github.com/lukastens/relviz/pkg/instance"
	"github.com/lukastens/relviz/pkg/observability"
)

// absent-value and unit singletons use the wire tags existing front-ends
// expect, not Go spelling.
const (
	absentType  = "None"
	absentLabel = "None"
	unitType    = "unit"
	unitLabel   = "()"
	unitStruct  = "unit_struct"
)

var variantType = reflect.TypeFor[Variant]()

type singletonKey struct {
	typ, label string
}

// walker holds the state of one export call: the monotonic id counter, the
// output atom list, the relation accumulator, and the singleton cache. None
// of it survives the call.
type walker struct {
	nextID    int
	atoms     []instance.Atom
	relations map[string]*instance.Relation
	relOrder  []string

	singletons map[singletonKey]string

	registry  *decor.Registry
	exclude   string
	visited   map[string]struct{}
	collected decor.Set

	hooks    observability.ExportHooks
	maxDepth int
}

func newWalker(maxDepth int) *walker {
	return &walker{
		relations:  make(map[string]*instance.Relation),
		singletons: make(map[singletonKey]string),
		visited:    make(map[string]struct{}),
		hooks:      observability.NoopExportHooks{},
		maxDepth:   maxDepth,
	}
}

func (w *walker) run(v any) error {
	_, err := w.walk(reflect.ValueOf(v), 0)
	return err
}

func (w *walker) instance() *instance.Instance {
	rels := make([]instance.Relation, 0, len(w.relOrder))
	for _, name := range w.relOrder {
		rels = append(rels, *w.relations[name])
	}
	return &instance.Instance{Atoms: w.atoms, Relations: rels}
}

// =============================================================================
// Emission Primitives
// =============================================================================

func (w *walker) freshID() string {
	id := "atom" + strconv.Itoa(w.nextID)
	w.nextID++
	return id
}

func (w *walker) emitAtom(typ, label string) string {
	id := w.freshID()
	w.atoms = append(w.atoms, instance.Atom{ID: id, Type: typ, Label: label})
	return id
}

// singleton returns the cached atom for (typ, label), creating it on first
// use. Two occurrences of the same singleton value anywhere in the walk
// resolve to the same atom id.
func (w *walker) singleton(typ, label string) string {
	key := singletonKey{typ, label}
	if id, ok := w.singletons[key]; ok {
		w.hooks.OnSingletonHit(typ, label)
		return id
	}
	id := w.emitAtom(typ, label)
	w.singletons[key] = id
	return id
}

// pushRelation appends one tuple to the named relation, creating the
// relation with the given column signature on first use. Reusing a name
// with a different signature is a traversal-contract violation: output
// integrity can no longer be guaranteed, so the export fails.
func (w *walker) pushRelation(name string, atoms, types []string) error {
	rel, ok := w.relations[name]
	if !ok {
		rel = &instance.Relation{ID: name, Name: name, Types: types}
		w.relations[name] = rel
		w.relOrder = append(w.relOrder, name)
	} else if len(rel.Types) != len(types) {
		return errors.New(errors.ErrCodeTraversalContract,
			"relation %q used with arity %d and %d", name, len(rel.Types), len(types))
	}
	rel.Tuples = append(rel.Tuples, instance.Tuple{Atoms: atoms, Types: types})
	return nil
}

func (w *walker) collectDecorators(typeName string) {
	if w.registry == nil || typeName == w.exclude {
		return
	}
	if _, seen := w.visited[typeName]; seen {
		return
	}
	w.visited[typeName] = struct{}{}
	if set, ok := w.registry.Lookup(typeName); ok {
		w.collected = decor.Merge(w.collected, set)
		observability.Decorators().OnCollect(typeName)
	}
}

// =============================================================================
// Shape Dispatch
// =============================================================================

func (w *walker) walk(v reflect.Value, depth int) (string, error) {
	if depth >= w.maxDepth {
		return "", errors.New(errors.ErrCodeDepthExceeded,
			"recursion deeper than %d; cyclic input?", w.maxDepth)
	}

	if !v.IsValid() {
		return w.singleton(absentType, absentLabel), nil
	}

	// Tagged-union capability runs before structural dispatch so enum-style
	// types keep their union/case identity.
	if v.CanInterface() && v.Type().Implements(variantType) {
		return w.walkVariant(v.Interface().(Variant), depth)
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		// Optionality is not a structural node: present values recurse
		// transparently, absent ones share the absent singleton.
		if v.IsNil() {
			return w.singleton(absentType, absentLabel), nil
		}
		return w.walk(v.Elem(), depth+1)

	case reflect.Bool:
		return w.singleton("bool", strconv.FormatBool(v.Bool())), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return w.emitAtom(v.Kind().String(), strconv.FormatInt(v.Int(), 10)), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return w.emitAtom(v.Kind().String(), strconv.FormatUint(v.Uint(), 10)), nil

	case reflect.Float32:
		return w.emitAtom("float32", strconv.FormatFloat(v.Float(), 'g', -1, 32)), nil

	case reflect.Float64:
		return w.emitAtom("float64", strconv.FormatFloat(v.Float(), 'g', -1, 64)), nil

	case reflect.String:
		return w.emitAtom("string", v.String()), nil

	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return w.emitAtom("bytes", fmt.Sprintf("%v", v.Bytes())), nil
		}
		return w.walkIndexed(v, instance.TypeSequence, fmt.Sprintf("seq[%d]", v.Len()), depth)

	case reflect.Array:
		return w.walkIndexed(v, instance.TypeTuple, fmt.Sprintf("tuple[%d]", v.Len()), depth)

	case reflect.Map:
		return w.walkMap(v, depth)

	case reflect.Struct:
		return w.walkStruct(v, depth)

	default:
		return "", errors.New(errors.ErrCodeUnsupportedKind,
			"cannot export value of kind %s", v.Kind())
	}
}

// walkIndexed emits positional containers: slices as sequences, arrays as
// tuples. Position is part of the data, so each element yields an
// idx(container, position, element) tuple in traversal order.
func (w *walker) walkIndexed(v reflect.Value, containerType, label string, depth int) (string, error) {
	id := w.emitAtom(containerType, label)
	for i := 0; i < v.Len(); i++ {
		elemID, err := w.walk(v.Index(i), depth+1)
		if err != nil {
			return "", err
		}
		err = w.pushRelation(instance.RelIndex,
			[]string{id, strconv.Itoa(i), elemID},
			[]string{containerType, instance.TypeIndex, instance.TypeAtom})
		if err != nil {
			return "", err
		}
	}
	return id, nil
}

// walkMap emits associative containers. Keys are data, not metadata: both
// key and value become full atoms linked by map_entry(map, key, value).
// Keys are visited in sorted render order so output is deterministic; the
// wire format itself guarantees no ordering.
func (w *walker) walkMap(v reflect.Value, depth int) (string, error) {
	id := w.emitAtom(instance.TypeMap, fmt.Sprintf("map[%d]", v.Len()))

	keys := v.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
	})

	for _, key := range keys {
		keyID, err := w.walk(key, depth+1)
		if err != nil {
			return "", err
		}
		valID, err := w.walk(v.MapIndex(key), depth+1)
		if err != nil {
			return "", err
		}
		err = w.pushRelation(instance.RelMapEntry,
			[]string{id, keyID, valID},
			[]string{instance.TypeMap, instance.TypeAtom, instance.TypeAtom})
		if err != nil {
			return "", err
		}
	}
	return id, nil
}

// walkStruct emits named aggregates. The struct's declared name becomes the
// atom type (not a generic "struct" tag) and every exported field becomes a
// relation named after the field, so field names stay individually
// queryable. Zero-field structs are unit values and share a singleton.
func (w *walker) walkStruct(v reflect.Value, depth int) (string, error) {
	t := v.Type()

	if t.NumField() == 0 {
		if t.Name() != "" {
			return w.singleton(unitStruct, t.Name()), nil
		}
		return w.singleton(unitType, unitLabel), nil
	}

	typeName := t.Name()
	if typeName == "" {
		typeName = "struct"
	}

	id := w.emitAtom(typeName, typeName)
	if t.Name() != "" {
		w.collectDecorators(t.Name())
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name, ok := fieldName(field)
		if !ok {
			continue
		}
		fieldID, err := w.walk(v.Field(i), depth+1)
		if err != nil {
			return "", err
		}
		err = w.pushRelation(name,
			[]string{id, fieldID},
			[]string{typeName, instance.TypeAtom})
		if err != nil {
			return "", err
		}
	}
	return id, nil
}

// walkVariant emits tagged-union cases: the atom's type is the union name
// and its label the case name, so both "which case" and "what data" survive.
func (w *walker) walkVariant(vr Variant, depth int) (string, error) {
	union, name, payload := vr.Variant()
	if union == "" || name == "" {
		return "", errors.New(errors.ErrCodeInvalidVariant,
			"%T returned an empty union or case name", vr)
	}

	if payload == nil {
		// No-payload cases carry no structural identity.
		return w.singleton(union, name), nil
	}
	pv := reflect.ValueOf(payload)
	for pv.Kind() == reflect.Pointer {
		if pv.IsNil() {
			return w.singleton(union, name), nil
		}
		pv = pv.Elem()
	}

	id := w.emitAtom(union, name)

	switch pv.Kind() {
	case reflect.Struct:
		t := pv.Type()
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			fname, ok := fieldName(field)
			if !ok {
				continue
			}
			fieldID, err := w.walk(pv.Field(i), depth+1)
			if err != nil {
				return "", err
			}
			err = w.pushRelation(fname,
				[]string{id, fieldID},
				[]string{union, instance.TypeAtom})
			if err != nil {
				return "", err
			}
		}

	case reflect.Slice, reflect.Array:
		for i := 0; i < pv.Len(); i++ {
			elemID, err := w.walk(pv.Index(i), depth+1)
			if err != nil {
				return "", err
			}
			err = w.pushRelation(instance.RelIndex,
				[]string{id, strconv.Itoa(i), elemID},
				[]string{union, instance.TypeIndex, instance.TypeAtom})
			if err != nil {
				return "", err
			}
		}

	default:
		inner, err := w.walk(pv, depth+1)
		if err != nil {
			return "", err
		}
		err = w.pushRelation(instance.RelVariantValue,
			[]string{id, inner},
			[]string{union, instance.TypeAtom})
		if err != nil {
			return "", err
		}
	}

	return id, nil
}

// fieldName resolves a struct field's relation name, honoring the viz tag:
// `viz:"-"` skips the field, any other value renames it.
func fieldName(field reflect.StructField) (string, bool) {
	if !field.IsExported() {
		return "", false
	}
	name := field.Name
	if tag, ok := field.Tag.Lookup("viz"); ok {
		if tag == "-" {
			return "", false
		}
		if tag != "" {
			name = tag
		}
	}
	return name, true
}
