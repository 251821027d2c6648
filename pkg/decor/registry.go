package decor

import (
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/lukastens/relviz/pkg/errors"
	"github.com/lukastens/relviz/pkg/observability"
)

// =============================================================================
// Type Registry
// =============================================================================

// Registry maps aggregate type names to their default decorator sets. It is
// an explicit context object: create one, register the known types at
// startup, and hand it to the exporter and collectors. A Registry is not
// safe for concurrent use; wrap it in [LockedRegistry] for that.
type Registry struct {
	types map[string]Set
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]Set)}
}

// Register stores the type's default decorators. Registration is idempotent
// and first-wins: if the type is already registered the call is a no-op and
// Register returns false.
func (r *Registry) Register(typeName string, set Set) bool {
	if _, exists := r.types[typeName]; exists {
		return false
	}
	r.types[typeName] = set.Clone()
	observability.Decorators().OnRegister(typeName)
	return true
}

// Lookup returns the decorators registered for a type name.
func (r *Registry) Lookup(typeName string) (Set, bool) {
	set, ok := r.types[typeName]
	if !ok {
		return Set{}, false
	}
	return set.Clone(), true
}

// Types returns the registered type names in sorted order.
func (r *Registry) Types() []string {
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LockedRegistry wraps a Registry with a mutex held for the duration of a
// single lookup-or-register operation, never across a full export call.
type LockedRegistry struct {
	mu  sync.Mutex
	reg *Registry
}

// NewLockedRegistry returns a concurrency-safe wrapper around reg.
// Callers must stop using reg directly.
func NewLockedRegistry(reg *Registry) *LockedRegistry {
	if reg == nil {
		reg = NewRegistry()
	}
	return &LockedRegistry{reg: reg}
}

// Register is the locked equivalent of [Registry.Register].
func (l *LockedRegistry) Register(typeName string, set Set) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.reg.Register(typeName, set)
}

// Lookup is the locked equivalent of [Registry.Lookup].
func (l *LockedRegistry) Lookup(typeName string) (Set, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.reg.Lookup(typeName)
}

// Snapshot returns a copy of the underlying registry for use by one export
// call, so the export itself runs without taking the lock.
func (l *LockedRegistry) Snapshot() *Registry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := NewRegistry()
	for name, set := range l.reg.types {
		out.types[name] = set.Clone()
	}
	return out
}

// =============================================================================
// Instance Store
// =============================================================================

// Handle identifies one annotated runtime instance. Handles are minted by
// [Store.Bind] (or [Store.NewHandle]) and stay valid for the lifetime of the
// store; keeping the handle paired with the right object is the caller's
// responsibility.
type Handle string

// SelfToken is the selector token that refers to the annotated instance
// itself. It is rewritten to a handle-unique placeholder at annotation time
// so two instances' selectors never collide textually.
const SelfToken = "self"

// Store accumulates per-instance runtime annotations. Like Registry it is an
// explicit context object with no global state, and is not safe for
// concurrent use without external locking.
type Store struct {
	entries map[Handle]Set
	bound   map[uintptr]Handle
}

// NewStore returns an empty instance store.
func NewStore() *Store {
	return &Store{
		entries: make(map[Handle]Set),
		bound:   make(map[uintptr]Handle),
	}
}

// NewHandle mints a fresh handle not tied to any address. Use this for
// values whose identity the caller manages itself.
func (s *Store) NewHandle() Handle {
	return Handle(uuid.NewString())
}

// Bind returns the stable handle for a pointer, minting one on first use.
// The argument must be a pointer; the pointed-to object's address is the
// identity key, so the caller must keep the object alive and unmoved (no
// re-slicing copies) for as long as its annotations matter.
func (s *Store) Bind(ptr any) (Handle, error) {
	v := reflect.ValueOf(ptr)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return "", errors.New(errors.ErrCodeUnaddressableValue,
			"Bind requires a non-nil pointer, got %T", ptr)
	}
	key := v.Pointer()
	if h, ok := s.bound[key]; ok {
		return h, nil
	}
	h := s.NewHandle()
	s.bound[key] = h
	return h, nil
}

// placeholder returns the instance-unique selector identifier for a handle.
func (h Handle) placeholder() string {
	return "obj_" + strings.ReplaceAll(string(h), "-", "")
}

// Annotate validates the annotation and appends the resulting record to the
// handle's entry, creating the entry on first use.
//
// Unknown annotation kinds are silently ignored: the annotation surface is
// deliberately permissive so callers can carry forward annotations this
// version does not understand. Malformed kind names and parameter validation
// failures on known kinds are returned as structured errors.
//
// Selector path segments equal to [SelfToken] are rewritten to a
// placeholder unique to this handle.
func (s *Store) Annotate(h Handle, a Annotation) error {
	if err := errors.ValidateAnnotationKind(a.Kind); err != nil {
		return err
	}
	if _, known := SchemaFor(a.Kind); !known {
		observability.Decorators().OnAnnotateIgnored(a.Kind)
		return nil
	}

	rewritten := Annotation{Kind: a.Kind, Params: make(map[string]any, len(a.Params))}
	for k, v := range a.Params {
		if sel, ok := v.(string); ok && k == "selector" {
			v = parseSelector(sel).resolveSelf(h.placeholder()).String()
		}
		rewritten.Params[k] = v
	}

	constraint, directive, err := rewritten.record()
	if err != nil {
		return err
	}

	entry := s.entries[h]
	if constraint != nil {
		entry.Constraints = append(entry.Constraints, *constraint)
	}
	if directive != nil {
		entry.Directives = append(entry.Directives, *directive)
	}
	s.entries[h] = entry
	observability.Decorators().OnAnnotate(a.Kind)
	return nil
}

// Decorators returns the annotations accumulated for a handle, defaulting to
// an empty set.
func (s *Store) Decorators(h Handle) Set {
	return s.entries[h].Clone()
}

// =============================================================================
// Collection
// =============================================================================

// TypeNameOf returns the registry key for a value's type: the declared type
// name behind any pointer indirection, or "" for unnamed types.
func TypeNameOf(v any) string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	return t.Name()
}

// Collect merges a type's registered default decorators with an instance's
// runtime annotations, in that order. Missing entries on either side default
// to an empty set. Either reg or store may be nil.
func Collect(reg *Registry, store *Store, typeName string, h Handle) Set {
	var typeSet, instSet Set
	if reg != nil {
		typeSet, _ = reg.Lookup(typeName)
	}
	if store != nil {
		instSet = store.Decorators(h)
	}
	observability.Decorators().OnCollect(typeName)
	return Merge(typeSet, instSet)
}

// CollectFor is Collect with the type name derived from the value itself.
func CollectFor(reg *Registry, store *Store, v any, h Handle) Set {
	return Collect(reg, store, TypeNameOf(v), h)
}
