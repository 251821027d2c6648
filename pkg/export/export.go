package export

import (
	"time"

	"github.com/lukastens/relviz/pkg/decor"
	"github.com/lukastens/relviz/pkg/instance"
	"github.com/lukastens/relviz/pkg/observability"
)

// DefaultMaxDepth bounds recursion depth per export call. Well-formed
// tree-shaped data never gets near this; the limit exists so cyclic inputs
// fail with a coded error instead of exhausting the stack.
const DefaultMaxDepth = 10000

// Option configures an Exporter.
type Option func(*Exporter)

// WithRegistry attaches a decorator registry consulted by
// [Exporter.ExportWithDecorators] when struct types are encountered.
func WithRegistry(reg *decor.Registry) Option {
	return func(e *Exporter) { e.registry = reg }
}

// WithMaxDepth overrides DefaultMaxDepth. Values < 1 are ignored.
func WithMaxDepth(n int) Option {
	return func(e *Exporter) {
		if n >= 1 {
			e.maxDepth = n
		}
	}
}

// WithHooks overrides the globally registered export hooks for this
// exporter only.
func WithHooks(h observability.ExportHooks) Option {
	return func(e *Exporter) { e.hooks = h }
}

// Exporter converts values into atom/relation instances. An Exporter is
// stateless between calls and safe for concurrent use; all traversal state
// (id counter, singleton cache, relation accumulator) is local to one call.
type Exporter struct {
	registry *decor.Registry
	maxDepth int
	hooks    observability.ExportHooks
}

// New creates an exporter with the given options.
func New(opts ...Option) *Exporter {
	e := &Exporter{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export walks v and returns the normalized instance. Decorators are not
// collected; use ExportWithDecorators for that.
//
// The input must be tree-shaped: shared or cyclic references through owned
// containers are walked by value, not by identity.
func (e *Exporter) Export(v any) (*instance.Instance, error) {
	in, _, err := e.run(v, "", false)
	return in, err
}

// ExportWithDecorators walks v like Export and additionally returns the
// merged decorator set collected from every distinct struct type name
// encountered during the walk. rootType is excluded from collection so a
// caller that already obtained the root's decorators directly does not count
// them twice.
func (e *Exporter) ExportWithDecorators(v any, rootType string) (*instance.Instance, decor.Set, error) {
	return e.run(v, rootType, true)
}

func (e *Exporter) run(v any, rootType string, collect bool) (*instance.Instance, decor.Set, error) {
	hooks := e.hooks
	if hooks == nil {
		hooks = observability.Export()
	}

	root := decor.TypeNameOf(v)
	hooks.OnExportStart(root)
	start := time.Now()

	w := newWalker(e.maxDepth)
	w.hooks = hooks
	if collect {
		w.registry = e.registry
		w.exclude = rootType
	}

	err := w.run(v)
	in := w.instance()
	hooks.OnExportComplete(root, len(in.Atoms), len(in.Relations), time.Since(start), err)
	if err != nil {
		return nil, decor.Set{}, err
	}
	return in, w.collected, nil
}

// Export walks v with a default exporter. It is shorthand for
// New().Export(v).
func Export(v any) (*instance.Instance, error) {
	return New().Export(v)
}
