// Package export converts arbitrary in-memory values into normalized
// atom/relation instances for graph visualization.
//
// The exporter walks a value's structural shape via reflection and applies
// one emission rule per shape, preserving distinctions that plain JSON
// erases: a struct field, a map entry, a positional index, and a variant
// payload each produce differently-named relations.
//
// # Emission Rules
//
//	shape                       emission
//	-----                       --------
//	scalar (ints, floats, ...)  one atom, typed by precise kind
//	bool / nil / unit struct    one atom via the singleton cache
//	slice                       "sequence" atom + idx(seq, i, elem) tuples
//	array                       "tuple" atom + idx(tuple, i, elem) tuples
//	map                         "map" atom + map_entry(map, key, value) tuples
//	struct                      atom typed by the struct name + one relation
//	                            per field, named after the field
//	Variant implementation      atom typed by the union name, labeled by the
//	                            case name; payload emitted positionally, by
//	                            field, or as a variant_value edge
//	pointer / interface         transparent; nil becomes the absent singleton
//
// Singleton values (booleans, the absent marker, unit values, no-payload
// variant cases) are deduplicated per export call by (type, label): every
// occurrence resolves to the same atom id. Data-bearing values are never
// deduplicated — two equal Person structs are two atoms, because position in
// the structure is meaningful for layout.
//
// # Decorator Collection
//
// [Exporter.ExportWithDecorators] additionally collects type-level
// decorators from a [decor.Registry] for every distinct struct type name
// encountered during the walk, excluding the root type so callers that
// already hold the root's decorators don't double-count them.
//
// # Limits
//
// The walk follows values, not identities: cyclic references through
// pointers do not terminate and are out of scope. WithMaxDepth bounds
// recursion so such inputs fail with DEPTH_EXCEEDED instead of exhausting
// the stack. Channels, funcs, and unsafe pointers have no structural
// interpretation and fail the export.
package export
