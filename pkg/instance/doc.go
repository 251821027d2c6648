// Package instance provides the normalized atom/relation wire format for
// exported data structures.
//
// This package defines the canonical serialization format consumed by
// visualization front-ends. An exported value becomes an [Instance]: a flat
// list of [Atom] nodes plus a set of named [Relation] edge tables whose
// [Tuple] rows reference atoms by id.
//
// # Core Types
//
//   - [Instance]: the full exported document (atoms + relations)
//   - [Atom]: one graph node ({id, type, label})
//   - [Relation]: a named, typed n-ary edge set
//   - [Tuple]: one row of a relation (ordered atom ids + type tags)
//
// # Wire Format
//
// Instances use a two-collection JSON format:
//
//	{
//	  "atoms": [{"id": "atom0", "type": "Person", "label": "Person"}],
//	  "relations": [
//	    {"id": "name", "name": "name",
//	     "types": ["Person", "atom"],
//	     "tuples": [{"atoms": ["atom0", "atom1"], "types": ["Person", "string"]}]}
//	  ]
//	}
//
// Field names are a compatibility contract with existing front-ends and must
// not change. Relations are sorted by name on output so serialization is
// deterministic; atoms keep creation order.
//
// # Rendering
//
// [Instance.ToDOT] and [Instance.RenderSVG] produce Graphviz views of the
// atom graph for debugging and documentation.
package instance
