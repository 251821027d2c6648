// Package decor provides layout decorators for exported instances.
//
// A decorator is a layout constraint or visual directive attached to a type
// or to one runtime instance, controlling how the exported atom/relation
// graph is rendered. Decorators never change the exported data; they travel
// next to it as a separate YAML document.
//
// # Core Types
//
//   - [Set]: ordered constraint + directive lists, the unit of merging
//   - [Constraint]: orientation, cyclic, or group layout constraints
//   - [Directive]: visual directives (colors, size, icon, hiding, flags, ...)
//   - [Builder]: fluent accumulator producing an immutable Set
//   - [Registry]: type-name-keyed default decorators
//   - [Store]: per-instance runtime annotations keyed by [Handle]
//
// # Merging
//
// [Merge] concatenates constraint and directive lists in order, with no
// deduplication: an instance-level entry never removes a type-level default.
// Which entry wins is a rendering concern, not a merge concern.
//
// # YAML Format
//
// [ToYAML] serializes a Set as two top-level lists of tagged records:
//
//	constraints:
//	  - orientation:
//	      selector: left
//	      directions: [left, below]
//	directives:
//	  - atomColor:
//	      selector: TreeNode
//	      value: crimson
//	  - flag: hideDisconnected
//
// Parameter key casing (groupOn, addToGroup, showLabels, ...) is a
// compatibility contract with existing consumers and must not change.
//
// # Registration
//
// Type-level decorators are registered explicitly, either in code at startup
// via [Registry.Register] or declaratively from a TOML file via
// [LoadRegistry]. Registration is idempotent: the first Set registered for a
// type name wins and later attempts are no-ops.
package decor
