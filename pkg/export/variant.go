package export

// Variant lets Go types present themselves as tagged-union cases. Go has no
// native sum types; a type that models one implements Variant to tell the
// exporter which union it belongs to, which case the value is, and what
// payload the case carries.
//
// The payload determines the emission:
//
//   - nil: a no-payload case, deduplicated as a singleton keyed by
//     (union, case) — Color.Red is one conceptual thing no matter how often
//     it appears
//   - struct: named payload; each exported field becomes a relation named
//     after the field, scoped to the variant atom
//   - slice or array: positional payload; elements become idx tuples on the
//     variant atom
//   - anything else: a single payload linked by a variant_value relation
//
// A typical enum-style implementation:
//
//	type Color int
//
//	const (
//		Red Color = iota
//		Black
//	)
//
//	func (c Color) Variant() (string, string, any) {
//		return "Color", c.String(), nil
//	}
//
// And a data-bearing case:
//
//	type Move struct{ X, Y float64 }
//
//	func (m Move) Variant() (string, string, any) {
//		return "Event", "Move", []any{m.X, m.Y}
//	}
type Variant interface {
	// Variant returns the union name, the case name, and the case payload
	// (nil for no-payload cases). Both names must be non-empty.
	Variant() (union string, name string, payload any)
}
