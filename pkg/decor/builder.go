package decor

// Builder accumulates decorators fluently. Each method appends exactly one
// constraint or directive record and returns the builder for chaining;
// [Builder.Build] finalizes the set.
//
//	set := decor.NewBuilder().
//		Orientation("left", "left", "below").
//		AtomColor("TreeNode", "crimson").
//		Flag("hideDisconnectedBuiltins").
//		Build()
type Builder struct {
	set Set
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Orientation appends a relative-orientation constraint.
func (b *Builder) Orientation(selector string, directions ...string) *Builder {
	b.set.Constraints = append(b.set.Constraints, Constraint{
		Orientation: &Orientation{Selector: selector, Directions: directions},
	})
	return b
}

// Cyclic appends a cyclic-arrangement constraint.
func (b *Builder) Cyclic(selector, direction string) *Builder {
	b.set.Constraints = append(b.set.Constraints, Constraint{
		Cyclic: &Cyclic{Selector: selector, Direction: direction},
	})
	return b
}

// GroupByField appends a field-based grouping constraint. Pass selector ""
// to leave the optional scoping selector unset.
func (b *Builder) GroupByField(field string, groupOn, addToGroup int, selector string) *Builder {
	on, add := groupOn, addToGroup
	b.set.Constraints = append(b.set.Constraints, Constraint{
		Group: &Group{Field: field, GroupOn: &on, AddToGroup: &add, Selector: selector},
	})
	return b
}

// GroupBySelector appends a selector-based grouping constraint with an
// explicit group name.
func (b *Builder) GroupBySelector(selector, name string) *Builder {
	b.set.Constraints = append(b.set.Constraints, Constraint{
		Group: &Group{Selector: selector, Name: name},
	})
	return b
}

// AtomColor appends an atom-coloring directive.
func (b *Builder) AtomColor(selector, value string) *Builder {
	b.set.Directives = append(b.set.Directives, Directive{
		AtomColor: &AtomColor{Selector: selector, Value: value},
	})
	return b
}

// EdgeColor appends an edge-coloring directive. Pass selector "" to leave
// the optional scoping selector unset.
func (b *Builder) EdgeColor(field, value, selector string) *Builder {
	b.set.Directives = append(b.set.Directives, Directive{
		EdgeColor: &EdgeColor{Field: field, Value: value, Selector: selector},
	})
	return b
}

// Size appends a sizing directive.
func (b *Builder) Size(selector string, height, width int) *Builder {
	b.set.Directives = append(b.set.Directives, Directive{
		Size: &Size{Selector: selector, Height: height, Width: width},
	})
	return b
}

// Icon appends an icon directive.
func (b *Builder) Icon(selector, path string, showLabels bool) *Builder {
	b.set.Directives = append(b.set.Directives, Directive{
		Icon: &Icon{Selector: selector, Path: path, ShowLabels: showLabels},
	})
	return b
}

// Projection appends a projection directive.
func (b *Builder) Projection(sig string) *Builder {
	b.set.Directives = append(b.set.Directives, Directive{
		Projection: &Projection{Sig: sig},
	})
	return b
}

// Attribute appends an attribute-as-label directive. Pass selector "" to
// leave the optional scoping selector unset.
func (b *Builder) Attribute(field, selector string) *Builder {
	b.set.Directives = append(b.set.Directives, Directive{
		Attribute: &Attribute{Field: field, Selector: selector},
	})
	return b
}

// HideField appends a field-hiding directive. Pass selector "" to leave the
// optional scoping selector unset.
func (b *Builder) HideField(field, selector string) *Builder {
	b.set.Directives = append(b.set.Directives, Directive{
		HideField: &HideField{Field: field, Selector: selector},
	})
	return b
}

// HideAtom appends an atom-hiding directive.
func (b *Builder) HideAtom(selector string) *Builder {
	b.set.Directives = append(b.set.Directives, Directive{
		HideAtom: &HideAtom{Selector: selector},
	})
	return b
}

// InferredEdge appends an inferred-edge directive.
func (b *Builder) InferredEdge(name, selector string) *Builder {
	b.set.Directives = append(b.set.Directives, Directive{
		InferredEdge: &InferredEdge{Name: name, Selector: selector},
	})
	return b
}

// Flag appends a free-form flag directive.
func (b *Builder) Flag(name string) *Builder {
	b.set.Directives = append(b.set.Directives, Directive{Flag: name})
	return b
}

// Build finalizes and returns the accumulated set. The builder can keep
// accumulating afterwards; Build returns a snapshot.
func (b *Builder) Build() Set {
	return b.set.Clone()
}
