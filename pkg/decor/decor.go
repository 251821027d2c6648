package decor

// =============================================================================
// Decorator Records
// =============================================================================

// Set holds all decorators for a type or instance. The zero value is an
// empty, usable set. Order within each list is insertion order and is
// preserved by Merge and serialization.
type Set struct {
	Constraints []Constraint `yaml:"constraints" json:"constraints"`
	Directives  []Directive  `yaml:"directives" json:"directives"`
}

// IsEmpty reports whether the set contains no constraints and no directives.
func (s Set) IsEmpty() bool {
	return len(s.Constraints) == 0 && len(s.Directives) == 0
}

// Clone returns a deep-enough copy of the set: the lists are fresh, the
// records themselves are immutable values.
func (s Set) Clone() Set {
	out := Set{}
	if len(s.Constraints) > 0 {
		out.Constraints = append([]Constraint(nil), s.Constraints...)
	}
	if len(s.Directives) > 0 {
		out.Directives = append([]Directive(nil), s.Directives...)
	}
	return out
}

// Merge returns a new Set containing a's entries followed by b's entries.
// Merge is pure list concatenation: no deduplication, no reordering. The
// same record appearing twice is legal and meaningful.
func Merge(a, b Set) Set {
	out := a.Clone()
	out.Constraints = append(out.Constraints, b.Constraints...)
	out.Directives = append(out.Directives, b.Directives...)
	return out
}

// Constraint is one layout constraint record. Exactly one of its fields is
// set; the populated field name is the YAML tag of the record.
type Constraint struct {
	Orientation *Orientation `yaml:"orientation,omitempty" json:"orientation,omitempty"`
	Cyclic      *Cyclic      `yaml:"cyclic,omitempty" json:"cyclic,omitempty"`
	Group       *Group       `yaml:"group,omitempty" json:"group,omitempty"`
}

// Orientation places the atoms selected by Selector relative to their
// neighbors, in the listed direction tokens (e.g. "left", "above").
type Orientation struct {
	Selector   string   `yaml:"selector" json:"selector"`
	Directions []string `yaml:"directions" json:"directions"`
}

// Cyclic arranges the atoms selected by Selector in a cycle running in
// Direction ("clockwise" or "counterclockwise").
type Cyclic struct {
	Selector  string `yaml:"selector" json:"selector"`
	Direction string `yaml:"direction" json:"direction"`
}

// Group collects atoms into a named cluster. It has two mutually exclusive
// shapes:
//
//   - field-based: Field, GroupOn, AddToGroup (and optional Selector) select
//     group members through a relation's column indices
//   - selector-based: Selector plus an explicit group Name
//
// Use [Group.Shape] to find out which shape a record uses.
type Group struct {
	Field      string `yaml:"field,omitempty" json:"field,omitempty"`
	GroupOn    *int   `yaml:"groupOn,omitempty" json:"groupOn,omitempty"`
	AddToGroup *int   `yaml:"addToGroup,omitempty" json:"addToGroup,omitempty"`
	Selector   string `yaml:"selector,omitempty" json:"selector,omitempty"`
	Name       string `yaml:"name,omitempty" json:"name,omitempty"`
}

// GroupShape identifies which parameter shape a Group record uses.
type GroupShape int

const (
	// GroupShapeInvalid means the record matches neither shape.
	GroupShapeInvalid GroupShape = iota
	// GroupShapeField means members are selected by field-index pair.
	GroupShapeField
	// GroupShapeSelector means members are selected by a selector string
	// with an explicit group name.
	GroupShapeSelector
)

// Shape reports which of the two group shapes the record matches.
func (g Group) Shape() GroupShape {
	fieldBased := g.Field != "" && g.GroupOn != nil && g.AddToGroup != nil && g.Name == ""
	selectorBased := g.Selector != "" && g.Name != "" &&
		g.Field == "" && g.GroupOn == nil && g.AddToGroup == nil
	switch {
	case fieldBased:
		return GroupShapeField
	case selectorBased:
		return GroupShapeSelector
	default:
		return GroupShapeInvalid
	}
}

// Directive is one visual/structural directive record. Exactly one of its
// fields is set; the populated field name is the YAML tag of the record.
// Flag is special: a bare string marker with no further parameters.
type Directive struct {
	AtomColor    *AtomColor    `yaml:"atomColor,omitempty" json:"atomColor,omitempty"`
	EdgeColor    *EdgeColor    `yaml:"edgeColor,omitempty" json:"edgeColor,omitempty"`
	Size         *Size         `yaml:"size,omitempty" json:"size,omitempty"`
	Icon         *Icon         `yaml:"icon,omitempty" json:"icon,omitempty"`
	Projection   *Projection   `yaml:"projection,omitempty" json:"projection,omitempty"`
	Attribute    *Attribute    `yaml:"attribute,omitempty" json:"attribute,omitempty"`
	HideField    *HideField    `yaml:"hideField,omitempty" json:"hideField,omitempty"`
	HideAtom     *HideAtom     `yaml:"hideAtom,omitempty" json:"hideAtom,omitempty"`
	InferredEdge *InferredEdge `yaml:"inferredEdge,omitempty" json:"inferredEdge,omitempty"`
	Flag         string        `yaml:"flag,omitempty" json:"flag,omitempty"`
}

// AtomColor colors the atoms selected by Selector.
type AtomColor struct {
	Selector string `yaml:"selector" json:"selector"`
	Value    string `yaml:"value" json:"value"`
}

// EdgeColor colors the edges produced by a relation. Selector optionally
// narrows which instances the directive applies to.
type EdgeColor struct {
	Field    string `yaml:"field" json:"field"`
	Value    string `yaml:"value" json:"value"`
	Selector string `yaml:"selector,omitempty" json:"selector,omitempty"`
}

// Size fixes the rendered height and width of the selected atoms.
type Size struct {
	Selector string `yaml:"selector" json:"selector"`
	Height   int    `yaml:"height" json:"height"`
	Width    int    `yaml:"width" json:"width"`
}

// Icon replaces the selected atoms with an image. ShowLabels controls
// whether labels stay visible next to the icon.
type Icon struct {
	Selector   string `yaml:"selector" json:"selector"`
	Path       string `yaml:"path" json:"path"`
	ShowLabels bool   `yaml:"showLabels" json:"showLabels"`
}

// Projection projects the graph over the signature named by Sig.
type Projection struct {
	Sig string `yaml:"sig" json:"sig"`
}

// Attribute renders a field as an attribute of its owner atom instead of an
// edge. Selector optionally narrows which instances the directive applies to.
type Attribute struct {
	Field    string `yaml:"field" json:"field"`
	Selector string `yaml:"selector,omitempty" json:"selector,omitempty"`
}

// HideField suppresses the edges produced by a relation.
type HideField struct {
	Field    string `yaml:"field" json:"field"`
	Selector string `yaml:"selector,omitempty" json:"selector,omitempty"`
}

// HideAtom suppresses the selected atoms entirely.
type HideAtom struct {
	Selector string `yaml:"selector" json:"selector"`
}

// InferredEdge synthesizes an edge not present in the raw data, named Name
// and defined by Selector.
type InferredEdge struct {
	Name     string `yaml:"name" json:"name"`
	Selector string `yaml:"selector" json:"selector"`
}
