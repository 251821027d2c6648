package decor

import (
	"sort"

	"github.com/lukastens/relviz/pkg/errors"
)

// Annotation is a loosely-typed decorator request: a kind name plus a
// parameter bag. Annotations are the runtime-facing input format for
// [Store.Annotate] and for declarative configuration; validated annotations
// become [Constraint] or [Directive] records.
type Annotation struct {
	Kind   string
	Params map[string]any
}

// ParamNames returns the sorted parameter names of the annotation.
func (a Annotation) ParamNames() []string {
	names := make([]string, 0, len(a.Params))
	for k := range a.Params {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// =============================================================================
// Annotation Constructors
// =============================================================================

// OrientationAnnotation builds an orientation annotation.
func OrientationAnnotation(selector string, directions ...string) Annotation {
	return Annotation{Kind: "orientation", Params: map[string]any{
		"selector": selector, "directions": directions,
	}}
}

// CyclicAnnotation builds a cyclic annotation.
func CyclicAnnotation(selector, direction string) Annotation {
	return Annotation{Kind: "cyclic", Params: map[string]any{
		"selector": selector, "direction": direction,
	}}
}

// AtomColorAnnotation builds an atomColor annotation.
func AtomColorAnnotation(selector, value string) Annotation {
	return Annotation{Kind: "atomColor", Params: map[string]any{
		"selector": selector, "value": value,
	}}
}

// FlagAnnotation builds a flag annotation.
func FlagAnnotation(name string) Annotation {
	return Annotation{Kind: "flag", Params: map[string]any{"name": name}}
}

// =============================================================================
// Annotation -> Record Conversion
// =============================================================================

// record validates the annotation and converts it into a constraint or
// directive. Exactly one of the returned pointers is non-nil on success.
// Unknown kinds surface as INVALID_ANNOTATION; callers that want the
// documented ignore-unknown behavior check SchemaFor before calling.
func (a Annotation) record() (*Constraint, *Directive, error) {
	if err := ValidateParams(a.Kind, a.ParamNames()); err != nil {
		return nil, nil, err
	}
	if sel, ok := a.Params["selector"].(string); ok {
		if err := errors.ValidateSelector(sel); err != nil {
			return nil, nil, err
		}
	}

	switch a.Kind {
	case "orientation":
		return &Constraint{Orientation: &Orientation{
			Selector:   a.stringParam("selector"),
			Directions: a.stringSliceParam("directions"),
		}}, nil, nil
	case "cyclic":
		return &Constraint{Cyclic: &Cyclic{
			Selector:  a.stringParam("selector"),
			Direction: a.stringParam("direction"),
		}}, nil, nil
	case "group":
		g := &Group{Selector: a.stringParam("selector")}
		if _, ok := a.Params["field"]; ok {
			on := a.intParam("groupOn")
			add := a.intParam("addToGroup")
			g.Field = a.stringParam("field")
			g.GroupOn = &on
			g.AddToGroup = &add
		} else {
			g.Name = a.stringParam("name")
		}
		if g.Shape() == GroupShapeInvalid {
			return nil, nil, errors.New(errors.ErrCodeNoShapeMatch,
				"group parameters match no accepted shape")
		}
		return &Constraint{Group: g}, nil, nil
	case "atomColor":
		return nil, &Directive{AtomColor: &AtomColor{
			Selector: a.stringParam("selector"),
			Value:    a.stringParam("value"),
		}}, nil
	case "edgeColor":
		return nil, &Directive{EdgeColor: &EdgeColor{
			Field:    a.stringParam("field"),
			Value:    a.stringParam("value"),
			Selector: a.stringParam("selector"),
		}}, nil
	case "size":
		return nil, &Directive{Size: &Size{
			Selector: a.stringParam("selector"),
			Height:   a.intParam("height"),
			Width:    a.intParam("width"),
		}}, nil
	case "icon":
		return nil, &Directive{Icon: &Icon{
			Selector:   a.stringParam("selector"),
			Path:       a.stringParam("path"),
			ShowLabels: a.boolParam("showLabels"),
		}}, nil
	case "projection":
		return nil, &Directive{Projection: &Projection{Sig: a.stringParam("sig")}}, nil
	case "attribute":
		return nil, &Directive{Attribute: &Attribute{
			Field:    a.stringParam("field"),
			Selector: a.stringParam("selector"),
		}}, nil
	case "hideField":
		return nil, &Directive{HideField: &HideField{
			Field:    a.stringParam("field"),
			Selector: a.stringParam("selector"),
		}}, nil
	case "hideAtom":
		return nil, &Directive{HideAtom: &HideAtom{Selector: a.stringParam("selector")}}, nil
	case "inferredEdge":
		return nil, &Directive{InferredEdge: &InferredEdge{
			Name:     a.stringParam("name"),
			Selector: a.stringParam("selector"),
		}}, nil
	case "flag":
		return nil, &Directive{Flag: a.stringParam("name")}, nil
	}
	return nil, nil, errors.New(errors.ErrCodeInvalidAnnotation, "unknown annotation kind %q", a.Kind)
}

func (a Annotation) stringParam(key string) string {
	s, _ := a.Params[key].(string)
	return s
}

func (a Annotation) stringSliceParam(key string) []string {
	switch v := a.Params[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func (a Annotation) intParam(key string) int {
	switch v := a.Params[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

func (a Annotation) boolParam(key string) bool {
	b, _ := a.Params[key].(bool)
	return b
}
