package decor

import (
	"slices"
	"strings"

	"github.com/lukastens/relviz/pkg/errors"
)

// =============================================================================
// Parameter Schemas
// =============================================================================

// ParamSet is one accepted parameter shape for an annotation kind.
type ParamSet struct {
	Required []string
	Optional []string
}

func (p ParamSet) String() string {
	return "required: [" + strings.Join(p.Required, ", ") + "], optional: [" + strings.Join(p.Optional, ", ") + "]"
}

// ParamSchema describes the accepted parameters of an annotation kind.
// Most kinds accept a single shape; multi-shape kinds (group) accept any one
// of several.
type ParamSchema struct {
	Shapes []ParamSet
}

// constraint and directive schemas, keyed by annotation kind. The key set is
// the closed list of supported kinds; parameter names use the wire casing.
var (
	constraintSchemas = map[string]ParamSchema{
		"orientation": {Shapes: []ParamSet{{Required: []string{"selector", "directions"}}}},
		"cyclic":      {Shapes: []ParamSet{{Required: []string{"selector", "direction"}}}},
		"group": {Shapes: []ParamSet{
			{Required: []string{"field", "groupOn", "addToGroup"}, Optional: []string{"selector"}},
			{Required: []string{"selector", "name"}},
		}},
	}

	directiveSchemas = map[string]ParamSchema{
		"atomColor":    {Shapes: []ParamSet{{Required: []string{"selector", "value"}}}},
		"size":         {Shapes: []ParamSet{{Required: []string{"selector", "height", "width"}}}},
		"icon":         {Shapes: []ParamSet{{Required: []string{"selector", "path", "showLabels"}}}},
		"edgeColor":    {Shapes: []ParamSet{{Required: []string{"field", "value"}, Optional: []string{"selector"}}}},
		"projection":   {Shapes: []ParamSet{{Required: []string{"sig"}}}},
		"attribute":    {Shapes: []ParamSet{{Required: []string{"field"}, Optional: []string{"selector"}}}},
		"hideField":    {Shapes: []ParamSet{{Required: []string{"field"}, Optional: []string{"selector"}}}},
		"hideAtom":     {Shapes: []ParamSet{{Required: []string{"selector"}}}},
		"inferredEdge": {Shapes: []ParamSet{{Required: []string{"name", "selector"}}}},
		"flag":         {Shapes: []ParamSet{{Required: []string{"name"}}}},
	}
)

// ConstraintSchemas returns the parameter schemas of all constraint kinds.
func ConstraintSchemas() map[string]ParamSchema {
	out := make(map[string]ParamSchema, len(constraintSchemas))
	for k, v := range constraintSchemas {
		out[k] = v
	}
	return out
}

// DirectiveSchemas returns the parameter schemas of all directive kinds.
func DirectiveSchemas() map[string]ParamSchema {
	out := make(map[string]ParamSchema, len(directiveSchemas))
	for k, v := range directiveSchemas {
		out[k] = v
	}
	return out
}

// SchemaFor returns the parameter schema for an annotation kind, constraint
// or directive. The second return is false for unknown kinds.
func SchemaFor(kind string) (ParamSchema, bool) {
	if s, ok := constraintSchemas[kind]; ok {
		return s, true
	}
	if s, ok := directiveSchemas[kind]; ok {
		return s, true
	}
	return ParamSchema{}, false
}

// =============================================================================
// Validation
// =============================================================================

// ValidateParams checks the provided parameter names against the schema of
// an annotation kind. It returns nil when some accepted shape matches.
//
// Failures are structured: missing required parameters are named, unknown
// parameters are named, and for multi-shape kinds the error lists every
// shape that was tried. Unknown kinds are also an error here; callers that
// want to ignore unknown kinds must check [SchemaFor] first.
func ValidateParams(kind string, provided []string) error {
	schema, ok := SchemaFor(kind)
	if !ok {
		return errors.New(errors.ErrCodeInvalidAnnotation, "unknown annotation kind %q", kind)
	}

	if len(schema.Shapes) == 1 {
		return validateShape(kind, provided, schema.Shapes[0])
	}

	var tried []string
	for _, shape := range schema.Shapes {
		if err := validateShape(kind, provided, shape); err == nil {
			return nil
		}
		tried = append(tried, shape.String())
	}
	return errors.New(errors.ErrCodeNoShapeMatch,
		"no parameter shape of %q matches [%s]; tried: %s",
		kind, strings.Join(provided, ", "), strings.Join(tried, " OR "))
}

func validateShape(kind string, provided []string, shape ParamSet) error {
	var missing []string
	for _, req := range shape.Required {
		if !slices.Contains(provided, req) {
			missing = append(missing, req)
		}
	}
	if len(missing) > 0 {
		return errors.New(errors.ErrCodeMissingParam,
			"missing required parameters for %q: [%s]", kind, strings.Join(missing, ", "))
	}

	var unknown []string
	for _, p := range provided {
		if !slices.Contains(shape.Required, p) && !slices.Contains(shape.Optional, p) {
			unknown = append(unknown, p)
		}
	}
	if len(unknown) > 0 {
		valid := append(append([]string(nil), shape.Required...), shape.Optional...)
		return errors.New(errors.ErrCodeUnknownParam,
			"unknown parameters for %q: [%s]; valid parameters: [%s]",
			kind, strings.Join(unknown, ", "), strings.Join(valid, ", "))
	}

	return nil
}
