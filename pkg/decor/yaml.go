package decor

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ToYAML serializes a set as the decorator document consumed by rendering
// front-ends: top-level "constraints" and "directives" lists of tagged
// records, with camelCase parameter keys.
//
// Empty lists serialize as [] rather than null so both keys are always
// present.
func ToYAML(s Set) (string, error) {
	out := s.Clone()
	if out.Constraints == nil {
		out.Constraints = []Constraint{}
	}
	if out.Directives == nil {
		out.Directives = []Directive{}
	}
	data, err := yaml.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("marshal decorators: %w", err)
	}
	return string(data), nil
}

// FromYAML parses a decorator document produced by ToYAML.
func FromYAML(doc string) (Set, error) {
	var s Set
	if err := yaml.Unmarshal([]byte(doc), &s); err != nil {
		return Set{}, fmt.Errorf("unmarshal decorators: %w", err)
	}
	return s, nil
}
