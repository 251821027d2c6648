package decor

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lukastens/relviz/pkg/errors"
)

// =============================================================================
// Declarative Registration (TOML)
// =============================================================================

// Type-level decorators can be declared in a TOML file and loaded into a
// Registry at startup instead of being built in code:
//
//	[[types]]
//	name = "TreeNode"
//
//	  [[types.constraints]]
//	  kind = "orientation"
//	  selector = "left"
//	  directions = ["left", "below"]
//
//	  [[types.directives]]
//	  kind = "atomColor"
//	  selector = "TreeNode"
//	  value = "crimson"
//
// Every entry is validated against the annotation schemas; loading fails on
// the first invalid entry, naming the type and kind.

type configFile struct {
	Types []typeConfig `toml:"types"`
}

type typeConfig struct {
	Name        string        `toml:"name"`
	Constraints []entryConfig `toml:"constraints"`
	Directives  []entryConfig `toml:"directives"`
}

// entryConfig is the union of all annotation parameters. Pointer fields
// distinguish "absent" from zero so schema validation sees exactly the keys
// the author wrote.
type entryConfig struct {
	Kind       string   `toml:"kind"`
	Selector   *string  `toml:"selector"`
	Directions []string `toml:"directions"`
	Direction  *string  `toml:"direction"`
	Field      *string  `toml:"field"`
	GroupOn    *int     `toml:"groupOn"`
	AddToGroup *int     `toml:"addToGroup"`
	Name       *string  `toml:"name"`
	Value      *string  `toml:"value"`
	Height     *int     `toml:"height"`
	Width      *int     `toml:"width"`
	Path       *string  `toml:"path"`
	ShowLabels *bool    `toml:"showLabels"`
	Sig        *string  `toml:"sig"`
}

// annotation converts the entry to the loosely-typed annotation form,
// including only the parameters the author provided.
func (e entryConfig) annotation() Annotation {
	params := make(map[string]any)
	if e.Selector != nil {
		params["selector"] = *e.Selector
	}
	if e.Directions != nil {
		params["directions"] = e.Directions
	}
	if e.Direction != nil {
		params["direction"] = *e.Direction
	}
	if e.Field != nil {
		params["field"] = *e.Field
	}
	if e.GroupOn != nil {
		params["groupOn"] = *e.GroupOn
	}
	if e.AddToGroup != nil {
		params["addToGroup"] = *e.AddToGroup
	}
	if e.Name != nil {
		params["name"] = *e.Name
	}
	if e.Value != nil {
		params["value"] = *e.Value
	}
	if e.Height != nil {
		params["height"] = *e.Height
	}
	if e.Width != nil {
		params["width"] = *e.Width
	}
	if e.Path != nil {
		params["path"] = *e.Path
	}
	if e.ShowLabels != nil {
		params["showLabels"] = *e.ShowLabels
	}
	if e.Sig != nil {
		params["sig"] = *e.Sig
	}
	return Annotation{Kind: e.Kind, Params: params}
}

// LoadRegistry reads a TOML decorator declaration file and returns a
// Registry populated from it.
func LoadRegistry(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "open %s", path)
	}
	defer f.Close()
	return DecodeRegistry(f)
}

// DecodeRegistry builds a Registry from TOML decorator declarations.
// Unlike [Store.Annotate], configuration is strict: unknown kinds and
// invalid parameters fail the load so authoring mistakes surface at startup
// rather than as silently missing visuals.
func DecodeRegistry(r io.Reader) (*Registry, error) {
	var cfg configFile
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode decorator config")
	}

	reg := NewRegistry()
	for _, tc := range cfg.Types {
		if err := errors.ValidateTypeName(tc.Name); err != nil {
			return nil, err
		}
		set, err := buildConfiguredSet(tc)
		if err != nil {
			return nil, err
		}
		reg.Register(tc.Name, set)
	}
	return reg, nil
}

func buildConfiguredSet(tc typeConfig) (Set, error) {
	var set Set
	for _, group := range []struct {
		entries      []entryConfig
		wantKind     func(*Constraint, *Directive) bool
		sectionLabel string
	}{
		{tc.Constraints, func(c *Constraint, _ *Directive) bool { return c != nil }, "constraints"},
		{tc.Directives, func(_ *Constraint, d *Directive) bool { return d != nil }, "directives"},
	} {
		for _, entry := range group.entries {
			constraint, directive, err := entry.annotation().record()
			if err != nil {
				return Set{}, errors.Wrap(errors.ErrCodeInvalidConfig, err,
					"type %s, %s entry %q", tc.Name, group.sectionLabel, entry.Kind)
			}
			if !group.wantKind(constraint, directive) {
				return Set{}, errors.New(errors.ErrCodeInvalidConfig,
					"type %s: %q is not a valid %s kind", tc.Name, entry.Kind, group.sectionLabel)
			}
			if constraint != nil {
				set.Constraints = append(set.Constraints, *constraint)
			}
			if directive != nil {
				set.Directives = append(set.Directives, *directive)
			}
		}
	}
	return set, nil
}
