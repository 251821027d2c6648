package decor

import "strings"

// Selector expressions are dot-separated paths interpreted by the rendering
// front-end. This package treats them as opaque except for the [SelfToken]
// segment, which refers to the annotated instance and is resolved before a
// record is stored.

type selectorPath []string

func parseSelector(s string) selectorPath {
	return strings.Split(s, ".")
}

// resolveSelf substitutes the instance identifier for every path segment
// that is exactly the self token. Segments merely containing the token
// ("selfish") are left alone.
func (p selectorPath) resolveSelf(id string) selectorPath {
	out := make(selectorPath, len(p))
	for i, seg := range p {
		if seg == SelfToken {
			seg = id
		}
		out[i] = seg
	}
	return out
}

func (p selectorPath) String() string {
	return strings.Join(p, ".")
}
