package instance

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// ToDOT returns a Graphviz DOT representation of the instance graph.
//
// The DOT format can be rendered with Graphviz tools (dot, neato, etc.) or
// programmatically with RenderSVG. The output is a complete DOT digraph
// suitable for documentation and debugging.
//
// Node representation:
//   - atoms: box nodes labeled "label: type"
//   - binary relation tuples: a labeled edge from first to second column
//   - wider tuples: edges from the first column to every later atom column,
//     labeled "name[i]"; index columns become part of the edge label instead
//     of a node
//
// The output follows creation order for atoms and sorted name order for
// relations, so it is deterministic for a given instance.
func (in *Instance) ToDOT() string {
	in.SortRelations()

	var buf bytes.Buffer
	buf.WriteString("digraph Instance {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=12, shape=box, style=\"filled,rounded\", fillcolor=white];\n")
	buf.WriteString("  edge [fontname=\"SF Mono, Menlo, monospace\", fontsize=10];\n\n")

	for _, a := range in.Atoms {
		label := a.Label
		if a.Type != "" && a.Type != a.Label {
			label = fmt.Sprintf("%s: %s", a.Label, a.Type)
		}
		fmt.Fprintf(&buf, "  %q [label=%q];\n", a.ID, label)
	}

	for _, r := range in.Relations {
		for _, tup := range r.Tuples {
			writeDOTTuple(&buf, r, tup)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeDOTTuple(buf *bytes.Buffer, r Relation, tup Tuple) {
	if len(tup.Atoms) < 2 {
		return
	}
	src := tup.Atoms[0]

	// Pull index literals into the edge label so positions render as
	// annotations rather than nodes.
	var position string
	for i := 1; i < len(tup.Atoms); i++ {
		if i < len(tup.Types) && tup.Types[i] == TypeIndex {
			position = tup.Atoms[i]
			continue
		}
		label := r.Name
		if position != "" {
			label = fmt.Sprintf("%s[%s]", r.Name, position)
		} else if len(tup.Atoms) > 2 {
			label = fmt.Sprintf("%s[%d]", r.Name, i-1)
		}
		fmt.Fprintf(buf, "  %q -> %q [label=%q];\n", src, tup.Atoms[i], label)
	}
}

// RenderSVG renders the instance graph as an SVG image.
//
// RenderSVG generates a DOT representation via ToDOT, then uses Graphviz to
// render it to SVG format. The returned bytes are a complete SVG document
// suitable for embedding or saving to a file.
//
// Errors are returned if Graphviz cannot initialize, the DOT is malformed,
// or rendering fails. All errors are wrapped with context using fmt.Errorf
// with %w.
func (in *Instance) RenderSVG(ctx context.Context) ([]byte, error) {
	dot := in.ToDOT()

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
