// Package treeviz renders the element tree of a diagram as a node-link graph.
//
// This is an inspection view: each element becomes a box labeled with its
// kind, connected to its children by arrows. It shows how a diagram is
// structured, not how its rails are laid out.
//
// Convert a tree to DOT format, then render to SVG or PNG:
//
//	dot := treeviz.ToDOT(diagram, treeviz.Options{})
//	svg, err := treeviz.RenderSVG(dot)
package treeviz

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/railyard/railyard/pkg/rail"
)

// Options configures tree rendering.
type Options struct {
	// Detailed includes choice defaults, skip flags, and links in node
	// labels. When false, only the element kind and its text are shown.
	Detailed bool
}

// Tree is anything with a structural dictionary form, i.e. every element and
// the diagram itself.
type Tree interface {
	ToDict() rail.Dict
}

// ToDOT converts an element tree to Graphviz DOT format. The resulting DOT
// string can be rendered using [RenderSVG] or [RenderPNG].
func ToDOT(root Tree, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	var edges []string
	counter := 0
	var emit func(d rail.Dict) string
	emit = func(d rail.Dict) string {
		id := fmt.Sprintf("n%d", counter)
		counter++
		label := fmtLabel(d, opts.Detailed)
		attrs := fmtAttrs(d, label)
		fmt.Fprintf(&buf, "  %q [%s];\n", id, strings.Join(attrs, ", "))
		for _, child := range childDicts(d) {
			edges = append(edges, fmt.Sprintf("  %q -> %q;\n", id, emit(child)))
		}
		return id
	}
	emit(root.ToDict())

	buf.WriteString("\n")
	for _, e := range edges {
		buf.WriteString(e)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(d rail.Dict, detailed bool) string {
	kind, _ := d["element"].(string)
	parts := []string{kind}
	if text, ok := d["text"].(string); ok {
		parts = append(parts, fmt.Sprintf("%q", text))
	}
	if label, ok := d["label"].(string); ok {
		parts = append(parts, label)
	}
	if detailed {
		if def, ok := d["default"].(int); ok {
			parts = append(parts, fmt.Sprintf("default: %d", def))
		}
		if typ, ok := d["type"].(string); ok {
			parts = append(parts, fmt.Sprintf("type: %s", typ))
		}
		if href, ok := d["href"].(string); ok {
			parts = append(parts, fmt.Sprintf("href: %s", href))
		}
	}
	return strings.Join(parts, "\n")
}

func fmtAttrs(d rail.Dict, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	switch d["element"] {
	case "Skip":
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey", "fontcolor=black")
	case "Diagram", "Start", "End":
		attrs = append(attrs, "fillcolor=lightgrey")
	}
	return attrs
}

// childDicts collects the child dictionaries of an element, tolerating both
// the []Dict produced by ToDict and the []any produced by decoders.
func childDicts(d rail.Dict) []rail.Dict {
	var children []rail.Dict
	add := func(v any) {
		switch c := v.(type) {
		case rail.Dict:
			children = append(children, c)
		case map[string]any:
			children = append(children, rail.Dict(c))
		}
	}
	switch items := d["items"].(type) {
	case []rail.Dict:
		for _, item := range items {
			add(item)
		}
	case []any:
		for _, item := range items {
			add(item)
		}
	}
	for _, key := range []string{"item", "repeat", "label"} {
		if v, ok := d[key]; ok {
			add(v)
		}
	}
	return children
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return render(dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return render(dot, graphviz.PNG)
}

func render(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
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
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
