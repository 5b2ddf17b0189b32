// Package rail lays out and renders railroad (syntax) diagrams.
//
// A diagram is a tree of Elements. Each element measures itself at
// construction time (up, height, down, width, plus a needs-space flag) so a
// parent can measure itself from its children without a separate pass. A
// formatted diagram renders to SVG through WriteSVG or WriteStandalone, and
// to a character grid through WriteText; the two renderers share the tree but
// nothing else.
//
// Elements never change size after construction. The Format pass only decides
// where things go and records the geometry; it may run at most once per tree.
package rail

import (
	"bytes"
	"fmt"
)

// Element is a node of a railroad diagram: both a logical diagram item and
// the SVG group it renders into.
type Element interface {
	// Up is the distance the element projects above its entry line.
	Up() float64
	// Height is the vertical distance between the entry and exit lines.
	Height() float64
	// Down is the distance the element projects below its exit line.
	Down() float64
	// Width is the horizontal distance between entry and exit.
	Width() float64
	// NeedsSpace reports whether the element wants breathing room before
	// and after itself instead of sitting snug against its neighbors.
	NeedsSpace() bool

	// Format positions the element with its entry at (x, y), centering it
	// within the allotted width, and records the SVG geometry. It returns
	// the element for chaining.
	Format(x, y, width float64) Element

	// TextDiagram renders the element as a character grid.
	TextDiagram() *TextGrid

	// ToDict converts the element to its structural dictionary form.
	ToDict() Dict

	// Walk visits the element and then its children, depth-first.
	Walk(fn func(Element))

	svgNode
	base() *core
}

// core carries the shared element state: measurements, the SVG tag and
// attribute double-duty, and the captured parameters.
type core struct {
	tag      string
	attrs    attrs
	children []svgNode

	up         float64
	height     float64
	down       float64
	width      float64
	needsSpace bool

	params *Params
}

func newCore(tag string, a attrs, p *Params) core {
	if a == nil {
		a = attrs{}
	}
	return core{tag: tag, attrs: a, params: resolveParams(p)}
}

func (c *core) Up() float64      { return c.up }
func (c *core) Height() float64  { return c.height }
func (c *core) Down() float64    { return c.down }
func (c *core) Width() float64   { return c.width }
func (c *core) NeedsSpace() bool { return c.needsSpace }

func (c *core) base() *core { return c }

func (c *core) writeSVG(buf *bytes.Buffer) {
	writeElement(buf, c.tag, c.attrs, c.children)
}

// add appends a rendered child node to this element's SVG children.
func (c *core) add(n svgNode) {
	c.children = append(c.children, n)
}

// grid builds a TextGrid with this element's glyph set.
func (c *core) grid(entry, exit int, lines []string) *TextGrid {
	return newTextGrid(c.params.glyphs(), entry, exit, lines)
}

// addDebug annotates the element with its measurements when debugging is on.
func addDebug(e Element, kind string) {
	c := e.base()
	if !c.params.Debug {
		return
	}
	c.attrs["data-x"] = fmt.Sprintf("%s w:%s h:%s/%s/%s",
		kind, fmtNum(c.width), fmtNum(c.up), fmtNum(c.height), fmtNum(c.down))
}

// TextOption sets the optional presentation fields shared by the text-bearing
// leaf elements.
type TextOption func(*textOpts)

type textOpts struct {
	href  string
	title string
	cls   string
}

// WithHref wraps the rendered text in a link to the given URL.
func WithHref(href string) TextOption {
	return func(o *textOpts) { o.href = href }
}

// WithTitle attaches a hover tooltip to the element.
func WithTitle(title string) TextOption {
	return func(o *textOpts) { o.title = title }
}

// WithClass adds an extra CSS class to the element.
func WithClass(cls string) TextOption {
	return func(o *textOpts) { o.cls = cls }
}

func applyTextOptions(opts []TextOption) textOpts {
	var o textOpts
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// spaced returns the width an item occupies inside a sequence, including the
// gaps a needs-space item claims on both sides.
func spaced(item Element, gap float64) float64 {
	if item.NeedsSpace() {
		return item.Width() + gap
	}
	return item.Width()
}
