package rail

import (
	"bytes"
	"io"
	"strings"

	"github.com/railyard/railyard/pkg/errors"
)

// DefaultCSS is the stylesheet injected by WriteStandalone when no custom
// stylesheet is given.
const DefaultCSS = `	svg.railroad-diagram {
		background-color:hsl(30,20%,95%);
	}
	svg.railroad-diagram path {
		stroke-width:3;
		stroke:black;
		fill:rgba(0,0,0,0);
	}
	svg.railroad-diagram text {
		font:bold 14px monospace;
		text-anchor:middle;
	}
	svg.railroad-diagram text.label{
		text-anchor:start;
	}
	svg.railroad-diagram text.comment{
		font:italic 12px monospace;
	}
	svg.railroad-diagram rect{
		stroke-width:3;
		stroke:black;
		fill:hsl(120,100%,90%);
	}
	svg.railroad-diagram rect.group-box {
		stroke: gray;
		stroke-dasharray: 10 5;
		fill: none;
	}`

// Diagram is the root of a railroad diagram. It frames its items with Start
// and End markers of the variant named by Params.Type, unless the caller
// supplied its own.
type Diagram struct {
	core
	typ       string
	items     []Element
	formatted bool
}

// NewDiagram builds a diagram around the given items.
func NewDiagram(p *Params, items ...Element) (*Diagram, error) {
	if len(items) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyItems, "diagram needs at least one item")
	}
	d := &Diagram{core: newCore("svg", nil, p), items: items}
	d.attrs["class"] = d.params.DiagramClass
	d.typ = d.params.Type
	if _, ok := d.items[0].(*Start); !ok {
		d.items = append([]Element{NewStart(d.params, d.typ, "")}, d.items...)
	}
	if _, ok := d.items[len(d.items)-1].(*End); !ok {
		d.items = append(d.items, NewEnd(d.params, d.typ))
	}
	for _, item := range d.items {
		d.width += spaced(item, 20)
		d.up = maxF(d.up, item.Up()-d.height)
		d.height += item.Height()
		d.down = maxF(d.down-item.Height(), item.Down())
	}
	if d.items[0].NeedsSpace() {
		d.width -= 10
	}
	if d.items[len(d.items)-1].NeedsSpace() {
		d.width -= 10
	}
	return d, nil
}

// Items returns the diagram's items, including the inserted Start and End.
func (d *Diagram) Items() []Element {
	return append([]Element(nil), d.items...)
}

// Layout runs the format pass, positioning every element and computing the
// root SVG dimensions. It accepts up to four padding values, interpreted like
// CSS shorthand: top, right (defaults to top), bottom (defaults to top), and
// left (defaults to right). No values means 20 pixels all around. Layout is
// idempotent in effect but must not run twice; the writers call it lazily.
func (d *Diagram) Layout(padding ...float64) *Diagram {
	top := 20.0
	if len(padding) > 0 {
		top = padding[0]
	}
	right := top
	if len(padding) > 1 {
		right = padding[1]
	}
	bottom := top
	if len(padding) > 2 {
		bottom = padding[2]
	}
	left := right
	if len(padding) > 3 {
		left = padding[3]
	}
	x := left
	y := top + d.up
	g := newSVGElement("g", attrs{})
	if d.params.StrokeOddPixelLength {
		g.attrs["transform"] = "translate(.5 .5)"
	}
	for _, item := range d.items {
		if item.NeedsSpace() {
			g.children = append(g.children, newPath(x, y, "", d.params.AR).h(10))
			x += 10
		}
		g.children = append(g.children, item.Format(x, y, item.Width()))
		x += item.Width()
		y += item.Height()
		if item.NeedsSpace() {
			g.children = append(g.children, newPath(x, y, "", d.params.AR).h(10))
			x += 10
		}
	}
	width := fmtNum(d.width + left + right)
	height := fmtNum(d.up + d.height + d.down + top + bottom)
	d.attrs["width"] = width
	d.attrs["height"] = height
	d.attrs["viewBox"] = "0 0 " + width + " " + height
	d.add(g)
	d.formatted = true
	return d
}

// TextDiagram renders the whole diagram as a character grid.
func (d *Diagram) TextDiagram() *TextGrid {
	separator := d.params.glyphs().part("separator")
	diagramTD := d.items[0].TextDiagram()
	for _, item := range d.items[1:] {
		itemTD := item.TextDiagram()
		if item.NeedsSpace() {
			itemTD = itemTD.expand(1, 1, 0, 0)
		}
		diagramTD = diagramTD.appendRight(itemTD, separator)
	}
	return diagramTD
}

// WriteSVG writes the diagram as an SVG fragment, laying it out with default
// padding if Layout has not run yet.
func (d *Diagram) WriteSVG(w io.Writer) error {
	if !d.formatted {
		d.Layout()
	}
	var buf bytes.Buffer
	d.writeSVG(&buf)
	_, err := w.Write(buf.Bytes())
	return err
}

// WriteStandalone writes the diagram as a self-contained SVG document with an
// embedded stylesheet. An empty css means DefaultCSS. The injected style and
// namespace attributes are rolled back afterwards, so the diagram can still
// be written as a fragment.
func (d *Diagram) WriteStandalone(w io.Writer, css string) error {
	if !d.formatted {
		d.Layout()
	}
	if css == "" {
		css = DefaultCSS
	}
	d.add(&style{css: css})
	d.attrs["xmlns"] = "http://www.w3.org/2000/svg"
	d.attrs["xmlns:xlink"] = "http://www.w3.org/1999/xlink"
	var buf bytes.Buffer
	d.writeSVG(&buf)
	d.children = d.children[:len(d.children)-1]
	delete(d.attrs, "xmlns")
	delete(d.attrs, "xmlns:xlink")
	_, err := w.Write(buf.Bytes())
	return err
}

// WriteText writes the diagram as a character grid, HTML-escaped when the
// parameters ask for it.
func (d *Diagram) WriteText(w io.Writer) error {
	output := strings.Join(d.TextDiagram().Lines(), "\n") + "\n"
	if d.params.EscapeHTML {
		output = strings.NewReplacer(
			"&", "&amp;",
			"<", "&lt;",
			">", "&gt;",
			`"`, "&quot;",
		).Replace(output)
	}
	_, err := io.WriteString(w, output)
	return err
}

func (d *Diagram) ToDict() Dict {
	return Dict{"element": "Diagram", "items": itemDicts(d.items)}
}

// Walk visits every element in the diagram, depth-first.
func (d *Diagram) Walk(fn func(Element)) {
	for _, item := range d.items {
		item.Walk(fn)
	}
}
