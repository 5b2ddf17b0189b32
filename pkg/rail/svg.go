package rail

import (
	"bytes"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// svgNode is anything that can emit itself as SVG markup.
type svgNode interface {
	writeSVG(buf *bytes.Buffer)
}

type attrs map[string]any

// fmtNum renders a number the shortest way that round-trips: integral values
// lose the decimal point, everything else keeps full precision.
func fmtNum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"'", "&apos;",
	`"`, "&quot;",
)

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"'", "&apos;",
	`"`, "&quot;",
	"<", "&lt;",
)

func escapeAttr(v any) string {
	switch t := v.(type) {
	case string:
		return attrEscaper.Replace(t)
	case float64:
		return fmtNum(t)
	case int:
		return strconv.Itoa(t)
	default:
		return attrEscaper.Replace(fmt.Sprint(v))
	}
}

func escapeText(s string) string {
	return textEscaper.Replace(s)
}

func writeAttrs(buf *bytes.Buffer, a attrs) {
	names := make([]string, 0, len(a))
	for name := range a {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(buf, " %s=%q", name, escapeAttr(a[name]))
	}
}

func writeElement(buf *bytes.Buffer, tag string, a attrs, children []svgNode) {
	buf.WriteByte('<')
	buf.WriteString(tag)
	writeAttrs(buf, a)
	buf.WriteByte('>')
	if tag == "g" || tag == "svg" {
		buf.WriteByte('\n')
	}
	for _, child := range children {
		child.writeSVG(buf)
	}
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteByte('>')
}

// svgElement is a plain SVG element with no layout duties: the rects, texts,
// links, and titles emitted during the format pass.
type svgElement struct {
	tag      string
	attrs    attrs
	children []svgNode
}

func newSVGElement(tag string, a attrs, children ...svgNode) *svgElement {
	if a == nil {
		a = attrs{}
	}
	return &svgElement{tag: tag, attrs: a, children: children}
}

func (e *svgElement) writeSVG(buf *bytes.Buffer) {
	writeElement(buf, e.tag, e.attrs, e.children)
}

// textNode is escaped character data inside an element.
type textNode string

func (t textNode) writeSVG(buf *bytes.Buffer) {
	buf.WriteString(escapeText(string(t)))
}

// style injects a raw stylesheet into the SVG, wrapped in CDATA.
type style struct {
	css string
}

func (s *style) writeSVG(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "<style>/* <![CDATA[ */\n%s\n/* ]]> */\n</style>", s.css)
}

// path accumulates SVG path data with turtle-style relative commands. All
// rail geometry is drawn through it; the arc radius comes from the tree's
// parameters so curves stay consistent across a diagram.
type path struct {
	class string
	d     strings.Builder
	ar    float64
}

func newPath(x, y float64, class string, ar float64) *path {
	p := &path{class: class, ar: ar}
	fmt.Fprintf(&p.d, "M%s %s", fmtNum(x), fmtNum(y))
	return p
}

func (p *path) m(x, y float64) *path {
	fmt.Fprintf(&p.d, "m%s %s", fmtNum(x), fmtNum(y))
	return p
}

func (p *path) bigM(x, y float64) *path {
	fmt.Fprintf(&p.d, "M%s %s", fmtNum(x), fmtNum(y))
	return p
}

func (p *path) l(x, y float64) *path {
	fmt.Fprintf(&p.d, "l%s %s", fmtNum(x), fmtNum(y))
	return p
}

func (p *path) h(v float64) *path {
	fmt.Fprintf(&p.d, "h%s", fmtNum(v))
	return p
}

func (p *path) right(v float64) *path {
	return p.h(math.Max(0, v))
}

func (p *path) left(v float64) *path {
	return p.h(-math.Max(0, v))
}

func (p *path) v(v float64) *path {
	fmt.Fprintf(&p.d, "v%s", fmtNum(v))
	return p
}

func (p *path) down(v float64) *path {
	return p.v(math.Max(0, v))
}

func (p *path) up(v float64) *path {
	return p.v(-math.Max(0, v))
}

// ring draws a small circle of radius r, used by the sql start marker.
func (p *path) ring(r float64) *path {
	n := fmtNum(r)
	fmt.Fprintf(&p.d,
		"a %[1]s,%[1]s 0 0 1 -%[1]s,%[1]s %[1]s,%[1]s 0 0 1 -%[1]s,-%[1]s %[1]s,%[1]s 0 0 1 %[1]s,-%[1]s %[1]s,%[1]s 0 0 1 %[1]s,%[1]s z",
		n)
	return p
}

// arc draws a quarter circle. The two-letter sweep names the compass
// direction entered from and exited to, e.g. "ne" enters heading north and
// exits heading east.
func (p *path) arc(sweep string) *path {
	x, y := p.ar, p.ar
	if sweep[0] == 'e' || sweep[1] == 'w' {
		x = -x
	}
	if sweep[0] == 's' || sweep[1] == 'n' {
		y = -y
	}
	cw := 0
	switch sweep {
	case "ne", "es", "sw", "wn":
		cw = 1
	}
	fmt.Fprintf(&p.d, "a%s %s 0 0 %d %s %s", fmtNum(p.ar), fmtNum(p.ar), cw, fmtNum(x), fmtNum(y))
	return p
}

// arc8 draws an eighth of a circle, starting from the named compass octant
// and sweeping clockwise or counter-clockwise.
func (p *path) arc8(start, dir string) *path {
	arc := p.ar
	s2 := 1 / math.Sqrt2 * arc
	s2inv := arc - s2
	sweep := "0"
	if dir == "cw" {
		sweep = "1"
	}
	var dx, dy float64
	switch start + dir {
	case "ncw":
		dx, dy = s2, s2inv
	case "necw":
		dx, dy = s2inv, s2
	case "ecw":
		dx, dy = -s2inv, s2
	case "secw":
		dx, dy = -s2, s2inv
	case "scw":
		dx, dy = -s2, -s2inv
	case "swcw":
		dx, dy = -s2inv, -s2
	case "wcw":
		dx, dy = s2inv, -s2
	case "nwcw":
		dx, dy = s2, -s2inv
	case "nccw":
		dx, dy = -s2, s2inv
	case "nwccw":
		dx, dy = -s2inv, s2
	case "wccw":
		dx, dy = s2inv, s2
	case "swccw":
		dx, dy = s2, s2inv
	case "sccw":
		dx, dy = s2, -s2inv
	case "seccw":
		dx, dy = s2inv, -s2
	case "eccw":
		dx, dy = -s2inv, -s2
	case "neccw":
		dx, dy = -s2, -s2inv
	}
	fmt.Fprintf(&p.d, "a %s %s 0 0 %s %s %s", fmtNum(arc), fmtNum(arc), sweep, fmtNum(dx), fmtNum(dy))
	return p
}

func (p *path) writeSVG(buf *bytes.Buffer) {
	a := attrs{"d": p.d.String()}
	if p.class != "" {
		a["class"] = p.class
	}
	buf.WriteString("<path")
	writeAttrs(buf, a)
	buf.WriteString(" />")
}
