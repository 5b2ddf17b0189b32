package rail

import "unicode/utf8"

// textLeaf is the shared body of the text-bearing leaf elements.
type textLeaf struct {
	core
	text  string
	href  string
	title string
	cls   string
}

func (t *textLeaf) dict(element string) Dict {
	d := Dict{
		"element": element,
		"text":    t.text,
		"href":    nil,
		"title":   nil,
		"cls":     t.cls,
	}
	if t.href != "" {
		d["href"] = t.href
	}
	if t.title != "" {
		d["title"] = t.title
	}
	return d
}

// formatBody emits the centering connector stubs, then the box and the label,
// wiring up the optional link and tooltip.
func (t *textLeaf) formatBody(x, y float64, width float64, class string, box svgNode, textAttrs attrs) {
	p := t.params
	leftGap, rightGap := determineGaps(width, t.width, p.InternalAlignment)
	t.add(newPath(x, y, class+"1", p.AR).h(leftGap))
	t.add(newPath(x+leftGap+t.width, y, class+"2", p.AR).h(rightGap))
	if box != nil {
		t.add(box)
	}
	text := newSVGElement("text", textAttrs, textNode(t.text))
	if t.href != "" {
		t.add(newSVGElement("a", attrs{"xlink:href": t.href}, text))
	} else {
		t.add(text)
	}
	if t.title != "" {
		t.add(newSVGElement("title", attrs{}, textNode(t.title)))
	}
}

// Terminal is a literal token, drawn in a round-cornered box.
type Terminal struct {
	textLeaf
}

// NewTerminal builds a terminal for the given literal text.
func NewTerminal(p *Params, text string, opts ...TextOption) *Terminal {
	o := applyTextOptions(opts)
	t := &Terminal{textLeaf{
		core:  newCore("g", attrs{"class": "terminal " + o.cls}, p),
		text:  text,
		href:  o.href,
		title: o.title,
		cls:   o.cls,
	}}
	t.width = float64(utf8.RuneCountInString(text))*t.params.CharWidth + 20
	t.up = 11
	t.down = 11
	t.needsSpace = true
	addDebug(t, "Terminal")
	return t
}

func (t *Terminal) Format(x, y, width float64) Element {
	leftGap, _ := determineGaps(width, t.width, t.params.InternalAlignment)
	box := newSVGElement("rect", attrs{
		"x":      x + leftGap,
		"y":      y - 11,
		"width":  t.width,
		"height": t.up + t.down,
		"rx":     10.0,
		"ry":     10.0,
	})
	t.formatBody(x, y, width, "terminal term", box, attrs{
		"x": x + leftGap + t.width/2,
		"y": y + 4,
	})
	return t
}

func (t *Terminal) TextDiagram() *TextGrid {
	return t.params.glyphs().roundRectText(t.text)
}

func (t *Terminal) ToDict() Dict { return t.dict("Terminal") }
func (t *Terminal) Walk(fn func(Element)) { fn(t) }

// NonTerminal is a reference to another production, drawn in a square box.
type NonTerminal struct {
	textLeaf
}

// NewNonTerminal builds a non-terminal reference for the given rule name.
func NewNonTerminal(p *Params, text string, opts ...TextOption) *NonTerminal {
	o := applyTextOptions(opts)
	n := &NonTerminal{textLeaf{
		core:  newCore("g", attrs{"class": "non-terminal " + o.cls}, p),
		text:  text,
		href:  o.href,
		title: o.title,
		cls:   o.cls,
	}}
	n.width = float64(utf8.RuneCountInString(text))*n.params.CharWidth + 20
	n.up = 11
	n.down = 11
	n.needsSpace = true
	addDebug(n, "NonTerminal")
	return n
}

func (n *NonTerminal) Format(x, y, width float64) Element {
	leftGap, _ := determineGaps(width, n.width, n.params.InternalAlignment)
	box := newSVGElement("rect", attrs{
		"x":      x + leftGap,
		"y":      y - 11,
		"width":  n.width,
		"height": n.up + n.down,
	})
	n.formatBody(x, y, width, "nonterm nt", box, attrs{
		"x": x + leftGap + n.width/2,
		"y": y + 4,
	})
	return n
}

func (n *NonTerminal) TextDiagram() *TextGrid {
	return n.params.glyphs().rectText(n.text)
}

func (n *NonTerminal) ToDict() Dict { return n.dict("NonTerminal") }
func (n *NonTerminal) Walk(fn func(Element)) { fn(n) }

// Expression is prose standing in for structure the grammar doesn't spell
// out, drawn in a hexagonal box.
type Expression struct {
	textLeaf
}

// NewExpression builds an expression element for the given text.
func NewExpression(p *Params, text string, opts ...TextOption) *Expression {
	o := applyTextOptions(opts)
	e := &Expression{textLeaf{
		core:  newCore("g", attrs{"class": "expression " + o.cls}, p),
		text:  text,
		href:  o.href,
		title: o.title,
		cls:   o.cls,
	}}
	e.width = float64(utf8.RuneCountInString(text))*e.params.CharWidth + 40
	e.up = 11
	e.down = 11
	e.needsSpace = true
	addDebug(e, "Expression")
	return e
}

func (e *Expression) Format(x, y, width float64) Element {
	leftGap, _ := determineGaps(width, e.width, e.params.InternalAlignment)
	w := e.width
	h := e.up + e.down
	lx := x + leftGap
	points := fmtNum(lx+10) + ", " + fmtNum(y-11) +
		" " + fmtNum(lx+w-10) + ", " + fmtNum(y-11) +
		" " + fmtNum(lx+w) + ", " + fmtNum(y) +
		" " + fmtNum(lx+w-10) + ", " + fmtNum(y-11+h) +
		" " + fmtNum(lx+10) + ", " + fmtNum(y-11+h) +
		" " + fmtNum(lx) + ", " + fmtNum(y)
	box := newSVGElement("polygon", attrs{"points": points})
	e.formatBody(x, y, width, "expression exp", box, attrs{
		"x": lx + e.width/2,
		"y": y + 4,
	})
	return e
}

func (e *Expression) TextDiagram() *TextGrid {
	return e.params.glyphs().angleRectText(e.text)
}

func (e *Expression) ToDict() Dict { return e.dict("Expression") }
func (e *Expression) Walk(fn func(Element)) { fn(e) }

// Comment is an annotation on the rail line, drawn as bare smaller text.
type Comment struct {
	textLeaf
}

// NewComment builds a comment element for the given text.
func NewComment(p *Params, text string, opts ...TextOption) *Comment {
	o := applyTextOptions(opts)
	c := &Comment{textLeaf{
		core:  newCore("g", attrs{"class": "non-terminal " + o.cls}, p),
		text:  text,
		href:  o.href,
		title: o.title,
		cls:   o.cls,
	}}
	c.width = float64(utf8.RuneCountInString(text))*c.params.CommentCharWidth + 10
	c.up = 8
	c.down = 8
	c.needsSpace = true
	addDebug(c, "Comment")
	return c
}

func (c *Comment) Format(x, y, width float64) Element {
	leftGap, _ := determineGaps(width, c.width, c.params.InternalAlignment)
	c.formatBody(x, y, width, "comment com", nil, attrs{
		"x":     x + leftGap + c.width/2,
		"y":     y + 5,
		"class": "comment",
	})
	return c
}

func (c *Comment) TextDiagram() *TextGrid {
	return c.grid(0, 0, []string{c.text})
}

func (c *Comment) ToDict() Dict { return c.dict("Comment") }
func (c *Comment) Walk(fn func(Element)) { fn(c) }

// Skip is an empty rail segment, the "nothing" branch of optional paths.
type Skip struct {
	core
}

// NewSkip builds an empty pass-through element.
func NewSkip(p *Params) *Skip {
	s := &Skip{newCore("g", nil, p)}
	addDebug(s, "Skip")
	return s
}

func (s *Skip) Format(x, y, width float64) Element {
	s.add(newPath(x, y, "skip", s.params.AR).right(width))
	return s
}

func (s *Skip) TextDiagram() *TextGrid {
	return s.grid(0, 0, []string{s.params.glyphs().part("line")})
}

func (s *Skip) ToDict() Dict { return Dict{"element": "Skip"} }
func (s *Skip) Walk(fn func(Element)) { fn(s) }

// Start marks the diagram's entry. The simple variant draws the double
// crosstie, complex a single bar, and sql a filled circle; an optional label
// is drawn above the marker.
type Start struct {
	core
	typ   string
	label string
}

// NewStart builds a start marker of the given variant. An empty typ means
// TypeSimple; an empty label means no label.
func NewStart(p *Params, typ, label string) *Start {
	if typ == "" {
		typ = TypeSimple
	}
	s := &Start{core: newCore("g", nil, p), typ: typ, label: label}
	if label != "" {
		s.width = maxF(20, float64(utf8.RuneCountInString(label))*s.params.CharWidth+10)
	} else {
		s.width = 20
	}
	s.up = 10
	s.down = 10
	addDebug(s, "Start")
	return s
}

func (s *Start) Format(x, y, width float64) Element {
	switch s.typ {
	case TypeComplex:
		s.add(newPath(x, y-10, "start", s.params.AR).down(20).m(0, -10).right(s.width))
	case TypeSQL:
		s.add(newPath(x, y-10, "start", s.params.AR).m(0, 10).ring(3.7).bigM(x, y).right(s.width))
	default:
		s.add(newPath(x, y-10, "start", s.params.AR).down(20).m(10, -20).down(20).m(-10, -10).right(s.width))
	}
	if s.label != "" {
		s.add(newSVGElement("text",
			attrs{"x": x, "y": y - 15, "style": "text-anchor:start"},
			textNode(s.label)))
	}
	return s
}

func (s *Start) TextDiagram() *TextGrid {
	gs := s.params.glyphs()
	cross := gs.part("cross")
	line := gs.part("line")
	var start string
	switch s.typ {
	case TypeSimple:
		start = gs.part("tee_right") + cross + line
	case TypeSQL:
		start = gs.part("ball") + line
	default:
		start = gs.part("tee_right") + line
	}
	labelTD := newTextGrid(gs, 0, 0, nil)
	if s.label != "" {
		labelTD = newTextGrid(gs, 0, 0, []string{s.label})
		start = padR(start, labelTD.Width(), line)
	}
	startTD := newTextGrid(gs, 0, 0, []string{start})
	return labelTD.appendBelow(startTD, nil, true, true)
}

func (s *Start) ToDict() Dict {
	d := Dict{"element": "Start", "type": s.typ, "label": nil}
	if s.label != "" {
		d["label"] = s.label
	}
	return d
}

func (s *Start) Walk(fn func(Element)) { fn(s) }

// End marks the diagram's exit.
type End struct {
	core
	typ string
}

// NewEnd builds an end marker of the given variant. An empty typ means
// TypeSimple.
func NewEnd(p *Params, typ string) *End {
	if typ == "" {
		typ = TypeSimple
	}
	e := &End{core: newCore("path", nil, p), typ: typ}
	e.width = 20
	e.up = 10
	e.down = 10
	addDebug(e, "End")
	return e
}

func (e *End) Format(x, y, width float64) Element {
	e.attrs["class"] = "end"
	switch e.typ {
	case TypeComplex:
		e.attrs["d"] = "M " + fmtNum(x) + " " + fmtNum(y) + " h 20 m 0 -10 v 20"
	case TypeSQL:
		e.attrs["d"] = "M " + fmtNum(x) + " " + fmtNum(y) + " h 20 m -5 -5 5,5 -5,5"
	default:
		e.attrs["d"] = "M " + fmtNum(x) + " " + fmtNum(y) + " h 20 m -10 -10 v 20 m 10 -20 v 20"
	}
	return e
}

func (e *End) TextDiagram() *TextGrid {
	gs := e.params.glyphs()
	line := gs.part("line")
	var end string
	switch e.typ {
	case TypeSimple:
		end = line + gs.part("cross") + gs.part("tee_left")
	case TypeSQL:
		end = line + gs.part("arrow_right")
	default:
		end = line + gs.part("tee_left")
	}
	return e.grid(0, 0, []string{end})
}

func (e *End) ToDict() Dict { return Dict{"element": "End", "type": e.typ} }
func (e *End) Walk(fn func(Element)) { fn(e) }

// Arrow direction values.
const (
	DirectionRight = "right"
	DirectionLeft  = "left"
	DirectionNone  = "none"
)

// Arrow is a directional marker on the rail line.
type Arrow struct {
	core
	direction string
}

// NewArrow builds an arrow pointing in the given direction. An empty
// direction means DirectionRight.
func NewArrow(p *Params, direction string) *Arrow {
	if direction == "" {
		direction = DirectionRight
	}
	a := &Arrow{core: newCore("path", nil, p), direction: direction}
	a.width = 20
	a.up = 10
	a.down = 10
	addDebug(a, "Arrow")
	return a
}

func (a *Arrow) Format(x, y, width float64) Element {
	a.attrs["class"] = "arrow"
	switch a.direction {
	case DirectionRight:
		a.attrs["d"] = "M " + fmtNum(x) + " " + fmtNum(y) + " h " + fmtNum(width) + " m -5 -5 5,5 -5,5"
	case DirectionLeft:
		a.attrs["d"] = "M " + fmtNum(x) + " " + fmtNum(y) + " m 5 -5 -5,5 5,5 -5,-5 h " + fmtNum(width)
	default:
		a.attrs["d"] = "M " + fmtNum(x) + " " + fmtNum(y) + " h " + fmtNum(width)
	}
	return a
}

func (a *Arrow) TextDiagram() *TextGrid {
	gs := a.params.glyphs()
	line := gs.part("line")
	var arrow string
	switch a.direction {
	case DirectionRight:
		arrow = line + gs.part("arrow_right") + line
	case DirectionLeft:
		arrow = line + gs.part("arrow_left") + line
	default:
		arrow = line + line + line
	}
	return a.grid(0, 0, []string{arrow})
}

func (a *Arrow) ToDict() Dict { return Dict{"element": "Arrow", "direction": a.direction} }
func (a *Arrow) Walk(fn func(Element)) { fn(a) }
