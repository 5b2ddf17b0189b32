package rail

// OneOrMore runs an item at least once, with a return rail underneath that
// loops through an optional repeat element.
type OneOrMore struct {
	core
	item Element
	rep  Element
}

// NewOneOrMore builds a loop around item. repeat sits on the return rail; nil
// means an empty return rail.
func NewOneOrMore(p *Params, item, repeat Element) *OneOrMore {
	o := &OneOrMore{core: newCore("g", nil, p), item: item, rep: repeat}
	if o.rep == nil {
		o.rep = NewSkip(p)
	}
	ar, vs := o.params.AR, o.params.VS
	o.width = maxF(o.item.Width(), o.rep.Width()) + ar*2
	o.height = o.item.Height()
	o.up = o.item.Up()
	o.down = maxF(ar*2, o.item.Down()+vs+o.rep.Up()+o.rep.Height()+o.rep.Down())
	o.needsSpace = true
	addDebug(o, "OneOrMore")
	return o
}

func (o *OneOrMore) Format(x, y, width float64) Element {
	p := o.params
	ar, vs := p.AR, p.VS
	leftGap, rightGap := determineGaps(width, o.width, p.InternalAlignment)

	// Hook up the two sides if narrower than the stated width.
	o.add(newPath(x, y, "oneor oom1", ar).h(leftGap))
	o.add(newPath(x+leftGap+o.width, y+o.height, "oneor oom2", ar).h(rightGap))
	x += leftGap

	// Draw item
	o.add(newPath(x, y, "oneor oom3", ar).right(ar))
	o.add(o.item.Format(x+ar, y, o.width-ar*2))
	o.add(newPath(x+o.width-ar, y+o.height, "oneor oom4", ar).right(ar))

	// Draw repeat arc
	distanceFromY := maxF(ar*2, o.item.Height()+o.item.Down()+vs+o.rep.Up())
	o.add(newPath(x+ar, y, "oneor oom5", ar).
		arc("nw").down(distanceFromY - ar*2).arc("ws"))
	o.add(o.rep.Format(x+ar, y+distanceFromY, o.width-ar*2))
	o.add(newPath(x+o.width-ar, y+distanceFromY+o.rep.Height(), "oneor oom6", ar).
		arc("se").up(distanceFromY - ar*2 + o.rep.Height() - o.item.Height()).arc("en"))
	return o
}

func (o *OneOrMore) TextDiagram() *TextGrid {
	gs := o.params.glyphs()
	line := gs.part("line")
	repeatTopLeft := gs.part("repeat_top_left")
	repeatLeft := gs.part("repeat_left")
	repeatBotLeft := gs.part("repeat_bot_left")
	repeatTopRight := gs.part("repeat_top_right")
	repeatRight := gs.part("repeat_right")
	repeatBotRight := gs.part("repeat_bot_right")

	// Format the item and the repeat, and stack the repeat underneath.
	itemTD := o.item.TextDiagram()
	repeatTD := o.rep.TextDiagram()
	width := itemTD.Width()
	if repeatTD.Width() > width {
		width = repeatTD.Width()
	}
	repeatTD = repeatTD.expand(0, width-repeatTD.Width(), 0, 0)
	itemTD = itemTD.expand(0, width-itemTD.Width(), 0, 0)
	itemAndRepeatTD := itemTD.appendBelow(repeatTD, nil, false, false)

	// Build the left side of the repeat rail and append the combined item
	// and repeat to its right.
	leftLines := []string{repeatTopLeft + line}
	for i := 0; i < (itemTD.Height()-itemTD.Entry())+repeatTD.Entry()-1; i++ {
		leftLines = append(leftLines, repeatLeft+" ")
	}
	leftLines = append(leftLines, repeatBotLeft+line)
	leftTD := newTextGrid(gs, 0, 0, leftLines)
	leftTD = leftTD.appendRight(itemAndRepeatTD, "")

	// Build the right side of the repeat rail and append it to the right of
	// everything else.
	rightLines := []string{line + repeatTopRight}
	for i := 0; i < (itemTD.Height()-itemTD.Exit())+repeatTD.Exit()-1; i++ {
		rightLines = append(rightLines, " "+repeatRight)
	}
	rightLines = append(rightLines, line+repeatBotRight)
	rightTD := newTextGrid(gs, 0, 0, rightLines)
	return leftTD.appendRight(rightTD, "")
}

func (o *OneOrMore) ToDict() Dict {
	return Dict{
		"element": "OneOrMore",
		"item":    o.item.ToDict(),
		"repeat":  o.rep.ToDict(),
	}
}

func (o *OneOrMore) Walk(fn func(Element)) {
	fn(o)
	o.item.Walk(fn)
	o.rep.Walk(fn)
}

// Group draws a box around an item, optionally labeled, to call out a section
// of the diagram.
type Group struct {
	core
	item  Element
	label Element
	boxUp float64
}

// NewGroup builds a group around item. label may be nil.
func NewGroup(p *Params, item, label Element) *Group {
	g := &Group{core: newCore("g", nil, p), item: item, label: label}
	ar, vs := g.params.AR, g.params.VS
	labelWidth := 0.0
	if g.label != nil {
		labelWidth = g.label.Width()
	}
	g.width = maxF(maxF(spaced(g.item, 20), labelWidth), ar*2)
	g.height = g.item.Height()
	g.boxUp = maxF(g.item.Up()+vs, ar)
	g.up = g.boxUp
	if g.label != nil {
		g.up += g.label.Up() + g.label.Height() + g.label.Down()
	}
	g.down = maxF(g.item.Down()+vs, ar)
	g.needsSpace = true
	addDebug(g, "Group")
	return g
}

// NewLabeledGroup builds a group with a plain-text label, rendered as a
// Comment above the box.
func NewLabeledGroup(p *Params, item Element, label string) *Group {
	return NewGroup(p, item, NewComment(p, label))
}

func (g *Group) Format(x, y, width float64) Element {
	p := g.params
	leftGap, rightGap := determineGaps(width, g.width, p.InternalAlignment)
	g.add(newPath(x, y, "group gr1", p.AR).h(leftGap))
	g.add(newPath(x+leftGap+g.width, y+g.height, "group gr2", p.AR).h(rightGap))
	x += leftGap

	g.add(newSVGElement("rect", attrs{
		"x":      x,
		"y":      y - g.boxUp,
		"width":  g.width,
		"height": g.boxUp + g.height + g.down,
		"rx":     p.AR,
		"ry":     p.AR,
		"class":  "group-box",
	}))

	g.add(g.item.Format(x, y, g.width))
	if g.label != nil {
		g.add(g.label.Format(
			x,
			y-(g.boxUp+g.label.Down()+g.label.Height()),
			g.label.Width()))
	}
	return g
}

func (g *Group) TextDiagram() *TextGrid {
	gs := g.params.glyphs()
	diagramTD := gs.roundRect(g.item.TextDiagram(), true)
	if g.label != nil {
		labelTD := g.label.TextDiagram()
		diagramTD = labelTD.appendBelow(diagramTD, nil, true, true).expand(0, 0, 1, 0)
	}
	return diagramTD
}

func (g *Group) ToDict() Dict {
	d := Dict{"element": "Group", "item": g.item.ToDict(), "label": nil}
	if g.label != nil {
		d["label"] = g.label.ToDict()
	}
	return d
}

func (g *Group) Walk(fn func(Element)) {
	fn(g)
	g.item.Walk(fn)
	if g.label != nil {
		g.label.Walk(fn)
	}
}
