package rail

import (
	"strings"

	"github.com/railyard/railyard/pkg/errors"
)

// Choice branches between alternatives stacked vertically, with the default
// branch on the main line.
type Choice struct {
	core
	defaultIdx int
	items      []Element
	separators []float64
}

// NewChoice builds a choice between the given items. defaultIdx selects the
// branch drawn on the main line.
func NewChoice(p *Params, defaultIdx int, items ...Element) (*Choice, error) {
	if len(items) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyItems, "choice needs at least one item")
	}
	if defaultIdx < 0 || defaultIdx >= len(items) {
		return nil, errors.New(errors.ErrCodeInvalidDefault,
			"default index %d out of range for %d items", defaultIdx, len(items))
	}
	c := &Choice{core: newCore("g", nil, p), defaultIdx: defaultIdx, items: items}
	ar, vs := c.params.AR, c.params.VS
	for _, item := range c.items {
		c.width = maxF(c.width, item.Width())
	}
	c.width += ar * 4

	// The vertical separations between adjacent branches. The calculation is
	// non-trivial and needed again in Format, so it is kept.
	c.separators = make([]float64, len(items)-1)
	for i := range c.separators {
		c.separators[i] = vs
	}

	// If the entry or exit lines would be too close together to accommodate
	// the arcs, bump up the vertical separation to compensate.
	for i := defaultIdx - 1; i >= 0; i-- {
		arcs := ar
		if i == defaultIdx-1 {
			arcs = ar * 2
		}
		item := c.items[i]
		lower := c.items[i+1]
		entryDelta := lower.Up() + vs + item.Down() + item.Height()
		exitDelta := lower.Height() + lower.Up() + vs + item.Down()
		separator := vs
		if exitDelta < arcs || entryDelta < arcs {
			separator += maxF(arcs-entryDelta, arcs-exitDelta)
		}
		c.separators[i] = separator
		c.up += lower.Up() + separator + item.Down() + item.Height()
	}
	c.up += c.items[0].Up()

	c.height = c.items[defaultIdx].Height()

	for i := defaultIdx + 1; i < len(c.items); i++ {
		arcs := ar
		if i == defaultIdx+1 {
			arcs = ar * 2
		}
		item := c.items[i]
		upper := c.items[i-1]
		entryDelta := upper.Height() + upper.Down() + vs + item.Up()
		exitDelta := upper.Down() + vs + item.Up() + item.Height()
		separator := vs
		if entryDelta < arcs || exitDelta < arcs {
			separator += maxF(arcs-entryDelta, arcs-exitDelta)
		}
		c.separators[i-1] = separator
		c.down += upper.Down() + separator + item.Up() + item.Height()
	}
	c.down += c.items[len(c.items)-1].Down()
	addDebug(c, "Choice")
	return c, nil
}

func (c *Choice) Format(x, y, width float64) Element {
	p := c.params
	ar := p.AR
	leftGap, rightGap := determineGaps(width, c.width, p.InternalAlignment)

	// Hook up the two sides if the choice is narrower than its stated width.
	c.add(newPath(x, y, "choice ch1", ar).h(leftGap))
	c.add(newPath(x+leftGap+c.width, y+c.height, "choice ch2", ar).h(rightGap))
	x += leftGap

	innerWidth := c.width - ar*4
	def := c.items[c.defaultIdx]

	// The branches that curve above the main line.
	distanceFromY := 0.0
	for i := c.defaultIdx - 1; i >= 0; i-- {
		item := c.items[i]
		lower := c.items[i+1]
		distanceFromY += lower.Up() + c.separators[i] + item.Down() + item.Height()
		c.add(newPath(x, y, "choice ch3", ar).
			arc("se").up(distanceFromY - ar*2).arc("wn"))
		c.add(item.Format(x+ar*2, y-distanceFromY, innerWidth))
		c.add(newPath(x+ar*2+innerWidth, y-distanceFromY+item.Height(), "choice ch4", ar).
			arc("ne").down(distanceFromY - item.Height() + def.Height() - ar*2).arc("ws"))
	}

	// The straight-line branch.
	c.add(newPath(x, y, "choice ch5", ar).right(ar * 2))
	c.add(def.Format(x+ar*2, y, innerWidth))
	c.add(newPath(x+ar*2+innerWidth, y+c.height, "choice ch6", ar).right(ar * 2))

	// The branches that curve below the main line.
	distanceFromY = 0
	for i := c.defaultIdx + 1; i < len(c.items); i++ {
		item := c.items[i]
		upper := c.items[i-1]
		distanceFromY += upper.Height() + upper.Down() + c.separators[i-1] + item.Up()
		c.add(newPath(x, y, "choice ch7", ar).
			arc("ne").down(distanceFromY - ar*2).arc("ws"))
		c.add(item.Format(x+ar*2, y+distanceFromY, innerWidth))
		c.add(newPath(x+ar*2+innerWidth, y+distanceFromY+item.Height(), "choice ch8", ar).
			arc("se").up(distanceFromY - ar*2 + item.Height() - def.Height()).arc("wn"))
	}
	return c
}

func (c *Choice) TextDiagram() *TextGrid {
	return choiceTextDiagram(&c.core, c.items, c.defaultIdx)
}

// choiceTextDiagram is shared between Choice and MultipleChoice.
func choiceTextDiagram(c *core, items []Element, defaultIdx int) *TextGrid {
	gs := c.params.glyphs()
	cross := gs.part("cross")
	line := gs.part("line")
	lineVertical := gs.part("line_vertical")
	roundBotLeft := gs.part("round_corner_bot_left")
	roundBotRight := gs.part("round_corner_bot_right")
	roundTopLeft := gs.part("round_corner_top_left")
	roundTopRight := gs.part("round_corner_top_right")

	// Format all the child items, so we can know the maximum width.
	itemTDs := make([]*TextGrid, 0, len(items))
	maxItemWidth := 0
	for _, item := range items {
		td := item.TextDiagram().expand(1, 1, 0, 0)
		itemTDs = append(itemTDs, td)
		if td.Width() > maxItemWidth {
			maxItemWidth = td.Width()
		}
	}
	diagramTD := newTextGrid(gs, 0, 0, nil)
	for itemNum, itemTD := range itemTDs {
		leftPad, rightPad := textGaps(maxItemWidth, itemTD.Width(), c.params.InternalAlignment)
		itemTD = itemTD.expand(leftPad, rightPad, 0, 0)
		hasSeparator := true
		leftLines := make([]string, itemTD.Height())
		rightLines := make([]string, itemTD.Height())
		for i := range leftLines {
			leftLines[i] = lineVertical
			rightLines[i] = lineVertical
		}
		moveEntry := false
		moveExit := false
		if itemNum <= defaultIdx {
			// Item above the line: round off the entry/exit lines upwards.
			leftLines[itemTD.Entry()] = roundTopLeft
			rightLines[itemTD.Exit()] = roundTopRight
			if itemNum == 0 {
				// First item and above the line: remove the ascenders above
				// the entry and exit, and suppress the separator above it.
				hasSeparator = false
				for i := 0; i < itemTD.Entry(); i++ {
					leftLines[i] = " "
				}
				for i := 0; i < itemTD.Exit(); i++ {
					rightLines[i] = " "
				}
			}
		}
		if itemNum >= defaultIdx {
			// Item below the line: round off the entry/exit lines downwards.
			leftLines[itemTD.Entry()] = roundBotLeft
			rightLines[itemTD.Exit()] = roundBotRight
			if itemNum == 0 {
				hasSeparator = false
			}
			if itemNum == len(items)-1 {
				// Last item and below the line: remove the descenders below
				// the entry and exit.
				for i := itemTD.Entry() + 1; i < itemTD.Height(); i++ {
					leftLines[i] = " "
				}
				for i := itemTD.Exit() + 1; i < itemTD.Height(); i++ {
					rightLines[i] = " "
				}
			}
		}
		if itemNum == defaultIdx {
			// Item on the line: entry/exit are horizontal, and set the outer
			// entry/exit.
			leftLines[itemTD.Entry()] = cross
			rightLines[itemTD.Exit()] = cross
			moveEntry = true
			moveExit = true
			if itemNum == 0 && itemNum == len(items)-1 {
				// Only item and on the line: straight through.
				leftLines[itemTD.Entry()] = line
				rightLines[itemTD.Exit()] = line
			} else if itemNum == 0 {
				// First item and on the line: no ascenders.
				leftLines[itemTD.Entry()] = roundTopRight
				rightLines[itemTD.Exit()] = roundTopLeft
			} else if itemNum == len(items)-1 {
				// Last item and on the line: no descenders.
				leftLines[itemTD.Entry()] = roundBotRight
				rightLines[itemTD.Exit()] = roundBotLeft
			}
		}
		leftJointTD := newTextGrid(gs, itemTD.Entry(), itemTD.Entry(), leftLines)
		rightJointTD := newTextGrid(gs, itemTD.Exit(), itemTD.Exit(), rightLines)
		itemTD = leftJointTD.appendRight(itemTD, "").appendRight(rightJointTD, "")
		var separator []string
		if hasSeparator {
			width := diagramTD.Width()
			if itemTD.Width() > width {
				width = itemTD.Width()
			}
			separator = []string{lineVertical + strings.Repeat(" ", width-2) + lineVertical}
		}
		diagramTD = diagramTD.appendBelow(itemTD, separator, moveEntry, moveExit)
	}
	return diagramTD
}

func (c *Choice) ToDict() Dict {
	return Dict{
		"element": "Choice",
		"default": c.defaultIdx,
		"items":   itemDicts(c.items),
	}
}

func (c *Choice) Walk(fn func(Element)) {
	fn(c)
	for _, item := range c.items {
		item.Walk(fn)
	}
}

// Optional wraps an item in a choice against an empty path. With skip set the
// empty path is the default.
func Optional(p *Params, item Element, skip bool) *Choice {
	defaultIdx := 1
	if skip {
		defaultIdx = 0
	}
	c, err := NewChoice(p, defaultIdx, NewSkip(p), item)
	if err != nil {
		// Two items and a 0/1 default cannot fail validation.
		panic(err)
	}
	return c
}

// ZeroOrMore wraps an item in an optional loop: an empty path around a
// OneOrMore of the item. repeat may be nil.
func ZeroOrMore(p *Params, item, repeat Element, skip bool) *Choice {
	return Optional(p, NewOneOrMore(p, item, repeat), skip)
}

// MultipleChoice type values.
const (
	ChoiceAny = "any"
	ChoiceAll = "all"
)

// MultipleChoice branches like a Choice but allows taking several branches,
// once each, in any order. The type is ChoiceAny (one or more) or ChoiceAll.
type MultipleChoice struct {
	core
	defaultIdx int
	typ        string
	items      []Element
	innerWidth float64
}

// NewMultipleChoice builds a multiple choice between the given items.
func NewMultipleChoice(p *Params, defaultIdx int, typ string, items ...Element) (*MultipleChoice, error) {
	if len(items) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyItems, "multiple choice needs at least one item")
	}
	if defaultIdx < 0 || defaultIdx >= len(items) {
		return nil, errors.New(errors.ErrCodeInvalidDefault,
			"default index %d out of range for %d items", defaultIdx, len(items))
	}
	if typ != ChoiceAny && typ != ChoiceAll {
		return nil, errors.New(errors.ErrCodeInvalidChoiceType,
			"multiple choice type must be %q or %q, got %q", ChoiceAny, ChoiceAll, typ)
	}
	m := &MultipleChoice{core: newCore("g", nil, p), defaultIdx: defaultIdx, typ: typ, items: items}
	ar, vs := m.params.AR, m.params.VS
	m.needsSpace = true
	for _, item := range m.items {
		m.innerWidth = maxF(m.innerWidth, item.Width())
	}
	m.width = 30 + ar + m.innerWidth + ar + 20
	m.up = m.items[0].Up()
	m.down = m.items[len(m.items)-1].Down()
	m.height = m.items[defaultIdx].Height()
	for i, item := range m.items {
		minimum := ar
		if i == defaultIdx-1 || i == defaultIdx+1 {
			minimum = 10 + ar
		}
		switch {
		case i < defaultIdx:
			m.up += maxF(minimum, item.Height()+item.Down()+vs+m.items[i+1].Up())
		case i == defaultIdx:
			// Counted in m.height.
		default:
			m.down += maxF(minimum, item.Up()+vs+m.items[i-1].Down()+m.items[i-1].Height())
		}
	}
	m.down -= m.items[defaultIdx].Height() // already counted in m.height
	addDebug(m, "MultipleChoice")
	return m, nil
}

func (m *MultipleChoice) Format(x, y, width float64) Element {
	p := m.params
	ar, vs := p.AR, p.VS
	leftGap, rightGap := determineGaps(width, m.width, p.InternalAlignment)

	// Hook up the two sides if narrower than the stated width.
	m.add(newPath(x, y, "multichoice mc1", ar).h(leftGap))
	m.add(newPath(x+leftGap+m.width, y+m.height, "multichoice mc2", ar).h(rightGap))
	x += leftGap

	def := m.items[m.defaultIdx]

	// The branches that curve above the main line.
	above := make([]Element, 0, m.defaultIdx)
	for i := m.defaultIdx - 1; i >= 0; i-- {
		above = append(above, m.items[i])
	}
	distanceFromY := 0.0
	if len(above) > 0 {
		distanceFromY = maxF(10+ar, def.Up()+vs+above[0].Down()+above[0].Height())
	}
	for i, item := range above {
		m.add(newPath(x+30, y, "multichoice mc3", ar).
			up(distanceFromY - ar).arc("wn"))
		m.add(item.Format(x+30+ar, y-distanceFromY, m.innerWidth))
		m.add(newPath(x+30+ar+m.innerWidth, y-distanceFromY+item.Height(), "multichoice mc4", ar).
			arc("ne").down(distanceFromY - item.Height() + def.Height() - ar - 10))
		if i+1 < len(above) {
			distanceFromY += maxF(ar, item.Up()+vs+above[i+1].Down()+above[i+1].Height())
		}
	}

	// The straight-line branch.
	m.add(newPath(x+30, y, "multichoice mc5", ar).right(ar))
	m.add(def.Format(x+30+ar, y, m.innerWidth))
	m.add(newPath(x+30+ar+m.innerWidth, y+m.height, "multichoice mc6", ar).right(ar))

	// The branches that curve below the main line.
	below := m.items[m.defaultIdx+1:]
	if len(below) > 0 {
		distanceFromY = maxF(10+ar, def.Height()+def.Down()+vs+below[0].Up())
	}
	for i, item := range below {
		m.add(newPath(x+30, y, "multichoice mc7", ar).
			down(distanceFromY - ar).arc("ws"))
		m.add(item.Format(x+30+ar, y+distanceFromY, m.innerWidth))
		m.add(newPath(x+30+ar+m.innerWidth, y+distanceFromY+item.Height(), "multichoice mc8", ar).
			arc("se").up(distanceFromY - ar + item.Height() - def.Height() - 10))
		next := 0.0
		if i+1 < len(below) {
			next = below[i+1].Up()
		}
		distanceFromY += maxF(ar, item.Height()+item.Down()+vs+next)
	}

	// The "1+"/"all" badge on the left and the repeat badge on the right.
	text := newSVGElement("g", attrs{"class": "diagram-text"})
	m.add(text)
	title := "take all branches, once each, in any order"
	badge := "all"
	if m.typ == ChoiceAny {
		title = "take one or more branches, once each, in any order"
		badge = "1+"
	}
	text.children = append(text.children,
		newSVGElement("title", attrs{}, textNode(title)),
		newSVGElement("path", attrs{
			"d": "M " + fmtNum(x+30) + " " + fmtNum(y-10) +
				" h -26 a 4 4 0 0 0 -4 4 v 12 a 4 4 0 0 0 4 4 h 26 z",
			"class": "diagram-text",
		}),
		newSVGElement("text", attrs{
			"x":     x + 15,
			"y":     y + 4,
			"class": "diagram-text",
		}, textNode(badge)),
		newSVGElement("path", attrs{
			"d": "M " + fmtNum(x+m.width-20) + " " + fmtNum(y-10) +
				" h 16 a 4 4 0 0 1 4 4 v 12 a 4 4 0 0 1 -4 4 h -16 z",
			"class": "diagram-text",
		}),
		newSVGElement("text", attrs{
			"x":     x + m.width - 10,
			"y":     y + 4,
			"class": "diagram-arrow",
		}, textNode("↺")),
	)
	return m
}

func (m *MultipleChoice) TextDiagram() *TextGrid {
	gs := m.params.glyphs()
	badge := "all"
	if m.typ == ChoiceAny {
		badge = "1+"
	}
	anyAll := gs.rectText(badge)
	diagramTD := choiceTextDiagram(&m.core, m.items, m.defaultIdx)
	repeatTD := gs.rectText(gs.part("multi_repeat"))
	diagramTD = anyAll.appendRight(diagramTD, "")
	return diagramTD.appendRight(repeatTD, "")
}

func (m *MultipleChoice) ToDict() Dict {
	return Dict{
		"element": "MultipleChoice",
		"default": m.defaultIdx,
		"type":    m.typ,
		"items":   itemDicts(m.items),
	}
}

func (m *MultipleChoice) Walk(fn func(Element)) {
	fn(m)
	for _, item := range m.items {
		item.Walk(fn)
	}
}

// HorizontalChoice branches between alternatives laid out side by side, with
// a track over the top and under the bottom connecting them.
type HorizontalChoice struct {
	core
	items      []Element
	upperTrack float64
	lowerTrack float64
}

// NewHorizontalChoice builds a horizontal choice. With a single item there is
// nothing to choose, so it degrades to a plain Sequence.
func NewHorizontalChoice(p *Params, items ...Element) (Element, error) {
	if len(items) <= 1 {
		return NewSequence(p, items...)
	}
	h := &HorizontalChoice{core: newCore("g", nil, p), items: items}
	ar, vs := h.params.AR, h.params.VS
	allButLast := h.items[:len(h.items)-1]
	middles := h.items[1 : len(h.items)-1]
	first := h.items[0]
	last := h.items[len(h.items)-1]

	h.width = ar + // starting track
		ar*2*float64(len(h.items)-1) // in-between tracks
	for _, item := range h.items {
		h.width += spaced(item, 20)
	}
	if last.Height() > 0 { // needs space to curve up
		h.width += ar
	}
	h.width += ar // ending track

	// Always exits at entrance height.

	// All but the last have a track running above them.
	maxUp := 0.0
	for _, item := range allButLast {
		maxUp = maxF(maxUp, item.Up())
	}
	h.upperTrack = maxF(ar*2, maxF(vs, maxUp+vs))
	h.up = maxF(h.upperTrack, last.Up())

	// All but the first have a track running below them. The last either
	// straight-lines or curves up, so it has a different calculation.
	middleMax := 0.0
	for _, item := range middles {
		middleMax = maxF(middleMax, item.Height()+maxF(item.Down()+vs, ar*2))
	}
	h.lowerTrack = maxF(vs, maxF(middleMax, last.Height()+last.Down()+vs))
	if first.Height() < h.lowerTrack {
		// Ensure room between the first exit and the lower track.
		h.lowerTrack = maxF(h.lowerTrack, first.Height()+ar*2)
	}
	h.down = maxF(h.lowerTrack, first.Height()+first.Down())
	addDebug(h, "HorizontalChoice")
	return h, nil
}

func (h *HorizontalChoice) Format(x, y, width float64) Element {
	p := h.params
	ar := p.AR
	leftGap, rightGap := determineGaps(width, h.width, p.InternalAlignment)
	h.add(newPath(x, y, "horizchoice hc1", ar).h(leftGap))
	h.add(newPath(x+leftGap+h.width, y+h.height, "horizchoice hc2", ar).h(rightGap))
	x += leftGap

	first := h.items[0]
	last := h.items[len(h.items)-1]

	// upper track
	upperSpan := float64(len(h.items)-2)*ar*2 - ar
	for _, item := range h.items[:len(h.items)-1] {
		upperSpan += spaced(item, 20)
	}
	h.add(newPath(x, y, "horizchoice hc3", ar).
		arc("se").
		up(h.upperTrack - ar*2).
		arc("wn").
		h(upperSpan))

	// lower track
	lowerSpan := float64(len(h.items)-2)*ar*2 - ar
	for _, item := range h.items[1:] {
		lowerSpan += spaced(item, 20)
	}
	if last.Height() > 0 {
		lowerSpan += ar
	}
	lowerStart := x + ar + spaced(first, 20) + ar*2
	h.add(newPath(lowerStart, y+h.lowerTrack, "horizchoice hc4", ar).
		h(lowerSpan).
		arc("se").
		up(h.lowerTrack - ar*2).
		arc("wn"))

	// items
	for i, item := range h.items {
		// input track
		if i == 0 {
			h.add(newPath(x, y, "horizchoice hc5", ar).h(ar))
			x += ar
		} else {
			h.add(newPath(x, y-h.upperTrack, "horizchoice hc6", ar).
				arc("ne").
				v(h.upperTrack - ar*2).
				arc("ws"))
			x += ar * 2
		}

		// item
		itemWidth := spaced(item, 20)
		h.add(item.Format(x, y, itemWidth))
		x += itemWidth

		// output track
		if i == len(h.items)-1 {
			if item.Height() == 0 {
				h.add(newPath(x, y, "horizchoice hc7", ar).h(ar))
			} else {
				h.add(newPath(x, y+item.Height(), "horizchoice hc8", ar).arc("se"))
			}
		} else if i == 0 && item.Height() > h.lowerTrack {
			// Needs to arc up to meet the lower track, not down.
			if item.Height()-h.lowerTrack >= ar*2 {
				h.add(newPath(x, y+item.Height(), "horizchoice hc9", ar).
					arc("se").
					v(h.lowerTrack - item.Height() + ar*2).
					arc("wn"))
			} else {
				// Not enough room for two arcs, so draw a straight line.
				h.add(newPath(x, y+item.Height(), "horizchoice hc10", ar).
					l(ar*2, h.lowerTrack-item.Height()))
			}
		} else {
			h.add(newPath(x, y+item.Height(), "horizchoice hc11", ar).
				arc("ne").
				v(h.lowerTrack - item.Height() - ar*2).
				arc("ws"))
		}
	}
	return h
}

func (h *HorizontalChoice) TextDiagram() *TextGrid {
	gs := h.params.glyphs()
	line := gs.part("line")
	lineVertical := gs.part("line_vertical")
	roundBotLeft := gs.part("round_corner_bot_left")
	roundBotRight := gs.part("round_corner_bot_right")
	roundTopLeft := gs.part("round_corner_top_left")
	roundTopRight := gs.part("round_corner_top_right")

	// Format all the child items, so we can know the maximum entry, exit,
	// and height.
	itemTDs := make([]*TextGrid, 0, len(h.items))
	for _, item := range h.items {
		itemTDs = append(itemTDs, item.TextDiagram())
	}
	// diagramEntry: distance from top to the lowest entry, which becomes the
	// final diagram entry and exit.
	diagramEntry := 0
	for _, td := range itemTDs {
		if td.Entry() > diagramEntry {
			diagramEntry = td.Entry()
		}
	}
	// soilToBaseline: distance from the skip-over-items line to the
	// rightmost entry.
	soilToBaseline := 0
	for _, td := range itemTDs[:len(itemTDs)-1] {
		if td.Entry() > soilToBaseline {
			soilToBaseline = td.Entry()
		}
	}
	topToSOIL := diagramEntry - soilToBaseline
	// baselineToSUIL: distance from the entry line down to the
	// skip-under-items line.
	baselineToSUIL := 0
	for _, td := range itemTDs[1:] {
		min := td.Entry()
		if td.Exit() < min {
			min = td.Exit()
		}
		if v := td.Height() - min; v > baselineToSUIL {
			baselineToSUIL = v
		}
	}
	baselineToSUIL--

	// The diagram starts with a line from its entry up to the
	// skip-over-items line:
	var lines []string
	for i := 0; i < topToSOIL; i++ {
		lines = append(lines, "  ")
	}
	lines = append(lines, roundTopLeft+line)
	for i := 0; i < soilToBaseline; i++ {
		lines = append(lines, lineVertical+" ")
	}
	lines = append(lines, roundBotRight+line)
	diagramTD := newTextGrid(gs, len(lines)-1, len(lines)-1, lines)
	for itemNum, itemTD := range itemTDs {
		if itemNum > 0 {
			// All items except the leftmost start with a line from the
			// skip-over-items line down to their entry, with a joining-line
			// across at the skip-under-items line:
			lines = nil
			for i := 0; i < topToSOIL; i++ {
				lines = append(lines, "  ")
			}
			// All such items except the rightmost also continue the
			// skip-over-items line:
			lineToNextItem := line
			if itemNum == len(itemTDs)-1 {
				lineToNextItem = " "
			}
			lines = append(lines, roundTopRight+lineToNextItem)
			for i := 0; i < soilToBaseline; i++ {
				lines = append(lines, lineVertical+" ")
			}
			lines = append(lines, roundBotLeft+line)
			for i := 0; i < baselineToSUIL; i++ {
				lines = append(lines, "  ")
			}
			lines = append(lines, line+line)
			entryTD := newTextGrid(gs, diagramTD.Exit(), diagramTD.Exit(), lines)
			diagramTD = diagramTD.appendRight(entryTD, "")
		}
		partTD := newTextGrid(gs, 0, 0, nil)
		if itemNum < len(itemTDs)-1 {
			// All items except the rightmost have a segment of the
			// skip-over-items line at the top, followed by blank lines to
			// push their entry down to the previous item's exit:
			lines = nil
			lines = append(lines, strings.Repeat(line, itemTD.Width()))
			for i := 0; i < soilToBaseline-itemTD.Entry(); i++ {
				lines = append(lines, strings.Repeat(" ", itemTD.Width()))
			}
			soilSegment := newTextGrid(gs, 0, 0, lines)
			partTD = partTD.appendBelow(soilSegment, nil, false, false)
		}
		partTD = partTD.appendBelow(itemTD, nil, true, true)
		if itemNum > 0 {
			// All items except the leftmost end with blank lines padding
			// down to the skip-under-items line, then a segment of it:
			lines = nil
			for i := 0; i < baselineToSUIL-(itemTD.Height()-itemTD.Entry())+1; i++ {
				lines = append(lines, strings.Repeat(" ", itemTD.Width()))
			}
			lines = append(lines, strings.Repeat(line, itemTD.Width()))
			suilSegment := newTextGrid(gs, 0, 0, lines)
			partTD = partTD.appendBelow(suilSegment, nil, false, false)
		}
		diagramTD = diagramTD.appendRight(partTD, "")
		if itemNum < len(itemTDs)-1 {
			// All items except the rightmost have a line from their exit
			// down to the skip-under-items line, with a joining-line across
			// at the skip-over-items line:
			lines = nil
			for i := 0; i < topToSOIL; i++ {
				lines = append(lines, "  ")
			}
			lines = append(lines, line+line)
			for i := 0; i < diagramTD.Exit()-topToSOIL-1; i++ {
				lines = append(lines, "  ")
			}
			lines = append(lines, line+roundTopRight)
			for i := 0; i < baselineToSUIL-(diagramTD.Exit()-diagramTD.Entry()); i++ {
				lines = append(lines, " "+lineVertical)
			}
			// All such items except the leftmost also continue the
			// skip-under-items line from the previous item:
			lineFromPrevItem := " "
			if itemNum > 0 {
				lineFromPrevItem = line
			}
			lines = append(lines, lineFromPrevItem+roundBotLeft)
			entry := diagramEntry + 1 + (diagramTD.Exit() - diagramTD.Entry())
			exitTD := newTextGrid(gs, entry, diagramEntry+1, lines)
			diagramTD = diagramTD.appendRight(exitTD, "")
		} else {
			// The rightmost item has a line from the skip-under-items line
			// and from its exit up to the diagram exit:
			lines = nil
			lineFromExit := line
			if diagramTD.Exit() != diagramTD.Entry() {
				lineFromExit = " "
			}
			lines = append(lines, lineFromExit+roundTopLeft)
			for i := 0; i < diagramTD.Exit()-diagramTD.Entry()-1; i++ {
				lines = append(lines, " "+lineVertical)
			}
			if diagramTD.Exit() != diagramTD.Entry() {
				lines = append(lines, line+roundBotRight)
			}
			for i := 0; i < baselineToSUIL-(diagramTD.Exit()-diagramTD.Entry()); i++ {
				lines = append(lines, " "+lineVertical)
			}
			lines = append(lines, line+roundBotRight)
			exitTD := newTextGrid(gs, diagramTD.Exit()-diagramTD.Entry(), 0, lines)
			diagramTD = diagramTD.appendRight(exitTD, "")
		}
	}
	return diagramTD
}

func (h *HorizontalChoice) ToDict() Dict {
	return Dict{"element": "HorizontalChoice", "items": itemDicts(h.items)}
}

func (h *HorizontalChoice) Walk(fn func(Element)) {
	fn(h)
	for _, item := range h.items {
		item.Walk(fn)
	}
}
