package rail

import (
	"math"
	"strings"

	"github.com/railyard/railyard/pkg/errors"
)

// Sequence chains items left to right on a single rail.
type Sequence struct {
	core
	items []Element
}

// NewSequence builds a sequence of the given items.
func NewSequence(p *Params, items ...Element) (*Sequence, error) {
	if len(items) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyItems, "sequence needs at least one item")
	}
	s := &Sequence{core: newCore("g", nil, p), items: items}
	s.needsSpace = true
	for _, item := range s.items {
		s.width += spaced(item, 20)
		s.up = maxF(s.up, item.Up()-s.height)
		s.height += item.Height()
		s.down = maxF(s.down-item.Height(), item.Down())
	}
	if s.items[0].NeedsSpace() {
		s.width -= 10
	}
	if s.items[len(s.items)-1].NeedsSpace() {
		s.width -= 10
	}
	addDebug(s, "Sequence")
	return s, nil
}

func (s *Sequence) Format(x, y, width float64) Element {
	p := s.params
	leftGap, rightGap := determineGaps(width, s.width, p.InternalAlignment)
	s.add(newPath(x, y, "seq seq1", p.AR).h(leftGap))
	s.add(newPath(x+leftGap+s.width, y+s.height, "seq seq2", p.AR).h(rightGap))
	x += leftGap
	for i, item := range s.items {
		if item.NeedsSpace() && i > 0 {
			s.add(newPath(x, y, "seq seq3", p.AR).h(10))
			x += 10
		}
		s.add(item.Format(x, y, item.Width()))
		x += item.Width()
		y += item.Height()
		if item.NeedsSpace() && i < len(s.items)-1 {
			s.add(newPath(x, y, "seq seq4", p.AR).h(10))
			x += 10
		}
	}
	return s
}

func (s *Sequence) TextDiagram() *TextGrid {
	gs := s.params.glyphs()
	separator := gs.part("separator")
	diagram := newTextGrid(gs, 0, 0, []string{""})
	for _, item := range s.items {
		itemTD := item.TextDiagram()
		if item.NeedsSpace() {
			itemTD = itemTD.expand(1, 1, 0, 0)
		}
		diagram = diagram.appendRight(itemTD, separator)
	}
	return diagram
}

func (s *Sequence) ToDict() Dict {
	return Dict{"element": "Sequence", "items": itemDicts(s.items)}
}

func (s *Sequence) Walk(fn func(Element)) {
	fn(s)
	for _, item := range s.items {
		item.Walk(fn)
	}
}

// Stack places items on top of each other, connected by rails that snake
// down on the right and back in on the left.
type Stack struct {
	core
	items []Element
}

// NewStack builds a stack of the given items.
func NewStack(p *Params, items ...Element) (*Stack, error) {
	if len(items) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyItems, "stack needs at least one item")
	}
	s := &Stack{core: newCore("g", nil, p), items: items}
	s.needsSpace = true
	for _, item := range s.items {
		s.width = maxF(s.width, spaced(item, 20))
	}
	if len(s.items) > 1 {
		s.width += s.params.AR * 2
	}
	s.up = s.items[0].Up()
	s.down = s.items[len(s.items)-1].Down()
	last := len(s.items) - 1
	for i, item := range s.items {
		s.height += item.Height()
		if i > 0 {
			s.height += maxF(s.params.AR*2, item.Up()+s.params.VS)
		}
		if i < last {
			s.height += maxF(s.params.AR*2, item.Down()+s.params.VS)
		}
	}
	addDebug(s, "Stack")
	return s, nil
}

func (s *Stack) Format(x, y, width float64) Element {
	p := s.params
	leftGap, rightGap := determineGaps(width, s.width, p.InternalAlignment)
	s.add(newPath(x, y, "stack stack1", p.AR).h(leftGap))
	x += leftGap
	xInitial := x
	innerWidth := s.width
	if len(s.items) > 1 {
		s.add(newPath(x, y, "stack stack2", p.AR).h(p.AR))
		x += p.AR
		innerWidth -= p.AR * 2
	}
	for i, item := range s.items {
		s.add(item.Format(x, y, innerWidth))
		x += innerWidth
		y += item.Height()
		if i != len(s.items)-1 {
			s.add(newPath(x, y, "stack stack3", p.AR).
				arc("ne").
				down(maxF(0, item.Down()+p.VS-p.AR*2)).
				arc("es").
				left(innerWidth).
				arc("nw").
				down(maxF(0, s.items[i+1].Up()+p.VS-p.AR*2)).
				arc("ws").
				right(10))
			y += maxF(item.Down()+p.VS, p.AR*2) + maxF(s.items[i+1].Up()+p.VS, p.AR*2)
			x = xInitial + p.AR
		}
	}
	if len(s.items) > 1 {
		s.add(newPath(x, y, "stack stack4", p.AR).h(p.AR))
		x += p.AR
	}
	s.add(newPath(x, y, "stack stack5", p.AR).h(rightGap))
	return s
}

func (s *Stack) TextDiagram() *TextGrid {
	gs := s.params.glyphs()
	cornerBotLeft := gs.part("corner_bot_left")
	cornerBotRight := gs.part("corner_bot_right")
	cornerTopLeft := gs.part("corner_top_left")
	cornerTopRight := gs.part("corner_top_right")
	line := gs.part("line")
	lineVertical := gs.part("line_vertical")

	// Format all the child items, so we can know the maximum width.
	itemTDs := make([]*TextGrid, 0, len(s.items))
	maxWidth := 0
	for _, item := range s.items {
		td := item.TextDiagram()
		itemTDs = append(itemTDs, td)
		if td.Width() > maxWidth {
			maxWidth = td.Width()
		}
	}

	var leftLines, rightLines []string
	separatorTD := newTextGrid(gs, 0, 0, []string{strings.Repeat(line, maxWidth)})
	diagramTD := newTextGrid(gs, 0, 0, nil) // Top item will replace it.

	for itemNum, itemTD := range itemTDs {
		if itemNum == 0 {
			// The top item enters directly from its left.
			leftLines = append(leftLines, line+line)
			for i := 0; i < itemTD.Height()-itemTD.Entry()-1; i++ {
				leftLines = append(leftLines, "  ")
			}
		} else {
			// All items below the top enter from a snake-line from the
			// previous item's exit, resumed here having descended on the
			// right.
			diagramTD = diagramTD.appendBelow(separatorTD, nil, false, false)
			leftLines = append(leftLines, cornerTopLeft+line)
			for i := 0; i < itemTD.Entry(); i++ {
				leftLines = append(leftLines, lineVertical+" ")
			}
			leftLines = append(leftLines, cornerBotLeft+line)
			for i := 0; i < itemTD.Height()-itemTD.Entry()-1; i++ {
				leftLines = append(leftLines, "  ")
			}
			for i := 0; i < itemTD.Exit(); i++ {
				rightLines = append(rightLines, "  ")
			}
		}
		if itemNum < len(itemTDs)-1 {
			// All items above the bottom exit via a snake-line to the next
			// item's entry, started here on the right.
			rightLines = append(rightLines, line+cornerTopRight)
			for i := 0; i < itemTD.Height()-itemTD.Exit()-1; i++ {
				rightLines = append(rightLines, " "+lineVertical)
			}
			rightLines = append(rightLines, line+cornerBotRight)
		} else {
			// The bottom item exits directly to its right.
			rightLines = append(rightLines, line+line)
		}
		leftPad, rightPad := textGaps(maxWidth, itemTD.Width(), s.params.InternalAlignment)
		itemTD = itemTD.expand(leftPad, rightPad, 0, 0)
		if itemNum == 0 {
			diagramTD = itemTD
		} else {
			diagramTD = diagramTD.appendBelow(itemTD, nil, false, false)
		}
	}

	leftTD := newTextGrid(gs, 0, 0, leftLines)
	diagramTD = leftTD.appendRight(diagramTD, "")
	rightTD := newTextGrid(gs, 0, len(rightLines)-1, rightLines)
	return diagramTD.appendRight(rightTD, "")
}

func (s *Stack) ToDict() Dict {
	return Dict{"element": "Stack", "items": itemDicts(s.items)}
}

func (s *Stack) Walk(fn func(Element)) {
	fn(s)
	for _, item := range s.items {
		item.Walk(fn)
	}
}

// OptionalSequence chains items like a Sequence while letting any prefix or
// suffix of them be skipped, as long as at least one item is taken.
type OptionalSequence struct {
	core
	items []Element
}

// NewOptionalSequence builds an optional sequence. With a single item there
// is nothing to skip, so it degrades to a plain Sequence.
func NewOptionalSequence(p *Params, items ...Element) (Element, error) {
	if len(items) <= 1 {
		return NewSequence(p, items...)
	}
	s := &OptionalSequence{core: newCore("g", nil, p), items: items}
	ar, vs := s.params.AR, s.params.VS
	for _, item := range s.items {
		s.height += item.Height()
	}
	s.down = s.items[0].Down()
	heightSoFar := 0.0
	for i, item := range s.items {
		s.up = maxF(s.up, maxF(ar*2, item.Up()+vs)-heightSoFar)
		heightSoFar += item.Height()
		if i > 0 {
			s.down = maxF(s.height+s.down, heightSoFar+maxF(ar*2, item.Down()+vs)) - s.height
		}
		itemWidth := item.Width()
		if item.NeedsSpace() {
			itemWidth += 10
		}
		if i == 0 {
			s.width += ar + maxF(itemWidth, ar)
		} else {
			s.width += ar*2 + maxF(itemWidth, ar) + ar
		}
	}
	addDebug(s, "OptionalSequence")
	return s, nil
}

func (s *OptionalSequence) Format(x, y, width float64) Element {
	p := s.params
	ar, vs := p.AR, p.VS
	leftGap, rightGap := determineGaps(width, s.width, p.InternalAlignment)
	s.add(newPath(x, y, "optseq os1", ar).right(leftGap))
	s.add(newPath(x+leftGap+s.width, y+s.height, "optseq os2", ar).right(rightGap))
	x += leftGap
	upperLineY := y - s.up
	last := len(s.items) - 1
	for i, item := range s.items {
		itemSpace := 0.0
		if item.NeedsSpace() {
			itemSpace = 10
		}
		itemWidth := item.Width() + itemSpace
		switch {
		case i == 0:
			// Upper skip
			s.add(newPath(x, y, "optseq os3", ar).
				arc("se").
				up(y - upperLineY - ar*2).
				arc("wn").
				right(itemWidth - ar).
				arc("ne").
				down(y + item.Height() - upperLineY - ar*2).
				arc("ws"))
			// Straight line
			s.add(newPath(x, y, "optseq os4", ar).right(itemSpace + ar))
			s.add(item.Format(x+itemSpace+ar, y, item.Width()))
			x += itemWidth + ar
			y += item.Height()
		case i < last:
			// Upper skip
			s.add(newPath(x, upperLineY, "optseq os5", ar).
				right(ar*2 + maxF(itemWidth, ar) + ar).
				arc("ne").
				down(y - upperLineY + item.Height() - ar*2).
				arc("ws"))
			// Straight line
			s.add(newPath(x, y, "optseq os6", ar).right(ar * 2))
			s.add(item.Format(x+ar*2, y, item.Width()))
			s.add(newPath(x+item.Width()+ar*2, y+item.Height(), "optseq os7", ar).
				right(itemSpace + ar))
			// Lower skip
			s.add(newPath(x, y, "optseq os8", ar).
				arc("ne").
				down(item.Height() + maxF(item.Down()+vs, ar*2) - ar*2).
				arc("ws").
				right(itemWidth - ar).
				arc("se").
				up(item.Down() + vs - ar*2).
				arc("wn"))
			x += ar*2 + maxF(itemWidth, ar) + ar
			y += item.Height()
		default:
			// Straight line
			s.add(newPath(x, y, "optseq os9", ar).right(ar * 2))
			s.add(item.Format(x+ar*2, y, item.Width()))
			s.add(newPath(x+ar*2+item.Width(), y+item.Height(), "optseq os10", ar).
				right(itemSpace + ar))
			// Lower skip
			s.add(newPath(x, y, "optseq os11", ar).
				arc("ne").
				down(item.Height() + maxF(item.Down()+vs, ar*2) - ar*2).
				arc("ws").
				right(itemWidth - ar).
				arc("se").
				up(item.Down() + vs - ar*2).
				arc("wn"))
		}
	}
	return s
}

func (s *OptionalSequence) TextDiagram() *TextGrid {
	gs := s.params.glyphs()
	line := gs.part("line")
	lineVertical := gs.part("line_vertical")
	roundBotLeft := gs.part("round_corner_bot_left")
	roundBotRight := gs.part("round_corner_bot_right")
	roundTopLeft := gs.part("round_corner_top_left")
	roundTopRight := gs.part("round_corner_top_right")

	// Format all the child items, so we can know the maximum entry.
	itemTDs := make([]*TextGrid, 0, len(s.items))
	for _, item := range s.items {
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
	// soilHeight: distance from the skip-over-items line to the rightmost entry.
	soilHeight := 0
	for _, td := range itemTDs[:len(itemTDs)-1] {
		if td.Entry() > soilHeight {
			soilHeight = td.Entry()
		}
	}
	topToSOIL := diagramEntry - soilHeight

	// The diagram starts with a line from its entry up to the skip-over-items line:
	var lines []string
	for i := 0; i < topToSOIL; i++ {
		lines = append(lines, "  ")
	}
	lines = append(lines, roundTopLeft+line)
	for i := 0; i < soilHeight; i++ {
		lines = append(lines, lineVertical+" ")
	}
	lines = append(lines, roundBotRight+line)
	diagramTD := newTextGrid(gs, len(lines)-1, len(lines)-1, lines)
	for itemNum, itemTD := range itemTDs {
		if itemNum > 0 {
			// All items except the leftmost start with a line from their
			// entry down to their skip-under-item line, with a joining-line
			// across at the skip-over-items line:
			lines = nil
			for i := 0; i < topToSOIL; i++ {
				lines = append(lines, "  ")
			}
			lines = append(lines, line+line)
			for i := 0; i < diagramTD.Exit()-topToSOIL-1; i++ {
				lines = append(lines, "  ")
			}
			lines = append(lines, line+roundTopRight)
			for i := 0; i < itemTD.Height()-itemTD.Entry()-1; i++ {
				lines = append(lines, " "+lineVertical)
			}
			lines = append(lines, " "+roundBotLeft)
			skipDownTD := newTextGrid(gs, diagramTD.Exit(), diagramTD.Exit(), lines)
			diagramTD = diagramTD.appendRight(skipDownTD, "")
			// Then a line from the skip-over-items line down to their entry,
			// with joining-lines at their entry and at their skip-under-item
			// line:
			lines = nil
			for i := 0; i < topToSOIL; i++ {
				lines = append(lines, "   ")
			}
			// All such items except the rightmost also continue the
			// skip-over-items line:
			lineToNextItem := " "
			if itemNum < len(itemTDs)-1 {
				lineToNextItem = line
			}
			lines = append(lines, line+roundTopRight+lineToNextItem)
			for i := 0; i < diagramTD.Exit()-topToSOIL-1; i++ {
				lines = append(lines, " "+lineVertical+" ")
			}
			lines = append(lines, line+roundBotLeft+line)
			for i := 0; i < itemTD.Height()-itemTD.Entry()-1; i++ {
				lines = append(lines, "   ")
			}
			lines = append(lines, line+line+line)
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
			for i := 0; i < soilHeight-itemTD.Entry(); i++ {
				lines = append(lines, strings.Repeat(" ", itemTD.Width()))
			}
			soilSegment := newTextGrid(gs, 0, 0, lines)
			partTD = partTD.appendBelow(soilSegment, nil, false, false)
		}
		partTD = partTD.appendBelow(itemTD, nil, true, true)
		if itemNum > 0 {
			// All items except the leftmost have their skip-under-item line
			// at the bottom.
			suilSegment := newTextGrid(gs, 0, 0, []string{strings.Repeat(line, itemTD.Width())})
			partTD = partTD.appendBelow(suilSegment, nil, false, false)
		}
		diagramTD = diagramTD.appendRight(partTD, "")
		if itemNum > 0 {
			// All items except the leftmost have a line from their
			// skip-under-item line to their exit:
			lines = nil
			for i := 0; i < topToSOIL; i++ {
				lines = append(lines, "  ")
			}
			// All such items except the rightmost also have a joining-line
			// across at the skip-over-items line:
			skipOverChar := " "
			if itemNum < len(itemTDs)-1 {
				skipOverChar = line
			}
			lines = append(lines, skipOverChar+skipOverChar)
			for i := 0; i < diagramTD.Exit()-topToSOIL-1; i++ {
				lines = append(lines, "  ")
			}
			lines = append(lines, line+roundTopLeft)
			for i := 0; i < partTD.Height()-partTD.Exit()-2; i++ {
				lines = append(lines, " "+lineVertical)
			}
			lines = append(lines, line+roundBotRight)
			skipUpTD := newTextGrid(gs, diagramTD.Exit(), diagramTD.Exit(), lines)
			diagramTD = diagramTD.appendRight(skipUpTD, "")
		}
	}
	return diagramTD
}

func (s *OptionalSequence) ToDict() Dict {
	return Dict{"element": "OptionalSequence", "items": itemDicts(s.items)}
}

func (s *OptionalSequence) Walk(fn func(Element)) {
	fn(s)
	for _, item := range s.items {
		item.Walk(fn)
	}
}

// AlternatingSequence repeats its two items in strict alternation, starting
// and ending with either one.
type AlternatingSequence struct {
	core
	items []Element
}

// NewAlternatingSequence builds an alternation of exactly two items.
func NewAlternatingSequence(p *Params, items ...Element) (*AlternatingSequence, error) {
	if len(items) != 2 {
		return nil, errors.New(errors.ErrCodeWrongArity,
			"alternating sequence takes exactly two items, got %d", len(items))
	}
	s := &AlternatingSequence{core: newCore("g", nil, p), items: items}
	ar, vs := s.params.AR, s.params.VS
	first, second := s.items[0], s.items[1]

	arcX := 1 / math.Sqrt2 * ar * 2
	arcY := (1 - 1/math.Sqrt2) * ar * 2
	crossY := maxF(ar, vs)
	crossX := (crossY - arcY) + arcX

	firstOut := maxF(ar+ar, maxF(crossY/2+ar+ar, crossY/2+vs+first.Down()))
	s.up = firstOut + first.Height() + first.Up()

	secondIn := maxF(ar+ar, maxF(crossY/2+ar+ar, crossY/2+vs+second.Up()))
	s.down = secondIn + second.Height() + second.Down()

	s.width = 2*ar + maxF(maxF(spaced(first, 20), crossX), spaced(second, 20)) + 2*ar
	addDebug(s, "AlternatingSequence")
	return s, nil
}

func (s *AlternatingSequence) Format(x, y, width float64) Element {
	p := s.params
	ar := p.AR
	leftGap, rightGap := determineGaps(width, s.width, p.InternalAlignment)
	s.add(newPath(x, y, "altseq as1", ar).right(leftGap))
	x += leftGap
	s.add(newPath(x+s.width, y, "altseq as2", ar).right(rightGap))
	first, second := s.items[0], s.items[1]

	// top
	firstIn := s.up - first.Up()
	firstOut := s.up - first.Up() - first.Height()
	s.add(newPath(x, y, "altseq as3", ar).arc("se").up(firstIn - 2*ar).arc("wn"))
	s.add(first.Format(x+2*ar, y-firstIn, s.width-4*ar))
	s.add(newPath(x+s.width-2*ar, y-firstOut, "altseq as4", ar).
		arc("ne").down(firstOut - 2*ar).arc("ws"))

	// bottom
	secondIn := s.down - second.Down() - second.Height()
	secondOut := s.down - second.Down()
	s.add(newPath(x, y, "altseq as5", ar).arc("ne").down(secondIn - 2*ar).arc("ws"))
	s.add(second.Format(x+2*ar, y+secondIn, s.width-4*ar))
	s.add(newPath(x+s.width-2*ar, y+secondOut, "altseq as6", ar).
		arc("se").up(secondOut - 2*ar).arc("wn"))

	// crossover
	arcX := 1 / math.Sqrt2 * ar * 2
	arcY := (1 - 1/math.Sqrt2) * ar * 2
	crossY := maxF(ar, p.VS)
	crossX := (crossY - arcY) + arcX
	crossBar := (s.width - 4*ar - crossX) / 2
	s.add(newPath(x+ar, y-crossY/2-ar, "altseq as7", ar).
		arc("ws").
		right(crossBar).
		arc8("n", "cw").
		l(crossX-arcX, crossY-arcY).
		arc8("sw", "ccw").
		right(crossBar).
		arc("ne"))
	s.add(newPath(x+ar, y+crossY/2+ar, "altseq as8", ar).
		arc("wn").
		right(crossBar).
		arc8("s", "ccw").
		l(crossX-arcX, -(crossY-arcY)).
		arc8("nw", "cw").
		right(crossBar).
		arc("se"))
	return s
}

func (s *AlternatingSequence) TextDiagram() *TextGrid {
	gs := s.params.glyphs()
	alignment := s.params.InternalAlignment
	crossDiag := gs.part("cross_diag")
	cornerBotLeft := gs.part("round_corner_bot_left")
	cornerBotRight := gs.part("round_corner_bot_right")
	cornerTopLeft := gs.part("round_corner_top_left")
	cornerTopRight := gs.part("round_corner_top_right")
	line := gs.part("line")
	lineVertical := gs.part("line_vertical")
	teeLeft := gs.part("tee_left")
	teeRight := gs.part("tee_right")

	firstTD := s.items[0].TextDiagram()
	secondTD := s.items[1].TextDiagram()
	maxWidth := firstTD.Width()
	if secondTD.Width() > maxWidth {
		maxWidth = secondTD.Width()
	}
	leftWidth, rightWidth := textGaps(maxWidth, 0, alignment)
	var leftLines, rightLines, separator []string

	leftSize, rightSize := textGaps(firstTD.Width(), 0, alignment)
	switch alignment {
	case AlignLeft:
		rightSize--
	case AlignRight:
		leftSize -= 2
	}
	diagramTD := firstTD.expand(leftWidth-leftSize, rightWidth-rightSize, 0, 0)
	for i := 0; i < diagramTD.Entry(); i++ {
		leftLines = append(leftLines, "  ")
	}
	leftLines = append(leftLines, cornerTopLeft+line)
	for i := 0; i < diagramTD.Height()-diagramTD.Entry()-1; i++ {
		leftLines = append(leftLines, lineVertical+" ")
	}
	leftLines = append(leftLines, cornerBotLeft+line)
	for i := 0; i < diagramTD.Entry(); i++ {
		rightLines = append(rightLines, "  ")
	}
	rightLines = append(rightLines, line+cornerTopRight)
	for i := 0; i < diagramTD.Height()-diagramTD.Entry()-1; i++ {
		rightLines = append(rightLines, " "+lineVertical)
	}
	rightLines = append(rightLines, line+cornerBotRight)

	separator = append(separator,
		strings.Repeat(line, leftWidth-1)+cornerTopRight+" "+cornerTopLeft+strings.Repeat(line, rightWidth-2))
	separator = append(separator,
		strings.Repeat(" ", leftWidth-1)+" "+crossDiag+" "+strings.Repeat(" ", rightWidth-2))
	separator = append(separator,
		strings.Repeat(line, leftWidth-1)+cornerBotRight+" "+cornerBotLeft+strings.Repeat(line, rightWidth-2))
	leftLines = append(leftLines, "  ")
	rightLines = append(rightLines, "  ")

	leftSize, rightSize = textGaps(secondTD.Width(), 0, alignment)
	switch alignment {
	case AlignLeft:
		rightSize--
	case AlignRight:
		leftSize -= 2
	}
	secondTD = secondTD.expand(leftWidth-leftSize, rightWidth-rightSize, 0, 0)
	diagramTD = diagramTD.appendBelow(secondTD, separator, true, true)
	leftLines = append(leftLines, cornerTopLeft+line)
	for i := 0; i < secondTD.Entry(); i++ {
		leftLines = append(leftLines, lineVertical+" ")
	}
	leftLines = append(leftLines, cornerBotLeft+line)
	rightLines = append(rightLines, line+cornerTopRight)
	for i := 0; i < secondTD.Entry(); i++ {
		rightLines = append(rightLines, " "+lineVertical)
	}
	rightLines = append(rightLines, line+cornerBotRight)

	join := firstTD.Height() + len(separator)/2
	diagramTD = diagramTD.altered(join, join)
	leftTD := newTextGrid(gs, join, join, leftLines)
	rightTD := newTextGrid(gs, join, join, rightLines)
	diagramTD = leftTD.appendRight(diagramTD, "").appendRight(rightTD, "")
	return newTextGrid(gs, 1, 1, []string{cornerTopLeft, teeLeft, cornerBotLeft}).
		appendRight(diagramTD, "").
		appendRight(newTextGrid(gs, 1, 1, []string{cornerTopRight, teeRight, cornerBotRight}), "")
}

func (s *AlternatingSequence) ToDict() Dict {
	return Dict{"element": "AlternatingSequence", "items": itemDicts(s.items)}
}

func (s *AlternatingSequence) Walk(fn func(Element)) {
	fn(s)
	for _, item := range s.items {
		item.Walk(fn)
	}
}

func itemDicts(items []Element) []Dict {
	dicts := make([]Dict, 0, len(items))
	for _, item := range items {
		dicts = append(dicts, item.ToDict())
	}
	return dicts
}
