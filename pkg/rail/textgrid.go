package rail

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// TextGrid is a rectangular block of character cells with an entry row on its
// left edge and an exit row on its right edge. Grids compose horizontally by
// joining exit to entry and vertically by stacking, which is how every text
// diagram is assembled.
//
// A TextGrid carries the glyph set it was drawn with, so composition never
// consults shared state.
type TextGrid struct {
	entry int
	exit  int
	lines []string
	width int
	gs    *GlyphSet
}

// newTextGrid validates and builds a grid. The invariants are internal: all
// callers construct rectangular data, so violations are programming errors.
func newTextGrid(gs *GlyphSet, entry, exit int, lines []string) *TextGrid {
	width := 0
	if len(lines) > 0 {
		width = cellWidth(lines[0])
	}
	if entry > len(lines) {
		panic(fmt.Sprintf("rail: entry %d outside diagram of height %d", entry, len(lines)))
	}
	if exit > len(lines) {
		panic(fmt.Sprintf("rail: exit %d outside diagram of height %d", exit, len(lines)))
	}
	for i, line := range lines {
		if cellWidth(line) != width {
			panic(fmt.Sprintf("rail: diagram data is not rectangular at line %d: %q", i, line))
		}
	}
	return &TextGrid{
		entry: entry,
		exit:  exit,
		lines: append([]string(nil), lines...),
		width: width,
		gs:    gs,
	}
}

// Entry returns the row index of the left-edge connection point.
func (t *TextGrid) Entry() int { return t.entry }

// Exit returns the row index of the right-edge connection point.
func (t *TextGrid) Exit() int { return t.exit }

// Width returns the grid width in character cells.
func (t *TextGrid) Width() int { return t.width }

// Height returns the grid height in lines.
func (t *TextGrid) Height() int { return len(t.lines) }

// Lines returns a copy of the grid's visual data.
func (t *TextGrid) Lines() []string {
	return append([]string(nil), t.lines...)
}

// String renders the grid as newline-joined lines.
func (t *TextGrid) String() string {
	return strings.Join(t.lines, "\n")
}

func (t *TextGrid) copy() *TextGrid {
	return newTextGrid(t.gs, t.entry, t.exit, t.lines)
}

// altered returns a copy with new entry and exit rows.
func (t *TextGrid) altered(entry, exit int) *TextGrid {
	return newTextGrid(t.gs, entry, exit, t.lines)
}

// appendBelow stacks item under this grid with the given lines between,
// optionally taking the entry and/or exit row from the appended item.
func (t *TextGrid) appendBelow(item *TextGrid, between []string, moveEntry, moveExit bool) *TextGrid {
	newWidth := t.width
	if item.width > newWidth {
		newWidth = item.width
	}
	var lines []string
	lines = append(lines, t.center(newWidth, " ").lines...)
	for _, line := range between {
		lines = append(lines, padR(line, newWidth, " "))
	}
	lines = append(lines, item.center(newWidth, " ").lines...)
	entry, exit := t.entry, t.exit
	if moveEntry {
		entry = t.Height() + len(between) + item.entry
	}
	if moveExit {
		exit = t.Height() + len(between) + item.exit
	}
	return newTextGrid(t.gs, entry, exit, lines)
}

// appendRight joins item to the right of this grid, aligning this grid's exit
// row with the item's entry row. between is drawn on the join row and matched
// with spaces on every other row.
func (t *TextGrid) appendRight(item *TextGrid, between string) *TextGrid {
	joinLine := t.exit
	if item.entry > joinLine {
		joinLine = item.entry
	}
	newHeight := t.Height() - t.exit
	if h := item.Height() - item.entry; h > newHeight {
		newHeight = h
	}
	newHeight += joinLine
	leftTopAdd := joinLine - t.exit
	leftBotAdd := newHeight - t.Height() - leftTopAdd
	rightTopAdd := joinLine - item.entry
	rightBotAdd := newHeight - item.Height() - rightTopAdd
	left := t.expand(0, 0, leftTopAdd, leftBotAdd)
	right := item.expand(0, 0, rightTopAdd, rightBotAdd)
	lines := make([]string, 0, newHeight)
	gap := strings.Repeat(" ", cellWidth(between))
	for i := 0; i < newHeight; i++ {
		sep := gap
		if i == joinLine {
			sep = between
		}
		lines = append(lines, left.lines[i]+sep+right.lines[i])
	}
	return newTextGrid(t.gs, t.entry+leftTopAdd, item.exit+rightTopAdd, lines)
}

// center pads the grid on both sides to the given width.
func (t *TextGrid) center(width int, pad string) *TextGrid {
	if width < t.width {
		panic("rail: cannot center into smaller width")
	}
	if width == t.width {
		return t.copy()
	}
	total := width - t.width
	leftWidth := total / 2
	left := strings.Repeat(pad, leftWidth)
	right := strings.Repeat(pad, total-leftWidth)
	lines := make([]string, 0, len(t.lines))
	for _, line := range t.lines {
		lines = append(lines, left+line+right)
	}
	return newTextGrid(t.gs, t.entry, t.exit, lines)
}

// expand grows the grid by the given cell counts in each direction. Left and
// right expansion on the entry/exit rows extends the rail line; everywhere
// else is blank.
func (t *TextGrid) expand(left, right, top, bottom int) *TextGrid {
	if left < 0 || right < 0 || top < 0 || bottom < 0 {
		panic("rail: expand amounts must be non-negative")
	}
	if left+right+top+bottom == 0 {
		return t.copy()
	}
	line := t.gs.part("line")
	blank := strings.Repeat(" ", t.width+left+right)
	lines := make([]string, 0, len(t.lines)+top+bottom)
	for i := 0; i < top; i++ {
		lines = append(lines, blank)
	}
	for i, l := range t.lines {
		leftPad := " "
		if i == t.entry {
			leftPad = line
		}
		rightPad := " "
		if i == t.exit {
			rightPad = line
		}
		lines = append(lines, strings.Repeat(leftPad, left)+l+strings.Repeat(rightPad, right))
	}
	for i := 0; i < bottom; i++ {
		lines = append(lines, blank)
	}
	return newTextGrid(t.gs, t.entry+top, t.exit+top, lines)
}

// rectText draws a rectangular box around a single-line label.
func (gs *GlyphSet) rectText(label string) *TextGrid {
	return gs.rectish("rect", nil, label, false)
}

// rect draws a rectangular box around a formatted grid.
func (gs *GlyphSet) rect(item *TextGrid, dashed bool) *TextGrid {
	return gs.rectish("rect", item, "", dashed)
}

// roundRectText draws a round-cornered box around a single-line label.
func (gs *GlyphSet) roundRectText(label string) *TextGrid {
	return gs.rectish("round_rect", nil, label, false)
}

// roundRect draws a round-cornered box around a formatted grid.
func (gs *GlyphSet) roundRect(item *TextGrid, dashed bool) *TextGrid {
	return gs.rectish("round_rect", item, "", dashed)
}

// angleRectText draws an angle-bracketed box around a single-line label.
func (gs *GlyphSet) angleRectText(label string) *TextGrid {
	return gs.rectish("angle_rect", nil, label, false)
}

// rectish is the shared box-drawing routine. When item is nil the label is
// boxed without perimeter crosses; when item is a formatted grid, crosses mark
// where the rail pierces the box.
func (gs *GlyphSet) rectish(rectType string, item *TextGrid, label string, dashed bool) *TextGrid {
	lineType := ""
	if dashed {
		lineType = "_dashed"
	}
	topLeft := gs.part(rectType + "_top_left")
	ctrLeft := gs.part(rectType + "_left" + lineType)
	botLeft := gs.part(rectType + "_bot_left")
	topRight := gs.part(rectType + "_top_right")
	ctrRight := gs.part(rectType + "_right" + lineType)
	botRight := gs.part(rectType + "_bot_right")
	topHoriz := gs.part(rectType + "_top" + lineType)
	botHoriz := gs.part(rectType + "_bot" + lineType)
	line := gs.part("line")
	cross := gs.part("cross")
	if rectType == "angle_rect" {
		// Angle glyphs overhang the box, so give them a second cell.
		topLeft = " " + topLeft
		ctrLeft = ctrLeft + " "
		botLeft = " " + botLeft
		topRight = topRight + " "
		ctrRight = " " + ctrRight
		botRight = botRight + " "
	}
	itemWasFormatted := item != nil
	if !itemWasFormatted {
		item = newTextGrid(gs, 0, 0, []string{label})
	}
	var lines []string
	lines = append(lines, strings.Repeat(topHoriz, item.width+2))
	if itemWasFormatted {
		lines = append(lines, item.expand(1, 1, 0, 0).lines...)
	} else {
		for _, l := range item.lines {
			lines = append(lines, " "+l+" ")
		}
	}
	lines = append(lines, strings.Repeat(botHoriz, item.width+2))
	entry := item.entry + 1
	exit := item.exit + 1

	leftMax := maxCellWidth(topLeft, ctrLeft, botLeft)
	lefts := make([]string, len(lines))
	for i := range lefts {
		lefts[i] = padR(ctrLeft, leftMax, " ")
	}
	lefts[0] = padR(topLeft, leftMax, topHoriz)
	lefts[len(lefts)-1] = padR(botLeft, leftMax, botHoriz)
	if itemWasFormatted {
		lefts[entry] = cross
	}
	rightMax := maxCellWidth(topRight, ctrRight, botRight)
	rights := make([]string, len(lines))
	for i := range rights {
		rights[i] = padL(ctrRight, rightMax, " ")
	}
	rights[0] = padL(topRight, rightMax, topHoriz)
	rights[len(rights)-1] = padL(botRight, rightMax, botHoriz)
	if itemWasFormatted {
		rights[exit] = cross
	}
	lines = encloseLines(lines, lefts, rights)

	// Entry and exit perimeter.
	lefts = make([]string, len(lines))
	rights = make([]string, len(lines))
	for i := range lines {
		lefts[i] = " "
		rights[i] = " "
	}
	lefts[entry] = line
	rights[exit] = line
	lines = encloseLines(lines, lefts, rights)
	return newTextGrid(gs, entry, exit, lines)
}

func encloseLines(lines, lefts, rights []string) []string {
	if len(lines) != len(lefts) || len(lines) != len(rights) {
		panic("rail: encloseLines arguments must be the same length")
	}
	out := make([]string, len(lines))
	for i := range lines {
		out[i] = lefts[i] + lines[i] + rights[i]
	}
	return out
}

// cellWidth measures a string in terminal cells rather than bytes or runes.
func cellWidth(s string) int {
	return runewidth.StringWidth(s)
}

func maxCellWidth(ss ...string) int {
	max := 0
	for _, s := range ss {
		if w := cellWidth(s); w > max {
			max = w
		}
	}
	return max
}

// padL left-pads s to the given cell width with the pad glyph.
func padL(s string, width int, pad string) string {
	n := width - cellWidth(s)
	if n <= 0 {
		return s
	}
	return strings.Repeat(pad, n) + s
}

// padR right-pads s to the given cell width with the pad glyph.
func padR(s string, width int, pad string) string {
	n := width - cellWidth(s)
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(pad, n)
}
