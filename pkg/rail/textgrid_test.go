package rail

import (
	"reflect"
	"testing"
)

func TestNewTextGridRejectsRaggedLines(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("newTextGrid() did not panic on ragged lines")
		}
	}()
	newTextGrid(unicodeGlyphs, 0, 0, []string{"abc", "de"})
}

func TestNewTextGridRejectsEntryOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("newTextGrid() did not panic on out-of-range entry")
		}
	}()
	newTextGrid(unicodeGlyphs, 3, 0, []string{"ab"})
}

func TestExpandDrawsRailOnEntryAndExit(t *testing.T) {
	g := newTextGrid(unicodeGlyphs, 1, 1, []string{"aaa", "bbb", "ccc"})
	got := g.expand(2, 1, 1, 0)
	want := []string{
		"      ",
		"  aaa ",
		"──bbb─",
		"  ccc ",
	}
	if !reflect.DeepEqual(got.Lines(), want) {
		t.Errorf("expand() lines = %q, want %q", got.Lines(), want)
	}
	if got.Entry() != 2 || got.Exit() != 2 {
		t.Errorf("expand() entry/exit = %d/%d, want 2/2", got.Entry(), got.Exit())
	}
}

func TestExpandSeparateEntryAndExitRows(t *testing.T) {
	g := newTextGrid(asciiGlyphs, 0, 2, []string{"aa", "bb", "cc"})
	got := g.expand(1, 1, 0, 0)
	want := []string{
		"-aa ",
		" bb ",
		" cc-",
	}
	if !reflect.DeepEqual(got.Lines(), want) {
		t.Errorf("expand() lines = %q, want %q", got.Lines(), want)
	}
}

func TestAppendRightJoinsExitToEntry(t *testing.T) {
	left := newTextGrid(unicodeGlyphs, 0, 0, []string{"AB"})
	right := newTextGrid(unicodeGlyphs, 1, 1, []string{"12", "34", "56"})
	got := left.appendRight(right, "─")
	want := []string{
		"   12",
		"AB─34",
		"   56",
	}
	if !reflect.DeepEqual(got.Lines(), want) {
		t.Errorf("appendRight() lines = %q, want %q", got.Lines(), want)
	}
	if got.Entry() != 1 || got.Exit() != 1 {
		t.Errorf("appendRight() entry/exit = %d/%d, want 1/1", got.Entry(), got.Exit())
	}
}

func TestAppendBelowMovesEntryAndExit(t *testing.T) {
	top := newTextGrid(unicodeGlyphs, 0, 0, []string{"XX"})
	bottom := newTextGrid(unicodeGlyphs, 1, 1, []string{"ab", "cd"})
	got := top.appendBelow(bottom, []string{"--"}, true, true)
	want := []string{"XX", "--", "ab", "cd"}
	if !reflect.DeepEqual(got.Lines(), want) {
		t.Errorf("appendBelow() lines = %q, want %q", got.Lines(), want)
	}
	if got.Entry() != 3 || got.Exit() != 3 {
		t.Errorf("appendBelow() entry/exit = %d/%d, want 3/3", got.Entry(), got.Exit())
	}

	kept := top.appendBelow(bottom, nil, false, false)
	if kept.Entry() != 0 || kept.Exit() != 0 {
		t.Errorf("appendBelow() entry/exit = %d/%d, want 0/0", kept.Entry(), kept.Exit())
	}
}

func TestCenterPadsUnevenly(t *testing.T) {
	g := newTextGrid(unicodeGlyphs, 0, 0, []string{"ab"})
	got := g.center(5, " ")
	want := []string{" ab  "}
	if !reflect.DeepEqual(got.Lines(), want) {
		t.Errorf("center() lines = %q, want %q", got.Lines(), want)
	}
}

func TestAlteredChangesOnlyEntryAndExit(t *testing.T) {
	g := newTextGrid(unicodeGlyphs, 0, 0, []string{"ab", "cd"})
	got := g.altered(1, 0)
	if got.Entry() != 1 || got.Exit() != 0 {
		t.Errorf("altered() entry/exit = %d/%d, want 1/0", got.Entry(), got.Exit())
	}
	if !reflect.DeepEqual(got.Lines(), g.Lines()) {
		t.Errorf("altered() changed lines: %q", got.Lines())
	}
}

func TestRectAroundFormattedItemDrawsCrosses(t *testing.T) {
	item := newTextGrid(unicodeGlyphs, 0, 0, []string{"─"})
	got := unicodeGlyphs.rect(item, false)
	want := []string{
		" ┌───┐ ",
		"─┼───┼─",
		" └───┘ ",
	}
	if !reflect.DeepEqual(got.Lines(), want) {
		t.Errorf("rect() lines = %q, want %q", got.Lines(), want)
	}
}

func TestRoundRectDashed(t *testing.T) {
	item := newTextGrid(unicodeGlyphs, 0, 0, []string{"─"})
	got := unicodeGlyphs.roundRect(item, true)
	want := []string{
		" ╭┄┄┄╮ ",
		"─┼───┼─",
		" ╰┄┄┄╯ ",
	}
	if !reflect.DeepEqual(got.Lines(), want) {
		t.Errorf("roundRect() lines = %q, want %q", got.Lines(), want)
	}
}

func TestPadHelpers(t *testing.T) {
	if got := padR("ab", 5, "-"); got != "ab---" {
		t.Errorf("padR() = %q, want %q", got, "ab---")
	}
	if got := padL("ab", 5, "-"); got != "---ab" {
		t.Errorf("padL() = %q, want %q", got, "---ab")
	}
	if got := padR("abc", 2, "-"); got != "abc" {
		t.Errorf("padR() = %q, want %q", got, "abc")
	}
	// Cell widths, not rune counts: a fullwidth character takes two cells.
	if got := padL("ｘ", 4, " "); got != "  ｘ" {
		t.Errorf("padL() = %q, want %q", got, "  ｘ")
	}
}

func TestGlyphSetsAreParallel(t *testing.T) {
	for name := range unicodeGlyphs.parts {
		if _, ok := asciiGlyphs.parts[name]; !ok {
			t.Errorf("ascii glyph set is missing %q", name)
		}
	}
	for name := range asciiGlyphs.parts {
		if _, ok := unicodeGlyphs.parts[name]; !ok {
			t.Errorf("unicode glyph set is missing %q", name)
		}
	}
}

func TestNewGlyphSetRejectsWideGlyphs(t *testing.T) {
	if _, err := newGlyphSet(map[string]string{"line": "──"}); err == nil {
		t.Error("newGlyphSet() accepted a two-cell glyph")
	}
	if _, err := newGlyphSet(map[string]string{"ball": "ｘ"}); err == nil {
		t.Error("newGlyphSet() accepted a fullwidth glyph")
	}
}
