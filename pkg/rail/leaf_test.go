package rail

import (
	"reflect"
	"testing"
)

func TestLeafMeasurements(t *testing.T) {
	tests := []struct {
		name       string
		el         Element
		width      float64
		up         float64
		down       float64
		needsSpace bool
	}{
		{"terminal", NewTerminal(nil, "foo"), 44, 11, 11, true},
		{"terminal empty", NewTerminal(nil, ""), 20, 11, 11, true},
		{"terminal counts runes", NewTerminal(nil, "héllo"), 60, 11, 11, true},
		{"non-terminal", NewNonTerminal(nil, "expr"), 52, 11, 11, true},
		{"expression", NewExpression(nil, "x"), 48, 11, 11, true},
		{"comment", NewComment(nil, "note"), 38, 8, 8, true},
		{"skip", NewSkip(nil), 0, 0, 0, false},
		{"start", NewStart(nil, "", ""), 20, 10, 10, false},
		{"start labeled", NewStart(nil, TypeSimple, "foo"), 34, 10, 10, false},
		{"end", NewEnd(nil, ""), 20, 10, 10, false},
		{"arrow", NewArrow(nil, ""), 20, 10, 10, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.el.Width(); got != tt.width {
				t.Errorf("Width() = %v, want %v", got, tt.width)
			}
			if got := tt.el.Up(); got != tt.up {
				t.Errorf("Up() = %v, want %v", got, tt.up)
			}
			if got := tt.el.Down(); got != tt.down {
				t.Errorf("Down() = %v, want %v", got, tt.down)
			}
			if got := tt.el.Height(); got != 0 {
				t.Errorf("Height() = %v, want 0", got)
			}
			if got := tt.el.NeedsSpace(); got != tt.needsSpace {
				t.Errorf("NeedsSpace() = %v, want %v", got, tt.needsSpace)
			}
		})
	}
}

func TestCommentUsesCommentCharWidth(t *testing.T) {
	p := DefaultParams()
	p.CommentCharWidth = 10
	c := NewComment(p, "ab")
	if got := c.Width(); got != 30 {
		t.Errorf("Width() = %v, want 30", got)
	}
}

func TestLeafTextDiagrams(t *testing.T) {
	ascii := DefaultParams()
	ascii.Formatting = FormattingASCII
	tests := []struct {
		name  string
		el    Element
		lines []string
		entry int
		exit  int
	}{
		{
			"terminal", NewTerminal(nil, "foo"),
			[]string{
				" ╭─────╮ ",
				"─│ foo │─",
				" ╰─────╯ ",
			}, 1, 1,
		},
		{
			"terminal ascii", NewTerminal(ascii, "foo"),
			[]string{
				" /-----\\ ",
				"-| foo |-",
				" \\-----/ ",
			}, 1, 1,
		},
		{
			"non-terminal", NewNonTerminal(nil, "expr"),
			[]string{
				" ┌──────┐ ",
				"─│ expr │─",
				" └──────┘ ",
			}, 1, 1,
		},
		{
			"expression", NewExpression(nil, "x"),
			[]string{
				"  ◞───◟  ",
				"─⟨  x  ⟩─",
				"  ◝───◜  ",
			}, 1, 1,
		},
		{
			"comment", NewComment(nil, "note"),
			[]string{"note"}, 0, 0,
		},
		{
			"skip", NewSkip(nil),
			[]string{"─"}, 0, 0,
		},
		{
			"start", NewStart(nil, TypeSimple, ""),
			[]string{"├┼─"}, 0, 0,
		},
		{
			"start complex", NewStart(nil, TypeComplex, ""),
			[]string{"├─"}, 0, 0,
		},
		{
			"start sql", NewStart(nil, TypeSQL, ""),
			[]string{"●─"}, 0, 0,
		},
		{
			"start labeled", NewStart(nil, TypeSimple, "foo"),
			[]string{"foo", "├┼─"}, 1, 1,
		},
		{
			"start ascii", NewStart(ascii, TypeSimple, ""),
			[]string{"|+-"}, 0, 0,
		},
		{
			"end", NewEnd(nil, TypeSimple),
			[]string{"─┼┤"}, 0, 0,
		},
		{
			"end complex", NewEnd(nil, TypeComplex),
			[]string{"─┤"}, 0, 0,
		},
		{
			"end sql", NewEnd(nil, TypeSQL),
			[]string{"─►"}, 0, 0,
		},
		{
			"arrow right", NewArrow(nil, DirectionRight),
			[]string{"─►─"}, 0, 0,
		},
		{
			"arrow left", NewArrow(nil, DirectionLeft),
			[]string{"─◄─"}, 0, 0,
		},
		{
			"arrow none", NewArrow(nil, DirectionNone),
			[]string{"───"}, 0, 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			td := tt.el.TextDiagram()
			if got := td.Lines(); !reflect.DeepEqual(got, tt.lines) {
				t.Errorf("Lines() = %q, want %q", got, tt.lines)
			}
			if got := td.Entry(); got != tt.entry {
				t.Errorf("Entry() = %d, want %d", got, tt.entry)
			}
			if got := td.Exit(); got != tt.exit {
				t.Errorf("Exit() = %d, want %d", got, tt.exit)
			}
		})
	}
}

func TestTextLeafToDict(t *testing.T) {
	got := NewTerminal(nil, "foo",
		WithHref("https://example.com"),
		WithTitle("tip"),
		WithClass("big"),
	).ToDict()
	want := Dict{
		"element": "Terminal",
		"text":    "foo",
		"href":    "https://example.com",
		"title":   "tip",
		"cls":     "big",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ToDict() = %v, want %v", got, want)
	}

	got = NewNonTerminal(nil, "expr").ToDict()
	want = Dict{
		"element": "NonTerminal",
		"text":    "expr",
		"href":    nil,
		"title":   nil,
		"cls":     "",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ToDict() = %v, want %v", got, want)
	}
}

func TestStartToDict(t *testing.T) {
	got := NewStart(nil, "", "").ToDict()
	want := Dict{"element": "Start", "type": "simple", "label": nil}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ToDict() = %v, want %v", got, want)
	}

	got = NewStart(nil, TypeSQL, "rule").ToDict()
	want = Dict{"element": "Start", "type": "sql", "label": "rule"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ToDict() = %v, want %v", got, want)
	}
}
