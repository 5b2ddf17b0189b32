package rail

import (
	"reflect"
	"strings"
	"testing"
)

func TestNewOneOrMoreMeasurements(t *testing.T) {
	o := NewOneOrMore(nil, NewTerminal(nil, "a"), nil)
	if got := o.Width(); got != 48 {
		t.Errorf("Width() = %v, want 48", got)
	}
	if got := o.Up(); got != 11 {
		t.Errorf("Up() = %v, want 11", got)
	}
	if got := o.Down(); got != 20 {
		t.Errorf("Down() = %v, want 20", got)
	}
	if !o.NeedsSpace() {
		t.Error("NeedsSpace() = false, want true")
	}
}

func TestOneOrMoreNilRepeatIsSkip(t *testing.T) {
	o := NewOneOrMore(nil, NewTerminal(nil, "a"), nil)
	d := o.ToDict()
	repeat := d["repeat"].(Dict)
	if repeat["element"] != "Skip" {
		t.Errorf("repeat = %v, want Skip", repeat)
	}
}

func TestOneOrMoreTextDiagram(t *testing.T) {
	o := NewOneOrMore(nil, NewTerminal(nil, "a"), nil)
	td := o.TextDiagram()
	want := []string{
		"   ╭───╮   ",
		"╭──│ a │──╮",
		"│  ╰───╯  │",
		"╰─────────╯",
	}
	if got := td.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("Lines() = %q, want %q", got, want)
	}
	if td.Entry() != 1 || td.Exit() != 1 {
		t.Errorf("entry/exit = %d/%d, want 1/1", td.Entry(), td.Exit())
	}
}

func TestOneOrMoreWithRepeatTextDiagram(t *testing.T) {
	o := NewOneOrMore(nil, NewTerminal(nil, "a"), NewComment(nil, ","))
	td := o.TextDiagram()
	text := td.String()
	if !strings.Contains(text, "│ a │") {
		t.Errorf("text diagram missing item:\n%s", text)
	}
	if !strings.Contains(text, ",") {
		t.Errorf("text diagram missing repeat comment:\n%s", text)
	}
	for i, line := range td.Lines() {
		if cellWidth(line) != td.Width() {
			t.Errorf("line %d is %d cells, want %d", i, cellWidth(line), td.Width())
		}
	}
}

func TestNewGroupMeasurements(t *testing.T) {
	g := NewLabeledGroup(nil, NewTerminal(nil, "x"), "note")
	if got := g.Width(); got != 48 {
		t.Errorf("Width() = %v, want 48", got)
	}
	if got := g.Up(); got != 35 {
		t.Errorf("Up() = %v, want 35", got)
	}
	if got := g.Down(); got != 19 {
		t.Errorf("Down() = %v, want 19", got)
	}
}

func TestGroupWithoutLabel(t *testing.T) {
	g := NewGroup(nil, NewTerminal(nil, "x"), nil)
	if got := g.Up(); got != 19 {
		t.Errorf("Up() = %v, want 19", got)
	}
	d := g.ToDict()
	if d["label"] != nil {
		t.Errorf("label = %v, want nil", d["label"])
	}
}

func TestGroupToDict(t *testing.T) {
	g := NewLabeledGroup(nil, NewTerminal(nil, "x"), "note")
	d := g.ToDict()
	if d["element"] != "Group" {
		t.Fatalf("element = %v, want Group", d["element"])
	}
	label := d["label"].(Dict)
	if label["element"] != "Comment" || label["text"] != "note" {
		t.Errorf("label = %v, want Comment note", label)
	}
}

func TestGroupTextDiagram(t *testing.T) {
	g := NewLabeledGroup(nil, NewTerminal(nil, "x"), "note")
	td := g.TextDiagram()
	text := td.String()
	if !strings.Contains(text, "note") {
		t.Errorf("text diagram missing label:\n%s", text)
	}
	if !strings.Contains(text, "┆") {
		t.Errorf("text diagram missing dashed border:\n%s", text)
	}
	if td.Entry() != td.Exit() {
		t.Errorf("entry/exit = %d/%d, want equal", td.Entry(), td.Exit())
	}
}
