package rail

import (
	"reflect"
	"testing"

	"github.com/railyard/railyard/pkg/errors"
)

func TestNewSequenceMeasurements(t *testing.T) {
	seq, err := NewSequence(nil, NewTerminal(nil, "a"), NewTerminal(nil, "b"))
	if err != nil {
		t.Fatalf("NewSequence() error: %v", err)
	}
	if got := seq.Width(); got != 76 {
		t.Errorf("Width() = %v, want 76", got)
	}
	if got := seq.Up(); got != 11 {
		t.Errorf("Up() = %v, want 11", got)
	}
	if got := seq.Down(); got != 11 {
		t.Errorf("Down() = %v, want 11", got)
	}
	if !seq.NeedsSpace() {
		t.Error("NeedsSpace() = false, want true")
	}
}

func TestNewSequenceEmpty(t *testing.T) {
	_, err := NewSequence(nil)
	if !errors.Is(err, errors.ErrCodeEmptyItems) {
		t.Errorf("NewSequence() error = %v, want code %s", err, errors.ErrCodeEmptyItems)
	}
}

func TestSequenceTextDiagram(t *testing.T) {
	seq, err := NewSequence(nil, NewTerminal(nil, "a"), NewTerminal(nil, "b"))
	if err != nil {
		t.Fatalf("NewSequence() error: %v", err)
	}
	td := seq.TextDiagram()
	if got := td.Height(); got != 3 {
		t.Fatalf("Height() = %d, want 3", got)
	}
	wantMiddle := "───│ a │─────│ b │──"
	if got := td.Lines()[1]; got != wantMiddle {
		t.Errorf("middle line = %q, want %q", got, wantMiddle)
	}
	if td.Entry() != 1 || td.Exit() != 1 {
		t.Errorf("entry/exit = %d/%d, want 1/1", td.Entry(), td.Exit())
	}
}

func TestNewStackMeasurements(t *testing.T) {
	st, err := NewStack(nil, NewTerminal(nil, "a"), NewTerminal(nil, "b"))
	if err != nil {
		t.Fatalf("NewStack() error: %v", err)
	}
	if got := st.Width(); got != 68 {
		t.Errorf("Width() = %v, want 68", got)
	}
	if got := st.Height(); got != 40 {
		t.Errorf("Height() = %v, want 40", got)
	}
	if got := st.Up(); got != 11 {
		t.Errorf("Up() = %v, want 11", got)
	}
	if got := st.Down(); got != 11 {
		t.Errorf("Down() = %v, want 11", got)
	}
}

func TestStackTextDiagram(t *testing.T) {
	st, err := NewStack(nil, NewTerminal(nil, "a"), NewTerminal(nil, "b"))
	if err != nil {
		t.Fatalf("NewStack() error: %v", err)
	}
	td := st.TextDiagram()
	want := []string{
		"   ╭───╮   ",
		"───│ a │──┐",
		"   ╰───╯  │",
		"┌─────────┘",
		"│  ╭───╮   ",
		"└──│ b │───",
		"   ╰───╯   ",
	}
	if got := td.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("Lines() = %q, want %q", got, want)
	}
	if td.Entry() != 1 || td.Exit() != 5 {
		t.Errorf("entry/exit = %d/%d, want 1/5", td.Entry(), td.Exit())
	}
}

func TestNewOptionalSequenceDegradesToSequence(t *testing.T) {
	el, err := NewOptionalSequence(nil, NewTerminal(nil, "a"))
	if err != nil {
		t.Fatalf("NewOptionalSequence() error: %v", err)
	}
	if _, ok := el.(*Sequence); !ok {
		t.Errorf("NewOptionalSequence() with one item = %T, want *Sequence", el)
	}

	el, err = NewOptionalSequence(nil, NewTerminal(nil, "a"), NewTerminal(nil, "b"))
	if err != nil {
		t.Fatalf("NewOptionalSequence() error: %v", err)
	}
	if _, ok := el.(*OptionalSequence); !ok {
		t.Errorf("NewOptionalSequence() with two items = %T, want *OptionalSequence", el)
	}
}

func TestOptionalSequenceMeasurements(t *testing.T) {
	el, err := NewOptionalSequence(nil, NewTerminal(nil, "a"), NewTerminal(nil, "b"))
	if err != nil {
		t.Fatalf("NewOptionalSequence() error: %v", err)
	}
	if got := el.Width(); got != 116 {
		t.Errorf("Width() = %v, want 116", got)
	}
	if got := el.Up(); got != 20 {
		t.Errorf("Up() = %v, want 20", got)
	}
	if got := el.Down(); got != 20 {
		t.Errorf("Down() = %v, want 20", got)
	}
}

func TestOptionalSequenceTextDiagram(t *testing.T) {
	el, err := NewOptionalSequence(nil,
		NewTerminal(nil, "a"), NewTerminal(nil, "b"), NewTerminal(nil, "c"))
	if err != nil {
		t.Fatalf("NewOptionalSequence() error: %v", err)
	}
	td := el.TextDiagram()
	if td.Entry() != td.Exit() {
		t.Errorf("entry/exit = %d/%d, want equal", td.Entry(), td.Exit())
	}
	lines := td.Lines()
	for i, line := range lines {
		if cellWidth(line) != td.Width() {
			t.Errorf("line %d is %d cells, want %d", i, cellWidth(line), td.Width())
		}
	}
}

func TestNewAlternatingSequenceArity(t *testing.T) {
	_, err := NewAlternatingSequence(nil, NewTerminal(nil, "a"))
	if !errors.Is(err, errors.ErrCodeWrongArity) {
		t.Errorf("one item: error = %v, want code %s", err, errors.ErrCodeWrongArity)
	}
	_, err = NewAlternatingSequence(nil,
		NewTerminal(nil, "a"), NewTerminal(nil, "b"), NewTerminal(nil, "c"))
	if !errors.Is(err, errors.ErrCodeWrongArity) {
		t.Errorf("three items: error = %v, want code %s", err, errors.ErrCodeWrongArity)
	}
}

func TestNewAlternatingSequenceMeasurements(t *testing.T) {
	alt, err := NewAlternatingSequence(nil, NewTerminal(nil, "a"), NewTerminal(nil, "b"))
	if err != nil {
		t.Fatalf("NewAlternatingSequence() error: %v", err)
	}
	if got := alt.Width(); got != 88 {
		t.Errorf("Width() = %v, want 88", got)
	}
	if got := alt.Up(); got != 36 {
		t.Errorf("Up() = %v, want 36", got)
	}
	if got := alt.Down(); got != 36 {
		t.Errorf("Down() = %v, want 36", got)
	}
}

func TestAlternatingSequenceTextDiagram(t *testing.T) {
	alt, err := NewAlternatingSequence(nil, NewTerminal(nil, "a"), NewTerminal(nil, "b"))
	if err != nil {
		t.Fatalf("NewAlternatingSequence() error: %v", err)
	}
	td := alt.TextDiagram()
	if td.Entry() != td.Exit() {
		t.Errorf("entry/exit = %d/%d, want equal", td.Entry(), td.Exit())
	}
	found := false
	for _, line := range td.Lines() {
		if cellWidth(line) != td.Width() {
			t.Errorf("line %q is %d cells, want %d", line, cellWidth(line), td.Width())
		}
		for _, r := range line {
			if string(r) == "╳" {
				found = true
			}
		}
	}
	if !found {
		t.Error("text diagram has no crossover glyph")
	}
}
