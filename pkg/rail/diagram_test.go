package rail

import (
	"bytes"
	"strings"
	"testing"

	"github.com/railyard/railyard/pkg/errors"
)

func TestNewDiagramEmpty(t *testing.T) {
	_, err := NewDiagram(nil)
	if !errors.Is(err, errors.ErrCodeEmptyItems) {
		t.Errorf("NewDiagram() error = %v, want code %s", err, errors.ErrCodeEmptyItems)
	}
}

func TestNewDiagramFramesItems(t *testing.T) {
	d, err := NewDiagram(nil, NewTerminal(nil, "foo"))
	if err != nil {
		t.Fatalf("NewDiagram() error: %v", err)
	}
	items := d.Items()
	if len(items) != 3 {
		t.Fatalf("Items() length = %d, want 3", len(items))
	}
	if _, ok := items[0].(*Start); !ok {
		t.Errorf("items[0] = %T, want *Start", items[0])
	}
	if _, ok := items[2].(*End); !ok {
		t.Errorf("items[2] = %T, want *End", items[2])
	}
	if got := d.Width(); got != 104 {
		t.Errorf("Width() = %v, want 104", got)
	}
	if got := d.Up(); got != 11 {
		t.Errorf("Up() = %v, want 11", got)
	}
	if got := d.Down(); got != 11 {
		t.Errorf("Down() = %v, want 11", got)
	}
}

func TestDiagramKeepsCallerBoundaries(t *testing.T) {
	d, err := NewDiagram(nil,
		NewStart(nil, TypeComplex, "rule"),
		NewTerminal(nil, "foo"),
		NewEnd(nil, TypeComplex))
	if err != nil {
		t.Fatalf("NewDiagram() error: %v", err)
	}
	if got := len(d.Items()); got != 3 {
		t.Errorf("Items() length = %d, want 3", got)
	}
}

func TestDiagramLayoutDimensions(t *testing.T) {
	d, err := NewDiagram(nil, NewTerminal(nil, "foo"))
	if err != nil {
		t.Fatalf("NewDiagram() error: %v", err)
	}
	d.Layout()
	if got := d.attrs["width"]; got != "144" {
		t.Errorf(`width = %v, want "144"`, got)
	}
	if got := d.attrs["height"]; got != "62" {
		t.Errorf(`height = %v, want "62"`, got)
	}
	if got := d.attrs["viewBox"]; got != "0 0 144 62" {
		t.Errorf(`viewBox = %v, want "0 0 144 62"`, got)
	}
}

func TestDiagramLayoutPaddingShorthand(t *testing.T) {
	d, err := NewDiagram(nil, NewTerminal(nil, "foo"))
	if err != nil {
		t.Fatalf("NewDiagram() error: %v", err)
	}
	// top 10, right 30, bottom defaults to top, left defaults to right.
	d.Layout(10, 30)
	if got := d.attrs["width"]; got != "164" {
		t.Errorf(`width = %v, want "164"`, got)
	}
	if got := d.attrs["height"]; got != "42" {
		t.Errorf(`height = %v, want "42"`, got)
	}
}

func TestDiagramWriteSVG(t *testing.T) {
	d, err := NewDiagram(nil, NewTerminal(nil, "foo"))
	if err != nil {
		t.Fatalf("NewDiagram() error: %v", err)
	}
	var buf bytes.Buffer
	if err := d.WriteSVG(&buf); err != nil {
		t.Fatalf("WriteSVG() error: %v", err)
	}
	svg := buf.String()
	for _, want := range []string{
		`<svg class="railroad-diagram" height="62" viewBox="0 0 144 62" width="144">`,
		`<g transform="translate(.5 .5)">`,
		`<rect height="22" rx="10" ry="10" width="44" x="50" y="20">`,
		`<text x="72" y="35">foo</text>`,
		`d="M20 21v20m10 -20v20m-10 -10h20"`,
		`d="M 104 31 h 20 m -10 -10 v 20 m 10 -20 v 20"`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("WriteSVG() output missing %q:\n%s", want, svg)
		}
	}
}

func TestDiagramWriteStandalone(t *testing.T) {
	d, err := NewDiagram(nil, NewTerminal(nil, "foo"))
	if err != nil {
		t.Fatalf("NewDiagram() error: %v", err)
	}
	var buf bytes.Buffer
	if err := d.WriteStandalone(&buf, ""); err != nil {
		t.Fatalf("WriteStandalone() error: %v", err)
	}
	svg := buf.String()
	for _, want := range []string{
		`xmlns="http://www.w3.org/2000/svg"`,
		`xmlns:xlink="http://www.w3.org/1999/xlink"`,
		"<style>/* <![CDATA[ */",
		"svg.railroad-diagram path {",
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("WriteStandalone() output missing %q", want)
		}
	}

	// The standalone extras must not leak into later fragment writes.
	buf.Reset()
	if err := d.WriteSVG(&buf); err != nil {
		t.Fatalf("WriteSVG() error: %v", err)
	}
	if strings.Contains(buf.String(), "xmlns") {
		t.Error("WriteSVG() after WriteStandalone() still has namespace attributes")
	}
	if strings.Contains(buf.String(), "<style>") {
		t.Error("WriteSVG() after WriteStandalone() still has the stylesheet")
	}
}

func TestDiagramWriteStandaloneCustomCSS(t *testing.T) {
	d, err := NewDiagram(nil, NewTerminal(nil, "foo"))
	if err != nil {
		t.Fatalf("NewDiagram() error: %v", err)
	}
	var buf bytes.Buffer
	if err := d.WriteStandalone(&buf, "svg { fill: red; }"); err != nil {
		t.Fatalf("WriteStandalone() error: %v", err)
	}
	if !strings.Contains(buf.String(), "svg { fill: red; }") {
		t.Error("WriteStandalone() output missing custom stylesheet")
	}
	if strings.Contains(buf.String(), "railroad-diagram path") {
		t.Error("WriteStandalone() used the default stylesheet despite a custom one")
	}
}

func TestDiagramWriteText(t *testing.T) {
	d, err := NewDiagram(nil, NewTerminal(nil, "foo"))
	if err != nil {
		t.Fatalf("NewDiagram() error: %v", err)
	}
	var buf bytes.Buffer
	if err := d.WriteText(&buf); err != nil {
		t.Fatalf("WriteText() error: %v", err)
	}
	want := "      ╭─────╮      \n" +
		"├┼────│ foo │────┼┤\n" +
		"      ╰─────╯      \n"
	if got := buf.String(); got != want {
		t.Errorf("WriteText() = %q, want %q", got, want)
	}
}

func TestDiagramWriteTextASCII(t *testing.T) {
	p := DefaultParams()
	p.Formatting = FormattingASCII
	d, err := NewDiagram(p, NewTerminal(p, "foo"))
	if err != nil {
		t.Fatalf("NewDiagram() error: %v", err)
	}
	var buf bytes.Buffer
	if err := d.WriteText(&buf); err != nil {
		t.Fatalf("WriteText() error: %v", err)
	}
	want := "      /-----\\      \n" +
		"|+----| foo |----+|\n" +
		"      \\-----/      \n"
	if got := buf.String(); got != want {
		t.Errorf("WriteText() = %q, want %q", got, want)
	}
}

func TestDiagramWriteTextEscapesHTML(t *testing.T) {
	p := DefaultParams()
	p.EscapeHTML = true
	d, err := NewDiagram(p, NewTerminal(p, `<x>`))
	if err != nil {
		t.Fatalf("NewDiagram() error: %v", err)
	}
	var buf bytes.Buffer
	if err := d.WriteText(&buf); err != nil {
		t.Fatalf("WriteText() error: %v", err)
	}
	if !strings.Contains(buf.String(), "&lt;x&gt;") {
		t.Errorf("WriteText() output not escaped: %q", buf.String())
	}
}

func TestDiagramWalk(t *testing.T) {
	d, err := NewDiagram(nil, NewTerminal(nil, "foo"))
	if err != nil {
		t.Fatalf("NewDiagram() error: %v", err)
	}
	var kinds []string
	d.Walk(func(e Element) {
		kinds = append(kinds, e.ToDict()["element"].(string))
	})
	want := []string{"Start", "Terminal", "End"}
	if len(kinds) != len(want) {
		t.Fatalf("Walk() visited %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("Walk() visited %v, want %v", kinds, want)
			break
		}
	}
}

func TestDebugAnnotations(t *testing.T) {
	p := DefaultParams()
	p.Debug = true
	term := NewTerminal(p, "foo")
	var buf bytes.Buffer
	term.writeSVG(&buf)
	if !strings.Contains(buf.String(), `data-x="Terminal w:44 h:11/0/11"`) {
		t.Errorf("debug annotation missing: %s", buf.String())
	}
}

func TestStrokeOddPixelLengthOff(t *testing.T) {
	p := DefaultParams()
	p.StrokeOddPixelLength = false
	d, err := NewDiagram(p, NewTerminal(p, "foo"))
	if err != nil {
		t.Fatalf("NewDiagram() error: %v", err)
	}
	var buf bytes.Buffer
	if err := d.WriteSVG(&buf); err != nil {
		t.Fatalf("WriteSVG() error: %v", err)
	}
	if strings.Contains(buf.String(), "translate(.5 .5)") {
		t.Error("WriteSVG() output has the half-pixel transform despite it being off")
	}
}
