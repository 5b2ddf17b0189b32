package rail

import (
	"bytes"
	"testing"
)

func TestFmtNum(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{10, "10"},
		{-10, "-10"},
		{2.5, "2.5"},
		{-0.5, "-0.5"},
		{144, "144"},
		{3.7, "3.7"},
	}
	for _, tt := range tests {
		if got := fmtNum(tt.in); got != tt.want {
			t.Errorf("fmtNum(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEscapeAttr(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{`a & 'b' "c"`, "a &amp; &apos;b&apos; &quot;c&quot;"},
		{"<tag>", "<tag>"}, // angle brackets are fine inside quoted attributes
		{44.0, "44"},
		{7, "7"},
	}
	for _, tt := range tests {
		if got := escapeAttr(tt.in); got != tt.want {
			t.Errorf("escapeAttr(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEscapeText(t *testing.T) {
	got := escapeText(`<foo> & "bar"`)
	want := "&lt;foo> &amp; &quot;bar&quot;"
	if got != want {
		t.Errorf("escapeText() = %q, want %q", got, want)
	}
}

func TestWriteAttrsSortsNames(t *testing.T) {
	var buf bytes.Buffer
	e := newSVGElement("rect", attrs{"y": 2.0, "x": 1.0, "width": 44.0})
	e.writeSVG(&buf)
	want := `<rect width="44" x="1" y="2"></rect>`
	if got := buf.String(); got != want {
		t.Errorf("writeSVG() = %q, want %q", got, want)
	}
}

func TestWriteElementNewlineAfterGroups(t *testing.T) {
	var buf bytes.Buffer
	g := newSVGElement("g", attrs{}, newSVGElement("title", attrs{}, textNode("hi")))
	g.writeSVG(&buf)
	want := "<g>\n<title>hi</title></g>"
	if got := buf.String(); got != want {
		t.Errorf("writeSVG() = %q, want %q", got, want)
	}
}

func TestPathCommands(t *testing.T) {
	p := newPath(1, 2, "", 10).h(3).down(4).up(5).m(6, -7).l(8, 9)
	want := "M1 2h3v4v-5m6 -7l8 9"
	if got := p.d.String(); got != want {
		t.Errorf("path data = %q, want %q", got, want)
	}
}

func TestPathRightAndLeftClampNegatives(t *testing.T) {
	p := newPath(0, 0, "", 10).right(-5).left(-5).down(-1).up(-1)
	want := "M0 0h0h-0v0v-0"
	if got := p.d.String(); got != want {
		t.Errorf("path data = %q, want %q", got, want)
	}
}

func TestPathArc(t *testing.T) {
	tests := []struct {
		sweep string
		want  string
	}{
		{"ne", "a10 10 0 0 1 10 10"},
		{"ws", "a10 10 0 0 0 10 10"},
		{"se", "a10 10 0 0 0 10 -10"},
		{"wn", "a10 10 0 0 1 10 -10"},
		{"es", "a10 10 0 0 1 -10 10"},
	}
	for _, tt := range tests {
		p := newPath(0, 0, "", 10).arc(tt.sweep)
		want := "M0 0" + tt.want
		if got := p.d.String(); got != want {
			t.Errorf("arc(%q) = %q, want %q", tt.sweep, got, want)
		}
	}
}

func TestPathWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	newPath(0, 0, "skip", 10).h(5).writeSVG(&buf)
	want := `<path class="skip" d="M0 0h5" />`
	if got := buf.String(); got != want {
		t.Errorf("writeSVG() = %q, want %q", got, want)
	}

	buf.Reset()
	newPath(0, 0, "", 10).h(5).writeSVG(&buf)
	want = `<path d="M0 0h5" />`
	if got := buf.String(); got != want {
		t.Errorf("writeSVG() = %q, want %q", got, want)
	}
}

func TestStyleWrapsCDATA(t *testing.T) {
	var buf bytes.Buffer
	s := &style{css: "svg { fill: none; }"}
	s.writeSVG(&buf)
	want := "<style>/* <![CDATA[ */\nsvg { fill: none; }\n/* ]]> */\n</style>"
	if got := buf.String(); got != want {
		t.Errorf("writeSVG() = %q, want %q", got, want)
	}
}
