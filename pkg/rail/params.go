package rail

// Alignment values for distributing slack when a child is narrower than its
// allotted width.
const (
	AlignLeft   = "left"
	AlignRight  = "right"
	AlignCenter = "center"
)

// Formatting values selecting the text-diagram glyph set.
const (
	FormattingASCII   = "ascii"
	FormattingUnicode = "unicode"
)

// Diagram boundary variants used by Start and End markers.
const (
	TypeSimple  = "simple"
	TypeComplex = "complex"
	TypeSQL     = "sql"
)

// Params is the per-tree rendering parameter bundle. It is captured by every
// node at construction and never mutated afterwards; concurrent renders with
// different settings must use separate Params values.
type Params struct {
	// Debug annotates each SVG group with its computed measurements.
	Debug bool

	// StrokeOddPixelLength offsets the diagram by half a pixel so odd-width
	// strokes (1px, 3px, ...) land on pixel centers.
	StrokeOddPixelLength bool

	// DiagramClass is the class attribute of the root <svg> element.
	DiagramClass string

	// VS is the minimum vertical separation between elements.
	VS float64

	// AR is the radius of connecting arcs. It doubles as the minimum
	// horizontal clearance for curves in and out of branches.
	AR float64

	// CharWidth is the horizontal advance of one monospace character.
	CharWidth float64

	// CommentCharWidth is the advance of one comment character, which
	// renders in smaller text.
	CommentCharWidth float64

	// InternalAlignment distributes slack when an element is narrower than
	// its allotted width: AlignLeft, AlignRight, or AlignCenter.
	InternalAlignment string

	// EscapeHTML makes WriteText HTML-escape its output.
	EscapeHTML bool

	// Formatting selects the text-diagram glyph set: FormattingASCII or
	// FormattingUnicode.
	Formatting string

	// Type is the default Start/End variant for diagrams built from
	// structural dictionaries: TypeSimple, TypeComplex, or TypeSQL.
	Type string
}

// DefaultParams returns the documented default parameter bundle.
func DefaultParams() *Params {
	return &Params{
		Debug:                false,
		StrokeOddPixelLength: true,
		DiagramClass:         "railroad-diagram",
		VS:                   8,
		AR:                   10,
		CharWidth:            8,
		CommentCharWidth:     7,
		InternalAlignment:    AlignCenter,
		EscapeHTML:           false,
		Formatting:           FormattingUnicode,
		Type:                 TypeSimple,
	}
}

// resolveParams fills unset fields so hand-built Params values behave like
// DefaultParams overrides. Boolean fields are left alone; start from
// DefaultParams to get StrokeOddPixelLength=true.
func resolveParams(p *Params) *Params {
	if p == nil {
		return DefaultParams()
	}
	if p.DiagramClass == "" {
		p.DiagramClass = "railroad-diagram"
	}
	if p.VS == 0 {
		p.VS = 8
	}
	if p.AR == 0 {
		p.AR = 10
	}
	if p.CharWidth == 0 {
		p.CharWidth = 8
	}
	if p.CommentCharWidth == 0 {
		p.CommentCharWidth = 7
	}
	if p.InternalAlignment == "" {
		p.InternalAlignment = AlignCenter
	}
	if p.Formatting == "" {
		p.Formatting = FormattingUnicode
	}
	if p.Type == "" {
		p.Type = TypeSimple
	}
	return p
}

// glyphs returns the glyph set selected by the Formatting option.
func (p *Params) glyphs() *GlyphSet {
	if p.Formatting == FormattingASCII {
		return asciiGlyphs
	}
	return unicodeGlyphs
}

// determineGaps splits the slack between an allotted width and an element's
// own width according to the alignment setting.
func determineGaps(outer, inner float64, alignment string) (left, right float64) {
	diff := outer - inner
	switch alignment {
	case AlignLeft:
		return 0, diff
	case AlignRight:
		return diff, 0
	default:
		return diff / 2, diff / 2
	}
}

// textGaps is the integer character-cell version of determineGaps.
func textGaps(outer, inner int, alignment string) (left, right int) {
	diff := outer - inner
	switch alignment {
	case AlignLeft:
		return 0, diff
	case AlignRight:
		return diff, 0
	default:
		l := diff / 2
		return l, diff - l
	}
}
