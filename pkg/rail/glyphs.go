package rail

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// GlyphSet holds the named drawing characters used to assemble text diagrams.
// Every glyph must occupy exactly one terminal cell; newGlyphSet enforces
// this, so grid arithmetic can count cells by counting glyphs.
type GlyphSet struct {
	parts map[string]string
}

func newGlyphSet(parts map[string]string) (*GlyphSet, error) {
	for name, glyph := range parts {
		if runewidth.StringWidth(glyph) != 1 {
			return nil, fmt.Errorf("glyph %q is not one cell wide: %q", name, glyph)
		}
	}
	return &GlyphSet{parts: parts}, nil
}

func mustGlyphSet(parts map[string]string) *GlyphSet {
	gs, err := newGlyphSet(parts)
	if err != nil {
		panic(err)
	}
	return gs
}

// part returns the named glyph. Missing names are programming errors.
func (gs *GlyphSet) part(name string) string {
	glyph, ok := gs.parts[name]
	if !ok {
		panic(fmt.Sprintf("rail: unknown text part %q", name))
	}
	return glyph
}

// Unicode 25xx box drawing characters, plus a few others.
var unicodeGlyphs = mustGlyphSet(map[string]string{
	"cross_diag":              "╳",
	"corner_bot_left":         "└",
	"corner_bot_right":        "┘",
	"corner_top_left":         "┌",
	"corner_top_right":        "┐",
	"cross":                   "┼",
	"left":                    "│",
	"line":                    "─",
	"line_vertical":           "│",
	"multi_repeat":            "↺",
	"rect_bot":                "─",
	"rect_bot_dashed":         "┄",
	"rect_bot_left":           "└",
	"rect_bot_right":          "┘",
	"rect_left":               "│",
	"rect_left_dashed":        "┆",
	"rect_right":              "│",
	"rect_right_dashed":       "┆",
	"rect_top":                "─",
	"rect_top_dashed":         "┄",
	"rect_top_left":           "┌",
	"rect_top_right":          "┐",
	"repeat_bot_left":         "╰",
	"repeat_bot_right":        "╯",
	"repeat_left":             "│",
	"repeat_right":            "│",
	"repeat_top_left":         "╭",
	"repeat_top_right":        "╮",
	"right":                   "│",
	"round_corner_bot_left":   "╰",
	"round_corner_bot_right":  "╯",
	"round_corner_top_left":   "╭",
	"round_corner_top_right":  "╮",
	"round_rect_bot":          "─",
	"round_rect_bot_dashed":   "┄",
	"round_rect_bot_left":     "╰",
	"round_rect_bot_right":    "╯",
	"round_rect_left":         "│",
	"round_rect_left_dashed":  "┆",
	"round_rect_right":        "│",
	"round_rect_right_dashed": "┆",
	"round_rect_top":          "─",
	"round_rect_top_dashed":   "┄",
	"round_rect_top_left":     "╭",
	"round_rect_top_right":    "╮",
	"angle_rect_bot":          "─",
	"angle_rect_bot_dashed":   "┄",
	"angle_rect_bot_left":     "◝",
	"angle_rect_bot_right":    "◜",
	"angle_rect_left":         "⟨",
	"angle_rect_left_dashed":  "⟨",
	"angle_rect_right":        "⟩",
	"angle_rect_right_dashed": "⟩",
	"angle_rect_top":          "─",
	"angle_rect_top_dashed":   "┄",
	"angle_rect_top_left":     "◞",
	"angle_rect_top_right":    "◟",
	"separator":               "─",
	"tee_left":                "┤",
	"tee_right":               "├",
	"arrow_right":             "►",
	"arrow_left":              "◄",
	"ball":                    "●",
})

// Plain old ASCII characters.
var asciiGlyphs = mustGlyphSet(map[string]string{
	"cross_diag":              "X",
	"corner_bot_left":         "\\",
	"corner_bot_right":        "/",
	"corner_top_left":         "/",
	"corner_top_right":        "\\",
	"cross":                   "+",
	"left":                    "|",
	"line":                    "-",
	"line_vertical":           "|",
	"multi_repeat":            "&",
	"rect_bot":                "-",
	"rect_bot_dashed":         "-",
	"rect_bot_left":           "+",
	"rect_bot_right":          "+",
	"rect_left":               "|",
	"rect_left_dashed":        "|",
	"rect_right":              "|",
	"rect_right_dashed":       "|",
	"rect_top":                "-",
	"rect_top_dashed":         "-",
	"rect_top_left":           "+",
	"rect_top_right":          "+",
	"repeat_bot_left":         "\\",
	"repeat_bot_right":        "/",
	"repeat_left":             "|",
	"repeat_right":            "|",
	"repeat_top_left":         "/",
	"repeat_top_right":        "\\",
	"right":                   "|",
	"round_corner_bot_left":   "\\",
	"round_corner_bot_right":  "/",
	"round_corner_top_left":   "/",
	"round_corner_top_right":  "\\",
	"round_rect_bot":          "-",
	"round_rect_bot_dashed":   "-",
	"round_rect_bot_left":     "\\",
	"round_rect_bot_right":    "/",
	"round_rect_left":         "|",
	"round_rect_left_dashed":  "|",
	"round_rect_right":        "|",
	"round_rect_right_dashed": "|",
	"round_rect_top":          "-",
	"round_rect_top_dashed":   "-",
	"round_rect_top_left":     "/",
	"round_rect_top_right":    "\\",
	"angle_rect_bot":          "-",
	"angle_rect_bot_dashed":   "-",
	"angle_rect_bot_left":     "\\",
	"angle_rect_bot_right":    "/",
	"angle_rect_left":         "<",
	"angle_rect_left_dashed":  "|",
	"angle_rect_right":        ">",
	"angle_rect_right_dashed": "|",
	"angle_rect_top":          "-",
	"angle_rect_top_dashed":   "-",
	"angle_rect_top_left":     "/",
	"angle_rect_top_right":    "\\",
	"separator":               "-",
	"tee_left":                "|",
	"tee_right":               "|",
	"arrow_right":             ">",
	"arrow_left":              "<",
	"ball":                    "o",
})
