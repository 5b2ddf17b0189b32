package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/railyard/railyard/pkg/errors"
	"github.com/railyard/railyard/pkg/rail"
)

// renderSettings holds the output options a parameters file can set on top of
// the layout parameters.
type renderSettings struct {
	Standalone bool
	CSS        string
}

// paramsFile is the on-disk parameters schema. Every field is optional;
// unset fields keep their defaults. The same keys work in JSON, YAML, and
// TOML files.
type paramsFile struct {
	Debug                *bool    `json:"debug" yaml:"debug" toml:"debug"`
	StrokeOddPixelLength *bool    `json:"stroke_odd_pixel_length" yaml:"stroke_odd_pixel_length" toml:"stroke_odd_pixel_length"`
	DiagramClass         *string  `json:"diagram_class" yaml:"diagram_class" toml:"diagram_class"`
	VS                   *float64 `json:"VS" yaml:"VS" toml:"VS"`
	AR                   *float64 `json:"AR" yaml:"AR" toml:"AR"`
	CharWidth            *float64 `json:"char_width" yaml:"char_width" toml:"char_width"`
	CommentCharWidth     *float64 `json:"comment_char_width" yaml:"comment_char_width" toml:"comment_char_width"`
	InternalAlignment    *string  `json:"internal_alignment" yaml:"internal_alignment" toml:"internal_alignment"`
	EscapeHTML           *bool    `json:"escape_html" yaml:"escape_html" toml:"escape_html"`
	Formatting           *string  `json:"formatting" yaml:"formatting" toml:"formatting"`
	Type                 *string  `json:"type" yaml:"type" toml:"type"`
	Standalone           *bool    `json:"standalone" yaml:"standalone" toml:"standalone"`
	CSS                  *string  `json:"css" yaml:"css" toml:"css"`
}

// loadParams reads a parameters file and merges it over base, returning the
// merged layout parameters and the render settings. An empty path returns
// base unchanged. The format is picked by extension: .yaml/.yml, .toml, and
// .json (the default for unknown extensions).
func loadParams(path string, base *rail.Params) (*rail.Params, renderSettings, error) {
	p := *base
	settings := renderSettings{}
	if path == "" {
		return &p, settings, nil
	}

	data, err := readInput(path)
	if err != nil {
		return nil, settings, err
	}

	var file paramsFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	case ".toml":
		err = toml.Unmarshal(data, &file)
	default:
		err = json.Unmarshal(data, &file)
	}
	if err != nil {
		return nil, settings, fmt.Errorf("parameters file %s: %w", path, err)
	}

	applyParams(&p, &file)
	if file.Standalone != nil {
		settings.Standalone = *file.Standalone
	}
	if file.CSS != nil {
		settings.CSS = *file.CSS
	}
	if err := validateParams(&p); err != nil {
		return nil, settings, fmt.Errorf("parameters file %s: %w", path, err)
	}
	return &p, settings, nil
}

func applyParams(p *rail.Params, file *paramsFile) {
	if file.Debug != nil {
		p.Debug = *file.Debug
	}
	if file.StrokeOddPixelLength != nil {
		p.StrokeOddPixelLength = *file.StrokeOddPixelLength
	}
	if file.DiagramClass != nil {
		p.DiagramClass = *file.DiagramClass
	}
	if file.VS != nil {
		p.VS = *file.VS
	}
	if file.AR != nil {
		p.AR = *file.AR
	}
	if file.CharWidth != nil {
		p.CharWidth = *file.CharWidth
	}
	if file.CommentCharWidth != nil {
		p.CommentCharWidth = *file.CommentCharWidth
	}
	if file.InternalAlignment != nil {
		p.InternalAlignment = *file.InternalAlignment
	}
	if file.EscapeHTML != nil {
		p.EscapeHTML = *file.EscapeHTML
	}
	if file.Formatting != nil {
		p.Formatting = *file.Formatting
	}
	if file.Type != nil {
		p.Type = *file.Type
	}
}

func validateParams(p *rail.Params) error {
	switch p.Formatting {
	case rail.FormattingASCII, rail.FormattingUnicode:
	default:
		return errors.New(errors.ErrCodeInvalidParams,
			"formatting must be %q or %q, got %q", rail.FormattingASCII, rail.FormattingUnicode, p.Formatting)
	}
	switch p.Type {
	case rail.TypeSimple, rail.TypeComplex, rail.TypeSQL:
	default:
		return errors.New(errors.ErrCodeInvalidParams,
			"type must be %q, %q, or %q, got %q", rail.TypeSimple, rail.TypeComplex, rail.TypeSQL, p.Type)
	}
	switch p.InternalAlignment {
	case rail.AlignLeft, rail.AlignRight, rail.AlignCenter:
	default:
		return errors.New(errors.ErrCodeInvalidParams,
			"internal_alignment must be %q, %q, or %q, got %q", rail.AlignLeft, rail.AlignRight, rail.AlignCenter, p.InternalAlignment)
	}
	if p.VS <= 0 || p.AR <= 0 || p.CharWidth <= 0 || p.CommentCharWidth <= 0 {
		return errors.New(errors.ErrCodeInvalidParams,
			"VS, AR, char_width, and comment_char_width must be positive")
	}
	return nil
}

// documentParams returns the default parameters for structural documents,
// which frame diagrams with complex boundaries unless overridden.
func documentParams() *rail.Params {
	p := rail.DefaultParams()
	p.Type = rail.TypeComplex
	return p
}
