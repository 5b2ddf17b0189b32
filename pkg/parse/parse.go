// Package parse turns diagram source text into rail diagrams.
//
// Three input forms are supported: an indentation-based DSL (one command per
// line, children indented beneath their parent), JSON documents in the
// structural dictionary form, and YAML documents of the same shape.
package parse

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/railyard/railyard/pkg/errors"
	"github.com/railyard/railyard/pkg/rail"
)

// Parse parses the indentation DSL and builds a diagram:
//
//	Choice: 0
//		Terminal: foo
//		Terminal raw: bar
//
// Block commands take their arguments after the colon, text commands take
// their text after the colon and an optional href before it. Malformed input
// is reported as a SYNTAX_ERROR carrying the offending line number.
func Parse(p *rail.Params, input string) (*rail.Diagram, error) {
	root, err := buildTree(input)
	if err != nil {
		return nil, err
	}
	items := make([]rail.Element, 0, len(root.children))
	for _, child := range root.children {
		item, err := buildElement(p, child)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return rail.NewDiagram(p, items...)
}

// ParseJSON parses a JSON document in the structural dictionary form and
// builds a diagram, wrapping a bare element root.
func ParseJSON(p *rail.Params, data []byte) (*rail.Diagram, error) {
	var dict map[string]any
	if err := json.Unmarshal(data, &dict); err != nil {
		return nil, errors.Wrap(errors.ErrCodeSyntax, err, "invalid JSON input")
	}
	return rail.BuildDiagram(p, dict)
}

// ParseYAML parses a YAML document in the structural dictionary form and
// builds a diagram, wrapping a bare element root.
func ParseYAML(p *rail.Params, data []byte) (*rail.Diagram, error) {
	var dict map[string]any
	if err := yaml.Unmarshal(data, &dict); err != nil {
		return nil, errors.Wrap(errors.ErrCodeSyntax, err, "invalid YAML input")
	}
	return rail.BuildDiagram(p, dict)
}

// ParseDict builds a diagram from an already-decoded structural dictionary.
func ParseDict(p *rail.Params, data rail.Dict) (*rail.Diagram, error) {
	return rail.BuildDiagram(p, data)
}
