package rail

import (
	"github.com/railyard/railyard/pkg/errors"
)

// Dict is the structural dictionary form of an element tree: the shape
// produced by ToDict and consumed by FromDict, and what the JSON and YAML
// front ends decode into.
type Dict map[string]any

// FromDict builds an element from its structural dictionary form. It handles
// every element kind except Diagram roots; use BuildDiagram for whole
// documents.
func FromDict(p *Params, data Dict) (Element, error) {
	p = resolveParams(p)
	element, err := requireString(data, "element")
	if err != nil {
		return nil, err
	}
	switch element {
	case "Start":
		typ, err := optionalString(data, "type")
		if err != nil {
			return nil, err
		}
		if typ == "" {
			typ = p.Type
		}
		label, err := optionalString(data, "label")
		if err != nil {
			return nil, err
		}
		return NewStart(p, typ, label), nil
	case "End":
		typ, err := optionalString(data, "type")
		if err != nil {
			return nil, err
		}
		if typ == "" {
			typ = p.Type
		}
		return NewEnd(p, typ), nil
	case "Arrow":
		direction, err := optionalString(data, "direction")
		if err != nil {
			return nil, err
		}
		return NewArrow(p, direction), nil
	case "Terminal":
		text, opts, err := textFields(data)
		if err != nil {
			return nil, err
		}
		return NewTerminal(p, text, opts...), nil
	case "NonTerminal":
		text, opts, err := textFields(data)
		if err != nil {
			return nil, err
		}
		return NewNonTerminal(p, text, opts...), nil
	case "Expression":
		text, opts, err := textFields(data)
		if err != nil {
			return nil, err
		}
		return NewExpression(p, text, opts...), nil
	case "Comment":
		text, opts, err := textFields(data)
		if err != nil {
			return nil, err
		}
		return NewComment(p, text, opts...), nil
	case "Skip":
		return NewSkip(p), nil
	case "Sequence":
		items, err := childItems(p, data)
		if err != nil {
			return nil, err
		}
		return NewSequence(p, items...)
	case "Stack":
		items, err := childItems(p, data)
		if err != nil {
			return nil, err
		}
		return NewStack(p, items...)
	case "OptionalSequence":
		items, err := childItems(p, data)
		if err != nil {
			return nil, err
		}
		return NewOptionalSequence(p, items...)
	case "AlternatingSequence":
		items, err := childItems(p, data)
		if err != nil {
			return nil, err
		}
		return NewAlternatingSequence(p, items...)
	case "Choice":
		defaultIdx, err := defaultIndex(data)
		if err != nil {
			return nil, err
		}
		items, err := childItems(p, data)
		if err != nil {
			return nil, err
		}
		return NewChoice(p, defaultIdx, items...)
	case "MultipleChoice":
		defaultIdx, err := defaultIndex(data)
		if err != nil {
			return nil, err
		}
		typ, err := requireString(data, "type")
		if err != nil {
			return nil, err
		}
		items, err := childItems(p, data)
		if err != nil {
			return nil, err
		}
		return NewMultipleChoice(p, defaultIdx, typ, items...)
	case "HorizontalChoice":
		items, err := childItems(p, data)
		if err != nil {
			return nil, err
		}
		return NewHorizontalChoice(p, items...)
	case "OneOrMore":
		item, err := childElement(p, data, "item")
		if err != nil {
			return nil, err
		}
		repeat, err := optionalChild(p, data, "repeat")
		if err != nil {
			return nil, err
		}
		return NewOneOrMore(p, item, repeat), nil
	case "ZeroOrMore":
		item, err := childElement(p, data, "item")
		if err != nil {
			return nil, err
		}
		repeat, err := optionalChild(p, data, "repeat")
		if err != nil {
			return nil, err
		}
		skip, err := boolField(data, "skip")
		if err != nil {
			return nil, err
		}
		return ZeroOrMore(p, item, repeat, skip), nil
	case "Optional":
		item, err := childElement(p, data, "item")
		if err != nil {
			return nil, err
		}
		skip, err := boolField(data, "skip")
		if err != nil {
			return nil, err
		}
		return Optional(p, item, skip), nil
	case "Group":
		item, err := childElement(p, data, "item")
		if err != nil {
			return nil, err
		}
		label, err := groupLabel(p, data)
		if err != nil {
			return nil, err
		}
		return NewGroup(p, item, label), nil
	default:
		return nil, errors.New(errors.ErrCodeUnknownElement, "unknown element: %s", element)
	}
}

// BuildDiagram builds a whole diagram from its structural dictionary form,
// wrapping a non-Diagram root in a Diagram.
func BuildDiagram(p *Params, data Dict) (*Diagram, error) {
	p = resolveParams(p)
	element, err := requireString(data, "element")
	if err != nil {
		return nil, err
	}
	if element == "Diagram" {
		items, err := childItems(p, data)
		if err != nil {
			return nil, err
		}
		return NewDiagram(p, items...)
	}
	root, err := FromDict(p, data)
	if err != nil {
		return nil, err
	}
	return NewDiagram(p, root)
}

func requireString(data Dict, key string) (string, error) {
	v, ok := data[key]
	if !ok || v == nil {
		return "", errors.New(errors.ErrCodeMissingField, "missing required field %q", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", errors.New(errors.ErrCodeInvalidField, "field %q must be a string, got %T", key, v)
	}
	return s, nil
}

func optionalString(data Dict, key string) (string, error) {
	v, ok := data[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", errors.New(errors.ErrCodeInvalidField, "field %q must be a string, got %T", key, v)
	}
	return s, nil
}

func boolField(data Dict, key string) (bool, error) {
	v, ok := data[key]
	if !ok || v == nil {
		return false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, errors.New(errors.ErrCodeInvalidField, "field %q must be a boolean, got %T", key, v)
	}
	return b, nil
}

// defaultIndex reads the "default" field, tolerating the numeric types the
// JSON and YAML decoders produce. A missing field means index 0.
func defaultIndex(data Dict) (int, error) {
	v, ok := data["default"]
	if !ok || v == nil {
		return 0, nil
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != float64(int(n)) {
			return 0, errors.New(errors.ErrCodeInvalidField,
				"field \"default\" must be an integer, got %v", n)
		}
		return int(n), nil
	default:
		return 0, errors.New(errors.ErrCodeInvalidField,
			"field \"default\" must be an integer, got %T", v)
	}
}

// asDict coerces the decoder-dependent map shapes into a Dict.
func asDict(v any) (Dict, bool) {
	switch m := v.(type) {
	case Dict:
		return m, true
	case map[string]any:
		return Dict(m), true
	default:
		return nil, false
	}
}

func childItems(p *Params, data Dict) ([]Element, error) {
	v, ok := data["items"]
	if !ok || v == nil {
		return nil, errors.New(errors.ErrCodeMissingField, "missing required field \"items\"")
	}
	var raw []any
	switch list := v.(type) {
	case []any:
		raw = list
	case []Dict:
		raw = make([]any, len(list))
		for i, d := range list {
			raw[i] = d
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidField, "field \"items\" must be a list, got %T", v)
	}
	items := make([]Element, 0, len(raw))
	for i, entry := range raw {
		d, ok := asDict(entry)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidField,
				"items[%d] must be an object, got %T", i, entry)
		}
		item, err := FromDict(p, d)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func childElement(p *Params, data Dict, key string) (Element, error) {
	v, ok := data[key]
	if !ok || v == nil {
		return nil, errors.New(errors.ErrCodeMissingField, "missing required field %q", key)
	}
	d, ok := asDict(v)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidField, "field %q must be an object, got %T", key, v)
	}
	return FromDict(p, d)
}

func optionalChild(p *Params, data Dict, key string) (Element, error) {
	v, ok := data[key]
	if !ok || v == nil {
		return nil, nil
	}
	d, ok := asDict(v)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidField, "field %q must be an object, got %T", key, v)
	}
	return FromDict(p, d)
}

// groupLabel reads a Group label, which may be a plain string (rendered as a
// Comment) or a nested element.
func groupLabel(p *Params, data Dict) (Element, error) {
	v, ok := data["label"]
	if !ok || v == nil {
		return nil, nil
	}
	if s, ok := v.(string); ok {
		return NewComment(p, s), nil
	}
	d, ok := asDict(v)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidField,
			"field \"label\" must be a string or object, got %T", v)
	}
	return FromDict(p, d)
}

func textFields(data Dict) (string, []TextOption, error) {
	text, err := requireString(data, "text")
	if err != nil {
		return "", nil, err
	}
	var opts []TextOption
	href, err := optionalString(data, "href")
	if err != nil {
		return "", nil, err
	}
	if href != "" {
		opts = append(opts, WithHref(href))
	}
	title, err := optionalString(data, "title")
	if err != nil {
		return "", nil, err
	}
	if title != "" {
		opts = append(opts, WithTitle(title))
	}
	cls, err := optionalString(data, "cls")
	if err != nil {
		return "", nil, err
	}
	if cls != "" {
		opts = append(opts, WithClass(cls))
	}
	return text, opts, nil
}
