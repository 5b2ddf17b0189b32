// Package ebnf parses EBNF grammars and builds one rail diagram per rule.
//
// The parser accepts the common notational variants: definitions written
// `name = expr ;` as well as `name ::= expr`, with `;` or `.` terminators
// optional, `|` alternation, `[...]` optionals, `{...}` repetitions, the
// postfix operators `?`, `*` and `+`, quoted terminals, `(* ... *)` comments,
// and optional `,` between sequence items. Character classes like `[a-z]` and
// differences like `a - b` are carried through as opaque expressions.
//
// A symbol renders as a non-terminal when the grammar defines it and as a
// terminal otherwise.
package ebnf

import (
	"github.com/railyard/railyard/pkg/rail"
)

// Rule is one grammar definition with its diagram forms.
type Rule struct {
	Name    string
	Dict    rail.Dict
	Diagram *rail.Diagram
}

// Parse parses an EBNF grammar and returns its rules in definition order.
func Parse(p *rail.Params, src string) ([]Rule, error) {
	tokens, err := lex(src)
	if err != nil {
		return nil, err
	}
	defs, err := (&parser{tokens: tokens}).grammar()
	if err != nil {
		return nil, err
	}

	defined := make(map[string]bool, len(defs))
	for _, def := range defs {
		defined[def.name] = true
	}

	rules := make([]Rule, 0, len(defs))
	for _, def := range defs {
		dict := rail.Dict{
			"element": "Diagram",
			"items": []any{
				rail.Dict{"element": "Start", "label": def.name},
				def.body.dict(defined),
				rail.Dict{"element": "End"},
			},
		}
		diagram, err := rail.BuildDiagram(p, dict)
		if err != nil {
			return nil, err
		}
		rules = append(rules, Rule{Name: def.name, Dict: dict, Diagram: diagram})
	}
	return rules, nil
}

// definition is one parsed rule before lowering.
type definition struct {
	name string
	body node
}

// node is a parsed expression, lowered to the structural dictionary form once
// the set of defined symbols is known.
type node interface {
	dict(defined map[string]bool) rail.Dict
}

type symbolNode string

func (n symbolNode) dict(defined map[string]bool) rail.Dict {
	element := "Terminal"
	if defined[string(n)] {
		element = "NonTerminal"
	}
	return rail.Dict{"element": element, "text": string(n)}
}

type literalNode string

func (n literalNode) dict(map[string]bool) rail.Dict {
	return rail.Dict{"element": "Terminal", "text": string(n)}
}

// expressionNode carries character classes and differences verbatim.
type expressionNode string

func (n expressionNode) dict(map[string]bool) rail.Dict {
	return rail.Dict{"element": "Expression", "text": string(n)}
}

type sequenceNode []node

func (n sequenceNode) dict(defined map[string]bool) rail.Dict {
	items := make([]any, len(n))
	for i, item := range n {
		items[i] = item.dict(defined)
	}
	return rail.Dict{"element": "Sequence", "items": items}
}

type choiceNode []node

func (n choiceNode) dict(defined map[string]bool) rail.Dict {
	items := make([]any, len(n))
	for i, item := range n {
		items[i] = item.dict(defined)
	}
	return rail.Dict{"element": "Choice", "default": len(n) / 2, "items": items}
}

type optionalNode struct {
	item node
}

func (n optionalNode) dict(defined map[string]bool) rail.Dict {
	return rail.Dict{"element": "Optional", "item": n.item.dict(defined)}
}

type repeatNode struct {
	item       node
	atLeastOne bool
}

func (n repeatNode) dict(defined map[string]bool) rail.Dict {
	element := "ZeroOrMore"
	if n.atLeastOne {
		element = "OneOrMore"
	}
	return rail.Dict{"element": element, "item": n.item.dict(defined)}
}
