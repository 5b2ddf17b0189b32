package ebnf

import (
	"fmt"

	"github.com/railyard/railyard/pkg/errors"
)

type parser struct {
	tokens []token
	pos    int
}

func (p *parser) peek() token { return p.tokens[p.pos] }

func (p *parser) peek2() token {
	if p.pos+1 < len(p.tokens) {
		return p.tokens[p.pos+1]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *parser) next() token {
	t := p.tokens[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) expect(kind tokenKind, what string) (token, error) {
	t := p.next()
	if t.kind != kind {
		return token{}, errors.New(errors.ErrCodeSyntax,
			"line %d: expected %s, got %q", t.line, what, tokenText(t))
	}
	return t, nil
}

func tokenText(t token) string {
	if t.kind == tokEOF {
		return "end of input"
	}
	return t.text
}

func (p *parser) grammar() ([]definition, error) {
	var defs []definition
	seen := map[string]int{}
	for p.peek().kind != tokEOF {
		name, err := p.expect(tokIdent, "rule name")
		if err != nil {
			return nil, err
		}
		if prev, ok := seen[name.text]; ok {
			return nil, errors.New(errors.ErrCodeSyntax,
				"line %d: rule %q already defined on line %d", name.line, name.text, prev)
		}
		seen[name.text] = name.line
		if _, err := p.expect(tokDefine, `"=" or "::="`); err != nil {
			return nil, err
		}
		body, err := p.alternation()
		if err != nil {
			return nil, err
		}
		if p.peek().kind == tokEnd {
			p.next()
		}
		defs = append(defs, definition{name: name.text, body: body})
	}
	if len(defs) == 0 {
		return nil, errors.New(errors.ErrCodeSyntax, "no rules in grammar")
	}
	return defs, nil
}

func (p *parser) alternation() (node, error) {
	first, err := p.sequence()
	if err != nil {
		return nil, err
	}
	branches := []node{first}
	for p.peek().kind == tokOr {
		p.next()
		branch, err := p.sequence()
		if err != nil {
			return nil, err
		}
		branches = append(branches, branch)
	}
	if len(branches) == 1 {
		return branches[0], nil
	}
	return choiceNode(branches), nil
}

func (p *parser) sequence() (node, error) {
	var items []node
	for {
		if !p.startsTerm() {
			break
		}
		item, err := p.term()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if p.peek().kind == tokComma {
			p.next()
		}
	}
	if len(items) == 0 {
		t := p.peek()
		return nil, errors.New(errors.ErrCodeSyntax,
			"line %d: expected expression, got %q", t.line, tokenText(t))
	}
	if len(items) == 1 {
		return items[0], nil
	}
	return sequenceNode(items), nil
}

// startsTerm reports whether the next token opens another sequence item. An
// identifier followed by a define operator starts the next rule instead, which
// is how rules without a terminator are delimited.
func (p *parser) startsTerm() bool {
	switch p.peek().kind {
	case tokString, tokCharClass, tokLParen, tokLBrack, tokLBrace:
		return true
	case tokIdent:
		return p.peek2().kind != tokDefine
	}
	return false
}

func (p *parser) term() (node, error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokMinus {
		return left, nil
	}
	minus := p.next()
	right, err := p.factor()
	if err != nil {
		return nil, err
	}
	leftText, err := operandText(left, minus.line)
	if err != nil {
		return nil, err
	}
	rightText, err := operandText(right, minus.line)
	if err != nil {
		return nil, err
	}
	return expressionNode(leftText + " - " + rightText), nil
}

// operandText renders a difference operand. Only atoms can appear on either
// side of a difference.
func operandText(n node, line int) (string, error) {
	switch v := n.(type) {
	case symbolNode:
		return string(v), nil
	case literalNode:
		return fmt.Sprintf("%q", string(v)), nil
	case expressionNode:
		return string(v), nil
	}
	return "", errors.New(errors.ErrCodeSyntax,
		"line %d: difference operands must be symbols, literals, or character classes", line)
}

func (p *parser) factor() (node, error) {
	item, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().kind {
		case tokQuest:
			p.next()
			item = optionalNode{item: item}
		case tokStar:
			p.next()
			item = repeatNode{item: item}
		case tokPlus:
			p.next()
			item = repeatNode{item: item, atLeastOne: true}
		default:
			return item, nil
		}
	}
}

func (p *parser) primary() (node, error) {
	t := p.next()
	switch t.kind {
	case tokIdent:
		return symbolNode(t.text), nil
	case tokString:
		return literalNode(t.text), nil
	case tokCharClass:
		return expressionNode(t.text), nil
	case tokLParen:
		inner, err := p.alternation()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen, `")"`); err != nil {
			return nil, err
		}
		return inner, nil
	case tokLBrack:
		inner, err := p.alternation()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRBrack, `"]"`); err != nil {
			return nil, err
		}
		return optionalNode{item: inner}, nil
	case tokLBrace:
		inner, err := p.alternation()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRBrace, `"}"`); err != nil {
			return nil, err
		}
		return repeatNode{item: inner}, nil
	}
	return nil, errors.New(errors.ErrCodeSyntax,
		"line %d: unexpected %q", t.line, tokenText(t))
}
