package ebnf

import (
	"strings"
	"testing"

	"github.com/railyard/railyard/pkg/errors"
	"github.com/railyard/railyard/pkg/rail"
)

// ruleBody extracts the element between Start and End of a rule's dict.
func ruleBody(t *testing.T, r Rule) rail.Dict {
	t.Helper()
	items := r.Dict["items"].([]any)
	if len(items) != 3 {
		t.Fatalf("rule %s has %d items, want 3", r.Name, len(items))
	}
	return items[1].(rail.Dict)
}

func TestParseGrammar(t *testing.T) {
	src := `
list = "[" items "]" ;
items = item { "," item } ;
item = word | number ;
`
	rules, err := Parse(nil, src)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(rules) != 3 {
		t.Fatalf("Parse() returned %d rules, want 3", len(rules))
	}
	for i, name := range []string{"list", "items", "item"} {
		if rules[i].Name != name {
			t.Errorf("rules[%d].Name = %q, want %q", i, rules[i].Name, name)
		}
	}

	// The start node carries the rule name and the diagram is framed.
	d := rules[0].Diagram
	if got := len(d.Items()); got != 3 {
		t.Fatalf("Items() length = %d, want 3", got)
	}
	if got := d.Items()[0].ToDict()["label"]; got != "list" {
		t.Errorf("start label = %v, want list", got)
	}

	// A defined symbol is a non-terminal, an undefined one a terminal.
	body := ruleBody(t, rules[1])
	if body["element"] != "Sequence" {
		t.Fatalf("items body = %v, want Sequence", body["element"])
	}
	first := body["items"].([]any)[0].(rail.Dict)
	if first["element"] != "NonTerminal" || first["text"] != "item" {
		t.Errorf("first item = %v, want NonTerminal item", first)
	}
	choice := ruleBody(t, rules[2])
	branch := choice["items"].([]any)[0].(rail.Dict)
	if branch["element"] != "Terminal" || branch["text"] != "word" {
		t.Errorf("branch = %v, want Terminal word", branch)
	}
}

func TestParseChoiceDefaultsToMiddleBranch(t *testing.T) {
	rules, err := Parse(nil, `x = a | b | c | d | e ;`)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	body := ruleBody(t, rules[0])
	if body["element"] != "Choice" || body["default"] != 2 {
		t.Errorf("body = %v %v, want Choice with default 2", body["element"], body["default"])
	}
}

func TestParsePostfixOperators(t *testing.T) {
	rules, err := Parse(nil, `x = a? b* c+ ;`)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	body := ruleBody(t, rules[0])
	items := body["items"].([]any)
	want := []string{"Optional", "ZeroOrMore", "OneOrMore"}
	for i, element := range want {
		if got := items[i].(rail.Dict)["element"]; got != element {
			t.Errorf("items[%d] = %v, want %s", i, got, element)
		}
	}
}

func TestParseBracketGroups(t *testing.T) {
	rules, err := Parse(nil, `x = [ a ] { b } ( c | d ) ;`)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	items := ruleBody(t, rules[0])["items"].([]any)
	want := []string{"Optional", "ZeroOrMore", "Choice"}
	for i, element := range want {
		if got := items[i].(rail.Dict)["element"]; got != element {
			t.Errorf("items[%d] = %v, want %s", i, got, element)
		}
	}
}

func TestParseGroupUnwrapsSingleChild(t *testing.T) {
	rules, err := Parse(nil, `x = ( a ) ;`)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	body := ruleBody(t, rules[0])
	if body["element"] != "Terminal" || body["text"] != "a" {
		t.Errorf("body = %v, want Terminal a", body)
	}
}

func TestParseCharClass(t *testing.T) {
	rules, err := Parse(nil, `digit = [0-9] ;`)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	body := ruleBody(t, rules[0])
	if body["element"] != "Expression" || body["text"] != "[0-9]" {
		t.Errorf("body = %v, want Expression [0-9]", body)
	}
}

func TestParseDifference(t *testing.T) {
	rules, err := Parse(nil, `name = letter - keyword ;`)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	body := ruleBody(t, rules[0])
	if body["element"] != "Expression" || body["text"] != "letter - keyword" {
		t.Errorf("body = %v, want Expression letter - keyword", body)
	}
}

func TestParseDefineVariants(t *testing.T) {
	src := "a ::= \"x\"\nb := a\nc = b .\n"
	rules, err := Parse(nil, src)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(rules) != 3 {
		t.Fatalf("Parse() returned %d rules, want 3", len(rules))
	}
	if got := ruleBody(t, rules[1])["element"]; got != "NonTerminal" {
		t.Errorf("b body = %v, want NonTerminal", got)
	}
}

func TestParseCommentsAndCommas(t *testing.T) {
	src := `(* a two
line comment *)
pair = left , right ;`
	rules, err := Parse(nil, src)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	body := ruleBody(t, rules[0])
	if body["element"] != "Sequence" || len(body["items"].([]any)) != 2 {
		t.Errorf("body = %v, want a two item Sequence", body)
	}
}

func TestParseStringEscapes(t *testing.T) {
	rules, err := Parse(nil, `quote = "\"" ;`)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	body := ruleBody(t, rules[0])
	if body["text"] != `"` {
		t.Errorf("text = %q, want %q", body["text"], `"`)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		frag string
	}{
		{"empty grammar", "", "no rules"},
		{"missing define", `x "y" ;`, `expected "=" or "::="`},
		{"empty body", `x = ;`, "expected expression"},
		{"unterminated string", `x = "y`, "unterminated string"},
		{"unterminated comment", `(* x = "y" ;`, "unterminated comment"},
		{"unmatched paren", `x = ( a ;`, `expected ")"`},
		{"duplicate rule", "x = a ;\nx = b ;", "already defined on line 1"},
		{"bad difference operand", `x = ( a b ) - c ;`, "difference operands"},
		{"stray character", `x = @ ;`, "unexpected character"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(nil, tt.src)
			if !errors.Is(err, errors.ErrCodeSyntax) {
				t.Fatalf("Parse() error = %v, want code %s", err, errors.ErrCodeSyntax)
			}
			if !strings.Contains(err.Error(), tt.frag) {
				t.Errorf("Parse() error = %q, want it to mention %q", err, tt.frag)
			}
		})
	}
}

func TestParseErrorLineNumbers(t *testing.T) {
	_, err := Parse(nil, "a = \"x\" ;\nb = ;\n")
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("Parse() error = %v, want it to mention line 2", err)
	}
}
