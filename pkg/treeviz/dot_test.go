package treeviz

import (
	"strings"
	"testing"

	"github.com/railyard/railyard/pkg/rail"
)

func TestToDOT(t *testing.T) {
	d, err := rail.NewDiagram(nil, rail.Optional(nil, rail.NewTerminal(nil, "x"), false))
	if err != nil {
		t.Fatalf("NewDiagram() error: %v", err)
	}
	dot := ToDOT(d, Options{})

	for _, want := range []string{
		"digraph G {",
		`"n0" [label="Diagram"`,
		`label="Terminal\n\"x\""`,
		`style="rounded,filled,dashed"`, // the skip branch
		`"n0" -> "n1";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() output missing %q:\n%s", want, dot)
		}
	}

	// Diagram to Start, Choice, End; Choice to Skip and Terminal.
	if got := strings.Count(dot, "->"); got != 5 {
		t.Errorf("ToDOT() has %d edges, want 5:\n%s", got, dot)
	}
}

func TestToDOTDetailed(t *testing.T) {
	choice, err := rail.NewChoice(nil, 1,
		rail.NewTerminal(nil, "a"),
		rail.NewTerminal(nil, "b", rail.WithHref("docs")))
	if err != nil {
		t.Fatalf("NewChoice() error: %v", err)
	}

	plain := ToDOT(choice, Options{})
	if strings.Contains(plain, "default: 1") {
		t.Error("ToDOT() includes the default without Detailed")
	}

	detailed := ToDOT(choice, Options{Detailed: true})
	for _, want := range []string{"default: 1", "href: docs"} {
		if !strings.Contains(detailed, want) {
			t.Errorf("ToDOT(Detailed) output missing %q:\n%s", want, detailed)
		}
	}
}

func TestToDOTStartLabel(t *testing.T) {
	dot := ToDOT(rail.NewStart(nil, rail.TypeComplex, "rule"), Options{})
	if !strings.Contains(dot, `label="Start\nrule"`) {
		t.Errorf("ToDOT() output missing the start label:\n%s", dot)
	}
}

// rawTree exposes a decoded dictionary as a Tree without rebuilding elements.
type rawTree rail.Dict

func (r rawTree) ToDict() rail.Dict { return rail.Dict(r) }

func TestToDOTDecodedDicts(t *testing.T) {
	// Trees decoded from JSON carry []any items and map[string]any children.
	dot := ToDOT(rawTree{
		"element": "Sequence",
		"items": []any{
			map[string]any{"element": "Terminal", "text": "a"},
			map[string]any{"element": "Terminal", "text": "b"},
		},
	}, Options{})
	if got := strings.Count(dot, "->"); got != 2 {
		t.Errorf("ToDOT() has %d edges, want 2:\n%s", got, dot)
	}
}
