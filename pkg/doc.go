// Package pkg provides the core libraries for railyard railroad diagrams.
//
// # Overview
//
// Railyard turns grammar descriptions into railroad (syntax) diagrams. The
// pkg directory is organized into five areas:
//
//  1. [rail] - The diagram engine: element tree, layout, SVG and text output
//  2. [parse] - Input front-ends: indentation DSL, JSON, and YAML documents
//  3. [ebnf] - EBNF grammar front-end producing one diagram per rule
//  4. [treeviz] - Graphviz node-link view of the element tree
//  5. [errors] - Structured error codes shared across the libraries
//
// # Architecture
//
// The typical data flow through railyard:
//
//	DSL / JSON / YAML / EBNF source
//	         ↓
//	    [parse] or [ebnf] (build the element tree)
//	         ↓
//	    [rail] elements (measure at construction)
//	         ↓
//	    SVG fragment, standalone SVG, or Unicode/ASCII text
//
// # Quick Start
//
// Build a diagram and render it:
//
//	import "github.com/railyard/railyard/pkg/rail"
//
//	d, err := rail.NewDiagram(nil,
//	    rail.NewTerminal(nil, "SELECT"),
//	    rail.Optional(nil, rail.NewNonTerminal(nil, "expr"), false))
//	if err != nil {
//	    return err
//	}
//	err = d.WriteSVG(os.Stdout)
//
// Or parse the indentation DSL:
//
//	import "github.com/railyard/railyard/pkg/parse"
//
//	d, err := parse.Parse(nil, "Choice: 0\n\tT: foo\n\tT: bar\n")
//
// # Main Packages
//
// [rail] - Elements (Terminal, NonTerminal, Sequence, Choice, loops, and the
// rest) measure themselves at construction and render either as SVG geometry
// or as character grids. Parameters are captured per tree and never mutated.
//
// [parse] - The line-based DSL plus JSON and YAML structural documents, all
// producing [rail] diagrams. Malformed input reports SYNTAX_ERROR with line
// numbers.
//
// [ebnf] - A recursive-descent EBNF parser accepting the common notational
// variants, producing one diagram per rule.
//
// [treeviz] - Renders the element tree as a Graphviz node-link graph for
// inspection, via github.com/goccy/go-graphviz.
//
// [rail]: https://pkg.go.dev/github.com/railyard/railyard/pkg/rail
// [parse]: https://pkg.go.dev/github.com/railyard/railyard/pkg/parse
// [ebnf]: https://pkg.go.dev/github.com/railyard/railyard/pkg/ebnf
// [treeviz]: https://pkg.go.dev/github.com/railyard/railyard/pkg/treeviz
// [errors]: https://pkg.go.dev/github.com/railyard/railyard/pkg/errors
package pkg
