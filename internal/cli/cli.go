// Package cli implements the railyard command-line interface.
//
// This package provides commands for building railroad diagrams from the
// indentation DSL, JSON and YAML structural documents, and EBNF grammars,
// rendering them as SVG or text, and inspecting the element tree. The CLI is
// built using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - dsl: Build a diagram from the indentation DSL
//   - json, yaml: Build a diagram from a structural document
//   - ebnf: Build one diagram per rule of an EBNF grammar
//   - text: Render any input as a Unicode or ASCII text diagram
//   - dot: Export the element tree as Graphviz DOT
//   - preview: Interactive text-diagram preview
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/railyard/railyard/pkg/buildinfo"
	"github.com/railyard/railyard/pkg/parse"
	"github.com/railyard/railyard/pkg/rail"
)

// appName is the application name used for display.
const appName = "railyard"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Railyard draws railroad diagrams for grammars",
		Long:         `Railyard is a CLI tool for turning grammar descriptions (a line-based DSL, JSON or YAML documents, or EBNF) into railroad syntax diagrams, rendered as SVG or as Unicode/ASCII text.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.dslCommand())
	root.AddCommand(c.jsonCommand())
	root.AddCommand(c.yamlCommand())
	root.AddCommand(c.ebnfCommand())
	root.AddCommand(c.textCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// readInput reads the whole input file, or stdin when path is "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path. An empty path or "-"
// means os.Stdout.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

// buildDiagram builds a diagram from any supported input, picking the parser
// by file extension: .json and .yaml/.yml are structural documents, anything
// else is the indentation DSL.
func buildDiagram(p *rail.Params, path string, data []byte) (*rail.Diagram, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return parse.ParseJSON(p, data)
	case ".yaml", ".yml":
		return parse.ParseYAML(p, data)
	default:
		return parse.Parse(p, string(data))
	}
}

// writeDiagram writes a diagram, as a standalone SVG document when requested.
// An empty css selects the built-in stylesheet.
func writeDiagram(d *rail.Diagram, w io.Writer, standalone bool, css string) error {
	if standalone {
		return d.WriteStandalone(w, css)
	}
	return d.WriteSVG(w)
}
