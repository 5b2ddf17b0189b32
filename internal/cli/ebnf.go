package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/railyard/railyard/pkg/ebnf"
)

// ebnfCommand creates the ebnf command, which builds one diagram per grammar
// rule into an output directory.
func (c *CLI) ebnfCommand() *cobra.Command {
	var paramsPath string
	var toJSON bool

	cmd := &cobra.Command{
		Use:   "ebnf INPUT OUTDIR",
		Short: "Build one railroad diagram per rule of an EBNF grammar",
		Long: `Build railroad diagrams from an EBNF grammar. Each rule becomes one file in
OUTDIR, named after the rule: NAME.svg, or NAME.json with --to-json. Symbols
the grammar defines render as non-terminals, everything else as terminals.

INPUT may be "-" for stdin.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			data, err := readInput(args[0])
			if err != nil {
				return err
			}

			p, settings, err := loadParams(paramsPath, documentParams())
			if err != nil {
				return err
			}

			rules, err := ebnf.Parse(p, string(data))
			if err != nil {
				return err
			}

			outDir := args[1]
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}

			for _, rule := range rules {
				if err := writeRule(rule, outDir, toJSON, settings); err != nil {
					return fmt.Errorf("rule %s: %w", rule.Name, err)
				}
				logger.Debugf("Generated rule %s", rule.Name)
			}
			prog.done(fmt.Sprintf("Generated %d diagrams in %s", len(rules), outDir))
			return nil
		},
	}

	cmd.Flags().StringVar(&paramsPath, "params", "", "parameters file (JSON, YAML, or TOML)")
	cmd.Flags().BoolVar(&toJSON, "to-json", false, "write structural JSON documents instead of SVG")

	return cmd
}

func writeRule(rule ebnf.Rule, outDir string, toJSON bool, settings renderSettings) error {
	if toJSON {
		data, err := json.MarshalIndent(rule.Dict, "", "  ")
		if err != nil {
			return err
		}
		return os.WriteFile(filepath.Join(outDir, rule.Name+".json"), append(data, '\n'), 0o644)
	}

	out, err := os.Create(filepath.Join(outDir, rule.Name+".svg"))
	if err != nil {
		return err
	}
	defer out.Close()
	return writeDiagram(rule.Diagram, out, settings.Standalone, settings.CSS)
}
