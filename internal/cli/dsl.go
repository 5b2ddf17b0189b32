package cli

import (
	"github.com/spf13/cobra"

	"github.com/railyard/railyard/pkg/parse"
	"github.com/railyard/railyard/pkg/rail"
)

// dslCommand creates the dsl command, which builds a diagram from the
// indentation DSL.
func (c *CLI) dslCommand() *cobra.Command {
	var simple, standalone bool

	cmd := &cobra.Command{
		Use:   "dsl INPUT [OUTPUT]",
		Short: "Build a railroad diagram from the indentation DSL",
		Long: `Build a railroad diagram from the indentation DSL, one command per line:

  Choice: 0
      Terminal: foo
      Terminal raw: bar

INPUT may be "-" for stdin. OUTPUT defaults to stdout.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			data, err := readInput(args[0])
			if err != nil {
				return err
			}

			p := rail.DefaultParams()
			p.Type = rail.TypeComplex
			if simple {
				p.Type = rail.TypeSimple
			}

			d, err := parse.Parse(p, string(data))
			if err != nil {
				return err
			}
			logger.Debugf("Parsed %s: %d elements", args[0], countElements(d))

			out, err := openOutput(outputArg(args))
			if err != nil {
				return err
			}
			defer out.Close()

			if err := writeDiagram(d, out, standalone, ""); err != nil {
				return err
			}
			logger.Infof("Generated %s", outputName(args))
			return nil
		},
	}

	cmd.Flags().BoolVar(&simple, "simple", false, "use simple start/end markers")
	cmd.Flags().BoolVar(&standalone, "standalone", false, "emit a standalone SVG document with embedded styles")

	return cmd
}

// outputArg returns the optional second positional argument.
func outputArg(args []string) string {
	if len(args) > 1 {
		return args[1]
	}
	return ""
}

// outputName names the output target for log messages.
func outputName(args []string) string {
	if out := outputArg(args); out != "" && out != "-" {
		return out
	}
	return "stdout"
}

func countElements(d *rail.Diagram) int {
	n := 0
	d.Walk(func(rail.Element) { n++ })
	return n
}
