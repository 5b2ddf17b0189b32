package cli

import (
	"github.com/spf13/cobra"

	"github.com/railyard/railyard/pkg/rail"
)

// textCommand creates the text command, which renders any input as a text
// diagram.
func (c *CLI) textCommand() *cobra.Command {
	var ascii bool

	cmd := &cobra.Command{
		Use:   "text INPUT [OUTPUT]",
		Short: "Render a diagram as Unicode or ASCII text",
		Long: `Render a railroad diagram as a text drawing. The input format is picked by
extension: .json and .yaml/.yml are structural documents, anything else is
the indentation DSL. INPUT may be "-" for stdin (DSL). OUTPUT defaults to
stdout.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args[0])
			if err != nil {
				return err
			}

			p := rail.DefaultParams()
			p.Type = rail.TypeComplex
			if ascii {
				p.Formatting = rail.FormattingASCII
			}

			d, err := buildDiagram(p, args[0], data)
			if err != nil {
				return err
			}

			out, err := openOutput(outputArg(args))
			if err != nil {
				return err
			}
			defer out.Close()

			return d.WriteText(out)
		},
	}

	cmd.Flags().BoolVar(&ascii, "ascii", false, "draw with ASCII glyphs instead of Unicode box drawing")

	return cmd
}
