package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/railyard/railyard/pkg/rail"
	"github.com/railyard/railyard/pkg/treeviz"
)

// dotCommand creates the dot command, which exports the element tree as a
// Graphviz node-link graph.
func (c *CLI) dotCommand() *cobra.Command {
	var render, detailed bool

	cmd := &cobra.Command{
		Use:   "dot INPUT [OUTPUT]",
		Short: "Export the element tree as Graphviz DOT",
		Long: `Export the element tree of a diagram as a Graphviz node-link graph. This is
an inspection view of how the diagram is structured, not the railroad
rendering. With --render the graph is rendered in-process; the output format
follows the OUTPUT extension (.png for PNG, SVG otherwise).

The input format is picked by extension like the text command. OUTPUT
defaults to stdout.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			data, err := readInput(args[0])
			if err != nil {
				return err
			}

			d, err := buildDiagram(rail.DefaultParams(), args[0], data)
			if err != nil {
				return err
			}

			dot := treeviz.ToDOT(d, treeviz.Options{Detailed: detailed})

			out, err := openOutput(outputArg(args))
			if err != nil {
				return err
			}
			defer out.Close()

			if !render {
				_, err := fmt.Fprint(out, dot)
				return err
			}

			logger.Info("Rendering element tree")
			var rendered []byte
			if strings.EqualFold(filepath.Ext(outputArg(args)), ".png") {
				rendered, err = treeviz.RenderPNG(dot)
			} else {
				rendered, err = treeviz.RenderSVG(dot)
			}
			if err != nil {
				return err
			}
			if _, err := out.Write(rendered); err != nil {
				return err
			}
			logger.Infof("Generated %s", outputName(args))
			return nil
		},
	}

	cmd.Flags().BoolVar(&render, "render", false, "render the graph instead of emitting DOT source")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include defaults, types, and links in node labels")

	return cmd
}
