package cli

import (
	"github.com/spf13/cobra"

	"github.com/railyard/railyard/pkg/parse"
	"github.com/railyard/railyard/pkg/rail"
)

// jsonCommand creates the json command, which builds a diagram from a JSON
// structural document.
func (c *CLI) jsonCommand() *cobra.Command {
	return c.documentCommand("json", "JSON", func(p *rail.Params, data []byte) (*rail.Diagram, error) {
		return parse.ParseJSON(p, data)
	})
}

// yamlCommand creates the yaml command, which builds a diagram from a YAML
// structural document.
func (c *CLI) yamlCommand() *cobra.Command {
	return c.documentCommand("yaml", "YAML", func(p *rail.Params, data []byte) (*rail.Diagram, error) {
		return parse.ParseYAML(p, data)
	})
}

// documentCommand is the shared shape of the json and yaml commands: read a
// structural document, apply an optional parameters file, write SVG.
func (c *CLI) documentCommand(name, format string, build func(*rail.Params, []byte) (*rail.Diagram, error)) *cobra.Command {
	var paramsPath string

	cmd := &cobra.Command{
		Use:   name + " INPUT [OUTPUT]",
		Short: "Build a railroad diagram from a " + format + " document",
		Long: `Build a railroad diagram from a ` + format + ` structural document. The document
is a tree of elements, each a mapping with an "element" key:

  {"element": "Choice", "default": 0, "items": [...]}

Layout parameters and output options can be supplied with --params; the file
may be JSON, YAML, or TOML. INPUT may be "-" for stdin. OUTPUT defaults to
stdout.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			data, err := readInput(args[0])
			if err != nil {
				return err
			}

			p, settings, err := loadParams(paramsPath, documentParams())
			if err != nil {
				return err
			}

			d, err := build(p, data)
			if err != nil {
				return err
			}
			logger.Debugf("Parsed %s: %d elements", args[0], countElements(d))

			out, err := openOutput(outputArg(args))
			if err != nil {
				return err
			}
			defer out.Close()

			if err := writeDiagram(d, out, settings.Standalone, settings.CSS); err != nil {
				return err
			}
			logger.Infof("Generated %s", outputName(args))
			return nil
		},
	}

	cmd.Flags().StringVar(&paramsPath, "params", "", "parameters file (JSON, YAML, or TOML)")

	return cmd
}
