package cli

import (
	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/plakat/pkg/io"
	"github.com/matzehuels/plakat/pkg/pipeline"
)

// layoutCommand creates the layout command. It composes a poster without
// rendering it and writes the layout as JSON, to stdout unless -o is given.
// The output can be rendered later with the render command.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		content contentFlags
		presets presetFlags
		output  string
	)

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Compose a poster and write its layout as JSON",
		Example: `  plakat layout --seed 42 > poster.json
  plakat layout --variant caption --caption Casper -o poster.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts pipeline.Options
			if err := content.apply(&opts); err != nil {
				return err
			}
			if err := presets.apply(&opts, true); err != nil {
				return err
			}

			prog := newProgress(c.Logger)
			l, attempts, err := c.newRunner().GenerateLayout(cmd.Context(), opts)
			if err != nil {
				return err
			}
			prog.done("Composed layout", "seed", l.Seed, "attempts", attempts)

			if output == "" {
				return pkgio.WriteLayout(l, cmd.OutOrStdout())
			}
			if err := pkgio.ExportLayout(l, output); err != nil {
				return err
			}
			p := printer{cmd.OutOrStdout()}
			p.success("Wrote layout")
			p.file(output)
			return nil
		},
	}

	content.register(cmd)
	presets.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}
