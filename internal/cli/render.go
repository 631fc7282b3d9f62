package cli

import (
	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/plakat/pkg/io"
	"github.com/matzehuels/plakat/pkg/pipeline"
)

// renderCommand creates the render command, which draws a layout saved by
// the layout command. The layout is not composed again, so the output
// matches the saved rows exactly.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		out     renderFlags
		presets presetFlags
	)

	cmd := &cobra.Command{
		Use:   "render [layout.json]",
		Short: "Render a saved layout",
		Example: `  plakat render poster.json -f png,pdf
  plakat render poster.json --image photo.jpg -o out/poster.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts pipeline.Options
			out.apply(&opts)
			if err := presets.apply(&opts, false); err != nil {
				return err
			}
			return c.runRender(cmd, args[0], opts, out.output)
		},
	}

	out.register(cmd)
	presets.register(cmd)
	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, input string, opts pipeline.Options, output string) error {
	ctx := cmd.Context()
	c.Logger.Infof("Rendering %s", input)

	l, err := pkgio.ImportLayout(input)
	if err != nil {
		return err
	}
	c.Logger.Debug("loaded layout", "seed", l.Seed, "elements", len(l.Elements), "rects", len(l.Rects))

	prog := newProgress(c.Logger)
	artifacts, err := c.newRunner().Render(ctx, l, opts)
	if err != nil {
		return err
	}

	if output == "" {
		output = input
	}
	paths, err := pkgio.WriteArtifacts(ctx, output, artifacts)
	if err != nil {
		return err
	}
	prog.done("Rendered layout", "formats", opts.Formats)

	p := printer{cmd.OutOrStdout()}
	p.success("Rendered %s", input)
	for _, path := range paths {
		p.file(path)
	}
	return nil
}
