package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/plakat/pkg/io"
	"github.com/matzehuels/plakat/pkg/pipeline"
)

// generateCommand creates the generate command, which runs the full
// layout and render pipeline and writes one file per format.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		content contentFlags
		out     renderFlags
		presets presetFlags
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Compose a poster and render it",
		Long: `Compose a poster and render it to one or more formats.

Texts that are not given on the command line or in --input fall back to the
default texts of the presets file. Canvas size and colours come from the
selected preset unless set explicitly.`,
		Example: `  plakat generate --title "Unge hjerter" --quote "Jeg vil bare ikke spise noget der er blevet tøet op"
  plakat generate --variant caption --caption Casper -f svg,png -o out/poster
  plakat generate -p Square --image photo.jpg --seed 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts pipeline.Options
			if err := content.apply(&opts); err != nil {
				return err
			}
			out.apply(&opts)
			if err := presets.apply(&opts, true); err != nil {
				return err
			}
			return c.runGenerate(cmd, opts, out.output)
		},
	}

	content.register(cmd)
	out.register(cmd)
	presets.register(cmd)
	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, opts pipeline.Options, output string) error {
	ctx := cmd.Context()
	p := printer{cmd.OutOrStdout()}
	prog := newProgress(c.Logger)

	spinner := newSpinner(ctx, cmd.ErrOrStderr(), "Composing poster...")
	spinner.Start()
	result, err := c.newRunner().Execute(ctx, opts)
	spinner.Stop()
	if err != nil {
		return err
	}

	if output == "" {
		output = fmt.Sprintf("%s-%s", appName, result.ID.String()[:8])
	}
	paths, err := pkgio.WriteArtifacts(ctx, output, result.Artifacts)
	if err != nil {
		return err
	}
	prog.done("Generated poster", "seed", result.Stats.Seed)

	p.success("Generated poster")
	p.stats(
		fmt.Sprintf("seed %d", result.Stats.Seed),
		pluralize(result.Stats.Attempts, "attempt"),
		pluralize(result.Stats.Rects, "rect"),
	)
	if result.Stats.Attempts > 1 {
		p.warning("needed %d seeds; the content is tight for this canvas", result.Stats.Attempts)
	}
	for _, path := range paths {
		p.file(path)
	}
	return nil
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
