package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// presetsCommand creates the presets command, which lists the canvas
// presets available to generate and layout.
func (c *CLI) presetsCommand() *cobra.Command {
	var config string

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List canvas presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(config)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			p := printer{w}
			fmt.Fprintln(w, StyleTitle.Render("Presets"))
			for _, name := range cfg.Names() {
				preset := cfg.Presets[name]
				label := name
				if name == cfg.Default {
					label += " *"
				}
				size := fmt.Sprintf("%gx%g", preset.Width, preset.Height)
				if preset.Rows > 0 {
					size += fmt.Sprintf(", %d rows", preset.Rows)
				}
				p.keyValue(label, size+"  "+StyleDim.Render(preset.Description))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&config, "config", "", "presets file (default ~/.config/plakat/presets.toml if present)")
	return cmd
}
