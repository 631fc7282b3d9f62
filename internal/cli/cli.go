// Package cli implements the plakat command-line interface.
//
// # Commands
//
//   - generate: compose a poster and render it to SVG, PNG, PDF or JSON
//   - layout: compose a poster and print or save its layout only
//   - render: render a saved layout without composing it again
//   - presets: list the canvas presets
//   - completion: generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which
// includes every placement decision of the layout pass.
package cli

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/plakat/pkg/buildinfo"
	"github.com/matzehuels/plakat/pkg/core/poster"
	"github.com/matzehuels/plakat/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "plakat"

	// configFile is the presets file looked up in the config directory.
	configFile = "presets.toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Out receives command output; nil means os.Stdout.
	Out io.Writer

	// Metrics overrides text measurement; nil uses the embedded fonts.
	Metrics poster.Metrics
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

func (c *CLI) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Plakat composes randomized quote posters",
		Long:         `Plakat places an episode tag or speaker, a title and a quotation on a row grid without collisions, then fills the free rows with randomized blocks of colour or a tinted photo.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.out())

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.presetsCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	r := pipeline.NewRunner(c.Logger)
	if c.Metrics != nil {
		r.Metrics = c.Metrics
	}
	return r
}

// =============================================================================
// Paths & Config
// =============================================================================

// configDir returns the config directory using XDG standard (~/.config/plakat/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// loadConfig reads the presets file at path. With no path it uses the
// user's presets file when one exists and the built-in presets otherwise.
func loadConfig(path string) (pipeline.Config, error) {
	if path != "" {
		return pipeline.LoadConfig(path)
	}
	dir, err := configDir()
	if err != nil {
		return pipeline.BuiltinConfig(), nil
	}
	userPath := filepath.Join(dir, configFile)
	if _, err := os.Stat(userPath); errors.Is(err, os.ErrNotExist) {
		return pipeline.BuiltinConfig(), nil
	}
	return pipeline.LoadConfig(userPath)
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	var formats []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			formats = append(formats, f)
		}
	}
	return formats
}
