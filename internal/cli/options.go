package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/plakat/pkg/io"
	"github.com/matzehuels/plakat/pkg/pipeline"
)

// contentFlags are the flags shared by commands that compose a poster.
type contentFlags struct {
	variant string
	episode string
	caption string
	title   string
	quote   string
	input   string
	width   float64
	height  float64
	rows    int
	seed    uint64
	retries int
}

func (f *contentFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.variant, "variant", "", "poster variant: episode or caption (default episode)")
	flags.StringVar(&f.episode, "episode", "", "episode tag, e.g. S4:E1")
	flags.StringVar(&f.caption, "caption", "", "speaker name for the caption variant")
	flags.StringVarP(&f.title, "title", "t", "", "title text")
	flags.StringVarP(&f.quote, "quote", "q", "", "quotation text")
	flags.StringVarP(&f.input, "input", "i", "", "read content and canvas from a JSON file")
	flags.Float64Var(&f.width, "width", 0, "canvas width in pixels (default from preset)")
	flags.Float64Var(&f.height, "height", 0, "canvas height in pixels (default from preset)")
	flags.IntVar(&f.rows, "rows", 0, "number of grid rows (default from preset)")
	flags.Uint64Var(&f.seed, "seed", 0, "random seed (0 derives one from the clock)")
	flags.IntVar(&f.retries, "retries", 10, "extra seeds to try when the content does not fit")
}

// apply copies the flags into opts, then fills the gaps from the input file.
func (f *contentFlags) apply(opts *pipeline.Options) error {
	opts.Variant = f.variant
	opts.Episode = f.episode
	opts.Caption = f.caption
	opts.Title = f.title
	opts.Quote = f.quote
	opts.Width = f.width
	opts.Height = f.height
	opts.Rows = f.rows
	opts.Seed = f.seed
	opts.Retries = f.retries

	if f.input == "" {
		return nil
	}
	in, err := io.ImportInput(f.input)
	if err != nil {
		return err
	}
	fillString(&opts.Variant, string(in.Variant))
	fillString(&opts.Episode, in.Episode)
	fillString(&opts.Caption, in.Caption)
	fillString(&opts.Title, in.Title)
	fillString(&opts.Quote, in.Quote)
	if opts.Width == 0 {
		opts.Width = in.Width
	}
	if opts.Height == 0 {
		opts.Height = in.Height
	}
	if opts.Rows == 0 {
		opts.Rows = in.Rows
	}
	return nil
}

// renderFlags are the flags shared by commands that write images.
type renderFlags struct {
	formats    string
	output     string
	color      string
	background string
	image      string
	grid       bool
	scale      float64
}

func (f *renderFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.formats, "format", "f", "", "output formats: svg,png,pdf,json (default svg)")
	flags.StringVarP(&f.output, "output", "o", "", "output path; the extension is replaced per format")
	flags.StringVar(&f.color, "color", "", "poster colour as hex (default from preset)")
	flags.StringVar(&f.background, "background", "", "canvas colour as hex (default from preset)")
	flags.StringVar(&f.image, "image", "", "photo painted into the rectangles")
	flags.BoolVar(&f.grid, "grid", false, "draw the row grid")
	flags.Float64Var(&f.scale, "scale", 0, "PNG scale factor (default from preset)")
}

func (f *renderFlags) apply(opts *pipeline.Options) {
	opts.Formats = parseFormats(f.formats)
	opts.Color = f.color
	opts.Background = f.background
	opts.Image = f.image
	opts.Grid = f.grid
	opts.Scale = f.scale
}

// presetFlags select the presets file and the preset within it.
type presetFlags struct {
	preset string
	config string
}

func (f *presetFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.preset, "preset", "p", "", "canvas preset (see 'plakat presets')")
	cmd.Flags().StringVar(&f.config, "config", "", "presets file (default ~/.config/plakat/presets.toml if present)")
}

// apply fills unset canvas options from the selected preset. With texts
// set, empty poster texts are filled from the config's default texts.
func (f *presetFlags) apply(opts *pipeline.Options, texts bool) error {
	cfg, err := loadConfig(f.config)
	if err != nil {
		return err
	}
	p, err := cfg.Preset(f.preset)
	if err != nil {
		return err
	}
	p.Apply(opts)
	if texts {
		cfg.Texts.Apply(opts)
	}
	return nil
}

func fillString(dst *string, v string) {
	if *dst == "" {
		*dst = v
	}
}
