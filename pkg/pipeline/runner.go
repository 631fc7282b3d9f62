package pipeline

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/plakat/pkg/core/poster"
	"github.com/matzehuels/plakat/pkg/core/random"
	"github.com/matzehuels/plakat/pkg/core/render"
	"github.com/matzehuels/plakat/pkg/core/render/fill"
	"github.com/matzehuels/plakat/pkg/core/render/sink"
	"github.com/matzehuels/plakat/pkg/core/typeset"
	"github.com/matzehuels/plakat/pkg/errors"
	"github.com/matzehuels/plakat/pkg/observability"
)

// Runner executes the pipeline. It holds no per-poster state, so one Runner
// can serve many posters.
type Runner struct {
	Logger  *log.Logger
	Metrics poster.Metrics
}

// NewRunner creates a runner that measures text with the embedded fonts.
// If logger is nil, the default logger is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Logger:  logger,
		Metrics: typeset.New(),
	}
}

// Execute runs the complete layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.apply(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{ID: uuid.New()}

	// Stage 1: Layout
	layoutStart := time.Now()
	l, attempts, err := r.GenerateLayout(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = l
	result.Stats.Seed = l.Seed
	result.Stats.Attempts = attempts
	result.Stats.Elements = len(l.Elements)
	result.Stats.Rects = len(l.Rects)
	result.Stats.LayoutTime = time.Since(layoutStart)

	r.Logger.Info("composed poster",
		"variant", l.Variant,
		"seed", l.Seed,
		"attempts", attempts,
		"rects", len(l.Rects),
		"duration", result.Stats.LayoutTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, err := r.Render(ctx, l, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// GenerateLayout composes the poster. A pass that fails on layout overflow
// or oversized content is retried with the next seed, up to opts.Retries
// times. It returns the layout and the number of attempts made.
func (r *Runner) GenerateLayout(ctx context.Context, opts Options) (poster.Layout, int, error) {
	r.apply(&opts)
	if err := opts.ValidateForLayout(); err != nil {
		return poster.Layout{}, 0, err
	}

	hooks := observability.Pipeline()
	start := time.Now()
	in := opts.Input()

	var lastErr error
	attempts := 0
	for attempt := 0; attempt <= opts.Retries; attempt++ {
		if err := ctx.Err(); err != nil {
			return poster.Layout{}, attempts, err
		}
		attempts++
		seed := opts.Seed + uint64(attempt)
		hooks.OnLayoutStart(ctx, opts.Variant, seed)

		l, err := poster.Generate(in, opts.Metrics, random.New(seed),
			poster.WithLogger(opts.Logger),
			poster.WithSeed(seed))
		if err == nil {
			hooks.OnLayoutComplete(ctx, opts.Variant, attempts, time.Since(start), nil)
			for _, e := range l.Elements {
				hooks.OnPlacement(ctx, string(e.Kind), e.StartRow, e.EndRow)
			}
			return l, attempts, nil
		}

		lastErr = err
		if !retryable(err) {
			break
		}
		if attempt < opts.Retries {
			opts.Logger.Warn("layout failed, trying next seed", "seed", seed, "error", err)
		}
	}

	hooks.OnLayoutComplete(ctx, opts.Variant, attempts, time.Since(start), lastErr)
	return poster.Layout{}, attempts, lastErr
}

// retryable reports whether another seed might succeed where err failed.
// Only the episode tag's font size depends on the seed, so other oversized
// text fails the same way every time.
func retryable(err error) bool {
	if errors.Is(err, errors.ErrCodeLayoutOverflow) {
		return true
	}
	var tooLarge *errors.ContentTooLargeError
	return stderrors.As(err, &tooLarge) && tooLarge.Element == string(poster.KindEpisode)
}

// Render draws l to every requested format.
func (r *Runner) Render(ctx context.Context, l poster.Layout, opts Options) (map[string][]byte, error) {
	r.apply(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	start := time.Now()
	hooks.OnRenderStart(ctx, opts.Formats)

	artifacts, err := r.render(ctx, l, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	return artifacts, err
}

func (r *Runner) render(ctx context.Context, l poster.Layout, opts Options) (map[string][]byte, error) {
	sinkOpts, err := sinkOptions(opts)
	if err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var data []byte
		switch format {
		case FormatSVG:
			data, err = sink.RenderSVG(l, sinkOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(l, sinkOpts...)
		case FormatPDF:
			data, err = sink.RenderPDF(l, sinkOpts...)
		case FormatJSON:
			data, err = sink.RenderJSON(l)
		default:
			err = ValidateFormat(format)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", format, err)
		}
		opts.Logger.Debug("rendered format", "format", format, "bytes", len(data))
		artifacts[format] = data
	}
	return artifacts, nil
}

// sinkOptions translates render options into sink options. The image, if
// any, is loaded and tinted once and shared by every format.
func sinkOptions(opts Options) ([]sink.Option, error) {
	col, err := render.ParseColor(opts.Color)
	if err != nil {
		return nil, err
	}
	bg, err := render.ParseColor(opts.Background)
	if err != nil {
		return nil, err
	}

	var f fill.Fill = fill.Flat{}
	if opts.Image != "" {
		img, err := fill.Load(opts.Image, col)
		if err != nil {
			return nil, err
		}
		f = img
	}

	return []sink.Option{
		sink.WithColor(col),
		sink.WithBackground(bg),
		sink.WithFill(f),
		sink.WithGrid(opts.Grid),
		sink.WithScale(opts.Scale),
	}, nil
}

// apply fills runtime options from the runner.
func (r *Runner) apply(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if opts.Metrics == nil {
		if r.Metrics == nil {
			r.Metrics = typeset.New()
		}
		opts.Metrics = r.Metrics
	}
}
