package poster

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/plakat/pkg/core/grid"
	"github.com/matzehuels/plakat/pkg/core/random"
	"github.com/matzehuels/plakat/pkg/errors"
)

// Option configures [Generate].
type Option func(*config)

type config struct {
	logger *log.Logger
	seed   uint64
}

// WithLogger sets the logger that receives placement decisions at debug level.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSeed records the seed that produced src on the returned layout.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.seed = seed }
}

// composer holds the state of a single layout pass.
type composer struct {
	in      Input
	grid    grid.Grid
	pool    *grid.Pool
	metrics Metrics
	src     random.Source
	logger  *log.Logger

	elements []Element
	texts    []TextOp
	rects    []RectOp
}

// Generate composes one poster. All randomness is drawn from src, so the same
// input, metrics and draw sequence produce an identical layout.
func Generate(in Input, m Metrics, src random.Source, opts ...Option) (Layout, error) {
	cfg := config{logger: log.NewWithOptions(io.Discard, log.Options{})}
	for _, opt := range opts {
		opt(&cfg)
	}

	in = in.normalized()
	if err := in.Validate(); err != nil {
		return Layout{}, err
	}

	g := grid.New(in.Height, in.Rows)
	c := &composer{
		in:      in,
		grid:    g,
		pool:    grid.NewPool(g.Rows),
		metrics: m,
		src:     src,
		logger:  cfg.logger,
	}

	var caption *Element
	switch in.Variant {
	case VariantCaption:
		el, err := c.placeCaption()
		if err != nil {
			return Layout{}, err
		}
		caption = &el
	default:
		if _, err := c.placeEpisode(); err != nil {
			return Layout{}, err
		}
	}

	title, err := c.placeTitle()
	if err != nil {
		return Layout{}, err
	}
	quote, err := c.placeQuote(title, caption)
	if err != nil {
		return Layout{}, err
	}

	stats, bigColumn := c.composeBackground(title, quote)

	return Layout{
		Width:     in.Width,
		Height:    in.Height,
		Grid:      g,
		Variant:   in.Variant,
		Seed:      cfg.seed,
		Elements:  c.elements,
		Texts:     c.texts,
		Rects:     c.rects,
		BigColumn: bigColumn,
		Stats:     stats,
	}, nil
}

func (in Input) normalized() Input {
	if in.Rows <= 0 {
		in.Rows = grid.DefaultRows
	}
	if in.Variant == "" {
		in.Variant = VariantEpisode
	}
	return in
}

// Validate checks the canvas and that every text the variant needs is set.
func (in Input) Validate() error {
	in = in.normalized()
	if err := errors.ValidateCanvas(in.Width, in.Height, in.Rows); err != nil {
		return err
	}
	switch in.Variant {
	case VariantEpisode:
		if err := errors.ValidateText("episode", in.Episode, true); err != nil {
			return err
		}
	case VariantCaption:
		if err := errors.ValidateText("caption", in.Caption, true); err != nil {
			return err
		}
	default:
		return errors.New(errors.ErrCodeInvalidVariant, "unknown variant %q (want episode or caption)", in.Variant)
	}
	if err := errors.ValidateText("title", in.Title, true); err != nil {
		return err
	}
	return errors.ValidateText("quote", in.Quote, true)
}

// margin is the horizontal breathing room added after every block.
func (c *composer) margin() float64 { return c.in.Width / 20 }

func (c *composer) findStart(kind Kind, candidates *grid.Pool, span int) (int, error) {
	starts := grid.FindStarts(candidates, span)
	start, err := random.Choice(c.src, starts)
	if err != nil {
		c.logger.Debug("no room for block", "element", kind, "span", span, "free", candidates.Len())
		return 0, &errors.LayoutOverflowError{Element: string(kind), Span: span, Free: candidates.Len()}
	}
	c.logger.Debug("picked start row", "element", kind, "span", span, "candidates", len(starts), "start", start)
	return start, nil
}

// commit records a placed block and claims its rows.
func (c *composer) commit(el Element) {
	c.pool.RemoveRange(el.StartRow, el.EndRow)
	c.elements = append(c.elements, el)
	c.logger.Debug("placed block",
		"element", el.Kind,
		"start", el.StartRow,
		"end", el.EndRow,
		"x2", el.X2,
		"free", c.pool.Len())
}

func (c *composer) addText(el Element, text string, y float64) {
	c.texts = append(c.texts, TextOp{
		Element: el.Kind,
		Text:    text,
		X:       el.X1,
		Y:       y,
		Font:    el.Font,
		Size:    el.FontSize,
	})
}

func (c *composer) addRect(role RectRole, x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	c.rects = append(c.rects, RectOp{Role: role, X: x, Y: y, W: w, H: h})
}
