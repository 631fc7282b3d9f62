package pipeline

import (
	_ "embed"
	"maps"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/plakat/pkg/errors"
)

//go:embed presets.toml
var builtinPresets string

// Preset is a named canvas configuration. Zero fields leave the
// corresponding option unchanged.
type Preset struct {
	Name        string  `toml:"-"`
	Width       float64 `toml:"width"`
	Height      float64 `toml:"height"`
	Rows        int     `toml:"rows"`
	Color       string  `toml:"color"`
	Background  string  `toml:"background"`
	Scale       float64 `toml:"scale"`
	Description string  `toml:"description"`
}

// Texts holds default poster content used when no text is given.
type Texts struct {
	Episode string `toml:"episode"`
	Caption string `toml:"caption"`
	Title   string `toml:"title"`
	Quote   string `toml:"quote"`
}

// Config is the contents of a presets file.
type Config struct {
	Default string            `toml:"default"`
	Texts   Texts             `toml:"texts"`
	Presets map[string]Preset `toml:"presets"`
}

// BuiltinConfig returns the presets shipped with plakat.
func BuiltinConfig() Config {
	var c Config
	if _, err := toml.Decode(builtinPresets, &c); err != nil {
		panic("pipeline: invalid built-in presets: " + err.Error())
	}
	c.nameAll()
	return c
}

// LoadConfig reads a presets file and merges it over the built-in presets.
// Presets with the same name replace the built-in ones; non-empty texts and
// default override theirs. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	var user Config
	md, err := toml.DecodeFile(path, &user)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidPreset, err, "read presets %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidPreset, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	c := BuiltinConfig()
	c.merge(user)
	if c.Default != "" {
		if _, ok := c.Presets[c.Default]; !ok {
			return Config{}, errors.New(errors.ErrCodeInvalidPreset, "default preset %q is not defined", c.Default)
		}
	}
	return c, nil
}

func (c *Config) merge(o Config) {
	if o.Default != "" {
		c.Default = o.Default
	}
	if o.Texts.Episode != "" {
		c.Texts.Episode = o.Texts.Episode
	}
	if o.Texts.Caption != "" {
		c.Texts.Caption = o.Texts.Caption
	}
	if o.Texts.Title != "" {
		c.Texts.Title = o.Texts.Title
	}
	if o.Texts.Quote != "" {
		c.Texts.Quote = o.Texts.Quote
	}
	if c.Presets == nil {
		c.Presets = make(map[string]Preset)
	}
	maps.Copy(c.Presets, o.Presets)
	c.nameAll()
}

func (c *Config) nameAll() {
	for name, p := range c.Presets {
		p.Name = name
		c.Presets[name] = p
	}
}

// Names returns the preset names in sorted order.
func (c Config) Names() []string {
	return slices.Sorted(maps.Keys(c.Presets))
}

// Preset looks up a preset by name, case-insensitively. An empty name
// selects the default preset.
func (c Config) Preset(name string) (Preset, error) {
	if name == "" {
		name = c.Default
	}
	if p, ok := c.Presets[name]; ok {
		return p, nil
	}
	for n, p := range c.Presets {
		if strings.EqualFold(n, name) {
			return p, nil
		}
	}
	return Preset{}, errors.New(errors.ErrCodeInvalidPreset, "unknown preset %q (available: %s)", name, strings.Join(c.Names(), ", "))
}

// Apply fills unset canvas and colour options from p.
func (p Preset) Apply(o *Options) {
	if o.Width == 0 {
		o.Width = p.Width
	}
	if o.Height == 0 {
		o.Height = p.Height
	}
	if o.Rows == 0 {
		o.Rows = p.Rows
	}
	if o.Color == "" {
		o.Color = p.Color
	}
	if o.Background == "" {
		o.Background = p.Background
	}
	if o.Scale == 0 {
		o.Scale = p.Scale
	}
}

// Apply fills empty poster texts from t.
func (t Texts) Apply(o *Options) {
	if o.Episode == "" {
		o.Episode = t.Episode
	}
	if o.Caption == "" {
		o.Caption = t.Caption
	}
	if o.Title == "" {
		o.Title = t.Title
	}
	if o.Quote == "" {
		o.Quote = t.Quote
	}
}
