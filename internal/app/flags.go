package app

import (
	"flag"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"conway/internal/settings"
)

// Config represents the command-line and file parameters for the application.
type Config struct {
	// File is an optional YAML, JSON or TOML file read before flags apply.
	File string `mapstructure:"-"`

	Width   int     `mapstructure:"width"`
	Height  int     `mapstructure:"height"`
	TPS     int     `mapstructure:"tps"`
	Rate    int     `mapstructure:"rate"`
	Seed    int64   `mapstructure:"seed"`
	Density float64 `mapstructure:"density"`

	Wraparound   bool    `mapstructure:"wraparound"`
	Offset       float64 `mapstructure:"offset"`
	CellWidth    float64 `mapstructure:"cell_width"`
	CellDistance float64 `mapstructure:"cell_distance"`

	BackgroundColor string `mapstructure:"background_color"`
	LiveColor       string `mapstructure:"live_color"`
	DeadColor       string `mapstructure:"dead_color"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	s := settings.Default()
	return &Config{
		Width:           442,
		Height:          442,
		TPS:             60,
		Rate:            10,
		Seed:            42,
		Density:         0.25,
		Wraparound:      s.Wraparound,
		Offset:          s.Offset,
		CellWidth:       s.CellWidth,
		CellDistance:    s.CellDistance,
		BackgroundColor: settings.HexColor(s.Background),
		LiveColor:       settings.HexColor(s.Live),
		DeadColor:       settings.HexColor(s.Dead),
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.File, "config", c.File, "optional config file (yaml, json or toml)")
	fs.IntVar(&c.Width, "width", c.Width, "initial window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frame updates per second")
	fs.IntVar(&c.Rate, "rate", c.Rate, "generations per second while running")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random fills")
	fs.Float64Var(&c.Density, "density", c.Density, "live cell probability for random fills")
	fs.BoolVar(&c.Wraparound, "wrap", c.Wraparound, "join opposite grid edges")
	fs.Float64Var(&c.Offset, "offset", c.Offset, "grid margin in pixels")
	fs.Float64Var(&c.CellWidth, "cell-width", c.CellWidth, "cell side length in pixels")
	fs.Float64Var(&c.CellDistance, "cell-distance", c.CellDistance, "gap between cells in pixels")
	fs.StringVar(&c.BackgroundColor, "background-color", c.BackgroundColor, "grid background color")
	fs.StringVar(&c.LiveColor, "live-color", c.LiveColor, "live cell color")
	fs.StringVar(&c.DeadColor, "dead-color", c.DeadColor, "dead cell color")
}

// LoadFile overlays the keys present in the file at path onto c.
func (c *Config) LoadFile(path string) error {
	vp := viper.New()
	vp.SetConfigFile(path)
	if err := vp.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to read config: %s", path)
	}
	if err := vp.Unmarshal(c); err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to decode config: %s", path)
	}
	return nil
}

// Parse builds a Config from command-line arguments. When -config names a
// file it is loaded first and explicit flags override its values.
func Parse(name string, args []string) (*Config, error) {
	cfg := NewConfig()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.File != "" {
		file := cfg.File
		cfg = NewConfig()
		if err := cfg.LoadFile(file); err != nil {
			return nil, err
		}
		fs = flag.NewFlagSet(name, flag.ContinueOnError)
		cfg.Bind(fs)
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the controller or renderer cannot work with.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("window size must be positive, got %dx%d", c.Width, c.Height)
	case c.TPS <= 0:
		return errors.Errorf("tps must be positive, got %d", c.TPS)
	case c.Rate <= 0:
		return errors.Errorf("rate must be positive, got %d", c.Rate)
	case c.Density < 0 || c.Density > 1:
		return errors.Errorf("density must be within [0, 1], got %v", c.Density)
	case c.CellWidth <= 0:
		return errors.Errorf("cell width must be positive, got %v", c.CellWidth)
	case c.Offset < 0 || c.CellDistance < 0:
		return errors.Errorf("offset and cell distance must not be negative, got %v and %v", c.Offset, c.CellDistance)
	}
	_, err := c.Settings()
	return err
}

// Settings converts the layout and color options into settings.Settings.
func (c *Config) Settings() (settings.Settings, error) {
	s := settings.Settings{
		Wraparound:   c.Wraparound,
		Offset:       c.Offset,
		CellWidth:    c.CellWidth,
		CellDistance: c.CellDistance,
	}
	var err error
	if s.Background, err = settings.ParseHexColor(c.BackgroundColor); err != nil {
		return s, errors.Wrap(err, "background_color")
	}
	if s.Live, err = settings.ParseHexColor(c.LiveColor); err != nil {
		return s, errors.Wrap(err, "live_color")
	}
	if s.Dead, err = settings.ParseHexColor(c.DeadColor); err != nil {
		return s, errors.Wrap(err, "dead_color")
	}
	return s, nil
}
