// Package config loads LocalSketch settings from an optional TOML file
// layered over built-in defaults.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"LocalSketch/internal/sketch"
)

type Canvas struct {
	Width     int     `toml:"width"`
	Height    int     `toml:"height"`
	LineWidth float64 `toml:"line_width"`
}

type Smoothing struct {
	Enabled bool   `toml:"enabled"`
	Mode    string `toml:"mode"`
}

type Preview struct {
	// Live refreshes the preview on every pointer move, not only when a
	// stroke ends.
	Live      bool   `toml:"live"`
	Addr      string `toml:"addr"`
	Advertise bool   `toml:"advertise"`
}

type Store struct {
	Dir string `toml:"dir"`
	Key string `toml:"key"`
}

type Export struct {
	Precision int `toml:"precision"`
}

// Config is the full settings tree.
type Config struct {
	Canvas    Canvas    `toml:"canvas"`
	Smoothing Smoothing `toml:"smoothing"`
	Preview   Preview   `toml:"preview"`
	Store     Store     `toml:"store"`
	Export    Export    `toml:"export"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Canvas:    Canvas{Width: 800, Height: 400, LineWidth: 2},
		Smoothing: Smoothing{Mode: sketch.SmoothPostHoc.String()},
		Preview:   Preview{Addr: ":8888"},
		Store:     Store{Key: sketch.DefaultSaveKey},
	}
}

// Load reads path over the defaults. A missing file is not an error when
// optional is set.
func Load(path string, optional bool) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, os.ErrNotExist) && optional {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config %s: unknown keys %v", path, undecoded)
	}
	return cfg, cfg.Validate()
}

// FlagGiven reports whether name was set on the command line, as opposed
// to holding its default.
func FlagGiven(fs *flag.FlagSet, name string) bool {
	given := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			given = true
		}
	})
	return given
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("config: canvas size %dx%d must be positive", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Canvas.LineWidth <= 0 {
		return fmt.Errorf("config: line_width %g must be positive", c.Canvas.LineWidth)
	}
	if _, err := sketch.ParseSmoothingMode(c.Smoothing.Mode); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Store.Key == "" {
		return errors.New("config: store key must not be empty")
	}
	if c.Export.Precision < 0 {
		return fmt.Errorf("config: precision %d must not be negative", c.Export.Precision)
	}
	return nil
}

// Options converts the settings into controller options.
func (c Config) Options() sketch.Options {
	mode, _ := sketch.ParseSmoothingMode(c.Smoothing.Mode)
	return sketch.Options{
		LineWidth:        c.Canvas.LineWidth,
		Smoothing:        mode,
		SmoothingEnabled: c.Smoothing.Enabled,
		LivePreview:      c.Preview.Live,
		SaveKey:          c.Store.Key,
		Precision:        c.Export.Precision,
	}
}
