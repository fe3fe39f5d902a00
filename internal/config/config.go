// Package config loads chart settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/philipparndt/goperceptron/pkg/session"
	"github.com/philipparndt/goperceptron/pkg/training"
	"github.com/philipparndt/goperceptron/pkg/viewer"
)

// ErrInvalidConfig indicates a setting outside its valid range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full application configuration
type Config struct {
	Chart    ChartConfig    `toml:"chart"`
	Training TrainingConfig `toml:"training"`
	Log      LogConfig      `toml:"log"`
}

// ChartConfig describes the coordinate system and viewport
type ChartConfig struct {
	Domain      [2]float64    `toml:"domain"`
	Width       float64       `toml:"width"`
	Height      float64       `toml:"height"`
	Padding     PaddingConfig `toml:"padding"`
	PointRadius float64       `toml:"point_radius"`
	Snap        bool          `toml:"snap"`
}

// PaddingConfig is the inset of the plotting area
type PaddingConfig struct {
	Top    float64 `toml:"top"`
	Right  float64 `toml:"right"`
	Bottom float64 `toml:"bottom"`
	Left   float64 `toml:"left"`
}

// TrainingConfig controls generated training lines
type TrainingConfig struct {
	Count int    `toml:"count"`
	Seed  uint64 `toml:"seed"`
}

// LogConfig controls logging
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns a 400x400 chart over [-50, 50] with 30px padding
func Default() Config {
	return Config{
		Chart: ChartConfig{
			Domain:      [2]float64{-50, 50},
			Width:       400,
			Height:      400,
			Padding:     PaddingConfig{Top: 30, Right: 30, Bottom: 30, Left: 30},
			PointRadius: session.DefaultPointRadius,
			Snap:        true,
		},
		Training: TrainingConfig{
			Count: 40,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads a TOML file on top of the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that the chart can be drawn
func (c Config) Validate() error {
	ch := c.Chart
	switch {
	case ch.Domain[0] >= ch.Domain[1]:
		return fmt.Errorf("%w: domain min %v must be below max %v", ErrInvalidConfig, ch.Domain[0], ch.Domain[1])
	case ch.Width <= 0 || ch.Height <= 0:
		return fmt.Errorf("%w: viewport %vx%v must be positive", ErrInvalidConfig, ch.Width, ch.Height)
	case ch.Padding.Left+ch.Padding.Right >= ch.Width || ch.Padding.Top+ch.Padding.Bottom >= ch.Height:
		return fmt.Errorf("%w: padding leaves no plotting area", ErrInvalidConfig)
	case ch.PointRadius < 0:
		return fmt.Errorf("%w: point radius %v is negative", ErrInvalidConfig, ch.PointRadius)
	case c.Training.Count < 0:
		return fmt.Errorf("%w: training count %d is negative", ErrInvalidConfig, c.Training.Count)
	}
	return nil
}

// Transform builds the chart transform
func (c Config) Transform() *viewer.Transform {
	ch := c.Chart
	return viewer.NewTransform(
		viewer.Domain{Min: ch.Domain[0], Max: ch.Domain[1]},
		ch.Width, ch.Height,
		viewer.Padding{Top: ch.Padding.Top, Right: ch.Padding.Right, Bottom: ch.Padding.Bottom, Left: ch.Padding.Left},
	)
}

// NewSession creates a session configured by c
func (c Config) NewSession(opts ...session.Option) *session.Session {
	base := []session.Option{
		session.WithPointRadius(c.Chart.PointRadius),
		session.WithSnap(c.Chart.Snap),
		session.WithGenerator(training.NewGenerator(c.Training.Seed)),
	}
	return session.New(c.Transform(), append(base, opts...)...)
}
