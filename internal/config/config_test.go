package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "goperceptron.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
[chart]
domain = [-10.0, 10.0]
width = 600.0
snap = false

[chart.padding]
left = 40.0

[training]
count = 12
seed = 99

[log]
level = "debug"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, [2]float64{-10, 10}, cfg.Chart.Domain)
	assert.Equal(t, 600.0, cfg.Chart.Width)
	assert.Equal(t, 400.0, cfg.Chart.Height)
	assert.False(t, cfg.Chart.Snap)
	assert.Equal(t, 40.0, cfg.Chart.Padding.Left)
	assert.Equal(t, 30.0, cfg.Chart.Padding.Top)
	assert.Equal(t, 12, cfg.Training.Count)
	assert.Equal(t, uint64(99), cfg.Training.Seed)
	assert.Equal(t, "debug", cfg.Log.Level)

	tr := cfg.Transform()
	assert.InDelta(t, 40, tr.ToPixelX(-10), 1e-9)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"InvertedDomain", "[chart]\ndomain = [5.0, -5.0]\n"},
		{"ZeroWidth", "[chart]\nwidth = 0.0\n"},
		{"HugePadding", "[chart.padding]\nleft = 300.0\nright = 300.0\n"},
		{"NegativeCount", "[training]\ncount = -1\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestNewSession(t *testing.T) {
	cfg := Default()
	cfg.Chart.PointRadius = 8

	s := cfg.NewSession()
	_, err := s.SurfaceClicked(200, 200)
	require.NoError(t, err)
	assert.Equal(t, 8.0, s.Snapshot().Points[0].Radius)
}
