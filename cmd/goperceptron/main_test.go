package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/goperceptron/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestParsePoint(t *testing.T) {
	tests := []struct {
		in      string
		want    geometry.Point
		wantErr bool
	}{
		{"1,2", geometry.NewPoint(1, 2), false},
		{" -3.5 , 4 ", geometry.NewPoint(-3.5, 4), false},
		{"1", geometry.Point{}, true},
		{"1,2,3", geometry.Point{}, true},
		{"a,2", geometry.Point{}, true},
		{"1,b", geometry.Point{}, true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parsePoint(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseLineDegenerate(t *testing.T) {
	_, err := parseLine("1,1", "1,1")
	assert.ErrorIs(t, err, geometry.ErrDegenerateLine)
}

func TestClassifyCommand(t *testing.T) {
	out := execute(t, "classify", "--from", "-50,0", "--to", "50,0", "-10,-10", "10,10")

	assert.Contains(t, out, "y = 0.000x +0.000")
	assert.Contains(t, out, "(-10, -10)  negative")
	assert.Contains(t, out, "(10, 10)  positive")
}

const testScenario = `
name: split the origin
steps:
  - click: [166, 234]
  - click: [234, 166]
  - mode: draw
  - drag: [[30, 200], [370, 200]]
  - train: 3
`

func writeScenario(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testScenario), 0o644))
	return path
}

func TestSimulateCommand(t *testing.T) {
	out := execute(t, "simulate", writeScenario(t))

	assert.Contains(t, out, "Scenario: split the origin")
	assert.Contains(t, out, "Mode: draw")
	assert.Contains(t, out, "(-10, -10)  negative")
	assert.Contains(t, out, "(10, 10)  positive")
	assert.Contains(t, out, "Ideal line: y = 0.000x +0.000")
	assert.Contains(t, out, "Training lines: 3 of 3 visible")
}

func TestRenderCommand(t *testing.T) {
	output := filepath.Join(t.TempDir(), "chart.png")
	execute(t, "render", writeScenario(t), "--output", output)

	f, err := os.Open(output)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 400, img.Bounds().Dy())
}

func TestTrainCommand(t *testing.T) {
	out := execute(t, "train", "-n", "4", "--seed", "7",
		"--from", "-50,0", "--to", "50,0", "-p", "0,10", "-p", "0,-10")

	assert.Contains(t, out, "Training Lines (4)")
	assert.Contains(t, out, "agreement")
	assert.Contains(t, out, "Summary:")
}
