package training

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRanges(t *testing.T) {
	g := NewGenerator(42)
	lines, err := g.Generate(500)
	require.NoError(t, err)
	require.Len(t, lines, 500)

	seen := make(map[string]bool)
	for _, l := range lines {
		eq := l.Equation
		require.False(t, eq.Vertical)

		assert.GreaterOrEqual(t, eq.Slope, -2.5)
		assert.LessOrEqual(t, eq.Slope, 2.5)
		assert.Equal(t, eq.Slope*2, math.Round(eq.Slope*2), "slope %v is not a multiple of 0.5", eq.Slope)

		assert.GreaterOrEqual(t, eq.Offset, -20.0)
		assert.LessOrEqual(t, eq.Offset, 20.0)
		assert.Equal(t, eq.Offset, math.Round(eq.Offset))

		assert.False(t, seen[l.ID.String()], "duplicate id %s", l.ID)
		seen[l.ID.String()] = true
	}
}

func TestGenerateDeterministicSeed(t *testing.T) {
	a, err := NewGenerator(7).Generate(20)
	require.NoError(t, err)
	b, err := NewGenerator(7).Generate(20)
	require.NoError(t, err)

	for i := range a {
		assert.Equal(t, a[i].Equation, b[i].Equation)
	}
}

func TestGenerateNegativeCount(t *testing.T) {
	_, err := NewGenerator(1).Generate(-1)
	assert.ErrorIs(t, err, ErrNegativeCount)

	lines, err := NewGenerator(1).Generate(0)
	require.NoError(t, err)
	assert.Empty(t, lines)
}
