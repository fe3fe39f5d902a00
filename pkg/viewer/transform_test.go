package viewer

import (
	"math"
	"testing"

	"github.com/philipparndt/goperceptron/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTransform() *Transform {
	return NewTransform(Domain{Min: -50, Max: 50}, 400, 400, UniformPadding(30))
}

func TestTransformRoundTrip(t *testing.T) {
	tr := newTestTransform()

	for v := -50.0; v <= 50.0; v += 0.5 {
		assert.InDelta(t, v, tr.ToDomainX(tr.ToPixelX(v)), 1e-9, "x round trip for %v", v)
		assert.InDelta(t, v, tr.ToDomainY(tr.ToPixelY(v)), 1e-9, "y round trip for %v", v)
	}
	for px := 0.0; px <= 400.0; px += 7 {
		assert.InDelta(t, px, tr.ToPixelX(tr.ToDomainX(px)), 1e-9)
		assert.InDelta(t, px, tr.ToPixelY(tr.ToDomainY(px)), 1e-9)
	}
}

func TestTransformEdges(t *testing.T) {
	tr := newTestTransform()

	assert.InDelta(t, 30, tr.ToPixelX(-50), 1e-9)
	assert.InDelta(t, 370, tr.ToPixelX(50), 1e-9)
	// Domain y grows upward, pixel y grows downward
	assert.InDelta(t, 370, tr.ToPixelY(-50), 1e-9)
	assert.InDelta(t, 30, tr.ToPixelY(50), 1e-9)

	p := tr.ToDomain(geometry.NewPoint(30, 200))
	assert.InDelta(t, -50, p.X, 1e-9)
	assert.InDelta(t, 0, p.Y, 1e-9)
}

func TestTransformExtrapolates(t *testing.T) {
	tr := newTestTransform()

	assert.InDelta(t, -58.8235294117, tr.ToDomainX(0), 1e-6)
	assert.InDelta(t, 58.8235294117, tr.ToDomainX(400), 1e-6)
	assert.InDelta(t, 200+3.4*100, tr.ToPixelX(100), 1e-9)
}

func TestTransformEmptyDomain(t *testing.T) {
	tr := NewTransform(Domain{Min: 5, Max: 5}, 400, 400, UniformPadding(30))

	assert.Equal(t, 200.0, tr.ToPixelX(5))
	assert.Equal(t, 200.0, tr.ToPixelY(123))
	assert.False(t, math.IsNaN(tr.ToDomainX(17)))
}

func TestEquationToPixel(t *testing.T) {
	tr := newTestTransform()

	line := tr.EquationToPixel(geometry.NewEquation(0, 0))
	require.Equal(t, geometry.FullExtension, line.Kind)
	assert.InDelta(t, 0, line.Start.X, 1e-9)
	assert.InDelta(t, 400, line.End.X, 1e-9)
	assert.InDelta(t, 200, line.Start.Y, 1e-9)
	assert.InDelta(t, 200, line.End.Y, 1e-9)

	vertical := tr.EquationToPixel(geometry.VerticalAt(0))
	assert.Equal(t, geometry.NewPoint(200, 0), vertical.Start)
	assert.Equal(t, geometry.NewPoint(200, 400), vertical.End)
}
