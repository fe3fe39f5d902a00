package training

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterByRangeStrictBounds(t *testing.T) {
	lines, err := NewGenerator(3).Generate(40)
	require.NoError(t, err)

	kept := FilterByRange(lines, Range{Lo: 0.25, Hi: 0.75})

	// 10/40 and 30/40 sit exactly on the bounds and are excluded
	require.Len(t, kept, 19)
	for i, l := range kept {
		assert.Equal(t, lines[11+i].ID, l.ID)
	}
}

func TestFilterByRangeFull(t *testing.T) {
	lines, err := NewGenerator(3).Generate(10)
	require.NoError(t, err)

	kept := FilterByRange(lines, Range{Lo: 0, Hi: 1})
	// Index 0 maps to 0/10 which is not strictly above 0
	require.Len(t, kept, 9)
	assert.Equal(t, lines[1].ID, kept[0].ID)

	assert.Empty(t, FilterByRange(nil, Range{Lo: 0, Hi: 1}))
}

func TestBrushRange(t *testing.T) {
	tests := []struct {
		name       string
		lo, hi     float64
		width      float64
		want       Range
		wantErrMsg error
	}{
		{"Ordered", 100, 300, 400, Range{Lo: 0.25, Hi: 0.75}, nil},
		{"Reversed", 300, 100, 400, Range{Lo: 0.25, Hi: 0.75}, nil},
		{"Clamped", -50, 500, 400, Range{Lo: 0, Hi: 1}, nil},
		{"ZeroTrack", 0, 10, 0, Range{}, ErrInvalidTrack},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := BrushRange(tc.lo, tc.hi, tc.width)
			if tc.wantErrMsg != nil {
				assert.ErrorIs(t, err, tc.wantErrMsg)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tc.want.Lo, got.Lo, 1e-12)
			assert.InDelta(t, tc.want.Hi, got.Hi, 1e-12)
		})
	}
}
