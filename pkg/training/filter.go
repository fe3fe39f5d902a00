package training

import (
	"fmt"
	"math"
)

// Range is a normalized sub-range of [0, 1]
type Range struct {
	Lo float64
	Hi float64
}

// Contains reports whether f lies strictly inside the range
func (r Range) Contains(f float64) bool {
	return r.Lo < f && f < r.Hi
}

// BrushRange converts a brush selection in pixels into a normalized range.
// The ends may arrive in either order and are clamped to the track.
func BrushRange(loPx, hiPx, trackWidth float64) (Range, error) {
	if trackWidth <= 0 || math.IsNaN(trackWidth) {
		return Range{}, fmt.Errorf("brush track %v: %w", trackWidth, ErrInvalidTrack)
	}
	if loPx > hiPx {
		loPx, hiPx = hiPx, loPx
	}
	return Range{
		Lo: clamp01(loPx / trackWidth),
		Hi: clamp01(hiPx / trackWidth),
	}, nil
}

// FilterByRange keeps the lines whose index i satisfies lo < i/len(lines) < hi
func FilterByRange(lines []Line, r Range) []Line {
	count := float64(len(lines))
	kept := make([]Line, 0, len(lines))
	for i, l := range lines {
		if r.Contains(float64(i) / count) {
			kept = append(kept, l)
		}
	}
	return kept
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
