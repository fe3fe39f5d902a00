package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BrushSelection is a horizontal span dragged out on the brush strip.
// Positions are relative to the strip's left edge.
type BrushSelection struct {
	Start float32
	End   float32
}

// Span returns the ordered pixel range
func (b BrushSelection) Span() (lo, hi float64) {
	lo = math.Min(float64(b.Start), float64(b.End))
	hi = math.Max(float64(b.Start), float64(b.End))
	return lo, hi
}

// Empty reports a selection too narrow to filter anything
func (b BrushSelection) Empty() bool {
	lo, hi := b.Span()
	return hi-lo < 1
}

// GetRectangle returns the selection inside the strip
func (b BrushSelection) GetRectangle(strip rl.Rectangle) rl.Rectangle {
	lo, hi := b.Span()
	return rl.Rectangle{
		X:      strip.X + float32(lo),
		Y:      strip.Y,
		Width:  float32(hi - lo),
		Height: strip.Height,
	}
}

// Draw renders the selection on top of the strip
func (b BrushSelection) Draw(strip rl.Rectangle) {
	rect := b.GetRectangle(strip)

	rl.DrawRectangleRec(rect, rl.NewColor(100, 150, 255, 50))
	rl.DrawRectangleLinesEx(rect, 2, rl.NewColor(100, 150, 255, 200))
}
