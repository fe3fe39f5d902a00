package geometry

import "math"

// Viewport is the pixel size of the drawing surface
type Viewport struct {
	Width  float64
	Height float64
}

// DragResult holds the line produced by a drag gesture
type DragResult struct {
	Equation Equation // Pixel-space equation, y grows downward
	Full     Line     // Line extended to the left and right viewport edges
	User     Line     // Literal segment from drag start to current position
}

// DragLine converts a drag from start to current (both in pixel space) into
// the previewed decision boundary.
//
// The equation is in pixel space, where y grows downward, so its slope has the
// opposite sign of the same line expressed in domain coordinates. Committed
// lines carry their own domain equation derived from the domain endpoints.
func DragLine(start, current Point, vp Viewport) DragResult {
	result := DragResult{
		User: NewLine(UserDefined, start, current),
	}

	run := current.X - start.X
	rise := current.Y - start.Y

	if run == 0 {
		result.Equation = VerticalAt(current.X)
		result.Full = NewLine(FullExtension,
			NewPoint(current.X, 0),
			NewPoint(current.X, vp.Height),
		)
		return result
	}

	slope := rise / run
	offset := current.Y - slope*current.X
	result.Equation = NewEquation(slope, offset)

	minY := offset
	maxY := slope*vp.Width + offset

	minX, maxX := 0.0, vp.Width
	if slope != 0 {
		// Solve back from y so both endpoints come from the same equation
		minX, _ = result.Equation.XAt(minY)
		maxX, _ = result.Equation.XAt(maxY)
	}

	result.Full = NewLine(FullExtension, NewPoint(minX, minY), NewPoint(maxX, maxY))
	return result
}

// IsVertical reports whether the drag produced a vertical line
func (r DragResult) IsVertical() bool {
	return r.Equation.Vertical
}

// Slope returns the preview slope, +Inf for vertical lines
func (r DragResult) Slope() float64 {
	if r.Equation.Vertical {
		return math.Inf(1)
	}
	return r.Equation.Slope
}
