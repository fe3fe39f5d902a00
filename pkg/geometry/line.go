package geometry

import (
	"fmt"
	"math"
)

// LineKind tags how a line segment was produced
type LineKind int

const (
	// UserDefined is the literal segment between two pointer positions
	UserDefined LineKind = iota
	// FullExtension is the infinite line through a segment, clipped to the viewport
	FullExtension
)

// String returns the kind name used in logs and scenario output
func (k LineKind) String() string {
	switch k {
	case UserDefined:
		return "user"
	case FullExtension:
		return "full"
	default:
		return fmt.Sprintf("LineKind(%d)", int(k))
	}
}

// Line is a segment between two points
type Line struct {
	Kind  LineKind
	Start Point
	End   Point
}

// NewLine creates a new line segment of the given kind
func NewLine(kind LineKind, start, end Point) Line {
	return Line{Kind: kind, Start: start, End: end}
}

// Reversed returns the same segment with its direction flipped
func (l Line) Reversed() Line {
	return Line{Kind: l.Kind, Start: l.End, End: l.Start}
}

// Length returns the segment length
func (l Line) Length() float64 {
	return l.Start.Distance(l.End)
}

// Equation derives the line equation through both endpoints
func (l Line) Equation() (Equation, error) {
	return EquationThrough(l.Start, l.End)
}

// Equation is y = Slope*x + Offset, or x = X when Vertical is set.
// Offset is meaningless for vertical lines and X is meaningless otherwise.
type Equation struct {
	Vertical bool
	X        float64
	Slope    float64
	Offset   float64
}

// NewEquation creates a non-vertical line equation
func NewEquation(slope, offset float64) Equation {
	return Equation{Slope: slope, Offset: offset}
}

// VerticalAt creates the equation of the vertical line x = x
func VerticalAt(x float64) Equation {
	return Equation{Vertical: true, X: x}
}

// EquationThrough returns the equation of the line through a and b
func EquationThrough(a, b Point) (Equation, error) {
	if a == b {
		return Equation{}, ErrDegenerateLine
	}

	run := b.X - a.X
	if run == 0 {
		return VerticalAt(a.X), nil
	}

	slope := (b.Y - a.Y) / run
	return NewEquation(slope, b.Y-slope*b.X), nil
}

// SlopeValue returns the slope, reporting +Inf for vertical lines
func (e Equation) SlopeValue() float64 {
	if e.Vertical {
		return math.Inf(1)
	}
	return e.Slope
}

// YAt evaluates the equation at x
func (e Equation) YAt(x float64) (float64, error) {
	if e.Vertical {
		return 0, ErrVerticalLine
	}
	return e.Slope*x + e.Offset, nil
}

// XAt solves the equation for x at y.
// Horizontal lines have no unique solution and report ok=false.
func (e Equation) XAt(y float64) (x float64, ok bool) {
	if e.Vertical {
		return e.X, true
	}
	if e.Slope == 0 {
		return 0, false
	}
	return (y - e.Offset) / e.Slope, true
}

// Span realizes the equation as a segment between x0 and x1.
// Vertical equations span y0..y1 at their fixed x instead.
func (e Equation) Span(x0, x1, y0, y1 float64) Line {
	if e.Vertical {
		return NewLine(FullExtension, NewPoint(e.X, y0), NewPoint(e.X, y1))
	}
	return NewLine(FullExtension,
		NewPoint(x0, e.Slope*x0+e.Offset),
		NewPoint(x1, e.Slope*x1+e.Offset),
	)
}

// String formats the equation for logs and CLI output
func (e Equation) String() string {
	if e.Vertical {
		return fmt.Sprintf("x = %.3f", e.X)
	}
	return fmt.Sprintf("y = %.3fx %+.3f", e.Slope, e.Offset)
}
