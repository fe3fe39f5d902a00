package training

import (
	"github.com/philipparndt/goperceptron/pkg/geometry"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the distribution of a batch of candidate lines
type Summary struct {
	Count        int
	MeanSlope    float64
	StdDevSlope  float64
	MeanOffset   float64
	StdDevOffset float64
}

// Summarize computes slope and offset statistics. Vertical lines are skipped.
func Summarize(lines []Line) Summary {
	slopes := make([]float64, 0, len(lines))
	offsets := make([]float64, 0, len(lines))
	for _, l := range lines {
		if l.Equation.Vertical {
			continue
		}
		slopes = append(slopes, l.Equation.Slope)
		offsets = append(offsets, l.Equation.Offset)
	}

	s := Summary{Count: len(slopes)}
	if s.Count == 0 {
		return s
	}
	s.MeanSlope, s.StdDevSlope = stat.MeanStdDev(slopes, nil)
	s.MeanOffset, s.StdDevOffset = stat.MeanStdDev(offsets, nil)
	return s
}

// Agreement returns the fraction of points a candidate line puts on the same
// side as the ideal line. Both lines are directed left to right so that
// their orientations are comparable. It is a display statistic only.
func Agreement(candidate geometry.Equation, ideal geometry.Line, points []geometry.Point) float64 {
	if len(points) == 0 {
		return 0
	}

	a, b := directedPoints(candidate)
	ia, ib := ideal.Start, ideal.End
	if ib.X < ia.X || (ib.X == ia.X && ib.Y < ia.Y) {
		ia, ib = ib, ia
	}

	same := 0
	for _, p := range points {
		if geometry.SideOf(a, b, p) == geometry.SideOf(ia, ib, p) {
			same++
		}
	}
	return float64(same) / float64(len(points))
}

// directedPoints returns two points on the equation ordered by increasing x,
// or by increasing y for vertical lines
func directedPoints(eq geometry.Equation) (geometry.Point, geometry.Point) {
	if eq.Vertical {
		return geometry.NewPoint(eq.X, 0), geometry.NewPoint(eq.X, 1)
	}
	return geometry.NewPoint(0, eq.Offset), geometry.NewPoint(1, eq.Slope+eq.Offset)
}
