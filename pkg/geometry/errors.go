package geometry

import "errors"

var (
	// ErrDegenerateLine indicates that a line was requested through two identical points.
	ErrDegenerateLine = errors.New("geometry: line endpoints must differ")
	// ErrVerticalLine indicates that a y value was requested from a vertical equation.
	ErrVerticalLine = errors.New("geometry: vertical line has no y for a given x")
)
