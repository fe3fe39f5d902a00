package geometry

import "math"

// Point represents a 2D point in either domain or pixel space
type Point struct {
	X, Y float64
}

// NewPoint creates a new 2D point
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Sub returns the difference between two points
func (p Point) Sub(other Point) Point {
	return Point{
		X: p.X - other.X,
		Y: p.Y - other.Y,
	}
}

// Cross returns the z component of the 3D cross product of two vectors in the plane
func (p Point) Cross(other Point) float64 {
	return p.X*other.Y - p.Y*other.X
}

// Length returns the magnitude of the vector
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the distance between two points
func (p Point) Distance(other Point) float64 {
	return p.Sub(other).Length()
}

// Round snaps both coordinates to the nearest integer
func (p Point) Round() Point {
	return Point{
		X: math.Round(p.X),
		Y: math.Round(p.Y),
	}
}
