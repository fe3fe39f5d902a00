package geometry

// Side is the classification of a point relative to a directed line
type Side int8

const (
	// Unclassified means no ideal line existed when the point was labeled
	Unclassified Side = iota
	// Negative means the cross product was zero or negative
	Negative
	// Positive means the point lies strictly to the left of the directed line
	Positive
)

// SideFromBool maps a boolean label onto a side
func SideFromBool(positive bool) Side {
	if positive {
		return Positive
	}
	return Negative
}

// Bool returns the boolean label and whether the point is classified at all
func (s Side) Bool() (positive bool, ok bool) {
	switch s {
	case Positive:
		return true, true
	case Negative:
		return false, true
	default:
		return false, false
	}
}

// String returns "positive", "negative" or "unclassified"
func (s Side) String() string {
	switch s {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	default:
		return "unclassified"
	}
}

// Cross returns (b-a) x (p-a): positive when p is left of a->b
func Cross(a, b, p Point) float64 {
	return b.Sub(a).Cross(p.Sub(a))
}

// SideOf classifies p against the directed line a->b.
// Points exactly on the line are Negative.
func SideOf(a, b, p Point) Side {
	return SideFromBool(Cross(a, b, p) > 0)
}

// Classify labels every point against the directed line
func Classify(line Line, points []Point) []Side {
	sides := make([]Side, len(points))
	for i, p := range points {
		sides[i] = SideOf(line.Start, line.End, p)
	}
	return sides
}
