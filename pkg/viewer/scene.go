package viewer

import "github.com/philipparndt/goperceptron/pkg/geometry"

// LineRole identifies what a scene line depicts
type LineRole int

const (
	// RoleTraining is a generated candidate line
	RoleTraining LineRole = iota
	// RoleDivision is the ideal line extended across the viewport
	RoleDivision
	// RoleUserSegment is the literal segment the user dragged
	RoleUserSegment
)

// String returns the role name, matching the CSS classes of the web chart
func (r LineRole) String() string {
	switch r {
	case RoleTraining:
		return "train"
	case RoleDivision:
		return "division--full"
	case RoleUserSegment:
		return "division--user-defined"
	default:
		return "unknown"
	}
}

// SceneLine is a line in pixel space, keyed for incremental renderers
type SceneLine struct {
	Key  string
	Role LineRole
	Line geometry.Line
}

// ScenePoint is a labeled point in pixel space
type ScenePoint struct {
	Pixel  geometry.Point
	Radius float64
	Side   geometry.Side
}

// Scene is everything a renderer needs to draw one frame of the chart
type Scene struct {
	Transform *Transform
	Points    []ScenePoint
	Lines     []SceneLine
}

// WithLines returns a copy of the scene where lines replace existing lines
// with the same key. Lines with new keys are appended.
func (s Scene) WithLines(lines []SceneLine) Scene {
	if len(lines) == 0 {
		return s
	}

	index := make(map[string]int, len(s.Lines))
	out := append([]SceneLine(nil), s.Lines...)
	for i, l := range out {
		index[l.Key] = i
	}
	for _, l := range lines {
		if i, ok := index[l.Key]; ok {
			out[i] = l
			continue
		}
		index[l.Key] = len(out)
		out = append(out, l)
	}

	s.Lines = out
	return s
}
