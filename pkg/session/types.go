package session

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/philipparndt/goperceptron/pkg/geometry"
	"github.com/philipparndt/goperceptron/pkg/training"
	"github.com/philipparndt/goperceptron/pkg/viewer"
)

// Mode selects which pointer gestures the chart reacts to
type Mode int

const (
	// PlacePoints turns clicks into new points
	PlacePoints Mode = iota
	// DrawLine turns drags into the ideal line
	DrawLine
)

// String returns "place" or "draw"
func (m Mode) String() string {
	switch m {
	case PlacePoints:
		return "place"
	case DrawLine:
		return "draw"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts "place"/"points" and "draw"/"line"
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "place", "points", "place-points":
		return PlacePoints, nil
	case "draw", "line", "draw-line":
		return DrawLine, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownMode)
	}
}

// LabeledPoint is a placed point in domain units with its classification
type LabeledPoint struct {
	geometry.Point
	Radius float64
	Side   geometry.Side
}

// ScaledPoint is a pointer position known in domain (Normal) and pixel (Scaled) space
type ScaledPoint struct {
	Normal geometry.Point
	Scaled geometry.Point
}

// DragState is the gesture between a drag start and its end
type DragState struct {
	Start   ScaledPoint
	Current ScaledPoint
}

// IdealLine is the committed decision boundary
type IdealLine struct {
	Domain   geometry.Line     // Committed endpoints in domain units, start to end
	Equation geometry.Equation // Domain equation through Domain.Start and Domain.End
	User     geometry.Line     // Dragged segment in pixels
	Full     geometry.Line     // Dragged line extended across the viewport, in pixels
}

// TrainingSegment is a visible training line realized in pixel space
type TrainingSegment struct {
	ID       uuid.UUID
	Equation geometry.Equation
	Line     geometry.Line
}

// Model is a point-in-time copy of the session state, enough for a full re-render
type Model struct {
	ID            uuid.UUID
	Mode          Mode
	Transform     *viewer.Transform
	Points        []LabeledPoint
	IdealLine     *IdealLine
	TrainingLines []TrainingSegment // Lines that pass the brush filter
	TrainingTotal int               // Lines before filtering
	Brush         *training.Range
}

// Scene converts the model into renderer primitives
func (m Model) Scene() viewer.Scene {
	scene := viewer.Scene{
		Transform: m.Transform,
		Points:    make([]viewer.ScenePoint, 0, len(m.Points)),
		Lines:     make([]viewer.SceneLine, 0, len(m.TrainingLines)+2),
	}

	for _, p := range m.Points {
		scene.Points = append(scene.Points, viewer.ScenePoint{
			Pixel:  m.Transform.ToPixel(p.Point),
			Radius: p.Radius,
			Side:   p.Side,
		})
	}

	for _, l := range m.TrainingLines {
		scene.Lines = append(scene.Lines, viewer.SceneLine{
			Key:  l.ID.String(),
			Role: viewer.RoleTraining,
			Line: l.Line,
		})
	}

	if m.IdealLine != nil {
		scene.Lines = append(scene.Lines,
			viewer.SceneLine{Key: DivisionFullKey, Role: viewer.RoleDivision, Line: m.IdealLine.Full},
			viewer.SceneLine{Key: DivisionUserKey, Role: viewer.RoleUserSegment, Line: m.IdealLine.User},
		)
	}

	return scene
}

// Keys of the two division lines, shared by previews and the committed line
const (
	DivisionFullKey = "division-full"
	DivisionUserKey = "division-user"
)
