package session

import (
	"fmt"

	"github.com/philipparndt/goperceptron/pkg/geometry"
	"github.com/philipparndt/goperceptron/pkg/viewer"
)

// EventKind identifies an outbound event
type EventKind int

const (
	KindPointAdded EventKind = iota
	KindIdealLineUpdated
	KindDragPreview
	KindTrainingLinesUpdated
	KindModeChanged
	KindModelChanged
)

// String returns the event name used by the web chart's CustomEvents
func (k EventKind) String() string {
	switch k {
	case KindPointAdded:
		return "pointAdded"
	case KindIdealLineUpdated:
		return "idealLineUpdated"
	case KindDragPreview:
		return "dragPreview"
	case KindTrainingLinesUpdated:
		return "trainingLineUpdated"
	case KindModeChanged:
		return "modeChanged"
	case KindModelChanged:
		return "modelChanged"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is emitted by the session for the rendering layer
type Event interface {
	Kind() EventKind
}

// PointAdded reports a new point in domain units
type PointAdded struct {
	X, Y float64
}

// IdealLineUpdated reports a committed ideal line. X1..Y2 are the pixel
// endpoints of the drag; Points carries the fresh labels of every point.
type IdealLineUpdated struct {
	X1, Y1 float64
	X2, Y2 float64
	Line   IdealLine
	Points []LabeledPoint
}

// DragPreview is a rendering-only update while a drag is in progress
type DragPreview struct {
	Equation geometry.Equation // Pixel-space equation
	Full     geometry.Line
	User     geometry.Line
}

// TrainingLinesUpdated carries the training lines that are currently visible
type TrainingLinesUpdated struct {
	Lines []TrainingSegment
}

// ModeChanged reports a mode switch; DragEnabled tells the front-end to
// attach or detach its drag recognizer
type ModeChanged struct {
	Mode        Mode
	DragEnabled bool
}

// ModelChanged carries a full snapshot after any committed change
type ModelChanged struct {
	Model Model
}

func (PointAdded) Kind() EventKind           { return KindPointAdded }
func (IdealLineUpdated) Kind() EventKind     { return KindIdealLineUpdated }
func (DragPreview) Kind() EventKind          { return KindDragPreview }
func (TrainingLinesUpdated) Kind() EventKind { return KindTrainingLinesUpdated }
func (ModeChanged) Kind() EventKind          { return KindModeChanged }
func (ModelChanged) Kind() EventKind         { return KindModelChanged }

// SceneLines returns the preview as keyed scene lines that replace the
// committed division lines while dragging
func (p DragPreview) SceneLines() []viewer.SceneLine {
	return []viewer.SceneLine{
		{Key: DivisionFullKey, Role: viewer.RoleDivision, Line: p.Full},
		{Key: DivisionUserKey, Role: viewer.RoleUserSegment, Line: p.User},
	}
}

// Positive counts the points labeled positive
func (e IdealLineUpdated) Positive() int {
	n := 0
	for _, p := range e.Points {
		if p.Side == geometry.Positive {
			n++
		}
	}
	return n
}

// Observer receives session events
type Observer interface {
	Notify(Event)
}

// ObserverFunc adapts a function to the Observer interface
type ObserverFunc func(Event)

// Notify calls f(e)
func (f ObserverFunc) Notify(e Event) {
	f(e)
}
