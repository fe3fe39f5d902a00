package app

import (
	"fmt"
	"sync"

	"github.com/philipparndt/goperceptron/pkg/session"
	"github.com/philipparndt/goperceptron/pkg/viewer"
)

// eventSink keeps the latest state the session reported, for drawing
type eventSink struct {
	mu      sync.Mutex
	model   session.Model
	preview []viewer.SceneLine
	status  string
}

func newEventSink(initial session.Model) *eventSink {
	return &eventSink{model: initial, status: "ready"}
}

// Notify implements session.Observer
func (s *eventSink) Notify(e session.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch ev := e.(type) {
	case session.ModelChanged:
		s.model = ev.Model
	case session.DragPreview:
		s.preview = ev.SceneLines()
	case session.IdealLineUpdated:
		s.preview = nil
		s.status = fmt.Sprintf("ideal line %s: %d of %d points positive",
			ev.Line.Equation, ev.Positive(), len(ev.Points))
	case session.TrainingLinesUpdated:
		s.status = fmt.Sprintf("%d training lines visible", len(ev.Lines))
	case session.ModeChanged:
		s.preview = nil
		s.status = fmt.Sprintf("mode: %s", ev.Mode)
	case session.PointAdded:
		s.status = fmt.Sprintf("point (%g, %g)", ev.X, ev.Y)
	}
}

func (s *eventSink) clearPreview() {
	s.mu.Lock()
	s.preview = nil
	s.mu.Unlock()
}

func (s *eventSink) setStatus(status string) {
	s.mu.Lock()
	s.status = status
	s.mu.Unlock()
}

func (s *eventSink) snapshot() (session.Model, []viewer.SceneLine, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model, s.preview, s.status
}
