package session

import (
	"sync"

	"github.com/google/uuid"
	"github.com/philipparndt/goperceptron/pkg/geometry"
	"github.com/philipparndt/goperceptron/pkg/training"
	"github.com/philipparndt/goperceptron/pkg/viewer"
)

// DefaultPointRadius is the radius of a placed point in pixels
const DefaultPointRadius = 5.0

// Session is the aggregate root of one chart
type Session struct {
	mu sync.Mutex

	id          uuid.UUID
	transform   *viewer.Transform
	generator   *training.Generator
	pointRadius float64
	snap        bool
	brushTrack  float64

	mode     Mode
	points   []LabeledPoint
	ideal    *IdealLine
	training []training.Line
	brush    *training.Range
	drag     *DragState

	observers []subscription
	nextSubID int
}

type subscription struct {
	id       int
	observer Observer
}

// Option configures a Session
type Option func(*Session)

// WithPointRadius sets the radius given to new points
func WithPointRadius(r float64) Option {
	return func(s *Session) { s.pointRadius = r }
}

// WithSnap controls whether pointer positions snap to integer domain units
func WithSnap(snap bool) Option {
	return func(s *Session) { s.snap = snap }
}

// WithGenerator replaces the training line generator
func WithGenerator(g *training.Generator) Option {
	return func(s *Session) { s.generator = g }
}

// WithBrushTrack sets the pixel width that brush positions are normalized by
func WithBrushTrack(width float64) Option {
	return func(s *Session) { s.brushTrack = width }
}

// WithMode sets the initial mode
func WithMode(m Mode) Option {
	return func(s *Session) { s.mode = m }
}

// New creates a session for a chart using the given transform
func New(t *viewer.Transform, opts ...Option) *Session {
	s := &Session{
		id:          uuid.New(),
		transform:   t,
		pointRadius: DefaultPointRadius,
		snap:        true,
		brushTrack:  t.Viewport().Width,
		mode:        PlacePoints,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.generator == nil {
		s.generator = training.NewGenerator(0)
	}
	return s
}

// ID returns the session identifier
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Transform returns the coordinate transform of the chart
func (s *Session) Transform() *viewer.Transform {
	return s.transform
}

// Mode returns the active mode
func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Dragging reports whether a drag gesture is in progress
func (s *Session) Dragging() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drag != nil
}

// Snapshot returns a copy of the current model
func (s *Session) Snapshot() Model {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// TrainingLines returns all training lines, ignoring the brush
func (s *Session) TrainingLines() []training.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]training.Line(nil), s.training...)
}

// Subscribe registers an observer and returns a function that removes it
func (s *Session) Subscribe(o Observer) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSubID++
	id := s.nextSubID
	s.observers = append(s.observers, subscription{id: id, observer: o})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.observers {
			if sub.id == id {
				s.observers = append(s.observers[:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

// apply runs a handler under the lock, then delivers its events outside it
func (s *Session) apply(handler func() ([]Event, error)) ([]Event, error) {
	s.mu.Lock()
	events, err := handler()
	observers := make([]Observer, len(s.observers))
	for i, sub := range s.observers {
		observers[i] = sub.observer
	}
	s.mu.Unlock()

	for _, e := range events {
		for _, o := range observers {
			o.Notify(e)
		}
	}
	return events, err
}

// capture converts a pointer position into a scaled point. Scaled is the raw
// pointer position; with snapping only the domain half is rounded.
func (s *Session) capture(px, py float64) ScaledPoint {
	raw := geometry.NewPoint(px, py)
	normal := s.transform.ToDomain(raw)
	if s.snap {
		normal = normal.Round()
	}
	return ScaledPoint{Normal: normal, Scaled: raw}
}

func (s *Session) snapshotLocked() Model {
	m := Model{
		ID:            s.id,
		Mode:          s.mode,
		Transform:     s.transform,
		Points:        append([]LabeledPoint(nil), s.points...),
		TrainingLines: s.visibleTrainingLocked(),
		TrainingTotal: len(s.training),
	}
	if s.ideal != nil {
		ideal := *s.ideal
		m.IdealLine = &ideal
	}
	if s.brush != nil {
		brush := *s.brush
		m.Brush = &brush
	}
	return m
}

// visibleTrainingLocked applies the brush filter on every call
func (s *Session) visibleTrainingLocked() []TrainingSegment {
	lines := s.training
	if s.brush != nil {
		lines = training.FilterByRange(lines, *s.brush)
	}

	segments := make([]TrainingSegment, 0, len(lines))
	for _, l := range lines {
		segments = append(segments, TrainingSegment{
			ID:       l.ID,
			Equation: l.Equation,
			Line:     s.transform.EquationToPixel(l.Equation),
		})
	}
	return segments
}

func (s *Session) modelChangedLocked() Event {
	return ModelChanged{Model: s.snapshotLocked()}
}
