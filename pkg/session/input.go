package session

import (
	"fmt"

	"github.com/philipparndt/goperceptron/pkg/geometry"
	"github.com/philipparndt/goperceptron/pkg/training"
)

// SurfaceClicked places a point at the clicked pixel. Only handled in PlacePoints.
func (s *Session) SurfaceClicked(px, py float64) ([]Event, error) {
	return s.apply(func() ([]Event, error) {
		if s.mode != PlacePoints {
			return nil, fmt.Errorf("click at (%.1f, %.1f) in %s mode: %w", px, py, s.mode, ErrWrongMode)
		}

		p := s.capture(px, py)
		s.points = append(s.points, LabeledPoint{
			Point:  p.Normal,
			Radius: s.pointRadius,
			Side:   geometry.Unclassified,
		})

		return []Event{
			PointAdded{X: p.Normal.X, Y: p.Normal.Y},
			s.modelChangedLocked(),
		}, nil
	})
}

// DragStart begins a new drag gesture, replacing any unfinished one
func (s *Session) DragStart(px, py float64) ([]Event, error) {
	return s.apply(func() ([]Event, error) {
		if s.mode != DrawLine {
			return nil, fmt.Errorf("drag start in %s mode: %w", s.mode, ErrWrongMode)
		}

		p := s.capture(px, py)
		s.drag = &DragState{Start: p, Current: p}
		return nil, nil
	})
}

// DragMove updates the live preview of the line being drawn
func (s *Session) DragMove(px, py float64) ([]Event, error) {
	return s.apply(func() ([]Event, error) {
		if s.drag == nil {
			return nil, ErrNoActiveDrag
		}

		s.drag.Current = s.capture(px, py)
		result := geometry.DragLine(s.drag.Start.Scaled, s.drag.Current.Scaled, s.transform.Viewport())

		return []Event{
			DragPreview{Equation: result.Equation, Full: result.Full, User: result.User},
		}, nil
	})
}

// DragEnd finishes the gesture and commits the ideal line if it has length
func (s *Session) DragEnd(px, py float64) ([]Event, error) {
	return s.apply(func() ([]Event, error) {
		if s.drag == nil {
			return nil, ErrNoActiveDrag
		}

		start := s.drag.Start
		end := s.capture(px, py)
		s.drag = nil

		if start.Normal == end.Normal {
			return nil, ErrDegenerateDrag
		}

		domain := geometry.NewLine(geometry.UserDefined, start.Normal, end.Normal)
		eq, err := domain.Equation()
		if err != nil {
			return nil, fmt.Errorf("commit ideal line: %w", err)
		}
		result := geometry.DragLine(start.Scaled, end.Scaled, s.transform.Viewport())

		s.ideal = &IdealLine{
			Domain:   domain,
			Equation: eq,
			User:     result.User,
			Full:     result.Full,
		}
		s.classifyLocked()

		return []Event{
			IdealLineUpdated{
				X1:     start.Scaled.X,
				Y1:     start.Scaled.Y,
				X2:     end.Scaled.X,
				Y2:     end.Scaled.Y,
				Line:   *s.ideal,
				Points: append([]LabeledPoint(nil), s.points...),
			},
			s.modelChangedLocked(),
		}, nil
	})
}

// ToggleMode flips between PlacePoints and DrawLine
func (s *Session) ToggleMode() []Event {
	events, _ := s.apply(func() ([]Event, error) {
		next := DrawLine
		if s.mode == DrawLine {
			next = PlacePoints
		}
		return s.setModeLocked(next), nil
	})
	return events
}

// SetMode switches to m; setting the active mode is a no-op
func (s *Session) SetMode(m Mode) []Event {
	events, _ := s.apply(func() ([]Event, error) {
		return s.setModeLocked(m), nil
	})
	return events
}

func (s *Session) setModeLocked(m Mode) []Event {
	if m == s.mode {
		return nil
	}

	// Leaving DrawLine detaches the drag recognizer, so an open gesture is dropped
	s.mode = m
	s.drag = nil
	return []Event{ModeChanged{Mode: m, DragEnabled: m == DrawLine}}
}

// Reset removes all points and training lines. The ideal line and mode are kept.
func (s *Session) Reset() []Event {
	events, _ := s.apply(func() ([]Event, error) {
		s.points = nil
		s.training = nil
		s.brush = nil
		return []Event{s.modelChangedLocked()}, nil
	})
	return events
}

// BrushMoved sets the training line filter from a brush selection in pixels
func (s *Session) BrushMoved(loPx, hiPx float64) ([]Event, error) {
	return s.apply(func() ([]Event, error) {
		r, err := training.BrushRange(loPx, hiPx, s.brushTrack)
		if err != nil {
			return nil, err
		}
		s.brush = &r
		return s.trainingChangedLocked(), nil
	})
}

// ClearBrush shows all training lines again
func (s *Session) ClearBrush() []Event {
	events, _ := s.apply(func() ([]Event, error) {
		s.brush = nil
		return s.trainingChangedLocked(), nil
	})
	return events
}

// GenerateTrainingLines replaces the training lines with count random ones
func (s *Session) GenerateTrainingLines(count int) ([]Event, error) {
	return s.apply(func() ([]Event, error) {
		lines, err := s.generator.Generate(count)
		if err != nil {
			return nil, err
		}
		s.training = lines
		return s.trainingChangedLocked(), nil
	})
}

// UpdateTrainingLine replaces the training lines with a single given line
func (s *Session) UpdateTrainingLine(eq geometry.Equation) []Event {
	events, _ := s.apply(func() ([]Event, error) {
		s.training = []training.Line{training.NewLine(eq)}
		return s.trainingChangedLocked(), nil
	})
	return events
}

func (s *Session) trainingChangedLocked() []Event {
	model := s.snapshotLocked()
	return []Event{
		TrainingLinesUpdated{Lines: model.TrainingLines},
		ModelChanged{Model: model},
	}
}

// classifyLocked relabels every point against the ideal line in domain space
func (s *Session) classifyLocked() {
	if s.ideal == nil {
		return
	}

	a, b := s.ideal.Domain.Start, s.ideal.Domain.End
	for i := range s.points {
		s.points[i].Side = geometry.SideOf(a, b, s.points[i].Point)
	}
}
