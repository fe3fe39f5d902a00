// Package scenario reads YAML gesture scripts and replays them against a session.
//
// A script looks like:
//
//	name: split the origin
//	steps:
//	  - click: [200, 200]
//	  - mode: draw
//	  - drag: [[30, 370], [200, 200], [370, 30]]
//	  - train: 40
//	  - brush: [100, 300]
//
// Coordinates are pixels on the chart surface.
package scenario

import (
	"fmt"
	"os"

	"github.com/philipparndt/goperceptron/pkg/geometry"
	"github.com/philipparndt/goperceptron/pkg/session"
	"gopkg.in/yaml.v3"
)

// Scenario is a named list of gestures
type Scenario struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step holds exactly one action
type Step struct {
	Click     *[2]float64  `yaml:"click,omitempty"`
	Mode      string       `yaml:"mode,omitempty"`
	Drag      [][2]float64 `yaml:"drag,omitempty"`
	Reset     bool         `yaml:"reset,omitempty"`
	Train     *int         `yaml:"train,omitempty"`
	TrainLine *LineSpec    `yaml:"train_line,omitempty"`
	Brush     *[2]float64  `yaml:"brush,omitempty"`
}

// LineSpec is a training line given by its domain equation
type LineSpec struct {
	Slope  float64 `yaml:"slope"`
	Offset float64 `yaml:"offset"`
}

// Load reads a scenario file
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes and validates a scenario
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, ErrEmptyScenario
	}
	for i, step := range sc.Steps {
		if err := step.validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return &sc, nil
}

func (s Step) actions() int {
	n := 0
	if s.Click != nil {
		n++
	}
	if s.Mode != "" {
		n++
	}
	if s.Drag != nil {
		n++
	}
	if s.Reset {
		n++
	}
	if s.Train != nil {
		n++
	}
	if s.TrainLine != nil {
		n++
	}
	if s.Brush != nil {
		n++
	}
	return n
}

func (s Step) validate() error {
	if n := s.actions(); n != 1 {
		return fmt.Errorf("%w: expected exactly one action, got %d", ErrInvalidStep, n)
	}
	switch {
	case s.Drag != nil && len(s.Drag) < 2:
		return fmt.Errorf("%w: drag needs at least 2 points, got %d", ErrInvalidStep, len(s.Drag))
	case s.Train != nil && *s.Train < 0:
		return fmt.Errorf("%w: negative training count %d", ErrInvalidStep, *s.Train)
	case s.Mode != "" && s.Mode != "toggle":
		if _, err := session.ParseMode(s.Mode); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidStep, err)
		}
	}
	return nil
}

// Replay runs every step against s and returns all emitted events in order.
// Rejected gestures (a click in draw mode, a degenerate drag) are skipped,
// just as they would be on screen.
func Replay(s *session.Session, sc *Scenario) ([]session.Event, error) {
	var all []session.Event
	for i, step := range sc.Steps {
		events, err := apply(s, step)
		if err != nil {
			return all, fmt.Errorf("step %d: %w", i+1, err)
		}
		all = append(all, events...)
	}
	return all, nil
}

func apply(s *session.Session, step Step) ([]session.Event, error) {
	if err := step.validate(); err != nil {
		return nil, err
	}

	switch {
	case step.Click != nil:
		return ignoreRejected(s.SurfaceClicked(step.Click[0], step.Click[1]))

	case step.Mode == "toggle":
		return s.ToggleMode(), nil

	case step.Mode != "":
		m, _ := session.ParseMode(step.Mode)
		return s.SetMode(m), nil

	case step.Drag != nil:
		return drag(s, step.Drag)

	case step.Reset:
		return s.Reset(), nil

	case step.Train != nil:
		return s.GenerateTrainingLines(*step.Train)

	case step.TrainLine != nil:
		return s.UpdateTrainingLine(geometry.NewEquation(step.TrainLine.Slope, step.TrainLine.Offset)), nil

	case step.Brush != nil:
		return s.BrushMoved(step.Brush[0], step.Brush[1])
	}
	return nil, ErrInvalidStep
}

func drag(s *session.Session, points [][2]float64) ([]session.Event, error) {
	var events []session.Event
	first, last := points[0], points[len(points)-1]

	out, err := s.DragStart(first[0], first[1])
	if err != nil {
		return ignoreRejected(nil, err)
	}
	events = append(events, out...)

	for _, p := range points[1 : len(points)-1] {
		out, err := s.DragMove(p[0], p[1])
		if err != nil {
			return ignoreRejected(events, err)
		}
		events = append(events, out...)
	}

	out, err = s.DragEnd(last[0], last[1])
	events = append(events, out...)
	return ignoreRejected(events, err)
}

// ignoreRejected drops errors for gestures the session refuses in its current state
func ignoreRejected(events []session.Event, err error) ([]session.Event, error) {
	if session.IsRejected(err) {
		return events, nil
	}
	return events, err
}
