package geometry

import (
	"math"
	"testing"
)

var testViewport = Viewport{Width: 400, Height: 400}

func TestDragLineVertical(t *testing.T) {
	result := DragLine(NewPoint(100, 50), NewPoint(100, 300), testViewport)

	if !result.IsVertical() {
		t.Fatalf("expected vertical line, got %v", result.Equation)
	}
	if !math.IsInf(result.Slope(), 1) {
		t.Errorf("expected +Inf slope, got %v", result.Slope())
	}
	if result.Full.Start != NewPoint(100, 0) || result.Full.End != NewPoint(100, 400) {
		t.Errorf("unexpected full segment: %v -> %v", result.Full.Start, result.Full.End)
	}
	if result.User.Start != NewPoint(100, 50) || result.User.End != NewPoint(100, 300) {
		t.Errorf("unexpected user segment: %v -> %v", result.User.Start, result.User.End)
	}
}

func TestDragLineHorizontal(t *testing.T) {
	result := DragLine(NewPoint(50, 200), NewPoint(350, 200), testViewport)

	if result.Equation.Slope != 0 || result.Equation.Offset != 200 {
		t.Errorf("expected y = 200, got %v", result.Equation)
	}
	if result.Full.Start != NewPoint(0, 200) || result.Full.End != NewPoint(400, 200) {
		t.Errorf("unexpected full segment: %v -> %v", result.Full.Start, result.Full.End)
	}
}

func TestDragLineDiagonal(t *testing.T) {
	result := DragLine(NewPoint(100, 100), NewPoint(200, 150), testViewport)

	if math.Abs(result.Equation.Slope-0.5) > 1e-10 {
		t.Errorf("expected slope 0.5, got %v", result.Equation.Slope)
	}
	if math.Abs(result.Equation.Offset-50) > 1e-10 {
		t.Errorf("expected offset 50, got %v", result.Equation.Offset)
	}

	full := result.Full
	if math.Abs(full.Start.X) > 1e-10 || math.Abs(full.Start.Y-50) > 1e-10 {
		t.Errorf("unexpected full start: %v", full.Start)
	}
	if math.Abs(full.End.X-400) > 1e-10 || math.Abs(full.End.Y-250) > 1e-10 {
		t.Errorf("unexpected full end: %v", full.End)
	}
	if full.Kind != FullExtension || result.User.Kind != UserDefined {
		t.Errorf("unexpected kinds: full=%v user=%v", full.Kind, result.User.Kind)
	}
}

func TestDragLineZeroLength(t *testing.T) {
	// A drag that has not moved yet previews as a vertical line through the pointer
	result := DragLine(NewPoint(120, 80), NewPoint(120, 80), testViewport)

	if !result.IsVertical() {
		t.Errorf("expected vertical preview, got %v", result.Equation)
	}
	if result.User.Length() != 0 {
		t.Errorf("expected zero-length user segment, got %v", result.User.Length())
	}
}
