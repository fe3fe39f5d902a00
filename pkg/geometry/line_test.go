package geometry

import (
	"errors"
	"math"
	"testing"
)

func TestEquationThrough(t *testing.T) {
	eq, err := EquationThrough(NewPoint(-20, 0), NewPoint(20, 0))
	if err != nil {
		t.Fatalf("EquationThrough error: %v", err)
	}
	if eq.Vertical || eq.Slope != 0 || eq.Offset != 0 {
		t.Errorf("expected y = 0, got %v", eq)
	}

	eq, err = EquationThrough(NewPoint(0, 1), NewPoint(2, 5))
	if err != nil {
		t.Fatalf("EquationThrough error: %v", err)
	}
	if math.Abs(eq.Slope-2) > 1e-10 || math.Abs(eq.Offset-1) > 1e-10 {
		t.Errorf("expected y = 2x + 1, got %v", eq)
	}
}

func TestEquationThroughVertical(t *testing.T) {
	eq, err := EquationThrough(NewPoint(3, -1), NewPoint(3, 8))
	if err != nil {
		t.Fatalf("EquationThrough error: %v", err)
	}
	if !eq.Vertical || eq.X != 3 {
		t.Errorf("expected x = 3, got %v", eq)
	}
	if !math.IsInf(eq.SlopeValue(), 1) {
		t.Errorf("expected +Inf slope, got %v", eq.SlopeValue())
	}
	if _, err := eq.YAt(0); !errors.Is(err, ErrVerticalLine) {
		t.Errorf("YAt on vertical line: expected ErrVerticalLine, got %v", err)
	}
}

func TestEquationThroughDegenerate(t *testing.T) {
	_, err := EquationThrough(NewPoint(1, 1), NewPoint(1, 1))
	if !errors.Is(err, ErrDegenerateLine) {
		t.Errorf("expected ErrDegenerateLine, got %v", err)
	}
}

func TestEquationSpan(t *testing.T) {
	line := NewEquation(0.5, 2).Span(-10, 10, 0, 0)

	if line.Kind != FullExtension {
		t.Errorf("expected full extension, got %v", line.Kind)
	}
	if line.Start != NewPoint(-10, -3) || line.End != NewPoint(10, 7) {
		t.Errorf("unexpected span: %v -> %v", line.Start, line.End)
	}

	vertical := VerticalAt(4).Span(-10, 10, 0, 400)
	if vertical.Start != NewPoint(4, 0) || vertical.End != NewPoint(4, 400) {
		t.Errorf("unexpected vertical span: %v -> %v", vertical.Start, vertical.End)
	}
}

func TestLineReversed(t *testing.T) {
	line := NewLine(UserDefined, NewPoint(1, 2), NewPoint(3, 4))
	reversed := line.Reversed()

	if reversed.Start != line.End || reversed.End != line.Start || reversed.Kind != line.Kind {
		t.Errorf("Reversed failed: got %v", reversed)
	}
}
