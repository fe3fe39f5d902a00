package geometry

import (
	"math"
	"testing"
)

func TestPointSub(t *testing.T) {
	p1 := NewPoint(5, 7)
	p2 := NewPoint(1, 2)
	result := p1.Sub(p2)

	expected := NewPoint(4, 5)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestPointCross(t *testing.T) {
	result := NewPoint(1, 0).Cross(NewPoint(0, 1))

	if result != 1 {
		t.Errorf("Cross failed: expected 1, got %v", result)
	}
}

func TestPointDistance(t *testing.T) {
	distance := NewPoint(0, 0).Distance(NewPoint(3, 4))

	expected := 5.0
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("Distance failed: expected %v, got %v", expected, distance)
	}
}

func TestPointRound(t *testing.T) {
	result := NewPoint(-10.4, 9.6).Round()

	expected := NewPoint(-10, 10)
	if result != expected {
		t.Errorf("Round failed: expected %v, got %v", expected, result)
	}
}
