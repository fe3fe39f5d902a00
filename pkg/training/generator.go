package training

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/philipparndt/goperceptron/pkg/geometry"
)

// Line is a generated candidate line in domain space
type Line struct {
	ID       uuid.UUID
	Equation geometry.Equation
}

// Generator draws random candidate line equations
type Generator struct {
	rnd *rand.Rand
}

// NewGenerator creates a generator. A zero seed draws from the runtime source.
func NewGenerator(seed uint64) *Generator {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Generator{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Next draws one equation: slope in {-2.5, -2, ..., 2.5}, offset in [-20, 20]
func (g *Generator) Next() geometry.Equation {
	slope := (math.Round(10*g.rnd.Float64()) - 5) / 2
	offset := math.Round(40*g.rnd.Float64()) - 20
	return geometry.NewEquation(slope, offset)
}

// Generate draws count lines, each with a fresh ID
func (g *Generator) Generate(count int) ([]Line, error) {
	if count < 0 {
		return nil, fmt.Errorf("generate %d lines: %w", count, ErrNegativeCount)
	}

	lines := make([]Line, count)
	for i := range lines {
		lines[i] = Line{ID: uuid.New(), Equation: g.Next()}
	}
	return lines, nil
}

// NewLine wraps a fixed equation as a candidate line
func NewLine(eq geometry.Equation) Line {
	return Line{ID: uuid.New(), Equation: eq}
}
