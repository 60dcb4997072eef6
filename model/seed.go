package model

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// RandomSeed creates a grid where each cell is independently alive with
// probability aliveProbability
func RandomSeed(size int, aliveProbability float64, rng *rand.Rand) (*Grid, error) {
	if math.IsNaN(aliveProbability) || aliveProbability < 0 || aliveProbability > 1 {
		return nil, errors.Wrapf(ErrInvalidProbability, "[RandomSeed] probability %v is outside [0,1]", aliveProbability)
	}

	g, err := NewGrid(size)
	if err != nil {
		return nil, errors.Wrap(err, "[RandomSeed] failed to create grid")
	}

	g.Randomize(aliveProbability, rng)
	return g, nil
}

// Randomize overwrites every cell, making it alive with the given probability
func (g *Grid) Randomize(aliveProbability float64, rng *rand.Rand) {
	for i := range g.cells {
		g.cells[i] = rng.Float64() < aliveProbability
	}
}
