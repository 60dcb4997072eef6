package model

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"github.com/sheikhrachel/go-life/utils"
)

// NewGame builds the starting grid selected by the config
func NewGame(config utils.Config, rng *rand.Rand) (*Grid, error) {
	switch config.Mode {
	case utils.ModeRandom:
		g, err := RandomSeed(config.Size, config.AliveProbability, rng)
		if err != nil {
			return nil, errors.Wrap(err, "[NewGame] random seeding failed")
		}
		return g, nil

	case utils.ModePattern:
		pattern, err := PatternByName(config.Pattern)
		if err != nil {
			return nil, errors.Wrap(err, "[NewGame]")
		}
		g, err := NewGrid(config.Size)
		if err != nil {
			return nil, errors.Wrap(err, "[NewGame]")
		}
		if err = SeedPattern(g, pattern, config.PatternRow, config.PatternCol, config.PatternWrap); err != nil {
			return nil, errors.Wrap(err, "[NewGame] pattern seeding failed")
		}
		return g, nil
	}

	return nil, errors.Wrapf(ErrInvalidMode, "[NewGame] %q", config.Mode)
}
