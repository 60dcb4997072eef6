package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimension is returned when a grid size is below MinGridSize
	ErrInvalidDimension = errors.New("invalid grid dimension")
	// ErrInvalidProbability is returned when an alive probability is outside [0, 1]
	ErrInvalidProbability = errors.New("invalid alive probability")
	// ErrOutOfBounds is returned when a pattern placement does not fit the grid
	ErrOutOfBounds = errors.New("pattern placement out of bounds")
	// ErrInvalidPattern is returned for empty or ragged pattern matrices
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrUnknownPattern is returned when a pattern name has no built-in definition
	ErrUnknownPattern = errors.New("unknown pattern")
	// ErrInvalidMode is returned when the seeding mode is neither random nor pattern
	ErrInvalidMode = errors.New("invalid seeding mode")
	// ErrSizeMismatch is returned when a step buffer differs in size from its source
	ErrSizeMismatch = errors.New("grid size mismatch")
	// ErrAliasedBuffer is returned when a step would write into the grid it reads
	ErrAliasedBuffer = errors.New("step destination aliases source")
)
