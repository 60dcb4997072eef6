package utils

import (
	"time"

	"golang.org/x/exp/rand"
)

// NewRand returns a deterministic random source for the given seed.
// A zero seed is replaced with the current time so unseeded runs differ
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}
