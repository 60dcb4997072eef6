package model

import (
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultHistorySize = 5

// World holds the current generation for a driver loop. Advance must be
// called from a single goroutine; the accessors are safe from any goroutine
type World struct {
	current    atomic.Pointer[Grid]
	generation atomic.Int64
	population atomic.Int64
	runID      atomic.Pointer[uuid.UUID]

	// retired is the generation before current. Readers holding it from an
	// earlier Current call may still be using it, so it is only recycled
	// on the swap after next
	retired *Grid

	pool     *GridPool
	parallel bool
	workers  int

	currentHash string
	history     []string // Hashes of recent generations for cycle detection
	historySize int
}

// Option configures a World
type Option func(*World)

// WithPool recycles step buffers through the given pool
func WithPool(pool *GridPool) Option {
	return func(w *World) {
		w.pool = pool
	}
}

// WithWorkers steps rows in parallel; a non-positive count uses one worker per CPU
func WithWorkers(workers int) Option {
	return func(w *World) {
		w.parallel = true
		w.workers = workers
	}
}

// WithHistory sets how many past generations are kept for stagnation checks
func WithHistory(size int) Option {
	return func(w *World) {
		if size > 0 {
			w.historySize = size
		}
	}
}

// NewWorld wraps grid as generation zero of a new run
func NewWorld(grid *Grid, opts ...Option) *World {
	w := &World{historySize: defaultHistorySize}
	for _, opt := range opts {
		opt(w)
	}
	w.publishStart(grid)
	return w
}

func (w *World) publishStart(grid *Grid) {
	id := uuid.New()
	w.runID.Store(&id)
	w.history = w.history[:0]
	w.currentHash = grid.Hash()
	w.current.Store(grid)
	w.generation.Store(0)
	w.population.Store(int64(grid.CountLivingCells()))
}

// Current returns the published generation. It must be treated as read-only
// and stays valid until the second Advance after this call
func (w *World) Current() *Grid {
	return w.current.Load()
}

// Snapshot returns a private copy of the published generation
func (w *World) Snapshot() *Grid {
	return w.current.Load().Clone()
}

// Generation returns the number of steps since the run started
func (w *World) Generation() int {
	return int(w.generation.Load())
}

// Population returns the number of living cells in the published generation
func (w *World) Population() int {
	return int(w.population.Load())
}

// RunID identifies the current run; it changes on Reset
func (w *World) RunID() uuid.UUID {
	return *w.runID.Load()
}

// Advance computes the next generation and publishes it atomically
func (w *World) Advance() error {
	cur := w.current.Load()

	var (
		next *Grid
		err  error
	)
	if w.pool != nil {
		if next, err = w.pool.Get(cur.size); err != nil {
			return errors.Wrapf(err, "[Advance] generation %d", w.Generation())
		}
	} else {
		next = &Grid{size: cur.size, cells: make([]bool, len(cur.cells))}
	}

	if w.parallel {
		err = StepParallelInto(next, cur, w.workers)
	} else {
		err = StepInto(next, cur)
	}
	if err != nil {
		GridToPool(next, w.pool)
		return errors.Wrapf(err, "[Advance] generation %d", w.Generation())
	}

	w.recordHistory()
	w.currentHash = next.Hash()

	w.current.Store(next)
	w.population.Store(int64(next.CountLivingCells()))
	w.generation.Add(1)

	GridToPool(w.retired, w.pool)
	w.retired = cur
	return nil
}

// recordHistory pushes the outgoing generation's hash, keeping historySize entries
func (w *World) recordHistory() {
	w.history = append(w.history, w.currentHash)
	if len(w.history) > w.historySize {
		w.history = w.history[1:]
	}
}

// IsStagnant reports whether the current generation repeats one of the last
// three, which covers still lifes and period-2 and period-3 oscillators
func (w *World) IsStagnant() bool {
	for i := len(w.history) - 1; i >= 0 && i >= len(w.history)-3; i-- {
		if w.history[i] == w.currentHash {
			return true
		}
	}
	return false
}

// Reset starts a new run from grid, discarding history
func (w *World) Reset(grid *Grid) {
	GridToPool(w.retired, w.pool)
	w.retired = w.current.Load()
	w.publishStart(grid)
}
