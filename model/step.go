package model

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

// Step returns the next generation of g as a new grid
func Step(g *Grid) *Grid {
	next := &Grid{size: g.size, cells: make([]bool, len(g.cells))}
	stepRows(next, g, 0, g.size)
	return next
}

// StepInto writes the next generation of src into dst. Every cell of dst is
// overwritten, so dst may be a recycled buffer
func StepInto(dst, src *Grid) error {
	if err := checkBuffers(dst, src); err != nil {
		return errors.Wrap(err, "[StepInto]")
	}
	stepRows(dst, src, 0, src.size)
	return nil
}

// StepParallel calculates the next generation by splitting rows across workers.
// A non-positive worker count uses one worker per CPU
func StepParallel(g *Grid, workers int) (*Grid, error) {
	next := &Grid{size: g.size, cells: make([]bool, len(g.cells))}
	if err := stepParallel(next, g, workers); err != nil {
		return nil, errors.Wrap(err, "[StepParallel]")
	}
	return next, nil
}

// StepParallelInto is the buffer-reusing form of StepParallel
func StepParallelInto(dst, src *Grid, workers int) error {
	if err := checkBuffers(dst, src); err != nil {
		return errors.Wrap(err, "[StepParallelInto]")
	}
	if err := stepParallel(dst, src, workers); err != nil {
		return errors.Wrap(err, "[StepParallelInto]")
	}
	return nil
}

// stepParallel fans row bands of src out to workers and waits for all of them
func stepParallel(dst, src *Grid, workers int) error {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = min(workers, src.size)

	var (
		eg            errgroup.Group
		rowsPerWorker = (src.size + workers - 1) / workers // Ceiling division
	)

	for i := range workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, src.size)
		)
		if startRow >= src.size {
			break
		}

		// Each worker owns a disjoint band of dst and only reads src
		eg.Go(func() error {
			stepRows(dst, src, startRow, endRow)
			return nil
		})
	}

	// Wait is the barrier before dst is handed back
	return eg.Wait()
}

func checkBuffers(dst, src *Grid) error {
	if dst == src {
		return ErrAliasedBuffer
	}
	if dst.size != src.size || len(dst.cells) != len(src.cells) {
		return errors.Wrapf(ErrSizeMismatch, "destination %d, source %d", dst.size, src.size)
	}
	return nil
}

// stepRows applies the rules to rows [startRow, endRow) of src, writing into dst
func stepRows(dst, src *Grid, startRow, endRow int) {
	n := src.size
	for row := startRow; row < endRow; row++ {
		for col := 0; col < n; col++ {
			idx := row*n + col
			dst.cells[idx] = rules.ApplyConwayRules(src.CountNeighbors(row, col), src.cells[idx])
		}
	}
}
