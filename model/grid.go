package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
)

// MinGridSize is the smallest usable grid; below it a cell's wrapped
// neighbors would include itself or repeat
const MinGridSize = 3

// Grid is a square board of N×N cells stored row-major with toroidal adjacency
type Grid struct {
	size  int
	cells []bool
}

// NewGrid creates an all-dead grid of the given size
func NewGrid(size int) (*Grid, error) {
	if size < MinGridSize {
		return nil, errors.Wrapf(ErrInvalidDimension, "[NewGrid] size %d is below minimum %d", size, MinGridSize)
	}
	return &Grid{
		size:  size,
		cells: make([]bool, size*size),
	}, nil
}

// MustNewGrid is like NewGrid but panics on an invalid size
func MustNewGrid(size int) *Grid {
	g, err := NewGrid(size)
	if err != nil {
		panic(err)
	}
	return g
}

// Size returns the grid dimension N
func (g *Grid) Size() int {
	return g.size
}

// reset resizes the grid for reuse as a step buffer, keeping the backing
// slice when it is large enough. Only the pool calls it, always with the
// size of a grid that already exists
func (g *Grid) reset(size int) {
	g.size = size
	n := size * size
	if cap(g.cells) < n {
		g.cells = make([]bool, n)
		return
	}
	g.cells = g.cells[:n]
	g.Clear()
}

// Clear kills every cell
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = false
	}
}

// wrap maps any integer onto [0, size)
func (g *Grid) wrap(v int) int {
	v %= g.size
	if v < 0 {
		v += g.size
	}
	return v
}

func (g *Grid) index(row, col int) int {
	return g.wrap(row)*g.size + g.wrap(col)
}

// Set sets a cell to alive (true) or dead (false), wrapping coordinates
func (g *Grid) Set(row, col int, alive bool) {
	g.cells[g.index(row, col)] = alive
}

// Get returns the state of a cell, wrapping coordinates
func (g *Grid) Get(row, col int) bool {
	return g.cells[g.index(row, col)]
}

// CountNeighbors counts living cells among the 8 toroidal neighbors of (row, col)
func (g *Grid) CountNeighbors(row, col int) int {
	var (
		count = 0
		up    = g.wrap(row-1) * g.size
		mid   = g.wrap(row) * g.size
		down  = g.wrap(row+1) * g.size
		left  = g.wrap(col - 1)
		c     = g.wrap(col)
		right = g.wrap(col + 1)
	)

	for _, idx := range [8]int{
		up + left, up + c, up + right,
		mid + left, mid + right,
		down + left, down + c, down + right,
	} {
		if g.cells[idx] {
			count++
		}
	}

	return count
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return
}

// LiveCells returns the coordinates of every living cell in row-major order
func (g *Grid) LiveCells() [][2]int {
	var live [][2]int
	for i, alive := range g.cells {
		if alive {
			live = append(live, [2]int{i / g.size, i % g.size})
		}
	}
	return live
}

// Cells returns a copy of the row-major cell slice
func (g *Grid) Cells() []bool {
	out := make([]bool, len(g.cells))
	copy(out, g.cells)
	return out
}

// Rows returns a copy of the grid as a 2-D slice indexed [row][col]
func (g *Grid) Rows() [][]bool {
	rows := make([][]bool, g.size)
	for r := range g.size {
		rows[r] = make([]bool, g.size)
		copy(rows[r], g.cells[r*g.size:(r+1)*g.size])
	}
	return rows
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	return &Grid{size: g.size, cells: g.Cells()}
}

// Equal reports whether both grids have the same size and cell states
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.size != other.size {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// hashChunk is how many cells are fed to the hasher per write
const hashChunk = 256

// Hash returns an MD5 digest of the current grid state
func (g *Grid) Hash() string {
	var (
		h     = md5.New()
		chunk [hashChunk]byte
		n     = 0
	)
	for _, alive := range g.cells {
		chunk[n] = 0
		if alive {
			chunk[n] = 1
		}
		if n++; n == hashChunk {
			h.Write(chunk[:])
			n = 0
		}
	}
	h.Write(chunk[:n])
	return fmt.Sprintf("%x", h.Sum(nil))
}
