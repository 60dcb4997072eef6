package model

import (
	"strings"

	"github.com/pkg/errors"
)

// Pattern is a small rectangular stamp of cell states
type Pattern struct {
	Name  string
	Cells [][]bool
}

// Height returns the number of pattern rows
func (p Pattern) Height() int {
	return len(p.Cells)
}

// Width returns the number of pattern columns
func (p Pattern) Width() int {
	if len(p.Cells) == 0 {
		return 0
	}
	return len(p.Cells[0])
}

// ParsePattern builds a pattern from a matrix of 0 (dead) and non-zero (alive) values
func ParsePattern(name string, rows [][]int) (Pattern, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Pattern{}, errors.Wrapf(ErrInvalidPattern, "[ParsePattern] %q is empty", name)
	}

	width := len(rows[0])
	cells := make([][]bool, len(rows))
	for r, row := range rows {
		if len(row) != width {
			return Pattern{}, errors.Wrapf(ErrInvalidPattern,
				"[ParsePattern] %q row %d has %d columns, want %d", name, r, len(row), width)
		}
		cells[r] = make([]bool, width)
		for c, v := range row {
			cells[r][c] = v != 0
		}
	}

	return Pattern{Name: name, Cells: cells}, nil
}

func mustParsePattern(name string, rows [][]int) Pattern {
	p, err := ParsePattern(name, rows)
	if err != nil {
		panic(err)
	}
	return p
}

var (
	// Glider translates by (+1, +1) every four generations
	Glider = mustParsePattern("glider", [][]int{
		{0, 0, 1},
		{1, 0, 1},
		{0, 1, 1},
	})

	// Block is the 2×2 still life
	Block = mustParsePattern("block", [][]int{
		{1, 1},
		{1, 1},
	})

	// Blinker is the period-2 horizontal line of three
	Blinker = mustParsePattern("blinker", [][]int{
		{1, 1, 1},
	})
)

// PatternByName returns a built-in pattern, matching names case-insensitively
func PatternByName(name string) (Pattern, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case Glider.Name:
		return Glider, nil
	case Block.Name:
		return Block, nil
	case Blinker.Name:
		return Blinker, nil
	}
	return Pattern{}, errors.Wrapf(ErrUnknownPattern, "[PatternByName] %q", name)
}

// SeedPattern overwrites the region starting at (topRow, topCol) with the pattern.
// Without wrap, a placement that leaves the grid fails with ErrOutOfBounds and
// the grid is untouched; with wrap, coordinates are taken modulo the grid size
func SeedPattern(g *Grid, p Pattern, topRow, topCol int, wrap bool) error {
	h, w := p.Height(), p.Width()
	if h == 0 || w == 0 {
		return errors.Wrapf(ErrInvalidPattern, "[SeedPattern] %q is empty", p.Name)
	}
	for r, row := range p.Cells {
		if len(row) != w {
			return errors.Wrapf(ErrInvalidPattern, "[SeedPattern] %q row %d is ragged", p.Name, r)
		}
	}
	if h > g.size || w > g.size {
		return errors.Wrapf(ErrOutOfBounds,
			"[SeedPattern] %q is %dx%d, larger than grid %d", p.Name, h, w, g.size)
	}
	// h and w are at most size here, so the subtractions cannot overflow
	if !wrap && (topRow < 0 || topCol < 0 || topRow > g.size-h || topCol > g.size-w) {
		return errors.Wrapf(ErrOutOfBounds,
			"[SeedPattern] %q at (%d,%d) exceeds grid %d", p.Name, topRow, topCol, g.size)
	}
	topRow, topCol = g.wrap(topRow), g.wrap(topCol)

	for r, row := range p.Cells {
		for c, alive := range row {
			g.Set(topRow+r, topCol+c, alive)
		}
	}
	return nil
}
