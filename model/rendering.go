package model

import (
	"bufio"
	"io"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	ansiClearScreen = "\033[H\033[2J"
)

// TextRenderer draws grids as text, two characters per cell
type TextRenderer struct {
	out io.Writer
}

// NewTextRenderer returns a renderer writing to out
func NewTextRenderer(out io.Writer) *TextRenderer {
	return &TextRenderer{out: out}
}

// Display renders the grid, one line per row
func (r *TextRenderer) Display(g *Grid) error {
	w := bufio.NewWriter(r.out)
	for row := range g.size {
		for col := range g.size {
			if g.cells[row*g.size+col] {
				w.WriteString(gridPosBlock)
			} else {
				w.WriteString(gridPosEmpty)
			}
		}
		w.WriteByte('\n')
	}
	return w.Flush()
}

// Clear clears the terminal screen
func (r *TextRenderer) Clear() error {
	_, err := io.WriteString(r.out, ansiClearScreen)
	return err
}
