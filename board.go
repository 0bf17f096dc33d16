package tetris

import (
	"errors"
	"fmt"
)

var ErrOutOfBounds = errors.New("cell out of bounds")

// Board is a fixed-size grid of occupied cells. Row 0 is the bottom row.
type Board struct {
	width, height int
	cells         [][]bool
}

func NewBoard(width, height int) *Board {
	cells := make([][]bool, height, height)
	for y := 0; y < height; y++ {
		cells[y] = make([]bool, width, width)
	}
	return &Board{width: width, height: height, cells: cells}
}

func (b *Board) Width() int {
	return b.width
}

func (b *Board) Height() int {
	return b.height
}

func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Occupied reports whether the cell is filled. The caller must check InBounds
// first.
func (b *Board) Occupied(x, y int) bool {
	return b.cells[y][x]
}

// Overlaps reports whether any in-bounds cell is occupied. Cells outside the
// board never overlap.
func (b *Board) Overlaps(cells ...Point) bool {
	for _, c := range cells {
		if b.InBounds(c.X, c.Y) && b.cells[c.Y][c.X] {
			return true
		}
	}
	return false
}

// Fits reports whether every cell is inside the board and empty.
func (b *Board) Fits(cells ...Point) bool {
	for _, c := range cells {
		if !b.InBounds(c.X, c.Y) || b.cells[c.Y][c.X] {
			return false
		}
	}
	return true
}

// Commit marks the cells occupied. Nothing is written if any cell lies outside
// the board.
func (b *Board) Commit(cells ...Point) error {
	for _, c := range cells {
		if !b.InBounds(c.X, c.Y) {
			return fmt.Errorf("commit (%d,%d) on %dx%d board: %w", c.X, c.Y, b.width, b.height, ErrOutOfBounds)
		}
	}
	for _, c := range cells {
		b.cells[c.Y][c.X] = true
	}
	return nil
}

// ClearFullRows removes every full row, shifting the rows above it down and
// adding an empty row at the top. It returns the number of rows removed.
func (b *Board) ClearFullRows() int {
	cleared := 0
	y := 0
	for y < len(b.cells) {
		if !b.isRowFull(y) {
			y++
			continue
		}
		// the row above slides into y, so y is checked again
		b.cells = append(b.cells[:y], b.cells[y+1:]...)
		b.cells = append(b.cells, make([]bool, b.width, b.width))
		cleared++
	}
	return cleared
}

func (b *Board) isRowFull(y int) bool {
	for _, occupied := range b.cells[y] {
		if !occupied {
			return false
		}
	}
	return true
}

// Count returns the number of occupied cells.
func (b *Board) Count() int {
	count := 0
	for _, row := range b.cells {
		for _, occupied := range row {
			if occupied {
				count++
			}
		}
	}
	return count
}
