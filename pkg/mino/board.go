package mino

import (
	"fmt"
	"strings"
)

const (
	Width  = 10
	Height = 20
)

// Board holds the settled cells, indexed [row][column] with row 0 at the top.
type Board [][]Color

// NewBoard returns an empty Width x Height board. Rows never share storage.
func NewBoard() Board {
	b := make(Board, Height)
	for y := range b {
		b[y] = emptyRow()
	}

	return b
}

func emptyRow() []Color {
	return make([]Color, Width)
}

func inBounds(p Point) bool {
	return p.X >= 0 && p.X < Width && p.Y >= 0 && p.Y < Height
}

// Validate reports whether the board is exactly Width x Height.
func (b Board) Validate() error {
	if len(b) != Height {
		return fmt.Errorf("%w: %d rows, want %d", ErrInvalidBoard, len(b), Height)
	}

	for y, row := range b {
		if len(row) != Width {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidBoard, y, len(row), Width)
		}
	}

	return nil
}

func (b Board) Clone() Board {
	if b == nil {
		return nil
	}

	c := make(Board, len(b))
	for y, row := range b {
		c[y] = make([]Color, len(row))
		copy(c[y], row)
	}

	return c
}

// Cell returns the color at x,y, or Empty outside the board.
func (b Board) Cell(x, y int) Color {
	if y < 0 || y >= len(b) || x < 0 || x >= len(b[y]) {
		return Empty
	}

	return b[y][x]
}

// RowFilled reports whether every cell of row y is occupied.
func (b Board) RowFilled(y int) bool {
	if y < 0 || y >= len(b) || len(b[y]) == 0 {
		return false
	}

	for _, c := range b[y] {
		if c == Empty {
			return false
		}
	}

	return true
}

func (b Board) Equal(o Board) bool {
	if len(b) != len(o) {
		return false
	}

	for y := range b {
		if len(b[y]) != len(o[y]) {
			return false
		}
		for x := range b[y] {
			if b[y][x] != o[y][x] {
				return false
			}
		}
	}

	return true
}

// String renders the board top row first, '#' for occupied cells.
func (b Board) String() string {
	var s strings.Builder
	for y, row := range b {
		if y > 0 {
			s.WriteRune('\n')
		}
		for _, c := range row {
			s.WriteRune(c.Rune())
		}
	}

	return s.String()
}
