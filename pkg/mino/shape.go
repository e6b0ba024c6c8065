package mino

import (
	"fmt"
	"strings"
)

// Shape is a binary occupancy grid indexed [row][column].
type Shape [][]bool

// ParseShape builds a shape from rows of text where '#' marks an occupied
// cell and any other rune an unoccupied one.
func ParseShape(rows ...string) Shape {
	s := make(Shape, len(rows))
	for y, row := range rows {
		s[y] = make([]bool, 0, len(row))
		for _, r := range row {
			s[y] = append(s[y], r == '#')
		}
	}

	return s
}

func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}

	return len(s[0])
}

func (s Shape) Height() int {
	return len(s)
}

// Validate reports whether the shape is a non-empty rectangle.
func (s Shape) Validate() error {
	if len(s) == 0 || len(s[0]) == 0 {
		return fmt.Errorf("%w: empty grid", ErrInvalidShape)
	}

	for y, row := range s {
		if len(row) != len(s[0]) {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidShape, y, len(row), len(s[0]))
		}
	}

	return nil
}

func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}

	c := make(Shape, len(s))
	for y, row := range s {
		c[y] = make([]bool, len(row))
		copy(c[y], row)
	}

	return c
}

func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}

	for y := range s {
		if len(s[y]) != len(o[y]) {
			return false
		}
		for x := range s[y] {
			if s[y][x] != o[y][x] {
				return false
			}
		}
	}

	return true
}

// Rotate returns a new grid turned 90 degrees clockwise. Row i of the result
// is column i of s read from the bottom row up, so width and height swap.
func (s Shape) Rotate() Shape {
	w, h := s.Width(), s.Height()

	r := make(Shape, w)
	for i := 0; i < w; i++ {
		r[i] = make([]bool, h)
		for j := 0; j < h; j++ {
			src := s[h-1-j]
			if i < len(src) {
				r[i][j] = src[i]
			}
		}
	}

	return r
}

// Mino lists the occupied cells of the shape.
func (s Shape) Mino() Mino {
	var m Mino
	for y, row := range s {
		for x, occupied := range row {
			if occupied {
				m = append(m, Point{x, y})
			}
		}
	}

	return m
}

func (s Shape) String() string {
	var b strings.Builder
	for y, row := range s {
		if y > 0 {
			b.WriteRune('\n')
		}
		for _, occupied := range row {
			if occupied {
				b.WriteRune('#')
			} else {
				b.WriteRune('.')
			}
		}
	}

	return b.String()
}
