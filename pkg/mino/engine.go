package mino

import "fmt"

// IsValidMove reports whether every occupied cell of p lies on the board
// over an empty cell. Unoccupied shape cells are never checked, so a shape's
// padding may hang outside the board.
func IsValidMove(b Board, p Piece) bool {
	if b.Validate() != nil || p.Shape.Validate() != nil {
		return false
	}

	for _, c := range p.Cells() {
		if !inBounds(c) || b[c.Y][c.X] != Empty {
			return false
		}
	}

	return true
}

// Merge returns a copy of b with the occupied cells of p set to p's color.
// Cells falling outside the board are skipped, and a piece without a color
// leaves the board unchanged. Only a malformed board or shape is an error.
func Merge(b Board, p Piece) (Board, error) {
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("merge %s: %w", p, err)
	}
	if err := p.Shape.Validate(); err != nil {
		return nil, fmt.Errorf("merge %s: %w", p, err)
	}

	merged := b.Clone()
	if p.Color == Empty {
		return merged, nil
	}

	for _, c := range p.Cells() {
		if !inBounds(c) {
			continue
		}

		merged[c.Y][c.X] = p.Color
	}

	return merged, nil
}

// ClearLines removes every filled row, lets the rows above fall into the
// gap and refills the top with empty rows. It returns the new board and the
// number of rows removed.
func ClearLines(b Board) (Board, int, error) {
	if err := b.Validate(); err != nil {
		return nil, 0, fmt.Errorf("clear lines: %w", err)
	}

	kept := make(Board, 0, Height)
	for y, row := range b {
		if b.RowFilled(y) {
			continue
		}

		r := make([]Color, Width)
		copy(r, row)
		kept = append(kept, r)
	}

	cleared := Height - len(kept)

	cleaned := make(Board, 0, Height)
	for i := 0; i < cleared; i++ {
		cleaned = append(cleaned, emptyRow())
	}

	return append(cleaned, kept...), cleared, nil
}
