package mino

import "fmt"

// Generate enumerates the one-sided polyominoes of the given rank, each in
// canonical form.
func Generate(rank int) ([]Mino, error) {
	switch {
	case rank < 0:
		return nil, fmt.Errorf("generate rank %d: %w", rank, ErrInvalidRank)
	case rank == 0:
		return []Mino{}, nil
	}

	minos := []Mino{{{0, 0}}}
	for r := 1; r < rank; r++ {
		var (
			next  []Mino
			found = make(map[string]bool)
		)
		for _, m := range minos {
			for _, g := range m.grow() {
				c := g.Canonical()
				if key := c.String(); !found[key] {
					found[key] = true
					next = append(next, c)
				}
			}
		}

		minos = next
	}

	return minos, nil
}
