package mino

import (
	"sort"
	"strings"
)

// Mino is a polyomino stored as the list of its occupied points.
type Mino []Point

func (m Mino) Len() int      { return len(m) }
func (m Mino) Swap(i, j int) { m[i], m[j] = m[j], m[i] }
func (m Mino) Less(i, j int) bool {
	return m[i].Y < m[j].Y || (m[i].Y == m[j].Y && m[i].X < m[j].X)
}

// String lists the points in row-major order, so equal sets render equally.
func (m Mino) String() string {
	sorted := make(Mino, len(m))
	copy(sorted, m)
	sort.Sort(sorted)

	var b strings.Builder
	for i, p := range sorted {
		if i > 0 {
			b.WriteRune(',')
		}
		b.WriteString(p.String())
	}

	return b.String()
}

func (m Mino) HasPoint(p Point) bool {
	for _, mp := range m {
		if mp == p {
			return true
		}
	}

	return false
}

func (m Mino) Size() (int, int) {
	var w, h int
	for _, p := range m {
		if p.X+1 > w {
			w = p.X + 1
		}
		if p.Y+1 > h {
			h = p.Y + 1
		}
	}

	return w, h
}

// Origin translates the mino so its bounding box starts at (0,0).
func (m Mino) Origin() Mino {
	if len(m) == 0 {
		return Mino{}
	}

	minX, minY := m[0].X, m[0].Y
	for _, p := range m[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
	}

	o := make(Mino, len(m))
	for i, p := range m {
		o[i] = Point{p.X - minX, p.Y - minY}
	}

	return o
}

func (m Mino) rotate() Mino {
	r := make(Mino, len(m))
	for i, p := range m {
		r[i] = p.Rotate90()
	}

	return r
}

// Canonical returns the rotation of m whose origin-aligned string sorts
// first. Two minos share a canonical form iff one is a rotation of the other.
func (m Mino) Canonical() Mino {
	best := m.Origin()
	bestKey := best.String()

	r := m
	for i := 0; i < 3; i++ {
		r = r.rotate()

		o := r.Origin()
		if key := o.String(); key < bestKey {
			best, bestKey = o, key
		}
	}

	return best
}

// Shape converts the mino into an occupancy grid sized to its bounding box.
func (m Mino) Shape() Shape {
	o := m.Origin()
	w, h := o.Size()

	s := make(Shape, h)
	for y := range s {
		s[y] = make([]bool, w)
	}
	for _, p := range o {
		s[p.Y][p.X] = true
	}

	return s
}

// grow returns every mino formed by adding one adjacent point to m.
func (m Mino) grow() []Mino {
	var grown []Mino
	for _, p := range m {
		for _, np := range p.Neighborhood() {
			if m.HasPoint(np) {
				continue
			}

			g := make(Mino, len(m), len(m)+1)
			copy(g, m)
			grown = append(grown, append(g, np))
		}
	}

	return grown
}
