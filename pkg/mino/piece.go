package mino

import "fmt"

// Piece is the falling unit: a shape placed on the board at Position, the
// board coordinate of the shape's top-left cell.
type Piece struct {
	Type     PieceType
	Shape    Shape
	Color    Color
	Position Point
}

// SpawnPiece places a copy of the catalog entry for t at the top center of
// the board.
func SpawnPiece(t PieceType) Piece {
	e := t.Entry()

	return Piece{
		Type:     t,
		Shape:    e.Shape,
		Color:    e.Color,
		Position: spawnPoint(e.Shape),
	}
}

// NewPiece spawns the next piece drawn from g.
func NewPiece(g Generator) Piece {
	return SpawnPiece(g.Next())
}

func spawnPoint(s Shape) Point {
	return Point{X: Width/2 - s.Width()/2, Y: 0}
}

// Rotate returns a copy of p with its shape turned 90 degrees clockwise.
// Color and position are kept; the result is not checked against any board.
func Rotate(p Piece) Piece {
	p.Shape = p.Shape.Rotate()
	return p
}

func (p Piece) Clone() Piece {
	p.Shape = p.Shape.Clone()
	return p
}

// Moved returns a copy of p translated by dx columns and dy rows.
func (p Piece) Moved(dx, dy int) Piece {
	p.Shape = p.Shape.Clone()
	p.Position = p.Position.Add(Point{dx, dy})
	return p
}

// Cells returns the board coordinates of the occupied shape cells.
func (p Piece) Cells() []Point {
	m := p.Shape.Mino()

	cells := make([]Point, len(m))
	for i, c := range m {
		cells[i] = p.Position.Add(c)
	}

	return cells
}

func (p Piece) Validate() error {
	if err := p.Shape.Validate(); err != nil {
		return err
	}

	if p.Color == Empty {
		return fmt.Errorf("%w: %s piece has no color", ErrInvalidPiece, p.Type)
	}

	return nil
}

func (p Piece) String() string {
	return fmt.Sprintf("%s@%s", p.Type, p.Position)
}
