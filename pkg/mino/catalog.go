package mino

import (
	"fmt"
	"sort"
)

// PieceType enumerates the catalog. The zero value is PieceI.
type PieceType int

const (
	PieceI PieceType = iota
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceJ
	PieceL

	pieceTypeCount
)

// Entry is a catalog piece definition.
type Entry struct {
	Name  string
	Shape Shape
	Color Color
}

var catalog = [pieceTypeCount]Entry{
	PieceI: {"I", ParseShape("####"), ColorCyan},
	PieceO: {"O", ParseShape("##", "##"), ColorYellow},
	PieceT: {"T", ParseShape(".#.", "###"), ColorPurple},
	PieceS: {"S", ParseShape(".##", "##."), ColorGreen},
	PieceZ: {"Z", ParseShape("##.", ".##"), ColorRed},
	PieceJ: {"J", ParseShape("#..", "###"), ColorBlue},
	PieceL: {"L", ParseShape("..#", "###"), ColorOrange},
}

// catalogKeys maps the canonical form of every catalog shape to its type.
var catalogKeys = func() map[string]PieceType {
	keys := make(map[string]PieceType, len(catalog))
	for t := range catalog {
		keys[catalog[t].Shape.Mino().Canonical().String()] = PieceType(t)
	}

	return keys
}()

// AllPieceTypes returns every catalog piece type in declaration order.
func AllPieceTypes() []PieceType {
	types := make([]PieceType, pieceTypeCount)
	for i := range types {
		types[i] = PieceType(i)
	}

	return types
}

func (t PieceType) Valid() bool {
	return t >= 0 && t < pieceTypeCount
}

func (t PieceType) String() string {
	switch t {
	case PieceI:
		return "I"
	case PieceO:
		return "O"
	case PieceT:
		return "T"
	case PieceS:
		return "S"
	case PieceZ:
		return "Z"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	default:
		return fmt.Sprintf("PieceType(%d)", int(t))
	}
}

// Entry returns the catalog definition of t. The shape is a private copy.
func (t PieceType) Entry() Entry {
	if !t.Valid() {
		return Entry{}
	}

	e := catalog[t]
	e.Shape = e.Shape.Clone()
	return e
}

// Identify reports which catalog piece the shape is a rotation of.
func Identify(s Shape) (PieceType, bool) {
	if s.Validate() != nil {
		return 0, false
	}

	t, ok := catalogKeys[s.Mino().Canonical().String()]
	return t, ok
}

// VerifyCatalog checks that the catalog holds exactly the seven one-sided
// tetrominoes, each once.
func VerifyCatalog() error {
	tetrominoes, err := Generate(4)
	if err != nil {
		return fmt.Errorf("verify catalog: %w", err)
	}

	if len(catalogKeys) != len(catalog) {
		return fmt.Errorf("verify catalog: %d entries share %d distinct shapes", len(catalog), len(catalogKeys))
	}

	var missing []string
	for _, m := range tetrominoes {
		if _, ok := catalogKeys[m.String()]; !ok {
			missing = append(missing, m.String())
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("verify catalog: missing tetrominoes %v", missing)
	}

	if len(tetrominoes) != len(catalog) {
		return fmt.Errorf("verify catalog: %d entries, want %d", len(catalog), len(tetrominoes))
	}

	return nil
}
