package mino_test

import (
	"testing"

	"github.com/qnkhuat/blockterm/pkg/mino"
	"github.com/stretchr/testify/require"
)

// bottomRows builds a board whose last len(rows) rows are given as text.
// '.' is an empty cell; any other rune becomes a color named after it.
func bottomRows(t testing.TB, rows ...string) mino.Board {
	t.Helper()
	require.LessOrEqual(t, len(rows), mino.Height)

	b := mino.NewBoard()
	offset := mino.Height - len(rows)
	for i, row := range rows {
		require.Len(t, row, mino.Width, "row %d", i)
		for x, r := range row {
			if r != '.' {
				b[offset+i][x] = mino.Color(string(r))
			}
		}
	}

	return b
}

func pieceAt(t mino.PieceType, x, y int) mino.Piece {
	p := mino.SpawnPiece(t)
	p.Position = mino.Point{X: x, Y: y}
	return p
}
