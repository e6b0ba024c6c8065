package gui

import (
	"github.com/qnkhuat/blockterm/pkg/game"
	"github.com/qnkhuat/blockterm/pkg/mino"
)

// testState has a red cell in the bottom left corner and an O piece at the
// top, whose ghost rests on the floor.
func testState() game.State {
	b := mino.NewBoard()
	b[mino.Height-1][0] = mino.ColorRed

	p := mino.SpawnPiece(mino.PieceO)

	return game.State{
		Board:   b,
		Current: &p,
		Next:    mino.PieceT,
		Score:   3,
	}
}
