package event

import "github.com/qnkhuat/blockterm/pkg/mino"

type PieceLockedEvent struct {
	Piece mino.Piece
}

type LinesClearedEvent struct {
	Lines int
	Score int
}

type GameOverEvent struct {
	Score int
}

// DrawEvent asks a renderer to redraw the game.
type DrawEvent struct{}
