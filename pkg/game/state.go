package game

import "github.com/qnkhuat/blockterm/pkg/mino"

// State is everything a renderer needs to draw a game.
type State struct {
	Board    mino.Board
	Current  *mino.Piece
	Next     mino.PieceType
	Score    int
	GameOver bool
	Paused   bool
}

func (s State) Clone() State {
	c := s
	c.Board = s.Board.Clone()
	if s.Current != nil {
		p := s.Current.Clone()
		c.Current = &p
	}

	return c
}

// Ghost returns the active piece moved down to where it would land.
func (s State) Ghost() (mino.Piece, bool) {
	if s.Current == nil || s.GameOver {
		return mino.Piece{}, false
	}

	return drop(s.Board, *s.Current), true
}

func drop(b mino.Board, p mino.Piece) mino.Piece {
	for {
		next := p.Moved(0, 1)
		if !mino.IsValidMove(b, next) {
			return p
		}

		p = next
	}
}
