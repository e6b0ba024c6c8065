package mino

import "errors"

var (
	ErrInvalidBoard = errors.New("invalid board")
	ErrInvalidShape = errors.New("invalid piece shape")
	ErrInvalidPiece = errors.New("invalid piece")
	ErrInvalidRank  = errors.New("invalid rank")
)
