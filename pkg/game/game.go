// Package game drives the board/piece engine: it applies player actions,
// runs gravity, locks pieces, clears lines and spawns the next piece.
package game

import (
	"log"
	"sync"

	"github.com/qnkhuat/blockterm/pkg/event"
	"github.com/qnkhuat/blockterm/pkg/mino"
)

const EventQueueSize = 16

// Offsets tried, in order, when a rotated piece does not fit where it is.
var kicks = []mino.Point{{X: 0, Y: 0}, {X: -1, Y: 0}, {X: 1, Y: 0}, {X: -2, Y: 0}, {X: 2, Y: 0}, {X: -3, Y: 0}, {X: 0, Y: -1}}

type Game struct {
	// Events receives PieceLockedEvent, LinesClearedEvent, GameOverEvent and
	// DrawEvent values. Sends never block; events are dropped when full.
	Events chan<- interface{}

	state State
	gen   mino.Generator

	sync.Mutex
}

func New(g mino.Generator) *Game {
	game := &Game{gen: g}
	game.reset()

	return game
}

// State returns a copy of the current game state.
func (g *Game) State() State {
	g.Lock()
	defer g.Unlock()

	return g.state.Clone()
}

func (g *Game) Reset() {
	g.Lock()
	defer g.Unlock()

	g.reset()
	g.emit(event.DrawEvent{})
}

func (g *Game) reset() {
	g.state = State{Board: mino.NewBoard()}
	g.spawn()
}

// Apply performs a player action and reports whether the state changed.
// Only Pause and Restart are honored while paused or after game over.
func (g *Game) Apply(a event.GameAction) bool {
	g.Lock()
	defer g.Unlock()

	changed := g.apply(a)
	if changed {
		g.emit(event.DrawEvent{})
	}

	return changed
}

func (g *Game) apply(a event.GameAction) bool {
	switch a {
	case event.ActionPause:
		if g.state.GameOver {
			return false
		}

		g.state.Paused = !g.state.Paused
		return true
	case event.ActionRestart:
		g.reset()
		return true
	}

	if g.state.Paused || g.state.GameOver || g.state.Current == nil {
		return false
	}

	switch a {
	case event.ActionMoveLeft:
		return g.move(-1, 0)
	case event.ActionMoveRight:
		return g.move(1, 0)
	case event.ActionSoftDrop:
		return g.move(0, 1)
	case event.ActionRotateCW:
		return g.rotate(1)
	case event.ActionRotateCCW:
		return g.rotate(3)
	case event.ActionHardDrop:
		p := drop(g.state.Board, *g.state.Current)
		g.state.Current = &p
		g.lock()
		return true
	default:
		return false
	}
}

// Tick lowers the active piece by one row, or locks it in place when it
// cannot fall any further.
func (g *Game) Tick() bool {
	g.Lock()
	defer g.Unlock()

	if g.state.Paused || g.state.GameOver || g.state.Current == nil {
		return false
	}

	if !g.move(0, 1) {
		g.lock()
	}

	g.emit(event.DrawEvent{})
	return true
}

// Ghost returns the active piece moved down to where it would land.
func (g *Game) Ghost() (mino.Piece, bool) {
	g.Lock()
	defer g.Unlock()

	return g.state.Ghost()
}

func (g *Game) move(dx, dy int) bool {
	p := g.state.Current.Moved(dx, dy)
	if !mino.IsValidMove(g.state.Board, p) {
		return false
	}

	g.state.Current = &p
	return true
}

func (g *Game) rotate(turns int) bool {
	r := *g.state.Current
	for i := 0; i < turns; i++ {
		r = mino.Rotate(r)
	}

	for _, k := range kicks {
		p := r.Moved(k.X, k.Y)
		if mino.IsValidMove(g.state.Board, p) {
			g.state.Current = &p
			return true
		}
	}

	return false
}

func (g *Game) lock() {
	p := *g.state.Current
	g.state.Current = nil

	merged, err := mino.Merge(g.state.Board, p)
	if err != nil {
		log.Printf("failed to lock piece %s: %s", p, err)
		g.setGameOver()
		return
	}

	cleared, lines, err := mino.ClearLines(merged)
	if err != nil {
		log.Printf("failed to clear lines: %s", err)
		g.setGameOver()
		return
	}

	g.state.Board = cleared
	g.emit(event.PieceLockedEvent{Piece: p})

	if lines > 0 {
		g.state.Score += lines
		g.emit(event.LinesClearedEvent{Lines: lines, Score: g.state.Score})
	}

	g.spawn()
}

// spawn places the next piece at the top of the board. The game is over when
// it does not fit.
func (g *Game) spawn() {
	p := mino.NewPiece(g.gen)
	g.state.Next = g.gen.Peek()

	if !mino.IsValidMove(g.state.Board, p) {
		g.setGameOver()
		return
	}

	g.state.Current = &p
}

func (g *Game) setGameOver() {
	if g.state.GameOver {
		return
	}

	g.state.GameOver = true
	g.state.Current = nil
	g.emit(event.GameOverEvent{Score: g.state.Score})
}

func (g *Game) emit(ev interface{}) {
	if g.Events == nil {
		return
	}

	select {
	case g.Events <- ev:
	default:
	}
}
