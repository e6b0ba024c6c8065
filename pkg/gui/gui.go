// Package gui draws a game in the terminal with tview and feeds key presses
// back to it.
package gui

import (
	"context"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/blockterm/pkg/event"
	"github.com/qnkhuat/blockterm/pkg/game"
	"github.com/qnkhuat/blockterm/pkg/mino"
	"github.com/rivo/tview"
)

type GUI struct {
	app    *tview.Application
	board  *tview.TextView
	side   *tview.TextView
	status *tview.TextView

	game     *game.Game
	clock    *game.Clock
	events   chan interface{}
	renderer Renderer
	nickname string
}

// New builds the interface for g. The GUI owns g's event channel.
func New(g *game.Game, clock *game.Clock, theme Theme, nickname string) *GUI {
	ui := &GUI{
		app:      tview.NewApplication(),
		game:     g,
		clock:    clock,
		events:   make(chan interface{}, game.EventQueueSize),
		renderer: Renderer{Theme: theme},
		nickname: tview.Escape(nickname),
	}
	g.Events = ui.events

	ui.board = newTextView()
	ui.side = newTextView()
	ui.status = newTextView().SetText(DefaultStatusText)

	grid := tview.NewGrid().
		SetBorders(false).
		SetRows(mino.Height+2, 1, -1).
		SetColumns(1, mino.Width*blockWidth+2, 2, 16, -1).
		AddItem(ui.board, 0, 1, 1, 1, 0, 0, false).
		AddItem(ui.side, 0, 3, 1, 1, 0, 0, false).
		AddItem(ui.status, 1, 1, 1, 4, 0, 0, false)

	ui.app.SetRoot(grid, true).SetInputCapture(ui.handleKeypress)

	return ui
}

func newTextView() *tview.TextView {
	v := tview.NewTextView().
		SetScrollable(false).
		SetTextAlign(tview.AlignLeft).
		SetWrap(false).
		SetWordWrap(false)

	v.SetDynamicColors(true)
	return v
}

// Run blocks until the player quits or ctx is done.
func (ui *GUI) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go ui.clock.Run(ctx, func() { ui.game.Tick() })
	go ui.handleEvents(ctx)
	go func() {
		<-ctx.Done()
		ui.app.Stop()
	}()

	ui.draw()
	return ui.app.Run()
}

func (ui *GUI) draw() {
	s := ui.game.State()
	ui.board.SetText(ui.renderer.Board(s))
	ui.side.SetText(ui.renderer.Side(s, ui.nickname))
}

func (ui *GUI) handleEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-ui.events:
			switch ev := ev.(type) {
			case event.DrawEvent:
				ui.app.QueueUpdateDraw(ui.draw)
			case event.PieceLockedEvent:
				log.Printf("locked %s", ev.Piece)
			case event.LinesClearedEvent:
				log.Printf("cleared %d lines, score %d", ev.Lines, ev.Score)
			case event.GameOverEvent:
				log.Printf("game over, score %d", ev.Score)
				ui.clock.Pause()
				ui.app.QueueUpdateDraw(ui.draw)
			}
		}
	}
}

func (ui *GUI) handleKeypress(ev *tcell.EventKey) *tcell.EventKey {
	if isQuit(ev) {
		ui.app.Stop()
		return nil
	}

	a := ActionFor(ev)
	if a == event.ActionUnknown {
		return ev
	}

	ui.game.Apply(a)

	if a == event.ActionPause || a == event.ActionRestart {
		s := ui.game.State()
		if s.Paused || s.GameOver {
			ui.clock.Pause()
		} else {
			ui.clock.Resume()
		}
	}

	return nil
}
