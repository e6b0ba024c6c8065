package gui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/blockterm/pkg/event"
)

const DefaultStatusText = "Z/X to rotate, arrow keys or HJKL to move/drop, P to pause, R to restart, Q to quit"

type Keybinding struct {
	k tcell.Key
	r rune

	a event.GameAction
}

var keybindings = []Keybinding{
	{r: 'z', a: event.ActionRotateCCW},
	{r: 'Z', a: event.ActionRotateCCW},
	{r: 'x', a: event.ActionRotateCW},
	{r: 'X', a: event.ActionRotateCW},
	{k: tcell.KeyLeft, a: event.ActionMoveLeft},
	{r: 'h', a: event.ActionMoveLeft},
	{r: 'H', a: event.ActionMoveLeft},
	{k: tcell.KeyDown, a: event.ActionSoftDrop},
	{r: 'j', a: event.ActionSoftDrop},
	{r: 'J', a: event.ActionSoftDrop},
	{k: tcell.KeyUp, a: event.ActionHardDrop},
	{r: 'k', a: event.ActionHardDrop},
	{r: 'K', a: event.ActionHardDrop},
	{r: ' ', a: event.ActionHardDrop},
	{k: tcell.KeyRight, a: event.ActionMoveRight},
	{r: 'l', a: event.ActionMoveRight},
	{r: 'L', a: event.ActionMoveRight},
	{r: 'p', a: event.ActionPause},
	{r: 'P', a: event.ActionPause},
	{r: 'r', a: event.ActionRestart},
	{r: 'R', a: event.ActionRestart},
}

// ActionFor returns the game action bound to ev, or ActionUnknown.
func ActionFor(ev *tcell.EventKey) event.GameAction {
	k := ev.Key()
	for _, bind := range keybindings {
		if bind.k != 0 && bind.k == k {
			return bind.a
		}
		if bind.r != 0 && k == tcell.KeyRune && bind.r == ev.Rune() {
			return bind.a
		}
	}

	return event.ActionUnknown
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}

	return false
}
