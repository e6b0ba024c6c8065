package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/qnkhuat/blockterm/pkg/event"
	"github.com/qnkhuat/blockterm/pkg/game"
	"github.com/qnkhuat/blockterm/pkg/gui"
)

const lineHelp = "h/l move, j soft drop, k or space hard drop, z/x rotate, p pause, r restart, q quit, empty line ticks"

var lineActions = map[string]event.GameAction{
	"h":     event.ActionMoveLeft,
	"l":     event.ActionMoveRight,
	"j":     event.ActionSoftDrop,
	"k":     event.ActionHardDrop,
	"space": event.ActionHardDrop,
	"z":     event.ActionRotateCCW,
	"x":     event.ActionRotateCW,
	"p":     event.ActionPause,
	"r":     event.ActionRestart,
}

// runLines plays g from line commands read from r, printing the board to w
// after each one. Gravity only advances on an empty line.
func runLines(ctx context.Context, g *game.Game, r io.Reader, w io.Writer) error {
	fmt.Fprintln(w, lineHelp)
	fmt.Fprint(w, gui.RenderANSI(g.State()))

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}

		line := scanner.Text()
		cmd := strings.ToLower(strings.TrimSpace(line))
		if cmd == "" && line != "" {
			cmd = "space"
		}

		switch cmd {
		case "q", "quit":
			return nil
		case "":
			g.Tick()
		default:
			a, ok := lineActions[cmd]
			if !ok {
				fmt.Fprintf(w, "unknown command %q\n", cmd)
				continue
			}
			g.Apply(a)
		}

		fmt.Fprint(w, gui.RenderANSI(g.State()))
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read commands: %w", err)
	}
	return nil
}
