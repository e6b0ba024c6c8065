package gui

import (
	"bytes"
	"fmt"

	"github.com/fatih/color"
	"github.com/qnkhuat/blockterm/pkg/game"
	"github.com/qnkhuat/blockterm/pkg/mino"
)

var ansiColors = map[mino.Color]*color.Color{
	mino.ColorCyan:   color.New(color.FgCyan),
	mino.ColorYellow: color.New(color.FgYellow),
	mino.ColorPurple: color.New(color.FgMagenta),
	mino.ColorGreen:  color.New(color.FgGreen),
	mino.ColorRed:    color.New(color.FgRed),
	mino.ColorBlue:   color.New(color.FgBlue),
	mino.ColorOrange: color.New(color.FgHiRed),
}

var (
	ansiBorder = color.New(color.Faint)
	ansiMsg    = color.New(color.FgRed, color.Bold)
)

// RenderANSI renders s as plain text for line-oriented terminals. Occupied
// cells are '#', the ghost is '+' and empty cells are '.'. Colors are added
// unless color.NoColor is set.
func RenderANSI(s game.State) string {
	var buf bytes.Buffer

	for _, row := range frame(s) {
		buf.WriteString(ansiBorder.Sprint("|"))
		for _, b := range row {
			switch {
			case b.color == mino.Empty:
				buf.WriteByte('.')
			case b.ghost:
				buf.WriteString(ansiBlock(b.color, "+"))
			default:
				buf.WriteString(ansiBlock(b.color, "#"))
			}
		}
		buf.WriteString(ansiBorder.Sprint("|"))
		buf.WriteByte('\n')
	}

	next := "-"
	if s.Next.Valid() {
		next = s.Next.String()
	}
	fmt.Fprintf(&buf, "score %d  next %s\n", s.Score, next)

	switch {
	case s.GameOver:
		buf.WriteString(ansiMsg.Sprint("game over") + "\n")
	case s.Paused:
		buf.WriteString(ansiMsg.Sprint("paused") + "\n")
	}

	return buf.String()
}

func ansiBlock(c mino.Color, s string) string {
	if a, ok := ansiColors[c]; ok {
		return a.Sprint(s)
	}
	return s
}
