package gui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/blockterm/pkg/game"
	"github.com/qnkhuat/blockterm/pkg/mino"
)

const (
	// blockWidth is the number of terminal columns per board cell, which
	// keeps cells roughly square.
	blockWidth = 2

	solidRune = '█'
	ghostRune = '▓'
)

var (
	renderHLine    = string(tcell.RuneHLine)
	renderVLine    = string(tcell.RuneVLine)
	renderULCorner = string(tcell.RuneULCorner)
	renderURCorner = string(tcell.RuneURCorner)
	renderLLCorner = string(tcell.RuneLLCorner)
	renderLRCorner = string(tcell.RuneLRCorner)
)

type block struct {
	color mino.Color
	ghost bool
}

// frame lays the ghost and the active piece over the board.
func frame(s game.State) [][]block {
	f := make([][]block, mino.Height)
	for y := range f {
		f[y] = make([]block, mino.Width)
		for x := range f[y] {
			f[y][x] = block{color: s.Board.Cell(x, y)}
		}
	}

	overlay := func(p mino.Piece, ghost bool) {
		for _, c := range p.Cells() {
			if c.X < 0 || c.X >= mino.Width || c.Y < 0 || c.Y >= mino.Height {
				continue
			}
			f[c.Y][c.X] = block{color: p.Color, ghost: ghost}
		}
	}

	if ghost, ok := s.Ghost(); ok {
		overlay(ghost, true)
	}
	if s.Current != nil {
		overlay(*s.Current, false)
	}

	return f
}

// colorTag returns a tview color tag for c.
func colorTag(c tcell.Color) string {
	if c == tcell.ColorDefault {
		return "[-]"
	}
	return fmt.Sprintf("[#%06x]", c.Hex())
}

// Renderer writes game states as tview dynamic-color text.
type Renderer struct {
	Theme Theme
}

func (r Renderer) writeBlock(buf *bytes.Buffer, b block) {
	if b.color == mino.Empty {
		buf.WriteString(strings.Repeat(" ", blockWidth))
		return
	}

	ch := solidRune
	if b.ghost {
		ch = ghostRune
	}

	buf.WriteString(colorTag(r.Theme.Block(b.color)))
	buf.WriteString(strings.Repeat(string(ch), blockWidth))
	buf.WriteString("[-]")
}

// Board renders the playfield with a border.
func (r Renderer) Board(s game.State) string {
	var buf bytes.Buffer
	border := colorTag(r.Theme.Border)
	hline := strings.Repeat(renderHLine, mino.Width*blockWidth)

	buf.WriteString(border + renderULCorner + hline + renderURCorner + "[-]\n")
	for _, row := range frame(s) {
		buf.WriteString(border + renderVLine + "[-]")
		for _, b := range row {
			r.writeBlock(&buf, b)
		}
		buf.WriteString(border + renderVLine + "[-]\n")
	}
	buf.WriteString(border + renderLLCorner + hline + renderLRCorner + "[-]")

	return buf.String()
}

// Side renders the next piece, the score and the game status.
func (r Renderer) Side(s game.State, nickname string) string {
	var buf bytes.Buffer
	label := colorTag(r.Theme.Label)

	if nickname != "" {
		buf.WriteString(label + nickname + "[-]\n\n")
	}

	buf.WriteString(label + "Next[-]\n\n")
	if s.Next.Valid() {
		next := mino.SpawnPiece(s.Next)
		for _, row := range next.Shape {
			buf.WriteString(" ")
			for _, filled := range row {
				b := block{}
				if filled {
					b.color = next.Color
				}
				r.writeBlock(&buf, b)
			}
			buf.WriteString("\n")
		}
	}

	buf.WriteString(fmt.Sprintf("\n%sScore[-]\n\n %d\n", label, s.Score))

	msg := colorTag(r.Theme.Msg)
	switch {
	case s.GameOver:
		buf.WriteString("\n" + msg + "GAME OVER[-]\n r to restart\n")
	case s.Paused:
		buf.WriteString("\n" + msg + "PAUSED[-]\n")
	}

	return buf.String()
}
