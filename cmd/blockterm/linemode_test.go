package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/qnkhuat/blockterm/pkg/game"
	"github.com/qnkhuat/blockterm/pkg/mino"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func TestRunLines(t *testing.T) {
	g := game.New(mino.NewBag(1))
	var out bytes.Buffer

	err := runLines(context.Background(), g, strings.NewReader("h\nh\nx\n\n \nbogus\nq\nl\n"), &out)
	require.NoError(t, err)

	s := g.State()
	assert.Contains(t, out.String(), `unknown command "bogus"`)
	assert.Equal(t, 6, strings.Count(out.String(), "score "))

	filled := 0
	for y := range s.Board {
		for x := range s.Board[y] {
			if s.Board.Cell(x, y) != mino.Empty {
				filled++
			}
		}
	}
	assert.Equal(t, 4, filled, "the hard-dropped piece is locked")
}

func TestRunLinesPause(t *testing.T) {
	g := game.New(mino.NewRandom(1))
	var out bytes.Buffer

	require.NoError(t, runLines(context.Background(), g, strings.NewReader("p\n\n"), &out))

	s := g.State()
	assert.True(t, s.Paused)
	assert.Equal(t, 0, s.Current.Position.Y)
	assert.Contains(t, out.String(), "paused")
}

func TestRunLinesCancelled(t *testing.T) {
	g := game.New(mino.NewRandom(1))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	require.NoError(t, runLines(ctx, g, strings.NewReader("h\n"), &out))
	assert.Equal(t, 1, strings.Count(out.String(), "score "))
}
