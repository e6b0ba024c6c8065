package mino_test

import (
	"testing"

	"github.com/qnkhuat/blockterm/pkg/mino"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	for i := 0; i < 3; i++ {
		b := mino.NewBoard()
		require.Len(t, b, mino.Height)
		for y, row := range b {
			require.Len(t, row, mino.Width, "row %d", y)
			for x, c := range row {
				assert.Equal(t, mino.Empty, c, "cell %d,%d", x, y)
			}
		}
		assert.NoError(t, b.Validate())
	}
}

func TestNewBoardRowsNotAliased(t *testing.T) {
	b := mino.NewBoard()
	b[0][0] = mino.ColorRed

	for y := 1; y < mino.Height; y++ {
		assert.Equal(t, mino.Empty, b[y][0], "row %d shares storage with row 0", y)
	}
	assert.Equal(t, mino.Empty, mino.NewBoard()[0][0])
}

func TestBoardValidate(t *testing.T) {
	short := mino.NewBoard()[:mino.Height-1]

	narrow := mino.NewBoard()
	narrow[3] = narrow[3][:mino.Width-2]

	for name, b := range map[string]mino.Board{"nil": nil, "short": short, "narrow": narrow} {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, b.Validate(), mino.ErrInvalidBoard)
		})
	}
}

func TestBoardClone(t *testing.T) {
	b := bottomRows(t, "rr........")
	c := b.Clone()
	require.True(t, b.Equal(c))

	c[mino.Height-1][0] = mino.Empty
	assert.Equal(t, mino.Color("r"), b[mino.Height-1][0])
	assert.False(t, b.Equal(c))
}

func TestBoardCell(t *testing.T) {
	b := bottomRows(t, "g.........")

	assert.Equal(t, mino.Color("g"), b.Cell(0, mino.Height-1))
	assert.Equal(t, mino.Empty, b.Cell(1, mino.Height-1))
	assert.Equal(t, mino.Empty, b.Cell(-1, 0))
	assert.Equal(t, mino.Empty, b.Cell(mino.Width, 0))
	assert.Equal(t, mino.Empty, b.Cell(0, mino.Height))
}

func TestBoardRowFilled(t *testing.T) {
	b := bottomRows(t,
		"bbbbbbbbb.",
		"bbbbbbbbbb")

	assert.False(t, b.RowFilled(mino.Height-2))
	assert.True(t, b.RowFilled(mino.Height-1))
	assert.False(t, b.RowFilled(0))
	assert.False(t, b.RowFilled(-1))
	assert.False(t, b.RowFilled(mino.Height))
}

func TestBoardString(t *testing.T) {
	b := bottomRows(t, "y........y")

	lines := mino.Height
	want := ""
	for y := 0; y < lines-1; y++ {
		want += "..........\n"
	}
	want += "#........#"

	assert.Equal(t, want, b.String())
}
