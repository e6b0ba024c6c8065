package mino_test

import (
	"testing"

	"github.com/qnkhuat/blockterm/pkg/mino"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyCatalog(t *testing.T) {
	assert.NoError(t, mino.VerifyCatalog())
}

func TestAllPieceTypes(t *testing.T) {
	types := mino.AllPieceTypes()
	require.Len(t, types, 7)

	names := make(map[string]bool)
	colors := make(map[mino.Color]bool)
	for _, pt := range types {
		assert.True(t, pt.Valid())

		e := pt.Entry()
		assert.Equal(t, pt.String(), e.Name)
		assert.NoError(t, e.Shape.Validate())
		assert.Len(t, e.Shape.Mino(), 4, "%s is not a tetromino", pt)
		assert.NotEqual(t, mino.Empty, e.Color)

		names[e.Name] = true
		colors[e.Color] = true
	}

	assert.Len(t, names, 7)
	assert.Len(t, colors, 7)
}

func TestPieceTypeInvalid(t *testing.T) {
	invalid := mino.PieceType(42)

	assert.False(t, invalid.Valid())
	assert.False(t, mino.PieceType(-1).Valid())
	assert.Equal(t, "PieceType(42)", invalid.String())
	assert.Equal(t, mino.Entry{}, invalid.Entry())
}

func TestEntryReturnsCopy(t *testing.T) {
	e := mino.PieceI.Entry()
	e.Shape[0][0] = false

	assert.True(t, mino.PieceI.Entry().Shape[0][0])
}

func TestIdentify(t *testing.T) {
	for _, pt := range mino.AllPieceTypes() {
		t.Run(pt.String(), func(t *testing.T) {
			s := pt.Entry().Shape
			for i := 0; i < 4; i++ {
				got, ok := mino.Identify(s)
				require.True(t, ok, "rotation %d:\n%s", i, s)
				assert.Equal(t, pt, got, "rotation %d", i)

				s = s.Rotate()
			}
		})
	}

	_, ok := mino.Identify(mino.ParseShape("###", "#.#"))
	assert.False(t, ok)

	_, ok = mino.Identify(mino.Shape{})
	assert.False(t, ok)
}

func TestIdentifyTellsMirrorsApart(t *testing.T) {
	s, ok := mino.Identify(mino.ParseShape(".##", "##."))
	require.True(t, ok)
	z, ok := mino.Identify(mino.ParseShape("##.", ".##"))
	require.True(t, ok)

	assert.Equal(t, mino.PieceS, s)
	assert.Equal(t, mino.PieceZ, z)
}
