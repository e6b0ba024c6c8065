package mino_test

import (
	"fmt"
	"testing"

	"github.com/qnkhuat/blockterm/pkg/mino"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// One-sided polyomino counts by rank.
var generateCounts = []struct {
	Rank  int
	Minos int
}{
	{0, 0},
	{1, 1},
	{2, 1},
	{3, 2},
	{4, 7},
	{5, 18},
}

func TestGenerate(t *testing.T) {
	for _, d := range generateCounts {
		t.Run(fmt.Sprintf("rank=%d", d.Rank), func(t *testing.T) {
			minos, err := mino.Generate(d.Rank)
			require.NoError(t, err)
			assert.Len(t, minos, d.Minos)

			seen := make(map[string]bool)
			for _, m := range minos {
				assert.Len(t, m, d.Rank)
				assert.Equal(t, m.String(), m.Canonical().String(), "not canonical")
				assert.False(t, seen[m.String()], "duplicate %s", m)
				seen[m.String()] = true
			}
		})
	}
}

func TestGenerateTetrominoesMatchCatalog(t *testing.T) {
	minos, err := mino.Generate(4)
	require.NoError(t, err)

	found := make(map[mino.PieceType]int)
	for _, m := range minos {
		pt, ok := mino.Identify(m.Shape())
		require.True(t, ok, "unknown tetromino\n%s", m.Shape())
		found[pt]++
	}

	for _, pt := range mino.AllPieceTypes() {
		assert.Equal(t, 1, found[pt], pt.String())
	}
}

func TestGenerateInvalidRank(t *testing.T) {
	_, err := mino.Generate(-1)
	assert.ErrorIs(t, err, mino.ErrInvalidRank)
}

func TestCanonicalIsRotationInvariant(t *testing.T) {
	m := mino.ParseShape("#..", "###").Mino()
	want := m.Canonical().String()

	s := m.Shape()
	for i := 0; i < 4; i++ {
		s = s.Rotate()
		assert.Equal(t, want, s.Mino().Canonical().String())
	}
}

func BenchmarkGenerate(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		for _, d := range generateCounts {
			minos, err := mino.Generate(d.Rank)
			if err != nil {
				b.Errorf("failed to generate minos: %s", err)
			}

			if len(minos) != d.Minos {
				b.Errorf("failed to generate minos for rank %d: expected to generate %d minos, got %d", d.Rank, d.Minos, len(minos))
			}
		}
	}
}
