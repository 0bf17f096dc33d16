package tetris_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tetris "github.com/jauhararifin/termtetris"
)

func fillRow(t *testing.T, b *tetris.Board, y int, skip ...int) {
	t.Helper()
	skipped := map[int]bool{}
	for _, x := range skip {
		skipped[x] = true
	}
	for x := 0; x < b.Width(); x++ {
		if !skipped[x] {
			require.NoError(t, b.Commit(tetris.Point{X: x, Y: y}))
		}
	}
}

func TestBoardBounds(t *testing.T) {
	b := tetris.NewBoard(20, 30)
	assert.Equal(t, 20, b.Width())
	assert.Equal(t, 30, b.Height())

	assert.True(t, b.InBounds(0, 0))
	assert.True(t, b.InBounds(19, 29))
	assert.False(t, b.InBounds(-1, 0))
	assert.False(t, b.InBounds(20, 0))
	assert.False(t, b.InBounds(0, -1))
	assert.False(t, b.InBounds(0, 30))
}

func TestBoardOverlapsIgnoresOutOfBounds(t *testing.T) {
	b := tetris.NewBoard(10, 10)
	require.NoError(t, b.Commit(tetris.Point{X: 3, Y: 3}))

	assert.True(t, b.Occupied(3, 3))
	assert.False(t, b.Occupied(4, 3))
	assert.True(t, b.Overlaps(tetris.Point{X: -1, Y: 0}, tetris.Point{X: 3, Y: 3}))
	assert.False(t, b.Overlaps(tetris.Point{X: -1, Y: 0}, tetris.Point{X: 3, Y: 10}, tetris.Point{X: 4, Y: 3}))

	assert.False(t, b.Fits(tetris.Point{X: 3, Y: 10}))
	assert.False(t, b.Fits(tetris.Point{X: 3, Y: 3}))
	assert.True(t, b.Fits(tetris.Point{X: 4, Y: 3}, tetris.Point{X: 0, Y: 9}))
}

func TestBoardCommitOutOfBounds(t *testing.T) {
	b := tetris.NewBoard(10, 10)
	err := b.Commit(tetris.Point{X: 1, Y: 1}, tetris.Point{X: 10, Y: 1})
	assert.ErrorIs(t, err, tetris.ErrOutOfBounds)
	assert.Equal(t, 0, b.Count())
}

func TestClearFullRowsSingle(t *testing.T) {
	b := tetris.NewBoard(20, 30)
	fillRow(t, b, 0, 5)
	fillRow(t, b, 1)
	require.NoError(t, b.Commit(tetris.Point{X: 7, Y: 2}, tetris.Point{X: 8, Y: 29}))
	before := b.Count()

	assert.Equal(t, 1, b.ClearFullRows())
	assert.Equal(t, before-20, b.Count())

	// row 0 stays, rows above shift down by one
	assert.False(t, b.Occupied(5, 0))
	assert.True(t, b.Occupied(4, 0))
	assert.True(t, b.Occupied(7, 1))
	assert.False(t, b.Occupied(7, 2))
	assert.True(t, b.Occupied(8, 28))
	for x := 0; x < 20; x++ {
		assert.False(t, b.Occupied(x, 29))
	}
}

func TestClearFullRowsAdjacent(t *testing.T) {
	b := tetris.NewBoard(10, 10)
	fillRow(t, b, 0)
	fillRow(t, b, 1)
	fillRow(t, b, 2)
	require.NoError(t, b.Commit(tetris.Point{X: 0, Y: 3}))

	assert.Equal(t, 3, b.ClearFullRows())
	assert.Equal(t, 1, b.Count())
	assert.True(t, b.Occupied(0, 0))
	assert.Equal(t, 0, b.ClearFullRows())
}

func TestClearFullRowsTopRow(t *testing.T) {
	b := tetris.NewBoard(4, 4)
	fillRow(t, b, 3)

	assert.Equal(t, 1, b.ClearFullRows())
	assert.Equal(t, 0, b.Count())
}
