package tetris_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	tetris "github.com/jauhararifin/termtetris"
)

var rotations = []tetris.Rotation{
	tetris.RotationUp,
	tetris.RotationRight,
	tetris.RotationDown,
	tetris.RotationLeft,
}

func TestRealizeDistinctCells(t *testing.T) {
	for _, kind := range tetris.Kinds {
		for _, rotation := range rotations {
			t.Run(fmt.Sprintf("%s/%s", kind, rotation), func(t *testing.T) {
				cells := tetris.Realize(kind, rotation, tetris.Point{X: 5, Y: 5})
				seen := map[tetris.Point]bool{}
				for _, c := range cells {
					assert.False(t, seen[c], "duplicate cell %v", c)
					seen[c] = true
				}
				assert.Len(t, seen, 4)
			})
		}
	}
}

func TestRealizeIsQuarterTurnOfPrevious(t *testing.T) {
	origin := tetris.Point{}
	for _, kind := range tetris.Kinds {
		prev := tetris.Realize(kind, tetris.RotationUp, origin)
		for _, rotation := range rotations[1:] {
			var want [4]tetris.Point
			for i, c := range prev {
				want[i] = tetris.Point{X: -c.Y, Y: c.X}
			}
			got := tetris.Realize(kind, rotation, origin)
			assert.Equal(t, want, got, "%s %s", kind, rotation)
			prev = got
		}
	}
}

func TestRealizeTranslatesByAnchor(t *testing.T) {
	cells := tetris.Realize(tetris.KindSquare, tetris.RotationUp, tetris.Point{X: 10, Y: 29})
	assert.ElementsMatch(t, []tetris.Point{{10, 30}, {11, 30}, {10, 29}, {11, 29}}, cells[:])

	cells = tetris.Realize(tetris.KindLine, tetris.RotationRight, tetris.Point{X: 3, Y: 0})
	assert.ElementsMatch(t, []tetris.Point{{2, 0}, {3, 0}, {4, 0}, {5, 0}}, cells[:])
}

func TestRotationCycle(t *testing.T) {
	assert.Equal(t, tetris.RotationRight, tetris.RotationUp.Next())
	assert.Equal(t, tetris.RotationDown, tetris.RotationRight.Next())
	assert.Equal(t, tetris.RotationLeft, tetris.RotationDown.Next())
	assert.Equal(t, tetris.RotationUp, tetris.RotationLeft.Next())

	for _, kind := range tetris.Kinds {
		piece := tetris.Piece{Kind: kind, Rotation: tetris.RotationUp, Anchor: tetris.Point{X: 7, Y: 7}}
		start := piece.Cells()
		for i := 0; i < 4; i++ {
			piece.Rotation = piece.Rotation.Next()
		}
		assert.Equal(t, start, piece.Cells(), "%s", kind)
	}
}
