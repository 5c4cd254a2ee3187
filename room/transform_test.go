package room

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/roompath/astar"
)

func TestTransform_CellConversions(t *testing.T) {
	tr := Transform{CellSize: astar.WorldPoint{X: 0.5, Y: 2}, Origin: astar.WorldPoint{X: -1, Y: 3}}

	assert.Equal(t, astar.WorldPoint{X: -1, Y: 3}, tr.CellToWorld(astar.Point{}))
	assert.Equal(t, astar.WorldPoint{X: 0, Y: 7}, tr.CellToWorld(astar.Point{X: 2, Y: 2}))
	assert.Equal(t, astar.WorldPoint{X: 0.25, Y: 8}, tr.CellCenter(astar.Point{X: 2, Y: 2}))
	assert.Equal(t, astar.WorldPoint{X: -1.25, Y: 2}, tr.CellCenter(astar.Point{X: -1, Y: -1}))

	for _, c := range []astar.Point{{X: 0, Y: 0}, {X: 3, Y: -2}, {X: -4, Y: 5}} {
		assert.Equal(t, c, tr.WorldToCell(tr.CellCenter(c)), "round trip %v", c)
	}
}

func TestTransform_Validate(t *testing.T) {
	assert.NoError(t, DefaultTransform().Validate())
	assert.ErrorIs(t, Transform{CellSize: astar.WorldPoint{X: 1}}.Validate(), ErrBadCellSize)
	assert.ErrorIs(t, Transform{CellSize: astar.WorldPoint{X: -1, Y: 1}}.Validate(), ErrBadCellSize)
}
