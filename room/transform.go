package room

import (
	"math"

	"github.com/katalvlaran/roompath/astar"
)

// Transform is the affine mapping between world grid cells and world space.
// Cell (0,0) has its lower-left corner at Origin; each cell spans CellSize.
type Transform struct {
	CellSize astar.WorldPoint `yaml:"cell_size"`
	Origin   astar.WorldPoint `yaml:"origin"`
}

// DefaultTransform returns unit cells anchored at the world origin.
func DefaultTransform() Transform {
	return Transform{CellSize: astar.WorldPoint{X: 1, Y: 1}}
}

// Validate reports ErrBadCellSize for a non-positive cell size.
func (t Transform) Validate() error {
	if t.CellSize.X <= 0 || t.CellSize.Y <= 0 {
		return ErrBadCellSize
	}
	return nil
}

// CellToWorld returns the world position of the corner of cell c.
func (t Transform) CellToWorld(c astar.Point) astar.WorldPoint {
	return astar.WorldPoint{
		X: t.Origin.X + float64(c.X)*t.CellSize.X,
		Y: t.Origin.Y + float64(c.Y)*t.CellSize.Y,
	}
}

// CellCenter returns the world position of the middle of cell c.
func (t Transform) CellCenter(c astar.Point) astar.WorldPoint {
	p := t.CellToWorld(c)
	p.X += t.CellSize.X * 0.5
	p.Y += t.CellSize.Y * 0.5
	return p
}

// WorldToCell returns the cell containing world position p.
func (t Transform) WorldToCell(p astar.WorldPoint) astar.Point {
	return astar.Point{
		X: int(math.Floor((p.X - t.Origin.X) / t.CellSize.X)),
		Y: int(math.Floor((p.Y - t.Origin.Y) / t.CellSize.Y)),
	}
}
