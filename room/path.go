package room

import "github.com/katalvlaran/roompath/astar"

// Path is an ordered queue of world-space waypoints, start first.
// A movement controller consumes it with Next until Empty.
type Path struct {
	points []astar.WorldPoint
	cells  []astar.Point // world grid cells
	cost   int
	next   int
}

func newPath(res astar.Result, lower astar.Point) *Path {
	cells := make([]astar.Point, len(res.Cells))
	for i, c := range res.Cells {
		cells[i] = astar.Point{X: c.X + lower.X, Y: c.Y + lower.Y}
	}
	return &Path{points: res.Path, cells: cells, cost: res.Cost}
}

// Len returns the number of waypoints not yet consumed.
func (p *Path) Len() int { return len(p.points) - p.next }

// Empty reports whether every waypoint has been consumed.
func (p *Path) Empty() bool { return p.Len() == 0 }

// Cost returns the octile cost of the whole path.
func (p *Path) Cost() int { return p.cost }

// Points returns the remaining waypoints.
func (p *Path) Points() []astar.WorldPoint { return p.points[p.next:] }

// Cells returns the world grid cells of the remaining waypoints.
func (p *Path) Cells() []astar.Point { return p.cells[p.next:] }

// Peek returns the next waypoint without consuming it.
func (p *Path) Peek() (astar.WorldPoint, bool) {
	if p.Empty() {
		return astar.WorldPoint{}, false
	}
	return p.points[p.next], true
}

// Next consumes and returns the next waypoint.
func (p *Path) Next() (astar.WorldPoint, bool) {
	wp, ok := p.Peek()
	if ok {
		p.next++
	}
	return wp, ok
}
