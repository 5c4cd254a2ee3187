// Package room binds the astar search to a rectangular room placed in a world grid.
//
// A Room knows its inclusive lower/upper grid corners, the per-cell movement penalties
// inside those corners and the affine transform between grid cells and world space.
// BuildPath takes world grid coordinates, shifts them into the room's local 0-based
// space, runs astar.FindPath and hands back a Path of cell-centre waypoints.
package room

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/roompath/astar"
	"github.com/katalvlaran/roompath/dijkstra"
	"github.com/katalvlaran/roompath/gridgraph"
)

// Room is an immutable room template instance. Safe for concurrent BuildPath calls.
type Room struct {
	ID        string
	Lower     astar.Point // inclusive lower-left grid corner
	Upper     astar.Point // inclusive upper-right grid corner
	Transform Transform
	Penalties *gridgraph.GridGraph // indexed by local cell, Penalties.CellValues[y][x]

	log *zap.Logger
}

// Option configures a Room.
type Option func(*Room)

// WithLogger sets the logger used for path tracing. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(r *Room) {
		if l != nil {
			r.log = l
		}
	}
}

// New validates the corners, transform and penalty matrix and builds a Room.
// penalties[y][x] holds the penalty of world cell (Lower.X+x, Lower.Y+y).
func New(id string, lower, upper astar.Point, tr Transform, penalties [][]int, opts ...Option) (*Room, error) {
	if upper.X < lower.X || upper.Y < lower.Y {
		return nil, fmt.Errorf("%w: lower %v upper %v", ErrInvalidBounds, lower, upper)
	}
	if err := tr.Validate(); err != nil {
		return nil, err
	}
	gg, err := gridgraph.NewGridGraph(penalties, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, fmt.Errorf("room %q: %w", id, err)
	}
	w, h := upper.X-lower.X+1, upper.Y-lower.Y+1
	if gg.Width != w || gg.Height != h {
		return nil, fmt.Errorf("%w: bounds %dx%d, penalties %dx%d",
			ErrBoundsMismatch, w, h, gg.Width, gg.Height)
	}

	r := &Room{
		ID:        id,
		Lower:     lower,
		Upper:     upper,
		Transform: tr,
		Penalties: gg,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.With(zap.String("room", id))

	return r, nil
}

// Bounds returns the room's grid extent.
func (r *Room) Bounds() astar.Bounds {
	return astar.Bounds{
		Width:  r.Upper.X - r.Lower.X + 1,
		Height: r.Upper.Y - r.Lower.Y + 1,
	}
}

// Contains reports whether the world grid cell p lies inside the room.
func (r *Room) Contains(p astar.Point) bool {
	return r.Bounds().Contains(r.toLocal(p))
}

// Penalty returns the penalty of world grid cell p, 0 if outside the room.
func (r *Room) Penalty(p astar.Point) int {
	l := r.toLocal(p)
	return r.Penalties.Penalty(l.X, l.Y)
}

// BuildPath computes the waypoints from world grid cell start to end.
//
// Both cells are shifted by Lower before the search. Waypoints are cell centres in
// world space, start first. When no path exists BuildPath returns (nil, nil) and the
// caller decides a fallback such as idling in place. Errors wrap astar.ErrOutOfBounds
// for cells outside the room, or astar.ErrBudgetExhausted.
func (r *Room) BuildPath(start, end astar.Point, opts ...astar.Option) (*Path, error) {
	ls, le := r.toLocal(start), r.toLocal(end)
	opts = append([]astar.Option{astar.WithLogger(r.log)}, opts...)

	res, err := astar.FindPath(ls, le, r.Bounds(), r.Penalties, r.worldCentre, opts...)
	if err != nil {
		return nil, fmt.Errorf("room %q: %w", r.ID, err)
	}
	if !res.Found {
		return nil, nil
	}

	return newPath(res, r.Lower), nil
}

// BuildPathWorld converts world positions to grid cells and calls BuildPath.
func (r *Room) BuildPathWorld(from, to astar.WorldPoint, opts ...astar.Option) (*Path, error) {
	return r.BuildPath(r.Transform.WorldToCell(from), r.Transform.WorldToCell(to), opts...)
}

// Reachable reports whether world grid cells a and b are connected through
// walkable cells. Cheaper than BuildPath when only a yes/no is needed.
func (r *Room) Reachable(a, b astar.Point) bool {
	la, lb := r.toLocal(a), r.toLocal(b)
	return r.Penalties.Reachable(la.X, la.Y, lb.X, lb.Y)
}

// DistanceField returns the octile distance from world grid cell from to every cell of
// the room, row-major over local coordinates (dijkstra.Unreachable where unreachable).
func (r *Room) DistanceField(from astar.Point) ([]int64, error) {
	if !r.Contains(from) {
		return nil, fmt.Errorf("%w: %v", ErrOutsideRoom, from)
	}
	l := r.toLocal(from)
	dist, _, err := dijkstra.Dijkstra(r.Penalties, dijkstra.Source(l.X, l.Y))
	if err != nil {
		return nil, fmt.Errorf("room %q: %w", r.ID, err)
	}

	return dist, nil
}

func (r *Room) toLocal(p astar.Point) astar.Point {
	return astar.Point{X: p.X - r.Lower.X, Y: p.Y - r.Lower.Y}
}

// worldCentre maps a local cell to the centre of its world cell.
func (r *Room) worldCentre(c astar.Point) astar.WorldPoint {
	return r.Transform.CellCenter(astar.Point{X: c.X + r.Lower.X, Y: c.Y + r.Lower.Y})
}
