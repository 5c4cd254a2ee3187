// Package astar implements a best-first (A*) shortest-path search over a bounded,
// 8-connected rectangular grid.
//
// The search consumes a per-cell movement-penalty lookup (0 = impassable), uses the
// integer octile distance (orthogonal step 10, diagonal step 14) both as step cost and
// as heuristic, and returns the waypoints from start to target converted to world space
// by a caller-supplied transform.
//
// Complexity:
//
//   - Time:  O(V log V) with V = width×height; every node is pushed once and its key
//     is decreased in place with heap.Fix.
//   - Space: O(V) for the node arena and the open queue.
//
// Notes on implementation choices:
//
//   - All nodes live in a NodeStore arena; parent links are arena indices.
//   - Open and closed membership is a per-node state flag instead of separate sets.
//   - Ties on (F, H) are broken by insertion order, so results are reproducible.
//   - Penalties only gate passability unless WithWeightedPenalty is given.
//
// Every call is independent: nothing is cached between calls, and the penalty lookup
// must not change while a search is running.
package astar

import (
	"container/heap"
	"fmt"

	"go.uber.org/zap"
)

// Octile step costs scaled to integers (√2 ≈ 1.4).
const (
	StraightCost = 10
	DiagonalCost = 14
)

// Distance returns the octile distance between a and b:
// 14*min(dx,dy) + 10*(max(dx,dy)-min(dx,dy)).
func Distance(a, b Point) int {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	if dx > dy {
		return DiagonalCost*dy + StraightCost*(dx-dy)
	}

	return DiagonalCost*dx + StraightCost*(dy-dx)
}

// FindPath searches for the cheapest 8-connected path from start to end inside bounds.
//
// start and end are local grid coordinates (the room's lower bound already subtracted).
// penalty decides passability of each cell; transform converts each path cell to a
// world-space waypoint.
//
// Returns:
//
//   - Result with Found=true and the ordered waypoints (start first, target last).
//   - Result with Found=false and nil error when the target cannot be reached.
//   - error wrapping ErrInvalidDimension, ErrNilPenalty, ErrNilTransform or
//     ErrOutOfBounds for invalid input, and ErrBudgetExhausted when WithStepBudget
//     stopped the search.
//
// A target whose penalty is 0 is never reachable, even when start == end.
func FindPath(
	start, end Point,
	bounds Bounds,
	penalty PenaltyLookup,
	transform CoordTransform,
	opts ...Option,
) (Result, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if penalty == nil {
		return Result{}, ErrNilPenalty
	}
	if transform == nil {
		return Result{}, ErrNilTransform
	}
	store, err := NewNodeStore(bounds.Width, bounds.Height)
	if err != nil {
		return Result{}, err
	}
	startNode, err := store.Get(start.X, start.Y)
	if err != nil {
		return Result{}, fmt.Errorf("start: %w", err)
	}
	targetNode, err := store.Get(end.X, end.Y)
	if err != nil {
		return Result{}, fmt.Errorf("end: %w", err)
	}

	log := cfg.Logger.With(
		zap.Int("start_x", start.X), zap.Int("start_y", start.Y),
		zap.Int("end_x", end.X), zap.Int("end_y", end.Y),
	)

	// 3) A blocked target is unreachable by definition.
	if penalty.Penalty(end.X, end.Y) <= 0 {
		log.Debug("target cell is impassable")
		return Result{}, nil
	}

	r := &runner{
		store:     store,
		open:      &openQueue{store: store},
		penalty:   penalty,
		options:   cfg,
		targetIdx: store.index(end.X, end.Y),
	}
	r.init(startNode, targetNode)

	// 4) Run the main loop.
	found, err := r.process()
	if err != nil {
		log.Debug("search aborted", zap.Int("expanded", r.expanded), zap.Error(err))
		return Result{Expanded: r.expanded}, err
	}
	if !found {
		log.Debug("no path", zap.Int("expanded", r.expanded))
		return Result{Expanded: r.expanded}, nil
	}

	// 5) Walk parents back to the start.
	cells := r.reconstruct()
	path := make([]WorldPoint, len(cells))
	for i, c := range cells {
		path[i] = transform(c)
	}
	log.Debug("path found",
		zap.Int("cost", targetNode.G),
		zap.Int("waypoints", len(path)),
		zap.Int("expanded", r.expanded),
	)

	return Result{
		Path:     path,
		Cells:    cells,
		Cost:     targetNode.G,
		Expanded: r.expanded,
		Found:    true,
	}, nil
}

// runner holds the mutable state for a single FindPath execution.
type runner struct {
	store     *NodeStore
	open      *openQueue
	penalty   PenaltyLookup
	options   Options
	targetIdx int
	seq       int // next insertion sequence number
	expanded  int
}

// init seeds the open queue with the start node.
func (r *runner) init(startNode, targetNode *Node) {
	startNode.G = 0
	startNode.H = Distance(startNode.Pos, targetNode.Pos)
	heap.Init(r.open)
	r.push(r.store.index(startNode.Pos.X, startNode.Pos.Y))
}

// process pops nodes in (F, H, seq) order until the target is reached or the open
// queue is empty. It reports whether the target was reached.
func (r *runner) process() (bool, error) {
	budget := r.options.StepBudget
	for r.open.Len() > 0 {
		if budget > 0 && r.expanded >= budget {
			return false, fmt.Errorf("%w: %d expansions", ErrBudgetExhausted, r.expanded)
		}

		u := heap.Pop(r.open).(int)
		r.expanded++
		if u == r.targetIdx {
			return true, nil
		}

		current := r.store.at(u)
		current.state = stateClosed
		r.relax(u, current)
	}

	return false, nil
}

// relax evaluates the eight neighbors of current.
func (r *runner) relax(u int, current *Node) {
	target := r.store.at(r.targetIdx)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := current.Pos.X+dx, current.Pos.Y+dy
			if !r.store.inBounds(nx, ny) {
				continue
			}
			p := r.penalty.Penalty(nx, ny)
			v := r.store.index(nx, ny)
			neighbor := r.store.at(v)
			if p <= 0 || neighbor.state == stateClosed {
				continue
			}

			step := Distance(current.Pos, neighbor.Pos)
			if r.options.WeightedPenalty {
				step += p - 1
			}
			tentativeG := current.G + step

			isOpen := neighbor.state == stateOpen
			if isOpen && tentativeG >= neighbor.G {
				continue
			}
			neighbor.G = tentativeG
			neighbor.H = Distance(neighbor.Pos, target.Pos)
			neighbor.parent = u
			if isOpen {
				heap.Fix(r.open, neighbor.heapIndex)
			} else {
				r.push(v)
			}
		}
	}
}

// push inserts the node at index i into the open queue.
func (r *runner) push(i int) {
	n := r.store.at(i)
	n.state = stateOpen
	n.seq = r.seq
	r.seq++
	heap.Push(r.open, i)
}

// reconstruct follows parent links from the target and returns the cells start first.
func (r *runner) reconstruct() []Point {
	var cells []Point
	for i := r.targetIdx; i != noParent; i = r.store.at(i).parent {
		cells = append(cells, r.store.at(i).Pos)
	}
	// reverse path
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}

	return cells
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
