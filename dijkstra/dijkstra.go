package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/roompath/astar"
	"github.com/katalvlaran/roompath/gridgraph"
)

// Dijkstra computes shortest octile distances from the source cell (Options.Source)
// to all other cells of g.
//
// Returns:
//
//   - dist: row-major slice of minimum distances (Unreachable if not reachable).
//   - prev: optional row-major predecessor slice if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u; -1 for the source
//     and unreachable cells.
//   - err:  error if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. Source must be set (ErrNoSource).
//  2. g must be non-nil (ErrNilGraph).
//  3. Source must lie inside g (ErrSourceOutOfBounds).
func Dijkstra(g *gridgraph.GridGraph, opts ...Option) ([]int64, []int, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.sourceSet {
		return nil, nil, ErrNoSource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.InBounds(cfg.SourceX, cfg.SourceY) {
		return nil, nil, fmt.Errorf("%w: (%d,%d) not in %dx%d",
			ErrSourceOutOfBounds, cfg.SourceX, cfg.SourceY, g.Width, g.Height)
	}

	// 2) Prepare data structures.
	V := g.Width * g.Height
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, V),
		prev:    make([]int, V),
		visited: make([]bool, V),
		pq:      make(cellPQ, 0, V),
	}

	// 3) Initialize algorithm state and run main loop.
	r.init()
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// PathTo rebuilds the row-major cell sequence from the source to target using the
// dist and prev slices returned by Dijkstra with WithReturnPath.
// Returns nil when target is unreachable or out of range.
func PathTo(dist []int64, prev []int, target int) []int {
	if target < 0 || target >= len(dist) || dist[target] == Unreachable {
		return nil
	}
	var path []int
	for at := target; at >= 0; at = prev[at] {
		path = append(path, at)
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *gridgraph.GridGraph // Read-only input grid.
	options Options
	dist    []int64 // cell → current best distance from Source.
	prev    []int   // cell → predecessor on the shortest path.
	visited []bool  // cell → distance finalized.
	pq      cellPQ  // Min-heap of *cellItem for lazy priority queue.
}

// init sets dist[v] = Unreachable, prev[v] = -1 and pushes Source=0 into the heap.
func (r *runner) init() {
	for v := range r.dist {
		r.dist[v] = Unreachable
		r.prev[v] = -1
	}
	src := r.g.Index(r.options.SourceX, r.options.SourceY)
	r.dist[src] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &cellItem{idx: src, dist: 0})
}

// process repeatedly extracts the closest unfinalized cell and relaxes its moves.
// It stops when the heap is empty or the minimum distance exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*cellItem)
		u := item.idx

		// Skip stale heap entries.
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// relax examines every passable neighbor of u and improves its distance if possible.
func (r *runner) relax(u int) {
	ux, uy := r.g.Coordinate(u)
	from := astar.Point{X: ux, Y: uy}
	for _, d := range r.g.NeighborOffsets() {
		vx, vy := ux+d[0], uy+d[1]
		p := r.g.Penalty(vx, vy) // 0 when out of bounds
		if p <= 0 {
			continue
		}
		v := r.g.Index(vx, vy)
		if r.visited[v] {
			continue
		}

		w := int64(astar.Distance(from, astar.Point{X: vx, Y: vy}))
		if r.options.WeightedPenalty {
			w += int64(p - 1)
		}
		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &cellItem{idx: v, dist: newDist})
	}
}

// cellItem represents a cell and its tentative distance from the source.
type cellItem struct {
	idx  int   // row-major cell index
	dist int64 // distance from source
}

// cellPQ is a min-heap of *cellItem ordered by dist ascending, using the
// lazy-decrease-key approach (stale entries are skipped via visited).
type cellPQ []*cellItem

func (pq cellPQ) Len() int           { return len(pq) }
func (pq cellPQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq cellPQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(*cellItem)) }

func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
