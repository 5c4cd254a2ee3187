// Package gridgraph treats a 2D grid of movement penalties as a graph,
// serving as the read-only penalty map consumed by the astar and dijkstra searches.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid (values[y][x]) with a tunable PassThreshold.
//   - Penalty(x,y) returns 0 for impassable or out-of-range cells and the stored value otherwise.
//   - Identifies connected components of walkable cells for cheap reachability checks.
//
// Why:
//
//   - Room navigation: gate cells before running a full search.
//   - Quick rejects: two cells in different components never have a path.
//
// Complexity:
//
//   - NewGridGraph:        O(W×H), Memory: O(W×H).
//   - Penalty / InBounds:  O(1).
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - Reachable:           O(W×H×d) worst case, early exit when the target is found.
//
// Options:
//
//   - GridOptions.PassThreshold: minimum value considered walkable (≥ 1).
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNegativePenalty: a cell holds a negative value.
//   - ErrBadThreshold: PassThreshold < 1.
package gridgraph
