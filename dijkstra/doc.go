// Package dijkstra provides an exhaustive single-source distance field over a
// movement-penalty grid.
//
// Overview:
//
//   - Dijkstra expands cells of a gridgraph.GridGraph in order of increasing octile
//     cost from the source, using the grid's neighbor offsets (Conn4 or Conn8).
//   - Cells with penalty 0 are walls; the source cell itself is never gated.
//   - Distances and predecessors are flat slices indexed row-major (gg.Index(x, y)).
//
// When to use:
//
//   - As an exact oracle for astar.FindPath (same step costs, no heuristic).
//   - To answer "how far is every cell from here" for spawn placement or
//     flee behaviour, where one search serves many targets.
//
// Complexity:
//
//   - Time:  O(V log V), V = W×H; each cell has at most 8 incident moves.
//   - Space: O(V) plus O(E) heap entries under lazy decrease-key.
//
// Error handling (sentinel errors):
//
//   - ErrNoSource, ErrNilGraph, ErrSourceOutOfBounds are returned by Dijkstra.
//   - ErrBadMaxDistance is raised (via panic) by WithMaxDistance.
//
// Thread safety:
//
//   - GridGraph is immutable, so concurrent Dijkstra calls on the same grid are safe.
package dijkstra
