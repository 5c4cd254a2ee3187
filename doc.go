// Package roompath is a grid pathfinding toolkit for tile-based room templates.
//
// What is inside?
//
//	astar/     - A* over a bounded grid with octile step costs and per-cell penalties
//	gridgraph/ - penalty grid with 4/8 connectivity, connected components, reachability
//	dijkstra/  - single-source distance fields over a gridgraph (flow fields, oracles)
//	room/      - rooms placed in a world grid: YAML templates, hot reload, waypoint paths
//	cmd/roompath - command-line front end
//
// Costs are integers: 10 per straight step, 14 per diagonal step. A cell whose
// penalty is 0 or less is a wall.
//
// Quick ASCII example (3x3, centre blocked):
//
//	S . .
//	. # .
//	. . G
//
// S -> G costs 34 and walks around the wall through 4 cell centres.
//
//	go get github.com/katalvlaran/roompath
package roompath
