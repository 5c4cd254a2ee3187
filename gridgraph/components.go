package gridgraph

// ConnectedComponents finds all contiguous regions of walkable cells
// (Penalty > 0), according to gg.Conn connectivity.
// Returns a slice of components; each component is a slice of cell-indices
// (row-major) in BFS order, components ordered by their first cell in row-major scan.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	labels, count := gg.label()
	comps := make([][]int, count)
	// Re-walk in BFS order so each component lists its seed first.
	seen := make([]bool, len(labels))
	for i, l := range labels {
		if l < 0 || seen[i] {
			continue
		}
		seen[i] = true
		queue := []int{i}
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comps[l] = append(comps[l], u)
			gg.forEachPassableNeighbor(u, func(v int) {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			})
		}
	}

	return comps
}

// ComponentLabels returns, for every row-major cell index, the id of its component
// (matching the order of ConnectedComponents) or -1 for impassable cells.
func (gg *GridGraph) ComponentLabels() []int {
	labels, _ := gg.label()
	return labels
}

// Reachable reports whether (bx,by) can be reached from (ax,ay) walking only on
// passable cells under gg.Conn. Both cells must be passable.
// The BFS stops as soon as the target is dequeued.
func (gg *GridGraph) Reachable(ax, ay, bx, by int) bool {
	if !gg.Passable(ax, ay) || !gg.Passable(bx, by) {
		return false
	}
	src, dst := gg.Index(ax, ay), gg.Index(bx, by)
	if src == dst {
		return true
	}
	seen := make([]bool, gg.Width*gg.Height)
	seen[src] = true
	queue := []int{src}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == dst {
			return true
		}
		gg.forEachPassableNeighbor(u, func(v int) {
			if !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		})
	}

	return false
}

// label assigns component ids in row-major seed order.
func (gg *GridGraph) label() ([]int, int) {
	total := gg.Width * gg.Height
	labels := make([]int, total)
	for i := range labels {
		labels[i] = -1
	}
	count := 0
	for i0 := 0; i0 < total; i0++ {
		x, y := gg.Coordinate(i0)
		if labels[i0] >= 0 || !gg.Passable(x, y) {
			continue
		}
		// BFS to flood the component
		labels[i0] = count
		queue := []int{i0}
		for qi := 0; qi < len(queue); qi++ {
			gg.forEachPassableNeighbor(queue[qi], func(v int) {
				if labels[v] < 0 {
					labels[v] = count
					queue = append(queue, v)
				}
			})
		}
		count++
	}

	return labels, count
}

// forEachPassableNeighbor calls fn with the index of every in-bounds, passable
// neighbor of cell u.
func (gg *GridGraph) forEachPassableNeighbor(u int, fn func(v int)) {
	ux, uy := gg.Coordinate(u)
	for _, d := range gg.neighborOffsets {
		vx, vy := ux+d[0], uy+d[1]
		if !gg.Passable(vx, vy) {
			continue
		}
		fn(gg.Index(vx, vy))
	}
}
