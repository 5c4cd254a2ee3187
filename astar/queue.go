package astar

// openQueue is a min-heap of node indices into a NodeStore, ordered by Node.less.
// Each node records its heap position so an improved G can be fixed in place
// (decrease-key) instead of pushing duplicates.
type openQueue struct {
	store *NodeStore
	items []int
}

// Len returns the number of items in the heap.
func (q *openQueue) Len() int { return len(q.items) }

// Less compares the referenced nodes.
func (q *openQueue) Less(i, j int) bool {
	return q.store.at(q.items[i]).less(q.store.at(q.items[j]))
}

// Swap swaps two elements and keeps their recorded heap positions current.
func (q *openQueue) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.store.at(q.items[i]).heapIndex = i
	q.store.at(q.items[j]).heapIndex = j
}

// Push adds a node index; called by heap.Push.
func (q *openQueue) Push(x any) {
	idx := x.(int)
	q.store.at(idx).heapIndex = len(q.items)
	q.items = append(q.items, idx)
}

// Pop removes the last element; called by heap.Pop.
func (q *openQueue) Pop() any {
	old := q.items
	n := len(old)
	idx := old[n-1]
	q.items = old[:n-1]
	q.store.at(idx).heapIndex = -1

	return idx
}
