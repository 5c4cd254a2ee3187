package astar

import "fmt"

// noParent marks a Node without predecessor.
const noParent = -1

// nodeState tracks open/closed membership without auxiliary sets.
type nodeState uint8

const (
	stateUnseen nodeState = iota
	stateOpen
	stateClosed
)

// Node is the search state of one grid cell.
//
// The parent link is an index into the owning NodeStore, so the parent chain
// forms a tree rooted at the start node and never outlives the store.
type Node struct {
	Pos Point
	G   int // accumulated cost from the start cell
	H   int // heuristic estimate to the target cell

	parent    int
	state     nodeState
	seq       int // insertion order into the open queue, last tie-break
	heapIndex int
}

// F returns G + H.
func (n *Node) F() int { return n.G + n.H }

// less reports whether n orders before o in the open queue:
// F ascending, then H ascending, then insertion order.
func (n *Node) less(o *Node) bool {
	if nf, of := n.F(), o.F(); nf != of {
		return nf < of
	}
	if n.H != o.H {
		return n.H < o.H
	}
	return n.seq < o.seq
}

// NodeStore is a fixed-size arena holding exactly one Node per cell.
// It is built fresh for every search and is not safe for concurrent use.
type NodeStore struct {
	width, height int
	nodes         []Node
}

// NewNodeStore allocates width*height nodes in row-major order, each with its
// position set, zero costs and no parent.
// Returns ErrInvalidDimension if width or height is not positive.
func NewNodeStore(width, height int) (*NodeStore, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimension, width, height)
	}
	nodes := make([]Node, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			n := &nodes[y*width+x]
			n.Pos = Point{X: x, Y: y}
			n.parent = noParent
			n.heapIndex = -1
		}
	}

	return &NodeStore{width: width, height: height, nodes: nodes}, nil
}

// Width returns the number of columns.
func (s *NodeStore) Width() int { return s.width }

// Height returns the number of rows.
func (s *NodeStore) Height() int { return s.height }

// Len returns the number of nodes (width*height).
func (s *NodeStore) Len() int { return len(s.nodes) }

// Get returns the node at (x,y), or ErrOutOfBounds.
func (s *NodeStore) Get(x, y int) (*Node, error) {
	if !s.inBounds(x, y) {
		return nil, fmt.Errorf("%w: (%d,%d) not in %dx%d", ErrOutOfBounds, x, y, s.width, s.height)
	}

	return &s.nodes[s.index(x, y)], nil
}

// Parent returns the position of n's predecessor, if any.
// n must belong to s.
func (s *NodeStore) Parent(n *Node) (Point, bool) {
	if n.parent == noParent {
		return Point{}, false
	}

	return s.nodes[n.parent].Pos, true
}

func (s *NodeStore) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// index maps (x,y) to a row-major index: y*width + x.
func (s *NodeStore) index(x, y int) int {
	return y*s.width + x
}

// at returns the node at a row-major index.
func (s *NodeStore) at(i int) *Node {
	return &s.nodes[i]
}
