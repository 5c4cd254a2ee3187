package astar

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewNodeStore_InvalidDimension verifies that non-positive sizes are rejected.
func TestNewNodeStore_InvalidDimension(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
	}{
		{"ZeroWidth", 0, 3},
		{"ZeroHeight", 3, 0},
		{"NegativeWidth", -1, 2},
		{"NegativeBoth", -4, -4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := NewNodeStore(tc.width, tc.height)
			assert.ErrorIs(t, err, ErrInvalidDimension)
			assert.Nil(t, s)
		})
	}
}

// TestNewNodeStore_Layout checks that every cell holds exactly one node at its own position.
func TestNewNodeStore_Layout(t *testing.T) {
	s, err := NewNodeStore(4, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Width())
	assert.Equal(t, 3, s.Height())
	assert.Equal(t, 12, s.Len())

	seen := make(map[*Node]bool, s.Len())
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			n, err := s.Get(x, y)
			require.NoError(t, err)
			assert.Equal(t, Point{X: x, Y: y}, n.Pos)
			assert.Zero(t, n.G)
			assert.Zero(t, n.H)
			_, ok := s.Parent(n)
			assert.False(t, ok, "fresh node (%d,%d) must have no parent", x, y)
			assert.False(t, seen[n], "node (%d,%d) shared with another cell", x, y)
			seen[n] = true
		}
	}
}

// TestNodeStore_GetOutOfBounds verifies ErrOutOfBounds on every side of the grid.
func TestNodeStore_GetOutOfBounds(t *testing.T) {
	s, err := NewNodeStore(3, 2)
	require.NoError(t, err)

	for _, p := range []Point{{-1, 0}, {0, -1}, {3, 0}, {0, 2}, {3, 2}} {
		n, err := s.Get(p.X, p.Y)
		assert.ErrorIs(t, err, ErrOutOfBounds, "Get(%d,%d)", p.X, p.Y)
		assert.Nil(t, n)
	}
}

// TestNode_Ordering checks F, then H, then insertion order.
func TestNode_Ordering(t *testing.T) {
	a := &Node{G: 10, H: 20, seq: 5} // F=30
	b := &Node{G: 20, H: 14, seq: 1} // F=34
	c := &Node{G: 16, H: 14, seq: 2} // F=30, lower H than a
	d := &Node{G: 16, H: 14, seq: 3} // same as c, inserted later

	assert.True(t, a.less(b), "lower F first")
	assert.True(t, c.less(a), "equal F: lower H first")
	assert.True(t, c.less(d), "equal F and H: earlier insertion first")
	assert.False(t, d.less(c))
	assert.Equal(t, 30, a.F())
}

// TestOpenQueue_PopOrderAndFix exercises the heap with a decrease-key.
func TestOpenQueue_PopOrderAndFix(t *testing.T) {
	s, err := NewNodeStore(3, 1)
	require.NoError(t, err)
	q := &openQueue{store: s}
	heap.Init(q)

	costs := []struct{ g, h int }{{30, 10}, {10, 10}, {20, 10}}
	for i, c := range costs {
		n := s.at(i)
		n.G, n.H, n.seq = c.g, c.h, i
		heap.Push(q, i)
	}

	// Improve node 0 so it becomes the cheapest.
	s.at(0).G = 5
	heap.Fix(q, s.at(0).heapIndex)

	var order []int
	for q.Len() > 0 {
		order = append(order, heap.Pop(q).(int))
	}
	assert.Equal(t, []int{0, 1, 2}, order)
	assert.Equal(t, -1, s.at(0).heapIndex)
}
