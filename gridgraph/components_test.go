// File: gridgraph/components_test.go
package gridgraph

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConnectedComponents_Simple4 tests ConnectedComponents on a simple 4×3 grid
// with orthogonal connectivity (Conn4).
//
// Grid (0 = blocked, >0 = walkable):
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
//
// Expected: 2 regions of sizes 4 and 2.
//
// Complexity: O(W·H·4) time, O(W·H) memory.
func TestConnectedComponents_Simple4(t *testing.T) {
	gg, err := From2D([][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
	}, Conn4)
	require.NoError(t, err)

	comps := gg.ConnectedComponents()
	require.Len(t, comps, 2)

	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	assert.Equal(t, []int{2, 4}, sizes)
}

// TestConnectedComponents_Diagonal8 tests ConnectedComponents on a 5×5 grid
// using diagonal connectivity (Conn8) to catch “touching corners” regions.
//
// Grid:
//
//	1 0 0 0 1
//	0 1 0 1 0
//	0 0 1 0 0
//	0 1 0 1 0
//	1 0 0 0 1
//
// With Conn8, all 9 walkable cells connect through diagonal hops into a single region.
//
// Complexity: O(W·H·8) time, O(W·H) memory.
func TestConnectedComponents_Diagonal8(t *testing.T) {
	gg, err := From2D([][]int{
		{1, 0, 0, 0, 1},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	}, Conn8)
	require.NoError(t, err)

	comps := gg.ConnectedComponents()
	require.Len(t, comps, 1)
	assert.Len(t, comps[0], 9)
}

// TestConnectedComponents_EmptyAndAllBlocked tests edge cases:
//   - completely blocked grid → zero components
//   - single walkable cell → one component of size 1
func TestConnectedComponents_EmptyAndAllBlocked(t *testing.T) {
	gg1, err := From2D([][]int{{0, 0}, {0, 0}}, Conn4)
	require.NoError(t, err)
	assert.Empty(t, gg1.ConnectedComponents())

	gg2, err := From2D([][]int{{0, 1}}, Conn4)
	require.NoError(t, err)
	comps := gg2.ConnectedComponents()
	require.Len(t, comps, 1)
	assert.Equal(t, []int{1}, comps[0])
}

// TestComponentLabels checks that labels agree with ConnectedComponents.
func TestComponentLabels(t *testing.T) {
	gg, err := From2D([][]int{
		{1, 0, 2},
		{1, 0, 2},
		{0, 0, 0},
	}, Conn8)
	require.NoError(t, err)

	labels := gg.ComponentLabels()
	assert.Equal(t, []int{0, -1, 1, 0, -1, 1, -1, -1, -1}, labels)
	for id, comp := range gg.ConnectedComponents() {
		for _, i := range comp {
			assert.Equal(t, id, labels[i])
		}
	}
}

// TestReachable covers walls, diagonal gaps and blocked endpoints.
func TestReachable(t *testing.T) {
	values := [][]int{
		{1, 1, 0, 1},
		{1, 1, 0, 1},
		{0, 0, 1, 1},
	}
	g8, err := From2D(values, Conn8)
	require.NoError(t, err)
	g4, err := From2D(values, Conn4)
	require.NoError(t, err)

	assert.True(t, g8.Reachable(0, 0, 3, 0), "diagonal (1,1)→(2,2) joins both sides under Conn8")
	assert.False(t, g4.Reachable(0, 0, 3, 0), "no orthogonal link under Conn4")
	assert.True(t, g4.Reachable(0, 0, 0, 0))
	assert.False(t, g8.Reachable(0, 0, 2, 0), "blocked target")
	assert.False(t, g8.Reachable(2, 1, 0, 0), "blocked source")
}
