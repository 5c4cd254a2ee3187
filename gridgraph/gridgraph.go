package gridgraph

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}
	return "conn4"
}

// GridOptions contains tunable parameters for the penalty grid.
type GridOptions struct {
	// PassThreshold specifies the minimum cell value considered walkable.
	PassThreshold int
	// Conn chooses 4- or 8-directional connectivity for component analysis.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// PassThreshold=1 (0 is impassable, any positive value is walkable), Conn=Conn8.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		PassThreshold: 1,
		Conn:          Conn8,
	}
}

// GridGraph treats a 2D penalty grid as a graph. It is immutable once built,
// so it can back concurrent searches.
// Width and Height define dimensions; CellValues[y][x] holds the original input value.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	PassThreshold   int
	neighborOffsets [][2]int
}

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrNegativePenalty for values below zero
// and ErrBadThreshold if opts.PassThreshold < 1.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if opts.PassThreshold < 1 {
		return nil, ErrBadThreshold
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		for _, v := range row {
			if v < 0 {
				return nil, ErrNegativePenalty
			}
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		PassThreshold:   opts.PassThreshold,
		neighborOffsets: offsets,
	}, nil
}

// From2D builds a GridGraph with the default threshold and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(values, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Penalty returns the movement penalty at (x,y): 0 when the cell is out of range or
// below PassThreshold, the stored value otherwise.
// Complexity: O(1).
func (gg *GridGraph) Penalty(x, y int) int {
	if !gg.InBounds(x, y) {
		return 0
	}
	v := gg.CellValues[y][x]
	if v < gg.PassThreshold {
		return 0
	}
	return v
}

// Passable reports whether (x,y) can be entered.
func (gg *GridGraph) Passable(x, y int) bool {
	return gg.Penalty(x, y) > 0
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Should be used in all adjacency traversals to avoid branching.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
