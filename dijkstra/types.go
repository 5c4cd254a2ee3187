// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on penalty grids.
//
// Dijkstra computes the minimum octile cost from a single source cell to every
// other reachable cell of a gridgraph.GridGraph. Step costs match the astar package
// (orthogonal 10, diagonal 14), so the distance field is an exact oracle for A*.
//
// Options:
//
//	– Source:              starting cell (must lie inside the grid).
//	– ReturnPath:          if true, return the predecessor slice for path reconstruction.
//	– MaxDistance:         optional cap on distances to explore; cells beyond this are skipped.
//	– WeightedPenalty:     add (penalty-1) when entering a cell, as astar.WithWeightedPenalty.
//
// Errors (sentinel):
//
//	– ErrNoSource          if Source was never set.
//	– ErrNilGraph          if the provided grid pointer is nil.
//	– ErrSourceOutOfBounds if the source cell lies outside the grid.
//	– ErrBadMaxDistance    if MaxDistance < 0 (panic from WithMaxDistance).
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that no source cell was configured.
	ErrNoSource = errors.New("dijkstra: source cell not set")

	// ErrNilGraph indicates that a nil *gridgraph.GridGraph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: grid is nil")

	// ErrSourceOutOfBounds indicates that the source cell lies outside the grid.
	ErrSourceOutOfBounds = errors.New("dijkstra: source cell out of bounds")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Unreachable is the distance reported for cells that cannot be reached.
const Unreachable = math.MaxInt64

// Options configures the behavior of the Dijkstra algorithm.
//
// SourceX, SourceY – starting cell; only honoured once set through Source.
// ReturnPath       – if true, return the predecessor slice; otherwise prev is nil.
// MaxDistance      – optional cap on distances to explore (cells beyond are skipped).
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// WeightedPenalty  – if true, entering a cell costs an extra (penalty-1).
type Options struct {
	SourceX, SourceY int
	ReturnPath       bool
	MaxDistance      int64
	WeightedPenalty  bool

	sourceSet bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting cell. Must be called.
func Source(x, y int) Option {
	return func(o *Options) {
		o.SourceX, o.SourceY = x, y
		o.sourceSet = true
	}
}

// WithReturnPath enables generation of the predecessor slice in the result.
// If not set (default), prev == nil.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Cells whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithWeightedPenalty adds (penalty-1) to the cost of entering every cell.
func WithWeightedPenalty() Option {
	return func(o *Options) {
		o.WeightedPenalty = true
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
// no source, no predecessor slice, no distance cap, penalty as passability gate only.
func DefaultOptions() Options {
	return Options{
		ReturnPath:      false,
		MaxDistance:     math.MaxInt64,
		WeightedPenalty: false,
	}
}
