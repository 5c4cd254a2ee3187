// Package astar defines core types, configuration options and sentinel errors
// for the grid A* search.
//
// Options:
//
//	– WithStepBudget:      cap on node expansions; exceeding it yields ErrBudgetExhausted.
//	– WithWeightedPenalty: add (penalty-1) to every step into a cell.
//	– WithLogger:          zap logger for search tracing (no-op by default).
//
// Errors (sentinel):
//
//	– ErrInvalidDimension if the grid width or height is not positive.
//	– ErrOutOfBounds      if a requested cell lies outside the grid.
//	– ErrNilPenalty       if no penalty lookup is supplied.
//	– ErrNilTransform     if no grid→world transform is supplied.
//	– ErrBudgetExhausted  if WithStepBudget was exceeded before the search settled.
//	– ErrBadStepBudget    if WithStepBudget receives a non-positive value (panic).
package astar

import (
	"errors"

	"go.uber.org/zap"
)

// Sentinel errors returned by the A* implementation.
var (
	// ErrInvalidDimension indicates a non-positive grid width or height.
	ErrInvalidDimension = errors.New("astar: grid width and height must be positive")

	// ErrOutOfBounds indicates a cell coordinate outside [0,width)×[0,height).
	ErrOutOfBounds = errors.New("astar: cell out of bounds")

	// ErrNilPenalty indicates that FindPath was called without a penalty lookup.
	ErrNilPenalty = errors.New("astar: penalty lookup is nil")

	// ErrNilTransform indicates that FindPath was called without a coordinate transform.
	ErrNilTransform = errors.New("astar: coordinate transform is nil")

	// ErrBudgetExhausted indicates the search hit its expansion budget
	// before reaching the target or exhausting the open set.
	ErrBudgetExhausted = errors.New("astar: step budget exhausted")

	// ErrBadStepBudget indicates a non-positive value passed to WithStepBudget.
	ErrBadStepBudget = errors.New("astar: step budget must be positive")
)

// Point is a cell coordinate local to the room's bounding box (0-based).
type Point struct {
	X, Y int
}

// WorldPoint is a world-space position produced by a CoordTransform.
type WorldPoint struct {
	X, Y float64
}

// Bounds gives the grid extent in cells.
type Bounds struct {
	Width, Height int
}

// Contains reports whether p lies inside [0,Width)×[0,Height).
func (b Bounds) Contains(p Point) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// PenaltyLookup returns the movement penalty of a local cell.
// Zero marks the cell impassable; any positive value is walkable.
type PenaltyLookup interface {
	Penalty(x, y int) int
}

// PenaltyFunc adapts an ordinary function to PenaltyLookup.
type PenaltyFunc func(x, y int) int

// Penalty calls f(x, y).
func (f PenaltyFunc) Penalty(x, y int) int { return f(x, y) }

// CoordTransform maps a local grid cell to a world-space point,
// including any mid-cell offset.
type CoordTransform func(cell Point) WorldPoint

// Result contains the outcome of a search.
//
// Path and Cells are ordered start first, target last. When Found is false both are nil
// and the target is unreachable; this is a legitimate outcome, not an error.
type Result struct {
	Path     []WorldPoint // world-space waypoints
	Cells    []Point      // local grid cells backing Path
	Cost     int          // total octile cost of the path
	Expanded int          // number of nodes popped from the open set
	Found    bool
}

// Options configures the behavior of FindPath.
//
// StepBudget      – max node expansions, 0 means unbounded.
// WeightedPenalty – when true, entering a cell costs an extra (penalty-1).
// Logger          – destination for debug traces.
type Options struct {
	StepBudget      int
	WeightedPenalty bool
	Logger          *zap.Logger
}

// Option represents a functional option for configuring FindPath.
type Option func(*Options)

// WithStepBudget limits the number of node expansions.
// Must pass a positive value; otherwise it panics with ErrBadStepBudget.
func WithStepBudget(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadStepBudget.Error())
		}
		o.StepBudget = n
	}
}

// WithWeightedPenalty turns the penalty from a pure passability gate into
// an additive terrain cost: stepping into a cell with penalty p costs an extra p-1.
// A uniform penalty of 1 therefore behaves exactly like the default.
func WithWeightedPenalty() Option {
	return func(o *Options) {
		o.WeightedPenalty = true
	}
}

// WithLogger routes search traces to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns the options used when none are supplied:
// no step budget, penalty as passability gate only, no-op logger.
func DefaultOptions() Options {
	return Options{
		StepBudget:      0,
		WeightedPenalty: false,
		Logger:          zap.NewNop(),
	}
}
