// Package astar defines the node contract, configuration options and
// sentinel errors for the constrained grid search.
//
// The search is parameterized by a movement policy: a Node
// implementation decides which steps are legal from a given state and
// when the state may be treated as terminal. The engine itself only
// orders states by accumulated cost plus an admissible estimate.
//
// Errors (sentinel):
//
//   - ErrNilGrid            if the provided grid pointer is nil.
//   - ErrNilStart           if the provided start node is nil.
//   - ErrTargetOutOfBounds  if the target lies outside the grid.
//   - ErrEstimateMismatch   if a supplied Estimate was built for a
//     different target than the search's.
//   - ErrBadMaxCost         if WithMaxCost is given a negative cap.
package astar

import (
	"errors"
	"math"

	"github.com/katalvlaran/gridroute/grid"
)

// Unreachable is the cost reported when no legal path exists. It is a
// normal outcome of a completed search, not an error.
const Unreachable = int64(math.MaxInt64)

// Sentinel errors returned by the astar package.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed in.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrNilStart indicates a nil start Node was passed to CheapestPath.
	ErrNilStart = errors.New("astar: start node is nil")

	// ErrTargetOutOfBounds indicates the target position lies outside the grid.
	ErrTargetOutOfBounds = errors.New("astar: target position out of grid bounds")

	// ErrEstimateMismatch indicates the supplied Estimate was precomputed
	// for a target other than the one the search is aiming at.
	ErrEstimateMismatch = errors.New("astar: estimate target does not match search target")

	// ErrBadMaxCost indicates MaxCost was set to a negative value,
	// which is not meaningful for a cost cap.
	ErrBadMaxCost = errors.New("astar: MaxCost must be non-negative")
)

// Node is one state of a constrained search: a position, the direction
// of travel used to reach it, and whatever run-length bookkeeping the
// movement policy needs. Node identity (as a map key) is the search's
// visited/best-cost identity, so implementations must be comparable
// value types whose equality covers position, direction and run state.
//
// A Node is created by its policy, never mutated, and dropped once the
// search's bookkeeping releases it.
type Node interface {
	// Pos returns the cell this state occupies.
	Pos() grid.Position

	// Dir returns the direction of travel used to reach Pos.
	Dir() grid.Direction

	// CanStop reports whether this state may be treated as terminal when
	// its position equals the search target.
	CanStop() bool

	// Step returns the successor state one cell along d, or false if the
	// move is illegal for this policy (out of bounds, 180° reversal, or
	// a violated run-length constraint).
	Step(g *grid.Grid, d grid.Direction) (Node, bool)
}

// Options configures a single CheapestPath invocation.
//
// Target   – destination cell; defaults to the grid's bottom-right corner.
// Estimate – optional precomputed heuristic table; when nil the search
// builds its own. Supplying one lets several searches over the same
// grid/target pair share the precomputation.
// MaxCost  – paths accumulating more than this are not explored.
// Must be ≥ 0. Default is math.MaxInt64 (no cap).
type Options struct {
	Target    grid.Position // Destination cell of the search
	HasTarget bool          // Whether Target was set explicitly
	Estimate  *Estimate     // Optional shared heuristic table
	MaxCost   int64         // Maximum accumulated cost to explore
}

// Option represents a functional option for configuring CheapestPath.
type Option func(*Options)

// WithTarget sets the destination cell. Validated against the grid
// bounds inside CheapestPath (ErrTargetOutOfBounds).
func WithTarget(p grid.Position) Option {
	return func(o *Options) {
		o.Target = p
		o.HasTarget = true
	}
}

// WithEstimate supplies a precomputed heuristic table. The table's
// target must match the search target; a mismatch yields
// ErrEstimateMismatch at search time.
func WithEstimate(e *Estimate) Option {
	return func(o *Options) {
		o.Estimate = e
	}
}

// WithMaxCost caps exploration: successor states whose accumulated cost
// would exceed max are never pushed onto the frontier.
// Must pass a non-negative value; negative values cause ErrBadMaxCost.
// Default (if not set) is math.MaxInt64 (no cap).
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// DefaultOptions returns an Options struct initialized with the
// defaults used when no functional options override them.
//
// Defaults:
//   - Target:   unset (resolved to the grid's bottom-right corner).
//   - Estimate: nil (computed per search).
//   - MaxCost:  math.MaxInt64 (no cap).
func DefaultOptions() Options {
	return Options{
		MaxCost: math.MaxInt64,
	}
}
