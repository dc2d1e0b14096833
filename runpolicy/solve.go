package runpolicy

import (
	"github.com/katalvlaran/gridroute/astar"
	"github.com/katalvlaran/gridroute/grid"
)

// CheapestBounded returns the minimum total cost of travelling from the
// top-left cell to the bottom-right cell of g under the bounded-run
// policy, or astar.Unreachable if no legal route exists. Options pass
// through to astar.CheapestPath, so callers may share a precomputed
// Estimate between this and CheapestMinRun via astar.WithEstimate.
// Complexity: O(S log S) over the policy state space.
func CheapestBounded(g *grid.Grid, opts ...astar.Option) (int64, error) {
	return astar.CheapestPath(g, NewBounded(grid.Position{}), opts...)
}

// CheapestMinRun returns the minimum total cost of travelling from the
// top-left cell to the bottom-right cell of g under the
// minimum-run-with-cap policy, or astar.Unreachable if no legal route
// exists (including the degenerate 1×1 grid, where the minimum run can
// never be satisfied). Options pass through to astar.CheapestPath.
// Complexity: O(S log S) over the policy state space.
func CheapestMinRun(g *grid.Grid, opts ...astar.Option) (int64, error) {
	return astar.CheapestPath(g, NewMinRun(grid.Position{}), opts...)
}
