// Package astar implements a best-first search over policy-defined
// movement states on a cost grid, guided by the admissible
// cost-to-target estimate of heuristic.go.
//
// Complexity:
//
//   - Time:  O(S log S), where S = |positions| × |directions| × |run states|
//     is the finite policy state space: each state is finalized at most
//     once and each expansion may push one frontier entry.
//   - Space: O(S) for the visited set, best-cost map and frontier.
package astar

import (
	"container/heap"

	"github.com/katalvlaran/gridroute/grid"
)

// CheapestPath finds the minimum total cost of travelling from the
// start state to the target cell under the movement policy embodied by
// start's Node implementation, or Unreachable if the frontier empties
// without reaching an acceptable terminal state. Unreachable is a
// normal answer, not an error.
//
// Cost accounting: each step pays the entry cost of the cell stepped
// into; the start cell itself costs nothing.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. start must be non-nil (ErrNilStart).
//  3. The target (explicit or default bottom-right) must be in bounds
//     (ErrTargetOutOfBounds).
//  4. A supplied Estimate must match the target (ErrEstimateMismatch).
//
// Options customization:
//
//   - WithTarget(p):    search toward p instead of the bottom-right corner.
//   - WithEstimate(e):  reuse a precomputed heuristic table.
//   - WithMaxCost(x):   states costing more than x are not explored (x ≥ 0).
//
// Complexity: O(S log S) time, O(S) space over the policy state space S.
func CheapestPath(g *grid.Grid, start Node, opts ...Option) (int64, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the grid.
	if g == nil {
		return Unreachable, ErrNilGrid
	}

	// 3) Validate the start state.
	if start == nil {
		return Unreachable, ErrNilStart
	}

	// 4) Resolve and validate the target.
	target := cfg.Target
	if !cfg.HasTarget {
		target = g.Target()
	}
	if !g.InBounds(target) {
		return Unreachable, ErrTargetOutOfBounds
	}

	// 5) Obtain the heuristic table: reuse a supplied one or build it.
	est := cfg.Estimate
	if est != nil && est.Target() != target {
		return Unreachable, ErrEstimateMismatch
	}
	if est == nil {
		var err error
		if est, err = NewEstimate(g, target); err != nil {
			return Unreachable, err
		}
	}

	// 6) Run the search.
	r := &searcher{
		g:       g,
		est:     est,
		target:  target,
		maxCost: cfg.MaxCost,
		visited: make(map[Node]struct{}),
		best:    make(map[Node]int64),
	}

	return r.run(start), nil
}

// searcher holds the working state of a single CheapestPath invocation.
// All of it is discarded on return.
type searcher struct {
	g       *grid.Grid
	est     *Estimate
	target  grid.Position
	maxCost int64

	visited  map[Node]struct{} // states fully expanded
	best     map[Node]int64    // lowest known accumulated cost per state
	frontier statePQ           // min-heap of (priority, cost, state)
}

// run executes the A* loop and returns the minimum cost, or Unreachable
// when the frontier is exhausted.
func (r *searcher) run(start Node) int64 {
	heap.Init(&r.frontier)

	// Seed the frontier with the start state at cost 0.
	heap.Push(&r.frontier, &stateItem{
		priority: r.est.At(start.Pos()),
		cost:     0,
		node:     start,
	})
	r.best[start] = 0

	for r.frontier.Len() > 0 {
		// 1) Pop the lowest-priority entry.
		item := heap.Pop(&r.frontier).(*stateItem)
		node, cost := item.node, item.cost

		// 2) Accept a terminal state: on target with the policy's consent.
		//    The admissible heuristic guarantees the first such pop is optimal.
		if node.Pos() == r.target && node.CanStop() {
			return cost
		}

		// 3) Skip stale entries for states already finalized.
		if _, done := r.visited[node]; done {
			continue
		}

		// 4) Expand the state along all four directions; the policy decides
		//    which moves are legal.
		for _, d := range grid.Directions {
			next, ok := node.Step(r.g, d)
			if !ok {
				continue
			}
			if _, done := r.visited[next]; done {
				continue
			}

			nextCost := cost + r.g.CostAt(next.Pos())
			if nextCost > r.maxCost {
				continue
			}

			// Only a strict improvement over the known best is worth pushing.
			if known, seen := r.best[next]; seen && known <= nextCost {
				continue
			}
			r.best[next] = nextCost

			heap.Push(&r.frontier, &stateItem{
				priority: nextCost + r.est.At(next.Pos()),
				cost:     nextCost,
				node:     next,
			})
		}

		// 5) The state's cost is now final.
		r.visited[node] = struct{}{}
	}

	// Frontier exhausted: the target is not reachable under this policy.
	return Unreachable
}

// stateItem is one frontier entry: the state, its accumulated cost, and
// the ordering priority cost + estimate.
type stateItem struct {
	priority int64 // accumulated cost + admissible estimate
	cost     int64 // accumulated cost from the start state
	node     Node
}

// statePQ is a min-heap of *stateItem ordered by priority ascending.
// Ordering among equal priorities is unspecified; the visited/best
// checks make any such order produce the same minimum.
type statePQ []*stateItem

func (pq statePQ) Len() int            { return len(pq) }
func (pq statePQ) Less(i, j int) bool  { return pq[i].priority < pq[j].priority }
func (pq statePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(*stateItem)) }
func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
