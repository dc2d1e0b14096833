package astar

import (
	"container/heap"

	"github.com/katalvlaran/gridroute/grid"
)

// Estimate holds, for a fixed target cell, a lower bound on the cost of
// any legal path from each cell to that target: the exact unconstrained
// shortest cost, computed by Dijkstra run backward from the target over
// the 4-neighbor grid graph. Because a movement constraint can only
// remove paths, the unconstrained optimum never overestimates the
// constrained one, so the table is an admissible A* heuristic.
//
// An Estimate is read-only after construction and may be shared by any
// number of concurrent searches over the same grid.
type Estimate struct {
	target grid.Position
	width  int
	cost   []int64 // row-major; Unreachable where no path to target exists
}

// NewEstimate computes the cost-to-target table for g. A forward step
// into a cell pays that cell's entry cost, so the backward relaxation
// from pos to its neighbor adds the cost of pos — the cell a forward
// traversal would be entering. The target itself estimates 0.
//
// Uses the lazy-decrease-key strategy: duplicates are pushed on
// improvement and stale entries skipped via the visited flags.
//
// Returns ErrNilGrid or ErrTargetOutOfBounds for invalid inputs.
// Complexity: O(W×H log(W×H)) time, O(W×H) memory.
func NewEstimate(g *grid.Grid, target grid.Position) (*Estimate, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.InBounds(target) {
		return nil, ErrTargetOutOfBounds
	}

	n := g.Height() * g.Width()
	cost := make([]int64, n)
	for i := range cost {
		cost[i] = Unreachable
	}
	visited := make([]bool, n)

	idx := func(p grid.Position) int { return p.Row*g.Width() + p.Col }

	pq := make(cellPQ, 0, n)
	heap.Init(&pq)
	cost[idx(target)] = 0
	heap.Push(&pq, &cellItem{pos: target, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*cellItem)
		u := item.pos
		if visited[idx(u)] {
			continue // stale duplicate entry
		}

		// Relax each in-bounds neighbor: a forward step from the neighbor
		// into u pays u's entry cost.
		for _, d := range grid.Directions {
			v, ok := g.Step(u, d)
			if !ok {
				continue
			}
			cand := item.dist + g.CostAt(u)
			if cand >= cost[idx(v)] {
				continue // not a strict improvement
			}
			cost[idx(v)] = cand
			heap.Push(&pq, &cellItem{pos: v, dist: cand})
		}

		visited[idx(u)] = true
	}

	return &Estimate{target: target, width: g.Width(), cost: cost}, nil
}

// At returns the lower-bound cost from p to the target, or Unreachable
// if no unconstrained path exists. Complexity: O(1).
func (e *Estimate) At(p grid.Position) int64 {
	return e.cost[p.Row*e.width+p.Col]
}

// Target returns the cell this table was computed for.
func (e *Estimate) Target() grid.Position { return e.target }

// cellItem pairs a cell with its current backward distance to the target.
type cellItem struct {
	pos  grid.Position
	dist int64
}

// cellPQ is a min-heap of *cellItem ordered by dist ascending, used
// with the lazy-decrease-key strategy: improved distances push new
// entries and outdated ones are ignored when popped.
type cellPQ []*cellItem

func (pq cellPQ) Len() int            { return len(pq) }
func (pq cellPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq cellPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(*cellItem)) }
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
