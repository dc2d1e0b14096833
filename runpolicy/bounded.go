package runpolicy

import (
	"github.com/katalvlaran/gridroute/grid"

	"github.com/katalvlaran/gridroute/astar"
)

// Bounded is the search state of the bounded-run policy: the mover may
// take at most 3 consecutive steps in one direction, may never reverse,
// and may always stop on the target. Bounded is an immutable comparable
// value; its equality (position, direction, remaining allowance) is the
// search's visited identity.
type Bounded struct {
	pos       grid.Position
	dir       grid.Direction
	remaining uint8 // straight steps still allowed in dir
}

// NewBounded returns the start state at pos with a full straight-step
// allowance, facing South. The South convention only rules out an
// initial move North, which is safe solely because the conventional
// start is the top-left corner, where North leaves the grid anyway; it
// is not a generally correct rule for arbitrary start positions.
func NewBounded(pos grid.Position) Bounded {
	return Bounded{pos: pos, dir: grid.South, remaining: boundedCap}
}

// Pos returns the cell this state occupies.
func (n Bounded) Pos() grid.Position { return n.pos }

// Dir returns the direction of travel used to reach Pos.
func (n Bounded) Dir() grid.Direction { return n.dir }

// CanStop always reports true: the bounded mover may halt anywhere.
func (n Bounded) CanStop() bool { return true }

// Step returns the successor one cell along d, or false if the move is
// illegal: off the grid, a 180° reversal, or a straight continuation
// with no allowance left. Continuing straight decrements the allowance;
// turning resets it to boundedRefill.
// Complexity: O(1).
func (n Bounded) Step(g *grid.Grid, d grid.Direction) (astar.Node, bool) {
	next, ok := g.Step(n.pos, d)
	if !ok {
		return nil, false
	}
	if d == n.dir.Opposite() {
		return nil, false
	}
	if d == n.dir && n.remaining == 0 {
		return nil, false
	}

	remaining := uint8(boundedRefill)
	if d == n.dir {
		remaining = n.remaining - 1
	}

	return Bounded{pos: next, dir: d, remaining: remaining}, true
}
