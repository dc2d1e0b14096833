package runpolicy

import (
	"github.com/katalvlaran/gridroute/grid"

	"github.com/katalvlaran/gridroute/astar"
)

// MinRun is the search state of the minimum-run-with-cap policy: once
// moving, the mover must complete at least 4 consecutive steps before
// it may turn or stop, and must turn after 10. MinRun is an immutable
// comparable value; its equality (position, direction, consecutive-step
// count) is the search's visited identity.
type MinRun struct {
	pos grid.Position
	dir grid.Direction
	run uint8 // consecutive steps already taken in dir
}

// NewMinRun returns the start state at pos with a zero run, facing
// South. The same top-left-start caveat as NewBounded applies to the
// South convention. The initial state is special twice over: it may
// move in any non-reverse direction despite its run being below the
// minimum, and it cannot stop until a run of minRunTurn is complete —
// on a grid where start equals target that makes the target unreachable.
func NewMinRun(pos grid.Position) MinRun {
	return MinRun{pos: pos, dir: grid.South, run: 0}
}

// Pos returns the cell this state occupies.
func (n MinRun) Pos() grid.Position { return n.pos }

// Dir returns the direction of travel used to reach Pos.
func (n MinRun) Dir() grid.Direction { return n.dir }

// CanStop reports whether the minimum run has been satisfied; states
// mid-run may pass over the target but not halt on it.
func (n MinRun) CanStop() bool { return n.run >= minRunTurn }

// Step returns the successor one cell along d, or false if the move is
// illegal: off the grid, a 180° reversal, a straight continuation at
// the maxRun cap, or a turn before minRunTurn consecutive steps. The
// initial state (run 0) is exempt from the turn minimum. Continuing
// straight increments the run; turning resets it to 1.
// Complexity: O(1).
func (n MinRun) Step(g *grid.Grid, d grid.Direction) (astar.Node, bool) {
	next, ok := g.Step(n.pos, d)
	if !ok {
		return nil, false
	}
	if d == n.dir.Opposite() {
		return nil, false
	}
	if d == n.dir && n.run >= maxRun {
		return nil, false
	}
	if d != n.dir && n.run < minRunTurn && n.run != 0 {
		return nil, false
	}

	run := uint8(1)
	if d == n.dir {
		run = n.run + 1
	}

	return MinRun{pos: next, dir: d, run: run}, true
}
