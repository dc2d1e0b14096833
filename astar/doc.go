// Package astar provides a best-first shortest-path engine for cost
// grids, parameterized by a pluggable movement policy and guided by an
// exact unconstrained cost-to-target table.
//
// Overview:
//
//   - Estimate precomputes, via Dijkstra run backward from the target,
//     the exact cheapest unconstrained cost from every cell to the
//     target. Constraints only remove paths, so this never overestimates
//     the constrained optimum: a textbook admissible heuristic.
//   - CheapestPath runs A* over policy states (position + direction +
//     run-length bookkeeping), ordering the frontier by accumulated cost
//     plus the estimate and finalizing each state at most once.
//   - Node is the policy contract: it enumerates legal successor states
//     and decides when a state on the target may actually stop there.
//
// When to use:
//
//   - Cheapest-route queries where the mover's legal turns depend on how
//     it arrived (momentum, turn radius, mandatory straight runs); see
//     the runpolicy package for two ready-made policies.
//   - As a plain grid A* by supplying a policy with no run constraints.
//
// Key properties:
//
//   - Node identity includes the policy's run state, so the visited
//     shortcut never prunes a genuinely distinct, cheaper approach to
//     the same cell — the reason plain per-cell Dijkstra is wrong here.
//   - Unreachable (math.MaxInt64) is a normal completed-search answer,
//     mirroring the unreachable-distance convention of dist maps; errors
//     are reserved for invalid inputs.
//   - A search is pure: no retained state, identical inputs give
//     identical answers, and read-only inputs (Grid, Estimate) may be
//     shared across concurrent searches.
//
// Performance:
//
//   - NewEstimate:  O(W×H log(W×H)) time, O(W×H) space.
//   - CheapestPath: O(S log S) time and O(S) space over the finite
//     policy state space S = positions × directions × run states.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:           nil *grid.Grid.
//   - ErrNilStart:          nil start Node.
//   - ErrTargetOutOfBounds: target outside the grid.
//   - ErrEstimateMismatch:  supplied Estimate built for another target.
//   - ErrBadMaxCost:        (via panic) negative WithMaxCost value.
//
// See also:
//
//   - grid.Grid: the immutable cost grid and coordinate types.
//   - runpolicy: the bounded-run and minimum-run movement policies.
package astar
