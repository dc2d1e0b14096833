// Package runpolicy provides two concrete movement policies for the
// astar search engine, modeling vehicles whose legal turns depend on
// how long they have been travelling in a straight line.
//
// What:
//
//   - Bounded: at most 3 consecutive steps in one direction, never a
//     180° reversal, free to turn or stop at any time. A turn restores
//     a 2-step straight allowance (the turn itself is step one of the
//     new run).
//   - MinRun: must complete at least 4 consecutive steps before turning
//     or stopping, and must turn after 10. The initial state is exempt
//     from the turn minimum so the very first move may go any
//     non-reverse direction.
//   - CheapestBounded / CheapestMinRun: the two entry operations,
//     solving from the top-left corner to the bottom-right corner.
//
// Why:
//
//   - Heavy or momentum-bound movers (carts, convoys, aircraft taxiing)
//     cannot weave cell by cell; run-length constraints capture that
//     while the astar engine keeps route finding exact.
//
// Conventions:
//
//   - Both start states face South, so the only forbidden first move is
//     North. That is sound solely because the conventional start is the
//     top-left corner, where North exits the grid; the constructors
//     document this caveat for anyone supplying another start.
//   - Policy constants (3, 2, 4, 10) are compile-time properties of
//     each policy type, not configuration.
//
// Determinism:
//
//   - Both solvers are pure functions of the grid: no retained state,
//     identical inputs give identical costs.
//
// Errors:
//
//   - None of its own; the solvers surface the astar sentinel errors
//     (ErrNilGrid, ErrTargetOutOfBounds, …) and report an impossible
//     route as astar.Unreachable, which is an answer, not an error.
//
// See also:
//
//   - astar.CheapestPath and astar.Node for the engine contract.
//   - grid.Parse for building the cost grid from digit text.
package runpolicy
