// Package gridroute finds cheapest routes across rectangular cost grids
// for movers whose legal turns depend on how they have been travelling.
//
// 🚀 What is gridroute?
//
//	A small, focused library built from three pieces:
//		• grid:      immutable digit-text cost grids, positions & directions
//		• astar:     an A* engine over pluggable movement policies, guided by
//		             an exact unconstrained cost-to-target table (admissible
//		             by construction)
//		• runpolicy: two ready-made policies — bounded straight runs, and
//		             minimum runs with a hard cap
//
// ✨ Why choose gridroute?
//
//   - Exact answers – the heuristic is the true unconstrained optimum,
//     so the search never settles for an approximation
//   - Pluggable – implement astar.Node to bring your own movement rules
//   - Pure Go – no cgo, no runtime deps, pure functions throughout
//
// Quick start:
//
//	g, err := grid.Parse(input)                // digit rows → cost grid
//	cost, err := runpolicy.CheapestBounded(g)  // top-left → bottom-right
//	if cost == astar.Unreachable { ... }       // an answer, not an error
//
// See each subpackage's doc.go for contracts, complexity and errors.
//
//	go get github.com/katalvlaran/gridroute
package gridroute
