// Package grid_test provides runnable examples for the grid package.
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridroute/grid"
)

// ExampleParse demonstrates parsing a block of digit rows into a cost
// grid and querying cells.
func ExampleParse() {
	// 1) One line per row, one digit per cell.
	g, err := grid.Parse("2413\n3215\n3255")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Dimensions and the conventional bottom-right target.
	fmt.Printf("size: %dx%d, target: %+v\n", g.Height(), g.Width(), g.Target())

	// 3) Cost of entering a cell, and a bounds-checked neighbor lookup.
	fmt.Println("cost at (1,2):", g.CostAt(grid.Position{Row: 1, Col: 2}))
	_, ok := g.Step(grid.Position{Row: 0, Col: 0}, grid.North)
	fmt.Println("can step North from origin:", ok)
	// Output:
	// size: 3x4, target: {Row:2 Col:3}
	// cost at (1,2): 1
	// can step North from origin: false
}
