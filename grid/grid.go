// Package grid provides the immutable rectangular cost grid consumed by
// the gridroute search packages. Each cell holds the non-negative cost
// of entering that cell; the grid never changes after construction.
package grid

import (
	"fmt"
	"strings"
)

// Grid is an immutable rectangular array of per-cell entry costs,
// 0-indexed with the origin at the top-left corner. Costs are stored
// row-major. Construct with Parse; the zero value is not usable.
type Grid struct {
	height, width int
	cells         []int64 // row-major entry costs, one per cell
}

// Parse builds a Grid from a block of text: one line per row, each
// character an ASCII digit '0'–'9' denoting that cell's entry cost.
// A trailing newline is optional and CRLF line endings are accepted.
// Returns ErrEmptyGrid for empty input, ErrRaggedGrid if line lengths
// differ, and ErrBadCell for any non-digit byte.
// Complexity: O(W×H) time and memory.
func Parse(input string) (*Grid, error) {
	lines := strings.Split(strings.TrimRight(input, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	if len(lines) == 1 && lines[0] == "" {
		return nil, ErrEmptyGrid
	}

	h, w := len(lines), len(lines[0])
	if w == 0 {
		return nil, ErrEmptyGrid
	}

	cells := make([]int64, 0, h*w)
	for r, line := range lines {
		if len(line) != w {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrRaggedGrid, r, len(line), w)
		}
		for c := 0; c < w; c++ {
			b := line[c]
			if b < '0' || b > '9' {
				return nil, fmt.Errorf("%w: byte %q at row %d, column %d", ErrBadCell, b, r, c)
			}
			cells = append(cells, int64(b-'0'))
		}
	}

	return &Grid{height: h, width: w, cells: cells}, nil
}

// Height returns the number of rows.
// Complexity: O(1).
func (g *Grid) Height() int { return g.height }

// Width returns the number of columns.
// Complexity: O(1).
func (g *Grid) Width() int { return g.width }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// CostAt returns the cost of entering cell p. It panics if p is out of
// bounds: callers are expected to have bounds-checked p via InBounds or
// Step, so an out-of-bounds access is a programming error, not input.
// Complexity: O(1).
func (g *Grid) CostAt(p Position) int64 {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("grid: CostAt out of bounds: %+v on %dx%d grid", p, g.height, g.width))
	}

	return g.cells[p.Row*g.width+p.Col]
}

// Step returns the neighbor of p one cell along d and whether that
// neighbor lies within the grid.
// Complexity: O(1).
func (g *Grid) Step(p Position, d Direction) (Position, bool) {
	dr, dc := d.Delta()
	n := Position{Row: p.Row + dr, Col: p.Col + dc}
	if !g.InBounds(n) {
		return Position{}, false
	}

	return n, true
}

// Target returns the bottom-right corner, the conventional destination
// of the gridroute searches.
// Complexity: O(1).
func (g *Grid) Target() Position {
	return Position{Row: g.height - 1, Col: g.width - 1}
}
