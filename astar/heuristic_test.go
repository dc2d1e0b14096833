// Package astar_test contains unit tests for the cost-to-target
// estimate and the search engine.
package astar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridroute/astar"
	"github.com/katalvlaran/gridroute/grid"
)

// mustParse builds a grid or fails the test.
func mustParse(t *testing.T, input string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(input)
	require.NoError(t, err)

	return g
}

//----------------------------------------------------------------------------//
// Validation
//----------------------------------------------------------------------------//

func TestNewEstimate_NilGrid(t *testing.T) {
	_, err := astar.NewEstimate(nil, grid.Position{})
	assert.ErrorIs(t, err, astar.ErrNilGrid)
}

func TestNewEstimate_TargetOutOfBounds(t *testing.T) {
	g := mustParse(t, "12\n34")
	_, err := astar.NewEstimate(g, grid.Position{Row: 2, Col: 0})
	assert.ErrorIs(t, err, astar.ErrTargetOutOfBounds)
}

//----------------------------------------------------------------------------//
// Exact values
//----------------------------------------------------------------------------//

// TestNewEstimate_SmallGrid hand-checks every cell of a 2×2 grid.
// Grid:
//
//	1 9
//	1 1
//
// Cheapest unconstrained routes to the bottom-right corner:
// (0,0)→(1,0)→(1,1) = 1+1 = 2, avoiding the 9.
func TestNewEstimate_SmallGrid(t *testing.T) {
	g := mustParse(t, "19\n11")
	est, err := astar.NewEstimate(g, g.Target())
	require.NoError(t, err)

	assert.Equal(t, g.Target(), est.Target())
	assert.Equal(t, int64(0), est.At(grid.Position{Row: 1, Col: 1}))
	assert.Equal(t, int64(1), est.At(grid.Position{Row: 1, Col: 0}))
	assert.Equal(t, int64(1), est.At(grid.Position{Row: 0, Col: 1}))
	assert.Equal(t, int64(2), est.At(grid.Position{Row: 0, Col: 0}))
}

// TestNewEstimate_UniformGrid checks the Manhattan property on a
// uniform-cost grid: every step costs 1, so the estimate is exactly
// the Manhattan distance to the target.
func TestNewEstimate_UniformGrid(t *testing.T) {
	g := mustParse(t, "111\n111\n111")
	est, err := astar.NewEstimate(g, g.Target())
	require.NoError(t, err)

	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			want := int64((g.Height() - 1 - r) + (g.Width() - 1 - c))
			assert.Equal(t, want, est.At(grid.Position{Row: r, Col: c}),
				"estimate at (%d,%d)", r, c)
		}
	}
}

// TestNewEstimate_ArbitraryTarget verifies the table works for targets
// other than the bottom-right corner.
func TestNewEstimate_ArbitraryTarget(t *testing.T) {
	g := mustParse(t, "19\n11")
	target := grid.Position{Row: 0, Col: 0}
	est, err := astar.NewEstimate(g, target)
	require.NoError(t, err)

	assert.Equal(t, int64(0), est.At(target))
	// (1,1)→(1,0)→(0,0): enter (1,0)=1, enter (0,0)=1.
	assert.Equal(t, int64(2), est.At(grid.Position{Row: 1, Col: 1}))
	// (0,1)→(0,0): enter (0,0)=1.
	assert.Equal(t, int64(1), est.At(grid.Position{Row: 0, Col: 1}))
}
