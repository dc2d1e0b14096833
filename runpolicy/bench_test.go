package runpolicy_test

import (
	"testing"

	"github.com/katalvlaran/gridroute/astar"
	"github.com/katalvlaran/gridroute/grid"
	"github.com/katalvlaran/gridroute/runpolicy"
)

// benchGrid parses the 13×13 reference grid once per benchmark.
func benchGrid(b *testing.B) *grid.Grid {
	b.Helper()
	g, err := grid.Parse(referenceText)
	if err != nil {
		b.Fatalf("Parse error: %v", err)
	}

	return g
}

// BenchmarkCheapestBounded measures a full bounded-run solve, including
// the per-call heuristic precomputation.
func BenchmarkCheapestBounded(b *testing.B) {
	g := benchGrid(b)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = runpolicy.CheapestBounded(g)
	}
}

// BenchmarkCheapestMinRun measures a full min-run solve, including the
// per-call heuristic precomputation.
func BenchmarkCheapestMinRun(b *testing.B) {
	g := benchGrid(b)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = runpolicy.CheapestMinRun(g)
	}
}

// BenchmarkCheapestMinRun_SharedEstimate isolates the search itself by
// reusing a precomputed cost-to-target table across iterations.
func BenchmarkCheapestMinRun_SharedEstimate(b *testing.B) {
	g := benchGrid(b)
	est, err := astar.NewEstimate(g, g.Target())
	if err != nil {
		b.Fatalf("NewEstimate error: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = runpolicy.CheapestMinRun(g, astar.WithEstimate(est))
	}
}
