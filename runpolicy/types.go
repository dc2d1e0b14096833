// Package runpolicy defines the run-length constants shared by the two
// movement policies. Each constant is owned by its policy and fixed at
// compile time; there is no runtime configuration.
package runpolicy

// Bounded policy constants.
const (
	// boundedCap is the most consecutive steps the bounded policy may
	// take in one direction before it must turn.
	boundedCap = 3

	// boundedRefill is the straight-step allowance restored by a turn:
	// the turn itself consumes one step of the new run.
	boundedRefill = boundedCap - 1
)

// MinRun policy constants.
const (
	// minRunTurn is the number of consecutive steps the minimum-run
	// policy must complete before it may turn or stop.
	minRunTurn = 4

	// maxRun is the number of consecutive steps at which a turn becomes
	// mandatory for the minimum-run policy.
	maxRun = 10
)
