// Package grid models a rectangular field of per-cell traversal costs
// parsed from a block of ASCII digit rows.
//
// What:
//
//   - Grid wraps a rectangular block of digits, one cost per cell,
//     immutable once parsed.
//   - Position and Direction are the shared coordinate vocabulary of the
//     search packages: 0-indexed row/column pairs and the four compass
//     directions with their unit deltas and 180° opposites.
//   - Step performs a bounds-checked neighbor lookup; CostAt answers
//     "what does it cost to move into this cell".
//
// Why:
//
//   - Route planning over terrain with per-cell traversal costs.
//   - The shared substrate for the astar and runpolicy packages, which
//     layer heuristics and movement constraints on top of it.
//
// Complexity:
//
//   - Parse:    O(W×H) time and memory.
//   - InBounds, CostAt, Step, Target: O(1).
//
// Errors:
//
//   - ErrEmptyGrid:  input has no rows or no columns.
//   - ErrRaggedGrid: rows have differing lengths.
//   - ErrBadCell:    a cell byte is not an ASCII digit.
//
// All three are surfaced at Parse time, wrapped with row/column context;
// match them with errors.Is.
package grid
