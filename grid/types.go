// Package grid defines the core types and sentinel errors for the
// cost-grid model used by the gridroute search packages.
package grid

import (
	"errors"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the input text contains no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must contain at least one row and one column")
	// ErrRaggedGrid indicates rows of differing lengths.
	ErrRaggedGrid = errors.New("grid: all rows must have the same length")
	// ErrBadCell indicates a byte outside the ASCII digit range '0'–'9'.
	ErrBadCell = errors.New("grid: cells must be ASCII digits '0'-'9'")
)

// Position identifies a single cell by row and column, 0-indexed with
// the origin at the top-left corner. A Position is only meaningful for
// a given Grid when Grid.InBounds reports true.
type Position struct {
	Row, Col int
}

// Direction is one of the four compass directions of travel.
type Direction uint8

const (
	// North decreases the row index.
	North Direction = iota
	// East increases the column index.
	East
	// South increases the row index.
	South
	// West decreases the column index.
	West
)

// Directions lists the four compass directions in the fixed expansion
// order used by the search packages: N, E, S, W.
var Directions = [4]Direction{North, East, South, West}

// Opposite returns the 180° reversal of d.
// Complexity: O(1).
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	default:
		return East
	}
}

// Delta returns the unit row/column offset of one step along d.
// Complexity: O(1).
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	default:
		return 0, -1
	}
}

// String returns the compass name of d.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	default:
		return "West"
	}
}
