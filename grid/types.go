// Package grid defines terrain kinds, coordinates, and sentinel errors
// for the racing arena's terrain model.
package grid

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for grid operations.
var (
	// ErrOutOfBounds indicates a coordinate outside the grid. This is a
	// programming error in the caller and is never recovered internally.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

	// ErrTooSmall indicates requested dimensions below the 3×3 minimum
	// needed to keep the default start and goal apart from the border.
	ErrTooSmall = errors.New("grid: dimensions must be at least 3×3")

	// ErrWallEndpoint indicates an attempt to turn the start or goal cell
	// into a Wall, or to move an endpoint onto a Wall cell.
	ErrWallEndpoint = errors.New("grid: start and goal must not be walls")
)

// Terrain is the kind of a single cell.
type Terrain uint8

const (
	// Floor is walkable at unit cost.
	Floor Terrain = iota
	// Mud is walkable at five times the floor cost.
	Mud
	// Wall is impassable.
	Wall
)

// String returns a short human-readable terrain name.
func (t Terrain) String() string {
	switch t {
	case Floor:
		return "Floor"
	case Mud:
		return "Mud"
	case Wall:
		return "Wall"
	}

	return fmt.Sprintf("Terrain(%d)", uint8(t))
}

// Traversal costs per terrain kind.
const (
	// CostFloor is the cost of entering a Floor cell.
	CostFloor int64 = 1
	// CostMud is the cost of entering a Mud cell.
	CostMud int64 = 5
	// Impassable is the sentinel cost of a Wall cell. Any cost ≥ Impassable
	// means the cell cannot be entered.
	Impassable int64 = math.MaxInt64
)

// Coord identifies a cell by row and column. The zero value is the top-left
// corner. Coords are plain values: searchers pass them around freely and
// never hold pointers into the grid.
type Coord struct {
	Row, Col int
}

// String formats the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Manhattan returns the Manhattan distance to other: |Δrow| + |Δcol|.
func (c Coord) Manhattan(other Coord) int {
	dr := c.Row - other.Row
	if dr < 0 {
		dr = -dr
	}
	dc := c.Col - other.Col
	if dc < 0 {
		dc = -dc
	}

	return dr + dc
}

// Cell pairs a coordinate with its terrain kind. It is a snapshot for
// rendering and inspection; mutating it does not affect the grid.
type Cell struct {
	Coord
	Terrain Terrain
}
