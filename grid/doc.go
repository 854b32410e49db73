// Package grid models the weighted rectangular terrain the racing searchers
// explore: a fixed-size field of Floor, Mud, and Wall cells with designated
// start and goal coordinates.
//
// What:
//
//   - Terrain kinds with traversal costs: Floor=1, Mud=5, Wall impassable.
//   - Grid wraps a row-major terrain slice with pure O(1) queries:
//     Cost, StepCost, IsWalkable, Neighbors, WalkableNeighbors.
//   - Mutators (SetTerrain, SetStart, SetGoal) exist for maze construction
//     only; during a search the grid is treated as read-only and searchers
//     keep all per-run annotations in their own scratch state.
//
// Why:
//
//   - A shared immutable terrain lets two racing searchers explore the same
//     maze concurrently without copying it or contaminating each other.
//
// Invariants:
//
//   - Start and goal are always in bounds and never Wall.
//   - Neighbor enumeration order is fixed (Up, Right, Down, Left) so that
//     traces are reproducible for a given maze.
//
// Errors:
//
//   - ErrOutOfBounds: coordinate outside the grid (caller bug, never masked).
//   - ErrTooSmall: dimensions below the 3×3 minimum.
//   - ErrWallEndpoint: attempt to place a Wall on, or move an endpoint onto,
//     the start or goal cell.
package grid
