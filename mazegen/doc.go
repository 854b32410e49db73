// Package mazegen produces solvable weighted mazes for the racing arena.
//
// What:
//
//   - Generate builds a grid.Grid from functional options: dimensions,
//     wall and mud densities, an optional seed for reproducibility, and a
//     layout style.
//   - Three layouts: Random (scattered walls and mud), Backtracker (a
//     perfect maze of winding corridors), and Open (sparse obstacles with
//     protected rings around the endpoints, good for showcasing how the
//     algorithms differ).
//   - Every returned grid satisfies the connectivity invariant: at least
//     one Wall-free path exists from start to goal.
//
// How connectivity is guaranteed:
//
//   - After laying terrain, Generate flood-fills from the start. If the
//     goal is unreachable it carves a randomized corridor straight
//     through, retries up to the attempt cap, and as a last resort
//     returns a deterministic serpentine layout that is connected by
//     construction. Generation therefore always terminates and never
//     returns an unsolvable maze.
//
// Determinism:
//
//   - With WithSeed the generator uses its own rand.Rand and the same
//     options always produce the same maze. Without a seed the clock
//     seeds the generator.
//
// Errors:
//
//   - ErrBadDimensions, ErrBadDensity, ErrBadAttempts: invalid options,
//     reported by Generate before any work happens.
package mazegen
