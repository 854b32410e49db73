// Package search implements six single-step graph searchers over a
// grid.Grid, built for side-by-side racing: BFS, DFS, UCS, Greedy
// best-first, A*, and IDA*.
//
// What:
//
//   - Every searcher satisfies the Searcher interface: Reset allocates
//     fresh scratch state, Step expands one frontier cell and reports
//     Continue, GoalFound, or Exhausted, and Result returns the final
//     statistics once a terminal status is reached.
//   - Each Step appends exactly one Event to the run's Trace, so a
//     renderer can replay the exploration cell by cell.
//   - The six variants differ only in frontier discipline:
//
//     BFS     FIFO queue                  complete, fewest steps
//     DFS     LIFO stack                  incomplete, unbounded paths
//     UCS     min-heap on g               complete, cheapest path
//     Greedy  min-heap on h               incomplete, fast and risky
//     A*      min-heap on f = g + h       complete, cheapest path
//     IDA*    iterative-deepening on f    complete, cheapest path
//
// Determinism:
//
//   - Neighbor expansion follows the grid's fixed Up, Right, Down, Left
//     order, and heap ties break by insertion order (A* additionally
//     prefers the lower h first). Identical inputs always reproduce the
//     identical trace and result.
//
// Ownership:
//
//   - Searchers never mutate the grid. All per-run annotations (parents,
//     g-scores, explored flags) live in scratch arrays allocated by Reset,
//     so two searchers can race over the same grid concurrently.
//
// Complexity:
//
//   - Step is O(1) amortized for the queue/stack variants and O(log N)
//     for the heap variants; a full run visits each reachable cell at
//     most once, except IDA* which revisits across deepening iterations.
//
// Errors:
//
//   - ErrNilGrid, ErrUnwalkableEndpoint: invalid Reset input.
//   - ErrNotFinished: Result called before a terminal Step.
//   - ErrUnknownAlgorithm: New called with a name outside the fixed six.
package search
