// Package race drives two searchers over the same maze in lockstep and
// reports live per-side status, powering the split-screen comparison.
//
// What:
//
//   - New resets both searchers on a shared grid; Tick advances each
//     non-terminal side by exactly one Step.
//   - Once a side reaches GoalFound or Exhausted it stops advancing while
//     the other side keeps going; the race is Done when both are terminal.
//   - Status returns per-side snapshots suitable for a display loop, and
//     Winner names the side that reached the goal in fewer ticks.
//   - Speed presets (Slow, Normal, Fast, Instant) translate to a
//     steps-per-frame batch for the caller's render loop; Instant means
//     RunToCompletion in one synchronous call.
//
// The coordinator contains no algorithmic logic of its own: it is a
// fan-out over the search.Searcher stepping contract, single-threaded and
// driven by the caller's clock.
package race
