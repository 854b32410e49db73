// Package search defines the stepping contract, trace and result types,
// and sentinel errors shared by the six searchers.
package search

import (
	"errors"
	"fmt"
	"time"

	"github.com/gridrace/gridrace/grid"
)

// Sentinel errors for searcher construction and use.
var (
	// ErrNilGrid is returned when Reset receives a nil grid pointer.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrUnwalkableEndpoint is returned when the start or goal cell is a
	// wall or lies outside the grid.
	ErrUnwalkableEndpoint = errors.New("search: start and goal must be walkable")

	// ErrNotFinished is returned by Result before Step has reached
	// GoalFound or Exhausted.
	ErrNotFinished = errors.New("search: searcher has not reached a terminal state")

	// ErrUnknownAlgorithm is returned by New for names outside the fixed
	// set of six.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm name")
)

// Status is the outcome of a single Step call.
type Status int

const (
	// Continue means the frontier is non-empty and the goal has not been
	// reached; keep stepping.
	Continue Status = iota
	// GoalFound means the goal cell was expanded; Result is now valid.
	GoalFound
	// Exhausted means the frontier emptied (or, for IDA*, the cost bound
	// passed its ceiling) without reaching the goal. Not an error: Result
	// is valid with Success=false.
	Exhausted
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Continue:
		return "Continue"
	case GoalFound:
		return "GoalFound"
	case Exhausted:
		return "Exhausted"
	}

	return fmt.Sprintf("Status(%d)", int(s))
}

// Event records one cell expansion: which cell, and its 1-based position
// in the exploration order.
type Event struct {
	Cell  grid.Coord
	Order int
}

// Trace is the append-only sequence of expansion events for one run. It
// grows by exactly one Event per Step call and is discarded by Reset.
type Trace []Event

// Result carries the terminal statistics of one search run.
type Result struct {
	// Success reports whether a start→goal path was found.
	Success bool
	// Path is the reconstructed route from start to goal inclusive;
	// empty when Success is false.
	Path []grid.Coord
	// PathCost sums the terrain cost of every cell entered along Path
	// (the start cell is excluded, the goal included).
	PathCost int64
	// NodesExplored counts distinct cells expanded during the run.
	NodesExplored int
	// Elapsed is the wall-clock time from Reset to the terminal Step.
	Elapsed time.Duration
}

// Searcher is the stepping contract shared by all six algorithms. A
// Searcher is single-owner: drive it from one goroutine only.
type Searcher interface {
	// Name returns the algorithm's display name ("BFS", "A*", ...).
	Name() string
	// Reset discards any in-flight state and prepares a fresh run over g
	// from start to goal. Safe to call at any point, mid-search included.
	Reset(g *grid.Grid, start, goal grid.Coord) error
	// Step expands one frontier cell, appends one Event to the trace, and
	// reports the run status. Once terminal, further calls return the
	// same status without side effects.
	Step() Status
	// Result returns the final statistics; ErrNotFinished before the run
	// reaches GoalFound or Exhausted.
	Result() (Result, error)
	// Trace returns the expansion events recorded so far this run.
	Trace() Trace
	// Snapshot returns a live view of the run for display: explored count
	// and elapsed time are current, Path and Success are zero until the
	// run is terminal.
	Snapshot() Result
}

// algorithmNames is the fixed racing roster, in display order.
var algorithmNames = []string{"BFS", "DFS", "UCS", "Greedy", "A*", "IDA*"}

// Names returns the six algorithm names in display order.
func Names() []string {
	out := make([]string, len(algorithmNames))
	copy(out, algorithmNames)

	return out
}

// New returns a fresh searcher for the given display name. The set is
// fixed: there is no registration mechanism.
func New(name string) (Searcher, error) {
	switch name {
	case "BFS":
		return NewBFS(), nil
	case "DFS":
		return NewDFS(), nil
	case "UCS":
		return NewUCS(), nil
	case "Greedy":
		return NewGreedy(), nil
	case "A*":
		return NewAStar(), nil
	case "IDA*":
		return NewIDAStar(), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}
