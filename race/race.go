package race

import (
	"errors"
	"fmt"

	"github.com/gridrace/gridrace/grid"
	"github.com/gridrace/gridrace/search"
)

// Sentinel errors for race setup.
var (
	// ErrNilGrid is returned when New receives a nil grid.
	ErrNilGrid = errors.New("race: grid is nil")
	// ErrNilSearcher is returned when either side is nil.
	ErrNilSearcher = errors.New("race: both searchers are required")
)

// Side is a live view of one competitor.
type Side struct {
	// Name is the algorithm's display name.
	Name string
	// Status is the side's last reported stepping status.
	Status search.Status
	// Ticks counts how many Step calls the side has consumed.
	Ticks int
	// Result is the live snapshot: partial while running, final once the
	// side is terminal.
	Result search.Result
}

// Terminal reports whether the side has stopped advancing.
func (s Side) Terminal() bool {
	return s.Status != search.Continue
}

// lane pairs a searcher with its racing state.
type lane struct {
	searcher search.Searcher
	status   search.Status
	ticks    int
}

func (l *lane) step() {
	if l.status != search.Continue {
		return
	}
	l.ticks++
	l.status = l.searcher.Step()
}

func (l *lane) side() Side {
	return Side{
		Name:   l.searcher.Name(),
		Status: l.status,
		Ticks:  l.ticks,
		Result: l.searcher.Snapshot(),
	}
}

// Race coordinates two searchers over a shared grid. It is single-owner:
// drive it from one goroutine, typically a render loop.
type Race struct {
	left, right lane
}

// New resets both searchers on g (from its start to its goal) and returns
// a coordinator ready to Tick.
func New(g *grid.Grid, left, right search.Searcher) (*Race, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if left == nil || right == nil {
		return nil, ErrNilSearcher
	}
	if err := left.Reset(g, g.Start(), g.Goal()); err != nil {
		return nil, fmt.Errorf("race: resetting %s: %w", left.Name(), err)
	}
	if err := right.Reset(g, g.Start(), g.Goal()); err != nil {
		return nil, fmt.Errorf("race: resetting %s: %w", right.Name(), err)
	}

	return &Race{
		left:  lane{searcher: left, status: search.Continue},
		right: lane{searcher: right, status: search.Continue},
	}, nil
}

// Tick advances each non-terminal side by one step. Calling Tick on a
// finished race is a no-op.
func (r *Race) Tick() {
	r.left.step()
	r.right.step()
}

// Done reports whether both sides are terminal.
func (r *Race) Done() bool {
	return r.left.status != search.Continue && r.right.status != search.Continue
}

// RunToCompletion ticks in a tight loop until the race is Done. This is
// the Instant speed setting: still synchronous, still one step per side
// per tick.
func (r *Race) RunToCompletion() {
	for !r.Done() {
		r.Tick()
	}
}

// Status returns live snapshots of the left and right sides.
func (r *Race) Status() (Side, Side) {
	return r.left.side(), r.right.side()
}

// Winner names the side that reached the goal, once the race is Done.
// The side that found the goal in fewer ticks wins; on a tie, the side
// that explored fewer cells; on a dead tie, the left side. ok is false
// while the race is running or when neither side found a path.
func (r *Race) Winner() (name string, ok bool) {
	if !r.Done() {
		return "", false
	}
	lFound := r.left.status == search.GoalFound
	rFound := r.right.status == search.GoalFound
	switch {
	case lFound && !rFound:
		return r.left.searcher.Name(), true
	case rFound && !lFound:
		return r.right.searcher.Name(), true
	case !lFound && !rFound:
		return "", false
	}
	if r.left.ticks != r.right.ticks {
		if r.left.ticks < r.right.ticks {
			return r.left.searcher.Name(), true
		}

		return r.right.searcher.Name(), true
	}
	lSnap := r.left.searcher.Snapshot()
	rSnap := r.right.searcher.Snapshot()
	if rSnap.NodesExplored < lSnap.NodesExplored {
		return r.right.searcher.Name(), true
	}

	return r.left.searcher.Name(), true
}
