package search

import (
	"time"

	"github.com/gridrace/gridrace/grid"
)

// run holds the bookkeeping every searcher shares: the read-only grid,
// endpoints, trace, counters, and terminal result. Concrete searchers
// embed it and add their own frontier and scratch arrays.
type run struct {
	grid        *grid.Grid
	start, goal grid.Coord
	width       int

	trace    Trace
	explored int
	status   Status
	result   Result

	startedAt time.Time
	ready     bool
}

// begin validates the inputs and resets the shared state for a new run.
func (r *run) begin(g *grid.Grid, start, goal grid.Coord) error {
	if g == nil {
		return ErrNilGrid
	}
	if !g.IsWalkable(start) || !g.IsWalkable(goal) {
		return ErrUnwalkableEndpoint
	}
	r.grid = g
	r.start = start
	r.goal = goal
	r.width = g.Width()
	r.trace = r.trace[:0]
	r.explored = 0
	r.status = Continue
	r.result = Result{}
	r.startedAt = time.Now()
	r.ready = true

	return nil
}

// idx flattens a coordinate into the row-major scratch index. Only called
// with coordinates that came from the grid, so no bounds check.
func (r *run) idx(c grid.Coord) int {
	return c.Row*r.width + c.Col
}

// coord inverts idx.
func (r *run) coord(i int) grid.Coord {
	return grid.Coord{Row: i / r.width, Col: i % r.width}
}

// heuristic is the admissible Manhattan estimate to the goal, scaled by
// the minimum terrain cost.
func (r *run) heuristic(c grid.Coord) int64 {
	return int64(c.Manhattan(r.goal)) * grid.CostFloor
}

// record appends one expansion event to the trace and, when the cell has
// not been expanded before this run, bumps the distinct-node counter.
func (r *run) record(c grid.Coord, distinct bool) {
	r.trace = append(r.trace, Event{Cell: c, Order: len(r.trace) + 1})
	if distinct {
		r.explored++
	}
}

// finishFound stamps a successful terminal result.
func (r *run) finishFound(path []grid.Coord, cost int64) Status {
	r.status = GoalFound
	r.result = Result{
		Success:       true,
		Path:          path,
		PathCost:      cost,
		NodesExplored: r.explored,
		Elapsed:       time.Since(r.startedAt),
	}

	return r.status
}

// finishExhausted stamps a failed terminal result.
func (r *run) finishExhausted() Status {
	r.status = Exhausted
	r.result = Result{
		NodesExplored: r.explored,
		Elapsed:       time.Since(r.startedAt),
	}

	return r.status
}

// Trace returns the events recorded so far this run.
func (r *run) Trace() Trace {
	return r.trace
}

// Result returns the terminal statistics, or ErrNotFinished while the run
// is still in progress.
func (r *run) Result() (Result, error) {
	if !r.ready || r.status == Continue {
		return Result{}, ErrNotFinished
	}

	return r.result, nil
}

// Snapshot returns a live view of the run for display purposes.
func (r *run) Snapshot() Result {
	if r.status != Continue {
		return r.result
	}

	return Result{
		NodesExplored: r.explored,
		Elapsed:       time.Since(r.startedAt),
	}
}

// reconstructPath walks parent links from the goal back to the start and
// returns the path in start→goal order. parent holds row-major indices,
// with the start cell its own parent.
func (r *run) reconstructPath(parent []int32) []grid.Coord {
	path := []grid.Coord{}
	for cur := r.idx(r.goal); ; {
		path = append(path, r.coord(cur))
		next := int(parent[cur])
		if next == cur {
			break
		}
		cur = next
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// pathCost sums the terrain cost of each cell entered along the path,
// excluding the start cell.
func (r *run) pathCost(path []grid.Coord) int64 {
	var total int64
	for i := 1; i < len(path); i++ {
		c, err := r.grid.StepCost(path[i-1], path[i])
		if err != nil {
			// Paths are built from in-bounds cells; unreachable.
			return total
		}
		total += c
	}

	return total
}

// newParent allocates a parent array with every cell undiscovered (-1).
func newParent(n int) []int32 {
	p := make([]int32, n)
	for i := range p {
		p[i] = -1
	}

	return p
}
