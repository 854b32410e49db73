package search

import "github.com/gridrace/gridrace/grid"

// IDAStar runs iterative-deepening A*: repeated depth-first probes bounded
// by an f-cost threshold that starts at h(start) and grows, between
// iterations, to the smallest f that exceeded the previous bound. Memory
// stays linear in the path length while completeness and cost-optimality
// match A*.
//
// The depth-first probe is an explicit stack state machine rather than a
// recursive walk, so each Step visits one cell and the run stays
// animatable like the other five searchers. Cycle avoidance is path-local:
// a cell may be revisited across iterations, never within one branch.
//
// The bound cannot grow forever: once the next threshold passes the total
// walkable terrain cost of the grid (an upper bound on any simple path),
// the run ends Exhausted. A connected maze never reaches that ceiling.
type IDAStar struct {
	run
	threshold   int64
	minExceeded int64
	ceiling     int64
	stack       []idaFrame
	onPath      []bool
	visited     []bool
}

// idaFrame is one cell on the current depth-first branch.
type idaFrame struct {
	cell    grid.Coord
	g       int64
	nexti   int
	entered bool
}

// NewIDAStar returns an unstarted iterative-deepening A* searcher; call
// Reset before stepping.
func NewIDAStar() *IDAStar { return &IDAStar{} }

// Name returns "IDA*".
func (s *IDAStar) Name() string { return "IDA*" }

// Reset prepares a fresh run over g from start to goal.
func (s *IDAStar) Reset(g *grid.Grid, start, goal grid.Coord) error {
	if err := s.begin(g, start, goal); err != nil {
		return err
	}
	n := g.Width() * g.Height()
	s.threshold = s.heuristic(start)
	s.minExceeded = grid.Impassable
	s.ceiling = walkableCostSum(g)
	s.onPath = make([]bool, n)
	s.visited = make([]bool, n)
	s.stack = append(s.stack[:0], idaFrame{cell: start})
	s.onPath[s.idx(start)] = true

	return nil
}

// Step advances the depth-first probe by one cell visit. Backtracking and
// threshold restarts happen silently inside a single call; every call
// that returns Continue has either visited a cell or ended an iteration.
func (s *IDAStar) Step() Status {
	if !s.ready {
		return Exhausted
	}
	if s.status != Continue {
		return s.status
	}

	for {
		if len(s.stack) == 0 {
			// Iteration exhausted without reaching the goal.
			if s.minExceeded == grid.Impassable || s.minExceeded > s.ceiling {
				return s.finishExhausted()
			}
			s.threshold = s.minExceeded
			s.minExceeded = grid.Impassable
			for i := range s.onPath {
				s.onPath[i] = false
			}
			s.stack = append(s.stack[:0], idaFrame{cell: s.start})
			s.onPath[s.idx(s.start)] = true

			continue
		}

		top := &s.stack[len(s.stack)-1]
		if !top.entered {
			top.entered = true
			ci := s.idx(top.cell)
			distinct := !s.visited[ci]
			s.visited[ci] = true
			s.record(top.cell, distinct)

			f := top.g + s.heuristic(top.cell)
			if f > s.threshold {
				if f < s.minExceeded {
					s.minExceeded = f
				}
				s.onPath[ci] = false
				s.stack = s.stack[:len(s.stack)-1]

				return Continue
			}
			if top.cell == s.goal {
				path := make([]grid.Coord, len(s.stack))
				for i, fr := range s.stack {
					path[i] = fr.cell
				}

				return s.finishFound(path, top.g)
			}

			return Continue
		}

		// Descend into the next unvisited-on-path neighbor, if any.
		nbrs, _ := s.grid.WalkableNeighbors(top.cell)
		descended := false
		for top.nexti < len(nbrs) {
			nb := nbrs[top.nexti]
			top.nexti++
			ni := s.idx(nb)
			if s.onPath[ni] {
				continue
			}
			stepCost, _ := s.grid.Cost(nb)
			child := idaFrame{cell: nb, g: top.g + stepCost}
			s.onPath[ni] = true
			s.stack = append(s.stack, child)
			descended = true

			break
		}
		if descended {
			continue
		}

		// Branch finished: backtrack.
		s.onPath[s.idx(top.cell)] = false
		s.stack = s.stack[:len(s.stack)-1]
	}
}

// walkableCostSum totals the entry cost of every non-Wall cell, giving a
// safe upper bound on the cost of any simple path through the grid.
func walkableCostSum(g *grid.Grid) int64 {
	var total int64
	for _, cell := range g.Cells() {
		if cell.Terrain == grid.Wall {
			continue
		}
		if cell.Terrain == grid.Mud {
			total += grid.CostMud

			continue
		}
		total += grid.CostFloor
	}

	return total
}
