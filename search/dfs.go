package search

import "github.com/gridrace/gridrace/grid"

// DFS explores the maze depth-first with a LIFO stack. The discovery
// guard (a cell is pushed at most once) bounds the run at the number of
// reachable cells, so Step always terminates, but DFS remains neither
// complete in the search-theoretic sense nor optimal: the path it commits
// to can be arbitrarily long.
//
// Complexity: O(W×H) steps, O(W×H) memory.
type DFS struct {
	run
	stack  []grid.Coord
	parent []int32
}

// NewDFS returns an unstarted depth-first searcher; call Reset before
// stepping.
func NewDFS() *DFS { return &DFS{} }

// Name returns "DFS".
func (s *DFS) Name() string { return "DFS" }

// Reset prepares a fresh run over g from start to goal.
func (s *DFS) Reset(g *grid.Grid, start, goal grid.Coord) error {
	if err := s.begin(g, start, goal); err != nil {
		return err
	}
	n := g.Width() * g.Height()
	s.stack = append(s.stack[:0], start)
	s.parent = newParent(n)
	si := s.idx(start)
	s.parent[si] = int32(si)

	return nil
}

// Step pops the newest frontier cell, expands it, and pushes its
// undiscovered walkable neighbors in reverse enumeration order so the
// first direction (up) is explored first.
func (s *DFS) Step() Status {
	if !s.ready {
		return Exhausted
	}
	if s.status != Continue {
		return s.status
	}
	if len(s.stack) == 0 {
		return s.finishExhausted()
	}

	cur := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	ci := s.idx(cur)
	s.record(cur, true)

	if cur == s.goal {
		path := s.reconstructPath(s.parent)

		return s.finishFound(path, s.pathCost(path))
	}

	nbrs, _ := s.grid.WalkableNeighbors(cur)
	for i := len(nbrs) - 1; i >= 0; i-- {
		ni := s.idx(nbrs[i])
		if s.parent[ni] == -1 {
			s.parent[ni] = int32(ci)
			s.stack = append(s.stack, nbrs[i])
		}
	}

	return Continue
}
