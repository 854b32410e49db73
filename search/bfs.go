package search

import "github.com/gridrace/gridrace/grid"

// BFS explores the maze level by level with a FIFO queue. It is complete
// and finds the path with the fewest steps, but ignores terrain cost.
//
// Complexity: O(W×H) steps, O(W×H) memory.
type BFS struct {
	run
	queue  []grid.Coord
	parent []int32
}

// NewBFS returns an unstarted breadth-first searcher; call Reset before
// stepping.
func NewBFS() *BFS { return &BFS{} }

// Name returns "BFS".
func (s *BFS) Name() string { return "BFS" }

// Reset prepares a fresh run over g from start to goal.
func (s *BFS) Reset(g *grid.Grid, start, goal grid.Coord) error {
	if err := s.begin(g, start, goal); err != nil {
		return err
	}
	n := g.Width() * g.Height()
	s.queue = append(s.queue[:0], start)
	s.parent = newParent(n)
	si := s.idx(start)
	s.parent[si] = int32(si)

	return nil
}

// Step dequeues the oldest frontier cell, expands it, and enqueues its
// undiscovered walkable neighbors. Cells are enqueued at most once, so
// parent links are fixed at discovery time.
func (s *BFS) Step() Status {
	if !s.ready {
		return Exhausted
	}
	if s.status != Continue {
		return s.status
	}
	if len(s.queue) == 0 {
		return s.finishExhausted()
	}

	cur := s.queue[0]
	s.queue = s.queue[1:]
	ci := s.idx(cur)
	s.record(cur, true)

	if cur == s.goal {
		path := s.reconstructPath(s.parent)

		return s.finishFound(path, s.pathCost(path))
	}

	nbrs, _ := s.grid.WalkableNeighbors(cur)
	for _, nb := range nbrs {
		ni := s.idx(nb)
		if s.parent[ni] == -1 {
			s.parent[ni] = int32(ci)
			s.queue = append(s.queue, nb)
		}
	}

	return Continue
}
