package search

import (
	"container/heap"

	"github.com/gridrace/gridrace/grid"
)

// Greedy best-first search expands the frontier cell that looks closest
// to the goal by heuristic alone. Fast when the heuristic is honest about
// the terrain, but it ignores accumulated cost entirely, so it is neither
// complete in general nor optimal. With the discovery guard it still
// terminates on finite grids.
//
// Complexity: O(W×H log(W×H)) steps, O(W×H) memory.
type Greedy struct {
	run
	pq     frontierPQ
	parent []int32
	seq    int64
}

// NewGreedy returns an unstarted greedy best-first searcher; call Reset
// before stepping.
func NewGreedy() *Greedy { return &Greedy{} }

// Name returns "Greedy".
func (s *Greedy) Name() string { return "Greedy" }

// Reset prepares a fresh run over g from start to goal.
func (s *Greedy) Reset(g *grid.Grid, start, goal grid.Coord) error {
	if err := s.begin(g, start, goal); err != nil {
		return err
	}
	n := g.Width() * g.Height()
	s.parent = newParent(n)
	s.seq = 0

	si := s.idx(start)
	s.parent[si] = int32(si)
	s.pq = s.pq[:0]
	heap.Init(&s.pq)
	heap.Push(&s.pq, &pqItem{cell: start, primary: s.heuristic(start)})

	return nil
}

// Step pops the frontier cell with the lowest heuristic estimate and
// expands it. Like BFS, cells are discovered at most once: the first
// route found to a cell is the one kept.
func (s *Greedy) Step() Status {
	if !s.ready {
		return Exhausted
	}
	if s.status != Continue {
		return s.status
	}
	if s.pq.Len() == 0 {
		return s.finishExhausted()
	}

	cur := heap.Pop(&s.pq).(*pqItem).cell
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
			s.seq++
			heap.Push(&s.pq, &pqItem{cell: nb, primary: s.heuristic(nb), seq: s.seq})
		}
	}

	return Continue
}
