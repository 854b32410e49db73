package search

import (
	"container/heap"

	"github.com/gridrace/gridrace/grid"
)

// UCS (uniform cost search) expands the frontier cell with the lowest
// accumulated cost g. It is complete and finds the cheapest path, though
// not necessarily the one with the fewest steps.
//
// Decrease-key is lazy: a cheaper route to a discovered cell pushes a
// duplicate heap entry and the stale one is skipped when popped.
//
// Complexity: O(W×H log(W×H)) steps, O(W×H) memory.
type UCS struct {
	run
	pq       frontierPQ
	parent   []int32
	gScore   []int64
	expanded []bool
	seq      int64
}

// NewUCS returns an unstarted uniform-cost searcher; call Reset before
// stepping.
func NewUCS() *UCS { return &UCS{} }

// Name returns "UCS".
func (s *UCS) Name() string { return "UCS" }

// Reset prepares a fresh run over g from start to goal.
func (s *UCS) Reset(g *grid.Grid, start, goal grid.Coord) error {
	if err := s.begin(g, start, goal); err != nil {
		return err
	}
	n := g.Width() * g.Height()
	s.parent = newParent(n)
	s.gScore = make([]int64, n)
	for i := range s.gScore {
		s.gScore[i] = grid.Impassable
	}
	s.expanded = make([]bool, n)
	s.seq = 0

	si := s.idx(start)
	s.parent[si] = int32(si)
	s.gScore[si] = 0
	s.pq = s.pq[:0]
	heap.Init(&s.pq)
	heap.Push(&s.pq, &pqItem{cell: start})

	return nil
}

// Step pops the cheapest frontier cell (skipping stale duplicates),
// expands it, and relaxes its walkable neighbors.
func (s *UCS) Step() Status {
	if !s.ready {
		return Exhausted
	}
	if s.status != Continue {
		return s.status
	}

	var cur grid.Coord
	var ci int
	for {
		if s.pq.Len() == 0 {
			return s.finishExhausted()
		}
		it := heap.Pop(&s.pq).(*pqItem)
		cur = it.cell
		ci = s.idx(cur)
		if !s.expanded[ci] {
			break
		}
	}
	s.expanded[ci] = true
	s.record(cur, true)

	if cur == s.goal {
		path := s.reconstructPath(s.parent)

		return s.finishFound(path, s.gScore[ci])
	}

	nbrs, _ := s.grid.WalkableNeighbors(cur)
	for _, nb := range nbrs {
		ni := s.idx(nb)
		if s.expanded[ni] {
			continue
		}
		stepCost, _ := s.grid.Cost(nb)
		newCost := s.gScore[ci] + stepCost
		if newCost < s.gScore[ni] {
			s.gScore[ni] = newCost
			s.parent[ni] = int32(ci)
			s.seq++
			heap.Push(&s.pq, &pqItem{cell: nb, primary: newCost, seq: s.seq})
		}
	}

	return Continue
}
