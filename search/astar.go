package search

import (
	"container/heap"

	"github.com/gridrace/gridrace/grid"
)

// AStar expands the frontier cell with the lowest f = g + h. With the
// admissible Manhattan heuristic it is complete and finds the cheapest
// path while expanding no more cells than UCS. Frontier ties on f break
// toward the lower h, then toward the earlier discovery.
//
// Complexity: O(W×H log(W×H)) steps, O(W×H) memory.
type AStar struct {
	run
	pq       frontierPQ
	parent   []int32
	gScore   []int64
	expanded []bool
	seq      int64
}

// NewAStar returns an unstarted A* searcher; call Reset before stepping.
func NewAStar() *AStar { return &AStar{} }

// Name returns "A*".
func (s *AStar) Name() string { return "A*" }

// Reset prepares a fresh run over g from start to goal.
func (s *AStar) Reset(g *grid.Grid, start, goal grid.Coord) error {
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
	h := s.heuristic(start)
	heap.Push(&s.pq, &pqItem{cell: start, primary: h, secondary: h})

	return nil
}

// Step pops the frontier cell with the lowest f (skipping stale
// duplicates), expands it, and relaxes its walkable neighbors with lazy
// decrease-key, exactly as UCS does but with the heuristic folded into
// the priority.
func (s *AStar) Step() Status {
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
		tentative := s.gScore[ci] + stepCost
		if tentative < s.gScore[ni] {
			s.gScore[ni] = tentative
			s.parent[ni] = int32(ci)
			h := s.heuristic(nb)
			s.seq++
			heap.Push(&s.pq, &pqItem{
				cell:      nb,
				primary:   tentative + h,
				secondary: h,
				seq:       s.seq,
			})
		}
	}

	return Continue
}
