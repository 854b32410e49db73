package search

import "github.com/gridrace/gridrace/grid"

// pqItem is one frontier entry for the heap-ordered searchers. primary is
// the discipline's key (g for UCS, h for Greedy, f for A*); secondary is
// the h tie-break A* uses; seq is the insertion sequence number that makes
// equal-priority pops follow discovery order.
type pqItem struct {
	cell      grid.Coord
	primary   int64
	secondary int64
	seq       int64
}

// frontierPQ is a min-heap of frontier entries ordered by (primary,
// secondary, seq). Stale entries are handled lazily: searchers push
// duplicates on decrease-key and skip already-expanded cells on pop.
type frontierPQ []*pqItem

// Len returns the number of entries in the heap.
func (pq frontierPQ) Len() int { return len(pq) }

// Less orders by primary key, then secondary, then insertion order.
func (pq frontierPQ) Less(i, j int) bool {
	if pq[i].primary != pq[j].primary {
		return pq[i].primary < pq[j].primary
	}
	if pq[i].secondary != pq[j].secondary {
		return pq[i].secondary < pq[j].secondary
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two entries.
func (pq frontierPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x; called by heap.Push.
func (pq *frontierPQ) Push(x interface{}) { *pq = append(*pq, x.(*pqItem)) }

// Pop removes and returns the last entry; called by heap.Pop.
func (pq *frontierPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
