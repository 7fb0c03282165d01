package astar

import "github.com/sebschmi/tsaligner/costmodel"

// handle indexes into a runner's arena. int32 keeps arena entries and
// heap items compact even for searches that push millions of nodes.
type handle int32

// openItem is one entry of the open set's priority queue: a candidate
// g+h priority for the arena entry at handle. Stale entries (superseded
// by a later, cheaper push for the same node) are left in place and
// discarded lazily on pop, exactly as the teacher's nodePQ does.
type openItem struct {
	h        handle
	f        costmodel.Cost
	tiebreak int64 // meaning depends on Options.NodeOrder
	seq      int64 // insertion sequence, the final deterministic tie-break
}

// openPQ is a min-heap of *openItem ordered by f, then by tiebreak (only
// meaningful under NodeOrderAntiDiagonal), then by insertion order.
type openPQ []*openItem

func (pq openPQ) Len() int { return len(pq) }

func (pq openPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f.Less(pq[j].f)
	}
	if pq[i].tiebreak != pq[j].tiebreak {
		return pq[i].tiebreak > pq[j].tiebreak // larger anti-diagonal progress first
	}
	return pq[i].seq < pq[j].seq
}

func (pq openPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *openPQ) Push(x any) { *pq = append(*pq, x.(*openItem)) }

func (pq *openPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}
