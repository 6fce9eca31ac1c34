package search

import (
	"container/heap"
	"sort"
)

// frontierItem is one entry in the open set: a reference to a Graph arena
// index and its cached heuristic score (cached because relaxation never
// changes a node's score, only its predecessor/depth).
type frontierItem struct {
	NodeIndex int32
	Score     int
}

// frontierHeap is a max-heap by Score, via container/heap.
type frontierHeap []frontierItem

func (h frontierHeap) Len() int            { return len(h) }
func (h frontierHeap) Less(i, j int) bool  { return h[i].Score > h[j].Score }
func (h frontierHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *frontierHeap) Push(x interface{}) { *h = append(*h, x.(frontierItem)) }
func (h *frontierHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Frontier is the open set of nodes awaiting expansion, ordered by
// heuristic score. Pop returns the best (highest-scoring) entry in
// O(log n); Prune drops the worst-scoring tail in O(n log n) by sorting
// and truncating, per the "two-heap split is the efficient structure, but
// sort-and-truncate is simpler to implement correctly" tradeoff.
//
// If every heuristic weight is zero, every pushed score is zero and the
// heap's tie-breaking (stable only by insertion accident, since
// container/heap doesn't guarantee FIFO among equal keys) no longer
// matches strict FIFO. Callers that need literal breadth-first behavior
// should not rely on this structure degrading cleanly; it is "FIFO-like"
// only in aggregate at the degenerate all-zero-weights configuration.
type Frontier struct {
	h frontierHeap
}

// NewFrontier returns an empty frontier.
func NewFrontier() *Frontier {
	f := &Frontier{}
	heap.Init(&f.h)
	return f
}

// Len returns the number of entries currently queued.
func (f *Frontier) Len() int { return f.h.Len() }

// Push enqueues a newly inserted node for expansion.
func (f *Frontier) Push(nodeIndex int32, score int) {
	heap.Push(&f.h, frontierItem{NodeIndex: nodeIndex, Score: score})
}

// PeekBest returns the highest-scoring entry without removing it.
func (f *Frontier) PeekBest() (int32, bool) {
	if f.h.Len() == 0 {
		return 0, false
	}
	return f.h[0].NodeIndex, true
}

// PopBest removes and returns the highest-scoring entry.
func (f *Frontier) PopBest() (int32, bool) {
	if f.h.Len() == 0 {
		return 0, false
	}
	item := heap.Pop(&f.h).(frontierItem)
	return item.NodeIndex, true
}

// Prune drops the worst-scoring entries until at most ceiling remain. The
// dropped entries' fingerprints stay in the Graph's visited set; only
// their frontier references are discarded, so future duplicates are still
// caught.
func (f *Frontier) Prune(ceiling int) {
	if f.h.Len() <= ceiling {
		return
	}
	sort.Slice(f.h, func(i, j int) bool { return f.h[i].Score > f.h[j].Score })
	f.h = f.h[:ceiling]
	heap.Init(&f.h)
}

// Scores returns the current score of every queued entry, for the
// end-of-run histogram. The returned slice is a snapshot, not a view.
func (f *Frontier) Scores() []float64 {
	out := make([]float64, len(f.h))
	for i, item := range f.h {
		out[i] = float64(item.Score)
	}
	return out
}
