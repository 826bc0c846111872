package ospell

import "container/heap"

// Result is one correction or analysis: an output string and its weight.
type Result struct {
	Output string
	Weight Weight
}

// ResultQueue accumulates (string, weight) pairs, deduplicating by exact
// output string and keeping the minimum weight (spec invariant 4), and
// yields them in ascending-weight order with ties broken by string order
// (spec section 4.6.6).
type ResultQueue struct {
	best map[string]Weight
}

// NewResultQueue returns an empty queue.
func NewResultQueue() *ResultQueue {
	return &ResultQueue{best: make(map[string]Weight)}
}

// Add records a candidate result, keeping the lower weight if the output
// string was already present.
func (q *ResultQueue) Add(output string, weight Weight) {
	if cur, ok := q.best[output]; !ok || weight < cur {
		q.best[output] = weight
	}
}

// Len reports the number of distinct results accumulated.
func (q *ResultQueue) Len() int {
	return len(q.best)
}

// Results drains the queue into an ascending-weight slice, ties broken by
// string order. If max > 0, only the max lowest-weight results are kept.
func (q *ResultQueue) Results(max int) []Result {
	h := make(resultHeap, 0, len(q.best))
	for s, w := range q.best {
		h = append(h, Result{Output: s, Weight: w})
	}
	heap.Init(&h)
	out := make([]Result, 0, len(h))
	for h.Len() > 0 {
		out = append(out, heap.Pop(&h).(Result))
	}
	if max > 0 && len(out) > max {
		out = out[:max]
	}
	return out
}

type resultHeap []Result

func (h resultHeap) Len() int { return len(h) }
func (h resultHeap) Less(i, j int) bool {
	if h[i].Weight != h[j].Weight {
		return h[i].Weight < h[j].Weight
	}
	return h[i].Output < h[j].Output
}
func (h resultHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *resultHeap) Push(x any)   { *h = append(*h, x.(Result)) }

func (h *resultHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// nbestHeap is a bounded max-heap of the current top-n best (lowest)
// final weights seen, used to prune the search once it is full: any new
// node whose own running weight is already >= the heap's current worst
// member cannot possibly improve on it.
type nbestHeap struct {
	n    int
	data weightMaxHeap
}

func newNbestHeap(n int) *nbestHeap {
	return &nbestHeap{n: n}
}

// Full reports whether the heap holds n entries.
func (h *nbestHeap) Full() bool {
	return h.n > 0 && len(h.data) >= h.n
}

// Worst returns the largest weight currently held; only meaningful when
// Full() is true.
func (h *nbestHeap) Worst() Weight {
	if len(h.data) == 0 {
		return 0
	}
	return h.data[0]
}

// Consider offers a newly-found final weight to the heap.
func (h *nbestHeap) Consider(w Weight) {
	if h.n <= 0 {
		return
	}
	if len(h.data) < h.n {
		heap.Push(&h.data, w)
		return
	}
	if w < h.data[0] {
		heap.Pop(&h.data)
		heap.Push(&h.data, w)
	}
}

type weightMaxHeap []Weight

func (h weightMaxHeap) Len() int            { return len(h) }
func (h weightMaxHeap) Less(i, j int) bool  { return h[i] > h[j] } // max-heap
func (h weightMaxHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *weightMaxHeap) Push(x any)         { *h = append(*h, x.(Weight)) }
func (h *weightMaxHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
