package engine

import "container/heap"

// levelHeap is a standard binary heap of PriceLevels for one (symbol, side)
// pair, ordered so the best price is always at index 0. It may hold stale
// entries — levels whose queues have been drained to empty by cancellation
// — which the matching loop discards lazily when they surface at the top.
type levelHeap []*PriceLevel

func (h levelHeap) Len() int { return len(h) }

func (h levelHeap) Less(i, j int) bool { return h[i].less(h[j]) }

func (h levelHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *levelHeap) Push(x interface{}) {
	*h = append(*h, x.(*PriceLevel))
}

func (h *levelHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

var _ heap.Interface = (*levelHeap)(nil)
