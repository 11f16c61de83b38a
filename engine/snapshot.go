package engine

import (
	"container/heap"

	"github.com/shopspring/decimal"
)

// SnapshotLevel is one aggregated price level in a Snapshot: the price and
// the summed residual quantity of every order currently resting there.
type SnapshotLevel struct {
	Price    decimal.Decimal
	Quantity int64
}

// Snapshot is a read-only, non-destructive aggregation over the top-N
// levels of both sides of one symbol's book.
type Snapshot struct {
	Symbol   string
	Bids     []SnapshotLevel
	Asks     []SnapshotLevel
	Spread   *decimal.Decimal
	Midpoint *decimal.Decimal
	BidVWAP  *decimal.Decimal
	AskVWAP  *decimal.Decimal
}

// Snapshot returns the top-depth levels of both sides of symbol's book, or
// false if symbol has never been seen. The live book is never mutated: each
// side's heap is walked via a shallow copy of its slice, which is itself
// already heap-ordered and so needs no re-initialization before popping.
func (b *Book) Snapshot(symbol string, depth int) (*Snapshot, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if depth < 0 {
		depth = 0
	}

	sides, ok := b.heaps[symbol]
	if !ok {
		return nil, false
	}

	snap := &Snapshot{Symbol: symbol}

	var bestBid, bestAsk *decimal.Decimal

	if h, ok := sides[Bid]; ok {
		snap.Bids, bestBid = extractLevels(h, depth)
	}
	if h, ok := sides[Ask]; ok {
		snap.Asks, bestAsk = extractLevels(h, depth)
	}

	if bestBid != nil && bestAsk != nil {
		spread := bestAsk.Sub(*bestBid)
		snap.Spread = &spread
		midpoint := bestAsk.Add(*bestBid).Div(decimal.NewFromInt(2))
		snap.Midpoint = &midpoint
	}

	snap.BidVWAP = vwap(snap.Bids)
	snap.AskVWAP = vwap(snap.Asks)

	return snap, true
}

// extractLevels walks a copy of h, best-price-first, skipping stale levels
// and stopping after depth non-stale levels. It returns the emitted levels
// and, if any were emitted, the best price seen.
func extractLevels(h *levelHeap, depth int) ([]SnapshotLevel, *decimal.Decimal) {
	if depth == 0 {
		return nil, nil
	}

	cp := make(levelHeap, len(*h))
	copy(cp, *h)

	out := make([]SnapshotLevel, 0, depth)
	var best *decimal.Decimal

	for cp.Len() > 0 && len(out) < depth {
		level := heap.Pop(&cp).(*PriceLevel)
		if level.Orders.Len() == 0 {
			continue
		}

		qty := int64(0)
		for _, o := range level.Orders.Iter() {
			qty += o.Quantity
		}

		if best == nil {
			price := level.Price
			best = &price
		}

		out = append(out, SnapshotLevel{Price: level.Price, Quantity: qty})
	}

	return out, best
}

func vwap(levels []SnapshotLevel) *decimal.Decimal {
	if len(levels) == 0 {
		return nil
	}
	notional := decimal.Zero
	totalQty := int64(0)
	for _, l := range levels {
		notional = notional.Add(l.Price.Mul(decimal.NewFromInt(l.Quantity)))
		totalQty += l.Quantity
	}
	if totalQty == 0 {
		return nil
	}
	v := notional.Div(decimal.NewFromInt(totalQty))
	return &v
}
