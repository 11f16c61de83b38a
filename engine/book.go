package engine

import (
	"container/heap"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Book is the single stateful core object: a multi-symbol, two-sided
// limit-order book with price-time priority matching. Every exported method
// is atomic from the caller's perspective and runs to completion without
// suspension; callers targeting concurrent use should treat a Book as
// requiring exclusive access per call (see Book's single mutex below).
type Book struct {
	mu sync.Mutex

	// heaps[symbol][side] is the priority queue of PriceLevels for that
	// side of that symbol, top = best price.
	heaps map[string]map[Side]*levelHeap

	// levels[symbol][side][price.String()] is the same PriceLevel object
	// referenced by the corresponding heap entry; it is the source of
	// truth for level membership (the heap may additionally hold stale
	// entries after eviction).
	levels map[string]map[Side]map[string]*PriceLevel

	// orders is the process-wide order-id -> Order map used for O(1)
	// cancel and lookup.
	orders map[uuid.UUID]*Order

	logger *zap.Logger
}

// Option configures a Book at construction.
type Option func(*Book)

// WithLogger attaches a zap logger used for optional debug tracing of
// match/cancel/enqueue operations. A Book with no logger attached traces
// nothing.
func WithLogger(logger *zap.Logger) Option {
	return func(b *Book) { b.logger = logger }
}

// NewBook constructs an empty book.
func NewBook(opts ...Option) *Book {
	b := &Book{
		heaps:  make(map[string]map[Side]*levelHeap),
		levels: make(map[string]map[Side]map[string]*PriceLevel),
		orders: make(map[uuid.UUID]*Order),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Book) heapFor(symbol string, side Side) *levelHeap {
	sides, ok := b.heaps[symbol]
	if !ok {
		sides = make(map[Side]*levelHeap)
		b.heaps[symbol] = sides
	}
	h, ok := sides[side]
	if !ok {
		h = &levelHeap{}
		heap.Init(h)
		sides[side] = h
	}
	return h
}

func (b *Book) levelMapFor(symbol string, side Side) map[string]*PriceLevel {
	sides, ok := b.levels[symbol]
	if !ok {
		sides = make(map[Side]map[string]*PriceLevel)
		b.levels[symbol] = sides
	}
	m, ok := sides[side]
	if !ok {
		m = make(map[string]*PriceLevel)
		sides[side] = m
	}
	return m
}

// Match drains opposing price levels in priority order against the incoming
// order, emitting trades and leaving any residue as a new standing order.
func (b *Book) Match(incoming *Order) (Blotter, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.matchLocked(incoming)
}

// MatchBatch applies Match to each order in list order, sequentially. There
// is no atomicity across the batch beyond each order's own atomicity.
func (b *Book) MatchBatch(incoming []*Order) ([]Blotter, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	blotters := make([]Blotter, 0, len(incoming))
	for _, o := range incoming {
		blotter, err := b.matchLocked(o)
		if err != nil {
			return blotters, err
		}
		blotters = append(blotters, blotter)
	}
	return blotters, nil
}

func (b *Book) matchLocked(incoming *Order) (Blotter, error) {
	opposite := incoming.Side.Other()
	h := b.heapFor(incoming.Symbol, opposite)
	levelMap := b.levelMapFor(incoming.Symbol, opposite)

	var trades []Trade

	for incoming.Quantity > 0 && h.Len() > 0 {
		level := (*h)[0]

		if level.Orders.Len() == 0 {
			heap.Pop(h)
			continue
		}

		if !incoming.Side.Crosses(incoming.Price, level.Price) {
			break
		}

		for incoming.Quantity > 0 && level.Orders.Len() > 0 {
			standing, err := level.Orders.Peek()
			if err != nil {
				return Blotter{}, err
			}

			fillQty := min64(incoming.Quantity, standing.Quantity)
			fillPrice := incoming.Side.FillPrice(incoming.Price, standing.Price)

			trades = append(trades, Trade{
				IncomingOrderID: incoming.ID,
				StandingOrderID: standing.ID,
				FillQuantity:    fillQty,
				FillPrice:       fillPrice,
			})

			incoming.Quantity -= fillQty
			standing.Quantity -= fillQty

			if standing.Quantity == 0 {
				if _, err := level.Orders.PopFront(); err != nil {
					return Blotter{}, err
				}
				delete(b.orders, standing.ID)
			}
		}

		if level.Orders.Len() == 0 {
			heap.Pop(h)
			delete(levelMap, level.Price.String())
		}
	}

	if incoming.Quantity > 0 {
		if err := b.enqueueLocked(incoming); err != nil {
			return Blotter{}, err
		}
	}

	if b.logger != nil {
		b.logger.Debug("matched order",
			zap.String("symbol", incoming.Symbol),
			zap.String("side", incoming.Side.String()),
			zap.Int("trades", len(trades)),
		)
	}

	return newBlotter(incoming, trades), nil
}

// EnqueueOrder inserts order directly without matching — used by replay of
// pre-matched snapshots. It fails only if an order with the same id is
// already present.
func (b *Book) EnqueueOrder(order *Order) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.enqueueLocked(order)
}

func (b *Book) enqueueLocked(order *Order) error {
	if _, exists := b.orders[order.ID]; exists {
		return newInvariantViolation("order id already present: " + order.ID.String())
	}

	levelMap := b.levelMapFor(order.Symbol, order.Side)
	key := order.Price.String()

	level, ok := levelMap[key]
	if !ok {
		level = newPriceLevel(order.Side, order.Price)
		levelMap[key] = level
		h := b.heapFor(order.Symbol, order.Side)
		heap.Push(h, level)
	}

	level.Orders.Append(order)
	b.orders[order.ID] = order

	if b.logger != nil {
		b.logger.Debug("enqueued order", zap.String("id", order.ID.String()), zap.String("symbol", order.Symbol))
	}
	return nil
}

// Cancel removes a standing order from the book. order must be the same
// Order reference (or an equivalent copy of id/symbol/side/price) currently
// resident in the book.
func (b *Book) Cancel(order *Order) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cancelLocked(order.ID, order.Symbol, order.Side, order.Price)
}

// CancelByID cancels the standing order with the given id, looking up its
// symbol/side/price from the book's own records.
func (b *Book) CancelByID(id uuid.UUID) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	order, ok := b.orders[id]
	if !ok {
		return newNotFound(id)
	}
	return b.cancelLocked(id, order.Symbol, order.Side, order.Price)
}

func (b *Book) cancelLocked(id uuid.UUID, symbol string, side Side, price decimal.Decimal) error {
	if _, ok := b.orders[id]; !ok {
		return newNotFound(id)
	}
	delete(b.orders, id)

	levelMap := b.levelMapFor(symbol, side)
	level, ok := levelMap[price.String()]
	if !ok {
		return newInvariantViolation("level missing for resident order " + id.String())
	}

	if _, err := level.Orders.Pop(id); err != nil {
		return newInvariantViolation("order missing from its level queue: " + id.String())
	}

	if level.Orders.Len() == 0 {
		delete(levelMap, price.String())
	}

	if b.logger != nil {
		b.logger.Debug("cancelled order", zap.String("id", id.String()), zap.String("symbol", symbol))
	}

	return nil
}

// GetOrder returns the order with the given id, and whether it was found.
func (b *Book) GetOrder(id uuid.UUID) (*Order, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	o, ok := b.orders[id]
	return o, ok
}

// GetLevel returns the PriceLevel at (symbol, side, price), and whether it
// was found.
func (b *Book) GetLevel(symbol string, side Side, price decimal.Decimal) (*PriceLevel, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	sides, ok := b.levels[symbol]
	if !ok {
		return nil, false
	}
	m, ok := sides[side]
	if !ok {
		return nil, false
	}
	level, ok := m[price.String()]
	return level, ok
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
