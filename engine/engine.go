package engine

import (
	"sync"

	"go.uber.org/zap"
)

// SymbolStats tracks simple running statistics per symbol, republished
// alongside the trade stream for observability — additive orchestration
// outside the core's behavioral contract.
type SymbolStats struct {
	TradeCount  int64
	VolumeTotal int64
}

// Engine wraps a Book with a streaming/reporting surface: buffered trade
// and blotter channels, plus per-symbol statistics. Book alone is
// sufficient to satisfy the matching contract; Engine exists only to give
// adapters (gateway, event bus) something to subscribe to.
type Engine struct {
	Book *Book

	TradeStream   chan Trade
	BlotterStream chan Blotter

	statsMu sync.Mutex
	stats   map[string]*SymbolStats

	logger *zap.Logger
}

// NewEngine constructs an Engine around a fresh Book.
func NewEngine(opts ...Option) *Engine {
	return &Engine{
		Book:          NewBook(opts...),
		TradeStream:   make(chan Trade, 1000),
		BlotterStream: make(chan Blotter, 1000),
		stats:         make(map[string]*SymbolStats),
		logger:        zap.NewNop(),
	}
}

// Submit matches an incoming order against the book, publishes the
// resulting trades and blotter onto the engine's streams (non-blocking —
// a full channel drops the publish rather than stalling the caller), and
// updates per-symbol statistics.
func (e *Engine) Submit(order *Order) (Blotter, error) {
	blotter, err := e.Book.Match(order)
	if err != nil {
		return Blotter{}, err
	}

	e.recordStats(order.Symbol, blotter)

	for _, t := range blotter.Trades {
		select {
		case e.TradeStream <- t:
		default:
		}
	}
	select {
	case e.BlotterStream <- blotter:
	default:
	}

	return blotter, nil
}

func (e *Engine) recordStats(symbol string, blotter Blotter) {
	if len(blotter.Trades) == 0 {
		return
	}
	e.statsMu.Lock()
	defer e.statsMu.Unlock()
	s, ok := e.stats[symbol]
	if !ok {
		s = &SymbolStats{}
		e.stats[symbol] = s
	}
	s.TradeCount += int64(len(blotter.Trades))
	for _, t := range blotter.Trades {
		s.VolumeTotal += t.FillQuantity
	}
}

// Stats returns a copy of the current per-symbol statistics.
func (e *Engine) Stats(symbol string) (SymbolStats, bool) {
	e.statsMu.Lock()
	defer e.statsMu.Unlock()
	s, ok := e.stats[symbol]
	if !ok {
		return SymbolStats{}, false
	}
	return *s, true
}
