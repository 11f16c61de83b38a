// Package eventbus publishes trades produced by the matching engine onto
// per-symbol NATS subjects, for downstream consumers (analytics,
// UIs). It is a pure observer of engine.Engine's channels: it never calls
// back into the Book and never blocks matching.
package eventbus

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/mkhoshkam/matchbook/engine"
)

// Publisher wraps a NATS connection and publishes trades onto a
// per-symbol subject.
type Publisher struct {
	conn   *nats.Conn
	logger *zap.Logger
}

// NewPublisher connects to a NATS server at url.
func NewPublisher(url string, logger *zap.Logger) (*Publisher, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("eventbus: connect: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Publisher{conn: conn, logger: logger}, nil
}

// PublishTrade publishes a single trade onto "trades.<symbol>".
func (p *Publisher) PublishTrade(symbol string, trade engine.Trade) error {
	payload, err := json.Marshal(trade)
	if err != nil {
		return fmt.Errorf("eventbus: marshal trade: %w", err)
	}
	subject := fmt.Sprintf("trades.%s", symbol)
	if err := p.conn.Publish(subject, payload); err != nil {
		return fmt.Errorf("eventbus: publish: %w", err)
	}
	return nil
}

// Run drains eng's BlotterStream and publishes every trade until ctx is
// cancelled. Intended to be run in its own goroutine by the caller.
// BlotterStream is used rather than TradeStream because a Trade alone
// carries no symbol (see engine.Trade) — the symbol is read off each
// blotter's incoming order, which the Engine's Book serves for every
// symbol, not just one.
func (p *Publisher) Run(ctx context.Context, eng *engine.Engine) {
	for {
		select {
		case <-ctx.Done():
			return
		case blotter, ok := <-eng.BlotterStream:
			if !ok {
				return
			}
			for _, trade := range blotter.Trades {
				if err := p.PublishTrade(blotter.Order.Symbol, trade); err != nil {
					p.logger.Warn("failed to publish trade", zap.Error(err))
				}
			}
		}
	}
}

// Close closes the underlying NATS connection.
func (p *Publisher) Close() {
	p.conn.Close()
}
