package engine

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Side is the two-valued tag distinguishing buy orders from sell orders.
type Side int

const (
	Bid Side = iota
	Ask
)

func (s Side) String() string {
	if s == Bid {
		return "BID"
	}
	return "ASK"
}

// Other returns the opposing side. Together with Crosses, FillPrice and
// betterThan it is where BID/ASK asymmetry lives; the matching loop stays
// side-agnostic by calling through these functions instead of branching.
func (s Side) Other() Side {
	if s == Bid {
		return Ask
	}
	return Bid
}

// Crosses reports whether an incoming order on this side at incomingPrice
// can trade against a resting order at restingPrice.
func (s Side) Crosses(incomingPrice, restingPrice decimal.Decimal) bool {
	if s == Bid {
		return incomingPrice.GreaterThanOrEqual(restingPrice)
	}
	return incomingPrice.LessThanOrEqual(restingPrice)
}

// FillPrice returns the trade price for an incoming order on this side
// matching against a resting order: price improvement always accrues to
// the aggressor, so the resting price wins.
func (s Side) FillPrice(incomingPrice, restingPrice decimal.Decimal) decimal.Decimal {
	if s == Bid {
		return decimal.Min(incomingPrice, restingPrice)
	}
	return decimal.Max(incomingPrice, restingPrice)
}

// betterThan reports whether price p is a better resting price on this side
// than price o — bids rank higher prices better, asks rank lower prices
// better. This is the comparator levelHeap uses to keep the best price at
// the top.
func (s Side) betterThan(p, o decimal.Decimal) bool {
	if s == Bid {
		return p.GreaterThan(o)
	}
	return p.LessThan(o)
}

// OrderStatus is derived purely from quantity and originalQuantity; it is
// never stored, only computed on demand.
type OrderStatus int

const (
	Queued OrderStatus = iota
	PartialFill
	Filled
)

func (s OrderStatus) String() string {
	switch s {
	case Queued:
		return "QUEUED"
	case PartialFill:
		return "PARTIAL_FILL"
	default:
		return "FILLED"
	}
}

// Order is an immutable identity with a mutable residual quantity. It is
// produced only through the Bid/Ask constructors, which guard the
// quantity>0 invariant at birth.
type Order struct {
	ID               uuid.UUID
	Side             Side
	Symbol           string
	Price            decimal.Decimal
	Quantity         int64
	OriginalQuantity int64
}

// Status derives the order's current lifecycle state from its quantities.
func (o *Order) Status() OrderStatus {
	switch {
	case o.Quantity == 0:
		return Filled
	case o.Quantity < o.OriginalQuantity:
		return PartialFill
	default:
		return Queued
	}
}

func newOrder(side Side, symbol string, price decimal.Decimal, quantity int64) (*Order, error) {
	if quantity <= 0 {
		return nil, newInvalidOrder("quantity must be positive")
	}
	if symbol == "" {
		return nil, newInvalidOrder("symbol must not be empty")
	}
	if price.LessThanOrEqual(decimal.Zero) {
		return nil, newInvalidOrder("price must be positive")
	}
	return &Order{
		ID:               uuid.New(),
		Side:             side,
		Symbol:           symbol,
		Price:            price,
		Quantity:         quantity,
		OriginalQuantity: quantity,
	}, nil
}

// BidOrder constructs a new buy-side order. Quantity must be positive;
// price must be positive.
func BidOrder(symbol string, price decimal.Decimal, quantity int64) (*Order, error) {
	return newOrder(Bid, symbol, price, quantity)
}

// AskOrder constructs a new sell-side order. Quantity must be positive;
// price must be positive.
func AskOrder(symbol string, price decimal.Decimal, quantity int64) (*Order, error) {
	return newOrder(Ask, symbol, price, quantity)
}

// BidFloat and AskFloat accept a floating price and convert it through its
// textual decimal form, so that e.g. 10.1 is represented exactly as "10.1"
// rather than its nearest binary-float approximation.
func BidFloat(symbol string, price float64, quantity int64) (*Order, error) {
	return newOrder(Bid, symbol, decimal.NewFromFloat(price), quantity)
}

func AskFloat(symbol string, price float64, quantity int64) (*Order, error) {
	return newOrder(Ask, symbol, decimal.NewFromFloat(price), quantity)
}
