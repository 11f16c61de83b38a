package engine

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Trade records a single fill produced while matching an incoming order
// against a resting order.
type Trade struct {
	IncomingOrderID uuid.UUID
	StandingOrderID uuid.UUID
	FillQuantity    int64
	FillPrice       decimal.Decimal
}

// Blotter is the per-aggressor trade report: the incoming order and every
// trade it produced, plus two derived scalars.
//
// AveragePrice is the simple arithmetic mean of the per-trade fill prices —
// deliberately NOT a quantity-weighted VWAP. A caller wanting VWAP should
// compute it from Trades directly, or use Snapshot's VWAP fields.
type Blotter struct {
	Order        *Order
	Trades       []Trade
	TotalCost    decimal.Decimal
	AveragePrice decimal.Decimal
}

func newBlotter(order *Order, trades []Trade) Blotter {
	b := Blotter{Order: order, Trades: trades}
	if len(trades) == 0 {
		b.TotalCost = decimal.Zero
		b.AveragePrice = decimal.Zero
		return b
	}

	totalCost := decimal.Zero
	priceSum := decimal.Zero
	for _, t := range trades {
		totalCost = totalCost.Add(t.FillPrice.Mul(decimal.NewFromInt(t.FillQuantity)))
		priceSum = priceSum.Add(t.FillPrice)
	}
	b.TotalCost = totalCost.Round(2)
	b.AveragePrice = priceSum.Div(decimal.NewFromInt(int64(len(trades))))
	return b
}
