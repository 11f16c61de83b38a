package engine

import "github.com/shopspring/decimal"

// PriceLevel is all resting orders at a single (symbol, side, price). It is
// reachable from the Book only while its queue is non-empty; the matching
// loop evicts empty levels from both the heap and the level map in the same
// step that drains them.
type PriceLevel struct {
	Side   Side
	Price  decimal.Decimal
	Orders *OrderQueue
}

func newPriceLevel(side Side, price decimal.Decimal) *PriceLevel {
	return &PriceLevel{
		Side:   side,
		Price:  price,
		Orders: newOrderQueue(),
	}
}

// less reports whether l is a better resting price than other on the same
// side — the comparator levelHeap uses to keep the best price at the top.
func (l *PriceLevel) less(other *PriceLevel) bool {
	return l.Side.betterThan(l.Price, other.Price)
}
