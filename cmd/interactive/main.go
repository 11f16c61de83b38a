// Command interactive runs a scripted demo of the matching engine,
// submitting a sequence of orders across a couple of symbols and printing
// the trades, fills, and book statistics as they occur.
package main

import (
	"fmt"
	"time"

	"github.com/mkhoshkam/matchbook/engine"
	"github.com/mkhoshkam/matchbook/internal/logging"
)

func main() {
	logger := logging.MustNew(true)
	defer logger.Sync()

	eng := engine.NewEngine(engine.WithLogger(logger))

	go printTrades(eng)

	submit := func(symbol string, side engine.Side, price float64, qty int64) {
		var order *engine.Order
		var err error
		if side == engine.Bid {
			order, err = engine.BidFloat(symbol, price, qty)
		} else {
			order, err = engine.AskFloat(symbol, price, qty)
		}
		if err != nil {
			fmt.Printf("rejected order: %v\n", err)
			return
		}

		blotter, err := eng.Submit(order)
		if err != nil {
			fmt.Printf("match error: %v\n", err)
			return
		}
		fmt.Printf("submitted %s %s %.2f x%d -> %d trade(s), status=%s\n",
			symbol, order.Side, price, qty, len(blotter.Trades), blotter.Order.Status())
		time.Sleep(50 * time.Millisecond)
	}

	submit("BTC/USDT", engine.Ask, 60000.00, 2)
	submit("BTC/USDT", engine.Ask, 60010.50, 1)
	submit("BTC/USDT", engine.Bid, 60005.00, 1)
	submit("BTC/USDT", engine.Bid, 60015.00, 3)

	submit("ETH/USDT", engine.Bid, 3000.00, 5)
	submit("ETH/USDT", engine.Ask, 2995.00, 2)

	time.Sleep(200 * time.Millisecond)

	for _, symbol := range []string{"BTC/USDT", "ETH/USDT"} {
		if snap, ok := eng.Book.Snapshot(symbol, 5); ok {
			fmt.Printf("\n%s snapshot:\n", symbol)
			for _, lvl := range snap.Bids {
				fmt.Printf("  bid %s x%d\n", lvl.Price, lvl.Quantity)
			}
			for _, lvl := range snap.Asks {
				fmt.Printf("  ask %s x%d\n", lvl.Price, lvl.Quantity)
			}
		}
		if stats, ok := eng.Stats(symbol); ok {
			fmt.Printf("  trades=%d volume=%d\n", stats.TradeCount, stats.VolumeTotal)
		}
	}
}

func printTrades(eng *engine.Engine) {
	for trade := range eng.TradeStream {
		fmt.Printf("  [trade] %s <-> %s  %d @ %s\n",
			trade.IncomingOrderID, trade.StandingOrderID, trade.FillQuantity, trade.FillPrice)
	}
}
