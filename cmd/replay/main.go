// Command replay feeds a Parquet file of historical orders through the
// matching engine and prints L2 snapshots at intervals, the same cadence
// the project's original replay demo used.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mkhoshkam/matchbook/engine"
	"github.com/mkhoshkam/matchbook/replay"
)

func main() {
	path := flag.String("file", "sample_orders.parquet", "path to a Parquet order file")
	generate := flag.Bool("generate", false, "generate a sample order file at -file instead of replaying")
	depth := flag.Int("depth", 5, "snapshot depth to print")
	every := flag.Int("every", 50, "print a snapshot every N orders")
	flag.Parse()

	if *generate {
		rows := replay.GenerateSample(replay.DefaultSampleConfig())
		if err := replay.WriteRows(*path, rows); err != nil {
			log.Fatalf("generate: %v", err)
		}
		fmt.Printf("wrote %d orders to %s\n", len(rows), *path)
		return
	}

	rows, err := replay.ReadRows(*path)
	if err != nil {
		log.Fatalf("read %s: %v", *path, err)
	}
	fmt.Printf("loaded %d orders from %s\n", len(rows), *path)

	book := engine.NewBook()
	totalTrades := 0
	symbols := map[string]struct{}{}

	for i, row := range rows {
		symbols[row.Symbol] = struct{}{}

		blotters, err := replay.Replay(book, rows[i:i+1])
		if err != nil {
			log.Fatalf("replay row %d: %v", i, err)
		}
		totalTrades += len(blotters[0].Trades)

		if (i+1)%*every == 0 {
			fmt.Printf("--- after %d orders (%d trades so far) ---\n", i+1, totalTrades)
			printSnapshots(book, symbols, *depth)
		}
	}

	fmt.Println("=== replay complete ===")
	fmt.Printf("orders processed: %d\n", len(rows))
	fmt.Printf("total trades:     %d\n", totalTrades)
	printSnapshots(book, symbols, *depth)
}

func printSnapshots(book *engine.Book, symbols map[string]struct{}, depth int) {
	for symbol := range symbols {
		snap, ok := book.Snapshot(symbol, depth)
		if !ok {
			continue
		}
		fmt.Fprintf(os.Stdout, "  %s:\n", symbol)
		for _, lvl := range snap.Bids {
			fmt.Printf("    bid %s x%d\n", lvl.Price, lvl.Quantity)
		}
		for _, lvl := range snap.Asks {
			fmt.Printf("    ask %s x%d\n", lvl.Price, lvl.Quantity)
		}
		if snap.Spread != nil {
			fmt.Printf("    spread=%s midpoint=%s\n", snap.Spread, snap.Midpoint)
		}
	}
}
