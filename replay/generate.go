package replay

import (
	"math/rand"
	"os"

	"github.com/parquet-go/parquet-go"
)

// SampleConfig parameterizes GenerateSample, the Go counterpart of the
// original project's generate_sample_data.py: a synthetic, realistically
// clustered order flow for exercising replay and ingest.
type SampleConfig struct {
	Symbols       []string
	BasePrices    map[string]float64
	OrderCount    int
	Quantities    []int64
	Rand          *rand.Rand
}

// DefaultSampleConfig mirrors the original script's constants.
func DefaultSampleConfig() SampleConfig {
	return SampleConfig{
		Symbols:    []string{"AAPL", "GOOG", "TSLA"},
		BasePrices: map[string]float64{"AAPL": 150.0, "GOOG": 175.0, "TSLA": 250.0},
		OrderCount: 200,
		Quantities: []int64{10, 25, 50, 100, 200, 500},
		Rand:       rand.New(rand.NewSource(42)),
	}
}

// GenerateSample produces synthetic rows: bids clustered below each
// symbol's base price, asks clustered above it, mirroring the clustering
// the original Python generator used.
func GenerateSample(cfg SampleConfig) []Row {
	rows := make([]Row, 0, cfg.OrderCount)
	for i := 0; i < cfg.OrderCount; i++ {
		symbol := cfg.Symbols[cfg.Rand.Intn(len(cfg.Symbols))]
		base := cfg.BasePrices[symbol]

		var side string
		if cfg.Rand.Intn(2) == 0 {
			side = "bid"
		} else {
			side = "ask"
		}

		offset := 0.25 + cfg.Rand.Float64()*(3.0-0.25)
		price := base - offset
		if side == "ask" {
			price = base + offset
		}

		qty := cfg.Quantities[cfg.Rand.Intn(len(cfg.Quantities))]

		rows = append(rows, Row{
			Side:     side,
			Symbol:   symbol,
			Price:    roundTo(price, 2),
			Quantity: qty,
		})
	}
	return rows
}

func roundTo(v float64, places int) float64 {
	scale := 1.0
	for i := 0; i < places; i++ {
		scale *= 10
	}
	return float64(int64(v*scale+0.5)) / scale
}

// WriteRows writes rows to path as a Parquet file using Row's schema.
func WriteRows(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	writer := parquet.NewGenericWriter[Row](f)
	if _, err := writer.Write(rows); err != nil {
		return err
	}
	return writer.Close()
}
