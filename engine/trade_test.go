package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlotterAveragePriceIsArithmeticMeanNotVWAP(t *testing.T) {
	trades := []Trade{
		{FillQuantity: 100, FillPrice: d("150")},
		{FillQuantity: 20, FillPrice: d("151")},
	}
	b := newBlotter(&Order{}, trades)

	// Arithmetic mean: (150 + 151) / 2 = 150.5
	assert.True(t, b.AveragePrice.Equal(d("150.5")), "got %s", b.AveragePrice)

	// Not the VWAP, which would be (150*100 + 151*20) / 120 ≈ 150.1667
	vwapWouldBe := d("150").Mul(d("100")).Add(d("151").Mul(d("20"))).Div(d("120"))
	assert.False(t, b.AveragePrice.Equal(vwapWouldBe))
}

func TestBlotterTotalCostSumsQuantityTimesPrice(t *testing.T) {
	trades := []Trade{
		{FillQuantity: 100, FillPrice: d("150")},
		{FillQuantity: 20, FillPrice: d("151")},
	}
	b := newBlotter(&Order{}, trades)
	assert.True(t, b.TotalCost.Equal(d("18020")), "got %s", b.TotalCost)
}
