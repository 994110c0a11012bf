package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func linesFor(t *testing.T, pairs ...int64) []CartLine {
	t.Helper()
	// pairs: цена, количество, цена, количество, ...
	lines := make([]CartLine, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		lines = append(lines, CartLine{
			Product:  NewProduct("p", "Product", pairs[i], "Living Room Furniture"),
			Quantity: int(pairs[i+1]),
		})
	}
	return lines
}

func TestSubtotal(t *testing.T) {
	lines := linesFor(t, 1000, 2, 2000, 1)

	assert.True(t, Subtotal(lines).Equal(decimal.NewFromInt(4000)))
}

func TestSubtotal_EmptyCart(t *testing.T) {
	assert.True(t, Subtotal(nil).IsZero())
}

func TestShippingFor_ThresholdIsStrict(t *testing.T) {
	tests := []struct {
		name     string
		subtotal int64
		expected int64
	}{
		{"below threshold", 49999, 500},
		{"exactly at threshold still paid", 50000, 500},
		{"above threshold free", 50001, 0},
		{"empty cart", 0, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShippingFor(decimal.NewFromInt(tt.subtotal))
			assert.True(t, got.Equal(decimal.NewFromInt(tt.expected)),
				"ShippingFor(%d) = %s, want %d", tt.subtotal, got, tt.expected)
		})
	}
}

func TestSummarizeCart(t *testing.T) {
	lines := linesFor(t, 1000, 2, 2000, 1)

	summary := SummarizeCart(lines)

	assert.True(t, summary.Subtotal.Equal(decimal.NewFromInt(4000)))
	assert.True(t, summary.Shipping.Equal(decimal.NewFromInt(500)))
	assert.True(t, summary.Total.Equal(decimal.NewFromInt(4500)))
	assert.True(t, summary.FreeShippingRemainder.Equal(decimal.NewFromInt(46000)))
}

func TestSummarizeCart_NoRemainderWhenEmptyOrPastThreshold(t *testing.T) {
	empty := SummarizeCart(nil)
	assert.True(t, empty.FreeShippingRemainder.IsZero())

	rich := SummarizeCart(linesFor(t, 60000, 1))
	assert.True(t, rich.FreeShippingRemainder.IsZero())
	assert.True(t, rich.Shipping.IsZero())
}

func TestCalculateCheckout(t *testing.T) {
	lines := linesFor(t, 1000, 2, 2000, 1)

	totals := CalculateCheckout(lines)

	assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(4000)))
	assert.True(t, totals.Shipping.Equal(decimal.NewFromInt(500)))
	assert.True(t, totals.Tax.Equal(decimal.NewFromInt(400)))
	assert.True(t, totals.Total.Equal(decimal.NewFromInt(4900)))
}

func TestCalculateCheckout_TaxOnSubtotalOnly(t *testing.T) {
	// Налог считается от суммы товаров, доставка не облагается.
	totals := CalculateCheckout(linesFor(t, 40000, 1))

	assert.True(t, totals.Tax.Equal(decimal.NewFromInt(4000)))
	assert.True(t, totals.Total.Equal(decimal.NewFromInt(44500)))
}

func TestPricing_LinearInQuantity(t *testing.T) {
	one := Subtotal(linesFor(t, 1234, 1))
	three := Subtotal(linesFor(t, 1234, 3))

	assert.True(t, three.Equal(one.Mul(decimal.NewFromInt(3))))
}
