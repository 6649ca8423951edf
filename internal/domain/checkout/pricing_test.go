package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	testTaxRate         = 0.08
	testFlatShipping    = int64(999)
	testFreeShippingMin = int64(10000)
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name     string
		subtotal int64
		want     Pricing
	}{
		{
			name:     "below free shipping threshold",
			subtotal: 5000,
			want:     Pricing{Subtotal: 5000, Tax: 400, Shipping: 999, Total: 6399},
		},
		{
			name:     "above free shipping threshold",
			subtotal: 15000,
			want:     Pricing{Subtotal: 15000, Tax: 1200, Shipping: 0, Total: 16200},
		},
		{
			name:     "exactly at threshold still pays shipping",
			subtotal: 10000,
			want:     Pricing{Subtotal: 10000, Tax: 800, Shipping: 999, Total: 11799},
		},
		{
			name:     "one cent over threshold ships free",
			subtotal: 10001,
			want:     Pricing{Subtotal: 10001, Tax: 800, Shipping: 0, Total: 10801},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.subtotal, testTaxRate, testFlatShipping, testFreeShippingMin)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculateTotalIsSumOfParts(t *testing.T) {
	for _, subtotal := range []int64{1, 999, 4250, 9999, 10000, 10001, 250000} {
		got := Calculate(subtotal, testTaxRate, testFlatShipping, testFreeShippingMin)
		assert.Equal(t, got.Subtotal+got.Tax+got.Shipping, got.Total)
	}
}
