// internal/domain/checkout/pricing.go
package checkout

// Pricing is the money breakdown shown at checkout. All amounts are in
// cents; Total is the only amount persisted nowhere, it is recomputed on
// every request.
type Pricing struct {
	Subtotal int64 `json:"subtotal"`
	Tax      int64 `json:"tax"`
	Shipping int64 `json:"shipping"`
	Total    int64 `json:"total"`
}

// Calculate derives tax and shipping from the cart subtotal. Shipping is
// waived only when the subtotal strictly exceeds the free-shipping
// threshold.
func Calculate(subtotal int64, taxRate float64, flatShipping, freeShippingMin int64) Pricing {
	tax := int64(float64(subtotal) * taxRate)

	shipping := flatShipping
	if subtotal > freeShippingMin {
		shipping = 0
	}

	return Pricing{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    subtotal + tax + shipping,
	}
}
