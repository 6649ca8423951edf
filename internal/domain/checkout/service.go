// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"errors"

	"github.com/your-org/gearshop-backend/internal/config"
	"github.com/your-org/gearshop-backend/internal/domain/cart"
	"github.com/your-org/gearshop-backend/internal/domain/customer"
)

// Summary is everything the checkout page needs in one response.
type Summary struct {
	Cart        *cart.Cart         `json:"cart"`
	Pricing     Pricing            `json:"pricing"`
	Customer    *customer.Customer `json:"customer,omitempty"`
	CanCheckout bool               `json:"can_checkout"`
}

// Service assembles checkout summaries from the session's cart and
// customer. Pricing rules come from configuration.
type Service struct {
	carts    *cart.Manager
	sessions *customer.Manager
	pricing  config.PricingConfig
}

// NewService creates a new checkout service
func NewService(carts *cart.Manager, sessions *customer.Manager, pricing config.PricingConfig) *Service {
	return &Service{carts: carts, sessions: sessions, pricing: pricing}
}

// Summary computes the money breakdown for the session's cart. Checkout
// is only possible with a non-empty cart and a signed-in customer.
func (s *Service) Summary(ctx context.Context, sessionID string) (*Summary, error) {
	c, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		Cart:    c,
		Pricing: s.Price(c.Subtotal()),
	}

	profile, err := s.sessions.Current(ctx, sessionID)
	if err != nil && !errors.Is(err, customer.ErrNoProfile) {
		return nil, err
	}
	summary.Customer = profile
	summary.CanCheckout = !c.IsEmpty() && profile != nil

	return summary, nil
}

// Price applies the configured tax and shipping rules to a subtotal.
func (s *Service) Price(subtotal int64) Pricing {
	return Calculate(subtotal, s.pricing.TaxRate, s.pricing.ShippingFlat, s.pricing.FreeShippingMin)
}
