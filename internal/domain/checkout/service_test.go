package checkout

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/gearshop-backend/internal/config"
	"github.com/your-org/gearshop-backend/internal/domain/cart"
	"github.com/your-org/gearshop-backend/internal/domain/catalog"
	"github.com/your-org/gearshop-backend/internal/domain/customer"
	"github.com/your-org/gearshop-backend/internal/pkg/notification"
)

type memoryCartStore struct {
	carts map[string]*cart.Cart
}

func (s *memoryCartStore) Load(_ context.Context, sessionID string) (*cart.Cart, error) {
	c, ok := s.carts[sessionID]
	if !ok {
		return nil, cart.ErrNotFound
	}
	return c, nil
}

func (s *memoryCartStore) Save(_ context.Context, c *cart.Cart) error {
	s.carts[c.SessionID] = c
	return nil
}

func (s *memoryCartStore) Delete(_ context.Context, sessionID string) error {
	delete(s.carts, sessionID)
	return nil
}

type memoryProfileStore struct {
	profiles map[string]*customer.Customer
}

func (s *memoryProfileStore) Load(_ context.Context, sessionID string) (*customer.Customer, error) {
	p, ok := s.profiles[sessionID]
	if !ok {
		return nil, customer.ErrNoProfile
	}
	return p, nil
}

func (s *memoryProfileStore) Save(_ context.Context, sessionID string, p *customer.Customer) error {
	s.profiles[sessionID] = p
	return nil
}

func (s *memoryProfileStore) Delete(_ context.Context, sessionID string) error {
	delete(s.profiles, sessionID)
	return nil
}

type stubRepository struct{}

func (stubRepository) FindByEmail(context.Context, string) (*customer.Customer, error) {
	return nil, customer.ErrNotFound
}
func (stubRepository) Create(context.Context, *customer.Customer) error { return nil }
func (stubRepository) Update(context.Context, *customer.Customer) error { return nil }
func (stubRepository) Delete(context.Context, string) error             { return nil }

func newTestService() (*Service, *cart.Manager, *customer.Manager) {
	notifier := notification.Nop{}
	carts := cart.NewManager(&memoryCartStore{carts: map[string]*cart.Cart{}}, notifier)
	sessions := customer.NewManager(
		&memoryProfileStore{profiles: map[string]*customer.Customer{}},
		stubRepository{}, carts, notifier)

	pricing := config.PricingConfig{TaxRate: 0.08, ShippingFlat: 999, FreeShippingMin: 10000}
	return NewService(carts, sessions, pricing), carts, sessions
}

func TestSummaryEmptySessionCannotCheckout(t *testing.T) {
	svc, _, _ := newTestService()

	summary, err := svc.Summary(context.Background(), "session-1")
	require.NoError(t, err)

	assert.False(t, summary.CanCheckout)
	assert.Nil(t, summary.Customer)
	assert.True(t, summary.Cart.IsEmpty())
	assert.Equal(t, Pricing{Subtotal: 0, Tax: 0, Shipping: 999, Total: 999}, summary.Pricing)
}

func TestSummaryRequiresCustomer(t *testing.T) {
	svc, carts, _ := newTestService()
	ctx := context.Background()

	_, err := carts.AddItem(ctx, "session-1", catalog.Product{ID: "1", Name: "Camp Stove", Price: 5999, Stock: 5})
	require.NoError(t, err)

	summary, err := svc.Summary(ctx, "session-1")
	require.NoError(t, err)

	assert.False(t, summary.CanCheckout)
	assert.Equal(t, int64(5999), summary.Pricing.Subtotal)
}

func TestSummaryWithCartAndCustomer(t *testing.T) {
	svc, carts, sessions := newTestService()
	ctx := context.Background()

	_, err := carts.AddItem(ctx, "session-1", catalog.Product{ID: "1", Name: "Ultralight Tent", Price: 24999, Stock: 5})
	require.NoError(t, err)
	_, err = sessions.Establish(ctx, "session-1", &customer.Customer{
		Name:  "Alex Morgan",
		Email: "alex@example.com",
	})
	require.NoError(t, err)

	summary, err := svc.Summary(ctx, "session-1")
	require.NoError(t, err)

	assert.True(t, summary.CanCheckout)
	require.NotNil(t, summary.Customer)
	assert.Equal(t, "alex@example.com", summary.Customer.Email)
	assert.Equal(t, int64(24999), summary.Pricing.Subtotal)
	assert.Equal(t, int64(1999), summary.Pricing.Tax)
	assert.Equal(t, int64(0), summary.Pricing.Shipping)
	assert.Equal(t, int64(26998), summary.Pricing.Total)
}
