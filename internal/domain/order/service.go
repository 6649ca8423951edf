// internal/domain/order/service.go
package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/your-org/gearshop-backend/internal/domain/cart"
	"github.com/your-org/gearshop-backend/internal/domain/customer"
	"github.com/your-org/gearshop-backend/internal/pkg/notification"
)

var (
	ErrNoCustomer = errors.New("no customer attached to session")
	ErrEmptyCart  = errors.New("cart is empty")
)

// Service orchestrates order placement: it resolves the customer record,
// persists the order with its items and finishes the session-side
// bookkeeping (history, cart, notifications).
type Service struct {
	store        Store
	customers    customer.Repository
	carts        *cart.Manager
	sessions     *customer.Manager
	history      HistoryStore
	notifier     notification.Notifier
	confirmDelay time.Duration
	log          *logrus.Logger
}

// NewService creates a new order service
func NewService(
	store Store,
	customers customer.Repository,
	carts *cart.Manager,
	sessions *customer.Manager,
	history HistoryStore,
	notifier notification.Notifier,
	confirmDelay time.Duration,
	log *logrus.Logger,
) *Service {
	return &Service{
		store:        store,
		customers:    customers,
		carts:        carts,
		sessions:     sessions,
		history:      history,
		notifier:     notifier,
		confirmDelay: confirmDelay,
		log:          log,
	}
}

// CreateOrder places an order for the session's cart. Preconditions are
// checked before anything touches the database: a missing customer or an
// empty cart returns immediately with no backend writes.
func (s *Service) CreateOrder(ctx context.Context, sessionID, shippingAddress string) (*Order, error) {
	profile, err := s.sessions.Current(ctx, sessionID)
	if err != nil {
		if errors.Is(err, customer.ErrNoProfile) {
			return nil, ErrNoCustomer
		}
		return nil, err
	}

	c, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}

	record, createdNew, err := s.resolveCustomer(ctx, profile)
	if err != nil {
		s.notifier.Error(ctx, sessionID, "Failed to create order. Please try again.")
		return nil, err
	}

	o := &Order{
		CustomerID:      record.ID,
		Total:           c.Subtotal(),
		ShippingAddress: shippingAddress,
		Status:          StatusPending,
		OrderDate:       time.Now(),
		Items:           itemsFromCart(c),
	}

	if err := s.store.CreateOrder(ctx, o); err != nil {
		if createdNew {
			// Roll back the customer row we just created so a retry
			// starts from a clean slate.
			if delErr := s.customers.Delete(ctx, record.ID); delErr != nil {
				s.log.WithError(delErr).WithField("customer_id", record.ID).
					Warn("Failed to roll back customer after order failure")
			}
		}
		s.notifier.Error(ctx, sessionID, "Failed to create order. Please try again.")
		return nil, err
	}

	if err := s.sessions.RecordCustomerID(ctx, sessionID, record.ID); err != nil {
		s.log.WithError(err).Warn("Failed to record customer ID on session")
	}
	if err := s.history.Append(ctx, sessionID, o); err != nil {
		s.log.WithError(err).Warn("Failed to append order history")
	}
	if err := s.carts.Clear(ctx, sessionID); err != nil {
		s.log.WithError(err).Warn("Failed to clear cart after order")
	}

	s.notifier.Success(ctx, sessionID, "Order created successfully!")

	email := record.Email
	time.AfterFunc(s.confirmDelay, func() {
		s.notifier.Info(context.Background(), sessionID,
			fmt.Sprintf("Order confirmation sent to %s", email))
	})

	return o, nil
}

// resolveCustomer finds the backend record matching the session profile's
// email, creating one on first purchase. The second return value reports
// whether a new record was created during this attempt.
func (s *Service) resolveCustomer(ctx context.Context, profile *customer.Customer) (*customer.Customer, bool, error) {
	existing, err := s.customers.FindByEmail(ctx, profile.Email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, customer.ErrNotFound) {
		return nil, false, err
	}

	record := &customer.Customer{
		Name:    profile.Name,
		Email:   profile.Email,
		Phone:   profile.Phone,
		Address: profile.Address,
		UserID:  fmt.Sprintf("guest-%d", time.Now().UnixMilli()),
	}
	if err := s.customers.Create(ctx, record); err != nil {
		return nil, false, err
	}
	return record, true, nil
}

func itemsFromCart(c *cart.Cart) []OrderItem {
	items := make([]OrderItem, 0, len(c.Lines))
	for _, line := range c.Lines {
		items = append(items, OrderItem{
			ProductID: line.ProductID,
			Name:      line.Product.Name,
			Quantity:  line.Quantity,
			Price:     line.Product.Price,
		})
	}
	return items
}

// History returns the session's placed orders, oldest first.
func (s *Service) History(ctx context.Context, sessionID string) ([]Order, error) {
	return s.history.List(ctx, sessionID)
}

// Current returns the most recently placed order of the session, or
// ErrNotFound when the session has none.
func (s *Service) Current(ctx context.Context, sessionID string) (*Order, error) {
	orders, err := s.history.List(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, ErrNotFound
	}
	return &orders[len(orders)-1], nil
}

// Get loads a single order by ID from the backend.
func (s *Service) Get(ctx context.Context, id string) (*Order, error) {
	return s.store.FindOrder(ctx, id)
}

// UpdateStatus advances an order through its lifecycle. Only the
// pending -> processing -> shipped -> delivered chain is allowed.
func (s *Service) UpdateStatus(ctx context.Context, id string, next OrderStatus) (*Order, error) {
	o, err := s.store.FindOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if !o.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, next)
	}
	if err := s.store.UpdateOrderStatus(ctx, id, next); err != nil {
		return nil, err
	}
	o.Status = next
	return o, nil
}
