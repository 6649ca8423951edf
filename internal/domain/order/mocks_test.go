package order

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/your-org/gearshop-backend/internal/domain/cart"
	"github.com/your-org/gearshop-backend/internal/domain/customer"
)

type mockOrderStore struct {
	orders      map[string]*Order
	createCalls int
	failCreate  bool
}

func newMockOrderStore() *mockOrderStore {
	return &mockOrderStore{orders: map[string]*Order{}}
}

func (s *mockOrderStore) CreateOrder(_ context.Context, o *Order) error {
	s.createCalls++
	if s.failCreate {
		return errors.New("insert failed")
	}
	if o.ID == "" {
		o.ID = fmt.Sprintf("order-%d", len(s.orders)+1)
	}
	if o.Status == "" {
		o.Status = StatusPending
	}
	for i := range o.Items {
		o.Items[i].OrderID = o.ID
	}
	copied := *o
	s.orders[o.ID] = &copied
	return nil
}

func (s *mockOrderStore) FindOrder(_ context.Context, id string) (*Order, error) {
	o, ok := s.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *o
	return &copied, nil
}

func (s *mockOrderStore) UpdateOrderStatus(_ context.Context, id string, status OrderStatus) error {
	o, ok := s.orders[id]
	if !ok {
		return ErrNotFound
	}
	o.Status = status
	return nil
}

type mockCustomerRepo struct {
	byEmail     map[string]*customer.Customer
	createCalls int
	findCalls   int
	deleted     []string
}

func newMockCustomerRepo() *mockCustomerRepo {
	return &mockCustomerRepo{byEmail: map[string]*customer.Customer{}}
}

func (r *mockCustomerRepo) FindByEmail(_ context.Context, email string) (*customer.Customer, error) {
	r.findCalls++
	c, ok := r.byEmail[email]
	if !ok {
		return nil, customer.ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *mockCustomerRepo) Create(_ context.Context, c *customer.Customer) error {
	r.createCalls++
	if c.ID == "" {
		c.ID = fmt.Sprintf("cust-%d", len(r.byEmail)+1)
	}
	copied := *c
	r.byEmail[c.Email] = &copied
	return nil
}

func (r *mockCustomerRepo) Update(_ context.Context, c *customer.Customer) error {
	copied := *c
	r.byEmail[c.Email] = &copied
	return nil
}

func (r *mockCustomerRepo) Delete(_ context.Context, id string) error {
	r.deleted = append(r.deleted, id)
	for email, c := range r.byEmail {
		if c.ID == id {
			delete(r.byEmail, email)
		}
	}
	return nil
}

type memoryHistory struct {
	entries map[string][]Order
}

func newMemoryHistory() *memoryHistory {
	return &memoryHistory{entries: map[string][]Order{}}
}

func (h *memoryHistory) Append(_ context.Context, sessionID string, o *Order) error {
	h.entries[sessionID] = append(h.entries[sessionID], *o)
	return nil
}

func (h *memoryHistory) List(_ context.Context, sessionID string) ([]Order, error) {
	return h.entries[sessionID], nil
}

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
	copied := *p
	return &copied, nil
}

func (s *memoryProfileStore) Save(_ context.Context, sessionID string, c *customer.Customer) error {
	copied := *c
	s.profiles[sessionID] = &copied
	return nil
}

func (s *memoryProfileStore) Delete(_ context.Context, sessionID string) error {
	delete(s.profiles, sessionID)
	return nil
}

// captureNotifier records messages; safe for the delayed confirmation
// goroutine.
type captureNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *captureNotifier) record(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
}

func (n *captureNotifier) all() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.messages...)
}

func (n *captureNotifier) Success(_ context.Context, _ string, message string) { n.record(message) }
func (n *captureNotifier) Info(_ context.Context, _ string, message string)    { n.record(message) }
func (n *captureNotifier) Error(_ context.Context, _ string, message string)   { n.record(message) }
