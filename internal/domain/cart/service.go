// internal/domain/cart/service.go
package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/your-org/gearshop-backend/internal/domain/catalog"
	"github.com/your-org/gearshop-backend/internal/pkg/notification"
)

// ErrInsufficientStock is returned when a requested quantity exceeds the
// product's available stock
var ErrInsufficientStock = errors.New("insufficient stock")

// Manager maintains the per-session cart and keeps it durable. Every
// mutation is written through to the store before the call returns.
type Manager struct {
	store    Store
	notifier notification.Notifier
}

// NewManager creates a new cart manager
func NewManager(store Store, notifier notification.Notifier) *Manager {
	return &Manager{
		store:    store,
		notifier: notifier,
	}
}

// Get retrieves the session's cart. A session with no persisted cart has
// a valid empty cart.
func (m *Manager) Get(ctx context.Context, sessionID string) (*Cart, error) {
	cart, err := m.store.Load(ctx, sessionID)
	if errors.Is(err, ErrNotFound) {
		return New(sessionID), nil
	} else if err != nil {
		return nil, err
	}
	return cart, nil
}

// AddItem adds one unit of the product to the cart, incrementing the
// existing line when present. The resulting quantity must not exceed the
// product's stock.
func (m *Manager) AddItem(ctx context.Context, sessionID string, product catalog.Product) (*Cart, error) {
	cart, err := m.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if i := cart.lineIndex(product.ID); i >= 0 {
		next := cart.Lines[i].Quantity + 1
		if next > product.Stock {
			return nil, fmt.Errorf("%w for %s: available %d", ErrInsufficientStock, product.Name, product.Stock)
		}
		cart.Lines[i].Quantity = next
		cart.Lines[i].Product = product // refresh snapshot in case the price changed
		m.notifier.Success(ctx, sessionID, fmt.Sprintf("Added another %s to cart", product.Name))
	} else {
		if product.Stock < 1 {
			return nil, fmt.Errorf("%w for %s: available %d", ErrInsufficientStock, product.Name, product.Stock)
		}
		cart.Lines = append(cart.Lines, Line{
			ProductID: product.ID,
			Product:   product,
			Quantity:  1,
			AddedAt:   time.Now().UTC(),
		})
		m.notifier.Success(ctx, sessionID, fmt.Sprintf("%s added to cart", product.Name))
	}

	cart.UpdatedAt = time.Now().UTC()
	if err := m.store.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveItem deletes the line for the product. Removing an absent product
// is a no-op apart from the notification, which falls back to a generic name.
func (m *Manager) RemoveItem(ctx context.Context, sessionID, productID string) (*Cart, error) {
	cart, err := m.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	name := "Item"
	if i := cart.lineIndex(productID); i >= 0 {
		name = cart.Lines[i].Product.Name
		cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)
	}

	cart.UpdatedAt = time.Now().UTC()
	if err := m.store.Save(ctx, cart); err != nil {
		return nil, err
	}

	m.notifier.Info(ctx, sessionID, fmt.Sprintf("%s removed from cart", name))
	return cart, nil
}

// SetQuantity replaces the quantity of an existing line. A quantity of
// zero or less removes the line; an unknown product is a no-op.
func (m *Manager) SetQuantity(ctx context.Context, sessionID, productID string, quantity int) (*Cart, error) {
	cart, err := m.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	i := cart.lineIndex(productID)
	if i < 0 {
		return cart, nil
	}

	if quantity <= 0 {
		cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)
	} else {
		if quantity > cart.Lines[i].Product.Stock {
			return nil, fmt.Errorf("%w for %s: available %d",
				ErrInsufficientStock, cart.Lines[i].Product.Name, cart.Lines[i].Product.Stock)
		}
		cart.Lines[i].Quantity = quantity
	}

	cart.UpdatedAt = time.Now().UTC()
	if err := m.store.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Clear resets the session to an empty cart. The key is removed from the
// store; an absent key reads back as the empty cart.
func (m *Manager) Clear(ctx context.Context, sessionID string) error {
	return m.store.Delete(ctx, sessionID)
}

// Count returns the total quantity across all lines, for the cart badge
func (m *Manager) Count(ctx context.Context, sessionID string) (int, error) {
	cart, err := m.Get(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return cart.TotalQuantity(), nil
}
