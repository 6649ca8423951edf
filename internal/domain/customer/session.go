// internal/domain/customer/session.go
package customer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/your-org/gearshop-backend/internal/domain/cart"
	"github.com/your-org/gearshop-backend/internal/pkg/notification"
)

// Manager governs the customer attached to a browsing session: sign-in,
// profile updates and sign-out. The backend record only comes into play
// once an order resolves the customer by email.
type Manager struct {
	store    Store
	repo     Repository
	carts    *cart.Manager
	notifier notification.Notifier
}

// NewManager creates a new session manager
func NewManager(store Store, repo Repository, carts *cart.Manager, notifier notification.Notifier) *Manager {
	return &Manager{
		store:    store,
		repo:     repo,
		carts:    carts,
		notifier: notifier,
	}
}

// Establish attaches a customer profile to the session. No backend record
// is created here; that is deferred until checkout.
func (m *Manager) Establish(ctx context.Context, sessionID string, profile *Customer) (*Customer, error) {
	profile.Email = strings.ToLower(strings.TrimSpace(profile.Email))
	profile.Name = strings.TrimSpace(profile.Name)
	if profile.Name == "" || profile.Email == "" {
		return nil, fmt.Errorf("name and email are required")
	}

	if err := m.store.Save(ctx, sessionID, profile); err != nil {
		return nil, fmt.Errorf("failed to establish session: %w", err)
	}

	m.notifier.Success(ctx, sessionID, fmt.Sprintf("Welcome, %s!", profile.Name))
	return profile, nil
}

// Current returns the customer attached to the session, or ErrNoProfile.
func (m *Manager) Current(ctx context.Context, sessionID string) (*Customer, error) {
	return m.store.Load(ctx, sessionID)
}

// Update replaces the session profile. When the profile already carries a
// backend ID the persisted record is updated as well.
func (m *Manager) Update(ctx context.Context, sessionID string, profile *Customer) (*Customer, error) {
	existing, err := m.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	profile.Email = strings.ToLower(strings.TrimSpace(profile.Email))
	profile.ID = existing.ID
	profile.UserID = existing.UserID

	if profile.ID != "" {
		if err := m.repo.Update(ctx, profile); err != nil {
			return nil, err
		}
	}
	if err := m.store.Save(ctx, sessionID, profile); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	m.notifier.Success(ctx, sessionID, "Profile updated successfully")
	return profile, nil
}

// RecordCustomerID writes a resolved backend customer ID back onto the
// session profile so later orders reuse the same record.
func (m *Manager) RecordCustomerID(ctx context.Context, sessionID, customerID string) error {
	profile, err := m.store.Load(ctx, sessionID)
	if err != nil {
		return err
	}
	profile.ID = customerID
	return m.store.Save(ctx, sessionID, profile)
}

// Exit detaches the customer from the session and empties its cart.
// Calling Exit on a session without a customer is a no-op.
func (m *Manager) Exit(ctx context.Context, sessionID string) error {
	if err := m.store.Delete(ctx, sessionID); err != nil && !errors.Is(err, ErrNoProfile) {
		return fmt.Errorf("failed to exit session: %w", err)
	}
	if err := m.carts.Clear(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to clear cart on exit: %w", err)
	}

	m.notifier.Success(ctx, sessionID, "Logged out successfully")
	return nil
}
