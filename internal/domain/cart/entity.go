// internal/domain/cart/entity.go
package cart

import (
	"time"

	"github.com/your-org/gearshop-backend/internal/domain/catalog"
)

// Line represents a single product selection in a cart. The product is a
// denormalized snapshot taken when the line was added.
type Line struct {
	ProductID string          `json:"product_id"`
	Product   catalog.Product `json:"product"`
	Quantity  int             `json:"quantity"`
	AddedAt   time.Time       `json:"added_at"`
}

// Cart represents a session's in-progress selection. Lines keep insertion
// order; at most one line exists per product.
type Cart struct {
	SessionID  string    `json:"session_id"`
	CustomerID string    `json:"customer_id,omitempty"`
	Lines      []Line    `json:"items"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Totals represents calculated cart totals
type Totals struct {
	ItemCount     int   `json:"item_count"`     // Number of unique lines
	TotalQuantity int   `json:"total_quantity"` // Sum of all quantities
	SubTotal      int64 `json:"sub_total"`      // Total before tax/shipping
}

// New creates an empty cart for the session
func New(sessionID string) *Cart {
	now := time.Now().UTC()
	return &Cart{
		SessionID: sessionID,
		Lines:     []Line{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Subtotal returns the sum of price x quantity over all lines, in cents
func (c *Cart) Subtotal() int64 {
	var subtotal int64
	for _, line := range c.Lines {
		subtotal += line.Product.Price * int64(line.Quantity)
	}
	return subtotal
}

// TotalQuantity returns the sum of all line quantities
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, line := range c.Lines {
		total += line.Quantity
	}
	return total
}

// CalculateTotals returns the cart summary figures
func (c *Cart) CalculateTotals() Totals {
	return Totals{
		ItemCount:     len(c.Lines),
		TotalQuantity: c.TotalQuantity(),
		SubTotal:      c.Subtotal(),
	}
}

// lineIndex returns the index of the line holding productID, or -1
func (c *Cart) lineIndex(productID string) int {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}
