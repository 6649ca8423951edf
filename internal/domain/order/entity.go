// internal/domain/order/entity.go
package order

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderStatus represents the order lifecycle
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
)

// Order represents an order placed by a customer. Total is the cart
// subtotal in cents; tax and shipping are computed at display time.
type Order struct {
	ID              string         `gorm:"primaryKey;size:36" json:"id"`
	CustomerID      string         `gorm:"size:36;not null;index" json:"customer_id"`
	Total           int64          `gorm:"not null" json:"total"`
	ShippingAddress string         `gorm:"type:text;not null" json:"shipping_address"`
	Status          OrderStatus    `gorm:"size:20;default:'pending'" json:"status"`
	OrderDate       time.Time      `gorm:"not null" json:"order_date"`
	Items           []OrderItem    `gorm:"foreignKey:OrderID" json:"items"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// OrderItem is a single line of an order. Name and Price snapshot the
// product at the time the order was placed.
type OrderItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderID   string    `gorm:"size:36;not null;index" json:"order_id"`
	ProductID string    `gorm:"size:36;not null" json:"product_id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Price     int64     `gorm:"not null" json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides the table name
func (Order) TableName() string {
	return "orders"
}

// TableName overrides the table name
func (OrderItem) TableName() string {
	return "order_items"
}

// BeforeCreate hook to handle business logic before order creation
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	if o.OrderDate.IsZero() {
		o.OrderDate = time.Now()
	}
	if o.Status == "" {
		o.Status = StatusPending
	}
	return nil
}

// CanTransitionTo reports whether the status may advance to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusProcessing
	case StatusProcessing:
		return next == StatusShipped
	case StatusShipped:
		return next == StatusDelivered
	default:
		return false
	}
}
