// internal/domain/customer/entity.go
package customer

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer represents the customer entity. The ID stays empty until the
// record has been persisted to the backend.
type Customer struct {
	ID        string         `gorm:"primaryKey;size:36" json:"id,omitempty"`
	Name      string         `gorm:"not null;size:255" json:"name"`
	Email     string         `gorm:"uniqueIndex;not null;size:255" json:"email"`
	Phone     string         `gorm:"size:20" json:"phone"`
	Address   string         `gorm:"size:500" json:"address,omitempty"`
	UserID    string         `gorm:"size:100" json:"user_id,omitempty"` // synthesized identifier for guest checkout
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName overrides the table name
func (Customer) TableName() string {
	return "customers"
}

// BeforeCreate hook to handle business logic before customer creation
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	c.Email = strings.ToLower(c.Email)
	return nil
}
