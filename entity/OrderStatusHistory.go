package entity

import (
	"time"

	"gorm.io/gorm"

	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/lifecycle"
)

// OrderStatusHistory is append-only: one row per transition, newest row's
// status always equals the order's current status.
type OrderStatusHistory struct {
	gorm.Model
	OrderID uint  `gorm:"index;not null" json:"orderId"`
	Order   Order `json:"-"`

	Status          lifecycle.Status `gorm:"size:30;not null" json:"status"`
	ChangedByUserID uint             `json:"changedByUserId"` // the customer on the creation row, staff afterwards
	ChangedAt       time.Time        `gorm:"not null" json:"changedAt"`
	Notes           string           `json:"notes,omitempty"`
}
