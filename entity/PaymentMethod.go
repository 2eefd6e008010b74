package entity

import (
	"gorm.io/gorm"
)

// PaymentMethod is a saved card reference. Only the provider token and
// display fields are stored, never the PAN.
type PaymentMethod struct {
	gorm.Model
	UserID uint `gorm:"index;not null" json:"userId"`

	Brand       string `gorm:"size:30" json:"brand"`
	Last4       string `gorm:"size:4" json:"last4"`
	ExpMonth    int    `json:"expMonth"`
	ExpYear     int    `json:"expYear"`
	IsDefault   bool   `json:"isDefault"`
	ProviderRef string `gorm:"size:64" json:"-"` // opaque token from the payment provider
}
