package entity

import (
	"gorm.io/gorm"
)

type LoyaltyTransaction struct {
	gorm.Model
	AccountID uint   `gorm:"index;not null" json:"accountId"`
	Kind      string `gorm:"size:20;not null" json:"kind"` // earn | redeem
	Points    int64  `json:"points"`                       // positive for earn, negative for redeem

	OrderID *uint `json:"orderId,omitempty"`
}
