package entity

import (
	"gorm.io/gorm"
)

// Cart is the one open cart per user; checkout empties it.
type Cart struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null" json:"userId"`
	User   User `json:"-"`

	Items []CartItem `gorm:"foreignKey:CartID" json:"items"`
}
