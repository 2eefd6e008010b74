package entity

import (
	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unitPrice"` // snapshot at add time
	Total     int64  `json:"total"`
	Note      string `json:"note"`

	CartID uint `gorm:"index;not null" json:"cartId"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`
}
