package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Name      string `json:"name"` // menu item name at order time
	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unitPrice"`
	Total     int64  `json:"total"`
	Note      string `json:"note"`

	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"` // preload only when the live item is needed
}
