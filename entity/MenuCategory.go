package entity

import (
	"gorm.io/gorm"
)

type MenuCategory struct {
	gorm.Model
	Name      string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	SortOrder int    `json:"sortOrder"`

	Items []MenuItem `gorm:"foreignKey:CategoryID" json:"-"`
}
