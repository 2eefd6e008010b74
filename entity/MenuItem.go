package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string `gorm:"size:150;not null" json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"` // pence
	ImageURL    string `json:"imageUrl"`
	Available   bool   `gorm:"default:true" json:"available"`

	Vegetarian bool `json:"vegetarian"`
	Vegan      bool `json:"vegan"`
	GlutenFree bool `json:"glutenFree"`

	CategoryID uint         `gorm:"index" json:"categoryId"`
	Category   MenuCategory `json:"-"`
}
