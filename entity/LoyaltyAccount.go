package entity

import (
	"gorm.io/gorm"
)

type LoyaltyAccount struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null" json:"userId"`

	// Balance never goes negative; every change has a ledger row.
	PointsBalance int64 `json:"pointsBalance"`

	Transactions []LoyaltyTransaction `gorm:"foreignKey:AccountID" json:"-"`
}
