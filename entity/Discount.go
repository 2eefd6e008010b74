package entity

import (
	"time"

	"gorm.io/gorm"
)

type Discount struct {
	gorm.Model
	Code        string `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Description string `json:"description"`

	DiscountType string `gorm:"size:20;not null" json:"discountType"` // percent | fixed
	Value        int64  `json:"value"`                                // percent points or pence
	MinOrder     int64  `json:"minOrder"`                             // pence, 0 = no minimum

	StartAt *time.Time `json:"startAt,omitempty"`
	EndAt   *time.Time `json:"endAt,omitempty"`

	MaxUses   int  `json:"maxUses"` // 0 = unlimited
	UsedCount int  `json:"usedCount"`
	Active    bool `json:"active"` // no column default: false must survive the insert
}
