package entity

import (
	"gorm.io/gorm"
)

const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
	RoleManager  = "manager"
	RoleAdmin    = "admin"
)

type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `json:"-"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `gorm:"not null;default:customer" json:"role"` // customer | staff | manager | admin

	// Relations — preload only when needed
	Orders         []Order         `json:"-"`
	PaymentMethods []PaymentMethod `json:"-"`
	LoyaltyAccount *LoyaltyAccount `gorm:"foreignKey:UserID" json:"-"`
}
