package entity

import (
	"time"

	"gorm.io/gorm"
)

// Catering inquiry pipeline: new -> contacted -> quoted -> confirmed,
// closed reachable from any non-final state.
const (
	CateringNew       = "new"
	CateringContacted = "contacted"
	CateringQuoted    = "quoted"
	CateringConfirmed = "confirmed"
	CateringClosed    = "closed"
)

type CateringInquiry struct {
	gorm.Model
	Name        string     `gorm:"not null" json:"name"`
	Email       string     `gorm:"not null" json:"email"`
	PhoneNumber string     `json:"phoneNumber"`
	EventDate   *time.Time `json:"eventDate,omitempty"`
	GuestCount  int        `json:"guestCount"`
	Message     string     `json:"message"`

	Status     string `gorm:"size:20;not null;default:new" json:"status"`
	StaffNotes string `json:"staffNotes,omitempty"`
}
