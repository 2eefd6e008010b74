package entity

import (
	"time"

	"gorm.io/gorm"
)

type ContactMessage struct {
	gorm.Model
	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"not null" json:"email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`

	ReadAt *time.Time `json:"readAt,omitempty"`
}
