package entity

import (
	"time"

	"gorm.io/gorm"

	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/lifecycle"
)

type Order struct {
	gorm.Model
	OrderNumber string              `gorm:"size:20;uniqueIndex;not null" json:"orderNumber"`
	OrderType   lifecycle.OrderType `gorm:"size:20;not null" json:"orderType"` // collection | delivery
	Status      lifecycle.Status    `gorm:"size:30;not null;index" json:"status"`

	// Monetary snapshot, pence. Immutable once placed except via refund/cancel.
	Subtotal       int64  `json:"subtotal"`
	DiscountAmount int64  `json:"discountAmount"`
	DeliveryFee    *int64 `json:"deliveryFee,omitempty"` // delivery orders only
	TaxAmount      int64  `json:"taxAmount"`
	TotalAmount    int64  `json:"totalAmount"`

	PaymentStatus lifecycle.PaymentStatus `gorm:"size:20;not null" json:"paymentStatus"`
	DiscountCode  string                  `gorm:"size:50" json:"discountCode,omitempty"`
	PointsUsed    int64                   `json:"pointsUsed"`

	// Exactly one of these is set, matching OrderType.
	CollectionTimeSlot *string `gorm:"size:50" json:"collectionTimeSlot,omitempty"`
	DeliveryAddress    *string `json:"deliveryAddress,omitempty"` // snapshot at checkout

	CompletedAt        *time.Time `json:"completedAt,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
	CancellationReason string     `json:"cancellationReason,omitempty"`

	RefundAmount *int64     `json:"refundAmount,omitempty"`
	RefundReason string     `json:"refundReason,omitempty"`
	RefundedAt   *time.Time `json:"refundedAt,omitempty"`

	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	// preload on detail endpoints only
	Items         []OrderItem          `json:"-"`
	StatusHistory []OrderStatusHistory `json:"-"`
}
