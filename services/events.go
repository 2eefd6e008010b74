package services

import (
	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/lifecycle"
)

// OrderEvent is pushed to connected staff clients after a successful
// mutation so queue views reconcile without waiting for a poll.
type OrderEvent struct {
	Type        string           `json:"type"` // order_created | status_changed | order_refunded
	OrderID     uint             `json:"orderId"`
	OrderNumber string           `json:"orderNumber"`
	Status      lifecycle.Status `json:"status"`
}

// OrderEventPublisher is implemented by the ws hub; services hold it as an
// interface so the package stays free of transport imports.
type OrderEventPublisher interface {
	Publish(OrderEvent)
}

func publish(p OrderEventPublisher, evt OrderEvent) {
	if p != nil {
		p.Publish(evt)
	}
}
