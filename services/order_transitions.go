package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/entity"
	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/lifecycle"
	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/repository"
)

// ErrConflict means the order's status moved between read and write: another
// staff session got there first. The guard in the repository is the arbiter;
// callers should re-fetch and retry.
var ErrConflict = errors.New("order changed since it was loaded, refresh and retry")

// Advance moves the order to target, which must be the single legal next
// status for its type. The engine validates locally, then the transactional
// compare-and-set enforces it again against the live row. Cancellation is
// not an advance: it carries cancelled_at and a reason, so it only goes
// through StaffCancel/CustomerCancel.
func (s *OrderService) Advance(staffID, orderID uint, target lifecycle.Status, notes string) error {
	if target == lifecycle.StatusCancelled {
		return lifecycle.ErrInvalidTransition
	}

	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return err
	}

	snap := lifecycle.Order{
		Status:      o.Status,
		Type:        o.OrderType,
		CreatedAt:   o.CreatedAt,
		CompletedAt: o.CompletedAt,
		CancelledAt: o.CancelledAt,
	}
	now := time.Now()
	if err := lifecycle.ApplyTransition(&snap, target, lifecycle.ActorStaff, staffID, notes, now); err != nil {
		return err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, target, repository.StatusUpdate{
			CompletedAt: snap.CompletedAt,
		})
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrConflict
		}

		entry := snap.History[len(snap.History)-1]
		h := entity.OrderStatusHistory{
			OrderID:         o.ID,
			Status:          entry.Status,
			ChangedByUserID: entry.ChangedByUserID,
			ChangedAt:       entry.ChangedAt,
			Notes:           entry.Notes,
		}
		if err := s.Repo.AppendStatusHistory(tx, &h); err != nil {
			return err
		}

		// completing an order earns the customer loyalty points
		if target == lifecycle.StatusCompleted {
			if pts := o.TotalAmount / earnPencePerPoint; pts > 0 {
				acc, err := s.LoyaltyRepo.GetOrCreateAccount(tx, o.UserID)
				if err != nil {
					return err
				}
				oid := o.ID
				if _, err := s.LoyaltyRepo.Adjust(tx, acc.ID, pts, "earn", &oid); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	publish(s.Events, OrderEvent{
		Type:        "status_changed",
		OrderID:     o.ID,
		OrderNumber: o.OrderNumber,
		Status:      target,
	})
	return nil
}

// CustomerCancel applies the hard 5-minute window: only the order's owner,
// only while still received, never after the window.
func (s *OrderService) CustomerCancel(userID, orderID uint, reason string) error {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		return err
	}
	return s.cancel(o, lifecycle.ActorCustomer, userID, reason)
}

// StaffCancel has no window: any non-terminal order can be cancelled.
func (s *OrderService) StaffCancel(staffID, orderID uint, reason string) error {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return err
	}
	return s.cancel(o, lifecycle.ActorStaff, staffID, reason)
}

func (s *OrderService) cancel(o *entity.Order, actor lifecycle.Actor, actorID uint, reason string) error {
	snap := lifecycle.Order{
		Status:      o.Status,
		Type:        o.OrderType,
		CreatedAt:   o.CreatedAt,
		CompletedAt: o.CompletedAt,
		CancelledAt: o.CancelledAt,
	}
	now := time.Now()
	if err := lifecycle.ApplyTransition(&snap, lifecycle.StatusCancelled, actor, actorID, reason, now); err != nil {
		return err
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, lifecycle.StatusCancelled, repository.StatusUpdate{
			CancelledAt:        snap.CancelledAt,
			CancellationReason: reason,
		})
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrConflict
		}

		entry := snap.History[len(snap.History)-1]
		h := entity.OrderStatusHistory{
			OrderID:         o.ID,
			Status:          lifecycle.StatusCancelled,
			ChangedByUserID: entry.ChangedByUserID,
			ChangedAt:       entry.ChangedAt,
			Notes:           entry.Notes,
		}
		return s.Repo.AppendStatusHistory(tx, &h)
	})
	if err != nil {
		return err
	}

	publish(s.Events, OrderEvent{
		Type:        "status_changed",
		OrderID:     o.ID,
		OrderNumber: o.OrderNumber,
		Status:      lifecycle.StatusCancelled,
	})
	return nil
}

var (
	ErrRefundAmount = errors.New("refund amount must be positive and at most the order total")
)

// Refund records a refund against a paid order. Independent of the status
// axis except that cancelled orders are refunded through cancellation flows,
// not here. One refund per order, partial or full.
func (s *OrderService) Refund(adminID, orderID uint, amount int64, reason string) error {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return err
	}
	if !lifecycle.CanRefund(o.PaymentStatus, o.Status, o.RefundAmount) {
		return lifecycle.ErrRefundNotAllowed
	}
	if amount <= 0 || amount > o.TotalAmount {
		return ErrRefundAmount
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.RecordRefund(tx, o.ID, amount, reason, time.Now())
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrConflict
		}
		return nil
	})
	if err != nil {
		return err
	}

	publish(s.Events, OrderEvent{
		Type:        "order_refunded",
		OrderID:     o.ID,
		OrderNumber: o.OrderNumber,
		Status:      o.Status,
	})
	return nil
}
