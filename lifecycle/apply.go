package lifecycle

import (
	"errors"
	"time"
)

var (
	ErrTerminalStatus    = errors.New("order is in a terminal status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrCancelWindow      = errors.New("customer cancellation window has closed")
	ErrRefundNotAllowed  = errors.New("order is not eligible for a refund")
)

// Actor is who is attempting a transition. It picks the cancellation gate;
// advances are actor-independent.
type Actor string

const (
	ActorCustomer Actor = "customer"
	ActorStaff    Actor = "staff"
)

// HistoryEntry is one append-only record of a status change.
type HistoryEntry struct {
	Status          Status
	ChangedByUserID uint
	ChangedAt       time.Time
	Notes           string
}

// Order is the state-machine view of an order: just the fields the engine
// reads and writes. Callers map their persistence model in and out.
type Order struct {
	Status      Status
	Type        OrderType
	CreatedAt   time.Time
	CompletedAt *time.Time
	CancelledAt *time.Time
	History     []HistoryEntry
}

// ValidateAdvance returns nil iff target is the single legal next status for
// the order. Rejected locally before any network or database work.
func ValidateAdvance(status Status, orderType OrderType, target Status) error {
	next := NextTransition(status, orderType)
	if next == nil {
		if IsTerminal(status) {
			return ErrTerminalStatus
		}
		return ErrInvalidTransition
	}
	if next.Target != target {
		return ErrInvalidTransition
	}
	return nil
}

// ValidateCancel applies the cancellation gate for the given actor.
func ValidateCancel(status Status, actor Actor, createdAt, now time.Time) error {
	if IsTerminal(status) {
		return ErrTerminalStatus
	}
	if actor == ActorCustomer && !CanCustomerCancel(status, createdAt, now) {
		return ErrCancelWindow
	}
	return nil
}

// ApplyTransition moves the order to target, appending exactly one history
// entry and stamping completed_at/cancelled_at when a terminal status is
// reached. target must be the legal advance, or cancelled with the actor's
// cancel gate passing; anything else leaves the order untouched and returns
// an error.
func ApplyTransition(o *Order, target Status, actor Actor, actorID uint, notes string, now time.Time) error {
	if target == StatusCancelled {
		if err := ValidateCancel(o.Status, actor, o.CreatedAt, now); err != nil {
			return err
		}
	} else if err := ValidateAdvance(o.Status, o.Type, target); err != nil {
		return err
	}

	o.Status = target
	o.History = append(o.History, HistoryEntry{
		Status:          target,
		ChangedByUserID: actorID,
		ChangedAt:       now,
		Notes:           notes,
	})

	switch target {
	case StatusCompleted:
		if o.CompletedAt == nil {
			t := now
			o.CompletedAt = &t
		}
	case StatusCancelled:
		if o.CancelledAt == nil {
			t := now
			o.CancelledAt = &t
		}
	}
	return nil
}
