package lifecycle

// Status represents where an order currently sits in its lifecycle.
type Status string

const (
	StatusReceived       Status = "received"
	StatusPreparing      Status = "preparing"
	StatusReady          Status = "ready"            // collection orders only
	StatusOutForDelivery Status = "out_for_delivery" // delivery orders only
	StatusCompleted      Status = "completed"
	StatusCancelled      Status = "cancelled"
)

// OrderType is fixed at checkout and never changes afterwards.
type OrderType string

const (
	TypeCollection OrderType = "collection"
	TypeDelivery   OrderType = "delivery"
)

// PaymentStatus is an independent axis from Status: a completed order can
// still be refunded.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// Transition is the single legal "advance" action for an order, as shown to
// staff. Label is the button text the back-office renders.
type Transition struct {
	Label  string `json:"label"`
	Target Status `json:"targetStatus"`
}

// advance maps (current status, order type) to the one legal forward step.
// ready is unreachable for delivery orders and out_for_delivery for
// collection orders, so the inner maps only carry the reachable branch.
var advance = map[Status]map[OrderType]Transition{
	StatusReceived: {
		TypeCollection: {Label: "Start Preparing", Target: StatusPreparing},
		TypeDelivery:   {Label: "Start Preparing", Target: StatusPreparing},
	},
	StatusPreparing: {
		TypeCollection: {Label: "Mark as Ready", Target: StatusReady},
		TypeDelivery:   {Label: "Out for Delivery", Target: StatusOutForDelivery},
	},
	StatusReady: {
		TypeCollection: {Label: "Mark as Collected", Target: StatusCompleted},
	},
	StatusOutForDelivery: {
		TypeDelivery: {Label: "Mark as Delivered", Target: StatusCompleted},
	},
}

// NextTransition returns the single legal advance for the order, or nil when
// the status is terminal (or unreachable for the given order type). Pure
// function: same inputs always give the same answer.
func NextTransition(status Status, orderType OrderType) *Transition {
	byType, ok := advance[status]
	if !ok {
		return nil
	}
	t, ok := byType[orderType]
	if !ok {
		return nil
	}
	return &t
}

// IsTerminal reports whether no further status transitions are permitted.
func IsTerminal(status Status) bool {
	return status == StatusCompleted || status == StatusCancelled
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusReceived, StatusPreparing, StatusReady, StatusOutForDelivery, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Valid reports whether t is a known order type.
func (t OrderType) Valid() bool {
	return t == TypeCollection || t == TypeDelivery
}
