package lifecycle

import "time"

// CustomerCancelWindow is how long after placing an order a customer may
// still cancel it themselves. Once elapsed, or once the order moves past
// received, only staff can cancel.
const CustomerCancelWindow = 5 * time.Minute

// CanCustomerCancel reports whether the customer may cancel the order at
// instant now. Both conditions are hard: status must still be received and
// the window must not have elapsed.
func CanCustomerCancel(status Status, createdAt, now time.Time) bool {
	if status != StatusReceived {
		return false
	}
	return now.Sub(createdAt) < CustomerCancelWindow
}

// CanStaffCancel reports whether staff or admin may cancel. No time window:
// any non-terminal order can be cancelled.
func CanStaffCancel(status Status) bool {
	return !IsTerminal(status)
}

// CanRefund reports whether a refund may be issued. A recorded refund,
// partial or full, blocks further refunds.
func CanRefund(paymentStatus PaymentStatus, status Status, refundAmount *int64) bool {
	if paymentStatus != PaymentPaid {
		return false
	}
	if status == StatusCancelled {
		return false
	}
	return refundAmount == nil
}
