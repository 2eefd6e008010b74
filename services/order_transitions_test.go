package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/entity"
	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/lifecycle"
	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/repository"
)

func placeOrder(t *testing.T, db *gorm.DB, svc *OrderService, orderType string) (*entity.User, uint) {
	t.Helper()
	user := seedCustomerWithCart(t, db)

	req := &CheckoutReq{OrderType: orderType}
	if orderType == "collection" {
		req.CollectionTimeSlot = "12:30-12:45"
	} else {
		req.DeliveryAddress = "4 Harbour Lane, Whitby"
	}
	out, err := svc.Checkout(user.ID, req)
	require.NoError(t, err)
	return user, out.ID
}

func TestAdvanceFullCollectionLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := newTestOrderService(db)
	user, orderID := placeOrder(t, db, svc, "collection")

	staffID := uint(99)
	for _, target := range []lifecycle.Status{
		lifecycle.StatusPreparing, lifecycle.StatusReady, lifecycle.StatusCompleted,
	} {
		require.NoError(t, svc.Advance(staffID, orderID, target, ""))
	}

	var o entity.Order
	require.NoError(t, db.First(&o, orderID).Error)
	assert.Equal(t, lifecycle.StatusCompleted, o.Status)
	require.NotNil(t, o.CompletedAt)
	assert.Nil(t, o.CancelledAt)

	history, err := svc.Repo.GetStatusHistory(orderID)
	require.NoError(t, err)
	require.Len(t, history, 4)
	assert.Equal(t, o.Status, history[len(history)-1].Status)
	for i := 1; i < len(history); i++ {
		assert.False(t, history[i].ChangedAt.Before(history[i-1].ChangedAt))
	}

	// completion earned 1 point per whole pound of the 24.00 total
	acc, err := svc.LoyaltyRepo.GetOrCreateAccount(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(24), acc.PointsBalance)
}

func TestAdvanceRejectsWrongBranch(t *testing.T) {
	db := newTestDB(t)
	svc := newTestOrderService(db)
	_, orderID := placeOrder(t, db, svc, "delivery")

	require.NoError(t, svc.Advance(1, orderID, lifecycle.StatusPreparing, ""))

	// ready is the collection branch; delivery goes out_for_delivery
	err := svc.Advance(1, orderID, lifecycle.StatusReady, "")
	assert.ErrorIs(t, err, lifecycle.ErrInvalidTransition)

	require.NoError(t, svc.Advance(1, orderID, lifecycle.StatusOutForDelivery, ""))
	require.NoError(t, svc.Advance(1, orderID, lifecycle.StatusCompleted, ""))

	err = svc.Advance(1, orderID, lifecycle.StatusPreparing, "")
	assert.ErrorIs(t, err, lifecycle.ErrTerminalStatus)
}

func TestAdvanceRejectsCancelledTarget(t *testing.T) {
	db := newTestDB(t)
	svc := newTestOrderService(db)
	_, orderID := placeOrder(t, db, svc, "collection")

	// cancellation must go through the cancel path, never the status endpoint
	err := svc.Advance(7, orderID, lifecycle.StatusCancelled, "walked off")
	assert.ErrorIs(t, err, lifecycle.ErrInvalidTransition)

	var o entity.Order
	require.NoError(t, db.First(&o, orderID).Error)
	assert.Equal(t, lifecycle.StatusReceived, o.Status)
	assert.Nil(t, o.CancelledAt)
	assert.Empty(t, o.CancellationReason)

	history, err := svc.Repo.GetStatusHistory(orderID)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestStatusGuardDetectsStaleWrite(t *testing.T) {
	db := newTestDB(t)
	svc := newTestOrderService(db)
	_, orderID := placeOrder(t, db, svc, "collection")

	require.NoError(t, svc.Advance(1, orderID, lifecycle.StatusPreparing, ""))

	// a second session still thinks the order is received
	affected, err := svc.Repo.UpdateStatusGuard(db, orderID,
		lifecycle.StatusReceived, lifecycle.StatusPreparing, repository.StatusUpdate{})
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestCustomerCancelInsideWindow(t *testing.T) {
	db := newTestDB(t)
	svc := newTestOrderService(db)
	user, orderID := placeOrder(t, db, svc, "collection")

	require.NoError(t, svc.CustomerCancel(user.ID, orderID, "ordered twice by mistake"))

	var o entity.Order
	require.NoError(t, db.First(&o, orderID).Error)
	assert.Equal(t, lifecycle.StatusCancelled, o.Status)
	require.NotNil(t, o.CancelledAt)
	assert.Equal(t, "ordered twice by mistake", o.CancellationReason)

	// cancelled orders show no timeline
	detail, err := svc.DetailForUser(user.ID, orderID)
	require.NoError(t, err)
	assert.Nil(t, detail.Timeline)
	assert.Nil(t, detail.NextTransition)

	// terminal: nothing else may happen
	err = svc.CustomerCancel(user.ID, orderID, "again")
	assert.ErrorIs(t, err, lifecycle.ErrTerminalStatus)
	err = svc.Advance(1, orderID, lifecycle.StatusPreparing, "")
	assert.ErrorIs(t, err, lifecycle.ErrTerminalStatus)
}

func TestCustomerCancelWindowExpired(t *testing.T) {
	db := newTestDB(t)
	svc := newTestOrderService(db)
	user, orderID := placeOrder(t, db, svc, "collection")

	// backdate the order past the window
	require.NoError(t, db.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("created_at", time.Now().Add(-6*time.Minute)).Error)

	err := svc.CustomerCancel(user.ID, orderID, "too slow")
	assert.ErrorIs(t, err, lifecycle.ErrCancelWindow)

	var o entity.Order
	require.NoError(t, db.First(&o, orderID).Error)
	assert.Equal(t, lifecycle.StatusReceived, o.Status)
}

func TestCustomerCancelBlockedOnceAdvanced(t *testing.T) {
	db := newTestDB(t)
	svc := newTestOrderService(db)
	user, orderID := placeOrder(t, db, svc, "collection")

	require.NoError(t, svc.Advance(1, orderID, lifecycle.StatusPreparing, ""))

	// seconds old, but already past received
	err := svc.CustomerCancel(user.ID, orderID, "changed my mind")
	assert.ErrorIs(t, err, lifecycle.ErrCancelWindow)
}

func TestStaffCancelHasNoWindow(t *testing.T) {
	db := newTestDB(t)
	svc := newTestOrderService(db)
	_, orderID := placeOrder(t, db, svc, "delivery")

	require.NoError(t, svc.Advance(1, orderID, lifecycle.StatusPreparing, ""))
	require.NoError(t, svc.Advance(1, orderID, lifecycle.StatusOutForDelivery, ""))

	require.NoError(t, db.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("created_at", time.Now().Add(-2*time.Hour)).Error)

	require.NoError(t, svc.StaffCancel(42, orderID, "customer unreachable"))

	var o entity.Order
	require.NoError(t, db.First(&o, orderID).Error)
	assert.Equal(t, lifecycle.StatusCancelled, o.Status)
}

func TestRefundLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := newTestOrderService(db)
	_, orderID := placeOrder(t, db, svc, "collection")

	// unpaid orders cannot be refunded
	err := svc.Refund(1, orderID, 500, "cold food")
	assert.ErrorIs(t, err, lifecycle.ErrRefundNotAllowed)

	_, err = svc.Repo.MarkPaid(db, orderID)
	require.NoError(t, err)

	var o entity.Order
	require.NoError(t, db.First(&o, orderID).Error)

	err = svc.Refund(1, orderID, o.TotalAmount+1, "too much")
	assert.ErrorIs(t, err, ErrRefundAmount)

	require.NoError(t, svc.Refund(1, orderID, 500, "cold food"))

	require.NoError(t, db.First(&o, orderID).Error)
	require.NotNil(t, o.RefundAmount)
	assert.Equal(t, int64(500), *o.RefundAmount)
	assert.Equal(t, lifecycle.PaymentRefunded, o.PaymentStatus)
	require.NotNil(t, o.RefundedAt)

	// a recorded refund, even partial, blocks a second one
	err = svc.Refund(1, orderID, 100, "top up")
	assert.ErrorIs(t, err, lifecycle.ErrRefundNotAllowed)
}

func TestQueueListsActiveOldestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := newTestOrderService(db)

	_, first := placeOrder(t, db, svc, "collection")
	user2 := entity.User{Email: "sam@example.com", Role: "customer", FirstName: "Sam", LastName: "Hale"}
	require.NoError(t, db.Create(&user2).Error)

	var item entity.MenuItem
	require.NoError(t, db.First(&item).Error)
	carts := NewCartService(db, repository.NewCartRepository(db))
	_, err := carts.AddItem(user2.ID, item.ID, 1, "")
	require.NoError(t, err)
	out2, err := svc.Checkout(user2.ID, &CheckoutReq{OrderType: "delivery", DeliveryAddress: "9 Pier Road"})
	require.NoError(t, err)

	// completing the first removes it from the queue
	require.NoError(t, svc.Advance(1, first, lifecycle.StatusPreparing, ""))
	require.NoError(t, svc.Advance(1, first, lifecycle.StatusReady, ""))
	require.NoError(t, svc.Advance(1, first, lifecycle.StatusCompleted, ""))

	queue, err := svc.Queue()
	require.NoError(t, err)
	require.Len(t, queue, 1)
	assert.Equal(t, out2.ID, queue[0].ID)
	assert.Equal(t, "Sam Hale", queue[0].CustomerName)
}
