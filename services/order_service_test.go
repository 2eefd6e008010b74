package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/entity"
	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/lifecycle"
	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.MenuCategory{}, &entity.MenuItem{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{}, &entity.OrderStatusHistory{},
		&entity.Discount{},
		&entity.LoyaltyAccount{}, &entity.LoyaltyTransaction{},
		&entity.CateringInquiry{}, &entity.ContactMessage{}, &entity.PaymentMethod{},
	))
	return db
}

func newTestOrderService(db *gorm.DB) *OrderService {
	orderRepo := repository.NewOrderRepository(db)
	cartRepo := repository.NewCartRepository(db)
	discountRepo := repository.NewDiscountRepository(db)
	loyaltyRepo := repository.NewLoyaltyRepository(db)
	discounts := NewDiscountService(discountRepo)
	return NewOrderService(db, orderRepo, cartRepo, discountRepo, loyaltyRepo, discounts, nil)
}

// seeds a customer with a menu item in their cart, price 10.00, qty 2
func seedCustomerWithCart(t *testing.T, db *gorm.DB) *entity.User {
	t.Helper()

	user := entity.User{Email: "jo@example.com", Role: "customer", FirstName: "Jo", LastName: "Birch"}
	require.NoError(t, db.Create(&user).Error)

	cat := entity.MenuCategory{Name: "Wraps"}
	require.NoError(t, db.Create(&cat).Error)
	item := entity.MenuItem{Name: "Lamb Shawarma Wrap", Price: 1000, Available: true, CategoryID: cat.ID}
	require.NoError(t, db.Create(&item).Error)

	carts := NewCartService(db, repository.NewCartRepository(db))
	_, err := carts.AddItem(user.ID, item.ID, 2, "")
	require.NoError(t, err)

	return &user
}

func TestCheckoutCollection(t *testing.T) {
	db := newTestDB(t)
	svc := newTestOrderService(db)
	user := seedCustomerWithCart(t, db)

	out, err := svc.Checkout(user.ID, &CheckoutReq{
		OrderType:          "collection",
		CollectionTimeSlot: "12:30-12:45",
	})
	require.NoError(t, err)
	assert.NotZero(t, out.ID)
	assert.NotEmpty(t, out.OrderNumber)

	var o entity.Order
	require.NoError(t, db.First(&o, out.ID).Error)

	assert.Equal(t, lifecycle.StatusReceived, o.Status)
	assert.Equal(t, lifecycle.TypeCollection, o.OrderType)
	assert.Equal(t, lifecycle.PaymentPending, o.PaymentStatus)
	assert.Equal(t, int64(2000), o.Subtotal)
	assert.Equal(t, int64(400), o.TaxAmount) // 20% of 20.00
	assert.Equal(t, int64(2400), o.TotalAmount)
	assert.Nil(t, o.DeliveryFee)
	require.NotNil(t, o.CollectionTimeSlot)
	assert.Equal(t, "12:30-12:45", *o.CollectionTimeSlot)
	assert.Nil(t, o.DeliveryAddress)

	// first history entry written at creation
	history, err := svc.Repo.GetStatusHistory(o.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, lifecycle.StatusReceived, history[0].Status)
	assert.Equal(t, user.ID, history[0].ChangedByUserID)

	// cart emptied
	cart, err := svc.CartRepo.GetWithItems(user.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCheckoutDeliveryAddsFee(t *testing.T) {
	db := newTestDB(t)
	svc := newTestOrderService(db)
	user := seedCustomerWithCart(t, db)

	out, err := svc.Checkout(user.ID, &CheckoutReq{
		OrderType:       "delivery",
		DeliveryAddress: "4 Harbour Lane, Whitby",
	})
	require.NoError(t, err)

	var o entity.Order
	require.NoError(t, db.First(&o, out.ID).Error)

	require.NotNil(t, o.DeliveryFee)
	assert.Equal(t, int64(250), *o.DeliveryFee)
	assert.Equal(t, int64(2650), o.TotalAmount) // 2000 + 400 tax + 250 fee
	require.NotNil(t, o.DeliveryAddress)
	assert.Nil(t, o.CollectionTimeSlot)
}

func TestCheckoutValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newTestOrderService(db)
	user := seedCustomerWithCart(t, db)

	_, err := svc.Checkout(user.ID, &CheckoutReq{OrderType: "collection"})
	assert.ErrorIs(t, err, ErrMissingTimeSlot)

	_, err = svc.Checkout(user.ID, &CheckoutReq{OrderType: "delivery"})
	assert.ErrorIs(t, err, ErrMissingAddress)

	// empty cart after the errors above never consumed it; drain it properly
	out, err := svc.Checkout(user.ID, &CheckoutReq{OrderType: "collection", CollectionTimeSlot: "13:00-13:15"})
	require.NoError(t, err)
	require.NotZero(t, out.ID)

	_, err = svc.Checkout(user.ID, &CheckoutReq{OrderType: "collection", CollectionTimeSlot: "13:00-13:15"})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutWithDiscountCode(t *testing.T) {
	db := newTestDB(t)
	svc := newTestOrderService(db)
	user := seedCustomerWithCart(t, db)

	require.NoError(t, db.Create(&entity.Discount{
		Code: "TRUCK10", DiscountType: "percent", Value: 10, Active: true,
	}).Error)

	out, err := svc.Checkout(user.ID, &CheckoutReq{
		OrderType:          "collection",
		CollectionTimeSlot: "12:00-12:15",
		DiscountCode:       "truck10",
	})
	require.NoError(t, err)

	var o entity.Order
	require.NoError(t, db.First(&o, out.ID).Error)
	assert.Equal(t, int64(200), o.DiscountAmount) // 10% of 20.00
	assert.Equal(t, "TRUCK10", o.DiscountCode)
	assert.Equal(t, int64(2160), o.TotalAmount) // (2000-200) + 20% tax

	var d entity.Discount
	require.NoError(t, db.Where("code = ?", "TRUCK10").First(&d).Error)
	assert.Equal(t, 1, d.UsedCount)
}

func TestCheckoutRedeemsLoyaltyPoints(t *testing.T) {
	db := newTestDB(t)
	svc := newTestOrderService(db)
	user := seedCustomerWithCart(t, db)

	acc, err := svc.LoyaltyRepo.GetOrCreateAccount(db, user.ID)
	require.NoError(t, err)
	require.NoError(t, db.Model(acc).Update("points_balance", 500).Error)

	out, err := svc.Checkout(user.ID, &CheckoutReq{
		OrderType:          "collection",
		CollectionTimeSlot: "12:00-12:15",
		RedeemPoints:       300,
	})
	require.NoError(t, err)

	var o entity.Order
	require.NoError(t, db.First(&o, out.ID).Error)
	assert.Equal(t, int64(300), o.PointsUsed)
	assert.Equal(t, int64(2040), o.TotalAmount) // (2000-300) + 20% tax

	var after entity.LoyaltyAccount
	require.NoError(t, db.First(&after, acc.ID).Error)
	assert.Equal(t, int64(200), after.PointsBalance)
}

func TestCheckoutRejectsOverdrawnPoints(t *testing.T) {
	db := newTestDB(t)
	svc := newTestOrderService(db)
	user := seedCustomerWithCart(t, db)

	_, err := svc.Checkout(user.ID, &CheckoutReq{
		OrderType:          "collection",
		CollectionTimeSlot: "12:00-12:15",
		RedeemPoints:       100, // account has 0
	})
	assert.ErrorIs(t, err, ErrPointsUnavailable)

	// the failed transaction must not have consumed the cart
	cart, err := svc.CartRepo.GetWithItems(user.ID)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestDetailDerivedFlags(t *testing.T) {
	db := newTestDB(t)
	svc := newTestOrderService(db)
	user := seedCustomerWithCart(t, db)

	out, err := svc.Checkout(user.ID, &CheckoutReq{OrderType: "collection", CollectionTimeSlot: "12:00-12:15"})
	require.NoError(t, err)

	detail, err := svc.DetailForUser(user.ID, out.ID)
	require.NoError(t, err)

	assert.True(t, detail.CanCancel) // just created, inside the window
	assert.True(t, detail.CanStaffCancel)
	assert.False(t, detail.CanRefund) // not paid yet
	require.NotNil(t, detail.NextTransition)
	assert.Equal(t, lifecycle.StatusPreparing, detail.NextTransition.Target)
	require.Len(t, detail.Timeline, 4)
	assert.Equal(t, lifecycle.StatusReady, detail.Timeline[2].Status)
	require.Len(t, detail.Items, 1)
	assert.Equal(t, "Lamb Shawarma Wrap", detail.Items[0].Name)
}
