package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/entity"
	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/lifecycle"
	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/repository"
)

const (
	deliveryFeePence = 250
	taxRatePercent   = 20

	// 1 loyalty point earned per whole pound spent; 1 point redeems 1 penny.
	earnPencePerPoint = 100
)

type OrderService struct {
	DB           *gorm.DB
	Repo         *repository.OrderRepository
	CartRepo     *repository.CartRepository
	DiscountRepo *repository.DiscountRepository
	LoyaltyRepo  *repository.LoyaltyRepository
	Discounts    *DiscountService
	Events       OrderEventPublisher
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	discountRepo *repository.DiscountRepository,
	loyaltyRepo *repository.LoyaltyRepository,
	discounts *DiscountService,
	events OrderEventPublisher,
) *OrderService {
	return &OrderService{
		DB:           db,
		Repo:         repo,
		CartRepo:     cartRepo,
		DiscountRepo: discountRepo,
		LoyaltyRepo:  loyaltyRepo,
		Discounts:    discounts,
		Events:       events,
	}
}

// ----- DTOs from Controller -----

type CheckoutReq struct {
	OrderType          string `json:"orderType" binding:"required,oneof=collection delivery"`
	CollectionTimeSlot string `json:"collectionTimeSlot"`
	DeliveryAddress    string `json:"deliveryAddress"`
	DiscountCode       string `json:"discountCode"`
	RedeemPoints       int64  `json:"redeemPoints"`
	PaymentMethodID    uint   `json:"paymentMethodId"`
}

type CheckoutRes struct {
	ID          uint   `json:"id"`
	OrderNumber string `json:"orderNumber"`
	TotalAmount int64  `json:"totalAmount"`
}

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrMissingTimeSlot   = errors.New("collection orders need a time slot")
	ErrMissingAddress    = errors.New("delivery orders need a delivery address")
	ErrPointsUnavailable = errors.New("not enough loyalty points")
)

func newOrderNumber() string {
	return "SL-" + strings.ToUpper(uuid.NewString()[:8])
}

// Checkout turns the user's cart into an order in status received, with the
// first history entry, and empties the cart. All writes share one
// transaction.
func (s *OrderService) Checkout(userID uint, req *CheckoutReq) (*CheckoutRes, error) {
	orderType := lifecycle.OrderType(req.OrderType)
	if !orderType.Valid() {
		return nil, errors.New("unknown order type")
	}
	if orderType == lifecycle.TypeCollection && strings.TrimSpace(req.CollectionTimeSlot) == "" {
		return nil, ErrMissingTimeSlot
	}
	if orderType == lifecycle.TypeDelivery && strings.TrimSpace(req.DeliveryAddress) == "" {
		return nil, ErrMissingAddress
	}

	cart, err := s.CartRepo.GetWithItems(userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	var subtotal int64
	for _, it := range cart.Items {
		subtotal += it.Total
	}

	// discount code (validated again inside the transaction via usage guard)
	var discountAmount int64
	var discount *entity.Discount
	if req.DiscountCode != "" {
		discount, discountAmount, err = s.Discounts.Evaluate(req.DiscountCode, subtotal, time.Now())
		if err != nil {
			return nil, err
		}
	}

	// loyalty redemption, capped at what remains after the discount
	points := req.RedeemPoints
	if points < 0 {
		points = 0
	}
	if max := subtotal - discountAmount; points > max {
		points = max
	}

	taxAmount := (subtotal - discountAmount - points) * taxRatePercent / 100

	var deliveryFee *int64
	total := subtotal - discountAmount - points + taxAmount
	if orderType == lifecycle.TypeDelivery {
		fee := int64(deliveryFeePence)
		deliveryFee = &fee
		total += fee
	}

	now := time.Now()
	order := entity.Order{
		OrderNumber:    newOrderNumber(),
		OrderType:      orderType,
		Status:         lifecycle.StatusReceived,
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		DeliveryFee:    deliveryFee,
		TaxAmount:      taxAmount,
		TotalAmount:    total,
		PaymentStatus:  lifecycle.PaymentPending,
		PointsUsed:     points,
		UserID:         userID,
	}
	if discount != nil {
		order.DiscountCode = discount.Code
	}
	if orderType == lifecycle.TypeCollection {
		slot := strings.TrimSpace(req.CollectionTimeSlot)
		order.CollectionTimeSlot = &slot
	} else {
		addr := strings.TrimSpace(req.DeliveryAddress)
		order.DeliveryAddress = &addr
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, it := range cart.Items {
			var m entity.MenuItem
			if err := tx.Select("id, name").First(&m, it.MenuItemID).Error; err != nil {
				return errors.New("menu item no longer exists")
			}
			oi := entity.OrderItem{
				Name:       m.Name,
				Qty:        it.Qty,
				UnitPrice:  it.UnitPrice,
				Total:      it.Total,
				Note:       it.Note,
				OrderID:    order.ID,
				MenuItemID: it.MenuItemID,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}

		h := entity.OrderStatusHistory{
			OrderID:         order.ID,
			Status:          lifecycle.StatusReceived,
			ChangedByUserID: userID,
			ChangedAt:       now,
			Notes:           "Order placed",
		}
		if err := s.Repo.AppendStatusHistory(tx, &h); err != nil {
			return err
		}

		if discount != nil {
			affected, err := s.DiscountRepo.IncrementUsage(tx, discount.ID)
			if err != nil {
				return err
			}
			if affected == 0 {
				return ErrDiscountExhausted
			}
		}

		if points > 0 {
			acc, err := s.LoyaltyRepo.GetOrCreateAccount(tx, userID)
			if err != nil {
				return err
			}
			oid := order.ID
			affected, err := s.LoyaltyRepo.Adjust(tx, acc.ID, -points, "redeem", &oid)
			if err != nil {
				return err
			}
			if affected == 0 {
				return ErrPointsUnavailable
			}
		}

		// A saved card means the charge already happened with the provider;
		// pay-at-counter orders stay pending until staff mark them paid.
		if req.PaymentMethodID != 0 {
			var pm entity.PaymentMethod
			if err := tx.Where("id = ? AND user_id = ?", req.PaymentMethodID, userID).First(&pm).Error; err != nil {
				return errors.New("payment method not found")
			}
			if _, err := s.Repo.MarkPaid(tx, order.ID); err != nil {
				return err
			}
		}

		return s.CartRepo.Clear(tx, userID)
	})
	if err != nil {
		return nil, err
	}

	publish(s.Events, OrderEvent{
		Type:        "order_created",
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Status:      lifecycle.StatusReceived,
	})
	return &CheckoutRes{ID: order.ID, OrderNumber: order.OrderNumber, TotalAmount: total}, nil
}

// ----- List & Detail -----

func (s *OrderService) ListForUser(userID uint, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListOrdersForUser(userID, limit)
}

// OrderDetail is the shared payload for customer, staff and admin detail
// views: the same engine output everywhere, callers filter by role.
type OrderDetail struct {
	Order          entity.Order                `json:"order"`
	Items          []entity.OrderItem          `json:"items"`
	History        []entity.OrderStatusHistory `json:"history"`
	Timeline       []lifecycle.Step            `json:"timeline,omitempty"`
	NextTransition *lifecycle.Transition       `json:"nextTransition,omitempty"`
	CanCancel      bool                        `json:"canCancel"`
	CanStaffCancel bool                        `json:"canStaffCancel"`
	CanRefund      bool                        `json:"canRefund"`
}

func (s *OrderService) buildDetail(o *entity.Order, now time.Time) (*OrderDetail, error) {
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	history, err := s.Repo.GetStatusHistory(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{
		Order:          *o,
		Items:          items,
		History:        history,
		Timeline:       lifecycle.TimelineSteps(o.Status, o.OrderType),
		NextTransition: lifecycle.NextTransition(o.Status, o.OrderType),
		CanCancel:      lifecycle.CanCustomerCancel(o.Status, o.CreatedAt, now),
		CanStaffCancel: lifecycle.CanStaffCancel(o.Status),
		CanRefund:      lifecycle.CanRefund(o.PaymentStatus, o.Status, o.RefundAmount),
	}, nil
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		return nil, err
	}
	return s.buildDetail(o, time.Now())
}

func (s *OrderService) Detail(orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	return s.buildDetail(o, time.Now())
}

func (s *OrderService) Queue() ([]repository.QueueEntry, error) {
	return s.Repo.ListActiveOrders()
}

func (s *OrderService) List(status *lifecycle.Status, page, limit int) ([]entity.Order, int64, error) {
	return s.Repo.ListOrders(status, page, limit)
}
