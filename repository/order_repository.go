package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/entity"
	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/lifecycle"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GET /profile/orders — customer order list
type OrderSummary struct {
	ID          uint                    `json:"id"`
	OrderNumber string                  `json:"orderNumber"`
	OrderType   lifecycle.OrderType     `json:"orderType"`
	Status      lifecycle.Status        `json:"status"`
	Payment     lifecycle.PaymentStatus `json:"paymentStatus"`
	TotalAmount int64                   `json:"totalAmount"`
	CreatedAt   time.Time               `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForUser(userID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, order_number, order_type, status, payment_status AS payment, total_amount, created_at").
		Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

// Staff queue: every non-terminal order, oldest first so the kitchen works
// in arrival order.
type QueueEntry struct {
	ID           uint                `json:"id"`
	OrderNumber  string              `json:"orderNumber"`
	OrderType    lifecycle.OrderType `json:"orderType"`
	Status       lifecycle.Status    `json:"status"`
	TotalAmount  int64               `json:"totalAmount"`
	CustomerName string              `json:"customerName"`
	CreatedAt    time.Time           `json:"createdAt"`
}

func (r *OrderRepository) ListActiveOrders() ([]QueueEntry, error) {
	var rows []struct {
		ID          uint
		OrderNumber string
		OrderType   lifecycle.OrderType
		Status      lifecycle.Status
		TotalAmount int64
		CreatedAt   time.Time
		FirstName   string
		LastName    string
	}
	err := r.DB.Table("orders AS o").
		Select("o.id, o.order_number, o.order_type, o.status, o.total_amount, o.created_at, u.first_name, u.last_name").
		Joins("JOIN users u ON u.id = o.user_id").
		Where("o.status NOT IN ? AND o.deleted_at IS NULL", []lifecycle.Status{lifecycle.StatusCompleted, lifecycle.StatusCancelled}).
		Order("o.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]QueueEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, QueueEntry{
			ID:           row.ID,
			OrderNumber:  row.OrderNumber,
			OrderType:    row.OrderType,
			Status:       row.Status,
			TotalAmount:  row.TotalAmount,
			CustomerName: row.FirstName + " " + row.LastName,
			CreatedAt:    row.CreatedAt,
		})
	}
	return out, nil
}

// Admin order list, newest first, optional status filter.
func (r *OrderRepository) ListOrders(status *lifecycle.Status, page, limit int) ([]entity.Order, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}

	q := r.DB.Model(&entity.Order{})
	if status != nil && *status != "" {
		q = q.Where("status = ?", *status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []entity.Order
	err := q.Order("id DESC").Limit(limit).Offset((page - 1) * limit).Find(&orders).Error
	return orders, total, err
}

// ---------------- Status transitions ----------------

// StatusUpdate carries the column changes that accompany a transition.
type StatusUpdate struct {
	CompletedAt        *time.Time
	CancelledAt        *time.Time
	CancellationReason string
}

// UpdateStatusGuard is the compare-and-set that makes the server the sole
// arbiter of concurrent transitions: the row only changes if status still
// equals from. 0 rows affected means the caller's copy was stale.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to lifecycle.Status, upd StatusUpdate) (int64, error) {
	cols := map[string]any{"status": to}
	if upd.CompletedAt != nil {
		cols["completed_at"] = upd.CompletedAt
	}
	if upd.CancelledAt != nil {
		cols["cancelled_at"] = upd.CancelledAt
	}
	if upd.CancellationReason != "" {
		cols["cancellation_reason"] = upd.CancellationReason
	}
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Updates(cols)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) AppendStatusHistory(tx *gorm.DB, h *entity.OrderStatusHistory) error {
	return tx.Create(h).Error
}

func (r *OrderRepository) GetStatusHistory(orderID uint) ([]entity.OrderStatusHistory, error) {
	var rows []entity.OrderStatusHistory
	err := r.DB.Where("order_id = ?", orderID).
		Order("changed_at ASC, id ASC").
		Find(&rows).Error
	return rows, err
}

// ---------------- Order items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Model(&entity.OrderItem{}).
		Select("id, name, qty, unit_price, total, note, menu_item_id, order_id").
		Where("order_id = ?", orderID).
		Find(&items).Error
	return items, err
}

// ---------------- Refunds ----------------

// RecordRefund is guarded the same way as status: it only lands if no refund
// exists yet and the payment is still marked paid.
func (r *OrderRepository) RecordRefund(tx *gorm.DB, orderID uint, amount int64, reason string, at time.Time) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND refund_amount IS NULL AND payment_status = ?", orderID, lifecycle.PaymentPaid).
		Updates(map[string]any{
			"refund_amount":  amount,
			"refund_reason":  reason,
			"refunded_at":    at,
			"payment_status": lifecycle.PaymentRefunded,
		})
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) MarkPaid(tx *gorm.DB, orderID uint) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND payment_status = ?", orderID, lifecycle.PaymentPending).
		Update("payment_status", lifecycle.PaymentPaid)
	return res.RowsAffected, res.Error
}
