package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/entity"
	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/lifecycle"
)

// AnalyticsRepository backs the admin dashboard with aggregate queries.
type AnalyticsRepository struct {
	DB *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{DB: db}
}

func (r *AnalyticsRepository) CountOrdersByStatus() (map[lifecycle.Status]int64, error) {
	var rows []struct {
		Status lifecycle.Status
		N      int64
	}
	err := r.DB.Model(&entity.Order{}).
		Select("status, COUNT(*) AS n").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[lifecycle.Status]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.N
	}
	return out, nil
}

// RevenueSince sums completed, non-refunded order totals from a cutoff.
func (r *AnalyticsRepository) RevenueSince(since time.Time) (int64, error) {
	var row struct{ Total int64 }
	err := r.DB.Model(&entity.Order{}).
		Select("COALESCE(SUM(total_amount), 0) AS total").
		Where("status = ? AND payment_status = ? AND created_at >= ?",
			lifecycle.StatusCompleted, lifecycle.PaymentPaid, since).
		Scan(&row).Error
	return row.Total, err
}

type TopItem struct {
	MenuItemID uint   `json:"menuItemId"`
	Name       string `json:"name"`
	QtySold    int64  `json:"qtySold"`
	Revenue    int64  `json:"revenue"`
}

func (r *AnalyticsRepository) TopItems(since time.Time, limit int) ([]TopItem, error) {
	if limit <= 0 {
		limit = 10
	}
	var out []TopItem
	err := r.DB.Table("order_items AS oi").
		Select("oi.menu_item_id, oi.name, SUM(oi.qty) AS qty_sold, SUM(oi.total) AS revenue").
		Joins("JOIN orders o ON o.id = oi.order_id").
		Where("o.status = ? AND o.created_at >= ?", lifecycle.StatusCompleted, since).
		Group("oi.menu_item_id, oi.name").
		Order("qty_sold DESC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}

func (r *AnalyticsRepository) CountOpenCateringInquiries() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.CateringInquiry{}).
		Where("status NOT IN ?", []string{entity.CateringConfirmed, entity.CateringClosed}).
		Count(&n).Error
	return n, err
}

func (r *AnalyticsRepository) CountUnreadContactMessages() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.ContactMessage{}).
		Where("read_at IS NULL").
		Count(&n).Error
	return n, err
}
