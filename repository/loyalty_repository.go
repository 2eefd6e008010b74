package repository

import (
	"gorm.io/gorm"

	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/entity"
)

type LoyaltyRepository struct {
	DB *gorm.DB
}

func NewLoyaltyRepository(db *gorm.DB) *LoyaltyRepository {
	return &LoyaltyRepository{DB: db}
}

// GetOrCreateAccount takes the caller's tx so account creation shares the
// transaction of whatever triggered it (checkout redeem, completion earn).
func (r *LoyaltyRepository) GetOrCreateAccount(tx *gorm.DB, userID uint) (*entity.LoyaltyAccount, error) {
	var acc entity.LoyaltyAccount
	err := tx.Where(entity.LoyaltyAccount{UserID: userID}).FirstOrCreate(&acc).Error
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

// Adjust moves the balance by delta and writes the ledger row in one
// transaction. The balance guard keeps redemptions from overdrawing.
func (r *LoyaltyRepository) Adjust(tx *gorm.DB, accountID uint, delta int64, kind string, orderID *uint) (int64, error) {
	q := tx.Model(&entity.LoyaltyAccount{}).Where("id = ?", accountID)
	if delta < 0 {
		q = q.Where("points_balance >= ?", -delta)
	}
	res := q.Update("points_balance", gorm.Expr("points_balance + ?", delta))
	if res.Error != nil || res.RowsAffected == 0 {
		return res.RowsAffected, res.Error
	}

	ledger := entity.LoyaltyTransaction{
		AccountID: accountID,
		Kind:      kind,
		Points:    delta,
		OrderID:   orderID,
	}
	if err := tx.Create(&ledger).Error; err != nil {
		return 0, err
	}
	return res.RowsAffected, nil
}

func (r *LoyaltyRepository) ListTransactions(accountID uint, limit int) ([]entity.LoyaltyTransaction, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []entity.LoyaltyTransaction
	err := r.DB.Where("account_id = ?", accountID).
		Order("id DESC").Limit(limit).
		Find(&out).Error
	return out, err
}
