package repository

import (
	"gorm.io/gorm"

	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/entity"
)

type DiscountRepository struct {
	DB *gorm.DB
}

func NewDiscountRepository(db *gorm.DB) *DiscountRepository {
	return &DiscountRepository{DB: db}
}

func (r *DiscountRepository) FindByCode(code string) (*entity.Discount, error) {
	var d entity.Discount
	if err := r.DB.Where("code = ?", code).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DiscountRepository) List() ([]entity.Discount, error) {
	var out []entity.Discount
	err := r.DB.Order("id DESC").Find(&out).Error
	return out, err
}

func (r *DiscountRepository) Get(id uint) (*entity.Discount, error) {
	var d entity.Discount
	if err := r.DB.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DiscountRepository) Create(d *entity.Discount) error {
	return r.DB.Create(d).Error
}

func (r *DiscountRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Discount{}).Where("id = ?", id).Updates(updates).Error
}

func (r *DiscountRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&entity.Discount{}, id)
	return res.RowsAffected, res.Error
}

// IncrementUsage counts a redemption, guarded against racing past the usage
// cap. 0 rows affected means the cap was hit between validation and checkout.
func (r *DiscountRepository) IncrementUsage(tx *gorm.DB, id uint) (int64, error) {
	res := tx.Model(&entity.Discount{}).
		Where("id = ? AND (max_uses = 0 OR used_count < max_uses)", id).
		Update("used_count", gorm.Expr("used_count + 1"))
	return res.RowsAffected, res.Error
}
