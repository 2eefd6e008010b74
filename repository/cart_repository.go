package repository

import (
	"gorm.io/gorm"

	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/entity"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{DB: db}
}

func (r *CartRepository) GetOrCreate(userID uint) (*entity.Cart, error) {
	var cart entity.Cart
	err := r.DB.Where(entity.Cart{UserID: userID}).FirstOrCreate(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *CartRepository) GetWithItems(userID uint) (*entity.Cart, error) {
	cart, err := r.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	if err := r.DB.Where("cart_id = ?", cart.ID).Find(&cart.Items).Error; err != nil {
		return nil, err
	}
	return cart, nil
}

func (r *CartRepository) GetItem(cartID, itemID uint) (*entity.CartItem, error) {
	var it entity.CartItem
	if err := r.DB.Where("id = ? AND cart_id = ?", itemID, cartID).First(&it).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

// FindItemForMenu returns the existing row for a menu item in the cart, so
// adding the same item again bumps quantity instead of duplicating.
func (r *CartRepository) FindItemForMenu(cartID, menuItemID uint) (*entity.CartItem, error) {
	var it entity.CartItem
	err := r.DB.Where("cart_id = ? AND menu_item_id = ?", cartID, menuItemID).First(&it).Error
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *CartRepository) SaveItem(it *entity.CartItem) error {
	return r.DB.Save(it).Error
}

func (r *CartRepository) RemoveItem(cartID, itemID uint) (int64, error) {
	res := r.DB.Where("id = ? AND cart_id = ?", itemID, cartID).Delete(&entity.CartItem{})
	return res.RowsAffected, res.Error
}

func (r *CartRepository) Clear(tx *gorm.DB, userID uint) error {
	var cart entity.Cart
	if err := tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		return err
	}
	return tx.Where("cart_id = ?", cart.ID).Delete(&entity.CartItem{}).Error
}
