package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/entity"
	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/repository"
)

var (
	ErrMenuItemNotFound    = errors.New("menu item not found")
	ErrMenuItemUnavailable = errors.New("menu item is unavailable")
	ErrCartItemNotFound    = errors.New("cart item not found")
)

type CartService struct {
	DB   *gorm.DB
	Repo *repository.CartRepository
}

func NewCartService(db *gorm.DB, repo *repository.CartRepository) *CartService {
	return &CartService{DB: db, Repo: repo}
}

type CartView struct {
	ID       uint              `json:"id"`
	Items    []entity.CartItem `json:"items"`
	Subtotal int64             `json:"subtotal"`
}

func (s *CartService) Get(userID uint) (*CartView, error) {
	cart, err := s.Repo.GetWithItems(userID)
	if err != nil {
		return nil, err
	}
	var subtotal int64
	for _, it := range cart.Items {
		subtotal += it.Total
	}
	return &CartView{ID: cart.ID, Items: cart.Items, Subtotal: subtotal}, nil
}

// AddItem snapshots the menu price at add time; adding the same item again
// bumps the quantity on the existing row.
func (s *CartService) AddItem(userID, menuItemID uint, qty int, note string) (*CartView, error) {
	if qty <= 0 {
		qty = 1
	}

	var m entity.MenuItem
	if err := s.DB.Select("id, price, available").First(&m, menuItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}
	if !m.Available {
		return nil, ErrMenuItemUnavailable
	}

	cart, err := s.Repo.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	it, err := s.Repo.FindItemForMenu(cart.ID, menuItemID)
	switch {
	case err == nil:
		it.Qty += qty
		if note != "" {
			it.Note = note
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		it = &entity.CartItem{
			CartID:     cart.ID,
			MenuItemID: menuItemID,
			Qty:        qty,
			UnitPrice:  m.Price,
			Note:       note,
		}
	default:
		return nil, err
	}
	it.Total = it.UnitPrice * int64(it.Qty)
	if err := s.Repo.SaveItem(it); err != nil {
		return nil, err
	}

	return s.Get(userID)
}

func (s *CartService) UpdateItem(userID, itemID uint, qty int, note *string) (*CartView, error) {
	cart, err := s.Repo.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	it, err := s.Repo.GetItem(cart.ID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartItemNotFound
		}
		return nil, err
	}

	if qty <= 0 {
		if _, err := s.Repo.RemoveItem(cart.ID, itemID); err != nil {
			return nil, err
		}
		return s.Get(userID)
	}

	it.Qty = qty
	it.Total = it.UnitPrice * int64(qty)
	if note != nil {
		it.Note = *note
	}
	if err := s.Repo.SaveItem(it); err != nil {
		return nil, err
	}
	return s.Get(userID)
}

func (s *CartService) RemoveItem(userID, itemID uint) (*CartView, error) {
	cart, err := s.Repo.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	affected, err := s.Repo.RemoveItem(cart.ID, itemID)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrCartItemNotFound
	}
	return s.Get(userID)
}
