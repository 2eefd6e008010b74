package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/entity"
	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/repository"
)

var (
	ErrDiscountNotFound  = errors.New("discount code not found")
	ErrDiscountInactive  = errors.New("discount code is not active")
	ErrDiscountExpired   = errors.New("discount code is outside its active window")
	ErrDiscountExhausted = errors.New("discount code has no uses left")
	ErrDiscountMinOrder  = errors.New("order is below the code's minimum")
)

type DiscountService struct {
	Repo *repository.DiscountRepository
}

func NewDiscountService(repo *repository.DiscountRepository) *DiscountService {
	return &DiscountService{Repo: repo}
}

// Evaluate validates a code against a subtotal and returns the discount it
// would take off, in pence. The usage cap is checked here for early feedback
// and enforced again by the guarded increment at checkout.
func (s *DiscountService) Evaluate(code string, subtotal int64, now time.Time) (*entity.Discount, int64, error) {
	d, err := s.Repo.FindByCode(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrDiscountNotFound
		}
		return nil, 0, err
	}

	if !d.Active {
		return nil, 0, ErrDiscountInactive
	}
	if d.StartAt != nil && now.Before(*d.StartAt) {
		return nil, 0, ErrDiscountExpired
	}
	if d.EndAt != nil && now.After(*d.EndAt) {
		return nil, 0, ErrDiscountExpired
	}
	if d.MaxUses > 0 && d.UsedCount >= d.MaxUses {
		return nil, 0, ErrDiscountExhausted
	}
	if subtotal < d.MinOrder {
		return nil, 0, ErrDiscountMinOrder
	}

	var amount int64
	switch d.DiscountType {
	case "percent":
		amount = subtotal * d.Value / 100
	case "fixed":
		amount = d.Value
	default:
		return nil, 0, errors.New("unknown discount type")
	}
	if amount > subtotal {
		amount = subtotal
	}
	return d, amount, nil
}

// ----- Admin CRUD -----

type DiscountIn struct {
	Code         string     `json:"code" binding:"required"`
	Description  string     `json:"description"`
	DiscountType string     `json:"discountType" binding:"required,oneof=percent fixed"`
	Value        int64      `json:"value" binding:"required,min=1"`
	MinOrder     int64      `json:"minOrder"`
	StartAt      *time.Time `json:"startAt"`
	EndAt        *time.Time `json:"endAt"`
	MaxUses      int        `json:"maxUses"`
	Active       *bool      `json:"active"`
}

func (s *DiscountService) Create(in *DiscountIn) (*entity.Discount, error) {
	if in.DiscountType == "percent" && in.Value > 100 {
		return nil, errors.New("percent discount cannot exceed 100")
	}
	d := entity.Discount{
		Code:         strings.ToUpper(strings.TrimSpace(in.Code)),
		Description:  in.Description,
		DiscountType: in.DiscountType,
		Value:        in.Value,
		MinOrder:     in.MinOrder,
		StartAt:      in.StartAt,
		EndAt:        in.EndAt,
		MaxUses:      in.MaxUses,
		Active:       true,
	}
	if in.Active != nil {
		d.Active = *in.Active
	}
	if err := s.Repo.Create(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *DiscountService) List() ([]entity.Discount, error) {
	return s.Repo.List()
}

func (s *DiscountService) Update(id uint, updates map[string]any) (*entity.Discount, error) {
	if err := s.Repo.Update(id, updates); err != nil {
		return nil, err
	}
	return s.Repo.Get(id)
}

func (s *DiscountService) Delete(id uint) error {
	affected, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrDiscountNotFound
	}
	return nil
}
