package services

import (
	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/entity"
	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/repository"
)

type LoyaltyService struct {
	Repo *repository.LoyaltyRepository
}

func NewLoyaltyService(repo *repository.LoyaltyRepository) *LoyaltyService {
	return &LoyaltyService{Repo: repo}
}

type LoyaltyView struct {
	PointsBalance int64                       `json:"pointsBalance"`
	Transactions  []entity.LoyaltyTransaction `json:"transactions"`
}

func (s *LoyaltyService) Summary(userID uint) (*LoyaltyView, error) {
	acc, err := s.Repo.GetOrCreateAccount(s.Repo.DB, userID)
	if err != nil {
		return nil, err
	}
	txs, err := s.Repo.ListTransactions(acc.ID, 50)
	if err != nil {
		return nil, err
	}
	return &LoyaltyView{PointsBalance: acc.PointsBalance, Transactions: txs}, nil
}
