package services

import (
	"time"

	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/lifecycle"
	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/repository"
)

type AnalyticsService struct {
	Repo *repository.AnalyticsRepository
}

func NewAnalyticsService(repo *repository.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{Repo: repo}
}

type Dashboard struct {
	OrdersByStatus  map[lifecycle.Status]int64 `json:"ordersByStatus"`
	RevenueToday    int64                      `json:"revenueToday"`
	RevenueWeek     int64                      `json:"revenueWeek"`
	TopItems        []repository.TopItem       `json:"topItems"`
	OpenCatering    int64                      `json:"openCateringInquiries"`
	UnreadContact   int64                      `json:"unreadContactMessages"`
}

func (s *AnalyticsService) Dashboard(now time.Time) (*Dashboard, error) {
	byStatus, err := s.Repo.CountOrdersByStatus()
	if err != nil {
		return nil, err
	}

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	today, err := s.Repo.RevenueSince(startOfDay)
	if err != nil {
		return nil, err
	}
	week, err := s.Repo.RevenueSince(startOfDay.AddDate(0, 0, -6))
	if err != nil {
		return nil, err
	}

	top, err := s.Repo.TopItems(startOfDay.AddDate(0, 0, -29), 10)
	if err != nil {
		return nil, err
	}
	catering, err := s.Repo.CountOpenCateringInquiries()
	if err != nil {
		return nil, err
	}
	contact, err := s.Repo.CountUnreadContactMessages()
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		OrdersByStatus: byStatus,
		RevenueToday:   today,
		RevenueWeek:    week,
		TopItems:       top,
		OpenCatering:   catering,
		UnreadContact:  contact,
	}, nil
}
