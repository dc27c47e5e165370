package service

import (
	"context"
	"time"

	"github.com/aguskov/oilpulse/internal/domain/models"
	"github.com/aguskov/oilpulse/internal/storage"
)

// TradingService defines business logic for reading persisted trading
// results. It decouples HTTP handlers from data access.
type TradingService interface {
	LastTradingDates(ctx context.Context, limit int) ([]time.Time, error)
	Dynamics(ctx context.Context, f storage.ResultsFilter, start, end time.Time) ([]models.TradingResult, error)
	TradingResults(ctx context.Context, f storage.ResultsFilter, limit int) ([]models.TradingResult, error)
}

type tradingService struct {
	repo storage.TradingResultsRepository
}

func NewTradingService(repo storage.TradingResultsRepository) TradingService {
	return &tradingService{repo: repo}
}

func (s *tradingService) LastTradingDates(ctx context.Context, limit int) ([]time.Time, error) {
	return s.repo.GetLastTradingDates(limit)
}

func (s *tradingService) Dynamics(ctx context.Context, f storage.ResultsFilter, start, end time.Time) ([]models.TradingResult, error) {
	return s.repo.GetDynamics(f, start, end)
}

func (s *tradingService) TradingResults(ctx context.Context, f storage.ResultsFilter, limit int) ([]models.TradingResult, error) {
	return s.repo.GetTradingResults(f, limit)
}
