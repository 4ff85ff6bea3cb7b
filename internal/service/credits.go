package service

import (
	"context"
	"fmt"

	"github.com/vietanh2810/instruments-rental-api/internal/domain"
	"github.com/vietanh2810/instruments-rental-api/internal/metrics"
)

var ErrNonPositiveAmount = domain.ErrNonPositiveAmount

type CreditsRepository interface {
	Balance(ctx context.Context, userID uint) (int, error)
	Add(ctx context.Context, userID uint, amount int) (int, error)
	Deduct(ctx context.Context, userID uint, amount int) (int, error)
}

type CreditsService struct {
	repo    CreditsRepository
	metrics *metrics.Metrics
}

func NewCreditsService(repo CreditsRepository, m *metrics.Metrics) *CreditsService {
	return &CreditsService{
		repo:    repo,
		metrics: m,
	}
}

func (s *CreditsService) Balance(ctx context.Context, userID uint) (int, error) {
	balance, err := s.repo.Balance(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("s.repo.Balance -> %w", err)
	}

	return balance, nil
}

func (s *CreditsService) Add(ctx context.Context, userID uint, amount int) (int, error) {
	if amount <= 0 {
		return 0, ErrNonPositiveAmount
	}

	balance, err := s.repo.Add(ctx, userID, amount)
	if err != nil {
		return 0, fmt.Errorf("s.repo.Add -> %w", err)
	}

	s.metrics.ObserveCreditsAdded(amount)

	return balance, nil
}
