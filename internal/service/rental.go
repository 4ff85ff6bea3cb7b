package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/vietanh2810/instruments-rental-api/internal/domain"
	"github.com/vietanh2810/instruments-rental-api/internal/metrics"
)

const (
	rejectInsufficientCredits = "insufficient_credits"
	rejectInvalidContact      = "invalid_contact"
)

type InstrumentFinder interface {
	FindByCategory(ctx context.Context, category string) (domain.Instrument, error)
}

type RentalService struct {
	instruments InstrumentFinder
	credits     CreditsRepository
	metrics     *metrics.Metrics
}

func NewRentalService(instruments InstrumentFinder, credits CreditsRepository, m *metrics.Metrics) *RentalService {
	return &RentalService{
		instruments: instruments,
		credits:     credits,
		metrics:     m,
	}
}

func (s *RentalService) Quote(ctx context.Context, category string, period domain.Period, quantity int) (domain.Quote, error) {
	instrument, err := s.instruments.FindByCategory(ctx, category)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("s.instruments.FindByCategory -> %w", err)
	}

	return domain.NewQuote(instrument, period, quantity), nil
}

// Borrow charges the rental in one step. When the balance is too low it
// returns a *domain.InsufficientCreditsError and nothing is charged.
func (s *RentalService) Borrow(ctx context.Context, userID uint, category string, period domain.Period, quantity int) (domain.Receipt, error) {
	quote, err := s.Quote(ctx, category, period, quantity)
	if err != nil {
		return domain.Receipt{}, err
	}

	return s.charge(ctx, userID, domain.NewRentalDetails(quote), nil)
}

// Checkout prices the rental and checks the balance without charging.
func (s *RentalService) Checkout(ctx context.Context, userID uint, category string, period domain.Period, quantity int) (domain.RentalDetails, error) {
	quote, err := s.Quote(ctx, category, period, quantity)
	if err != nil {
		return domain.RentalDetails{}, err
	}

	balance, err := s.credits.Balance(ctx, userID)
	if err != nil {
		return domain.RentalDetails{}, fmt.Errorf("s.credits.Balance -> %w", err)
	}

	if quote.TotalPrice > balance {
		s.metrics.ObserveRejection(rejectInsufficientCredits)
		return domain.RentalDetails{}, &domain.InsufficientCreditsError{
			Needed:    quote.TotalPrice,
			Available: balance,
		}
	}

	return domain.NewRentalDetails(quote), nil
}

// Confirm validates the contact and charges the rental. The total is priced
// again from category, period and quantity; details.TotalPrice is ignored.
func (s *RentalService) Confirm(ctx context.Context, userID uint, details domain.RentalDetails, contact domain.Contact) (domain.Receipt, error) {
	if err := contact.Validate(); err != nil {
		s.metrics.ObserveRejection(rejectInvalidContact)
		return domain.Receipt{}, err
	}

	quote, err := s.Quote(ctx, details.Category, details.Period(), details.Quantity)
	if err != nil {
		return domain.Receipt{}, err
	}

	trimmed := contact.Trimmed()

	return s.charge(ctx, userID, domain.NewRentalDetails(quote), &trimmed)
}

func (s *RentalService) charge(ctx context.Context, userID uint, details domain.RentalDetails, contact *domain.Contact) (domain.Receipt, error) {
	remaining, err := s.credits.Deduct(ctx, userID, details.TotalPrice)
	if err != nil {
		if _, ok := domain.IsInsufficientCredits(err); ok {
			s.metrics.ObserveRejection(rejectInsufficientCredits)
			return domain.Receipt{}, err
		}

		return domain.Receipt{}, fmt.Errorf("s.credits.Deduct -> %w", err)
	}

	s.metrics.ObserveRental(details.Category, string(details.Period()), details.TotalPrice)
	zap.L().Info("instrument rented",
		zap.Uint("user_id", userID),
		zap.String("category", details.Category),
		zap.String("rental_period", details.RentalPeriod),
		zap.Int("charged", details.TotalPrice),
		zap.Int("remaining", remaining),
	)

	return domain.NewReceipt(details, contact, remaining), nil
}
