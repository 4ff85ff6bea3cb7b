package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vietanh2810/instruments-rental-api/internal/domain"
)

var periodRule = validation.In(string(domain.PeriodWeekly), string(domain.PeriodMonthly))

// RentalRequest is shared by borrow and checkout. A missing period means
// weekly and a missing quantity means 1.
type RentalRequest struct {
	Category string `json:"category"`
	Period   string `json:"period" enums:"weekly,monthly"`
	Quantity int    `json:"quantity"`
}

func (req *RentalRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Category, validation.Required),
		validation.Field(&req.Period, periodRule),
	)
}

// Parsed returns the period and the clamped quantity.
func (req *RentalRequest) Parsed() (domain.Period, int, error) {
	period, err := domain.ParsePeriod(req.Period)
	if err != nil {
		return "", 0, err
	}

	return period, domain.NormalizeQuantity(req.Quantity), nil
}

type ConfirmRentalRequest struct {
	Details domain.RentalDetails `json:"details"`
	Contact domain.Contact       `json:"contact"`
}

func (req *ConfirmRentalRequest) Validate() error {
	return validation.ValidateStruct(
		&req.Details,
		validation.Field(&req.Details.Category, validation.Required),
	)
}

type AddCreditsRequest struct {
	Amount int `json:"amount"`
}
