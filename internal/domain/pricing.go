package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	MinQuantity = 1
	MaxQuantity = 99

	weeksPerMonth = 4
)

var (
	ErrInvalidPeriod   = errors.New("period must be weekly or monthly")
	ErrInvalidQuantity = errors.New("quantity must be a number")
)

type Period string

const (
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

func ParsePeriod(s string) (Period, error) {
	switch Period(strings.ToLower(strings.TrimSpace(s))) {
	case PeriodWeekly, "":
		return PeriodWeekly, nil
	case PeriodMonthly:
		return PeriodMonthly, nil
	}

	return "", ErrInvalidPeriod
}

func (p Period) IsMonthly() bool {
	return p == PeriodMonthly
}

func (p Period) Multiplier() int {
	if p.IsMonthly() {
		return weeksPerMonth
	}
	return 1
}

func (p Period) unit() string {
	if p.IsMonthly() {
		return "month"
	}
	return "week"
}

// QuantityLabel is the prompt shown next to the quantity input.
func (p Period) QuantityLabel() string {
	return fmt.Sprintf("Number of %ss:", p.unit())
}

// Describe renders a rental length such as "1 week" or "3 months".
func (p Period) Describe(quantity int) string {
	if quantity > 1 {
		return fmt.Sprintf("%d %ss", quantity, p.unit())
	}
	return fmt.Sprintf("%d %s", quantity, p.unit())
}

// NormalizeQuantity clamps q into [MinQuantity, MaxQuantity].
func NormalizeQuantity(q int) int {
	if q > MaxQuantity {
		return MaxQuantity
	}
	if q < MinQuantity {
		return MinQuantity
	}
	return q
}

// ParseQuantity reads a raw quantity input. An empty input means 1.
func ParseQuantity(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return MinQuantity, nil
	}

	q, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrInvalidQuantity
	}

	return NormalizeQuantity(q), nil
}

func PricePerPeriod(unitPrice int, period Period) int {
	return unitPrice * period.Multiplier()
}

func TotalPrice(unitPrice int, period Period, quantity int) int {
	return PricePerPeriod(unitPrice, period) * NormalizeQuantity(quantity)
}

type Quote struct {
	Instrument     Instrument `json:"instrument"`
	Stars          int        `json:"stars"`
	Period         Period     `json:"period"`
	Quantity       int        `json:"quantity"`
	QuantityLabel  string     `json:"quantity_label"`
	PricePerPeriod int        `json:"price_per_period"`
	TotalPrice     int        `json:"total_price"`
	RentalPeriod   string     `json:"rental_period"`
}

func NewQuote(instrument Instrument, period Period, quantity int) Quote {
	quantity = NormalizeQuantity(quantity)

	return Quote{
		Instrument:     instrument,
		Stars:          instrument.Stars(),
		Period:         period,
		Quantity:       quantity,
		QuantityLabel:  period.QuantityLabel(),
		PricePerPeriod: PricePerPeriod(instrument.Price, period),
		TotalPrice:     TotalPrice(instrument.Price, period, quantity),
		RentalPeriod:   period.Describe(quantity),
	}
}
