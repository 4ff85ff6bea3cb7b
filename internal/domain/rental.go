package domain

import "fmt"

// RentalDetails is handed from checkout to confirmation.
type RentalDetails struct {
	Category              string `json:"category"`
	InstrumentName        string `json:"instrument_name"`
	InstrumentDescription string `json:"instrument_description"`
	InstrumentImage       string `json:"instrument_image"`
	RentalPeriod          string `json:"rental_period"`
	TotalPrice            int    `json:"total_price"`
	IsMonthly             bool   `json:"is_monthly"`
	Quantity              int    `json:"quantity"`
}

func (d RentalDetails) Period() Period {
	if d.IsMonthly {
		return PeriodMonthly
	}
	return PeriodWeekly
}

func NewRentalDetails(q Quote) RentalDetails {
	return RentalDetails{
		Category:              q.Instrument.Category,
		InstrumentName:        q.Instrument.Name,
		InstrumentDescription: q.Instrument.Description,
		InstrumentImage:       q.Instrument.Image,
		RentalPeriod:          q.RentalPeriod,
		TotalPrice:            q.TotalPrice,
		IsMonthly:             q.Period.IsMonthly(),
		Quantity:              q.Quantity,
	}
}

type Receipt struct {
	Details          RentalDetails `json:"details"`
	Contact          *Contact      `json:"contact,omitempty"`
	Charged          int           `json:"charged"`
	RemainingBalance int           `json:"remaining_balance"`
	Message          string        `json:"message"`
}

func NewReceipt(d RentalDetails, contact *Contact, remaining int) Receipt {
	return Receipt{
		Details:          d,
		Contact:          contact,
		Charged:          d.TotalPrice,
		RemainingBalance: remaining,
		Message: fmt.Sprintf("Success! Rented %s for %s (%d credits). Remaining balance: %d",
			d.InstrumentName, d.RentalPeriod, d.TotalPrice, remaining),
	}
}
