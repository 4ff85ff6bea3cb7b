package domain

import (
	"errors"
	"fmt"
)

const DefaultCreditsBalance = 5000

var ErrNonPositiveAmount = errors.New("amount must be greater than zero")

// InsufficientCreditsError is returned when a rental costs more than the
// account holds.
type InsufficientCreditsError struct {
	Needed    int
	Available int
}

func (e *InsufficientCreditsError) Error() string {
	return fmt.Sprintf("you need %d credits but only have %d", e.Needed, e.Available)
}

func IsInsufficientCredits(err error) (*InsufficientCreditsError, bool) {
	var ice *InsufficientCreditsError
	if errors.As(err, &ice) {
		return ice, true
	}
	return nil, false
}
