package domain

import "math"

const MaxRating = 5

type Instrument struct {
	ID          uint    `json:"id"`
	Category    string  `json:"category"`
	Name        string  `json:"name"`
	Image       string  `json:"image"`
	Price       int     `json:"price"` // credits per week
	Description string  `json:"description"`
	Rating      float32 `json:"rating"`
}

// Stars returns the number of filled stars shown for the rating. Halves round
// to even.
func (i Instrument) Stars() int {
	return Stars(i.Rating)
}

func Stars(rating float32) int {
	n := int(math.RoundToEven(float64(rating)))
	if n < 0 {
		return 0
	}
	if n > MaxRating {
		return MaxRating
	}
	return n
}
