package domain

import "errors"

var ErrInstrumentNotFound = errors.New("instrument not found")

// Catalog is the fixed instrument table, in display order.
var Catalog = []Instrument{
	{
		Category:    "Piano",
		Name:        "Steinway Piano",
		Image:       "piano.png",
		Price:       250,
		Description: "Steinway grand piano perfect for Green Book's performances",
		Rating:      4.9,
	},
	{
		Category:    "Guitar",
		Name:        "Black Strat Guitar",
		Image:       "guitar.png",
		Price:       125,
		Description: "Black Strat Guitar inherited from Pink Floyd!",
		Rating:      4.7,
	},
	{
		Category:    "Flute",
		Name:        "Brannet-Cooper Flute",
		Image:       "flute.png",
		Price:       100,
		Description: "Brannet-Cooper flute with pure gold plated!",
		Rating:      4.5,
	},
	{
		Category:    "Saxophone",
		Name:        "Grafton Saxophone",
		Image:       "saxophone.png",
		Price:       75,
		Description: "You have to sell your kidney to compensate for the damage to this saxophone!",
		Rating:      4.2,
	},
	{
		Category:    "Trumpet",
		Name:        "Stradivarius Trumpet",
		Image:       "trumpet.png",
		Price:       50,
		Description: "Bach Stradivarius trumpet that can blow dollar signs $$$",
		Rating:      4.0,
	},
}

func Categories(instruments []Instrument) []string {
	categories := make([]string, 0, len(instruments))
	for _, i := range instruments {
		categories = append(categories, i.Category)
	}
	return categories
}
