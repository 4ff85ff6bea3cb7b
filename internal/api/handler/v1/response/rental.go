package response

import "github.com/vietanh2810/instruments-rental-api/internal/domain"

type InstrumentResponse struct {
	domain.Instrument
	Stars int `json:"stars"`
}

func NewInstrumentResponse(i domain.Instrument) InstrumentResponse {
	return InstrumentResponse{
		Instrument: i,
		Stars:      i.Stars(),
	}
}

type CatalogResponse struct {
	Categories  []string             `json:"categories"`
	Instruments []InstrumentResponse `json:"instruments"`
}

func NewCatalogResponse(instruments []domain.Instrument) CatalogResponse {
	resp := CatalogResponse{
		Categories:  domain.Categories(instruments),
		Instruments: make([]InstrumentResponse, len(instruments)),
	}
	for i, instrument := range instruments {
		resp.Instruments[i] = NewInstrumentResponse(instrument)
	}
	return resp
}

type CreditsResponse struct {
	Balance int `json:"balance"`
}
