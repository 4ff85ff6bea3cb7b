package v1

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/instruments-rental-api/internal/domain"
)

type fakeCatalogService struct{}

func (fakeCatalogService) ListInstruments(_ context.Context) ([]domain.Instrument, error) {
	return domain.Catalog, nil
}

func (f fakeCatalogService) GetByCategory(ctx context.Context, category string) (domain.Instrument, error) {
	return f.FindByCategory(ctx, category)
}

func (fakeCatalogService) FindByCategory(_ context.Context, category string) (domain.Instrument, error) {
	for _, instrument := range domain.Catalog {
		if strings.EqualFold(instrument.Category, category) {
			return instrument, nil
		}
	}
	return domain.Instrument{}, domain.ErrInstrumentNotFound
}

func newInstrumentRouter() *gin.Engine {
	h := NewInstrumentHandler(fakeCatalogService{})
	r := gin.New()
	r.GET("/instruments", h.HandleListInstruments)
	r.GET("/instruments/:category", h.HandleGetInstrument)
	return r
}

func TestHandleListInstruments(t *testing.T) {
	rec := doRequest(t, newInstrumentRouter(), http.MethodGet, "/instruments", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, []any{"Piano", "Guitar", "Flute", "Saxophone", "Trumpet"}, body["categories"])

	instruments := body["instruments"].([]any)
	require.Len(t, instruments, 5)
	piano := instruments[0].(map[string]any)
	assert.Equal(t, "Steinway Piano", piano["name"])
	assert.Equal(t, 5.0, piano["stars"])
}

func TestHandleGetInstrument(t *testing.T) {
	r := newInstrumentRouter()

	rec := doRequest(t, r, http.MethodGet, "/instruments/trumpet", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Stradivarius Trumpet", body["name"])
	assert.Equal(t, 4.0, body["stars"])

	rec = doRequest(t, r, http.MethodGet, "/instruments/Drums", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
