package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/instruments-rental-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/instruments-rental-api/internal/domain"
	"github.com/vietanh2810/instruments-rental-api/internal/service"
)

type CatalogService interface {
	ListInstruments(ctx context.Context) ([]domain.Instrument, error)
	GetByCategory(ctx context.Context, category string) (domain.Instrument, error)
}

type InstrumentHandler struct {
	svc CatalogService
}

func NewInstrumentHandler(svc CatalogService) *InstrumentHandler {
	return &InstrumentHandler{
		svc: svc,
	}
}

// HandleListInstruments godoc
// @Summary      List the catalog
// @Description  Categories in display order and every instrument with its star count
// @Tags         instruments
// @Produce      json
// @Success      200  {object}  response.CatalogResponse
// @Failure      500  {object}  response.Err
// @Router       /instruments [get]
func (h *InstrumentHandler) HandleListInstruments(ctx *gin.Context) {
	instruments, err := h.svc.ListInstruments(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListInstruments -> h.svc.ListInstruments -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewCatalogResponse(instruments))
}

// HandleGetInstrument godoc
// @Summary      Get one instrument
// @Tags         instruments
// @Produce      json
// @Param        category  path      string  true  "instrument category, case-insensitive"
// @Success      200       {object}  response.InstrumentResponse
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /instruments/{category} [get]
func (h *InstrumentHandler) HandleGetInstrument(ctx *gin.Context) {
	category := ctx.Param("category")

	instrument, err := h.svc.GetByCategory(ctx.Request.Context(), category)
	if err != nil {
		if errors.Is(err, service.ErrInstrumentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("instrument", "category", category))
			return
		}

		err = fmt.Errorf("v1.HandleGetInstrument -> h.svc.GetByCategory -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewInstrumentResponse(instrument))
}
