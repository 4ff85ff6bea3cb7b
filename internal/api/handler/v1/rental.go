package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vietanh2810/instruments-rental-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/instruments-rental-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/instruments-rental-api/internal/domain"
	"github.com/vietanh2810/instruments-rental-api/internal/service"
)

type RentalService interface {
	Quote(ctx context.Context, category string, period domain.Period, quantity int) (domain.Quote, error)
	Borrow(ctx context.Context, userID uint, category string, period domain.Period, quantity int) (domain.Receipt, error)
	Checkout(ctx context.Context, userID uint, category string, period domain.Period, quantity int) (domain.RentalDetails, error)
	Confirm(ctx context.Context, userID uint, details domain.RentalDetails, contact domain.Contact) (domain.Receipt, error)
}

type RentalHandler struct {
	svc           RentalService
	addCreditsURL string
}

// NewRentalHandler takes the URL clients are pointed at when a rental
// costs more than the balance.
func NewRentalHandler(svc RentalService, addCreditsURL string) *RentalHandler {
	return &RentalHandler{
		svc:           svc,
		addCreditsURL: addCreditsURL,
	}
}

// HandleQuote godoc
// @Summary      Price a rental
// @Tags         rentals
// @Produce      json
// @Param        category  query     string  true   "instrument category"
// @Param        period    query     string  false  "weekly (default) or monthly"  Enums(weekly, monthly)
// @Param        quantity  query     string  false  "number of periods, clamped to 1..99"
// @Success      200       {object}  domain.Quote
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Router       /quote [get]
func (h *RentalHandler) HandleQuote(ctx *gin.Context) {
	category := ctx.Query("category")
	if category == "" {
		response.RenderErr(ctx, response.ErrBadRequest(validation.Errors{
			"category": errors.New("cannot be blank"),
		}))
		return
	}

	period, err := domain.ParsePeriod(ctx.Query("period"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	quantity, err := domain.ParseQuantity(ctx.Query("quantity"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	quote, err := h.svc.Quote(ctx.Request.Context(), category, period, quantity)
	if err != nil {
		h.renderRentalErr(ctx, "v1.HandleQuote -> h.svc.Quote", category, err)
		return
	}

	ctx.JSON(http.StatusOK, quote)
}

// HandleBorrow godoc
// @Summary      Rent an instrument in one step
// @Description  Charges the rental immediately. Answers 402 when the balance is too low.
// @Tags         rentals
// @Accept       json
// @Produce      json
// @Param        request  body      request.RentalRequest  true  "rental"
// @Success      200      {object}  domain.Receipt
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      402      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /rentals/borrow [post]
// @Security BearerAuth
func (h *RentalHandler) HandleBorrow(ctx *gin.Context) {
	userID, req, period, quantity, ok := h.bindRental(ctx)
	if !ok {
		return
	}

	receipt, err := h.svc.Borrow(ctx.Request.Context(), userID, req.Category, period, quantity)
	if err != nil {
		h.renderRentalErr(ctx, "v1.HandleBorrow -> h.svc.Borrow", req.Category, err)
		return
	}

	ctx.JSON(http.StatusOK, receipt)
}

// HandleCheckout godoc
// @Summary      Start a two-step rental
// @Description  Prices the rental and checks the balance without charging. The result is sent back to /rentals/confirm.
// @Tags         rentals
// @Accept       json
// @Produce      json
// @Param        request  body      request.RentalRequest  true  "rental"
// @Success      200      {object}  domain.RentalDetails
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      402      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /rentals/checkout [post]
// @Security BearerAuth
func (h *RentalHandler) HandleCheckout(ctx *gin.Context) {
	userID, req, period, quantity, ok := h.bindRental(ctx)
	if !ok {
		return
	}

	details, err := h.svc.Checkout(ctx.Request.Context(), userID, req.Category, period, quantity)
	if err != nil {
		h.renderRentalErr(ctx, "v1.HandleCheckout -> h.svc.Checkout", req.Category, err)
		return
	}

	ctx.JSON(http.StatusOK, details)
}

// HandleConfirm godoc
// @Summary      Confirm a two-step rental
// @Description  Validates the contact details, prices the rental again and charges it.
// @Tags         rentals
// @Accept       json
// @Produce      json
// @Param        request  body      request.ConfirmRentalRequest  true  "checkout result and contact details"
// @Success      200      {object}  domain.Receipt
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      402      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /rentals/confirm [post]
// @Security BearerAuth
func (h *RentalHandler) HandleConfirm(ctx *gin.Context) {
	userID, respErr := getUserIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.ConfirmRentalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	receipt, err := h.svc.Confirm(ctx.Request.Context(), userID, req.Details, req.Contact)
	if err != nil {
		h.renderRentalErr(ctx, "v1.HandleConfirm -> h.svc.Confirm", req.Details.Category, err)
		return
	}

	ctx.JSON(http.StatusOK, receipt)
}

func (h *RentalHandler) bindRental(ctx *gin.Context) (uint, request.RentalRequest, domain.Period, int, bool) {
	var req request.RentalRequest

	userID, respErr := getUserIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return 0, req, "", 0, false
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return 0, req, "", 0, false
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return 0, req, "", 0, false
	}

	period, quantity, err := req.Parsed()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return 0, req, "", 0, false
	}

	return userID, req, period, quantity, true
}

func (h *RentalHandler) renderRentalErr(ctx *gin.Context, op, category string, err error) {
	if ice, ok := domain.IsInsufficientCredits(err); ok {
		response.RenderErr(ctx, response.ErrPaymentRequired(ice.Needed, ice.Available, h.addCreditsURL))
		return
	}

	if errors.Is(err, service.ErrInstrumentNotFound) {
		response.RenderErr(ctx, response.ErrNotFound("instrument", "category", category))
		return
	}

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.RenderErr(ctx, response.ErrBadRequest(verrs))
		return
	}

	response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("%s -> %w", op, err)))
}
