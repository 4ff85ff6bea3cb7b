package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/instruments-rental-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/instruments-rental-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/instruments-rental-api/internal/service"
)

type CreditsService interface {
	Balance(ctx context.Context, userID uint) (int, error)
	Add(ctx context.Context, userID uint, amount int) (int, error)
}

type CreditsHandler struct {
	svc CreditsService
}

func NewCreditsHandler(svc CreditsService) *CreditsHandler {
	return &CreditsHandler{
		svc: svc,
	}
}

// HandleGetCredits godoc
// @Summary      Get the credits balance
// @Tags         credits
// @Produce      json
// @Success      200  {object}  response.CreditsResponse
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /credits [get]
// @Security BearerAuth
func (h *CreditsHandler) HandleGetCredits(ctx *gin.Context) {
	userID, respErr := getUserIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	balance, err := h.svc.Balance(ctx.Request.Context(), userID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetCredits -> h.svc.Balance -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.CreditsResponse{Balance: balance})
}

// HandleAddCredits godoc
// @Summary      Add credits
// @Tags         credits
// @Accept       json
// @Produce      json
// @Param        request  body      request.AddCreditsRequest  true  "amount to add, greater than zero"
// @Success      200      {object}  response.CreditsResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /credits [post]
// @Security BearerAuth
func (h *CreditsHandler) HandleAddCredits(ctx *gin.Context) {
	userID, respErr := getUserIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.AddCreditsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	balance, err := h.svc.Add(ctx.Request.Context(), userID, req.Amount)
	if err != nil {
		if errors.Is(err, service.ErrNonPositiveAmount) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleAddCredits -> h.svc.Add -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.CreditsResponse{Balance: balance})
}
