package v1

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/instruments-rental-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/instruments-rental-api/internal/api/middleware"
)

var errNoUserInContext = errors.New("no authenticated user")

func getUserIDFromContext(ctx *gin.Context) (uint, *response.Err) {
	value, ok := ctx.Get(middleware.UserIDKey)
	if !ok {
		return 0, response.ErrUnauthorized(errNoUserInContext)
	}

	userID, ok := value.(uint)
	if !ok || userID == 0 {
		return 0, response.ErrUnauthorized(errNoUserInContext)
	}

	return userID, nil
}
