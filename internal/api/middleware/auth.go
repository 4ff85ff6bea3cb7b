package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/instruments-rental-api/internal/pkg/jwthelper"
)

// UserIDKey is the gin context key holding the authenticated user ID.
const UserIDKey = "userID"

var (
	errMissingToken = errors.New("missing bearer token")
	errInvalidToken = errors.New("invalid or expired token")
)

type Authenticator struct {
	key []byte
}

func NewAuthenticator(key string) *Authenticator {
	return &Authenticator{
		key: []byte(key),
	}
}

func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			abort(ctx, errMissingToken)
			return
		}

		claims, err := jwthelper.ParseToken(a.key, tokenString)
		if err != nil {
			abort(ctx, errInvalidToken)
			return
		}

		ctx.Set(UserIDKey, claims.UserID)
		ctx.Next()
	}
}

func abort(ctx *gin.Context, err error) {
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"status_code": http.StatusUnauthorized,
		"message":     http.StatusText(http.StatusUnauthorized),
		"error":       err.Error(),
	})
}
