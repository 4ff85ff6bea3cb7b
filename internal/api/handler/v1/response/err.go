package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
	"go.uber.org/zap"
)

type Err struct {
	Err        error             `json:"-"`
	StatusCode int               `json:"status_code"`
	Message    string            `json:"message"`
	ErrorMsg   string            `json:"error,omitempty"`
	Fields     map[string]string `json:"fields,omitempty"`

	*InsufficientCredits
}

// InsufficientCredits is inlined into 402 answers so the client can offer to
// top up the balance.
type InsufficientCredits struct {
	Needed        int    `json:"needed"`
	Available     int    `json:"available"`
	AddCreditsURL string `json:"add_credits_url"`
}

func (e *Err) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Err.Error()
}

func newErr(status int, err error) *Err {
	e := &Err{
		Err:        err,
		StatusCode: status,
		Message:    http.StatusText(status),
	}
	if err != nil {
		e.ErrorMsg = err.Error()
	}
	return e
}

// ErrBadRequest lists per-field messages when err holds ozzo validation
// errors.
func ErrBadRequest(err error) *Err {
	e := newErr(http.StatusBadRequest, err)

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		e.Fields = make(map[string]string, len(verrs))
		for field, fieldErr := range verrs {
			e.Fields[field] = fieldErr.Error()
		}
	}

	return e
}

func ErrNotFound(resource, field string, value any) *Err {
	return newErr(http.StatusNotFound, fmt.Errorf("%s with %s=%v not found", resource, field, value))
}

func ErrWrongCredentials(err error) *Err {
	e := newErr(http.StatusUnauthorized, err)
	e.ErrorMsg = "wrong email or password"
	return e
}

func ErrUnauthorized(err error) *Err {
	return newErr(http.StatusUnauthorized, err)
}

func ErrPaymentRequired(needed, available int, addCreditsURL string) *Err {
	e := newErr(http.StatusPaymentRequired,
		fmt.Errorf("you need %d credits but only have %d. Would you like to add more credits?", needed, available))
	e.InsufficientCredits = &InsufficientCredits{
		Needed:        needed,
		Available:     available,
		AddCreditsURL: addCreditsURL,
	}
	return e
}

func ErrConflict(err error) *Err {
	return newErr(http.StatusConflict, err)
}

// ErrInternalServerError hides err from the client. It is logged by
// RenderErr.
func ErrInternalServerError(err error) *Err {
	e := newErr(http.StatusInternalServerError, err)
	e.ErrorMsg = ""
	return e
}

func RenderErr(ctx *gin.Context, e *Err) {
	if e.StatusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("request_id", requestid.Get(ctx)),
			zap.String("path", ctx.FullPath()),
			zap.Error(e.Err),
		)
	}

	ctx.AbortWithStatusJSON(e.StatusCode, e)
}
