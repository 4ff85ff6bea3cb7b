package v1

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/vietanh2810/instruments-rental-api/internal/domain"
	"github.com/vietanh2810/instruments-rental-api/internal/service"
)

type fakeCreditsService struct {
	balance int
	err     error
}

func (s *fakeCreditsService) Balance(_ context.Context, _ uint) (int, error) {
	return s.balance, s.err
}

func (s *fakeCreditsService) Add(_ context.Context, _ uint, amount int) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	if amount <= 0 {
		return 0, service.ErrNonPositiveAmount
	}
	s.balance += amount
	return s.balance, nil
}

func newCreditsRouter(svc CreditsService) *gin.Engine {
	h := NewCreditsHandler(svc)
	r := gin.New()
	r.GET("/credits", asUser(1), h.HandleGetCredits)
	r.POST("/credits", asUser(1), h.HandleAddCredits)
	r.GET("/anonymous", h.HandleGetCredits)
	return r
}

func TestHandleCredits(t *testing.T) {
	r := newCreditsRouter(&fakeCreditsService{balance: domain.DefaultCreditsBalance})

	rec := doRequest(t, r, http.MethodGet, "/credits", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"balance":5000}`, rec.Body.String())

	rec = doRequest(t, r, http.MethodPost, "/credits", map[string]int{"amount": 500})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"balance":5500}`, rec.Body.String())

	rec = doRequest(t, r, http.MethodPost, "/credits", map[string]int{"amount": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, r, http.MethodPost, "/credits", map[string]string{"amount": "lots"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, r, http.MethodGet, "/anonymous", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleCreditsInternalError(t *testing.T) {
	r := newCreditsRouter(&fakeCreditsService{err: errors.New("db down")})

	rec := doRequest(t, r, http.MethodGet, "/credits", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "db down")
}
