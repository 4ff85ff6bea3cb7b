package response

import "github.com/vietanh2810/instruments-rental-api/internal/domain"

type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}
