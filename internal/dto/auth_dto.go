package dto

import "github.com/alvozap/backoffice/internal/models"

type SignUpRequest struct {
	EstablishmentName string `json:"establishment_name"`
	ContactName       string `json:"contact_name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Password          string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	AccessToken string         `json:"access_token"`
	Account     models.Account `json:"account"`
}

// SessionResponse carries the restored session; Account is null when nobody
// is logged in.
type SessionResponse struct {
	Account *models.Account `json:"account"`
}
