package dto

import "time"

// DevTokenRequest asks for a locally signed access token. Only served outside production.
type DevTokenRequest struct {
	UserID string   `json:"userId" validate:"required,uuid"`
	Scopes []string `json:"scopes" validate:"omitempty,dive,oneof=transactions:write rules:admin"`
}

// TokenResponse contains a bearer token
type TokenResponse struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
}
