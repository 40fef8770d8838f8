package models

import (
	"errors"
	"slices"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token scopes understood by the API
const (
	ScopeTransactionsWrite = "transactions:write"
	ScopeRulesAdmin        = "rules:admin"
)

var ErrInvalidSubject = errors.New("token subject is not a valid user id")

// AccessClaims are the claims carried by access tokens issued by the identity provider
type AccessClaims struct {
	jwt.RegisteredClaims
	UserID string   `json:"user_id"`
	Scopes []string `json:"scopes,omitempty"`
}

// UserUUID returns the owning user, falling back to the registered subject
func (c *AccessClaims) UserUUID() (uuid.UUID, error) {
	raw := c.UserID
	if raw == "" {
		raw = c.Subject
	}

	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, ErrInvalidSubject
	}
	return id, nil
}

func (c *AccessClaims) HasScope(scope string) bool {
	return slices.Contains(c.Scopes, scope)
}
