package models

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAccessClaims_UserUUID(t *testing.T) {
	userID := uuid.New()

	fromClaim := AccessClaims{UserID: userID.String()}
	id, err := fromClaim.UserUUID()
	assert.NoError(t, err)
	assert.Equal(t, userID, id)

	fromSubject := AccessClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: userID.String()}}
	id, err = fromSubject.UserUUID()
	assert.NoError(t, err)
	assert.Equal(t, userID, id)

	_, err = (&AccessClaims{UserID: "not-a-uuid"}).UserUUID()
	assert.ErrorIs(t, err, ErrInvalidSubject)

	_, err = (&AccessClaims{UserID: uuid.Nil.String()}).UserUUID()
	assert.ErrorIs(t, err, ErrInvalidSubject)
}

func TestAccessClaims_HasScope(t *testing.T) {
	claims := AccessClaims{Scopes: []string{ScopeTransactionsWrite}}

	assert.True(t, claims.HasScope(ScopeTransactionsWrite))
	assert.False(t, claims.HasScope(ScopeRulesAdmin))
}
