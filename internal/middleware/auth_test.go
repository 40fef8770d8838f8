package middleware

import (
	"crypto/rsa"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"budget-watch/internal/config"
	"budget-watch/internal/models"
	"budget-watch/internal/services"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

type AuthMiddlewareSuite struct {
	suite.Suite
	privateKey   *rsa.PrivateKey
	tokenService services.TokenServiceInterface
	e            *echo.Echo
}

func (s *AuthMiddlewareSuite) SetupTest() {
	s.tokenService, s.privateKey = s.createTokenService()
	s.e = echo.New()
}

func (s *AuthMiddlewareSuite) createTokenService() (services.TokenServiceInterface, *rsa.PrivateKey) {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	jwtConfig := &config.JWTConfig{
		PrivateKey: privateKey,
		PublicKey:  publicKey,
		Issuer:     "test-issuer",
	}

	return services.NewTokenService(jwtConfig), privateKey
}

func (s *AuthMiddlewareSuite) okHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *AuthMiddlewareSuite) serve(handler echo.HandlerFunc, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	// middleware errors are written through SendError and return nil
	s.NoError(handler(c))
	return rec
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ValidToken() {
	userID := uuid.New()
	token, _, err := s.tokenService.GenerateAccessToken(userID, []string{models.ScopeTransactionsWrite})
	s.Require().NoError(err)

	handler := RequireAuth(s.tokenService)(func(c echo.Context) error {
		s.Equal(userID, c.Get("user_id"))
		s.Equal([]string{models.ScopeTransactionsWrite}, c.Get("token_scopes"))
		s.NotEmpty(c.Get("token_jti"))
		return s.okHandler(c)
	})

	rec := s.serve(handler, "Bearer "+token)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MissingAuthorizationHeader() {
	rec := s.serve(RequireAuth(s.tokenService)(s.okHandler), "")
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_001")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_InvalidTokenFormat() {
	rec := s.serve(RequireAuth(s.tokenService)(s.okHandler), "InvalidToken")
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_003")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MalformedJWT() {
	rec := s.serve(RequireAuth(s.tokenService)(s.okHandler), "Bearer invalid.jwt.token")
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ExpiredToken() {
	past := time.Now().Add(-2 * time.Hour)
	claims := models.AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "test-issuer",
			Subject:   uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(past),
			ExpiresAt: jwt.NewNumericDate(past.Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.privateKey)
	s.Require().NoError(err)

	rec := s.serve(RequireAuth(s.tokenService)(s.okHandler), "Bearer "+token)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_002")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_SubjectIsNotAUser() {
	now := time.Now()
	claims := models.AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "test-issuer",
			Subject:   "service-account",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.privateKey)
	s.Require().NoError(err)

	rec := s.serve(RequireAuth(s.tokenService)(s.okHandler), "Bearer "+token)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_TokenSignedWithDifferentKey() {
	otherService, _ := s.createTokenService()
	token, _, err := otherService.GenerateAccessToken(uuid.New(), nil)
	s.Require().NoError(err)

	rec := s.serve(RequireAuth(s.tokenService)(s.okHandler), "Bearer "+token)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireScope_Granted() {
	token, _, err := s.tokenService.GenerateAccessToken(uuid.New(), []string{models.ScopeTransactionsWrite, models.ScopeRulesAdmin})
	s.Require().NoError(err)

	handler := RequireAuth(s.tokenService)(RequireScope(models.ScopeRulesAdmin)(s.okHandler))

	rec := s.serve(handler, "Bearer "+token)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireScope_Missing() {
	token, _, err := s.tokenService.GenerateAccessToken(uuid.New(), []string{models.ScopeTransactionsWrite})
	s.Require().NoError(err)

	handler := RequireAuth(s.tokenService)(RequireScope(models.ScopeRulesAdmin)(s.okHandler))

	rec := s.serve(handler, "Bearer "+token)
	s.Equal(http.StatusForbidden, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_004")
}

func (s *AuthMiddlewareSuite) TestRequireScope_RequiresEveryScope() {
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("token_scopes", []string{models.ScopeRulesAdmin})

	s.NoError(RequireScope(models.ScopeRulesAdmin, models.ScopeTransactionsWrite)(s.okHandler)(c))
	s.Equal(http.StatusForbidden, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireScope_WithoutAuthentication() {
	rec := s.serve(RequireScope(models.ScopeRulesAdmin)(s.okHandler), "")
	s.Equal(http.StatusForbidden, rec.Code)
}
