package handlers

import (
	"log/slog"
	"net/http"

	"budget-watch/internal/dto"
	"budget-watch/internal/errors"
	"budget-watch/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints.
// Routes are only registered outside production.
type DevHandler struct {
	tokenService services.TokenServiceInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(tokenService services.TokenServiceInterface) *DevHandler {
	return &DevHandler{
		tokenService: tokenService,
	}
}

// IssueToken signs an access token with the local development key
//
// Method: POST /api/v1/dev/token
// Authentication: None
// Environment: Development only
//
// Success Response: 200 OK with dto.TokenResponse
//
// Error Responses:
//   - 400: Invalid user ID or scope
//   - 503: No signing key configured
func (h *DevHandler) IssueToken(c echo.Context) error {
	var req dto.DevTokenRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid user ID"))
	}

	token, expiresAt, err := h.tokenService.GenerateAccessToken(userID, req.Scopes)
	if err != nil {
		if err == services.ErrSigningDisabled {
			return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Token signing is not configured"))
		}
		return SendSystemError(c, err)
	}

	slog.Info("development token issued",
		slog.String("user_id", userID.String()),
		slog.Any("scopes", req.Scopes),
		slog.String("client_ip", getClientIP(c)),
	)

	return c.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	})
}
