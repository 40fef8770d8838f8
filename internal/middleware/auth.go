package middleware

import (
	stderrors "errors"

	"budget-watch/internal/errors"
	"budget-watch/internal/handlers"
	"budget-watch/internal/services"

	"github.com/labstack/echo/v4"
)

// RequireAuth creates a middleware that requires a valid bearer token. The owning
// user and the token scopes are stored on the context for handlers.
func RequireAuth(tokenService services.TokenServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateAccessToken(token)
			if err != nil {
				if stderrors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			userID, err := claims.UserUUID()
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Invalid user ID in token"))
			}

			c.Set("user_id", userID)
			c.Set("token_jti", claims.ID)
			c.Set("token_scopes", claims.Scopes)

			return next(c)
		}
	}
}

// RequireScope creates a middleware that requires the token to carry every listed scope.
// It must run after RequireAuth.
func RequireScope(requiredScopes ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			scopes, ok := c.Get("token_scopes").([]string)
			if !ok {
				return handlers.SendError(c, errors.AuthInsufficientPermission)
			}

			for _, required := range requiredScopes {
				if !hasScope(scopes, required) {
					return handlers.SendError(c, errors.AuthInsufficientPermission,
						errors.WithDetails("Missing scope "+required))
				}
			}

			return next(c)
		}
	}
}

func hasScope(scopes []string, scope string) bool {
	for _, s := range scopes {
		if s == scope {
			return true
		}
	}
	return false
}
