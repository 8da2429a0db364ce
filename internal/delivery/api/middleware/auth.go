package middleware

import (
	"strings"

	"nearby/internal/delivery/api/response"
	deliverycontext "nearby/internal/delivery/context"
	"nearby/internal/domain/entity"
	"nearby/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware authenticates API requests with the bearer token issued for
// the realtime channel.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the access token and stores the identity on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		identity, err := m.tokenSvc.ValidateToken(strings.TrimSpace(tokenString))
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}

// RequireRole rejects callers whose identity does not carry role.
// It must be used after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := deliverycontext.GetIdentity(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: identity missing")
			}

			if identity.Role != role {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+role.String()+"' role")
			}

			return next(c)
		}
	}
}
