package middleware

import (
	"slices"
	"strings"

	deliverycontext "nomad/internal/delivery/context"
	domainerrors "nomad/internal/domain/errors"
	"nomad/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	claimsKey  = "claims"
	tokenQuery = "token"
)

// AuthMiddleware authenticates requests with access tokens.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate requires a valid "Authorization: Bearer" token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return m.authenticate(next, false)
}

// AuthenticateQuery additionally accepts the token in the "token" query
// parameter, for websocket clients that cannot set headers on the upgrade.
func (m *AuthMiddleware) AuthenticateQuery(next echo.HandlerFunc) echo.HandlerFunc {
	return m.authenticate(next, true)
}

func (m *AuthMiddleware) authenticate(next echo.HandlerFunc, allowQuery bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, err := bearerToken(c, allowQuery)
		if err != nil {
			return err
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil || claims.UserID == uuid.Nil {
			return domainerrors.ErrUnauthorized.WithDetails("invalid or expired token")
		}

		c.Set(claimsKey, claims)
		c.Set(deliverycontext.KeyUserID, claims.UserID.String())

		return next(c)
	}
}

func bearerToken(c echo.Context, allowQuery bool) (string, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		if token := c.QueryParam(tokenQuery); allowQuery && token != "" {
			return token, nil
		}

		return "", domainerrors.ErrUnauthorized.WithDetails("authorization header is missing")
	}

	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok || token == "" {
		return "", domainerrors.ErrUnauthorized.WithDetails("must be a Bearer token")
	}

	return token, nil
}

// RequireRole rejects callers without the role. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := GetClaims(c)
			if !ok || !slices.Contains(claims.Roles, requiredRole) {
				return domainerrors.ErrForbidden.WithDetails("requires role " + requiredRole)
			}

			return next(c)
		}
	}
}

// GetClaims returns the authenticated caller's claims.
func GetClaims(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(claimsKey).(*service.Claims)

	return claims, ok && claims != nil
}

// GetUserID returns the authenticated caller's user ID.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	claims, ok := GetClaims(c)
	if !ok {
		return uuid.Nil, false
	}

	return claims.UserID, true
}
