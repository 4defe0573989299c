// Package handler contains the HTTP and websocket handlers of the API.
package handler

import (
	"net/http"

	"nomad/internal/delivery/api/middleware"
	"nomad/internal/delivery/api/response"
	domainerrors "nomad/internal/domain/errors"
	"nomad/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// page reads the limit and offset query parameters.
func page(c echo.Context) (limit, offset int, err error) {
	limit = defaultPageSize
	if err := echo.QueryParamsBinder(c).
		Int("limit", &limit).
		Int("offset", &offset).
		BindError(); err != nil {
		return 0, 0, domainerrors.ErrValidationFailed.WithDetails("limit and offset must be integers")
	}
	if limit <= 0 || limit > maxPageSize || offset < 0 {
		return 0, 0, domainerrors.ErrValidationFailed.WithDetails("limit must be 1-200 and offset non-negative")
	}

	return limit, offset, nil
}

// callerID returns the authenticated user or an unauthorized error.
func callerID(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized.WithDetails("no authenticated user")
	}

	return userID, nil
}

// pathUUID parses a UUID path parameter.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return id, nil
}

// bindAndValidate binds the request body into req and validates it.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(req)
}

// HealthHandler reports liveness and the number of live connections.
type HealthHandler struct {
	registry service.PresenceRegistry
}

// NewHealthHandler is the constructor for HealthHandler.
func NewHealthHandler(registry service.PresenceRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// HealthCheck handles GET /health.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"status":      "ok",
		"connections": h.registry.Count(),
	})
}
