package handler

import (
	"log/slog"
	"net/http"

	"nomad/internal/delivery/api/response"
	"nomad/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterDevice handles POST /devices. Registering the same device again refreshes its token.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req usecase.DeviceInfo
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), userID, &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, device)
}
