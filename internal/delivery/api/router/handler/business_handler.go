package handler

import (
	"context"
	"log/slog"
	"net/http"

	"nomad/internal/delivery/api/response"
	deliverycontext "nomad/internal/delivery/context"
	"nomad/internal/domain/entity"
	domainerrors "nomad/internal/domain/errors"
	"nomad/internal/domain/repository"
	"nomad/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BusinessHandlerParams holds dependencies for BusinessHandler, injected by Fx.
type BusinessHandlerParams struct {
	fx.In

	BusinessUC     usecase.BusinessUsecase
	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// BusinessHandler serves business owners: their pinned location and their
// notification dashboard.
type BusinessHandler struct {
	businessUC     usecase.BusinessUsecase
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewBusinessHandler is the constructor for BusinessHandler.
func NewBusinessHandler(params BusinessHandlerParams) *BusinessHandler {
	return &BusinessHandler{
		businessUC:     params.BusinessUC,
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// UpdateLocation handles PUT /business/location.
func (h *BusinessHandler) UpdateLocation(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return err
	}

	var req usecase.UpdateBusinessLocationInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	location, err := h.businessUC.UpdateLocation(c.Request().Context(), ownerID, &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, location)
}

// GetLocation handles GET /business/location.
func (h *BusinessHandler) GetLocation(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return err
	}

	location, err := h.businessUC.GetLocation(c.Request().Context(), ownerID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, location)
}

// ListNotifications handles GET /business/notifications?unread_only=&limit=&offset=.
func (h *BusinessHandler) ListNotifications(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return err
	}
	limit, offset, err := page(c)
	if err != nil {
		return err
	}
	var unreadOnly bool
	if err := echo.QueryParamsBinder(c).Bool("unread_only", &unreadOnly).BindError(); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("unread_only must be a boolean")
	}

	ctx := c.Request().Context()
	business, err := h.businessUC.BusinessOf(ctx, ownerID)
	if err != nil {
		return err
	}

	notifications, err := h.notificationUC.ListFor(ctx, business.BusinessID, repository.NotificationListFilter{
		UnreadOnly: unreadOnly,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, response.Page[*entity.BusinessNotification]{
		Items:  notifications,
		Limit:  limit,
		Offset: offset,
	})
}

// MarkNotificationRead handles POST /business/notifications/:id/read.
func (h *BusinessHandler) MarkNotificationRead(c echo.Context) error {
	return h.transition(c, h.notificationUC.MarkRead)
}

// ProcessNotification handles POST /business/notifications/:id/process.
func (h *BusinessHandler) ProcessNotification(c echo.Context) error {
	return h.transition(c, h.notificationUC.MarkProcessed)
}

func (h *BusinessHandler) transition(
	c echo.Context,
	apply func(ctx context.Context, id uuid.UUID) (*entity.BusinessNotification, error),
) error {
	ownerID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if err := h.authorize(ctx, ownerID, id); err != nil {
		return err
	}

	notification, err := apply(ctx, id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, notification)
}

// authorize checks that the notification belongs to the caller's business.
// Someone else's notification is reported as missing.
func (h *BusinessHandler) authorize(ctx context.Context, ownerID, notificationID uuid.UUID) error {
	business, err := h.businessUC.BusinessOf(ctx, ownerID)
	if err != nil {
		return err
	}

	notification, err := h.notificationUC.Get(ctx, notificationID)
	if err != nil {
		return err
	}

	if notification.BusinessID != business.BusinessID {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Notification access denied",
			slog.String("notification_id", notificationID.String()),
			slog.String("owner_id", ownerID.String()),
		)

		return domainerrors.ErrNotificationNotFound
	}

	return nil
}
