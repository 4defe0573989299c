package handler

import (
	"log/slog"
	"net/http"

	"nomad/internal/delivery/api/response"
	"nomad/internal/domain/entity"
	domainerrors "nomad/internal/domain/errors"
	"nomad/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ContextHandlerParams holds dependencies for ContextHandler, injected by Fx.
type ContextHandlerParams struct {
	fx.In

	MatchingUC usecase.MatchingUsecase
	Logger     *slog.Logger
}

// ContextHandler receives profile and travel changes from the profile service.
type ContextHandler struct {
	matchingUC usecase.MatchingUsecase
	logger     *slog.Logger
}

// NewContextHandler is the constructor for ContextHandler.
func NewContextHandler(params ContextHandlerParams) *ContextHandler {
	return &ContextHandler{
		matchingUC: params.MatchingUC,
		logger:     params.Logger,
	}
}

// ReceiveContextChange handles POST /internal/context-changes. With
// ?async=true the change is queued for the match worker and 202 is returned;
// otherwise it is evaluated inline and the created notifications returned.
func (h *ContextHandler) ReceiveContextChange(c echo.Context) error {
	var async bool
	if err := echo.QueryParamsBinder(c).Bool("async", &async).BindError(); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("async must be a boolean")
	}

	var userContext entity.UserContext
	if err := bindAndValidate(c, &userContext); err != nil {
		return err
	}

	ctx := c.Request().Context()
	if async {
		if err := h.matchingUC.Enqueue(ctx, &userContext); err != nil {
			return err
		}

		return response.Success(c, http.StatusAccepted, map[string]string{"status": "queued"})
	}

	created, err := h.matchingUC.Evaluate(ctx, &userContext)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"created":       len(created),
		"notifications": created,
	})
}
