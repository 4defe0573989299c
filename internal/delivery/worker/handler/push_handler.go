// Package handler contains the Pub/Sub push handlers. The match worker
// evaluates context changes with it and the API process delivers
// notification events with it.
package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"nomad/config"
	deliverycontext "nomad/internal/delivery/context"
	"nomad/internal/domain/constants"
	domainerrors "nomad/internal/domain/errors"
	"nomad/internal/domain/service"
	"nomad/internal/errors"
	"nomad/internal/infra/pubsub"
	"nomad/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// TokenValidator validates a Google-signed OIDC token for an audience.
type TokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler handles Pub/Sub push messages
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	validateToken  TokenValidator
	logger         *slog.Logger
	matchingUC     usecase.MatchingUsecase
	notificationUC usecase.NotificationUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	MatchingUC     usecase.MatchingUsecase
	NotificationUC usecase.NotificationUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	var audience string
	if params.Config.PubSub != nil {
		audience = params.Config.PubSub.PushAudience
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		audience:       audience,
		validateToken:  idtoken.Validate,
		logger:         params.Logger,
		matchingUC:     params.MatchingUC,
		notificationUC: params.NotificationUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages. It answers 503 only for
// failures worth redelivering; everything else is acknowledged with 200 so a
// poison message is not retried forever.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Push] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Push] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := pushMsg.Decode()
	if err != nil {
		h.logger.Error("[Push] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &pushMsg)
	ctx = deliverycontext.WithRequestScope(ctx, h.logger, requestID)
	reqLogger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	eventType := pushMsg.Message.Attributes[pubsub.AttrEventType]
	switch eventType {
	case constants.EventTypeContextChanged:
		err = h.handleContextChanged(ctx, data)
	case constants.EventTypeNotificationCreated:
		err = h.handleNotificationCreated(ctx, data)
	default:
		reqLogger.Warn("[Push] Unknown event type, acknowledging",
			slog.String("event_type", eventType),
			slog.String("message_id", pushMsg.Message.MessageID),
		)

		return c.NoContent(http.StatusOK)
	}

	if err != nil {
		retryable := isRetryable(err)
		reqLogger.Error("[Push] Failed to process event",
			slog.String("event_type", eventType),
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Bool("retryable", retryable),
			slog.Any("error", err),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}
	}

	return c.NoContent(http.StatusOK)
}

func (h *PushHandler) handleContextChanged(ctx context.Context, data []byte) error {
	var event service.ContextChangedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return errors.Wrap(err, "parse context changed event")
	}
	if event.Context == nil {
		return errors.New("context changed event without context")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)
	logger.Info("[Push] Evaluating context change",
		slog.String("user_id", event.Context.UserID.String()),
		slog.Time("changed_at", event.ChangedAt),
	)

	created, err := h.matchingUC.Evaluate(ctx, event.Context)
	if err != nil {
		return err
	}

	logger.Info("[Push] Context change evaluated",
		slog.String("user_id", event.Context.UserID.String()),
		slog.Int("created", len(created)),
	)

	return nil
}

func (h *PushHandler) handleNotificationCreated(ctx context.Context, data []byte) error {
	var event service.NotificationCreatedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return errors.Wrap(err, "parse notification created event")
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("[Push] Notification created",
		slog.String("notification_id", event.NotificationID),
		slog.String("business_id", event.BusinessID),
		slog.String("match_type", string(event.MatchType)),
		slog.Int("priority", int(event.Priority)),
		slog.Bool("delivered", event.Delivered),
	)

	return h.notificationUC.Deliver(ctx, &event)
}

// isRetryable reports whether Pub/Sub should redeliver the message.
func isRetryable(err error) bool {
	return errors.IsRetryable(err) || errors.Is(err, domainerrors.ErrStoreUnavailable)
}

// extractRequestID extracts request_id from message attributes, the request context, or generates a new one
func extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage) string {
	if requestID := pushMsg.Message.Attributes[pubsub.AttrRequestID]; requestID != "" {
		return requestID
	}

	// From RequestIDMiddleware via the X-Request-Id header
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok || token == "" {
		return errors.New("invalid authorization header format")
	}

	// Without a configured audience, expect the URL of this endpoint
	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
