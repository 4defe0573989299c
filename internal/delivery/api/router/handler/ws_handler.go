package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"nomad/internal/delivery/api/middleware"
	deliverycontext "nomad/internal/delivery/context"
	"nomad/internal/domain/entity"
	domainerrors "nomad/internal/domain/errors"
	"nomad/internal/infra/transport/websocket"
	"nomad/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Client frame types.
const (
	frameMessage = "message"
	framePing    = "ping"
)

// WebSocketHandlerParams holds dependencies for WebSocketHandler, injected by Fx.
type WebSocketHandlerParams struct {
	fx.In

	MessagingUC usecase.MessagingUsecase
	Upgrader    *websocket.Upgrader
	Logger      *slog.Logger
}

// WebSocketHandler runs live sessions: it registers the connection, drains
// the backlog and relays client message frames.
type WebSocketHandler struct {
	messagingUC usecase.MessagingUsecase
	upgrader    *websocket.Upgrader
	logger      *slog.Logger
}

// NewWebSocketHandler is the constructor for WebSocketHandler.
func NewWebSocketHandler(params WebSocketHandlerParams) *WebSocketHandler {
	return &WebSocketHandler{
		messagingUC: params.MessagingUC,
		upgrader:    params.Upgrader,
		logger:      params.Logger,
	}
}

// clientMessage is the data of a client "message" frame.
type clientMessage struct {
	ClientID   string             `json:"client_id,omitempty"` // Echoed in the ack so clients can correlate.
	ReceiverID uuid.UUID          `json:"receiver_id"`
	Content    string             `json:"content"`
	Kind       entity.MessageKind `json:"kind,omitempty"`
}

type ackData struct {
	ClientID  string    `json:"client_id,omitempty"`
	MessageID uuid.UUID `json:"message_id"`
	SentAt    time.Time `json:"sent_at"`
}

type errorData struct {
	ClientID string `json:"client_id,omitempty"`
	Code     string `json:"code"`
	Message  string `json:"message"`
}

// Serve handles GET /ws. The session lasts until the client goes away, the
// connection is replaced by a newer one or the server shuts down.
func (h *WebSocketHandler) Serve(c echo.Context) error {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return domainerrors.ErrUnauthorized.WithDetails("no authenticated user")
	}

	ws, err := h.upgrader.Upgrade(c.Response(), c.Request())
	if err != nil {
		// The upgrader has already answered the client.
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Warn("WebSocket upgrade failed", slog.Any("error", err))

		return nil
	}

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()
	ctx = deliverycontext.WithLogger(ctx, deliverycontext.GetLoggerOrDefault(ctx, h.logger).With(slog.String("user_id", claims.UserID.String())))
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	// Closing the transport cancels only this session's drain.
	go func() {
		select {
		case <-ws.Done():
			cancel()
		case <-ctx.Done():
		}
	}()

	conn := entity.NewConnection(claims.UserID, claims.Name, ws, time.Now())

	connected := make(chan struct{})
	go func() {
		defer close(connected)
		if err := h.messagingUC.Connect(ctx, conn); err != nil {
			logger.Warn("Backlog drain incomplete", slog.Any("error", err))
		}
	}()

	if err := ws.ReadLoop(ctx, func(ctx context.Context, frame *websocket.Frame) {
		h.handleFrame(ctx, conn, ws, frame)
	}); err != nil {
		logger.Debug("WebSocket read ended", slog.Any("error", err))
	}

	cancel()
	<-connected
	h.messagingUC.Disconnect(context.WithoutCancel(ctx), conn)

	return nil
}

func (h *WebSocketHandler) handleFrame(ctx context.Context, conn *entity.Connection, ws *websocket.Conn, frame *websocket.Frame) {
	switch frame.Type {
	case framePing:
		h.reply(ctx, conn, &entity.Payload{Type: entity.PayloadTypePong})
	case frameMessage:
		h.relay(ctx, conn, ws, frame.Data)
	default:
		h.reply(ctx, conn, errorPayload("", domainerrors.ErrInvalidMessage.WithDetails("unknown frame type")))
	}
}

func (h *WebSocketHandler) relay(ctx context.Context, conn *entity.Connection, ws *websocket.Conn, data json.RawMessage) {
	var in clientMessage
	if err := json.Unmarshal(data, &in); err != nil {
		h.reply(ctx, conn, errorPayload("", domainerrors.ErrInvalidMessage.WithDetails("malformed message frame")))

		return
	}
	if !ws.Allow() {
		h.reply(ctx, conn, &entity.Payload{Type: entity.PayloadTypeError, Data: &errorData{
			ClientID: in.ClientID,
			Code:     "RATE_LIMITED",
			Message:  "too many messages",
		}})

		return
	}

	msg, err := h.messagingUC.Send(ctx, &usecase.SendMessageInput{
		SenderID:   conn.UserID,
		SenderName: conn.DisplayName,
		ReceiverID: in.ReceiverID,
		Content:    in.Content,
		Kind:       in.Kind,
	})
	if err != nil {
		h.reply(ctx, conn, errorPayload(in.ClientID, err))

		return
	}

	h.reply(ctx, conn, &entity.Payload{Type: entity.PayloadTypeAck, Data: &ackData{
		ClientID:  in.ClientID,
		MessageID: msg.ID,
		SentAt:    msg.CreatedAt,
	}})
}

// reply writes to the session behind any backlog drain still in progress.
func (h *WebSocketHandler) reply(ctx context.Context, conn *entity.Connection, payload *entity.Payload) {
	if err := conn.Exclusive(func() error {
		return conn.Push(ctx, payload)
	}); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Debug("Reply not written", slog.Any("error", err))
	}
}

func errorPayload(clientID string, err error) *entity.Payload {
	data := &errorData{
		ClientID: clientID,
		Code:     domainerrors.ErrInternalError.ErrorCode(),
		Message:  domainerrors.ErrInternalError.Message(),
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		data.Code = appErr.ErrorCode()
		data.Message = appErr.Message()
		if d := appErr.Details(); d != "" && appErr.HTTPCode() < 500 {
			data.Message += ": " + d
		}
	}

	return &entity.Payload{Type: entity.PayloadTypeError, Data: data}
}
