package handler

import (
	"log/slog"
	"net/http"

	"nomad/internal/delivery/api/middleware"
	"nomad/internal/delivery/api/response"
	"nomad/internal/domain/entity"
	"nomad/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MessageHandlerParams holds dependencies for MessageHandler, injected by Fx.
type MessageHandlerParams struct {
	fx.In

	MessagingUC usecase.MessagingUsecase
	Logger      *slog.Logger
}

// MessageHandler serves the REST side of direct messaging.
type MessageHandler struct {
	messagingUC usecase.MessagingUsecase
	logger      *slog.Logger
}

// NewMessageHandler is the constructor for MessageHandler.
func NewMessageHandler(params MessageHandlerParams) *MessageHandler {
	return &MessageHandler{
		messagingUC: params.MessagingUC,
		logger:      params.Logger,
	}
}

// SendMessageRequest is the body of POST /messages.
type SendMessageRequest struct {
	ReceiverID uuid.UUID          `json:"receiver_id" validate:"required"`
	Content    string             `json:"content" validate:"required,max=4000"`
	Kind       entity.MessageKind `json:"kind" validate:"omitempty,oneof=plain instant"`
}

// SendMessage stores a message and answers once it is durable.
func (h *MessageHandler) SendMessage(c echo.Context) error {
	senderID, err := callerID(c)
	if err != nil {
		return err
	}

	var req SendMessageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	var senderName string
	if claims, ok := middleware.GetClaims(c); ok {
		senderName = claims.Name
	}

	msg, err := h.messagingUC.Send(c.Request().Context(), &usecase.SendMessageInput{
		SenderID:   senderID,
		SenderName: senderName,
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
		Kind:       req.Kind,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, msg)
}

// GetUnread lists the caller's unread messages, oldest first.
func (h *MessageHandler) GetUnread(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	messages, err := h.messagingUC.UnreadFor(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, messages)
}

// MarkRead marks all of the caller's unread messages read.
func (h *MessageHandler) MarkRead(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	updated, err := h.messagingUC.MarkRead(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]int64{"updated": updated})
}

// GetConversation lists the messages between the caller and a peer.
func (h *MessageHandler) GetConversation(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	peerID, err := pathUUID(c, "peerId")
	if err != nil {
		return err
	}
	limit, offset, err := page(c)
	if err != nil {
		return err
	}

	messages, err := h.messagingUC.Conversation(c.Request().Context(), userID, peerID, limit, offset)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, response.Page[*entity.Message]{Items: messages, Limit: limit, Offset: offset})
}

// GetPresence reports whether a user has a live connection.
func (h *MessageHandler) GetPresence(c echo.Context) error {
	userID, err := pathUUID(c, "userId")
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"user_id": userID,
		"online":  h.messagingUC.IsOnline(userID),
	})
}
