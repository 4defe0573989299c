package usecase

import (
	"context"

	"nomad/internal/domain/entity"

	"github.com/google/uuid"
)

// SendMessageInput is a direct message to send.
type SendMessageInput struct {
	SenderID   uuid.UUID
	SenderName string
	ReceiverID uuid.UUID
	Content    string
	Kind       entity.MessageKind
}

// MessagingUsecase coordinates message sends, instant delivery to online
// receivers and the backlog drain when a user connects.
type MessagingUsecase interface {
	// Send stores the message and pushes it to the receiver if online.
	// It fails only when the message could not be stored.
	Send(ctx context.Context, input *SendMessageInput) (*entity.Message, error)

	// Connect registers a live connection and delivers the user's unread
	// backlog to it in send order.
	Connect(ctx context.Context, conn *entity.Connection) error

	// Disconnect removes the connection unless a newer one replaced it.
	Disconnect(ctx context.Context, conn *entity.Connection)

	// UnreadFor lists the user's unread messages, oldest first.
	UnreadFor(ctx context.Context, userID uuid.UUID) ([]*entity.Message, error)

	// MarkRead marks every unread message of the user read.
	MarkRead(ctx context.Context, userID uuid.UUID) (int64, error)

	// Conversation lists messages between two users, oldest first.
	Conversation(ctx context.Context, userID, peerID uuid.UUID, limit, offset int) ([]*entity.Message, error)

	// IsOnline reports whether the user has a live connection.
	IsOnline(userID uuid.UUID) bool
}
