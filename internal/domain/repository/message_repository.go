// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"nomad/internal/domain/entity"

	"github.com/google/uuid"
)

// MessageRepository is the durable store of record for direct messages.
type MessageRepository interface {
	// Append persists a new message. It is the only step of a send that may fail the send.
	Append(ctx context.Context, message *entity.Message) error

	// UnreadFor returns up to limit unread messages addressed to receiverID,
	// oldest first. A non-positive limit means no limit.
	UnreadFor(ctx context.Context, receiverID uuid.UUID, limit int) ([]*entity.Message, error)

	// MarkRead flips unread messages of receiverID created at or before
	// beforeOrAt to read. When ids is non-empty only those messages are
	// touched. Returns the number of messages that changed.
	MarkRead(ctx context.Context, receiverID uuid.UUID, beforeOrAt time.Time, ids ...uuid.UUID) (int64, error)

	// Conversation returns the messages exchanged between userID and peerID, oldest first.
	Conversation(ctx context.Context, userID, peerID uuid.UUID, limit, offset int) ([]*entity.Message, error)
}
