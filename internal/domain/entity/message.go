// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MessageKind distinguishes ordinary chat messages from instant pings.
type MessageKind string

const (
	// MessageKindPlain is a regular direct message.
	MessageKindPlain MessageKind = "plain"
	// MessageKindInstant is a short-lived "instant" message, e.g. a meetup ping.
	MessageKindInstant MessageKind = "instant"
)

// IsValid checks if the MessageKind is a valid value.
func (k MessageKind) IsValid() bool {
	switch k {
	case MessageKindPlain, MessageKindInstant:
		return true
	default:
		return false
	}
}

// Message is a direct message between two users. It is immutable once stored,
// except for IsRead which only ever moves from false to true.
type Message struct {
	ID         uuid.UUID   `json:"id"`          // Time-ordered (v7) identifier.
	SenderID   uuid.UUID   `json:"sender_id"`   // The user who sent the message.
	ReceiverID uuid.UUID   `json:"receiver_id"` // The user the message is addressed to.
	Content    string      `json:"content"`     // Message body.
	Kind       MessageKind `json:"kind"`        // plain or instant.
	CreatedAt  time.Time   `json:"created_at"`  // Send time; defines delivery order per receiver.
	IsRead     bool        `json:"is_read"`     // Set once the receiver has been handed the message.
	ReadAt     *time.Time  `json:"read_at,omitempty"`
}

// NewMessage builds an unread message stamped with a fresh time-ordered ID.
// Kind defaults to plain when empty. The timestamp is truncated to the
// microsecond precision of the store so it compares equal after a round trip.
func NewMessage(senderID, receiverID uuid.UUID, content string, kind MessageKind, now time.Time) *Message {
	if kind == "" {
		kind = MessageKindPlain
	}

	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	return &Message{
		ID:         id,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		Kind:       kind,
		CreatedAt:  now.Truncate(time.Microsecond),
	}
}

// HasContent reports whether the message body contains anything besides whitespace.
func (m *Message) HasContent() bool {
	return strings.TrimSpace(m.Content) != ""
}
