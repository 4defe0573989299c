package entity

import (
	"time"

	"github.com/google/uuid"
)

// PayloadType is the discriminator of a frame pushed to a live transport.
type PayloadType string

const (
	// PayloadTypeMessage carries a direct message.
	PayloadTypeMessage PayloadType = "message"
	// PayloadTypeNotification carries a business notification.
	PayloadTypeNotification PayloadType = "notification"
	// PayloadTypeAck acknowledges a client frame once its effect is durable.
	PayloadTypeAck PayloadType = "ack"
	// PayloadTypeError reports a rejected client frame.
	PayloadTypeError PayloadType = "error"
	// PayloadTypePong answers a client ping frame.
	PayloadTypePong PayloadType = "pong"
)

// Payload is the envelope written to a transport: {type, data}.
type Payload struct {
	Type PayloadType `json:"type"`
	Data any         `json:"data"`
}

// MessagePayload is the data of a "message" frame.
type MessagePayload struct {
	ID         uuid.UUID   `json:"id"`
	SenderID   uuid.UUID   `json:"sender_id"`
	SenderName string      `json:"sender_name,omitempty"`
	ReceiverID uuid.UUID   `json:"receiver_id"`
	Content    string      `json:"content"`
	Kind       MessageKind `json:"kind"`
	SentAt     time.Time   `json:"sent_at"`
}

// NewMessagePayload wraps a stored message into a "message" frame.
func NewMessagePayload(msg *Message, senderName string) *Payload {
	return &Payload{
		Type: PayloadTypeMessage,
		Data: &MessagePayload{
			ID:         msg.ID,
			SenderID:   msg.SenderID,
			SenderName: senderName,
			ReceiverID: msg.ReceiverID,
			Content:    msg.Content,
			Kind:       msg.Kind,
			SentAt:     msg.CreatedAt,
		},
	}
}

// NewNotificationPayload wraps a business notification into a "notification" frame.
func NewNotificationPayload(n *BusinessNotification) *Payload {
	return &Payload{
		Type: PayloadTypeNotification,
		Data: n,
	}
}
