package service

import (
	"context"
	"time"

	"nomad/internal/domain/entity"
)

// ContextChangedEvent announces that a user's profile or travel plans changed.
type ContextChangedEvent struct {
	RequestID string              `json:"request_id,omitempty"` // For distributed tracing
	Context   *entity.UserContext `json:"context"`
	ChangedAt time.Time           `json:"changed_at"`
}

// NotificationCreatedEvent announces a new business notification. Delivered
// is false when the creating process holds no live connections and the owner
// still has to be told by the API process.
type NotificationCreatedEvent struct {
	RequestID      string           `json:"request_id,omitempty"`
	NotificationID string           `json:"notification_id"`
	BusinessID     string           `json:"business_id"`
	OwnerUserID    string           `json:"owner_user_id"`
	UserID         string           `json:"user_id"`
	MatchType      entity.MatchType `json:"match_type"`
	Priority       entity.Priority  `json:"priority"`
	Delivered      bool             `json:"delivered"`
	CreatedAt      time.Time        `json:"created_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishContextChanged hands a context change to the match worker.
	PublishContextChanged(ctx context.Context, event *ContextChangedEvent) error

	// PublishNotificationCreated announces a created business notification.
	PublishNotificationCreated(ctx context.Context, event *NotificationCreatedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
