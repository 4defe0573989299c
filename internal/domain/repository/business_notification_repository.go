package repository

import (
	"context"

	"nomad/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationListFilter narrows a business dashboard listing.
type NotificationListFilter struct {
	UnreadOnly bool
	Limit      int
	Offset     int
}

// BusinessNotificationRepository persists business notifications and their lifecycle flags.
type BusinessNotificationRepository interface {
	// CreateIfAbsent inserts the notification unless an unprocessed notification
	// with the same natural key exists. It reports whether a row was inserted.
	CreateIfAbsent(ctx context.Context, notification *entity.BusinessNotification) (bool, error)

	// FindByID retrieves a notification by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BusinessNotification, error)

	// FindByIDForUpdate retrieves a notification and locks its row until the
	// surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.BusinessNotification, error)

	// UpdateState persists the read/processed flags and timestamps of the notification.
	UpdateState(ctx context.Context, notification *entity.BusinessNotification) error

	// ListForBusiness lists notifications of a business, highest priority and newest first.
	ListForBusiness(ctx context.Context, businessID uuid.UUID, filter NotificationListFilter) ([]*entity.BusinessNotification, error)
}
