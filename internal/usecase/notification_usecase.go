package usecase

import (
	"context"

	"nomad/internal/domain/entity"
	"nomad/internal/domain/repository"
	"nomad/internal/domain/service"

	"github.com/google/uuid"
)

// NotificationUsecase manages the lifecycle of business notifications.
type NotificationUsecase interface {
	// Create stores the notification unless an unprocessed one with the same
	// natural key exists, then tells the business owner. It reports whether
	// a notification was created.
	Create(ctx context.Context, business *entity.BusinessProfile, notification *entity.BusinessNotification) (bool, error)

	// Deliver tells the business owner about a notification another process
	// created without live connections.
	Deliver(ctx context.Context, event *service.NotificationCreatedEvent) error

	// Get retrieves a notification.
	Get(ctx context.Context, id uuid.UUID) (*entity.BusinessNotification, error)

	// MarkRead moves an unread notification to read.
	MarkRead(ctx context.Context, id uuid.UUID) (*entity.BusinessNotification, error)

	// MarkProcessed moves a notification to its terminal state.
	MarkProcessed(ctx context.Context, id uuid.UUID) (*entity.BusinessNotification, error)

	// ListFor lists the notifications of a business.
	ListFor(ctx context.Context, businessID uuid.UUID, filter repository.NotificationListFilter) ([]*entity.BusinessNotification, error)
}
