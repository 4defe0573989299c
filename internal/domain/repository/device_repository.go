package repository

import (
	"context"

	"nomad/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// UpsertDevice registers a device or refreshes the token of an existing (user, device) pair.
	UpsertDevice(ctx context.Context, device *entity.UserDevice) error

	// FindActiveDevicesByUser retrieves all active devices for a specific user.
	FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// DeactivateTokens marks the devices holding these FCM tokens inactive.
	DeactivateTokens(ctx context.Context, tokens []string) error
}
