package usecase

import (
	"context"

	"nomad/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateBusinessLocationInput is the owner supplied location of a business.
type UpdateBusinessLocationInput struct {
	Latitude                      float64 `json:"latitude" validate:"latitude"`
	Longitude                     float64 `json:"longitude" validate:"longitude"`
	ProximityNotificationsEnabled bool    `json:"proximity_notifications_enabled"`
}

// BusinessUsecase serves business owners.
type BusinessUsecase interface {
	// BusinessOf returns the business owned by the user.
	BusinessOf(ctx context.Context, ownerID uuid.UUID) (*entity.BusinessProfile, error)

	// UpdateLocation pins the location of the owner's business.
	UpdateLocation(ctx context.Context, ownerID uuid.UUID, input *UpdateBusinessLocationInput) (*entity.BusinessLocation, error)

	// GetLocation returns the pinned location of the owner's business.
	GetLocation(ctx context.Context, ownerID uuid.UUID) (*entity.BusinessLocation, error)
}
