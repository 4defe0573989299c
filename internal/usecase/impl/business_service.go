package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "nomad/internal/delivery/context"
	"nomad/internal/domain/entity"
	domainerrors "nomad/internal/domain/errors"
	"nomad/internal/domain/repository"
	"nomad/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// businessService implements the BusinessUsecase interface.
type businessService struct {
	businessRepo repository.BusinessRepository
	locationRepo repository.BusinessLocationRepository
	logger       *slog.Logger
	now          func() time.Time
}

// NewBusinessService creates a new business service instance
func NewBusinessService(
	businessRepo repository.BusinessRepository,
	locationRepo repository.BusinessLocationRepository,
	logger *slog.Logger,
) usecase.BusinessUsecase {
	return &businessService{
		businessRepo: businessRepo,
		locationRepo: locationRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// BusinessOf returns the business owned by the user.
func (srv *businessService) BusinessOf(ctx context.Context, ownerID uuid.UUID) (*entity.BusinessProfile, error) {
	profile, err := srv.businessRepo.FindProfileByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by owner")
	}

	return profile, nil
}

// UpdateLocation pins the location of the owner's business. A (0,0) point is
// rejected because proximity matching would treat it as no location.
func (srv *businessService) UpdateLocation(ctx context.Context, ownerID uuid.UUID, input *usecase.UpdateBusinessLocationInput) (*entity.BusinessLocation, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("location is required")
	}
	coords := entity.Coordinates{Latitude: input.Latitude, Longitude: input.Longitude}
	if !coords.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid coordinates")
	}

	profile, err := srv.BusinessOf(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	now := srv.now().UTC()
	location := &entity.BusinessLocation{
		ID:                            uuid.New(),
		BusinessID:                    profile.BusinessID,
		Latitude:                      input.Latitude,
		Longitude:                     input.Longitude,
		ProximityNotificationsEnabled: input.ProximityNotificationsEnabled,
		CreatedAt:                     now,
		UpdatedAt:                     now,
	}
	if err := srv.locationRepo.UpsertLocation(ctx, location); err != nil {
		return nil, errors.Wrap(err, "failed to upsert business location")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Business location updated",
		slog.String("business_id", profile.BusinessID.String()),
		slog.Bool("proximity_enabled", location.ProximityNotificationsEnabled),
	)

	return location, nil
}

// GetLocation returns the pinned location of the owner's business.
func (srv *businessService) GetLocation(ctx context.Context, ownerID uuid.UUID) (*entity.BusinessLocation, error) {
	profile, err := srv.BusinessOf(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	location, err := srv.locationRepo.FindLocationByBusiness(ctx, profile.BusinessID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessLocationNotFound) {
			return nil, domainerrors.ErrBusinessLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find business location")
	}

	return location, nil
}
