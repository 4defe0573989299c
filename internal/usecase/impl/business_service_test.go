package impl

import (
	"context"
	"testing"

	"nomad/internal/domain/entity"
	domainerrors "nomad/internal/domain/errors"
	"nomad/internal/domain/repository"
	mockRepo "nomad/internal/mocks/repository"
	"nomad/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestBusinessService(t *testing.T) (usecase.BusinessUsecase, *mockRepo.MockBusinessRepository, *mockRepo.MockBusinessLocationRepository) {
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	locationRepo := mockRepo.NewMockBusinessLocationRepository(t)

	return NewBusinessService(businessRepo, locationRepo, newTestLogger()), businessRepo, locationRepo
}

func TestBusinessService_UpdateLocation(t *testing.T) {
	svc, businessRepo, locationRepo := createTestBusinessService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	profile := &entity.BusinessProfile{BusinessID: uuid.New(), OwnerUserID: ownerID}

	businessRepo.EXPECT().FindProfileByOwner(ctx, ownerID).Return(profile, nil)
	locationRepo.EXPECT().
		UpsertLocation(ctx, mock.MatchedBy(func(l *entity.BusinessLocation) bool {
			return l.BusinessID == profile.BusinessID && l.Latitude == 6.2442 && l.ProximityNotificationsEnabled
		})).
		Return(nil)

	location, err := svc.UpdateLocation(ctx, ownerID, &usecase.UpdateBusinessLocationInput{
		Latitude:                      6.2442,
		Longitude:                     -75.5812,
		ProximityNotificationsEnabled: true,
	})

	require.NoError(t, err)
	assert.True(t, location.ProximityEvaluable())
}

func TestBusinessService_UpdateLocation_InvalidCoordinates(t *testing.T) {
	svc, _, _ := createTestBusinessService(t)

	for _, input := range []*usecase.UpdateBusinessLocationInput{
		nil,
		{Latitude: 0, Longitude: 0},
		{Latitude: 91, Longitude: 10},
	} {
		_, err := svc.UpdateLocation(context.Background(), uuid.New(), input)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	}
}

func TestBusinessService_UpdateLocation_NotAnOwner(t *testing.T) {
	svc, businessRepo, _ := createTestBusinessService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	businessRepo.EXPECT().FindProfileByOwner(ctx, ownerID).Return(nil, repository.ErrBusinessNotFound)

	_, err := svc.UpdateLocation(ctx, ownerID, &usecase.UpdateBusinessLocationInput{Latitude: 25.03, Longitude: 121.56})
	assert.True(t, errors.Is(err, domainerrors.ErrBusinessNotFound))
}

func TestBusinessService_GetLocation(t *testing.T) {
	svc, businessRepo, locationRepo := createTestBusinessService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	profile := &entity.BusinessProfile{BusinessID: uuid.New(), OwnerUserID: ownerID}

	businessRepo.EXPECT().FindProfileByOwner(ctx, ownerID).Return(profile, nil).Twice()
	locationRepo.EXPECT().FindLocationByBusiness(ctx, profile.BusinessID).
		Return(&entity.BusinessLocation{BusinessID: profile.BusinessID}, nil).Once()
	locationRepo.EXPECT().FindLocationByBusiness(ctx, profile.BusinessID).
		Return(nil, repository.ErrBusinessLocationNotFound).Once()

	location, err := svc.GetLocation(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, profile.BusinessID, location.BusinessID)

	_, err = svc.GetLocation(ctx, ownerID)
	assert.True(t, errors.Is(err, domainerrors.ErrBusinessLocationNotFound))
}
