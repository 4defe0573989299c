package impl

import (
	"context"
	"testing"

	"nomad/internal/domain/entity"
	domainerrors "nomad/internal/domain/errors"
	mockRepo "nomad/internal/mocks/repository"
	"nomad/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeviceService_RegisterDevice(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	svc := NewDeviceService(deviceRepo, newTestLogger())
	ctx := context.Background()
	userID := uuid.New()

	deviceRepo.EXPECT().
		UpsertDevice(ctx, mock.MatchedBy(func(d *entity.UserDevice) bool {
			return d.UserID == userID && d.FCMToken == "fcm-token" && d.IsActive
		})).
		Return(nil)

	device, err := svc.RegisterDevice(ctx, userID, &usecase.DeviceInfo{FCMToken: "fcm-token", DeviceID: "pixel-8", Platform: "android"})

	require.NoError(t, err)
	assert.Equal(t, "pixel-8", device.DeviceID)
}

func TestDeviceService_RegisterDevice_Errors(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	svc := NewDeviceService(deviceRepo, newTestLogger())
	ctx := context.Background()

	_, err := svc.RegisterDevice(ctx, uuid.Nil, &usecase.DeviceInfo{})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	deviceRepo.EXPECT().UpsertDevice(ctx, mock.Anything).Return(errors.New("unique violation"))

	_, err = svc.RegisterDevice(ctx, uuid.New(), &usecase.DeviceInfo{FCMToken: "t", DeviceID: "d", Platform: "ios"})
	assert.True(t, errors.Is(err, domainerrors.ErrDeviceRegistrationFailed))
}
