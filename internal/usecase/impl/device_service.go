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

type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
	now        func() time.Time
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository, logger *slog.Logger) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
		logger:     logger,
		now:        time.Now,
	}
}

// RegisterDevice registers a new device or refreshes the token of an existing one
func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.UserDevice, error) {
	if userID == uuid.Nil || deviceInfo == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("user and device are required")
	}

	now := s.now().UTC()
	device := &entity.UserDevice{
		ID:        uuid.New(),
		UserID:    userID,
		FCMToken:  deviceInfo.FCMToken,
		DeviceID:  deviceInfo.DeviceID,
		Platform:  deviceInfo.Platform,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.deviceRepo.UpsertDevice(ctx, device); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Error("Failed to register device",
			slog.Any("error", err),
			slog.String("user_id", userID.String()),
			slog.String("platform", deviceInfo.Platform),
		)

		return nil, errors.Wrap(domainerrors.ErrDeviceRegistrationFailed, err.Error())
	}

	return device, nil
}
