package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "nomad/internal/delivery/context"
	"nomad/internal/domain/entity"
	domainerrors "nomad/internal/domain/errors"
	"nomad/internal/domain/repository"
	"nomad/internal/domain/service"
	"nomad/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	txManager        repository.TransactionManager
	notificationRepo repository.BusinessNotificationRepository
	deviceRepo       repository.DeviceRepository
	registry         service.PresenceRegistry
	pushSvc          service.PushService
	publisher        service.EventPublisher
	logger           *slog.Logger
	now              func() time.Time
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(
	txManager repository.TransactionManager,
	notificationRepo repository.BusinessNotificationRepository,
	deviceRepo repository.DeviceRepository,
	registry service.PresenceRegistry,
	pushSvc service.PushService,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		txManager:        txManager,
		notificationRepo: notificationRepo,
		deviceRepo:       deviceRepo,
		registry:         registry,
		pushSvc:          pushSvc,
		publisher:        publisher,
		logger:           logger,
		now:              time.Now,
	}
}

// NewRelayNotificationService creates a notification service for processes
// without live connections. Created notifications are announced with
// Delivered unset and the API process tells the owner.
func NewRelayNotificationService(
	txManager repository.TransactionManager,
	notificationRepo repository.BusinessNotificationRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		txManager:        txManager,
		notificationRepo: notificationRepo,
		publisher:        publisher,
		logger:           logger,
		now:              time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create inserts the notification if its natural key is free and fans it out
// to the business owner.
func (srv *notificationService) Create(ctx context.Context, business *entity.BusinessProfile, notification *entity.BusinessNotification) (bool, error) {
	if notification.NaturalKey == "" {
		return false, domainerrors.ErrValidationFailed.WithDetails("notification without natural key")
	}
	if notification.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return false, errors.WithStack(err)
		}
		notification.ID = id
	}
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = srv.now().UTC()
	}

	created, err := srv.notificationRepo.CreateIfAbsent(ctx, notification)
	if err != nil {
		return false, errors.Wrap(err, "failed to create business notification")
	}
	if !created {
		srv.log(ctx).Debug("Duplicate business notification skipped",
			slog.String("business_id", notification.BusinessID.String()),
			slog.String("user_id", notification.UserID.String()),
			slog.String("match_type", string(notification.MatchType)),
		)

		return false, nil
	}

	srv.dispatch(context.WithoutCancel(ctx), business.OwnerUserID, notification)

	return true, nil
}

// relay reports whether this service only announces notifications.
func (srv *notificationService) relay() bool {
	return srv.registry == nil
}

// dispatch tells the owner about a new notification and announces it. A relay
// leaves the telling to the API process. Every step is best effort.
func (srv *notificationService) dispatch(ctx context.Context, ownerID uuid.UUID, notification *entity.BusinessNotification) {
	delivered := !srv.relay()
	if delivered {
		srv.deliver(ctx, ownerID, notification)
	}

	if err := srv.publisher.PublishNotificationCreated(ctx, &service.NotificationCreatedEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		NotificationID: notification.ID.String(),
		BusinessID:     notification.BusinessID.String(),
		OwnerUserID:    ownerID.String(),
		UserID:         notification.UserID.String(),
		MatchType:      notification.MatchType,
		Priority:       notification.Priority,
		Delivered:      delivered,
		CreatedAt:      notification.CreatedAt,
	}); err != nil {
		srv.log(ctx).Warn("Failed to publish notification event",
			slog.Any("error", err),
			slog.String("notification_id", notification.ID.String()),
		)
	}
}

// deliver sends a live push when the owner is connected, a device push otherwise.
func (srv *notificationService) deliver(ctx context.Context, ownerID uuid.UUID, notification *entity.BusinessNotification) {
	if ownerID == uuid.Nil {
		return
	}
	if srv.registry.BroadcastTo(ctx, ownerID, entity.NewNotificationPayload(notification)) {
		return
	}

	srv.pushToDevices(ctx, ownerID, notification)
}

// Deliver tells the owner about a notification announced by a relay. Events
// already delivered and notifications processed meanwhile are skipped. Only
// loading the notification can fail.
func (srv *notificationService) Deliver(ctx context.Context, event *service.NotificationCreatedEvent) error {
	if event == nil || event.Delivered {
		return nil
	}
	if srv.relay() {
		srv.log(ctx).Warn("Relay cannot deliver notifications", slog.String("notification_id", event.NotificationID))

		return nil
	}

	id, err := uuid.Parse(event.NotificationID)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid notification id")
	}
	ownerID, err := uuid.Parse(event.OwnerUserID)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid owner id")
	}

	notification, err := srv.Get(ctx, id)
	if err != nil {
		return err
	}
	if notification.IsProcessed {
		srv.log(ctx).Debug("Notification processed before delivery", slog.String("notification_id", event.NotificationID))

		return nil
	}

	srv.deliver(ctx, ownerID, notification)

	return nil
}

func (srv *notificationService) pushToDevices(ctx context.Context, ownerID uuid.UUID, notification *entity.BusinessNotification) {
	devices, err := srv.deviceRepo.FindActiveDevicesByUser(ctx, ownerID)
	if err != nil {
		srv.log(ctx).Warn("Failed to load owner devices", slog.Any("error", err), slog.String("owner_id", ownerID.String()))

		return
	}
	if len(devices) == 0 {
		return
	}

	tokens := make([]string, 0, len(devices))
	for _, d := range devices {
		tokens = append(tokens, d.FCMToken)
	}

	success, failure, invalidTokens, err := srv.pushSvc.SendBatch(ctx, tokens, pushMessageFor(notification))
	if err != nil {
		srv.log(ctx).Warn("Device push failed", slog.Any("error", err), slog.String("owner_id", ownerID.String()))
	}

	srv.log(ctx).Debug("Device push sent",
		slog.String("notification_id", notification.ID.String()),
		slog.Int("success", success),
		slog.Int("failure", failure),
	)

	if len(invalidTokens) > 0 {
		if err := srv.deviceRepo.DeactivateTokens(ctx, invalidTokens); err != nil {
			srv.log(ctx).Warn("Failed to deactivate invalid tokens", slog.Any("error", err))
		}
	}
}

func pushMessageFor(n *entity.BusinessNotification) *service.PushMessage {
	var title string
	switch n.MatchType {
	case entity.MatchTypeProximity:
		title = "附近有潛在顧客"
	case entity.MatchTypeTravelerInterest:
		title = "有旅客符合您的目標客群"
	default:
		title = "有在地用戶符合您的目標客群"
	}

	tags := append(append([]string{}, n.MatchedInterests...), n.MatchedActivities...)
	body := n.UserLocation
	if len(tags) > 0 {
		body = fmt.Sprintf("%s · %s", strings.Join(tags, ", "), n.UserLocation)
	}

	return &service.PushMessage{
		Title: title,
		Body:  body,
		Data: map[string]string{
			"type":            string(entity.PayloadTypeNotification),
			"notification_id": n.ID.String(),
			"business_id":     n.BusinessID.String(),
			"match_type":      string(n.MatchType),
		},
	}
}

// Get retrieves a notification.
func (srv *notificationService) Get(ctx context.Context, id uuid.UUID) (*entity.BusinessNotification, error) {
	notification, err := srv.notificationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotificationErr(err)
	}

	return notification, nil
}

// MarkRead validates the transition against the locked row before writing.
func (srv *notificationService) MarkRead(ctx context.Context, id uuid.UUID) (*entity.BusinessNotification, error) {
	return srv.transition(ctx, id, func(n *entity.BusinessNotification, now time.Time) (bool, error) {
		return n.MarkRead(now)
	})
}

// MarkProcessed is idempotent: processing a processed notification succeeds without a write.
func (srv *notificationService) MarkProcessed(ctx context.Context, id uuid.UUID) (*entity.BusinessNotification, error) {
	return srv.transition(ctx, id, func(n *entity.BusinessNotification, now time.Time) (bool, error) {
		return n.MarkProcessed(now), nil
	})
}

func (srv *notificationService) transition(
	ctx context.Context,
	id uuid.UUID,
	apply func(n *entity.BusinessNotification, now time.Time) (bool, error),
) (*entity.BusinessNotification, error) {
	var result *entity.BusinessNotification

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewBusinessNotificationRepository()

		notification, err := repo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return mapNotificationErr(err)
		}

		changed, err := apply(notification, srv.now().UTC())
		if err != nil {
			return err
		}
		if changed {
			if err := repo.UpdateState(ctx, notification); err != nil {
				return errors.Wrap(err, "failed to update notification state")
			}
		}
		result = notification

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// ListFor lists the notifications of a business.
func (srv *notificationService) ListFor(ctx context.Context, businessID uuid.UUID, filter repository.NotificationListFilter) ([]*entity.BusinessNotification, error) {
	notifications, err := srv.notificationRepo.ListForBusiness(ctx, businessID, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list business notifications")
	}

	return notifications, nil
}

func mapNotificationErr(err error) error {
	if errors.Is(err, repository.ErrNotificationNotFound) {
		return domainerrors.ErrNotificationNotFound
	}

	return errors.Wrap(err, "failed to find business notification")
}
