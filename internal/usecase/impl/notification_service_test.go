package impl

import (
	"context"
	"testing"
	"time"

	"nomad/internal/domain/entity"
	domainerrors "nomad/internal/domain/errors"
	"nomad/internal/domain/repository"
	"nomad/internal/domain/service"
	mockRepo "nomad/internal/mocks/repository"
	mockSvc "nomad/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationServiceMocks struct {
	txManager        *mockRepo.MockTransactionManager
	repoFactory      *mockRepo.MockRepositoryFactory
	notificationRepo *mockRepo.MockBusinessNotificationRepository
	txRepo           *mockRepo.MockBusinessNotificationRepository
	deviceRepo       *mockRepo.MockDeviceRepository
	registry         *mockSvc.MockPresenceRegistry
	pushSvc          *mockSvc.MockPushService
	publisher        *mockSvc.MockEventPublisher
}

var notificationNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func createTestNotificationService(t *testing.T) (*notificationService, *notificationServiceMocks) {
	t.Helper()

	m := &notificationServiceMocks{
		txManager:        mockRepo.NewMockTransactionManager(t),
		repoFactory:      mockRepo.NewMockRepositoryFactory(t),
		notificationRepo: mockRepo.NewMockBusinessNotificationRepository(t),
		txRepo:           mockRepo.NewMockBusinessNotificationRepository(t),
		deviceRepo:       mockRepo.NewMockDeviceRepository(t),
		registry:         mockSvc.NewMockPresenceRegistry(t),
		pushSvc:          mockSvc.NewMockPushService(t),
		publisher:        mockSvc.NewMockEventPublisher(t),
	}

	svc := NewNotificationService(
		m.txManager,
		m.notificationRepo,
		m.deviceRepo,
		m.registry,
		m.pushSvc,
		m.publisher,
		newTestLogger(),
	).(*notificationService)
	svc.now = func() time.Time { return notificationNow }

	return svc, m
}

// expectTransaction runs the transaction body against the factory mock.
func (m *notificationServiceMocks) expectTransaction() {
	m.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.repoFactory)
		})
	m.repoFactory.EXPECT().NewBusinessNotificationRepository().Return(m.txRepo)
}

func newTestNotification() *entity.BusinessNotification {
	return &entity.BusinessNotification{
		BusinessID:       uuid.New(),
		UserID:           uuid.New(),
		MatchType:        entity.MatchTypeLocalInterest,
		MatchedInterests: []string{"hiking"},
		UserLocation:     "Santa Monica, CA, US (Los Angeles)",
		Priority:         entity.PriorityLow,
		NaturalKey:       "key",
	}
}

func TestNotificationService_Create_OwnerOnline(t *testing.T) {
	svc, m := createTestNotificationService(t)
	ctx := context.Background()

	business := &entity.BusinessProfile{BusinessID: uuid.New(), OwnerUserID: uuid.New()}
	n := newTestNotification()
	n.BusinessID = business.BusinessID

	m.notificationRepo.EXPECT().CreateIfAbsent(ctx, n).Return(true, nil)
	m.registry.EXPECT().
		BroadcastTo(mock.Anything, business.OwnerUserID, mock.MatchedBy(func(p *entity.Payload) bool {
			return p.Type == entity.PayloadTypeNotification && p.Data == n
		})).
		Return(true)
	m.publisher.EXPECT().
		PublishNotificationCreated(mock.Anything, mock.MatchedBy(func(e *service.NotificationCreatedEvent) bool {
			return e.NotificationID == n.ID.String() && e.MatchType == entity.MatchTypeLocalInterest
		})).
		Return(nil)

	created, err := svc.Create(ctx, business, n)

	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, uuid.Nil, n.ID)
	assert.Equal(t, notificationNow, n.CreatedAt)
}

func TestNotificationService_Create_OwnerOfflinePushesToDevices(t *testing.T) {
	svc, m := createTestNotificationService(t)
	ctx := context.Background()

	business := &entity.BusinessProfile{BusinessID: uuid.New(), OwnerUserID: uuid.New()}
	n := newTestNotification()
	n.MatchType = entity.MatchTypeProximity

	m.notificationRepo.EXPECT().CreateIfAbsent(ctx, n).Return(true, nil)
	m.registry.EXPECT().BroadcastTo(mock.Anything, business.OwnerUserID, mock.Anything).Return(false)
	m.deviceRepo.EXPECT().FindActiveDevicesByUser(mock.Anything, business.OwnerUserID).Return([]*entity.UserDevice{
		{FCMToken: "token-a"},
		{FCMToken: "token-b"},
	}, nil)
	m.pushSvc.EXPECT().
		SendBatch(mock.Anything, []string{"token-a", "token-b"}, mock.MatchedBy(func(msg *service.PushMessage) bool {
			return msg.Title == "附近有潛在顧客" && msg.Data["notification_id"] == n.ID.String()
		})).
		Return(1, 1, []string{"token-b"}, nil)
	m.deviceRepo.EXPECT().DeactivateTokens(mock.Anything, []string{"token-b"}).Return(nil)
	m.publisher.EXPECT().PublishNotificationCreated(mock.Anything, mock.Anything).Return(nil)

	created, err := svc.Create(ctx, business, n)

	require.NoError(t, err)
	assert.True(t, created)
}

func TestNotificationService_Create_FanOutFailuresAreAdvisory(t *testing.T) {
	svc, m := createTestNotificationService(t)
	ctx := context.Background()

	business := &entity.BusinessProfile{BusinessID: uuid.New(), OwnerUserID: uuid.New()}
	n := newTestNotification()

	m.notificationRepo.EXPECT().CreateIfAbsent(ctx, n).Return(true, nil)
	m.registry.EXPECT().BroadcastTo(mock.Anything, business.OwnerUserID, mock.Anything).Return(false)
	m.deviceRepo.EXPECT().FindActiveDevicesByUser(mock.Anything, business.OwnerUserID).Return(nil, errors.New("db down"))
	m.publisher.EXPECT().PublishNotificationCreated(mock.Anything, mock.Anything).Return(errors.New("publish failed"))

	created, err := svc.Create(ctx, business, n)

	require.NoError(t, err)
	assert.True(t, created)
}

func TestNotificationService_Create_Duplicate(t *testing.T) {
	svc, m := createTestNotificationService(t)
	ctx := context.Background()

	n := newTestNotification()
	m.notificationRepo.EXPECT().CreateIfAbsent(ctx, n).Return(false, nil)

	created, err := svc.Create(ctx, &entity.BusinessProfile{OwnerUserID: uuid.New()}, n)

	require.NoError(t, err)
	assert.False(t, created)
}

func TestNotificationService_Create_StoreFailure(t *testing.T) {
	svc, m := createTestNotificationService(t)
	ctx := context.Background()

	n := newTestNotification()
	m.notificationRepo.EXPECT().CreateIfAbsent(ctx, n).
		Return(false, domainerrors.NewDatabaseExecuteError(errors.New("timeout"), "insert"))

	created, err := svc.Create(ctx, &entity.BusinessProfile{OwnerUserID: uuid.New()}, n)

	require.Error(t, err)
	assert.False(t, created)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreUnavailable))
}

func TestNotificationService_Create_RequiresNaturalKey(t *testing.T) {
	svc, _ := createTestNotificationService(t)

	n := newTestNotification()
	n.NaturalKey = ""

	_, err := svc.Create(context.Background(), &entity.BusinessProfile{}, n)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestNotificationService_Lifecycle(t *testing.T) {
	readAt := notificationNow.Add(-time.Hour)

	tests := []struct {
		name        string
		stored      entity.BusinessNotification
		processed   bool
		wantWrite   bool
		wantErr     error
		wantRead    bool
		wantProcess bool
	}{
		{name: "read unread", stored: entity.BusinessNotification{}, wantWrite: true, wantRead: true},
		{name: "read read is no-op", stored: entity.BusinessNotification{IsRead: true, ReadAt: &readAt}, wantRead: true},
		{name: "read processed fails", stored: entity.BusinessNotification{IsRead: true, IsProcessed: true}, wantErr: domainerrors.ErrInvalidTransition},
		{name: "process unread reads implicitly", stored: entity.BusinessNotification{}, processed: true, wantWrite: true, wantRead: true, wantProcess: true},
		{name: "process read", stored: entity.BusinessNotification{IsRead: true, ReadAt: &readAt}, processed: true, wantWrite: true, wantRead: true, wantProcess: true},
		{name: "process processed is no-op", stored: entity.BusinessNotification{IsRead: true, IsProcessed: true}, processed: true, wantRead: true, wantProcess: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := createTestNotificationService(t)
			ctx := context.Background()

			stored := tt.stored
			stored.ID = uuid.New()
			m.expectTransaction()
			m.txRepo.EXPECT().FindByIDForUpdate(ctx, stored.ID).Return(&stored, nil)
			if tt.wantWrite {
				m.txRepo.EXPECT().UpdateState(ctx, &stored).Return(nil)
			}

			var (
				got *entity.BusinessNotification
				err error
			)
			if tt.processed {
				got, err = svc.MarkProcessed(ctx, stored.ID)
			} else {
				got, err = svc.MarkRead(ctx, stored.ID)
			}

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRead, got.IsRead)
			assert.Equal(t, tt.wantProcess, got.IsProcessed)
		})
	}
}

func TestNotificationService_ProcessedTwiceSucceeds(t *testing.T) {
	svc, m := createTestNotificationService(t)
	ctx := context.Background()

	stored := &entity.BusinessNotification{ID: uuid.New(), IsRead: true}
	m.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.repoFactory)
		}).Times(2)
	m.repoFactory.EXPECT().NewBusinessNotificationRepository().Return(m.txRepo).Times(2)
	m.txRepo.EXPECT().FindByIDForUpdate(ctx, stored.ID).Return(stored, nil).Times(2)
	m.txRepo.EXPECT().UpdateState(ctx, stored).Return(nil).Once()

	_, err := svc.MarkProcessed(ctx, stored.ID)
	require.NoError(t, err)
	got, err := svc.MarkProcessed(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.NotificationStatusProcessed, got.Status())

	m.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.repoFactory)
		}).Once()
	m.repoFactory.EXPECT().NewBusinessNotificationRepository().Return(m.txRepo).Once()
	m.txRepo.EXPECT().FindByIDForUpdate(ctx, stored.ID).Return(stored, nil).Once()

	_, err = svc.MarkRead(ctx, stored.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))
}

func TestNotificationService_NotFound(t *testing.T) {
	svc, m := createTestNotificationService(t)
	ctx := context.Background()
	id := uuid.New()

	m.expectTransaction()
	m.txRepo.EXPECT().FindByIDForUpdate(ctx, id).Return(nil, repository.ErrNotificationNotFound)

	_, err := svc.MarkRead(ctx, id)
	assert.True(t, errors.Is(err, domainerrors.ErrNotificationNotFound))

	m.notificationRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrNotificationNotFound)

	_, err = svc.Get(ctx, id)
	assert.True(t, errors.Is(err, domainerrors.ErrNotificationNotFound))
}

func TestNotificationService_ListFor(t *testing.T) {
	svc, m := createTestNotificationService(t)
	ctx := context.Background()
	businessID := uuid.New()
	filter := repository.NotificationListFilter{UnreadOnly: true, Limit: 20}

	want := []*entity.BusinessNotification{{ID: uuid.New(), BusinessID: businessID}}
	m.notificationRepo.EXPECT().ListForBusiness(ctx, businessID, filter).Return(want, nil)

	got, err := svc.ListFor(ctx, businessID, filter)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestNotificationService_Create_RelayAnnouncesUndelivered(t *testing.T) {
	notificationRepo := mockRepo.NewMockBusinessNotificationRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	svc := NewRelayNotificationService(mockRepo.NewMockTransactionManager(t), notificationRepo, publisher, newTestLogger())
	ctx := context.Background()

	business := &entity.BusinessProfile{BusinessID: uuid.New(), OwnerUserID: uuid.New()}
	n := newTestNotification()
	n.BusinessID = business.BusinessID

	notificationRepo.EXPECT().CreateIfAbsent(ctx, n).Return(true, nil)
	publisher.EXPECT().
		PublishNotificationCreated(mock.Anything, mock.MatchedBy(func(e *service.NotificationCreatedEvent) bool {
			return e.NotificationID == n.ID.String() &&
				e.OwnerUserID == business.OwnerUserID.String() &&
				!e.Delivered
		})).
		Return(nil)

	created, err := svc.Create(ctx, business, n)

	require.NoError(t, err)
	assert.True(t, created)
}

func TestNotificationService_Create_AnnouncesDelivered(t *testing.T) {
	svc, m := createTestNotificationService(t)
	ctx := context.Background()

	business := &entity.BusinessProfile{BusinessID: uuid.New(), OwnerUserID: uuid.New()}
	n := newTestNotification()

	m.notificationRepo.EXPECT().CreateIfAbsent(ctx, n).Return(true, nil)
	m.registry.EXPECT().BroadcastTo(mock.Anything, business.OwnerUserID, mock.Anything).Return(true)
	m.publisher.EXPECT().
		PublishNotificationCreated(mock.Anything, mock.MatchedBy(func(e *service.NotificationCreatedEvent) bool {
			return e.Delivered && e.OwnerUserID == business.OwnerUserID.String()
		})).
		Return(nil)

	_, err := svc.Create(ctx, business, n)

	require.NoError(t, err)
}

func TestNotificationService_Deliver(t *testing.T) {
	ownerID := uuid.New()
	stored := newTestNotification()
	stored.ID = uuid.New()

	event := func(delivered bool) *service.NotificationCreatedEvent {
		return &service.NotificationCreatedEvent{
			NotificationID: stored.ID.String(),
			OwnerUserID:    ownerID.String(),
			Delivered:      delivered,
		}
	}

	t.Run("owner online", func(t *testing.T) {
		svc, m := createTestNotificationService(t)
		m.notificationRepo.EXPECT().FindByID(mock.Anything, stored.ID).Return(stored, nil)
		m.registry.EXPECT().
			BroadcastTo(mock.Anything, ownerID, mock.MatchedBy(func(p *entity.Payload) bool {
				return p.Type == entity.PayloadTypeNotification && p.Data == stored
			})).
			Return(true)

		require.NoError(t, svc.Deliver(context.Background(), event(false)))
	})

	t.Run("owner offline", func(t *testing.T) {
		svc, m := createTestNotificationService(t)
		m.notificationRepo.EXPECT().FindByID(mock.Anything, stored.ID).Return(stored, nil)
		m.registry.EXPECT().BroadcastTo(mock.Anything, ownerID, mock.Anything).Return(false)
		m.deviceRepo.EXPECT().FindActiveDevicesByUser(mock.Anything, ownerID).Return([]*entity.UserDevice{{FCMToken: "token-a"}}, nil)
		m.pushSvc.EXPECT().SendBatch(mock.Anything, []string{"token-a"}, mock.Anything).Return(1, 0, nil, nil)

		require.NoError(t, svc.Deliver(context.Background(), event(false)))
	})

	t.Run("already delivered", func(t *testing.T) {
		svc, _ := createTestNotificationService(t)

		require.NoError(t, svc.Deliver(context.Background(), event(true)))
	})

	t.Run("processed meanwhile", func(t *testing.T) {
		svc, m := createTestNotificationService(t)
		processed := *stored
		processed.IsRead, processed.IsProcessed = true, true
		m.notificationRepo.EXPECT().FindByID(mock.Anything, stored.ID).Return(&processed, nil)

		require.NoError(t, svc.Deliver(context.Background(), event(false)))
	})

	t.Run("store unavailable", func(t *testing.T) {
		svc, m := createTestNotificationService(t)
		m.notificationRepo.EXPECT().FindByID(mock.Anything, stored.ID).Return(nil, domainerrors.ErrStoreUnavailable)

		err := svc.Deliver(context.Background(), event(false))

		assert.True(t, errors.Is(err, domainerrors.ErrStoreUnavailable))
	})

	t.Run("invalid owner", func(t *testing.T) {
		svc, _ := createTestNotificationService(t)
		bad := event(false)
		bad.OwnerUserID = "nobody"

		err := svc.Deliver(context.Background(), bad)

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}
