package postgres

import (
	"context"

	"nomad/internal/domain/entity"
	domainerrors "nomad/internal/domain/errors"
	"nomad/internal/domain/repository"
	"nomad/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultNotificationPageSize = 50

// businessNotificationRepository implements the repository.BusinessNotificationRepository interface.
type businessNotificationRepository struct {
	db *gorm.DB
}

// NewBusinessNotificationRepository is the constructor for businessNotificationRepository.
func NewBusinessNotificationRepository(db *gorm.DB) repository.BusinessNotificationRepository {
	return &businessNotificationRepository{
		db: db,
	}
}

// CreateIfAbsent inserts the notification with ON CONFLICT DO NOTHING on the
// partial natural key index, so concurrent evaluations create one row.
func (repo *businessNotificationRepository) CreateIfAbsent(ctx context.Context, notification *entity.BusinessNotification) (bool, error) {
	notificationM := fromBusinessNotificationDomain(notification)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "natural_key"}},
			TargetWhere: clause.Where{Exprs: []clause.Expression{
				clause.Eq{Column: clause.Column{Name: "is_processed"}, Value: false},
			}},
			DoNothing: true,
		}).
		Create(notificationM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return false, nil
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create business notification")
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return true, nil
}

// FindByID retrieves a notification by its ID.
func (repo *businessNotificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BusinessNotification, error) {
	return repo.find(repo.db.WithContext(ctx), id)
}

// FindByIDForUpdate retrieves a notification with SELECT ... FOR UPDATE.
func (repo *businessNotificationRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.BusinessNotification, error) {
	return repo.find(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (repo *businessNotificationRepository) find(db *gorm.DB, id uuid.UUID) (*entity.BusinessNotification, error) {
	var notificationM model.BusinessNotificationModel

	if err := db.Where("id = ?", id).First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find business notification")
	}

	return toBusinessNotificationDomain(&notificationM), nil
}

// UpdateState persists the lifecycle flags. The is_processed guard keeps a
// processed row terminal even if a stale copy is written back.
func (repo *businessNotificationRepository) UpdateState(ctx context.Context, notification *entity.BusinessNotification) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BusinessNotificationModel{}).
		Where("id = ? AND is_processed = ?", notification.ID, false).
		Updates(map[string]any{
			"is_read":      notification.IsRead,
			"is_processed": notification.IsProcessed,
			"read_at":      notification.ReadAt,
			"processed_at": notification.ProcessedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update business notification")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrInvalidTransition.WrapMessage("notification already processed")
	}

	return nil
}

// ListForBusiness lists notifications, highest priority and newest first.
func (repo *businessNotificationRepository) ListForBusiness(ctx context.Context, businessID uuid.UUID, filter repository.NotificationListFilter) ([]*entity.BusinessNotification, error) {
	var notificationModels []*model.BusinessNotificationModel

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultNotificationPageSize
	}

	query := repo.db.WithContext(ctx).Where("business_id = ?", businessID)
	if filter.UnreadOnly {
		query = query.Where("is_read = ?", false)
	}

	if err := query.
		Order("priority DESC").
		Order("created_at DESC").
		Limit(limit).
		Offset(filter.Offset).
		Find(&notificationModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list business notifications")
	}

	notifications := make([]*entity.BusinessNotification, 0, len(notificationModels))
	for _, m := range notificationModels {
		notifications = append(notifications, toBusinessNotificationDomain(m))
	}

	return notifications, nil
}

// --- Mapper Functions ---

func toBusinessNotificationDomain(data *model.BusinessNotificationModel) *entity.BusinessNotification {
	if data == nil {
		return nil
	}

	n := &entity.BusinessNotification{
		ID:                data.ID,
		BusinessID:        data.BusinessID,
		UserID:            data.UserID,
		MatchType:         entity.MatchType(data.MatchType),
		MatchedInterests:  []string(data.MatchedInterests),
		MatchedActivities: []string(data.MatchedActivities),
		UserLocation:      data.UserLocation,
		DistanceKm:        data.DistanceKm,
		Priority:          entity.Priority(data.Priority),
		NaturalKey:        data.NaturalKey,
		IsRead:            data.IsRead,
		IsProcessed:       data.IsProcessed,
		ReadAt:            data.ReadAt,
		ProcessedAt:       data.ProcessedAt,
		CreatedAt:         data.CreatedAt,
	}
	if data.TravelStart != nil && data.TravelEnd != nil {
		n.TravelWindow = &entity.TravelWindow{Start: *data.TravelStart, End: *data.TravelEnd}
	}

	return n
}

func fromBusinessNotificationDomain(data *entity.BusinessNotification) *model.BusinessNotificationModel {
	if data == nil {
		return nil
	}

	m := &model.BusinessNotificationModel{
		ID:                data.ID,
		BusinessID:        data.BusinessID,
		UserID:            data.UserID,
		MatchType:         string(data.MatchType),
		MatchedInterests:  pq.StringArray(data.MatchedInterests),
		MatchedActivities: pq.StringArray(data.MatchedActivities),
		UserLocation:      data.UserLocation,
		DistanceKm:        data.DistanceKm,
		Priority:          int(data.Priority),
		NaturalKey:        data.NaturalKey,
		IsRead:            data.IsRead,
		IsProcessed:       data.IsProcessed,
		ReadAt:            data.ReadAt,
		ProcessedAt:       data.ProcessedAt,
		CreatedAt:         data.CreatedAt,
	}
	if data.TravelWindow != nil {
		start, end := data.TravelWindow.Start, data.TravelWindow.End
		m.TravelStart = &start
		m.TravelEnd = &end
	}

	return m
}
