package postgres

import (
	"context"

	"nomad/internal/domain/entity"
	domainerrors "nomad/internal/domain/errors"
	"nomad/internal/domain/repository"
	"nomad/internal/infra/geo"
	"nomad/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultCandidateLimit = 500

// businessRepository implements repository.BusinessRepository and
// repository.BusinessLocationRepository.
type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository is the constructor for the business profile reader.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{db: db}
}

// NewBusinessLocationRepository is the constructor for the business location store.
func NewBusinessLocationRepository(db *gorm.DB) repository.BusinessLocationRepository {
	return &businessRepository{db: db}
}

// FindProfileByID retrieves a business profile by business ID.
func (repo *businessRepository) FindProfileByID(ctx context.Context, businessID uuid.UUID) (*entity.BusinessProfile, error) {
	return repo.findProfile(ctx, "business_id = ?", businessID)
}

// FindProfileByOwner retrieves the business owned by a user.
func (repo *businessRepository) FindProfileByOwner(ctx context.Context, ownerUserID uuid.UUID) (*entity.BusinessProfile, error) {
	return repo.findProfile(ctx, "owner_user_id = ?", ownerUserID)
}

func (repo *businessRepository) findProfile(ctx context.Context, cond string, arg any) (*entity.BusinessProfile, error) {
	var profileM model.BusinessProfileModel

	if err := repo.db.WithContext(ctx).Where(cond, arg).First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find business profile")
	}

	return toBusinessProfileDomain(&profileM), nil
}

// candidateRow is one row of the candidate query: a profile joined with its
// optional location.
type candidateRow struct {
	model.BusinessProfileModel
	LocationID                    *uuid.UUID
	Latitude                      *float64
	Longitude                     *float64
	ProximityNotificationsEnabled *bool
}

// FindCandidates returns businesses in the given localities or pinned inside
// the bounding box with proximity notifications enabled.
func (repo *businessRepository) FindCandidates(ctx context.Context, query repository.CandidateQuery) ([]*entity.Business, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = defaultCandidateLimit
	}

	var (
		conds []clause.Expression
		rows  []*candidateRow
	)

	if len(query.Localities) > 0 {
		conds = append(conds, localityCondition("bp.city", query.Localities))
	}
	if box := query.Box; box != nil {
		conds = append(conds, clause.Expr{
			SQL:  "(bl.proximity_notifications_enabled AND bl.latitude BETWEEN ? AND ? AND bl.longitude BETWEEN ? AND ?)",
			Vars: []any{box.MinLatitude, box.MaxLatitude, box.MinLongitude, box.MaxLongitude},
		})
	}
	if len(conds) == 0 {
		return nil, nil
	}

	db := repo.db.WithContext(ctx).
		Table("business_profiles AS bp").
		Select("bp.*, bl.id AS location_id, bl.latitude, bl.longitude, bl.proximity_notifications_enabled").
		Joins("LEFT JOIN business_locations AS bl ON bl.business_id = bp.business_id").
		Where(clause.Or(conds...))
	if query.ExcludeUser != uuid.Nil {
		db = db.Where("bp.owner_user_id <> ?", query.ExcludeUser)
	}

	if err := db.Order("bp.business_id").Limit(limit).Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find candidate businesses")
	}

	businesses := make([]*entity.Business, 0, len(rows))
	for _, row := range rows {
		b := &entity.Business{Profile: toBusinessProfileDomain(&row.BusinessProfileModel)}
		if row.LocationID != nil && row.Latitude != nil && row.Longitude != nil {
			b.Location = &entity.BusinessLocation{
				ID:                            *row.LocationID,
				BusinessID:                    row.BusinessID,
				Latitude:                      *row.Latitude,
				Longitude:                     *row.Longitude,
				ProximityNotificationsEnabled: row.ProximityNotificationsEnabled != nil && *row.ProximityNotificationsEnabled,
			}
		}
		businesses = append(businesses, b)
	}

	return businesses, nil
}

// localityCondition matches rows whose folded column is one of the keys.
func localityCondition(column string, keys []string) clause.Expr {
	return clause.Expr{SQL: geo.LocalityKeySQL(column) + " IN ?", Vars: []any{keys}}
}

// UpsertLocation creates or replaces the pinned location of a business.
func (repo *businessRepository) UpsertLocation(ctx context.Context, location *entity.BusinessLocation) error {
	locationM := fromBusinessLocationDomain(location)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "business_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"latitude", "longitude", "proximity_notifications_enabled", "updated_at"}),
		}).
		Create(locationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBusinessNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert business location")
	}

	location.ID = locationM.ID
	location.CreatedAt = locationM.CreatedAt
	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

// FindLocationByBusiness retrieves the pinned location of a business.
func (repo *businessRepository) FindLocationByBusiness(ctx context.Context, businessID uuid.UUID) (*entity.BusinessLocation, error) {
	var locationM model.BusinessLocationModel

	if err := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessLocationNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find business location")
	}

	return toBusinessLocationDomain(&locationM), nil
}

// --- Mapper Functions ---

func toBusinessProfileDomain(data *model.BusinessProfileModel) *entity.BusinessProfile {
	if data == nil {
		return nil
	}

	return &entity.BusinessProfile{
		BusinessID:       data.BusinessID,
		OwnerUserID:      data.OwnerUserID,
		Name:             data.Name,
		City:             data.City,
		State:            data.State,
		Country:          data.Country,
		TargetInterests:  []string(data.TargetInterests),
		TargetActivities: []string(data.TargetActivities),
	}
}

func toBusinessLocationDomain(data *model.BusinessLocationModel) *entity.BusinessLocation {
	if data == nil {
		return nil
	}

	return &entity.BusinessLocation{
		ID:                            data.ID,
		BusinessID:                    data.BusinessID,
		Latitude:                      data.Latitude,
		Longitude:                     data.Longitude,
		ProximityNotificationsEnabled: data.ProximityNotificationsEnabled,
		CreatedAt:                     data.CreatedAt,
		UpdatedAt:                     data.UpdatedAt,
	}
}

func fromBusinessLocationDomain(data *entity.BusinessLocation) *model.BusinessLocationModel {
	if data == nil {
		return nil
	}

	return &model.BusinessLocationModel{
		ID:                            data.ID,
		BusinessID:                    data.BusinessID,
		Latitude:                      data.Latitude,
		Longitude:                     data.Longitude,
		ProximityNotificationsEnabled: data.ProximityNotificationsEnabled,
		CreatedAt:                     data.CreatedAt,
		UpdatedAt:                     data.UpdatedAt,
	}
}
