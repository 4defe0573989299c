package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// BusinessProfileModel maps the 'business_profiles' table, which is written
// by the profile service and only read here.
type BusinessProfileModel struct {
	BusinessID       uuid.UUID      `gorm:"type:uuid;primary_key"`
	OwnerUserID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name             string         `gorm:"type:varchar(255);not null"`
	City             string         `gorm:"type:varchar(255);not null;index"`
	State            string         `gorm:"type:varchar(100)"`
	Country          string         `gorm:"type:varchar(100)"`
	TargetInterests  pq.StringArray `gorm:"type:text[]"`
	TargetActivities pq.StringArray `gorm:"type:text[]"`
}

// TableName explicitly sets the table name for GORM.
func (BusinessProfileModel) TableName() string {
	return "business_profiles"
}

// BusinessLocationModel is the GORM-specific struct for the 'business_locations' table.
type BusinessLocationModel struct {
	ID                            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BusinessID                    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Latitude                      float64   `gorm:"type:decimal(10,8);not null"`
	Longitude                     float64   `gorm:"type:decimal(11,8);not null"`
	ProximityNotificationsEnabled bool      `gorm:"not null;default:false"`
	CreatedAt                     time.Time
	UpdatedAt                     time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessLocationModel) TableName() string {
	return "business_locations"
}

// BusinessNotificationModel is the GORM-specific struct for the 'business_notifications' table.
// natural_key is unique among unprocessed rows only, so a processed match may
// be raised again later.
type BusinessNotificationModel struct {
	ID                uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BusinessID        uuid.UUID      `gorm:"type:uuid;not null;index:idx_business_notifications_business,priority:1"`
	UserID            uuid.UUID      `gorm:"type:uuid;not null;index"`
	MatchType         string         `gorm:"type:varchar(32);not null"`
	MatchedInterests  pq.StringArray `gorm:"type:text[]"`
	MatchedActivities pq.StringArray `gorm:"type:text[]"`
	UserLocation      string         `gorm:"type:varchar(512)"`
	DistanceKm        *float64       `gorm:"type:double precision"`
	Priority          int            `gorm:"not null"`
	TravelStart       *time.Time     `gorm:"type:timestamptz"`
	TravelEnd         *time.Time     `gorm:"type:timestamptz"`
	NaturalKey        string         `gorm:"type:char(64);not null;uniqueIndex:uq_business_notifications_natural_key,where:is_processed = false"`
	IsRead            bool           `gorm:"not null;default:false;index:idx_business_notifications_business,priority:2"`
	IsProcessed       bool           `gorm:"not null;default:false"`
	ReadAt            *time.Time     `gorm:"type:timestamptz"`
	ProcessedAt       *time.Time     `gorm:"type:timestamptz"`
	CreatedAt         time.Time      `gorm:"type:timestamptz;not null"`
}

// TableName explicitly sets the table name for GORM.
func (BusinessNotificationModel) TableName() string {
	return "business_notifications"
}
