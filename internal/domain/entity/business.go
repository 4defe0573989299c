package entity

import (
	"time"

	"github.com/google/uuid"
)

// BusinessProfile is the read-only targeting criteria of a business,
// maintained by the profile service.
type BusinessProfile struct {
	BusinessID       uuid.UUID `json:"business_id"`
	OwnerUserID      uuid.UUID `json:"owner_user_id"`
	Name             string    `json:"name"`
	City             string    `json:"city"`
	State            string    `json:"state,omitempty"`
	Country          string    `json:"country,omitempty"`
	TargetInterests  []string  `json:"target_interests"`
	TargetActivities []string  `json:"target_activities"`
}

// Place returns the business' declared locality.
func (p *BusinessProfile) Place() Place {
	return Place{City: p.City, State: p.State, Country: p.Country}
}

// BusinessLocation is the point a business owner pins for proximity matching.
type BusinessLocation struct {
	ID                            uuid.UUID `json:"id"`
	BusinessID                    uuid.UUID `json:"business_id"`
	Latitude                      float64   `json:"latitude"`
	Longitude                     float64   `json:"longitude"`
	ProximityNotificationsEnabled bool      `json:"proximity_notifications_enabled"`
	CreatedAt                     time.Time `json:"created_at"`
	UpdatedAt                     time.Time `json:"updated_at"`
}

// Coordinates returns the pinned point.
func (l *BusinessLocation) Coordinates() Coordinates {
	return Coordinates{Latitude: l.Latitude, Longitude: l.Longitude}
}

// ProximityEvaluable reports whether proximity matching can run for this
// location: the owner enabled it and the point is usable.
func (l *BusinessLocation) ProximityEvaluable() bool {
	return l != nil && l.ProximityNotificationsEnabled && l.Coordinates().Valid()
}

// Business is a matching candidate: a profile plus its optional pinned location.
type Business struct {
	Profile  *BusinessProfile
	Location *BusinessLocation
}
