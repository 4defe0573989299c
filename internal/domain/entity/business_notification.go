package entity

import (
	"time"

	domainerrors "nomad/internal/domain/errors"

	"github.com/google/uuid"
)

// MatchType is the rule that produced a business notification.
type MatchType string

const (
	// MatchTypeLocalInterest is an interest match with a user at home in the business' area.
	MatchTypeLocalInterest MatchType = "localInterest"
	// MatchTypeTravelerInterest is an interest match with a user travelling to the business' area.
	MatchTypeTravelerInterest MatchType = "travelerInterest"
	// MatchTypeProximity is a distance match within the proximity radius.
	MatchTypeProximity MatchType = "proximity"
)

// IsValid checks if the MatchType is a valid value.
func (t MatchType) IsValid() bool {
	switch t {
	case MatchTypeLocalInterest, MatchTypeTravelerInterest, MatchTypeProximity:
		return true
	default:
		return false
	}
}

// Priority orders notifications on the business dashboard. Higher is more urgent.
type Priority int

const (
	PriorityLow    Priority = 1 // local interest
	PriorityNormal Priority = 2 // traveller interest
	PriorityHigh   Priority = 3 // proximity
	PriorityUrgent Priority = 4 // proximity to an active traveller
)

// NotificationStatus is the derived lifecycle state of a notification.
type NotificationStatus string

const (
	NotificationStatusUnread    NotificationStatus = "unread"
	NotificationStatusRead      NotificationStatus = "read"
	NotificationStatusProcessed NotificationStatus = "processed"
)

// BusinessNotification tells a business about a user that matched its criteria.
// Its lifecycle is unread -> read -> processed and processed is terminal.
type BusinessNotification struct {
	ID                uuid.UUID     `json:"id"`
	BusinessID        uuid.UUID     `json:"business_id"`
	UserID            uuid.UUID     `json:"user_id"`
	MatchType         MatchType     `json:"match_type"`
	MatchedInterests  []string      `json:"matched_interests"`
	MatchedActivities []string      `json:"matched_activities"`
	UserLocation      string        `json:"user_location"` // Snapshot of where the user was when matched.
	DistanceKm        *float64      `json:"distance_km,omitempty"`
	Priority          Priority      `json:"priority"`
	TravelWindow      *TravelWindow `json:"travel_window,omitempty"` // Snapshot, set for travellers only.
	NaturalKey        string        `json:"-"`
	IsRead            bool          `json:"is_read"`
	IsProcessed       bool          `json:"is_processed"`
	ReadAt            *time.Time    `json:"read_at,omitempty"`
	ProcessedAt       *time.Time    `json:"processed_at,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
}

// Status derives the lifecycle state from the persisted flags.
func (n *BusinessNotification) Status() NotificationStatus {
	switch {
	case n.IsProcessed:
		return NotificationStatusProcessed
	case n.IsRead:
		return NotificationStatusRead
	default:
		return NotificationStatusUnread
	}
}

// MarkRead moves an unread notification to read. Reading a read notification
// is a no-op; reading a processed one is an invalid transition. It reports
// whether the notification changed.
func (n *BusinessNotification) MarkRead(now time.Time) (bool, error) {
	switch n.Status() {
	case NotificationStatusProcessed:
		return false, domainerrors.ErrInvalidTransition.WrapMessage("notification already processed")
	case NotificationStatusRead:
		return false, nil
	}

	n.IsRead = true
	n.ReadAt = &now

	return true, nil
}

// MarkProcessed moves the notification to its terminal state. An unread
// notification is read implicitly. Processing twice is a no-op. It reports
// whether the notification changed.
func (n *BusinessNotification) MarkProcessed(now time.Time) bool {
	if n.IsProcessed {
		return false
	}
	if !n.IsRead {
		n.IsRead = true
		n.ReadAt = &now
	}

	n.IsProcessed = true
	n.ProcessedAt = &now

	return true
}
