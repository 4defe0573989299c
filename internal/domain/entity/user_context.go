package entity

import (
	"time"

	"github.com/google/uuid"
)

// TravelWindow is the period a user is travelling to their destination.
type TravelWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ActiveAt reports whether the trip has not ended at t. Upcoming trips count
// as active.
func (w *TravelWindow) ActiveAt(t time.Time) bool {
	if w == nil || w.End.IsZero() {
		return false
	}

	return !t.After(w.End)
}

// UserContext is the read-only view of a user that drives matching. It is
// owned by the profile service and delivered with every context change.
type UserContext struct {
	UserID       uuid.UUID     `json:"user_id" validate:"required"`
	Hometown     Place         `json:"hometown"`
	Destination  *Place        `json:"destination,omitempty"`
	TravelWindow *TravelWindow `json:"travel_window,omitempty"`
	Interests    []string      `json:"interests"`
	Activities   []string      `json:"activities"`
	IsBusiness   bool          `json:"is_business"`
}

// IsTraveling reports whether the user has a destination and an active
// travel window at now.
func (c *UserContext) IsTraveling(now time.Time) bool {
	return c.Destination != nil && c.Destination.City != "" && c.TravelWindow.ActiveAt(now)
}

// CurrentPlace is the destination while travelling, the hometown otherwise.
func (c *UserContext) CurrentPlace(now time.Time) Place {
	if c.IsTraveling(now) {
		return *c.Destination
	}

	return c.Hometown
}
