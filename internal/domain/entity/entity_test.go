package entity

import (
	"math"
	"testing"
	"time"

	domainerrors "nomad/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessNotificationLifecycle(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	n := &BusinessNotification{ID: uuid.New()}
	assert.Equal(t, NotificationStatusUnread, n.Status())

	changed, err := n.MarkRead(now)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, NotificationStatusRead, n.Status())
	assert.Equal(t, now, *n.ReadAt)

	changed, err = n.MarkRead(now.Add(time.Minute))
	require.NoError(t, err)
	assert.False(t, changed, "reading twice is a no-op")
	assert.Equal(t, now, *n.ReadAt)

	assert.True(t, n.MarkProcessed(now.Add(time.Hour)))
	assert.Equal(t, NotificationStatusProcessed, n.Status())
	assert.False(t, n.MarkProcessed(now.Add(2*time.Hour)), "processing twice is a no-op")
	assert.Equal(t, now.Add(time.Hour), *n.ProcessedAt)

	changed, err = n.MarkRead(now.Add(3 * time.Hour))
	assert.False(t, changed)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))
}

func TestMarkProcessedReadsUnreadNotification(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	n := &BusinessNotification{ID: uuid.New()}

	assert.True(t, n.MarkProcessed(now))
	assert.True(t, n.IsRead)
	require.NotNil(t, n.ReadAt)
	assert.Equal(t, now, *n.ReadAt)
}

func TestCoordinatesValid(t *testing.T) {
	tests := []struct {
		name  string
		point Coordinates
		want  bool
	}{
		{name: "santa monica", point: Coordinates{Latitude: 34.0195, Longitude: -118.4912}, want: true},
		{name: "null island", point: Coordinates{}},
		{name: "latitude out of range", point: Coordinates{Latitude: 91, Longitude: 10}},
		{name: "longitude out of range", point: Coordinates{Latitude: 10, Longitude: -181}},
		{name: "not a number", point: Coordinates{Latitude: math.NaN(), Longitude: 10}},
		{name: "infinite", point: Coordinates{Latitude: 10, Longitude: math.Inf(1)}},
		{name: "equator", point: Coordinates{Latitude: 0, Longitude: 32.5}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.point.Valid())
		})
	}
}

func TestUserContextCurrentPlace(t *testing.T) {
	now := time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC)
	home := Place{City: "Austin", State: "TX", Country: "US"}
	trip := &Place{City: "Santa Monica", State: "CA", Country: "US"}

	tests := []struct {
		name          string
		destination   *Place
		window        *TravelWindow
		wantTraveling bool
		wantCity      string
	}{
		{
			name:          "during the trip",
			destination:   trip,
			window:        &TravelWindow{Start: now.AddDate(0, 0, -1), End: now.AddDate(0, 0, 3)},
			wantTraveling: true,
			wantCity:      "Santa Monica",
		},
		{
			name:          "upcoming trip",
			destination:   trip,
			window:        &TravelWindow{Start: now.AddDate(0, 0, 7), End: now.AddDate(0, 0, 10)},
			wantTraveling: true,
			wantCity:      "Santa Monica",
		},
		{
			name:        "trip ended",
			destination: trip,
			window:      &TravelWindow{Start: now.AddDate(0, 0, -10), End: now.AddDate(0, 0, -1)},
			wantCity:    "Austin",
		},
		{
			name:        "destination without window",
			destination: trip,
			wantCity:    "Austin",
		},
		{
			name:     "no destination",
			window:   &TravelWindow{Start: now, End: now.AddDate(0, 0, 1)},
			wantCity: "Austin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &UserContext{UserID: uuid.New(), Hometown: home, Destination: tt.destination, TravelWindow: tt.window}

			assert.Equal(t, tt.wantTraveling, c.IsTraveling(now))
			assert.Equal(t, tt.wantCity, c.CurrentPlace(now).City)
		})
	}
}

func TestPlaceDescribe(t *testing.T) {
	p := Place{City: "Santa Monica", State: "CA", Country: "US"}

	assert.Equal(t, "Santa Monica, CA, US (Los Angeles)", p.Describe(CanonicalLocation{Name: "Los Angeles", IsMetro: true}))
	assert.Equal(t, "Santa Monica, CA, US", p.Describe(CanonicalLocation{Name: "santa monica"}))
}

func TestNewMessage(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 123456789, time.UTC)

	msg := NewMessage(uuid.New(), uuid.New(), "  ", "", now)

	assert.Equal(t, MessageKindPlain, msg.Kind)
	assert.Equal(t, 7, int(msg.ID.Version()))
	assert.Equal(t, now.Truncate(time.Microsecond), msg.CreatedAt)
	assert.False(t, msg.HasContent())
	assert.False(t, msg.IsRead)
}
