package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserDevice is a push target used to reach a user while they have no live connection.
type UserDevice struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	FCMToken  string    `json:"fcm_token"` // Firebase Cloud Messaging registration token.
	DeviceID  string    `json:"device_id"` // Client supplied identifier, unique per user.
	Platform  string    `json:"platform"`  // ios, android or web.
	IsActive  bool      `json:"is_active"` // Cleared when FCM reports the token as unregistered.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
