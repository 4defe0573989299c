package service

import (
	"context"

	"nomad/internal/domain/entity"

	"github.com/google/uuid"
)

// PresenceRegistry tracks the single live connection of each online user.
// Every operation is one atomic step and never blocks on another user.
type PresenceRegistry interface {
	// Register makes conn the live connection of conn.UserID and returns the
	// connection it replaced, if any. The caller closes the replaced one.
	Register(conn *entity.Connection) (replaced *entity.Connection)

	// Unregister removes whatever connection userID has and returns it.
	Unregister(userID uuid.UUID) *entity.Connection

	// Release removes conn only if it is still the live connection of its user.
	Release(conn *entity.Connection) bool

	// Lookup returns the live connection of userID.
	Lookup(userID uuid.UUID) (*entity.Connection, bool)

	// BroadcastTo pushes payload to userID's live connection and reports
	// whether it was written.
	BroadcastTo(ctx context.Context, userID uuid.UUID, payload *entity.Payload) bool

	// Count returns the number of online users.
	Count() int

	// CloseAll closes and removes every live connection.
	CloseAll(reason string)
}
