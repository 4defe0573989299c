// Package presence keeps the in-memory table of live user connections.
package presence

import (
	"context"
	"log/slog"
	"sync"

	"nomad/internal/domain/entity"
	"nomad/internal/domain/service"

	"github.com/google/uuid"
)

// Registry is a PresenceRegistry backed by sync.Map. Each operation is a
// single atomic map step, so callers for different users never contend.
type Registry struct {
	conns  sync.Map // uuid.UUID -> *entity.Connection
	logger *slog.Logger
}

var _ service.PresenceRegistry = (*Registry)(nil)

// NewRegistry creates an empty registry.
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{logger: logger.With("component", "presence")}
}

// Register stores conn as the live connection of its user, last connect wins.
func (r *Registry) Register(conn *entity.Connection) *entity.Connection {
	prev, loaded := r.conns.Swap(conn.UserID, conn)
	if !loaded {
		return nil
	}

	replaced, _ := prev.(*entity.Connection)
	if replaced == conn {
		return nil
	}

	return replaced
}

// Unregister removes the user's connection regardless of which one it is.
func (r *Registry) Unregister(userID uuid.UUID) *entity.Connection {
	prev, loaded := r.conns.LoadAndDelete(userID)
	if !loaded {
		return nil
	}

	conn, _ := prev.(*entity.Connection)

	return conn
}

// Release removes conn only while it is still registered for its user, so a
// replaced connection shutting down never evicts its successor.
func (r *Registry) Release(conn *entity.Connection) bool {
	return r.conns.CompareAndDelete(conn.UserID, conn)
}

// Lookup returns the live connection of userID.
func (r *Registry) Lookup(userID uuid.UUID) (*entity.Connection, bool) {
	v, ok := r.conns.Load(userID)
	if !ok {
		return nil, false
	}

	conn, ok := v.(*entity.Connection)

	return conn, ok
}

// BroadcastTo writes payload to the user's live connection.
func (r *Registry) BroadcastTo(ctx context.Context, userID uuid.UUID, payload *entity.Payload) bool {
	conn, ok := r.Lookup(userID)
	if !ok {
		return false
	}

	err := conn.Exclusive(func() error {
		return conn.Push(ctx, payload)
	})
	if err != nil {
		r.logger.WarnContext(ctx, "broadcast failed",
			slog.String("user_id", userID.String()),
			slog.String("payload_type", string(payload.Type)),
			slog.Any("error", err),
		)

		return false
	}

	return true
}

// Count returns the number of online users.
func (r *Registry) Count() int {
	n := 0
	r.conns.Range(func(_, _ any) bool {
		n++

		return true
	})

	return n
}

// CloseAll removes and closes every connection.
func (r *Registry) CloseAll(reason string) {
	r.conns.Range(func(key, value any) bool {
		conn, _ := value.(*entity.Connection)
		if conn == nil || !r.conns.CompareAndDelete(key, conn) {
			return true
		}
		if err := conn.Close(reason); err != nil {
			r.logger.Warn("close connection failed",
				slog.String("user_id", conn.UserID.String()),
				slog.Any("error", err),
			)
		}

		return true
	})
}
