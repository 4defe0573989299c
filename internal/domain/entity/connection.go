package entity

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Transport is the push side of one live client session.
// Implementations must be safe to Close concurrently with Send.
type Transport interface {
	// Send writes a single payload to the client.
	Send(ctx context.Context, payload *Payload) error

	// Close terminates the session. Closing twice is not an error.
	Close(reason string) error
}

// Connection is an authenticated live session of a user. It lives exactly as
// long as its transport and is owned by the presence registry.
type Connection struct {
	ID              uuid.UUID // Identifies this session; distinguishes a replaced session from its successor.
	UserID          uuid.UUID
	DisplayName     string
	Transport       Transport
	AuthenticatedAt time.Time

	mu        sync.Mutex
	delivered map[uuid.UUID]struct{}
}

// NewConnection creates a connection record for a freshly authenticated transport.
func NewConnection(userID uuid.UUID, displayName string, transport Transport, authenticatedAt time.Time) *Connection {
	return &Connection{
		ID:              uuid.New(),
		UserID:          userID,
		DisplayName:     displayName,
		Transport:       transport,
		AuthenticatedAt: authenticatedAt,
		delivered:       make(map[uuid.UUID]struct{}),
	}
}

// Exclusive runs fn while holding the connection's delivery lock. Every write
// to the transport goes through here so frames are never interleaved, and a
// reconnect drain can finish before any live message is pushed.
func (c *Connection) Exclusive(fn func() error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return fn()
}

// Push writes payload to the transport. Must be called inside Exclusive.
func (c *Connection) Push(ctx context.Context, payload *Payload) error {
	return c.Transport.Send(ctx, payload)
}

// RecordDelivered remembers that a message went out during the drain.
// Must be called inside Exclusive.
func (c *Connection) RecordDelivered(messageID uuid.UUID) {
	c.delivered[messageID] = struct{}{}
}

// Delivered reports whether the drain already handed out messageID on this
// connection. Must be called inside Exclusive.
func (c *Connection) Delivered(messageID uuid.UUID) bool {
	_, ok := c.delivered[messageID]

	return ok
}

// Close closes the underlying transport.
func (c *Connection) Close(reason string) error {
	return c.Transport.Close(reason)
}
