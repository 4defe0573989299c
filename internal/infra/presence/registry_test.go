package presence

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"nomad/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingTransport struct {
	mu      sync.Mutex
	sent    []*entity.Payload
	closed  bool
	sendErr error
}

func (t *recordingTransport) Send(_ context.Context, payload *entity.Payload) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.sendErr != nil {
		return t.sendErr
	}
	t.sent = append(t.sent, payload)

	return nil
}

func (t *recordingTransport) Close(string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.closed = true

	return nil
}

func (t *recordingTransport) sentCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.sent)
}

func newTestRegistry() *Registry {
	return NewRegistry(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRegistryRegisterLookupUnregister(t *testing.T) {
	r := newTestRegistry()
	userID := uuid.New()
	conn := entity.NewConnection(userID, "ana", &recordingTransport{}, time.Now())

	_, ok := r.Lookup(userID)
	assert.False(t, ok)

	assert.Nil(t, r.Register(conn))
	got, ok := r.Lookup(userID)
	require.True(t, ok)
	assert.Same(t, conn, got)
	assert.Equal(t, 1, r.Count())

	assert.Same(t, conn, r.Unregister(userID))
	_, ok = r.Lookup(userID)
	assert.False(t, ok)
	assert.Nil(t, r.Unregister(userID))
}

func TestRegistryDoubleRegisterKeepsLatest(t *testing.T) {
	r := newTestRegistry()
	userID := uuid.New()
	first := &recordingTransport{}
	second := &recordingTransport{}
	c1 := entity.NewConnection(userID, "ana", first, time.Now())
	c2 := entity.NewConnection(userID, "ana", second, time.Now())

	r.Register(c1)
	replaced := r.Register(c2)
	assert.Same(t, c1, replaced)
	assert.Equal(t, 1, r.Count())

	assert.True(t, r.BroadcastTo(context.Background(), userID, &entity.Payload{Type: entity.PayloadTypeNotification}))
	assert.Equal(t, 0, first.sentCount())
	assert.Equal(t, 1, second.sentCount())
}

func TestRegistryReleaseIgnoresReplacedConnection(t *testing.T) {
	r := newTestRegistry()
	userID := uuid.New()
	c1 := entity.NewConnection(userID, "ana", &recordingTransport{}, time.Now())
	c2 := entity.NewConnection(userID, "ana", &recordingTransport{}, time.Now())

	r.Register(c1)
	r.Register(c2)

	assert.False(t, r.Release(c1))
	got, ok := r.Lookup(userID)
	require.True(t, ok)
	assert.Same(t, c2, got)

	assert.True(t, r.Release(c2))
	_, ok = r.Lookup(userID)
	assert.False(t, ok)
}

func TestRegistryBroadcastTo(t *testing.T) {
	r := newTestRegistry()
	ctx := context.Background()
	userID := uuid.New()

	assert.False(t, r.BroadcastTo(ctx, userID, &entity.Payload{Type: entity.PayloadTypeMessage}))

	failing := &recordingTransport{sendErr: errors.New("broken pipe")}
	r.Register(entity.NewConnection(userID, "ana", failing, time.Now()))
	assert.False(t, r.BroadcastTo(ctx, userID, &entity.Payload{Type: entity.PayloadTypeMessage}))
}

func TestRegistryCloseAll(t *testing.T) {
	r := newTestRegistry()
	transports := make([]*recordingTransport, 3)
	for i := range transports {
		transports[i] = &recordingTransport{}
		r.Register(entity.NewConnection(uuid.New(), "u", transports[i], time.Now()))
	}

	r.CloseAll("shutdown")

	assert.Equal(t, 0, r.Count())
	for _, tr := range transports {
		assert.True(t, tr.closed)
	}
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := newTestRegistry()
	users := make([]uuid.UUID, 8)
	for i := range users {
		users[i] = uuid.New()
	}

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			userID := users[i%len(users)]
			conn := entity.NewConnection(userID, "u", &recordingTransport{}, time.Now())
			r.Register(conn)
			r.BroadcastTo(context.Background(), userID, &entity.Payload{Type: entity.PayloadTypeNotification})
			r.Lookup(userID)
			r.Release(conn)
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, r.Count(), len(users))
	for _, userID := range users {
		if conn, ok := r.Lookup(userID); ok {
			assert.Equal(t, userID, conn.UserID)
		}
	}
}
