package impl

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"sync"
	"testing"
	"time"

	"nomad/config"
	"nomad/internal/domain/entity"
	domainerrors "nomad/internal/domain/errors"
	"nomad/internal/infra/presence"
	mockRepo "nomad/internal/mocks/repository"
	"nomad/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memoryMessageStore is an in-memory MessageRepository with the ordering and
// read semantics of the Postgres store.
type memoryMessageStore struct {
	mu          sync.Mutex
	messages    []*entity.Message
	afterUnread func()
}

func (s *memoryMessageStore) Append(_ context.Context, message *entity.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *message
	s.messages = append(s.messages, &cp)

	return nil
}

func (s *memoryMessageStore) UnreadFor(_ context.Context, receiverID uuid.UUID, limit int) ([]*entity.Message, error) {
	s.mu.Lock()
	out := make([]*entity.Message, 0)
	for _, m := range s.messages {
		if m.ReceiverID == receiverID && !m.IsRead {
			cp := *m
			out = append(out, &cp)
		}
	}
	hook := s.afterUnread
	s.mu.Unlock()

	slices.SortStableFunc(out, func(a, b *entity.Message) int { return a.CreatedAt.Compare(b.CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	if hook != nil {
		hook()
	}

	return out, nil
}

func (s *memoryMessageStore) MarkRead(_ context.Context, receiverID uuid.UUID, beforeOrAt time.Time, ids ...uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for _, m := range s.messages {
		if m.ReceiverID != receiverID || m.IsRead || m.CreatedAt.After(beforeOrAt) {
			continue
		}
		if len(ids) > 0 && !slices.Contains(ids, m.ID) {
			continue
		}
		at := beforeOrAt
		m.IsRead = true
		m.ReadAt = &at
		n++
	}

	return n, nil
}

func (s *memoryMessageStore) Conversation(_ context.Context, userID, peerID uuid.UUID, _, _ int) ([]*entity.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entity.Message, 0)
	for _, m := range s.messages {
		if (m.SenderID == userID && m.ReceiverID == peerID) || (m.SenderID == peerID && m.ReceiverID == userID) {
			cp := *m
			out = append(out, &cp)
		}
	}

	return out, nil
}

func (s *memoryMessageStore) find(id uuid.UUID) *entity.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.messages {
		if m.ID == id {
			cp := *m

			return &cp
		}
	}

	return nil
}

type fakeTransport struct {
	mu      sync.Mutex
	sent    []*entity.Payload
	closed  bool
	sendErr error
}

func (t *fakeTransport) Send(_ context.Context, payload *entity.Payload) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.sendErr != nil {
		return t.sendErr
	}
	t.sent = append(t.sent, payload)

	return nil
}

func (t *fakeTransport) Close(string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.closed = true

	return nil
}

func (t *fakeTransport) contents() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]string, 0, len(t.sent))
	for _, p := range t.sent {
		if data, ok := p.Data.(*entity.MessagePayload); ok {
			out = append(out, data.Content)
		}
	}

	return out
}

func (t *fakeTransport) isClosed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.closed
}

// steppingClock returns strictly increasing times so messages sent in a row keep their order.
func steppingClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	current := start

	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()

		current = current.Add(time.Millisecond)

		return current
	}
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func createTestMessagingService(t *testing.T, repo *memoryMessageStore) (*messagingService, *presence.Registry) {
	t.Helper()

	registry := presence.NewRegistry(newTestLogger())
	svc := NewMessagingService(repo, registry, &config.Config{}, newTestLogger()).(*messagingService)
	svc.now = steppingClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	return svc, registry
}

func TestMessagingService_OfflineThenReconnect_DeliversInOrderAndMarksRead(t *testing.T) {
	repo := &memoryMessageStore{}
	svc, _ := createTestMessagingService(t, repo)
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	first, err := svc.Send(ctx, &usecase.SendMessageInput{SenderID: alice, ReceiverID: bob, Content: "hello"})
	require.NoError(t, err)
	second, err := svc.Send(ctx, &usecase.SendMessageInput{SenderID: alice, ReceiverID: bob, Content: "are you there?"})
	require.NoError(t, err)

	assert.False(t, repo.find(first.ID).IsRead)
	assert.False(t, repo.find(second.ID).IsRead)

	transport := &fakeTransport{}
	conn := entity.NewConnection(bob, "bob", transport, time.Now())
	require.NoError(t, svc.Connect(ctx, conn))

	assert.Equal(t, []string{"hello", "are you there?"}, transport.contents())
	assert.True(t, repo.find(first.ID).IsRead)
	assert.True(t, repo.find(second.ID).IsRead)

	unread, err := svc.UnreadFor(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, unread)
}

func TestMessagingService_Send_OnlineReceiverGetsInstantPush(t *testing.T) {
	repo := &memoryMessageStore{}
	svc, _ := createTestMessagingService(t, repo)
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	transport := &fakeTransport{}
	require.NoError(t, svc.Connect(ctx, entity.NewConnection(bob, "bob", transport, time.Now())))

	msg, err := svc.Send(ctx, &usecase.SendMessageInput{SenderID: alice, SenderName: "alice", ReceiverID: bob, Content: "meet at the pier?", Kind: entity.MessageKindInstant})
	require.NoError(t, err)

	require.Len(t, transport.sent, 1)
	data, ok := transport.sent[0].Data.(*entity.MessagePayload)
	require.True(t, ok)
	assert.Equal(t, "alice", data.SenderName)
	assert.Equal(t, entity.MessageKindInstant, data.Kind)
	assert.True(t, repo.find(msg.ID).IsRead)
}

func TestMessagingService_Send_DeliveryFailureStillAcknowledged(t *testing.T) {
	repo := &memoryMessageStore{}
	svc, _ := createTestMessagingService(t, repo)
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	transport := &fakeTransport{}
	require.NoError(t, svc.Connect(ctx, entity.NewConnection(bob, "bob", transport, time.Now())))
	transport.sendErr = errors.New("broken pipe")

	msg, err := svc.Send(ctx, &usecase.SendMessageInput{SenderID: alice, ReceiverID: bob, Content: "hello"})
	require.NoError(t, err)
	assert.False(t, repo.find(msg.ID).IsRead)
}

func TestMessagingService_Send_Validation(t *testing.T) {
	svc, _ := createTestMessagingService(t, &memoryMessageStore{})
	alice, bob := uuid.New(), uuid.New()

	tests := []struct {
		name  string
		input *usecase.SendMessageInput
	}{
		{name: "nil input", input: nil},
		{name: "missing sender", input: &usecase.SendMessageInput{ReceiverID: bob, Content: "hi"}},
		{name: "missing receiver", input: &usecase.SendMessageInput{SenderID: alice, Content: "hi"}},
		{name: "blank content", input: &usecase.SendMessageInput{SenderID: alice, ReceiverID: bob, Content: "   "}},
		{name: "unknown kind", input: &usecase.SendMessageInput{SenderID: alice, ReceiverID: bob, Content: "hi", Kind: "shout"}},
		{name: "too long", input: &usecase.SendMessageInput{SenderID: alice, ReceiverID: bob, Content: string(make([]byte, maxMessageLength+1))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Send(context.Background(), tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidMessage))
		})
	}
}

func TestMessagingService_Send_StoreFailure(t *testing.T) {
	repo := mockRepo.NewMockMessageRepository(t)
	registry := presence.NewRegistry(newTestLogger())
	svc := NewMessagingService(repo, registry, &config.Config{}, newTestLogger())

	storeErr := domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "insert message")
	repo.EXPECT().Append(mock.Anything, mock.Anything).Return(storeErr)

	msg, err := svc.Send(context.Background(), &usecase.SendMessageInput{SenderID: uuid.New(), ReceiverID: uuid.New(), Content: "hello"})

	require.Error(t, err)
	assert.Nil(t, msg)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreUnavailable))
}

func TestMessagingService_Connect_ConcurrentAppendStaysUnread(t *testing.T) {
	repo := &memoryMessageStore{}
	svc, _ := createTestMessagingService(t, repo)
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	_, err := svc.Send(ctx, &usecase.SendMessageInput{SenderID: alice, ReceiverID: bob, Content: "hello"})
	require.NoError(t, err)

	// A message stored by another instance right after the backlog was read.
	late := entity.NewMessage(alice, bob, "late", entity.MessageKindPlain, time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC))
	var once sync.Once
	repo.afterUnread = func() {
		once.Do(func() { _ = repo.Append(ctx, late) })
	}

	transport := &fakeTransport{}
	require.NoError(t, svc.Connect(ctx, entity.NewConnection(bob, "bob", transport, time.Now())))

	assert.Equal(t, []string{"hello"}, transport.contents())
	assert.False(t, repo.find(late.ID).IsRead)

	unread, err := svc.UnreadFor(ctx, bob)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, late.ID, unread[0].ID)
}

func TestMessagingService_Connect_DrainsMoreThanOneBatch(t *testing.T) {
	repo := &memoryMessageStore{}
	svc, _ := createTestMessagingService(t, repo)
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	total := drainBatchSize + 5
	for range total {
		_, err := svc.Send(ctx, &usecase.SendMessageInput{SenderID: alice, ReceiverID: bob, Content: "ping"})
		require.NoError(t, err)
	}

	transport := &fakeTransport{}
	require.NoError(t, svc.Connect(ctx, entity.NewConnection(bob, "bob", transport, time.Now())))

	assert.Len(t, transport.contents(), total)
	unread, err := svc.UnreadFor(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, unread)
}

func TestMessagingService_Connect_TransportFailureLeavesRestUnread(t *testing.T) {
	repo := &memoryMessageStore{}
	svc, registry := createTestMessagingService(t, repo)
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	for _, content := range []string{"one", "two"} {
		_, err := svc.Send(ctx, &usecase.SendMessageInput{SenderID: alice, ReceiverID: bob, Content: content})
		require.NoError(t, err)
	}

	transport := &fakeTransport{sendErr: errors.New("socket closed")}
	err := svc.Connect(ctx, entity.NewConnection(bob, "bob", transport, time.Now()))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDeliveryFailed))
	assert.Equal(t, 1, registry.Count())

	unread, err := svc.UnreadFor(ctx, bob)
	require.NoError(t, err)
	assert.Len(t, unread, 2)
}

func TestMessagingService_Connect_CanceledContext(t *testing.T) {
	repo := &memoryMessageStore{}
	svc, registry := createTestMessagingService(t, repo)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := svc.Connect(ctx, entity.NewConnection(uuid.New(), "bob", &fakeTransport{}, time.Now()))

	require.Error(t, err)
	assert.Equal(t, 0, registry.Count())
}

func TestMessagingService_DoubleRegister_ReplacesFirstConnection(t *testing.T) {
	repo := &memoryMessageStore{}
	svc, registry := createTestMessagingService(t, repo)
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	firstTransport := &fakeTransport{}
	firstConn := entity.NewConnection(bob, "bob", firstTransport, time.Now())
	require.NoError(t, svc.Connect(ctx, firstConn))

	secondTransport := &fakeTransport{}
	secondConn := entity.NewConnection(bob, "bob", secondTransport, time.Now())
	require.NoError(t, svc.Connect(ctx, secondConn))

	assert.Equal(t, 1, registry.Count())
	assert.True(t, firstTransport.isClosed())

	_, err := svc.Send(ctx, &usecase.SendMessageInput{SenderID: alice, ReceiverID: bob, Content: "hello"})
	require.NoError(t, err)

	assert.Empty(t, firstTransport.contents())
	assert.Equal(t, []string{"hello"}, secondTransport.contents())

	// The replaced connection shutting down must not evict its successor.
	svc.Disconnect(ctx, firstConn)
	assert.True(t, svc.IsOnline(bob))

	svc.Disconnect(ctx, secondConn)
	assert.False(t, svc.IsOnline(bob))
}

func TestMessagingService_ConcurrentSendsDuringConnect(t *testing.T) {
	repo := &memoryMessageStore{}
	svc, _ := createTestMessagingService(t, repo)
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	for range 20 {
		_, err := svc.Send(ctx, &usecase.SendMessageInput{SenderID: alice, ReceiverID: bob, Content: "backlog"})
		require.NoError(t, err)
	}

	transport := &fakeTransport{}
	conn := entity.NewConnection(bob, "bob", transport, time.Now())

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		assert.NoError(t, svc.Connect(ctx, conn))
	}()
	go func() {
		defer wg.Done()
		for range 20 {
			_, err := svc.Send(ctx, &usecase.SendMessageInput{SenderID: alice, ReceiverID: bob, Content: "live"})
			assert.NoError(t, err)
		}
	}()
	wg.Wait()

	// Whatever was not pushed live stays unread for the next drain; nothing is pushed twice.
	delivered := len(transport.contents())
	unread, err := svc.UnreadFor(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, 40, delivered+len(unread))

	seen := make(map[uuid.UUID]bool)
	for _, p := range transport.sent {
		id := p.Data.(*entity.MessagePayload).ID
		assert.False(t, seen[id], "message pushed twice")
		seen[id] = true
	}
}

func TestMessagingService_MarkReadAndConversation(t *testing.T) {
	repo := &memoryMessageStore{}
	svc, _ := createTestMessagingService(t, repo)
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	for _, content := range []string{"hello", "are you there?"} {
		_, err := svc.Send(ctx, &usecase.SendMessageInput{SenderID: alice, ReceiverID: bob, Content: content})
		require.NoError(t, err)
	}

	n, err := svc.MarkRead(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	conversation, err := svc.Conversation(ctx, bob, alice, 50, 0)
	require.NoError(t, err)
	require.Len(t, conversation, 2)
	assert.Equal(t, "hello", conversation[0].Content)

	_, err = svc.Conversation(ctx, bob, uuid.Nil, 50, 0)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
