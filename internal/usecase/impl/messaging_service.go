// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"nomad/config"
	deliverycontext "nomad/internal/delivery/context"
	"nomad/internal/domain/entity"
	domainerrors "nomad/internal/domain/errors"
	"nomad/internal/domain/repository"
	"nomad/internal/domain/service"
	"nomad/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	// drainBatchSize bounds one backlog read during a reconnect drain.
	drainBatchSize = 200
	// maxMessageLength is the largest accepted message body, in bytes.
	maxMessageLength = 4000
)

// messagingService implements the MessagingUsecase interface.
type messagingService struct {
	messageRepo    repository.MessageRepository
	registry       service.PresenceRegistry
	logger         *slog.Logger
	maxDrainPasses int
	now            func() time.Time
}

// NewMessagingService is the constructor for messagingService.
func NewMessagingService(
	messageRepo repository.MessageRepository,
	registry service.PresenceRegistry,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.MessagingUsecase {
	presence := cfg.Presence
	if presence == nil {
		presence = config.DefaultPresenceConfig()
	}

	return &messagingService{
		messageRepo:    messageRepo,
		registry:       registry,
		logger:         logger,
		maxDrainPasses: max(presence.MaxDrainPasses, 1),
		now:            time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *messagingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Send validates and stores the message, then tries an instant push.
func (srv *messagingService) Send(ctx context.Context, input *usecase.SendMessageInput) (*entity.Message, error) {
	if err := validateSendInput(input); err != nil {
		return nil, err
	}

	msg := entity.NewMessage(input.SenderID, input.ReceiverID, input.Content, input.Kind, srv.now().UTC())
	if err := srv.messageRepo.Append(ctx, msg); err != nil {
		srv.log(ctx).Error("Failed to append message",
			slog.Any("error", err),
			slog.String("sender_id", input.SenderID.String()),
			slog.String("receiver_id", input.ReceiverID.String()),
		)

		return nil, errors.Wrap(err, "failed to append message")
	}

	// The message is durable; the sender is acknowledged whatever happens next.
	srv.deliver(context.WithoutCancel(ctx), msg, input.SenderName)

	return msg, nil
}

func validateSendInput(input *usecase.SendMessageInput) error {
	switch {
	case input == nil:
		return domainerrors.ErrInvalidMessage.WithDetails("empty message")
	case input.SenderID == uuid.Nil:
		return domainerrors.ErrInvalidMessage.WithDetails("sender is required")
	case input.ReceiverID == uuid.Nil:
		return domainerrors.ErrInvalidMessage.WithDetails("receiver is required")
	case input.Kind != "" && !input.Kind.IsValid():
		return domainerrors.ErrInvalidMessage.WithDetails("unknown message kind")
	case len(input.Content) > maxMessageLength:
		return domainerrors.ErrInvalidMessage.WithDetails("content too long")
	}

	msg := entity.Message{Content: input.Content}
	if !msg.HasContent() {
		return domainerrors.ErrInvalidMessage.WithDetails("content is required")
	}

	return nil
}

// deliver pushes a freshly stored message to the receiver's live connection
// and marks it read once written. Failures only leave the message unread for
// the next drain.
func (srv *messagingService) deliver(ctx context.Context, msg *entity.Message, senderName string) {
	conn, ok := srv.registry.Lookup(msg.ReceiverID)
	if !ok {
		return
	}

	err := conn.Exclusive(func() error {
		// A drain holding the lock may already have handed this message out.
		if conn.Delivered(msg.ID) {
			return nil
		}

		if err := conn.Push(ctx, entity.NewMessagePayload(msg, senderName)); err != nil {
			return errors.Wrap(domainerrors.ErrDeliveryFailed, err.Error())
		}

		if _, err := srv.messageRepo.MarkRead(ctx, msg.ReceiverID, msg.CreatedAt, msg.ID); err != nil {
			srv.log(ctx).Warn("Delivered message not marked read",
				slog.Any("error", err),
				slog.String("message_id", msg.ID.String()),
			)
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Instant delivery failed",
			slog.Any("error", err),
			slog.String("message_id", msg.ID.String()),
			slog.String("receiver_id", msg.ReceiverID.String()),
		)
	}
}

// Connect registers conn and drains the backlog while holding the
// connection's delivery lock, so live sends queue up behind the backlog.
func (srv *messagingService) Connect(ctx context.Context, conn *entity.Connection) error {
	return conn.Exclusive(func() error {
		if err := ctx.Err(); err != nil {
			return errors.WithStack(err)
		}

		if replaced := srv.registry.Register(conn); replaced != nil {
			srv.log(ctx).Info("Replacing live connection", slog.String("user_id", conn.UserID.String()))
			if err := replaced.Close("replaced by a newer session"); err != nil {
				srv.log(ctx).Debug("Close replaced connection", slog.Any("error", err))
			}
		}

		return srv.drain(ctx, conn)
	})
}

// drain delivers unread messages oldest first and marks the delivered ones
// read in one call per batch. Must run inside conn.Exclusive.
func (srv *messagingService) drain(ctx context.Context, conn *entity.Connection) error {
	total := 0
	defer func() {
		if total > 0 {
			srv.log(ctx).Info("Drained backlog",
				slog.String("user_id", conn.UserID.String()),
				slog.Int("delivered", total),
			)
		}
	}()

	for range srv.maxDrainPasses {
		backlog, err := srv.messageRepo.UnreadFor(ctx, conn.UserID, drainBatchSize)
		if err != nil {
			return errors.Wrap(err, "failed to load backlog")
		}

		delivered := make([]uuid.UUID, 0, len(backlog))
		var (
			through time.Time
			pushErr error
		)
		for _, msg := range backlog {
			if conn.Delivered(msg.ID) {
				continue
			}
			if err := ctx.Err(); err != nil {
				pushErr = errors.WithStack(err)

				break
			}
			if err := conn.Push(ctx, entity.NewMessagePayload(msg, "")); err != nil {
				pushErr = errors.Wrap(domainerrors.ErrDeliveryFailed, err.Error())

				break
			}
			conn.RecordDelivered(msg.ID)
			delivered = append(delivered, msg.ID)
			if msg.CreatedAt.After(through) {
				through = msg.CreatedAt
			}
		}

		if len(delivered) > 0 {
			// Written frames count as delivered even if the drain was cancelled.
			if _, err := srv.messageRepo.MarkRead(context.WithoutCancel(ctx), conn.UserID, through, delivered...); err != nil {
				return errors.Wrap(err, "failed to mark backlog read")
			}
			total += len(delivered)
		}

		if pushErr != nil {
			return pushErr
		}
		if len(backlog) < drainBatchSize {
			return nil
		}
	}

	srv.log(ctx).Warn("Drain pass limit reached", slog.String("user_id", conn.UserID.String()))

	return nil
}

// Disconnect releases conn if it is still the user's live connection.
func (srv *messagingService) Disconnect(ctx context.Context, conn *entity.Connection) {
	if srv.registry.Release(conn) {
		srv.log(ctx).Debug("User offline", slog.String("user_id", conn.UserID.String()))
	}
}

// UnreadFor lists the user's unread messages, oldest first.
func (srv *messagingService) UnreadFor(ctx context.Context, userID uuid.UUID) ([]*entity.Message, error) {
	messages, err := srv.messageRepo.UnreadFor(ctx, userID, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load unread messages")
	}

	return messages, nil
}

// MarkRead marks every message unread at call time read.
func (srv *messagingService) MarkRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := srv.messageRepo.MarkRead(ctx, userID, srv.now().UTC())
	if err != nil {
		return 0, errors.Wrap(err, "failed to mark messages read")
	}

	return n, nil
}

// Conversation lists messages between two users, oldest first.
func (srv *messagingService) Conversation(ctx context.Context, userID, peerID uuid.UUID, limit, offset int) ([]*entity.Message, error) {
	if peerID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("peer is required")
	}

	messages, err := srv.messageRepo.Conversation(ctx, userID, peerID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load conversation")
	}

	return messages, nil
}

// IsOnline reports whether the user has a live connection.
func (srv *messagingService) IsOnline(userID uuid.UUID) bool {
	_, ok := srv.registry.Lookup(userID)

	return ok
}
