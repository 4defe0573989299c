package postgres

import (
	"context"
	"time"

	"nomad/internal/domain/entity"
	domainerrors "nomad/internal/domain/errors"
	"nomad/internal/domain/repository"
	"nomad/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// messageRepository implements the repository.MessageRepository interface.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{
		db: db,
	}
}

// Append persists a new message.
func (repo *messageRepository) Append(ctx context.Context, message *entity.Message) error {
	messageM := fromMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidMessage.WrapMessage("message rejected by store")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append message")
	}

	return nil
}

// UnreadFor returns the receiver's unread messages in send order.
func (repo *messageRepository) UnreadFor(ctx context.Context, receiverID uuid.UUID, limit int) ([]*entity.Message, error) {
	var messageModels []*model.MessageModel

	query := repo.db.WithContext(ctx).
		Where("receiver_id = ? AND is_read = ?", receiverID, false).
		Order("created_at ASC").
		Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&messageModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load unread messages")
	}

	return toMessageDomains(messageModels), nil
}

// MarkRead flips unread messages to read. The created_at bound keeps
// messages appended after the caller's snapshot unread.
func (repo *messageRepository) MarkRead(ctx context.Context, receiverID uuid.UUID, beforeOrAt time.Time, ids ...uuid.UUID) (int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("receiver_id = ? AND is_read = ? AND created_at <= ?", receiverID, false, beforeOrAt)
	if len(ids) > 0 {
		query = query.Where("id IN ?", ids)
	}

	result := query.Updates(map[string]any{
		"is_read": true,
		"read_at": time.Now().UTC(),
	})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark messages read")
	}

	return result.RowsAffected, nil
}

// Conversation returns both directions of a conversation in send order.
func (repo *messageRepository) Conversation(ctx context.Context, userID, peerID uuid.UUID, limit, offset int) ([]*entity.Message, error) {
	var messageModels []*model.MessageModel

	query := repo.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)", userID, peerID, peerID, userID).
		Order("created_at ASC").
		Order("id ASC").
		Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&messageModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load conversation")
	}

	return toMessageDomains(messageModels), nil
}

// --- Mapper Functions ---

func toMessageDomain(data *model.MessageModel) *entity.Message {
	if data == nil {
		return nil
	}

	return &entity.Message{
		ID:         data.ID,
		SenderID:   data.SenderID,
		ReceiverID: data.ReceiverID,
		Content:    data.Content,
		Kind:       entity.MessageKind(data.Kind),
		CreatedAt:  data.CreatedAt,
		IsRead:     data.IsRead,
		ReadAt:     data.ReadAt,
	}
}

func toMessageDomains(models []*model.MessageModel) []*entity.Message {
	messages := make([]*entity.Message, 0, len(models))
	for _, m := range models {
		messages = append(messages, toMessageDomain(m))
	}

	return messages
}

func fromMessageDomain(data *entity.Message) *model.MessageModel {
	if data == nil {
		return nil
	}

	return &model.MessageModel{
		ID:         data.ID,
		SenderID:   data.SenderID,
		ReceiverID: data.ReceiverID,
		Content:    data.Content,
		Kind:       string(data.Kind),
		IsRead:     data.IsRead,
		ReadAt:     data.ReadAt,
		CreatedAt:  data.CreatedAt,
	}
}
