// Package model holds the GORM row structs of the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// MessageModel is the GORM-specific struct for the 'messages' table.
// The (receiver_id, is_read, created_at) index serves the reconnect drain.
type MessageModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key"`
	SenderID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	ReceiverID uuid.UUID  `gorm:"type:uuid;not null;index:idx_messages_receiver_unread,priority:1"`
	Content    string     `gorm:"type:text;not null"`
	Kind       string     `gorm:"type:varchar(16);not null;default:plain"`
	IsRead     bool       `gorm:"not null;default:false;index:idx_messages_receiver_unread,priority:2"`
	ReadAt     *time.Time `gorm:"type:timestamptz"`
	CreatedAt  time.Time  `gorm:"type:timestamptz;not null;index:idx_messages_receiver_unread,priority:3"`
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}
