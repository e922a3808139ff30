package database

import (
	"context"
	"time"

	"gorm.io/gorm"
	"kisankalyan.app/internal/ports"
	"kisankalyan.app/pkg/errors"
)

// ChatMessageModel represents the database model for one chat exchange
type ChatMessageModel struct {
	ID          uint      `gorm:"primaryKey"`
	SessionID   string    `gorm:"size:128;index;not null"`
	UserMessage string    `gorm:"type:text;not null"`
	BotResponse string    `gorm:"type:text;not null"`
	Timestamp   time.Time `gorm:"index;not null"`
}

func (ChatMessageModel) TableName() string {
	return "chat_messages"
}

// ChatHistoryRepositoryAdapter implements the ChatHistoryRepository port using GORM
type ChatHistoryRepositoryAdapter struct {
	db *gorm.DB
}

func NewChatHistoryRepositoryAdapter(db *gorm.DB) *ChatHistoryRepositoryAdapter {
	return &ChatHistoryRepositoryAdapter{db: db}
}

// Save appends a record. The generated ID is written back to the record.
func (r *ChatHistoryRepositoryAdapter) Save(ctx context.Context, record *ports.ChatRecord) error {
	if record == nil {
		return errors.NewValidationError("chat record cannot be nil")
	}

	model := &ChatMessageModel{
		SessionID:   record.SessionID,
		UserMessage: record.UserMessage,
		BotResponse: record.BotResponse,
		Timestamp:   record.Timestamp,
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return errors.NewDatabaseError("failed to save chat message", err)
	}

	record.ID = model.ID
	return nil
}

// FindBySession returns up to limit records of the session, newest first.
func (r *ChatHistoryRepositoryAdapter) FindBySession(ctx context.Context, sessionID string, limit int) ([]*ports.ChatRecord, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	var models []ChatMessageModel
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("timestamp DESC").
		Order("id DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, errors.NewDatabaseError("failed to find chat messages", err)
	}

	records := make([]*ports.ChatRecord, 0, len(models))
	for _, m := range models {
		records = append(records, &ports.ChatRecord{
			ID:          m.ID,
			SessionID:   m.SessionID,
			UserMessage: m.UserMessage,
			BotResponse: m.BotResponse,
			Timestamp:   m.Timestamp,
		})
	}
	return records, nil
}
