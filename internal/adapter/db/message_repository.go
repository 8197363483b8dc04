package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"eventboard-backend/internal/core/domain"
	"eventboard-backend/internal/core/ports"
)

var errMessageNotFound = errors.New("message not found")

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) CreateMessage(ctx context.Context, msg *domain.Message) error {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}

	row := Message{
		ID:       msg.ID,
		EventID:  msg.EventID,
		SenderID: msg.Sender.ID,
		Text:     msg.Text,
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}

	msg.CreatedAt = row.CreatedAt
	return nil
}

func (r *MessageRepository) GetMessage(ctx context.Context, id string) (*domain.Message, error) {
	var row Message
	err := r.db.WithContext(ctx).Preload("Sender").Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errMessageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get message: %w", err)
	}
	msg := row.toDomain()
	return &msg, nil
}

func (r *MessageRepository) ListMessages(ctx context.Context, eventID string) ([]domain.Message, error) {
	var rows []Message
	err := r.db.WithContext(ctx).
		Preload("Sender").
		Where("event_id = ?", eventID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	messages := make([]domain.Message, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, row.toDomain())
	}
	return messages, nil
}

var _ ports.MessageRepository = (*MessageRepository)(nil)
