package service

import (
	"context"

	"go.uber.org/zap"

	"eventboard-backend/internal/core/domain"
	"eventboard-backend/internal/core/ports"
)

type ChatService struct {
	events    ports.EventRepository
	users     ports.UserRepository
	messages  ports.MessageRepository
	publisher ports.Publisher
}

// NewChatService panics when publisher is nil.
func NewChatService(
	events ports.EventRepository,
	users ports.UserRepository,
	messages ports.MessageRepository,
	publisher ports.Publisher,
) *ChatService {
	if publisher == nil {
		panic("service: ChatService requires a publisher")
	}
	return &ChatService{events: events, users: users, messages: messages, publisher: publisher}
}

func (s *ChatService) ListMessages(ctx context.Context, eventID, _ string) ([]domain.Message, error) {
	if _, err := s.events.GetEvent(ctx, eventID); err != nil {
		return nil, err
	}
	return s.messages.ListMessages(ctx, eventID)
}

// PostMessage stores and broadcasts a chat line. Finished events keep their chat open.
func (s *ChatService) PostMessage(ctx context.Context, eventID, actorID, text string) (*domain.Message, error) {
	text, err := domain.NormalizeMessageText(text)
	if err != nil {
		return nil, err
	}

	if _, err := s.events.GetEvent(ctx, eventID); err != nil {
		return nil, err
	}
	sender, err := s.users.GetUserByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	msg := &domain.Message{EventID: eventID, Sender: sender.Ref(), Text: text}
	if err := s.messages.CreateMessage(ctx, msg); err != nil {
		zap.L().Error("failed to store message", zap.String("event_id", eventID), zap.Error(err))
		return nil, err
	}

	stored, err := s.messages.GetMessage(ctx, msg.ID)
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(eventID, ports.TopicNewMessage, stored)
	return stored, nil
}

var _ ports.ChatService = (*ChatService)(nil)
