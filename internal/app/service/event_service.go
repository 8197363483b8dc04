package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"eventboard-backend/internal/core/domain"
	"eventboard-backend/internal/core/ports"
)

type EventService struct {
	events    ports.EventRepository
	users     ports.UserRepository
	publisher ports.Publisher
	newCode   CodeGenerator
}

// NewEventService panics when publisher is nil.
func NewEventService(events ports.EventRepository, users ports.UserRepository, publisher ports.Publisher) *EventService {
	if publisher == nil {
		panic("service: EventService requires a publisher")
	}
	return &EventService{
		events:    events,
		users:     users,
		publisher: publisher,
		newCode:   GenerateJoinCode,
	}
}

// WithCodeGenerator replaces the join code source.
func (s *EventService) WithCodeGenerator(gen CodeGenerator) *EventService {
	s.newCode = gen
	return s
}

func (s *EventService) CreateEvent(ctx context.Context, organizerID, name string) (*domain.Event, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrEventNameEmpty
	}

	organizer, err := s.users.GetUserByID(ctx, organizerID)
	if err != nil {
		return nil, err
	}

	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		code, err := s.newCode()
		if err != nil {
			return nil, fmt.Errorf("failed to generate join code: %w", err)
		}

		ev := &domain.Event{Name: name, Code: code, Organizer: organizer.Ref()}
		err = s.events.CreateEvent(ctx, ev)
		if errors.Is(err, domain.ErrCodeTaken) {
			zap.L().Debug("join code collision", zap.String("code", code), zap.Int("attempt", attempt))
			continue
		}
		if err != nil {
			return nil, err
		}

		zap.L().Info("event created", zap.String("event_id", ev.ID), zap.String("user_id", organizerID))
		return s.events.GetEvent(ctx, ev.ID)
	}

	zap.L().Error("join code space exhausted", zap.Int("attempts", maxCodeAttempts))
	return nil, domain.ErrCodeExhausted
}

func (s *EventService) DeleteEvent(ctx context.Context, eventID, actorID string) error {
	ev, err := s.events.GetEvent(ctx, eventID)
	if err != nil {
		return err
	}
	if err := ev.CanDelete(actorID); err != nil {
		return err
	}
	if err := s.events.DeleteEvent(ctx, eventID); err != nil {
		return err
	}

	zap.L().Info("event deleted", zap.String("event_id", eventID), zap.String("user_id", actorID))
	return nil
}

// GetEvent returns the event to any authenticated caller.
func (s *EventService) GetEvent(ctx context.Context, eventID, _ string) (*domain.Event, error) {
	return s.events.GetEvent(ctx, eventID)
}

func (s *EventService) ListForUser(ctx context.Context, userID string) ([]domain.Event, []domain.Event, error) {
	organized, err := s.events.ListEventsByOrganizer(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	all, err := s.events.ListEventsByMember(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	_, joined := domain.OrganizedBy(all, userID)
	return organized, joined, nil
}

func (s *EventService) FinishEvent(ctx context.Context, eventID, actorID string) error {
	_, err := s.events.UpdateEvent(ctx, eventID, func(ev *domain.Event, tx ports.EventTx) error {
		changed, err := ev.Finish(actorID)
		if err != nil || !changed {
			return err
		}
		return tx.MarkFinished()
	})
	if err != nil {
		return err
	}

	s.publisher.Publish(eventID, ports.TopicEventFinished, nil)
	zap.L().Info("event finished", zap.String("event_id", eventID))
	return nil
}

func (s *EventService) JoinEvent(ctx context.Context, code, actorID string) (*domain.Event, bool, error) {
	code = domain.CanonicalCode(code)
	if code == "" {
		return nil, false, domain.ErrInvalidCode
	}

	ev, err := s.events.GetEventByCode(ctx, code)
	if errors.Is(err, domain.ErrEventNotFound) {
		return nil, false, domain.ErrInvalidCode
	}
	if err != nil {
		return nil, false, err
	}

	user, err := s.users.GetUserByID(ctx, actorID)
	if err != nil {
		return nil, false, err
	}

	var added bool
	updated, err := s.events.UpdateEvent(ctx, ev.ID, func(locked *domain.Event, tx ports.EventTx) error {
		var err error
		added, err = locked.AddMember(user.Ref())
		if err != nil || !added {
			return err
		}
		return tx.AddMember(user.ID)
	})
	if errors.Is(err, domain.ErrEventNotFound) {
		return nil, false, domain.ErrInvalidCode
	}
	if err != nil {
		return nil, false, err
	}

	if added {
		s.publisher.Publish(updated.ID, ports.TopicMembersUpdated, updated.Members)
		zap.L().Info("member joined", zap.String("event_id", updated.ID), zap.String("user_id", actorID))
	}
	return updated, added, nil
}

func (s *EventService) IsMember(ctx context.Context, eventID, userID string) (bool, error) {
	ev, err := s.events.GetEvent(ctx, eventID)
	if errors.Is(err, domain.ErrEventNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return ev.HasMember(userID), nil
}

var _ ports.EventService = (*EventService)(nil)
