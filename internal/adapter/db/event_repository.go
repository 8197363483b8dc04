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

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) CreateEvent(ctx context.Context, event *domain.Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	row := Event{
		ID:          event.ID,
		Name:        event.Name,
		Code:        event.Code,
		OrganizerID: event.Organizer.ID,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&Event{}).Where("code = ?", row.Code).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrCodeTaken
		}
		if err := tx.Omit(clause.Associations).Create(&row).Error; err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(&EventMember{
			EventID:  row.ID,
			UserID:   row.OrganizerID,
			Position: 1,
		}).Error
	})
	if err != nil {
		if errors.Is(err, domain.ErrCodeTaken) || errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrCodeTaken
		}
		return fmt.Errorf("failed to create event: %w", err)
	}

	event.CreatedAt = row.CreatedAt
	event.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *EventRepository) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	row, err := loadEvent(r.db.WithContext(ctx), "events.id = ?", id)
	if err != nil {
		return nil, err
	}
	return row.toDomain(), nil
}

func (r *EventRepository) GetEventByCode(ctx context.Context, code string) (*domain.Event, error) {
	row, err := loadEvent(r.db.WithContext(ctx), "events.code = ?", code)
	if err != nil {
		return nil, err
	}
	return row.toDomain(), nil
}

func (r *EventRepository) ListEventsByOrganizer(ctx context.Context, userID string) ([]domain.Event, error) {
	var rows []Event
	err := preloadAggregate(r.db.WithContext(ctx)).
		Where("events.organizer_id = ?", userID).
		Order("events.created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list organized events: %w", err)
	}
	return toDomainEvents(rows), nil
}

func (r *EventRepository) ListEventsByMember(ctx context.Context, userID string) ([]domain.Event, error) {
	var rows []Event
	err := preloadAggregate(r.db.WithContext(ctx)).
		Select("events.*").
		Joins("JOIN event_members em ON em.event_id = events.id AND em.user_id = ?", userID).
		Order("em.created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list joined events: %w", err)
	}
	return toDomainEvents(rows), nil
}

func (r *EventRepository) UpdateEvent(
	ctx context.Context,
	id string,
	fn func(ev *domain.Event, tx ports.EventTx) error,
) (*domain.Event, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockEvent(tx, id); err != nil {
			return err
		}
		row, err := loadEvent(tx, "events.id = ?", id)
		if err != nil {
			return err
		}
		return fn(row.toDomain(), &eventTx{tx: tx, eventID: id})
	})
	if err != nil {
		return nil, err
	}
	return r.GetEvent(ctx, id)
}

// DeleteEvent clears every reference to the event before the event row, so
// an interrupted delete leaves a visible event rather than dangling references.
func (r *EventRepository) DeleteEvent(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&EventMember{}).Error; err != nil {
			return fmt.Errorf("failed to delete memberships: %w", err)
		}
		if err := tx.Where("event_id = ?", id).Delete(&Message{}).Error; err != nil {
			return fmt.Errorf("failed to delete messages: %w", err)
		}
		if err := tx.Where("event_id = ?", id).Delete(&Task{}).Error; err != nil {
			return fmt.Errorf("failed to delete tasks: %w", err)
		}
		res := tx.Where("id = ?", id).Delete(&Event{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete event: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrEventNotFound
		}
		return nil
	})
}

func preloadAggregate(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Organizer").
		Preload("Members", func(db *gorm.DB) *gorm.DB {
			return db.Order("event_members.position ASC")
		}).
		Preload("Members.User").
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("tasks.position DESC")
		}).
		Preload("Tasks.AssignedTo").
		Preload("Tasks.CreatedBy")
}

func loadEvent(tx *gorm.DB, query string, arg string) (*Event, error) {
	var row Event
	err := preloadAggregate(tx).Where(query, arg).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load event: %w", err)
	}
	return &row, nil
}

// lockEvent takes the event's write lock for the rest of the transaction.
// SQLite has no row locks; its single connection already serialises writers.
func lockEvent(tx *gorm.DB, id string) error {
	q := tx.Model(&Event{}).Select("id").Where("id = ?", id)
	if tx.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var locked Event
	err := q.First(&locked).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrEventNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to lock event: %w", err)
	}
	return nil
}

func toDomainEvents(rows []Event) []domain.Event {
	events := make([]domain.Event, 0, len(rows))
	for _, row := range rows {
		events = append(events, *row.toDomain())
	}
	return events
}

var _ ports.EventRepository = (*EventRepository)(nil)
