package ports

import (
	"context"

	"eventboard-backend/internal/core/domain"
)

type UserRepository interface {
	// CreateUser assigns the ID. Returns domain.ErrEmailTaken on a duplicate email.
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}

// EventTx is the write side of an event aggregate inside UpdateEvent.
type EventTx interface {
	// InsertTask stores task at the front of the board and sets task.ID.
	InsertTask(task *domain.Task) error
	UpdateTaskStatus(taskID string, status domain.TaskStatus) error
	DeleteTask(taskID string) error
	AddMember(userID string) error
	MarkFinished() error
}

type EventRepository interface {
	// CreateEvent stores a new event with the organizer as its first member.
	// Returns domain.ErrCodeTaken when event.Code is already in use.
	CreateEvent(ctx context.Context, event *domain.Event) error
	GetEvent(ctx context.Context, id string) (*domain.Event, error)
	GetEventByCode(ctx context.Context, code string) (*domain.Event, error)
	ListEventsByOrganizer(ctx context.Context, userID string) ([]domain.Event, error)
	// ListEventsByMember lists every event userID belongs to, organized ones included.
	ListEventsByMember(ctx context.Context, userID string) ([]domain.Event, error)
	// UpdateEvent runs fn with the loaded aggregate under the event's write
	// lock and commits if fn returns nil. It returns the reloaded event.
	UpdateEvent(ctx context.Context, id string, fn func(ev *domain.Event, tx EventTx) error) (*domain.Event, error)
	// DeleteEvent removes memberships, messages and tasks before the event itself.
	DeleteEvent(ctx context.Context, id string) error
}

type MessageRepository interface {
	CreateMessage(ctx context.Context, msg *domain.Message) error
	GetMessage(ctx context.Context, id string) (*domain.Message, error)
	ListMessages(ctx context.Context, eventID string) ([]domain.Message, error)
}
