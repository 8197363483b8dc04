package ports

import (
	"context"
	"time"

	"eventboard-backend/internal/core/domain"
)

// Realtime event names published to an event's room.
const (
	TopicTasksUpdated   = "tasks-updated"
	TopicMembersUpdated = "members-updated"
	TopicEventFinished  = "event-finished"
	TopicNewMessage     = "new-message"
)

// Publisher fans a notification out to every subscriber of an event room.
// Delivery is best-effort; publishing to an empty room is a no-op.
type Publisher interface {
	Publish(eventID, topic string, payload any)
}

// Session is the result of a successful login.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      domain.User
}

type AuthService interface {
	Signup(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*Session, error)
	// Authenticate is the identity gate: it resolves a bearer token to a user id.
	Authenticate(token string) (string, error)
	ResetPassword(ctx context.Context, email, newPassword string) error
}

type EventService interface {
	CreateEvent(ctx context.Context, organizerID, name string) (*domain.Event, error)
	DeleteEvent(ctx context.Context, eventID, actorID string) error
	GetEvent(ctx context.Context, eventID, actorID string) (*domain.Event, error)
	ListForUser(ctx context.Context, userID string) (organized, joined []domain.Event, err error)
	FinishEvent(ctx context.Context, eventID, actorID string) error
	// JoinEvent reports whether the actor was newly added.
	JoinEvent(ctx context.Context, code, actorID string) (*domain.Event, bool, error)
	IsMember(ctx context.Context, eventID, userID string) (bool, error)
}

type TaskService interface {
	CreateTask(ctx context.Context, eventID, actorID string, in domain.CreateTaskInput) ([]domain.Task, error)
	UpdateTaskStatus(ctx context.Context, eventID, taskID, actorID, status string) ([]domain.Task, error)
	DeleteTask(ctx context.Context, eventID, taskID, actorID string) ([]domain.Task, error)
}

type ChatService interface {
	ListMessages(ctx context.Context, eventID, actorID string) ([]domain.Message, error)
	PostMessage(ctx context.Context, eventID, actorID, text string) (*domain.Message, error)
}
