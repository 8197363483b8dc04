package service_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"

	"eventboard-backend/internal/adapter/db"
	"eventboard-backend/internal/app/service"
	"eventboard-backend/internal/auth"
	"eventboard-backend/internal/core/domain"
)

type published struct {
	EventID string
	Topic   string
	Payload any
}

type recordingPublisher struct {
	mu    sync.Mutex
	calls []published
}

func (p *recordingPublisher) Publish(eventID, topic string, payload any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, published{EventID: eventID, Topic: topic, Payload: payload})
}

func (p *recordingPublisher) all() []published {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]published(nil), p.calls...)
}

func (p *recordingPublisher) last(t *testing.T) published {
	t.Helper()
	calls := p.all()
	require.NotEmpty(t, calls)
	return calls[len(calls)-1]
}

func (p *recordingPublisher) reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = nil
}

type testEnv struct {
	users    *db.UserRepository
	events   *db.EventRepository
	messages *db.MessageRepository

	auth   *service.AuthService
	event  *service.EventService
	tasks  *service.TaskService
	chat   *service.ChatService
	pub    *recordingPublisher
	tokens *auth.JWTManager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	gdb, err := db.Open(sqlite.Open(dsn))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(gdb) })

	env := &testEnv{
		users:    db.NewUserRepository(gdb),
		events:   db.NewEventRepository(gdb),
		messages: db.NewMessageRepository(gdb),
		pub:      &recordingPublisher{},
		tokens:   auth.NewJWTManager("test-secret", time.Hour),
	}
	env.auth = service.NewAuthService(env.users, env.tokens)
	env.event = service.NewEventService(env.events, env.users, env.pub)
	env.tasks = service.NewTaskService(env.events, env.pub)
	env.chat = service.NewChatService(env.events, env.users, env.messages, env.pub)
	return env
}

// seedUser stores a user directly, skipping bcrypt.
func (e *testEnv) seedUser(t *testing.T, name string) domain.User {
	t.Helper()
	user := domain.User{Username: name, Email: name + "@example.com", PasswordHash: "unused"}
	require.NoError(t, e.users.CreateUser(context.Background(), &user))
	return user
}

// sprint creates "Sprint" organized by org with mem joined, and clears published notifications.
func (e *testEnv) sprint(t *testing.T, org, mem domain.User) *domain.Event {
	t.Helper()
	ctx := context.Background()
	ev, err := e.event.CreateEvent(ctx, org.ID, "Sprint")
	require.NoError(t, err)
	ev, _, err = e.event.JoinEvent(ctx, ev.Code, mem.ID)
	require.NoError(t, err)
	e.pub.reset()
	return ev
}
