package handlers_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"eventboard-backend/internal/core/domain"
	"eventboard-backend/internal/core/ports"
)

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) Signup(ctx context.Context, username, email, password string) (*domain.User, error) {
	args := m.Called(ctx, username, email, password)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *authServiceMock) Login(ctx context.Context, email, password string) (*ports.Session, error) {
	args := m.Called(ctx, email, password)
	session, _ := args.Get(0).(*ports.Session)
	return session, args.Error(1)
}

func (m *authServiceMock) Authenticate(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

func (m *authServiceMock) ResetPassword(ctx context.Context, email, newPassword string) error {
	return m.Called(ctx, email, newPassword).Error(0)
}

type eventServiceMock struct {
	mock.Mock
}

func (m *eventServiceMock) CreateEvent(ctx context.Context, organizerID, name string) (*domain.Event, error) {
	args := m.Called(ctx, organizerID, name)
	ev, _ := args.Get(0).(*domain.Event)
	return ev, args.Error(1)
}

func (m *eventServiceMock) DeleteEvent(ctx context.Context, eventID, actorID string) error {
	return m.Called(ctx, eventID, actorID).Error(0)
}

func (m *eventServiceMock) GetEvent(ctx context.Context, eventID, actorID string) (*domain.Event, error) {
	args := m.Called(ctx, eventID, actorID)
	ev, _ := args.Get(0).(*domain.Event)
	return ev, args.Error(1)
}

func (m *eventServiceMock) ListForUser(ctx context.Context, userID string) ([]domain.Event, []domain.Event, error) {
	args := m.Called(ctx, userID)
	organized, _ := args.Get(0).([]domain.Event)
	joined, _ := args.Get(1).([]domain.Event)
	return organized, joined, args.Error(2)
}

func (m *eventServiceMock) FinishEvent(ctx context.Context, eventID, actorID string) error {
	return m.Called(ctx, eventID, actorID).Error(0)
}

func (m *eventServiceMock) JoinEvent(ctx context.Context, code, actorID string) (*domain.Event, bool, error) {
	args := m.Called(ctx, code, actorID)
	ev, _ := args.Get(0).(*domain.Event)
	return ev, args.Bool(1), args.Error(2)
}

func (m *eventServiceMock) IsMember(ctx context.Context, eventID, userID string) (bool, error) {
	args := m.Called(ctx, eventID, userID)
	return args.Bool(0), args.Error(1)
}

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) CreateTask(ctx context.Context, eventID, actorID string, in domain.CreateTaskInput) ([]domain.Task, error) {
	args := m.Called(ctx, eventID, actorID, in)
	tasks, _ := args.Get(0).([]domain.Task)
	return tasks, args.Error(1)
}

func (m *taskServiceMock) UpdateTaskStatus(ctx context.Context, eventID, taskID, actorID, status string) ([]domain.Task, error) {
	args := m.Called(ctx, eventID, taskID, actorID, status)
	tasks, _ := args.Get(0).([]domain.Task)
	return tasks, args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, eventID, taskID, actorID string) ([]domain.Task, error) {
	args := m.Called(ctx, eventID, taskID, actorID)
	tasks, _ := args.Get(0).([]domain.Task)
	return tasks, args.Error(1)
}

type chatServiceMock struct {
	mock.Mock
}

func (m *chatServiceMock) ListMessages(ctx context.Context, eventID, actorID string) ([]domain.Message, error) {
	args := m.Called(ctx, eventID, actorID)
	messages, _ := args.Get(0).([]domain.Message)
	return messages, args.Error(1)
}

func (m *chatServiceMock) PostMessage(ctx context.Context, eventID, actorID, text string) (*domain.Message, error) {
	args := m.Called(ctx, eventID, actorID, text)
	msg, _ := args.Get(0).(*domain.Message)
	return msg, args.Error(1)
}
