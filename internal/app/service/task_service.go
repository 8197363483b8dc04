package service

import (
	"context"

	"go.uber.org/zap"

	"eventboard-backend/internal/core/domain"
	"eventboard-backend/internal/core/ports"
)

// TaskService mutates an event's task board. Every change runs under the
// event's write lock and publishes the whole ordered board afterwards.
type TaskService struct {
	events    ports.EventRepository
	publisher ports.Publisher
}

// NewTaskService panics when publisher is nil.
func NewTaskService(events ports.EventRepository, publisher ports.Publisher) *TaskService {
	if publisher == nil {
		panic("service: TaskService requires a publisher")
	}
	return &TaskService{events: events, publisher: publisher}
}

func (s *TaskService) CreateTask(ctx context.Context, eventID, actorID string, in domain.CreateTaskInput) ([]domain.Task, error) {
	return s.mutate(ctx, eventID, func(ev *domain.Event, tx ports.EventTx) error {
		task, err := ev.AddTask(actorID, in)
		if err != nil {
			return err
		}
		return tx.InsertTask(task)
	})
}

func (s *TaskService) UpdateTaskStatus(ctx context.Context, eventID, taskID, actorID, status string) ([]domain.Task, error) {
	next, err := domain.ParseTaskStatus(status)
	if err != nil {
		return nil, err
	}

	return s.mutate(ctx, eventID, func(ev *domain.Event, tx ports.EventTx) error {
		task, err := ev.SetTaskStatus(actorID, taskID, next)
		if err != nil {
			return err
		}
		return tx.UpdateTaskStatus(task.ID, next)
	})
}

func (s *TaskService) DeleteTask(ctx context.Context, eventID, taskID, actorID string) ([]domain.Task, error) {
	return s.mutate(ctx, eventID, func(ev *domain.Event, tx ports.EventTx) error {
		if err := ev.RemoveTask(actorID, taskID); err != nil {
			return err
		}
		return tx.DeleteTask(taskID)
	})
}

func (s *TaskService) mutate(ctx context.Context, eventID string, fn func(*domain.Event, ports.EventTx) error) ([]domain.Task, error) {
	updated, err := s.events.UpdateEvent(ctx, eventID, fn)
	if err != nil {
		if domain.KindOf(err) == domain.KindInternal {
			zap.L().Error("task update failed", zap.String("event_id", eventID), zap.Error(err))
		}
		return nil, err
	}

	s.publisher.Publish(eventID, ports.TopicTasksUpdated, updated.Tasks)
	return updated.Tasks, nil
}

var _ ports.TaskService = (*TaskService)(nil)
