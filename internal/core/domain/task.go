package domain

import (
	"strings"
	"time"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// ParseTaskStatus validates a client supplied status.
func ParseTaskStatus(s string) (TaskStatus, error) {
	switch status := TaskStatus(strings.TrimSpace(s)); status {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusCompleted:
		return status, nil
	}
	return "", ErrInvalidStatus
}

type Task struct {
	ID          string
	EventID     string
	Title       string
	Description string
	Status      TaskStatus
	AssignedTo  UserRef
	CreatedBy   UserRef
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateTaskInput struct {
	Title       string
	Description string
	// AssignedTo is optional; empty means the actor.
	AssignedTo string
}

// AddTask applies the task creation rules and inserts the new task at the
// front of the board. The returned task has no ID yet.
//
// Organizers may assign any member; other members only themselves.
// Permission checks run before the title is validated.
func (e *Event) AddTask(actorID string, in CreateTaskInput) (*Task, error) {
	if !e.HasMember(actorID) {
		return nil, ErrNotMember
	}
	if e.IsFinished {
		return nil, ErrEventFinished
	}

	assignee := strings.TrimSpace(in.AssignedTo)
	if assignee == "" {
		assignee = actorID
	}
	if !e.IsOrganizer(actorID) && assignee != actorID {
		return nil, ErrAssignSelfOnly
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, ErrTaskTitleEmpty
	}

	var assigned, creator UserRef
	for _, m := range e.Members {
		if m.ID == assignee {
			assigned = m
		}
		if m.ID == actorID {
			creator = m
		}
	}
	if assigned.ID == "" {
		return nil, ErrAssigneeNotMember
	}

	e.Tasks = append([]Task{{
		EventID:     e.ID,
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Status:      TaskStatusTodo,
		AssignedTo:  assigned,
		CreatedBy:   creator,
	}}, e.Tasks...)
	return &e.Tasks[0], nil
}

// SetTaskStatus moves a task to status. Only the assignee may do so; the
// organizer has no extra privilege here. Any transition between the three
// states is allowed.
func (e *Event) SetTaskStatus(actorID, taskID string, status TaskStatus) (*Task, error) {
	task, ok := e.Task(taskID)
	if !ok {
		return nil, ErrTaskNotFound
	}
	if task.AssignedTo.ID != actorID {
		return nil, ErrNotAssignee
	}
	if e.IsFinished {
		return nil, ErrEventFinished
	}
	task.Status = status
	return task, nil
}

// RemoveTask deletes a task from the board. Organizer only.
func (e *Event) RemoveTask(actorID, taskID string) error {
	if !e.IsOrganizer(actorID) {
		return ErrTaskDeleteForbidden
	}
	if e.IsFinished {
		return ErrEventFinished
	}
	for i := range e.Tasks {
		if e.Tasks[i].ID == taskID {
			e.Tasks = append(e.Tasks[:i], e.Tasks[i+1:]...)
			return nil
		}
	}
	return ErrTaskNotFound
}
