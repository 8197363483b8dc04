package db

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"eventboard-backend/internal/core/domain"
	"eventboard-backend/internal/core/ports"
)

// eventTx writes to one event inside the transaction opened by UpdateEvent.
// Every statement is keyed by the event id as well as the row id.
type eventTx struct {
	tx      *gorm.DB
	eventID string
}

func (t *eventTx) InsertTask(task *domain.Task) error {
	var top int64
	err := t.tx.Model(&Task{}).
		Where("event_id = ?", t.eventID).
		Select("COALESCE(MAX(position), 0)").
		Scan(&top).Error
	if err != nil {
		return fmt.Errorf("failed to read task position: %w", err)
	}

	row := Task{
		ID:           uuid.NewString(),
		EventID:      t.eventID,
		Position:     top + 1,
		Title:        task.Title,
		Description:  task.Description,
		Status:       string(task.Status),
		AssignedToID: task.AssignedTo.ID,
		CreatedByID:  task.CreatedBy.ID,
	}
	if err := t.tx.Omit(clause.Associations).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to insert task: %w", err)
	}

	task.ID = row.ID
	task.EventID = row.EventID
	task.CreatedAt = row.CreatedAt
	task.UpdatedAt = row.UpdatedAt
	return nil
}

func (t *eventTx) UpdateTaskStatus(taskID string, status domain.TaskStatus) error {
	res := t.tx.Model(&Task{}).
		Where("id = ? AND event_id = ?", taskID, t.eventID).
		Update("status", string(status))
	if res.Error != nil {
		return fmt.Errorf("failed to update task status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (t *eventTx) DeleteTask(taskID string) error {
	res := t.tx.Where("id = ? AND event_id = ?", taskID, t.eventID).Delete(&Task{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (t *eventTx) AddMember(userID string) error {
	var count int64
	if err := t.tx.Model(&EventMember{}).Where("event_id = ?", t.eventID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count members: %w", err)
	}

	member := EventMember{EventID: t.eventID, UserID: userID, Position: int(count) + 1}
	if err := t.tx.Omit(clause.Associations).Create(&member).Error; err != nil {
		return fmt.Errorf("failed to add member: %w", err)
	}
	return nil
}

func (t *eventTx) MarkFinished() error {
	err := t.tx.Model(&Event{}).Where("id = ?", t.eventID).Update("is_finished", true).Error
	if err != nil {
		return fmt.Errorf("failed to finish event: %w", err)
	}
	return nil
}

var _ ports.EventTx = (*eventTx)(nil)
