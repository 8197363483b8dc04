package domain

import (
	"strings"
	"time"
)

// Event is the aggregate root: membership, task board and the finished flag.
// Tasks are kept newest first.
type Event struct {
	ID         string
	Name       string
	Code       string
	Organizer  UserRef
	Members    []UserRef
	Tasks      []Task
	IsFinished bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CanonicalCode normalises a user-typed join code.
func CanonicalCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (e *Event) IsOrganizer(userID string) bool {
	return userID != "" && e.Organizer.ID == userID
}

func (e *Event) HasMember(userID string) bool {
	for _, m := range e.Members {
		if m.ID == userID {
			return true
		}
	}
	return false
}

// Task returns the task with the given id.
func (e *Event) Task(taskID string) (*Task, bool) {
	for i := range e.Tasks {
		if e.Tasks[i].ID == taskID {
			return &e.Tasks[i], true
		}
	}
	return nil, false
}

// AddMember adds user to the member set. It reports false without error
// when the user already is a member, so joining stays idempotent even on a
// finished event.
func (e *Event) AddMember(user UserRef) (bool, error) {
	if e.HasMember(user.ID) {
		return false, nil
	}
	if e.IsFinished {
		return false, ErrEventFinished
	}
	e.Members = append(e.Members, user)
	return true, nil
}

// Finish marks the event finished. Finishing twice is not an error; the
// returned bool reports whether the flag changed.
func (e *Event) Finish(actorID string) (bool, error) {
	if !e.IsOrganizer(actorID) {
		return false, ErrFinishForbidden
	}
	if e.IsFinished {
		return false, nil
	}
	e.IsFinished = true
	return true, nil
}

// CanDelete checks that actorID may delete the event.
func (e *Event) CanDelete(actorID string) error {
	if !e.IsOrganizer(actorID) {
		return ErrDeleteForbidden
	}
	return nil
}

// OrganizedBy splits events into those organized by userID and the rest.
func OrganizedBy(events []Event, userID string) (organized, joined []Event) {
	organized = make([]Event, 0, len(events))
	joined = make([]Event, 0, len(events))
	for _, ev := range events {
		if ev.Organizer.ID == userID {
			organized = append(organized, ev)
			continue
		}
		joined = append(joined, ev)
	}
	return organized, joined
}
