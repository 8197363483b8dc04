package db

import (
	"time"

	"eventboard-backend/internal/core/domain"
)

// User is a registered account.
type User struct {
	ID           string    `gorm:"primaryKey;size:36"`
	Username     string    `gorm:"not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Event is the aggregate root row. Code is unique among existing events.
type Event struct {
	ID          string `gorm:"primaryKey;size:36"`
	Name        string `gorm:"not null"`
	Code        string `gorm:"uniqueIndex;size:6;not null"`
	OrganizerID string `gorm:"index;size:36;not null"`
	IsFinished  bool   `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Organizer User          `gorm:"foreignKey:OrganizerID"`
	Members   []EventMember `gorm:"foreignKey:EventID"`
	Tasks     []Task        `gorm:"foreignKey:EventID"`
}

// EventMember is the only record of the membership relation: it is read as
// Event.members from one side and as the user's joined events from the other.
type EventMember struct {
	EventID   string `gorm:"primaryKey;size:36"`
	UserID    string `gorm:"primaryKey;size:36;index"`
	Position  int    `gorm:"not null"`
	CreatedAt time.Time

	User User `gorm:"foreignKey:UserID"`
}

// Task is a board entry. Higher Position means newer.
type Task struct {
	ID           string `gorm:"primaryKey;size:36"`
	EventID      string `gorm:"index;size:36;not null"`
	Position     int64  `gorm:"not null"`
	Title        string `gorm:"not null"`
	Description  string
	Status       string `gorm:"size:16;not null;default:todo"`
	AssignedToID string `gorm:"size:36;not null"`
	CreatedByID  string `gorm:"size:36;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	AssignedTo User `gorm:"foreignKey:AssignedToID"`
	CreatedBy  User `gorm:"foreignKey:CreatedByID"`
}

// Message is a chat line, listed per event by creation time.
type Message struct {
	ID        string    `gorm:"primaryKey;size:36"`
	EventID   string    `gorm:"size:36;not null;index:idx_messages_event_created,priority:1"`
	SenderID  string    `gorm:"size:36;not null"`
	Text      string    `gorm:"size:500;not null"`
	CreatedAt time.Time `gorm:"index:idx_messages_event_created,priority:2"`

	Sender User `gorm:"foreignKey:SenderID"`
}

func (u User) toDomain() *domain.User {
	return &domain.User{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (u User) ref() domain.UserRef {
	return domain.UserRef{ID: u.ID, Username: u.Username, Email: u.Email}
}

func (e Event) toDomain() *domain.Event {
	ev := &domain.Event{
		ID:         e.ID,
		Name:       e.Name,
		Code:       e.Code,
		Organizer:  e.Organizer.ref(),
		Members:    make([]domain.UserRef, 0, len(e.Members)),
		Tasks:      make([]domain.Task, 0, len(e.Tasks)),
		IsFinished: e.IsFinished,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
	for _, m := range e.Members {
		ev.Members = append(ev.Members, m.User.ref())
	}
	for _, t := range e.Tasks {
		ev.Tasks = append(ev.Tasks, t.toDomain())
	}
	return ev
}

func (t Task) toDomain() domain.Task {
	return domain.Task{
		ID:          t.ID,
		EventID:     t.EventID,
		Title:       t.Title,
		Description: t.Description,
		Status:      domain.TaskStatus(t.Status),
		AssignedTo:  t.AssignedTo.ref(),
		CreatedBy:   t.CreatedBy.ref(),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (m Message) toDomain() domain.Message {
	return domain.Message{
		ID:        m.ID,
		EventID:   m.EventID,
		Sender:    m.Sender.ref(),
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
	}
}
