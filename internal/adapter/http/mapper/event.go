package mapper

import (
	"time"

	"eventboard-backend/internal/adapter/http/dto"
	"eventboard-backend/internal/core/domain"
	"eventboard-backend/internal/core/ports"
)

func ToUserRef(user domain.UserRef) dto.UserRef {
	return dto.UserRef{ID: user.ID, Username: user.Username, Email: user.Email}
}

func ToUserRefs(users []domain.UserRef) []dto.UserRef {
	items := make([]dto.UserRef, 0, len(users))
	for _, user := range users {
		items = append(items, ToUserRef(user))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	return dto.TaskItem{
		ID:          task.ID,
		EventID:     task.EventID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		AssignedTo:  ToUserRef(task.AssignedTo),
		CreatedBy:   ToUserRef(task.CreatedBy),
		CreatedAt:   formatTime(task.CreatedAt),
		UpdatedAt:   formatTime(task.UpdatedAt),
	}
}

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToEventItem(ev domain.Event) dto.EventItem {
	return dto.EventItem{
		ID:         ev.ID,
		EventName:  ev.Name,
		EventCode:  ev.Code,
		Organizer:  ToUserRef(ev.Organizer),
		Members:    ToUserRefs(ev.Members),
		Tasks:      ToTaskItems(ev.Tasks),
		IsFinished: ev.IsFinished,
		CreatedAt:  formatTime(ev.CreatedAt),
		UpdatedAt:  formatTime(ev.UpdatedAt),
	}
}

func ToEventItems(events []domain.Event) []dto.EventItem {
	items := make([]dto.EventItem, 0, len(events))
	for _, ev := range events {
		items = append(items, ToEventItem(ev))
	}
	return items
}

// ToMessageItem omits the sender's email; chat only shows display names.
func ToMessageItem(msg domain.Message) dto.MessageItem {
	return dto.MessageItem{
		ID:        msg.ID,
		EventID:   msg.EventID,
		Sender:    dto.UserRef{ID: msg.Sender.ID, Username: msg.Sender.Username},
		Text:      msg.Text,
		CreatedAt: formatTime(msg.CreatedAt),
	}
}

func ToMessageItems(messages []domain.Message) []dto.MessageItem {
	items := make([]dto.MessageItem, 0, len(messages))
	for _, msg := range messages {
		items = append(items, ToMessageItem(msg))
	}
	return items
}

// RealtimePayload gives published notifications the same JSON shape as the
// HTTP responses.
func RealtimePayload(topic string, payload any) any {
	if topic == ports.TopicEventFinished {
		return nil
	}

	switch v := payload.(type) {
	case []domain.Task:
		return ToTaskItems(v)
	case []domain.UserRef:
		return ToUserRefs(v)
	case *domain.Message:
		if v == nil {
			return nil
		}
		return ToMessageItem(*v)
	case domain.Message:
		return ToMessageItem(v)
	default:
		return payload
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
