package dto

// UserRef is the public identity of a user. The `_id` field name is what
// existing clients read.
type UserRef struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

type TaskItem struct {
	ID          string  `json:"_id"`
	EventID     string  `json:"eventId"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	AssignedTo  UserRef `json:"assignedTo"`
	CreatedBy   UserRef `json:"createdBy"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type EventItem struct {
	ID         string     `json:"_id"`
	EventName  string     `json:"eventName"`
	EventCode  string     `json:"eventCode"`
	Organizer  UserRef    `json:"organizer"`
	Members    []UserRef  `json:"members"`
	Tasks      []TaskItem `json:"tasks"`
	IsFinished bool       `json:"isFinished"`
	CreatedAt  string     `json:"createdAt"`
	UpdatedAt  string     `json:"updatedAt"`
}

type MessageItem struct {
	ID        string  `json:"_id"`
	EventID   string  `json:"eventId"`
	Sender    UserRef `json:"sender"`
	Text      string  `json:"text"`
	CreatedAt string  `json:"createdAt"`
}

type CreateEventRequest struct {
	EventName string `json:"eventName" binding:"max=200"`
}

type JoinEventRequest struct {
	EventCode string `json:"eventCode" binding:"required,max=32"`
}

type CreateTaskRequest struct {
	Title       string `json:"title" binding:"max=200"`
	Description string `json:"description" binding:"max=2000"`
	AssignedTo  string `json:"assignedTo" binding:"max=64"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type PostMessageRequest struct {
	Text string `json:"text"`
}

type CreateEventResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	EventCode string    `json:"eventCode"`
	Event     EventItem `json:"event"`
}

type EventResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message,omitempty"`
	Event   EventItem `json:"event"`
}

type UserEventsResponse struct {
	Success         bool        `json:"success"`
	OrganizerEvents []EventItem `json:"organizerEvents"`
	MemberEvents    []EventItem `json:"memberEvents"`
}

type TasksResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Tasks   []TaskItem `json:"tasks"`
}

type MessagesResponse struct {
	Success  bool          `json:"success"`
	Messages []MessageItem `json:"messages"`
}

type PostMessageResponse struct {
	Success bool        `json:"success"`
	Message MessageItem `json:"message"`
}

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
