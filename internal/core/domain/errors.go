package domain

import "errors"

// Kind classifies a domain failure independently of the transport.
type Kind int

const (
	KindInternal Kind = iota
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindInvalid
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindUnauthenticated:
		return "unauthenticated"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindInvalid:
		return "invalid"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Error is a classified failure. Key is the translation message id used by the
// HTTP layer, Msg the English fallback.
type Error struct {
	Kind Kind
	Key  string
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func newError(kind Kind, key, msg string) *Error {
	return &Error{Kind: kind, Key: key, Msg: msg}
}

var (
	ErrMissingToken = newError(KindUnauthenticated, "missingToken", "No token provided")
	ErrInvalidToken = newError(KindUnauthenticated, "invalidToken", "Invalid token")

	ErrUserNotFound       = newError(KindNotFound, "userNotFound", "User not found")
	ErrEmailNotFound      = newError(KindNotFound, "emailNotFound", "Email not found")
	ErrEmailTaken         = newError(KindConflict, "userExists", "User already exists")
	ErrInvalidCredentials = newError(KindUnauthenticated, "incorrectPassword", "Incorrect password")
	ErrInvalidSignup      = newError(KindInvalid, "invalidSignup", "Username, email and password are required")
	ErrWeakPassword       = newError(KindInvalid, "weakPassword", "Password must be at least 6 characters")

	ErrEventNotFound   = newError(KindNotFound, "eventNotFound", "Event not found")
	ErrInvalidCode     = newError(KindNotFound, "invalidEventCode", "Invalid event code")
	ErrEventNameEmpty  = newError(KindInvalid, "eventNameRequired", "Event name is required")
	ErrCodeTaken       = newError(KindConflict, "eventCodeTaken", "Event code already in use")
	ErrCodeExhausted   = newError(KindInternal, "eventCodeExhausted", "Could not allocate a unique event code")
	ErrNotOrganizer    = newError(KindForbidden, "notOrganizer", "Only organizer can perform this action")
	ErrDeleteForbidden = newError(KindForbidden, "onlyOrganizerDelete", "Only organizer can delete event")
	ErrFinishForbidden = newError(KindForbidden, "onlyOrganizerFinish", "Only organizer can finish event")
	ErrEventFinished   = newError(KindConflict, "eventFinished", "Event is already finished")

	ErrTaskNotFound        = newError(KindNotFound, "taskNotFound", "Task not found")
	ErrTaskTitleEmpty      = newError(KindInvalid, "taskTitleRequired", "Task title is required")
	ErrNotMember           = newError(KindForbidden, "notMember", "You must be a member of this event to create tasks")
	ErrAssignSelfOnly      = newError(KindForbidden, "assignSelfOnly", "Members can only create tasks for themselves")
	ErrAssigneeNotMember   = newError(KindInvalid, "assigneeNotMember", "Assigned user is not a member of this event")
	ErrNotAssignee         = newError(KindForbidden, "onlyAssignee", "Only assigned member can update status")
	ErrTaskDeleteForbidden = newError(KindForbidden, "onlyOrganizerDeleteTask", "Only organizer can delete tasks")
	ErrInvalidStatus       = newError(KindInvalid, "invalidStatus", "Status must be one of todo, in-progress, completed")

	ErrMessageEmpty   = newError(KindInvalid, "messageEmpty", "Message text is required")
	ErrMessageTooLong = newError(KindInvalid, "messageTooLong", "Message text must be at most 500 characters")
	ErrRoomForbidden  = newError(KindForbidden, "roomForbidden", "Not a member of this event")
)

// KindOf returns the kind of the first *Error in err's chain, KindInternal otherwise.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// AsError returns the first *Error in err's chain.
func AsError(err error) (*Error, bool) {
	var de *Error
	ok := errors.As(err, &de)
	return de, ok
}
