package domain

import "time"

// User is a registered account. PasswordHash never leaves the auth layer.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Ref returns the display form of the user.
func (u User) Ref() UserRef {
	return UserRef{ID: u.ID, Username: u.Username, Email: u.Email}
}

// UserRef is the display-friendly identity embedded in events, tasks and messages.
type UserRef struct {
	ID       string
	Username string
	Email    string
}
