package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// MaxMessageLength is the chat message limit in characters.
const MaxMessageLength = 500

type Message struct {
	ID        string
	EventID   string
	Sender    UserRef
	Text      string
	CreatedAt time.Time
}

// NormalizeMessageText trims text and enforces the length bounds.
func NormalizeMessageText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrMessageEmpty
	}
	if utf8.RuneCountInString(text) > MaxMessageLength {
		return "", ErrMessageTooLong
	}
	return text, nil
}
