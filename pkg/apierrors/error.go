package apierrors

import (
	"fmt"

	"eventboard-backend/pkg/translator"
)

// JsonErr is the failure envelope: {"success": false, "error": "..."}.
type JsonErr struct {
	Success bool   `json:"success"`
	Message string `json:"error"`
	Code    int    `json:"-"`
}

func (e JsonErr) Error() string {
	return fmt.Sprintf("Code: %d, Message: %s", e.Code, e.Message)
}

// CreateError builds an envelope whose message is msgKey translated to lang.
func CreateError(code int, msgKey, fallback, lang string) JsonErr {
	return JsonErr{Success: false, Message: GetTransErrorMsg(msgKey, fallback, lang), Code: code}
}

// GetTransErrorMsg translates msgKey, returning fallback (or the key) when no
// translation exists.
func GetTransErrorMsg(msgKey, fallback, lang string) string {
	if fallback == "" {
		fallback = msgKey
	}
	return translator.Localize(lang, msgKey, fallback)
}
