// Package apperrors 定義服務層回傳的錯誤種類，由 handler 統一轉換為 HTTP 狀態碼
package apperrors

import "errors"

var (
	ErrValidation           = errors.New("validation failed")
	ErrConflict             = errors.New("conflict")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrProfileMissing       = errors.New("profile missing")
	ErrNotFound             = errors.New("not found")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrTransitionNotAllowed = errors.New("status transition not allowed")
)

// Error 帶有對外訊息的錯誤，Kind 為上方其中一個 sentinel
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Kind != nil {
		return e.Kind.Error()
	}
	return "unknown error"
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func New(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Validation(message string) error { return New(ErrValidation, message) }

func Conflict(message string) error { return New(ErrConflict, message) }

func NotFound(message string) error { return New(ErrNotFound, message) }

// IsClientError 回報 err 是否屬於可直接回給呼叫端的錯誤
func IsClientError(err error) bool {
	for _, kind := range []error{
		ErrValidation,
		ErrConflict,
		ErrInvalidCredentials,
		ErrProfileMissing,
		ErrInvalidStatus,
		ErrTransitionNotAllowed,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
