package util

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error into the fixed taxonomy every handler maps through.
// One kind, one status code; handlers never pick status codes ad hoc.
type Kind int

const (
	KindValidation Kind = iota
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindInternal
)

var kindStatus = map[Kind]int{
	KindValidation:   http.StatusBadRequest,
	KindUnauthorized: http.StatusUnauthorized,
	KindForbidden:    http.StatusForbidden,
	KindNotFound:     http.StatusNotFound,
	KindConflict:     http.StatusConflict,
	KindInternal:     http.StatusInternalServerError,
}

type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func E(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

// StatusOf resolves any error to an HTTP status. Unclassified errors are
// internal by definition.
func StatusOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		if status, ok := kindStatus[appErr.Kind]; ok {
			return status
		}
	}
	return http.StatusInternalServerError
}

// KindOf returns the taxonomy kind of err, KindInternal when unclassified.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

var (
	ErrInvalidCredentials = E(KindUnauthorized, "invalid credentials")
	ErrEmailRegistered    = E(KindConflict, "email is already registered")
	ErrSessionExpired     = E(KindUnauthorized, "session expired")
	ErrSessionNotFound    = E(KindUnauthorized, "session not found")
	ErrAttemptNotOwned    = E(KindForbidden, "attempt does not belong to the authenticated user")
	ErrAttemptNotFound    = E(KindNotFound, "attempt not found")
	ErrQuizAlreadyTaken   = E(KindConflict, "final quiz already completed")
	ErrNoActiveForm       = E(KindNotFound, "no active reflective form for this pattern")
	ErrPatternNotFound    = E(KindNotFound, "design pattern not found")
	ErrResetTokenInvalid  = E(KindValidation, "invalid or expired reset token")
)
