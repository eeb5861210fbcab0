package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrRejectedFormat     = errors.New("file type not allowed")
	ErrNotFound           = errors.New("record not found")
	ErrExternalService    = errors.New("external service error")

	ErrQuestionRequired   = errors.New("question is required")
	ErrTutorNotConfigured = errors.New("AI tutor is not configured")
)
