package domain

import "errors"

var (
	// Auth
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailNotConfirmed  = errors.New("email not confirmed")

	// Generic lookup and access
	ErrNotFound  = errors.New("record not found")
	ErrForbidden = errors.New("access denied")

	// Timeline
	ErrInvalidStatus = errors.New("invalid status")

	// Attachment validation, checked before any storage call
	ErrInvalidFileType = errors.New("file type not allowed")
	ErrFileTooLarge    = errors.New("file exceeds maximum size")
	ErrInvalidURL      = errors.New("invalid url")
)
