package services

import "errors"

// Service errors, mapped to HTTP statuses at the controller boundary.
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrLessonNotFound   = errors.New("lesson not found")
	ErrAlreadyAttempted = errors.New("lesson already attempted")
	ErrAlreadyPlayed    = errors.New("game already played")
)
