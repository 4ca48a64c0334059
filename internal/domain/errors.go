package domain

import "errors"

var (
	ErrNotFound          = errors.New("submission not found")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidTransition = errors.New("status transition not allowed")
)
