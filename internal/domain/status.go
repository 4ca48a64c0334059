package domain

import (
	"fmt"
	"slices"
)

// Status is the underwriting state of a submission.
type Status string

const (
	StatusPending      Status = "pending"
	StatusApproved     Status = "approved"
	StatusDeclined     Status = "declined"
	StatusManualReview Status = "manual_review"
)

// Statuses returns every known submission status.
func Statuses() []Status {
	return []Status{StatusPending, StatusApproved, StatusDeclined, StatusManualReview}
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	return slices.Contains(Statuses(), s)
}

// ParseStatus converts a raw string to a Status.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return s, nil
}

// approved and declined are terminal.
var transitions = map[Status][]Status{
	StatusPending:      {StatusApproved, StatusDeclined, StatusManualReview},
	StatusManualReview: {StatusApproved, StatusDeclined, StatusPending},
}

// CanTransition reports whether a submission in state from may move to to.
// An empty from means the current state is unknown and only to is checked.
func CanTransition(from, to Status) bool {
	if !to.Valid() {
		return false
	}
	if from == "" || from == to {
		return true
	}
	return slices.Contains(transitions[from], to)
}

// CheckTransition is CanTransition with a descriptive error.
func CheckTransition(from, to Status) error {
	if !to.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, to)
	}
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}
