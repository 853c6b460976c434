package schedule

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTimeRange       = errors.New("end time must be strictly after start time")
	ErrInstructorNotFound     = errors.New("instructor not found")
	ErrInstructorNotQualified = errors.New("instructor has no qualified categories")
	ErrStudentRequired        = errors.New("student is required")
	ErrStudentNotFound        = errors.New("student not found")
	ErrNoStudents             = errors.New("exam requires at least one student")
	ErrTooManyStudents        = errors.New("too many students for one exam")
	ErrNoCategoryAvailable    = errors.New("no active licence category configured")
	ErrResourceConflict       = errors.New("instructor or vehicle already booked in this time range")
	ErrUnknownView            = errors.New("unknown lesson view")
	ErrInvalidDateRange       = errors.New("invalid date range")
)

// ValidationError ties a rejection to the request field that caused it.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}
