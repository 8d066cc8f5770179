package domain

import (
	"errors"
	"fmt"
)

// Domain-specific errors for due date input validation.
var (
	// ErrInvalidInput is the parent of every validation failure.
	ErrInvalidInput = errors.New("invalid input")

	// Submission errors
	ErrOutsideWorkingHours = fmt.Errorf("%w: submit date must be during working hours (9AM-5PM, Monday-Friday)", ErrInvalidInput)

	// Turnaround errors
	ErrNegativeTurnaround = fmt.Errorf("%w: turnaround time cannot be negative", ErrInvalidInput)
	ErrInvalidTurnaround  = fmt.Errorf("%w: turnaround time must be a finite number of hours within range", ErrInvalidInput)
)
