package scheduling

import (
	"fmt"

	"serenibook/services/availability"
)

// ScheduleError is a typed service-level failure.
type ScheduleError struct {
	Code    string
	Message string
}

func (e *ScheduleError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewScheduleError(code, msg string) error {
	return &ScheduleError{Code: code, Message: msg}
}

// ConflictError is returned when a booking or session cannot be created
// because it overlaps existing commitments. It carries the full conflict list
// so the handler can show the user every clash.
type ConflictError struct {
	Result availability.ConflictResult
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("scheduleConflict: %d overlapping commitment(s)", len(e.Result.Conflicts))
}
