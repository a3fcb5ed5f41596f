package scheduling

import "errors"

var (
	// ErrSchedulingUnavailable means the free/busy query failed; nothing
	// downstream of it runs.
	ErrSchedulingUnavailable = errors.New("failed to get busy times")

	// ErrInterpretationFailed means the meeting command could not be turned
	// into a structured request, either because the completion call failed or
	// because its output was not the expected JSON shape.
	ErrInterpretationFailed = errors.New("failed to parse meeting command")

	// ErrNoAvailableSlot means the availability scan produced no candidates.
	// This is a user-visible condition, not a system fault.
	ErrNoAvailableSlot = errors.New("no available time slots found")

	// ErrEventWriteFailed means the calendar write failed after a slot was
	// already chosen. The provider's message is attached for diagnostics.
	ErrEventWriteFailed = errors.New("failed to create calendar event")
)
