package scheduling

import (
	"context"
	"time"
)

// slotStep is the fixed granularity at which candidate slots are generated.
const slotStep = 30 * time.Minute

// slotDateLayout mirrors the calendar-day label attached to every slot.
const slotDateLayout = "Mon Jan 02 2006"

// BusyInterval is a half-open [Start, End) range during which one participant
// is unavailable. Intervals are read-only and scoped to a single availability
// query.
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

// AvailableSlot is a candidate meeting time of the requested duration that
// does not overlap any participant's busy intervals.
type AvailableSlot struct {
	StartTime time.Time
	EndTime   time.Time
	Date      string
}

// MeetingRequest is the structured form of a natural-language scheduling
// command. Participants are kept in the order the model returned them and are
// not validated beyond JSON shape.
type MeetingRequest struct {
	MeetingType        string   `json:"meetingType"`
	Participants       []string `json:"participants"`
	PreferredDateRange string   `json:"preferredDateRange"`
	Description        string   `json:"description,omitempty"`
}

// EventDraft is what gets written to the calendar provider.
type EventDraft struct {
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	TimeZone    string
	Attendees   []string
}

// Event is the provider's echo of a created or fetched calendar event.
type Event struct {
	UID         string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Attendees   []string
}

// WorkingHours is the local-time window within which meeting slots are valid.
type WorkingHours struct {
	Start int
	End   int
}

// CalendarProvider is the calendar backend the scheduling core reads busy
// intervals from and writes events through. The Google implementation lives in
// pkg/google; tests use the stub in this package.
type CalendarProvider interface {
	// FreeBusy returns, per participant, the ordered busy intervals between
	// timeMin and timeMax.
	FreeBusy(ctx context.Context, participants []string, timeMin time.Time, timeMax time.Time) (map[string][]BusyInterval, error)
	// InsertEvent writes one event to the primary calendar and requests that
	// invitations are sent to all attendees.
	InsertEvent(ctx context.Context, draft EventDraft) (*Event, error)
	GetEvent(ctx context.Context, eventUID string) (*Event, error)
	PatchEventDescription(ctx context.Context, eventUID string, description string) error
	UpcomingEvents(ctx context.Context, maxResults int64) ([]Event, error)
}
