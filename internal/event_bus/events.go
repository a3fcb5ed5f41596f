package event_bus

import "time"

const (
	// MeetingScheduledEvent is published after a calendar event has been
	// written and invitations were requested.
	MeetingScheduledEvent EventType = "meeting.scheduled"
)

type MeetingScheduled struct {
	EventUID  string
	Summary   string
	StartTime time.Time
	EndTime   time.Time
	Attendees []string
}
