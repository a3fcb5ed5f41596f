package scheduling

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/workspaceai/workspaceai/internal/config"
	"github.com/workspaceai/workspaceai/internal/event_bus"
	"github.com/workspaceai/workspaceai/internal/utils"
	"github.com/workspaceai/workspaceai/pkg/user"
)

const interviewDurationMinutes = 90

type Service interface {
	GetAvailableSlots(ctx context.Context, participants []string, dateRange string, durationMinutes int) ([]AvailableSlot, error)
	ScheduleMeeting(ctx context.Context, command string) (*Event, error)
	CreateSimpleEvent(ctx context.Context, draft EventDraft) (*Event, error)
	BookInterview(ctx context.Context, candidateName string, interviewerEmail string, dateRange string) (*Event, error)
	UpcomingEvents(ctx context.Context, maxResults int64) ([]Event, error)
}

type ServiceImpl struct {
	calendar    CalendarProvider
	interpreter Interpreter
	users       user.Provider
	clock       utils.Clock
	bus         *event_bus.EventBus
	cfg         config.Scheduling
}

func NewService(calendar CalendarProvider, interpreter Interpreter, users user.Provider,
	clock utils.Clock, bus *event_bus.EventBus, cfg config.Scheduling) *ServiceImpl {
	return &ServiceImpl{
		calendar:    calendar,
		interpreter: interpreter,
		users:       users,
		clock:       clock,
		bus:         bus,
		cfg:         cfg,
	}
}

// GetAvailableSlots resolves the date-range phrase, queries free/busy once for
// all participants, and scans the range for conflict-free slots of the
// requested duration. A zero or negative duration falls back to the configured
// default.
func (s *ServiceImpl) GetAvailableSlots(ctx context.Context, participants []string, dateRange string,
	durationMinutes int) ([]AvailableSlot, error) {

	if len(participants) == 0 {
		return nil, fmt.Errorf("at least one participant is required")
	}
	if durationMinutes <= 0 {
		durationMinutes = s.cfg.DefaultDurationMinutes
	}

	loc := s.userLocation(ctx)
	startDate, endDate := ResolveDateRange(dateRange, s.clock.Now().In(loc))

	busyTimes, err := s.calendar.FreeBusy(ctx, participants, startDate, endDate)
	if err != nil {
		log.Errorf("free/busy query failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrSchedulingUnavailable, err)
	}

	hours := WorkingHours{Start: s.cfg.WorkdayStartHour, End: s.cfg.WorkdayEndHour}
	return findFreeSlots(busyTimes, startDate, endDate, durationMinutes, hours, loc), nil
}

// ScheduleMeeting interprets the command, finds available slots for the
// requested participants, and books the first one. Every stage fails closed:
// no event is created unless interpretation and slot finding both succeeded.
func (s *ServiceImpl) ScheduleMeeting(ctx context.Context, command string) (*Event, error) {
	request, err := s.interpreter.Interpret(ctx, command)
	if err != nil {
		return nil, err
	}
	log.Debugf("interpreted meeting command as: %+v", request)

	slots, err := s.GetAvailableSlots(ctx, request.Participants, request.PreferredDateRange, 0)
	if err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		return nil, ErrNoAvailableSlot
	}

	// Always the earliest slot; there is no ranking.
	bestSlot := slots[0]

	description := request.Description
	if description == "" {
		description = fmt.Sprintf("AI-scheduled %s", request.MeetingType)
	}

	return s.writeEvent(ctx, EventDraft{
		Summary:     request.MeetingType,
		Description: description,
		StartTime:   bestSlot.StartTime,
		EndTime:     bestSlot.EndTime,
		Attendees:   request.Participants,
	})
}

// CreateSimpleEvent writes one event directly, bypassing interpretation and
// slot finding.
func (s *ServiceImpl) CreateSimpleEvent(ctx context.Context, draft EventDraft) (*Event, error) {
	if draft.Summary == "" || draft.StartTime.IsZero() || draft.EndTime.IsZero() {
		return nil, fmt.Errorf("title, start time, and end time are required")
	}
	return s.writeEvent(ctx, draft)
}

// BookInterview finds a 90-minute slot in the interviewer's calendar and books
// it with the candidate's name in the title.
func (s *ServiceImpl) BookInterview(ctx context.Context, candidateName string, interviewerEmail string,
	dateRange string) (*Event, error) {

	participants := []string{interviewerEmail}
	slots, err := s.GetAvailableSlots(ctx, participants, dateRange, interviewDurationMinutes)
	if err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		return nil, ErrNoAvailableSlot
	}

	bestSlot := slots[0]
	return s.writeEvent(ctx, EventDraft{
		Summary:     fmt.Sprintf("Interview: %s", candidateName),
		Description: fmt.Sprintf("Interview with %s for the position.", candidateName),
		StartTime:   bestSlot.StartTime,
		EndTime:     bestSlot.EndTime,
		Attendees:   participants,
	})
}

func (s *ServiceImpl) UpcomingEvents(ctx context.Context, maxResults int64) ([]Event, error) {
	if maxResults <= 0 {
		maxResults = 10
	}
	return s.calendar.UpcomingEvents(ctx, maxResults)
}

func (s *ServiceImpl) writeEvent(ctx context.Context, draft EventDraft) (*Event, error) {
	if draft.TimeZone == "" {
		draft.TimeZone = s.userLocation(ctx).String()
	}

	event, err := s.calendar.InsertEvent(ctx, draft)
	if err != nil {
		log.Errorf("calendar write failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrEventWriteFailed, err)
	}

	if s.bus != nil {
		publishErr := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.MeetingScheduledEvent, event_bus.MeetingScheduled{
			EventUID:  event.UID,
			Summary:   event.Summary,
			StartTime: event.StartTime,
			EndTime:   event.EndTime,
			Attendees: event.Attendees,
		}))
		if publishErr != nil {
			// The event is already on the calendar; a failing subscriber must
			// not fail the request.
			log.Errorf("failed to publish %s event: %v", event_bus.MeetingScheduledEvent, publishErr)
		}
	}

	return event, nil
}

// userLocation returns the current user's configured timezone, or UTC when
// there is no user in the context or the zone cannot be loaded.
func (s *ServiceImpl) userLocation(ctx context.Context) *time.Location {
	currentUser, err := s.users.GetCurrentUser(ctx)
	if err != nil {
		return time.UTC
	}
	loc, err := time.LoadLocation(currentUser.Settings.Timezone)
	if err != nil {
		log.Warnf("could not load location for timezone %q, falling back to UTC", currentUser.Settings.Timezone)
		return time.UTC
	}
	return loc
}
