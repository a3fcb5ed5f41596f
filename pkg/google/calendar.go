package google

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/workspaceai/workspaceai/pkg/scheduling"
	gcal "google.golang.org/api/calendar/v3"
)

var ErrUnathenticated = fmt.Errorf("user is unauthenticated, authentication is required")

// Calendar wraps one authenticated Google Calendar connection, scoped to a
// single calendar of a single user. Instances are cheap and resolved per
// request; do not cache them across users.
type Calendar struct {
	service    *gcal.Service
	calendarId string
}

func newGoogleCalendar(service *gcal.Service, calendarId string) *Calendar {
	return &Calendar{
		service:    service,
		calendarId: calendarId,
	}
}

// FreeBusy queries busy intervals for every participant's calendar in one
// request. Participants whose calendars are not visible come back with no
// intervals rather than an error.
func (c *Calendar) FreeBusy(ctx context.Context, participants []string, timeMin time.Time,
	timeMax time.Time) (map[string][]scheduling.BusyInterval, error) {

	items := make([]*gcal.FreeBusyRequestItem, 0, len(participants))
	for _, participant := range participants {
		items = append(items, &gcal.FreeBusyRequestItem{Id: participant})
	}

	response, err := c.service.Freebusy.Query(&gcal.FreeBusyRequest{
		TimeMin: timeMin.Format(time.RFC3339),
		TimeMax: timeMax.Format(time.RFC3339),
		Items:   items,
	}).Context(ctx).Do()
	if err != nil {
		err := fmt.Errorf("unable to query free/busy from Google Calendar: %v", err)
		log.Error(err)
		return nil, err
	}

	busyTimes := make(map[string][]scheduling.BusyInterval, len(participants))
	for _, participant := range participants {
		fbCalendar, ok := response.Calendars[participant]
		if !ok {
			busyTimes[participant] = nil
			continue
		}
		intervals := make([]scheduling.BusyInterval, 0, len(fbCalendar.Busy))
		for _, period := range fbCalendar.Busy {
			start, err := time.Parse(time.RFC3339, period.Start)
			if err != nil {
				log.Warnf("skipping busy period with unparsable start %q: %v", period.Start, err)
				continue
			}
			end, err := time.Parse(time.RFC3339, period.End)
			if err != nil {
				log.Warnf("skipping busy period with unparsable end %q: %v", period.End, err)
				continue
			}
			intervals = append(intervals, scheduling.BusyInterval{Start: start, End: end})
		}
		busyTimes[participant] = intervals
	}
	return busyTimes, nil
}

// InsertEvent writes the draft to the calendar with fixed reminders (an email
// a day ahead and a popup ten minutes ahead) and asks Google to send
// invitations to every attendee.
func (c *Calendar) InsertEvent(ctx context.Context, draft scheduling.EventDraft) (*scheduling.Event, error) {
	log.Debugf("Inserting event %q into calendar %s", draft.Summary, c.calendarId)

	attendees := make([]*gcal.EventAttendee, 0, len(draft.Attendees))
	for _, attendee := range draft.Attendees {
		attendees = append(attendees, &gcal.EventAttendee{Email: attendee})
	}

	result, err := c.service.Events.Insert(c.calendarId, &gcal.Event{
		Summary:     draft.Summary,
		Description: draft.Description,
		Start: &gcal.EventDateTime{
			DateTime: draft.StartTime.Format(time.RFC3339),
			TimeZone: draft.TimeZone,
		},
		End: &gcal.EventDateTime{
			DateTime: draft.EndTime.Format(time.RFC3339),
			TimeZone: draft.TimeZone,
		},
		Attendees: attendees,
		Reminders: &gcal.EventReminders{
			UseDefault: false,
			Overrides: []*gcal.EventReminder{
				{Method: "email", Minutes: 24 * 60},
				{Method: "popup", Minutes: 10},
			},
			ForceSendFields: []string{"UseDefault"},
		},
	}).SendUpdates("all").Context(ctx).Do()
	if err != nil {
		err := fmt.Errorf("unable to insert event in Google Calendar: %v", err)
		log.Error(err)
		return nil, err
	}

	event := googleEventToEvent(result)
	return &event, nil
}

func (c *Calendar) GetEvent(ctx context.Context, eventUID string) (*scheduling.Event, error) {
	result, err := c.service.Events.Get(c.calendarId, eventUID).Context(ctx).Do()
	if err != nil {
		err := fmt.Errorf("unable to retrieve event from Google Calendar: %v", err)
		log.Error(err)
		return nil, err
	}
	event := googleEventToEvent(result)
	return &event, nil
}

// PatchEventDescription overwrites only the description of an existing event.
func (c *Calendar) PatchEventDescription(ctx context.Context, eventUID string, description string) error {
	_, err := c.service.Events.Patch(c.calendarId, eventUID, &gcal.Event{
		Description: description,
	}).Context(ctx).Do()
	if err != nil {
		err := fmt.Errorf("unable to patch event in Google Calendar: %v", err)
		log.Error(err)
		return err
	}
	return nil
}

// UpcomingEvents lists the next events starting from now, expanded to single
// occurrences and ordered by start time.
func (c *Calendar) UpcomingEvents(ctx context.Context, maxResults int64) ([]scheduling.Event, error) {
	googleEvents, err := c.service.Events.List(c.calendarId).
		TimeMin(time.Now().Format(time.RFC3339)).
		MaxResults(maxResults).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		err := fmt.Errorf("unable to retrieve events from Google Calendar: %v", err)
		log.Error(err)
		return nil, err
	}

	events := make([]scheduling.Event, 0, len(googleEvents.Items))
	for _, item := range googleEvents.Items {
		events = append(events, googleEventToEvent(item))
	}
	return events, nil
}

func googleEventToEvent(item *gcal.Event) scheduling.Event {
	event := scheduling.Event{
		UID:         item.Id,
		Summary:     item.Summary,
		Description: item.Description,
	}
	if item.Start != nil {
		event.StartTime, _ = time.Parse(time.RFC3339, item.Start.DateTime)
	}
	if item.End != nil {
		event.EndTime, _ = time.Parse(time.RFC3339, item.End.DateTime)
	}
	for _, attendee := range item.Attendees {
		event.Attendees = append(event.Attendees, attendee.Email)
	}
	return event
}
