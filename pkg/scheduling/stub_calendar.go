package scheduling

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"
)

// StubCalendarProvider is an in-memory CalendarProvider for tests. Busy
// intervals are seeded per participant; inserted events are recorded and
// echoed back with generated UIDs.
type StubCalendarProvider struct {
	Busy map[string][]BusyInterval

	FreeBusyErr error
	InsertErr   error

	InsertedDrafts []EventDraft
	events         map[string]Event
	nextUID        int
}

func NewStubCalendarProvider() *StubCalendarProvider {
	return &StubCalendarProvider{
		Busy:   map[string][]BusyInterval{},
		events: map[string]Event{},
	}
}

func (c *StubCalendarProvider) FreeBusy(ctx context.Context, participants []string, timeMin time.Time,
	timeMax time.Time) (map[string][]BusyInterval, error) {
	if c.FreeBusyErr != nil {
		return nil, c.FreeBusyErr
	}

	result := make(map[string][]BusyInterval, len(participants))
	for _, participant := range participants {
		var intervals []BusyInterval
		for _, busy := range c.Busy[participant] {
			if busy.Start.Before(timeMax) && busy.End.After(timeMin) {
				intervals = append(intervals, busy)
			}
		}
		result[participant] = intervals
	}
	return result, nil
}

func (c *StubCalendarProvider) InsertEvent(ctx context.Context, draft EventDraft) (*Event, error) {
	if c.InsertErr != nil {
		return nil, c.InsertErr
	}
	c.InsertedDrafts = append(c.InsertedDrafts, draft)

	c.nextUID++
	event := Event{
		UID:         fmt.Sprintf("stub-event-%d", c.nextUID),
		Summary:     draft.Summary,
		Description: draft.Description,
		StartTime:   draft.StartTime,
		EndTime:     draft.EndTime,
		Attendees:   draft.Attendees,
	}
	c.events[event.UID] = event
	return &event, nil
}

func (c *StubCalendarProvider) GetEvent(ctx context.Context, eventUID string) (*Event, error) {
	event, ok := c.events[eventUID]
	if !ok {
		return nil, errors.New("event with given UID not found")
	}
	return &event, nil
}

func (c *StubCalendarProvider) PatchEventDescription(ctx context.Context, eventUID string, description string) error {
	event, ok := c.events[eventUID]
	if !ok {
		return errors.New("event with given UID not found")
	}
	event.Description = description
	c.events[eventUID] = event
	return nil
}

func (c *StubCalendarProvider) UpcomingEvents(ctx context.Context, maxResults int64) ([]Event, error) {
	events := make([]Event, 0, len(c.events))
	for _, event := range c.events {
		events = append(events, event)
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].StartTime.Before(events[j].StartTime)
	})
	if int64(len(events)) > maxResults {
		events = events[:maxResults]
	}
	return events, nil
}

// AddEvent seeds a pre-existing event, for summarization tests.
func (c *StubCalendarProvider) AddEvent(event Event) {
	c.events[event.UID] = event
}
