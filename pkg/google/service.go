package google

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/workspaceai/workspaceai/pkg/scheduling"
	"github.com/workspaceai/workspaceai/pkg/user"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// primaryCalendarId is the alias Google resolves to the user's own calendar.
const primaryCalendarId = "primary"

type CalendarItem struct {
	ID      string
	Summary string
}

type Service interface {
	GetCalendar(ctx context.Context, calendarId string) (*Calendar, error)
	ListCalendars(ctx context.Context) ([]CalendarItem, error)
}

type ServiceImpl struct {
	auth *GoogleAuth
}

func NewService(auth *GoogleAuth) *ServiceImpl {
	return &ServiceImpl{
		auth: auth,
	}
}

func (s *ServiceImpl) GetCalendar(ctx context.Context, calendarId string) (*Calendar, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	service, err := s.prepareGoogleService(ctx, userId)
	if err != nil {
		return nil, err
	}
	return newGoogleCalendar(service, calendarId), nil
}

func (s *ServiceImpl) ListCalendars(ctx context.Context) ([]CalendarItem, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}

	googleService, err := s.prepareGoogleService(ctx, userId)
	if err != nil {
		return nil, err
	}
	calendars, err := googleService.CalendarList.List().Do()
	if err != nil {
		err := fmt.Errorf("unable to retrieve calendars from Google Calendar: %v", err)
		log.Error(err)
		return nil, err
	}
	var googleCalendars []CalendarItem
	for _, cal := range calendars.Items {
		googleCalendars = append(googleCalendars, CalendarItem{
			ID:      cal.Id,
			Summary: cal.Summary,
		})
	}
	return googleCalendars, nil
}

func (s *ServiceImpl) prepareGoogleService(ctx context.Context, userId int) (*calendar.Service, error) {

	client, err := s.auth.getClient(ctx, userId)
	if err != nil {
		err := fmt.Errorf("unable to retrieve Google auth client: %v", err)
		log.Error(err)
		return nil, err
	}
	if client == nil {
		log.Debug("user is unauthenticated, authentication is required")
		return nil, ErrUnathenticated
	}
	service, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		err := fmt.Errorf("unable to retrieve Calendar client: %v", err)
		log.Error(err)
		return nil, err
	}

	return service, nil
}

// CalendarProvider adapts Service to the calendar interface the scheduling
// core consumes. Every call resolves the current user's primary calendar from
// the request context, so one provider instance serves all users.
type CalendarProvider struct {
	service Service
}

func NewCalendarProvider(service Service) *CalendarProvider {
	return &CalendarProvider{service: service}
}

func (p *CalendarProvider) FreeBusy(ctx context.Context, participants []string, timeMin time.Time,
	timeMax time.Time) (map[string][]scheduling.BusyInterval, error) {
	cal, err := p.service.GetCalendar(ctx, primaryCalendarId)
	if err != nil {
		return nil, err
	}
	return cal.FreeBusy(ctx, participants, timeMin, timeMax)
}

func (p *CalendarProvider) InsertEvent(ctx context.Context, draft scheduling.EventDraft) (*scheduling.Event, error) {
	cal, err := p.service.GetCalendar(ctx, primaryCalendarId)
	if err != nil {
		return nil, err
	}
	return cal.InsertEvent(ctx, draft)
}

func (p *CalendarProvider) GetEvent(ctx context.Context, eventUID string) (*scheduling.Event, error) {
	cal, err := p.service.GetCalendar(ctx, primaryCalendarId)
	if err != nil {
		return nil, err
	}
	return cal.GetEvent(ctx, eventUID)
}

func (p *CalendarProvider) PatchEventDescription(ctx context.Context, eventUID string, description string) error {
	cal, err := p.service.GetCalendar(ctx, primaryCalendarId)
	if err != nil {
		return err
	}
	return cal.PatchEventDescription(ctx, eventUID, description)
}

func (p *CalendarProvider) UpcomingEvents(ctx context.Context, maxResults int64) ([]scheduling.Event, error) {
	cal, err := p.service.GetCalendar(ctx, primaryCalendarId)
	if err != nil {
		return nil, err
	}
	return cal.UpcomingEvents(ctx, maxResults)
}
