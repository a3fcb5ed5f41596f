package app

import (
	"database/sql"

	log "github.com/sirupsen/logrus"
	"github.com/workspaceai/workspaceai/internal/config"
	"github.com/workspaceai/workspaceai/internal/event_bus"
	"github.com/workspaceai/workspaceai/internal/utils"
	"github.com/workspaceai/workspaceai/pkg/google"
	"github.com/workspaceai/workspaceai/pkg/openai"
	"github.com/workspaceai/workspaceai/pkg/scheduling"
	"github.com/workspaceai/workspaceai/pkg/summary"
	"github.com/workspaceai/workspaceai/pkg/user"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	EventBus *event_bus.EventBus

	UserService user.Service
	UserHandler *user.Handler

	GoogleAuth    *google.GoogleAuth
	GoogleService google.Service
	GoogleHandler *google.Handler

	OpenAIClient openai.Client

	SchedulingService scheduling.Service
	SchedulingHandler *scheduling.Handler

	SummaryService summary.Service
	SummaryHandler *summary.Handler
}

// BuildDependencies constructs all services and handlers with their wiring.
func BuildDependencies(db *sql.DB, cfg config.Application) *Dependencies {
	bus := event_bus.NewEventBus()
	clock := utils.SystemClock{}

	event_bus.SubscribeTyped(bus, event_bus.MeetingScheduledEvent,
		func(e event_bus.EventT[event_bus.MeetingScheduled]) error {
			log.Infof("meeting scheduled: %q from %s to %s (%d attendees)",
				e.Data.Summary, e.Data.StartTime, e.Data.EndTime, len(e.Data.Attendees))
			return nil
		})

	userRepo := user.NewUserRepo(db)
	userService := user.NewUserService(userRepo)
	userHandler := user.NewHandler(userService)

	googleAuth := google.NewGoogleAuth(db, userService, cfg)
	googleService := google.NewService(googleAuth)
	googleHandler := google.NewHandler(googleService)
	calendarProvider := google.NewCalendarProvider(googleService)

	openAIClient := openai.NewClient(cfg.OpenAI)
	interpreter := scheduling.NewOpenAIInterpreter(openAIClient)

	schedulingService := scheduling.NewService(calendarProvider, interpreter, userService, clock, bus, cfg.Scheduling)
	schedulingHandler := scheduling.NewHandler(schedulingService)

	summaryService := summary.NewService(calendarProvider, openAIClient)
	summaryHandler := summary.NewHandler(summaryService)

	return &Dependencies{
		EventBus: bus,

		UserService: userService,
		UserHandler: userHandler,

		GoogleAuth:    googleAuth,
		GoogleService: googleService,
		GoogleHandler: googleHandler,

		OpenAIClient: openAIClient,

		SchedulingService: schedulingService,
		SchedulingHandler: schedulingHandler,

		SummaryService: summaryService,
		SummaryHandler: summaryHandler,
	}
}
