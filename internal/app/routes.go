package app

import (
	"github.com/gorilla/mux"
	"github.com/workspaceai/workspaceai/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// User management
	r.HandleFunc("/api/user/current", deps.UserHandler.CurrentUser).Methods("GET")
	r.HandleFunc("/api/user/current", deps.UserHandler.UpdateUser).Methods("PUT")
	r.HandleFunc("/api/user", deps.UserHandler.CreateUser).Methods("POST")
	r.HandleFunc("/api/user/name-availability", deps.UserHandler.IsUsernameAvailable).Methods("GET").Queries("username", "{username}")
	r.HandleFunc("/api/user", deps.UserHandler.GetAvailableUsers).Methods("GET")
	r.HandleFunc("/api/user/{userUid}", deps.UserHandler.DeleteUser).Methods("DELETE")

	// Scheduling
	r.HandleFunc("/api/calendar/available-slots", deps.SchedulingHandler.GetAvailableSlots).Methods("GET")
	r.HandleFunc("/api/calendar/schedule-meeting", deps.SchedulingHandler.ScheduleMeeting).Methods("POST")
	r.HandleFunc("/api/calendar/create-event", deps.SchedulingHandler.CreateEvent).Methods("POST")
	r.HandleFunc("/api/calendar/book-interview", deps.SchedulingHandler.BookInterview).Methods("POST")
	r.HandleFunc("/api/calendar/upcoming", deps.SchedulingHandler.UpcomingEvents).Methods("GET")

	// Meeting summarization
	r.HandleFunc("/api/calendar/summarize-meeting", deps.SummaryHandler.SummarizeMeeting).Methods("POST")

	// Google integration
	r.HandleFunc("/api/integrations/google/auth/login", deps.GoogleAuth.OAuthLogin).Methods("GET")
	r.HandleFunc("/api/integrations/google/auth/logout", deps.GoogleAuth.OAuthLogout).Methods("DELETE")
	r.HandleFunc("/api/integrations/google/auth/callback", deps.GoogleAuth.OAuthCallback).Methods("GET")
	r.HandleFunc("/api/integrations/google/calendars", deps.GoogleHandler.ListCalendars).Methods("GET")
}
