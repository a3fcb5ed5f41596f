package scheduling

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/workspaceai/workspaceai/internal/rest"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

type AvailableSlotDTO struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Date      string    `json:"date"`
}

type EventDTO struct {
	Id          string    `json:"id"`
	Summary     string    `json:"summary"`
	Description string    `json:"description,omitempty"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Attendees   []string  `json:"attendees"`
}

type ScheduleMeetingRequestDTO struct {
	Command string `json:"command"`
}

type CreateEventRequestDTO struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Attendees   []string  `json:"attendees,omitempty"`
}

type BookInterviewRequestDTO struct {
	CandidateName    string `json:"candidateName"`
	InterviewerEmail string `json:"interviewerEmail"`
	DateRange        string `json:"dateRange"`
}

// GetAvailableSlots godoc
// @Summary Get available meeting slots
// @Description Compute conflict-free meeting slots for the given participants within a date range
// @Tags Scheduling
// @Produce json
// @Param participants query string true "Comma-separated participant emails"
// @Param dateRange query string true "Free-form date range, e.g. 'next week'"
// @Param durationMinutes query int false "Slot duration in minutes (default 60)"
// @Success 200 {array} AvailableSlotDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid request"
// @Router /api/calendar/available-slots [get]
func (h *Handler) GetAvailableSlots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	participants := parseParticipants(r.URL.Query()["participants"])
	dateRange := r.URL.Query().Get("dateRange")
	if len(participants) == 0 || dateRange == "" {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Participants and date range are required",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	durationMinutes := 0
	if durationParam := r.URL.Query().Get("durationMinutes"); durationParam != "" {
		parsed, err := strconv.Atoi(durationParam)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:   "Invalid durationMinutes",
				Details: "'durationMinutes' must be an integer",
			})
			if encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return
		}
		durationMinutes = parsed
	}

	slots, err := h.service.GetAvailableSlots(r.Context(), participants, dateRange, durationMinutes)
	if err != nil {
		h.writeServiceError(w, err, "Failed to get available slots")
		return
	}

	dtos := make([]AvailableSlotDTO, 0, len(slots))
	for _, slot := range slots {
		dtos = append(dtos, slotToDTO(slot))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// ScheduleMeeting godoc
// @Summary Schedule a meeting from a natural-language command
// @Tags Scheduling
// @Accept json
// @Produce json
// @Param request body ScheduleMeetingRequestDTO true "Scheduling command"
// @Success 201 {object} EventDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid request"
// @Failure 404 {object} rest.ErrorResponse "No available slot"
// @Router /api/calendar/schedule-meeting [post]
func (h *Handler) ScheduleMeeting(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var request ScheduleMeetingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if request.Command == "" {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Meeting command is required",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	event, err := h.service.ScheduleMeeting(r.Context(), request.Command)
	if err != nil {
		h.writeServiceError(w, err, "Failed to schedule meeting")
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(eventToDTO(*event)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// CreateEvent godoc
// @Summary Create a calendar event directly
// @Tags Scheduling
// @Accept json
// @Produce json
// @Param request body CreateEventRequestDTO true "Event data"
// @Success 201 {object} EventDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid request"
// @Router /api/calendar/create-event [post]
func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var request CreateEventRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if request.Title == "" || request.StartTime.IsZero() || request.EndTime.IsZero() {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Title, start time, and end time are required",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	event, err := h.service.CreateSimpleEvent(r.Context(), EventDraft{
		Summary:     request.Title,
		Description: request.Description,
		StartTime:   request.StartTime,
		EndTime:     request.EndTime,
		Attendees:   request.Attendees,
	})
	if err != nil {
		h.writeServiceError(w, err, "Failed to create event")
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(eventToDTO(*event)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// BookInterview godoc
// @Summary Book a 90-minute interview in the interviewer's calendar
// @Tags Scheduling
// @Accept json
// @Produce json
// @Param request body BookInterviewRequestDTO true "Interview data"
// @Success 201 {object} EventDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid request"
// @Failure 404 {object} rest.ErrorResponse "No available slot"
// @Router /api/calendar/book-interview [post]
func (h *Handler) BookInterview(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var request BookInterviewRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if request.CandidateName == "" || request.InterviewerEmail == "" || request.DateRange == "" {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Candidate name, interviewer email, and date range are required",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	event, err := h.service.BookInterview(r.Context(), request.CandidateName, request.InterviewerEmail, request.DateRange)
	if err != nil {
		h.writeServiceError(w, err, "Failed to book interview")
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(eventToDTO(*event)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// UpcomingEvents godoc
// @Summary List upcoming events from the primary calendar
// @Tags Scheduling
// @Produce json
// @Param maxResults query int false "Maximum number of events (default 10)"
// @Success 200 {array} EventDTO
// @Router /api/calendar/upcoming [get]
func (h *Handler) UpcomingEvents(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var maxResults int64
	if maxParam := r.URL.Query().Get("maxResults"); maxParam != "" {
		parsed, err := strconv.ParseInt(maxParam, 10, 64)
		if err != nil {
			http.Error(w, "'maxResults' must be an integer", http.StatusBadRequest)
			return
		}
		maxResults = parsed
	}

	events, err := h.service.UpcomingEvents(r.Context(), maxResults)
	if err != nil {
		h.writeServiceError(w, err, "Failed to get upcoming events")
		return
	}

	dtos := make([]EventDTO, 0, len(events))
	for _, event := range events {
		dtos = append(dtos, eventToDTO(event))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// writeServiceError maps the scheduling error taxonomy to HTTP statuses. The
// provider's message stays in the details field for diagnostics.
func (h *Handler) writeServiceError(w http.ResponseWriter, err error, fallbackMessage string) {
	log.Errorf("%s: %v", fallbackMessage, err)

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrNoAvailableSlot):
		status = http.StatusNotFound
	case errors.Is(err, ErrInterpretationFailed),
		errors.Is(err, ErrSchedulingUnavailable),
		errors.Is(err, ErrEventWriteFailed):
		status = http.StatusBadGateway
	}

	w.WriteHeader(status)
	encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
		Error:   fallbackMessage,
		Details: err.Error(),
	})
	if encodeErr != nil {
		http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
	}
}

func parseParticipants(values []string) []string {
	var participants []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				participants = append(participants, trimmed)
			}
		}
	}
	return participants
}

func slotToDTO(slot AvailableSlot) AvailableSlotDTO {
	return AvailableSlotDTO{
		StartTime: slot.StartTime,
		EndTime:   slot.EndTime,
		Date:      slot.Date,
	}
}

func eventToDTO(event Event) EventDTO {
	return EventDTO{
		Id:          event.UID,
		Summary:     event.Summary,
		Description: event.Description,
		Start:       event.StartTime,
		End:         event.EndTime,
		Attendees:   event.Attendees,
	}
}
