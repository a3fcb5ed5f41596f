package summary

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/workspaceai/workspaceai/internal/rest"
	"github.com/workspaceai/workspaceai/pkg/google"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

type SummarizeMeetingRequestDTO struct {
	MeetingId string `json:"meetingId"`
}

type MeetingSummaryDTO struct {
	Summary     string   `json:"summary"`
	KeyPoints   []string `json:"keyPoints"`
	ActionItems []string `json:"actionItems"`
	NextSteps   []string `json:"nextSteps"`
}

func (h *Handler) SummarizeMeeting(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var request SummarizeMeetingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if request.MeetingId == "" {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Meeting ID is required",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	meetingSummary, err := h.service.SummarizeMeeting(r.Context(), request.MeetingId)
	if err != nil {
		log.Errorf("Failed to summarize meeting %s: %v", request.MeetingId, err)
		if errors.Is(err, google.ErrUnathenticated) {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Failed to summarize meeting",
			Details: err.Error(),
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(MeetingSummaryDTO{
		Summary:     meetingSummary.Summary,
		KeyPoints:   meetingSummary.KeyPoints,
		ActionItems: meetingSummary.ActionItems,
		NextSteps:   meetingSummary.NextSteps,
	}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
