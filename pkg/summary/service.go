package summary

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/workspaceai/workspaceai/pkg/openai"
	"github.com/workspaceai/workspaceai/pkg/scheduling"
)

// MeetingSummary is the structured digest produced for a past meeting.
type MeetingSummary struct {
	Summary     string   `json:"summary"`
	KeyPoints   []string `json:"keyPoints"`
	ActionItems []string `json:"actionItems"`
	NextSteps   []string `json:"nextSteps"`
}

type Service interface {
	SummarizeMeeting(ctx context.Context, eventUID string) (*MeetingSummary, error)
}

type ServiceImpl struct {
	calendar scheduling.CalendarProvider
	client   openai.Client
}

func NewService(calendar scheduling.CalendarProvider, client openai.Client) *ServiceImpl {
	return &ServiceImpl{
		calendar: calendar,
		client:   client,
	}
}

// SummarizeMeeting fetches the event, generates a structured summary, and
// writes the formatted summary back into the event description. A failing
// description patch does not fail the request; the summary is still returned.
func (s *ServiceImpl) SummarizeMeeting(ctx context.Context, eventUID string) (*MeetingSummary, error) {
	event, err := s.calendar.GetEvent(ctx, eventUID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve meeting %s: %w", eventUID, err)
	}

	meetingSummary, err := s.generateSummary(ctx, event)
	if err != nil {
		return nil, err
	}

	if err := s.calendar.PatchEventDescription(ctx, eventUID, formatDescription(meetingSummary)); err != nil {
		// The summary itself succeeded; losing the description update is
		// acceptable.
		log.Errorf("failed to update description of event %s: %v", eventUID, err)
	}

	return meetingSummary, nil
}

func (s *ServiceImpl) generateSummary(ctx context.Context, event *scheduling.Event) (*MeetingSummary, error) {
	prompt := fmt.Sprintf(`Summarize this meeting:

Meeting: %s
Date: %s
Notes: %s

Please provide:
1. A concise summary
2. Key points discussed
3. Action items
4. Next steps

Format as JSON with fields: summary, keyPoints, actionItems, nextSteps`,
		event.Summary, event.StartTime.Format(time.RFC3339), meetingNotes(event))

	response, err := s.client.Complete(ctx, openai.CompletionRequest{
		UserPrompt:  prompt,
		Temperature: 0.3,
		MaxTokens:   500,
	})
	if err != nil {
		log.Errorf("meeting summary completion failed: %v", err)
		return nil, fmt.Errorf("failed to generate meeting summary: %w", err)
	}

	var meetingSummary MeetingSummary
	if err := json.Unmarshal([]byte(response), &meetingSummary); err != nil {
		// Unlike meeting command interpretation, summarization degrades
		// gracefully: the raw model output becomes the summary text.
		log.Warnf("meeting summary is not valid JSON, using raw text: %v", err)
		return &MeetingSummary{Summary: response}, nil
	}
	return &meetingSummary, nil
}

// meetingNotes returns the material the summary is generated from. Currently
// only the event's own description is available.
func meetingNotes(event *scheduling.Event) string {
	if event.Description != "" {
		return event.Description
	}
	return fmt.Sprintf("Meeting notes for %s. This is a placeholder for actual meeting content.", event.UID)
}

func formatDescription(s *MeetingSummary) string {
	return fmt.Sprintf(`AI Summary:
%s

Key Points:
%s

Action Items:
%s

Next Steps:
%s`, s.Summary, bulletList(s.KeyPoints), bulletList(s.ActionItems), bulletList(s.NextSteps))
}

func bulletList(items []string) string {
	bullets := make([]string, 0, len(items))
	for _, item := range items {
		bullets = append(bullets, "• "+item)
	}
	return strings.Join(bullets, "\n")
}
