package summary

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workspaceai/workspaceai/pkg/openai"
	"github.com/workspaceai/workspaceai/pkg/scheduling"
)

func seededCalendar() *scheduling.StubCalendarProvider {
	calendar := scheduling.NewStubCalendarProvider()
	calendar.AddEvent(scheduling.Event{
		UID:       "meeting-1",
		Summary:   "Quarterly review",
		StartTime: time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2024, 1, 2, 11, 0, 0, 0, time.UTC),
	})
	return calendar
}

func TestSummarizeMeeting(t *testing.T) {
	calendar := seededCalendar()
	client := &openai.StubClient{
		Responses: []string{`{
			"summary": "Reviewed Q4 results.",
			"keyPoints": ["Revenue up 12%"],
			"actionItems": ["Send deck to the board"],
			"nextSteps": ["Plan Q1 kickoff"]
		}`},
	}
	service := NewService(calendar, client)

	meetingSummary, err := service.SummarizeMeeting(context.Background(), "meeting-1")

	require.NoError(t, err)
	assert.Equal(t, "Reviewed Q4 results.", meetingSummary.Summary)
	assert.Equal(t, []string{"Revenue up 12%"}, meetingSummary.KeyPoints)
	assert.Equal(t, []string{"Send deck to the board"}, meetingSummary.ActionItems)
	assert.Equal(t, []string{"Plan Q1 kickoff"}, meetingSummary.NextSteps)

	// The event description is patched with the formatted summary.
	event, err := calendar.GetEvent(context.Background(), "meeting-1")
	require.NoError(t, err)
	assert.Contains(t, event.Description, "AI Summary:")
	assert.Contains(t, event.Description, "Reviewed Q4 results.")
	assert.Contains(t, event.Description, "• Revenue up 12%")
}

func TestSummarizeMeeting_SendsPromptWithFixedParameters(t *testing.T) {
	calendar := seededCalendar()
	client := &openai.StubClient{Responses: []string{`{"summary": "ok"}`}}
	service := NewService(calendar, client)

	_, err := service.SummarizeMeeting(context.Background(), "meeting-1")

	require.NoError(t, err)
	require.Len(t, client.Requests, 1)
	sent := client.Requests[0]
	assert.True(t, strings.HasPrefix(sent.UserPrompt, "Summarize this meeting:"))
	assert.Contains(t, sent.UserPrompt, "Meeting: Quarterly review")
	assert.Equal(t, 0.3, sent.Temperature)
	assert.Equal(t, 500, sent.MaxTokens)
}

func TestSummarizeMeeting_FallsBackOnMalformedJSON(t *testing.T) {
	calendar := seededCalendar()
	client := &openai.StubClient{
		Responses: []string{"The meeting went well and everyone agreed on the plan."},
	}
	service := NewService(calendar, client)

	meetingSummary, err := service.SummarizeMeeting(context.Background(), "meeting-1")

	require.NoError(t, err, "malformed JSON must degrade to a raw-text summary, not fail")
	assert.Equal(t, "The meeting went well and everyone agreed on the plan.", meetingSummary.Summary)
	assert.Empty(t, meetingSummary.KeyPoints)
	assert.Empty(t, meetingSummary.ActionItems)
	assert.Empty(t, meetingSummary.NextSteps)
}

func TestSummarizeMeeting_CompletionError(t *testing.T) {
	calendar := seededCalendar()
	client := &openai.StubClient{Err: errors.New("upstream unavailable")}
	service := NewService(calendar, client)

	meetingSummary, err := service.SummarizeMeeting(context.Background(), "meeting-1")

	assert.Nil(t, meetingSummary)
	assert.Error(t, err)
}

func TestSummarizeMeeting_UnknownEvent(t *testing.T) {
	service := NewService(scheduling.NewStubCalendarProvider(), &openai.StubClient{})

	meetingSummary, err := service.SummarizeMeeting(context.Background(), "missing")

	assert.Nil(t, meetingSummary)
	assert.Error(t, err)
}

func TestSummarizeMeeting_PatchFailureIsNotFatal(t *testing.T) {
	calendar := seededCalendar()
	client := &openai.StubClient{Responses: []string{`{"summary": "ok"}`}}
	service := NewService(&failingPatchCalendar{StubCalendarProvider: calendar}, client)

	meetingSummary, err := service.SummarizeMeeting(context.Background(), "meeting-1")

	require.NoError(t, err)
	assert.Equal(t, "ok", meetingSummary.Summary)
}

type failingPatchCalendar struct {
	*scheduling.StubCalendarProvider
}

func (c *failingPatchCalendar) PatchEventDescription(ctx context.Context, eventUID string, description string) error {
	return errors.New("patch rejected")
}
