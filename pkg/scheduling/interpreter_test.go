package scheduling

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/workspaceai/workspaceai/pkg/openai"
)

func TestOpenAIInterpreter_Interpret(t *testing.T) {
	client := &openai.StubClient{
		Responses: []string{`{
			"meetingType": "team meeting",
			"participants": ["alice@example.com", "bob@example.com"],
			"preferredDateRange": "next week",
			"description": "Quarterly planning"
		}`},
	}
	interpreter := NewOpenAIInterpreter(client)

	request, err := interpreter.Interpret(context.Background(), "Schedule a team meeting with Alice and Bob next week")

	assert.NoError(t, err)
	assert.Equal(t, "team meeting", request.MeetingType)
	assert.Equal(t, []string{"alice@example.com", "bob@example.com"}, request.Participants)
	assert.Equal(t, "next week", request.PreferredDateRange)
	assert.Equal(t, "Quarterly planning", request.Description)
}

func TestOpenAIInterpreter_SendsCommandWithFixedParameters(t *testing.T) {
	client := &openai.StubClient{Responses: []string{`{}`}}
	interpreter := NewOpenAIInterpreter(client)

	_, err := interpreter.Interpret(context.Background(), "book something tomorrow")

	assert.NoError(t, err)
	assert.Len(t, client.Requests, 1)
	sent := client.Requests[0]
	assert.Equal(t, "book something tomorrow", sent.UserPrompt)
	assert.Equal(t, interpreterSystemPrompt, sent.SystemPrompt)
	assert.Equal(t, float64(0.1), sent.Temperature)
	assert.Equal(t, 200, sent.MaxTokens)
}

func TestOpenAIInterpreter_MalformedJSONFailsHard(t *testing.T) {
	client := &openai.StubClient{
		Responses: []string{"Sure! Here is the meeting you asked for."},
	}
	interpreter := NewOpenAIInterpreter(client)

	request, err := interpreter.Interpret(context.Background(), "schedule a sync")

	assert.Nil(t, request)
	assert.ErrorIs(t, err, ErrInterpretationFailed)
}

func TestOpenAIInterpreter_CompletionError(t *testing.T) {
	client := &openai.StubClient{Err: errors.New("upstream unavailable")}
	interpreter := NewOpenAIInterpreter(client)

	request, err := interpreter.Interpret(context.Background(), "schedule a sync")

	assert.Nil(t, request)
	assert.ErrorIs(t, err, ErrInterpretationFailed)
}
