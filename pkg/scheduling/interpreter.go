package scheduling

import (
	"context"
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/workspaceai/workspaceai/pkg/openai"
)

const interpreterSystemPrompt = `You are an AI assistant that parses natural language meeting requests. Extract the following information:
- meetingType: The type of meeting (interview, team meeting, client call, etc.)
- participants: Array of participant emails or names
- preferredDateRange: Preferred date range (e.g., "next week", "tomorrow", "this Friday")
- description: Brief description of the meeting purpose

Return only valid JSON with these fields.`

// Interpreter turns a natural-language scheduling command into a structured
// MeetingRequest. It is an interface so the completion backend can be swapped
// out in tests without touching slot finding or event creation.
type Interpreter interface {
	Interpret(ctx context.Context, command string) (*MeetingRequest, error)
}

type OpenAIInterpreter struct {
	client openai.Client
}

func NewOpenAIInterpreter(client openai.Client) *OpenAIInterpreter {
	return &OpenAIInterpreter{client: client}
}

func (i *OpenAIInterpreter) Interpret(ctx context.Context, command string) (*MeetingRequest, error) {
	response, err := i.client.Complete(ctx, openai.CompletionRequest{
		SystemPrompt: interpreterSystemPrompt,
		UserPrompt:   command,
		Temperature:  0.1,
		MaxTokens:    200,
	})
	if err != nil {
		log.Errorf("meeting command completion failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInterpretationFailed, err)
	}

	var request MeetingRequest
	if err := json.Unmarshal([]byte(response), &request); err != nil {
		// Unlike the summarization flows there is no fallback object here;
		// a malformed response fails the whole scheduling request.
		log.Errorf("meeting command returned malformed JSON: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInterpretationFailed, err)
	}

	return &request, nil
}
