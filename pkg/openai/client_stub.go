package openai

import "context"

// StubClient replays canned completions in order and records every request it
// received.
type StubClient struct {
	Responses []string
	Err       error
	Requests  []CompletionRequest

	next int
}

func (s *StubClient) Complete(ctx context.Context, request CompletionRequest) (string, error) {
	s.Requests = append(s.Requests, request)
	if s.Err != nil {
		return "", s.Err
	}
	if s.next >= len(s.Responses) {
		return "", nil
	}
	response := s.Responses[s.next]
	s.next++
	return response, nil
}
