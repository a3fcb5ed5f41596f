package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/workspaceai/workspaceai/internal/config"
)

const baseURL = "https://api.openai.com/v1"

var ErrNotConfigured = fmt.Errorf("OpenAI API key is not configured")

// CompletionRequest is one chat completion call: a fixed system prompt, the
// user content, and the sampling parameters the caller wants.
type CompletionRequest struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  float64
	MaxTokens    int
}

// Client sends chat completion requests. Callers are expected to validate the
// shape of the returned content themselves; the client never retries.
type Client interface {
	Complete(ctx context.Context, request CompletionRequest) (string, error)
}

type ClientImpl struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewClient(cfg config.OpenAI) *ClientImpl {
	return &ClientImpl{
		apiKey: cfg.ApiKey,
		model:  cfg.Model,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Complete posts one chat completion and returns the first choice's content.
func (c *ClientImpl) Complete(ctx context.Context, request CompletionRequest) (string, error) {
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}

	messages := make([]chatMessage, 0, 2)
	if request.SystemPrompt != "" {
		messages = append(messages, chatMessage{Role: "system", Content: request.SystemPrompt})
	}
	messages = append(messages, chatMessage{Role: "user", Content: request.UserPrompt})

	body, err := json.Marshal(chatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: request.Temperature,
		MaxTokens:   request.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("unable to marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		log.Errorf("Failed to create request: %v", err)
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Errorf("Failed to execute completion request: %v", err)
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Errorf("Failed to read completion response: %v", err)
		return "", err
	}

	var response chatCompletionResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		log.Errorf("Failed to decode completion response: %v", err)
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		message := resp.Status
		if response.Error != nil {
			message = response.Error.Message
		}
		err := fmt.Errorf("OpenAI API returned non-OK status %d: %s", resp.StatusCode, message)
		log.Error(err)
		return "", err
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("OpenAI API returned no choices")
	}

	return response.Choices[0].Message.Content, nil
}
