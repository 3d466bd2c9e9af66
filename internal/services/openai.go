package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"dentalspace-backend/internal/models"
)

const (
	DefaultModel       = "gpt-3.5-turbo"
	DefaultMaxTokens   = 800
	DefaultTemperature = 0.7
)

type completionRequest struct {
	Model       string               `json:"model"`
	Messages    []models.ChatMessage `json:"messages"`
	MaxTokens   int                  `json:"max_tokens"`
	Temperature float64              `json:"temperature"`
}

// completionMessage keeps content raw so null or multi-part content is
// relayed exactly as the provider sent it.
type completionMessage struct {
	Role    string          `json:"role"`
	Content json.RawMessage `json:"content"`
}

type completionChoice struct {
	Index   int                `json:"index"`
	Message *completionMessage `json:"message"`
}

type completionResponse struct {
	Choices []completionChoice `json:"choices"`
}

type OpenAIService struct {
	client  *http.Client
	baseURL string
}

// NewOpenAIService builds a client for the chat completions endpoint under
// baseURL. The transport's default timeout behavior is used as is.
func NewOpenAIService(baseURL string) *OpenAIService {
	return &OpenAIService{
		client:  &http.Client{},
		baseURL: baseURL,
	}
}

// Complete sends one chat completion request and returns the raw content of
// the first choice. It never retries.
func (s *OpenAIService) Complete(ctx context.Context, apiKey string, messages []models.ChatMessage) (json.RawMessage, error) {
	payload, err := json.Marshal(completionRequest{
		Model:       DefaultModel,
		Messages:    messages,
		MaxTokens:   DefaultMaxTokens,
		Temperature: DefaultTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build completion request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call OpenAI: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read OpenAI response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("OpenAI API Error: %d %s", resp.StatusCode, body)
		return nil, errorForStatus(resp.StatusCode)
	}

	var out completionResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode OpenAI response: %w", err)
	}

	if len(out.Choices) == 0 || out.Choices[0].Message == nil {
		log.Printf("Unexpected OpenAI response format: %s", body)
		return nil, &MalformedResponseError{}
	}

	content := out.Choices[0].Message.Content
	if len(content) == 0 {
		content = json.RawMessage("null")
	}
	return content, nil
}
