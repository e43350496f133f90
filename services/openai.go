package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// completionTemperature balances rubric consistency against response variety.
const completionTemperature = 0.7

const defaultOpenAIURL = "https://api.openai.com/v1/chat/completions"

// CompletionClient produces one JSON-object completion for a system/user
// message pair and returns its raw text. Implementations do not retry and do
// not interpret the text; any upstream failure surfaces as *UpstreamError.
type CompletionClient interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIRequest struct {
	Model          string          `json:"model"`
	Messages       []openAIMessage `json:"messages"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

// OpenAIClient calls the OpenAI chat completions API.
type OpenAIClient struct {
	APIKey     string
	Model      string
	URL        string
	HTTPClient *http.Client
}

// NewOpenAIClient constructs a client for the given key and model. baseURL
// overrides the public endpoint when non-empty (useful for proxies and stubs).
func NewOpenAIClient(apiKey, model, baseURL string) *OpenAIClient {
	url := baseURL
	if url == "" {
		url = defaultOpenAIURL
	}
	return &OpenAIClient{
		APIKey:     apiKey,
		Model:      model,
		URL:        url,
		HTTPClient: &http.Client{},
	}
}

// Complete sends the two messages and returns the raw text of the first
// completion choice.
func (c *OpenAIClient) Complete(ctx context.Context, system, user string) (string, error) {
	requestData := openAIRequest{
		Model: c.Model,
		Messages: []openAIMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: completionTemperature,
	}
	requestData.ResponseFormat.Type = "json_object"

	payload, err := json.Marshal(requestData)
	if err != nil {
		return "", &UpstreamError{Err: fmt.Errorf("failed to marshal request data: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewBuffer(payload))
	if err != nil {
		return "", &UpstreamError{Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", &UpstreamError{Err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &UpstreamError{Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &UpstreamError{Err: fmt.Errorf("API error: %s", string(body))}
	}

	var responseData struct {
		Choices []struct {
			Message struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &responseData); err != nil {
		return "", &UpstreamError{Err: fmt.Errorf("failed to parse response: %w", err)}
	}

	if len(responseData.Choices) == 0 {
		return "", &UpstreamError{Err: fmt.Errorf("response contained no choices")}
	}
	return responseData.Choices[0].Message.Content, nil
}
