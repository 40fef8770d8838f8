package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const systemPrompt = "You are a financial transaction classifier. You MUST respond with ONLY a valid JSON object " +
	`of the form {"category": "<one of the allowed categories>", "confidence": <number between 0 and 1>}. ` +
	"Do not include any explanatory text or markdown formatting."

// openAIClient talks to an OpenAI compatible chat completions endpoint
type openAIClient struct {
	httpClient  *http.Client
	endpoint    string
	apiKey      string
	model       string
	temperature float64
	maxTokens   int
}

// NewOpenAIClient creates a classifier backed by a chat completions API
func NewOpenAIClient(cfg Config) (ClassifierInterface, error) {
	if cfg.APIKey == "" {
		return nil, ErrAPIKeyRequired
	}
	if cfg.Endpoint == "" {
		return nil, ErrEndpointRequired
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.1
	}

	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 60
	}

	return &openAIClient{
		endpoint:    cfg.Endpoint,
		apiKey:      cfg.APIKey,
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}, nil
}

// Classify sends a classification request and parses the model's JSON answer
func (c *openAIClient) Classify(ctx context.Context, req Request) (*Prediction, error) {
	requestBody := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": buildPrompt(req)},
		},
		"temperature": c.temperature,
		"max_tokens":  c.maxTokens,
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("classifier API error (status %d): %s", resp.StatusCode, string(body))
	}

	var response chatCompletionResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if len(response.Choices) == 0 {
		return nil, ErrNoChoices
	}

	return parsePrediction(response.Choices[0].Message.Content)
}

func buildPrompt(req Request) string {
	var b strings.Builder
	b.WriteString("Classify this transaction into exactly one category.\n")
	fmt.Fprintf(&b, "Description: %s\n", req.Description)
	if req.MerchantName != "" {
		fmt.Fprintf(&b, "Merchant: %s\n", req.MerchantName)
	}
	fmt.Fprintf(&b, "Amount: %s\n", req.Amount.StringFixed(2))
	if len(req.Categories) > 0 {
		fmt.Fprintf(&b, "Allowed categories: %s\n", strings.Join(req.Categories, ", "))
	}
	return b.String()
}

func parsePrediction(content string) (*Prediction, error) {
	var prediction Prediction
	if err := json.Unmarshal([]byte(cleanMarkdownWrapper(content)), &prediction); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	prediction.Category = strings.TrimSpace(prediction.Category)
	if prediction.Category == "" {
		return nil, ErrNoCategory
	}

	return &prediction, nil
}

// cleanMarkdownWrapper strips a ```json fence some models wrap their answer in
func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}

	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}

type chatCompletionResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
		Index        int    `json:"index"`
	} `json:"choices"`
}
