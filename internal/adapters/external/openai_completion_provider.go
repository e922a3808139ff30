package external

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
	"kisankalyan.app/internal/ports"
	"kisankalyan.app/pkg/errors"
)

const (
	openAIName               = "openai"
	defaultOpenAIBaseURL     = "https://api.openai.com/v1"
	defaultOpenAIModel       = "gpt-4o"
	defaultCompletionTimeout = 30 * time.Second
	defaultRequestsPerMinute = 60
)

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIResponseFormat struct {
	Type string `json:"type"`
}

type openAIChatRequest struct {
	Model          string                `json:"model"`
	Messages       []openAIMessage       `json:"messages"`
	Temperature    float64               `json:"temperature,omitempty"`
	MaxTokens      int                   `json:"max_tokens,omitempty"`
	ResponseFormat *openAIResponseFormat `json:"response_format,omitempty"`
}

type openAIChatResponse struct {
	Choices []struct {
		Message openAIMessage `json:"message"`
	} `json:"choices"`
}

// OpenAICompletionProvider implements CompletionProvider against an
// OpenAI-compatible chat completions endpoint.
type OpenAICompletionProvider struct {
	apiKey  string
	baseURL string
	model   string
	client  HTTPClient
	limiter *rate.Limiter
}

type OpenAICompletionProviderParams struct {
	APIKey            string
	BaseURL           string
	Model             string
	Timeout           time.Duration
	RequestsPerMinute int
	// Client overrides the traced default client.
	Client HTTPClient
}

func NewOpenAICompletionProvider(params OpenAICompletionProviderParams) *OpenAICompletionProvider {
	baseURL := strings.TrimRight(strings.TrimSpace(params.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultOpenAIBaseURL
	}
	model := params.Model
	if model == "" {
		model = defaultOpenAIModel
	}
	timeout := params.Timeout
	if timeout <= 0 {
		timeout = defaultCompletionTimeout
	}
	rpm := params.RequestsPerMinute
	if rpm <= 0 {
		rpm = defaultRequestsPerMinute
	}
	client := params.Client
	if client == nil {
		client = NewTracedHTTPClient(timeout)
	}

	return &OpenAICompletionProvider{
		apiKey:  strings.TrimSpace(params.APIKey),
		baseURL: baseURL,
		model:   model,
		client:  client,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(rpm)), rpm),
	}
}

// Complete sends one system and one user message and returns the first
// choice's content. The contextual hint is already part of UserContent.
func (p *OpenAICompletionProvider) Complete(ctx context.Context, request ports.CompletionRequest) (string, error) {
	if !p.IsConfigured() {
		return "", errors.NewConfigurationError("OpenAI API key is not configured", nil)
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return "", errors.NewExternalAPIError("completion rate limit wait aborted", err)
	}

	body := openAIChatRequest{
		Model: p.model,
		Messages: []openAIMessage{
			{Role: "system", Content: request.SystemInstruction},
			{Role: "user", Content: request.UserContent},
		},
		Temperature: request.Temperature,
		MaxTokens:   request.MaxOutputTokens,
	}
	if request.JSONOutput {
		body.ResponseFormat = &openAIResponseFormat{Type: "json_object"}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", errors.NewExternalAPIError("encode chat completion request", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", errors.NewExternalAPIError("build chat completion request", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", errors.NewExternalAPIError("request chat completion", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		cause := fmt.Errorf("status=%d body=%s", resp.StatusCode, readErrorBody(resp.Body))
		if resp.StatusCode == http.StatusUnauthorized {
			return "", errors.NewConfigurationError("OpenAI rejected the API key", cause)
		}
		return "", errors.NewExternalAPIError("chat completion request failed", cause)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.NewExternalAPIError("read chat completion response", err)
	}
	var out openAIChatResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", errors.NewExternalAPIError("decode chat completion", err)
	}
	if len(out.Choices) == 0 {
		return "", errors.NewExternalAPIError("chat completion returned no choices", nil)
	}
	return out.Choices[0].Message.Content, nil
}

func (p *OpenAICompletionProvider) IsConfigured() bool {
	return p.apiKey != ""
}

func (p *OpenAICompletionProvider) GetProviderName() string {
	return openAIName
}
