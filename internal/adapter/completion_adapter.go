package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	// DefaultCompletionURL is the API base URL used when none is configured.
	// The chat completions path is appended by the client.
	DefaultCompletionURL = "https://api.openai.com/v1"
	// DefaultCompletionModel is the model identifier used when none is configured.
	DefaultCompletionModel = openai.GPT3Dot5Turbo

	chatCompletionsSuffix = "/chat/completions"
)

var (
	// ErrMissingCredential indicates no API key was configured. No request is made.
	ErrMissingCredential = errors.New("completion API key not configured")
	// ErrRequestRejected indicates the endpoint answered 400 Bad Request.
	ErrRequestRejected = errors.New("completion request rejected")
	// ErrUnexpectedStatus indicates any other non-success HTTP status.
	ErrUnexpectedStatus = errors.New("completion request failed")
	// ErrTransport indicates a network-level failure before a response was received.
	ErrTransport = errors.New("completion transport failure")
	// ErrMalformedResponse indicates a success response that carried no usable text.
	ErrMalformedResponse = errors.New("malformed completion response")
)

// CompletionAdapter sends a single prompt to a remote text-completion endpoint.
type CompletionAdapter interface {
	// Complete returns the generated text of the first completion choice.
	Complete(ctx context.Context, prompt string) (string, error)
	// Configured reports whether a credential is available.
	Configured() bool
}

// CompletionConfig configures the HTTP completion adapter.
type CompletionConfig struct {
	APIKey  string        // bearer credential; empty disables every call
	URL     string        // API base URL (default DefaultCompletionURL)
	Model   string        // model identifier (default DefaultCompletionModel)
	Timeout time.Duration // zero keeps the transport defaults
}

// HTTPCompletionAdapter talks to an OpenAI-compatible chat completions endpoint.
type HTTPCompletionAdapter struct {
	client *openai.Client
	apiKey string
	url    string
	model  string
}

// NewHTTPCompletionAdapter builds an adapter from cfg, filling defaults.
func NewHTTPCompletionAdapter(cfg CompletionConfig) *HTTPCompletionAdapter {
	return NewHTTPCompletionAdapterWithClient(&http.Client{Timeout: cfg.Timeout}, cfg)
}

// NewHTTPCompletionAdapterWithClient builds an adapter that sends requests through client.
func NewHTTPCompletionAdapterWithClient(client *http.Client, cfg CompletionConfig) *HTTPCompletionAdapter {
	baseURL := normalizeBaseURL(cfg.URL)

	model := cfg.Model
	if model == "" {
		model = DefaultCompletionModel
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = baseURL
	clientConfig.HTTPClient = client

	return &HTTPCompletionAdapter{
		client: openai.NewClientWithConfig(clientConfig),
		apiKey: cfg.APIKey,
		url:    baseURL,
		model:  model,
	}
}

// normalizeBaseURL accepts either the API base or a full chat completions URL.
func normalizeBaseURL(raw string) string {
	if raw == "" {
		return DefaultCompletionURL
	}

	return strings.TrimSuffix(strings.TrimSuffix(raw, "/"), chatCompletionsSuffix)
}

// Configured reports whether a credential is available.
func (a *HTTPCompletionAdapter) Configured() bool {
	return a.apiKey != ""
}

// Complete posts prompt as a single user message and returns the first choice.
// There is no retry: each call is one best-effort attempt.
func (a *HTTPCompletionAdapter) Complete(ctx context.Context, prompt string) (string, error) {
	if !a.Configured() {
		return "", ErrMissingCredential
	}

	start := time.Now()

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", classifyCompletionError(a.url, err)
	}

	slog.Debug("Completion request finished", "elapsed", time.Since(start), "choices", len(resp.Choices))

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices", ErrMalformedResponse)
	}

	return resp.Choices[0].Message.Content, nil
}

// classifyCompletionError maps client errors onto the adapter's sentinel errors.
func classifyCompletionError(endpoint string, err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return statusError(apiErr.HTTPStatusCode, err)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return statusError(reqErr.HTTPStatusCode, err)
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		slog.Error("Completion request failed", "url", endpoint, "error", err)
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}

	slog.Error("Completion response could not be decoded", "url", endpoint, "error", err)

	return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
}

func statusError(status int, err error) error {
	if status == http.StatusBadRequest {
		slog.Warn("Completion request rejected", "error", err)
		return fmt.Errorf("%w: %v", ErrRequestRejected, err)
	}

	slog.Error("Completion request returned error status", "status", status, "error", err)

	return fmt.Errorf("%w: %d: %v", ErrUnexpectedStatus, status, err)
}
