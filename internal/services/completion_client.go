package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/yungbote/feedback-backend/internal/logger"
	"github.com/yungbote/feedback-backend/internal/utils"
)

// Generation is one completion result: the text plus the provider's raw
// usage object, kept opaque for the audit log.
type Generation struct {
	Text  string
	Usage json.RawMessage
}

// CompletionClient issues one text-generation request against an
// OpenAI-compatible chat completions endpoint. Calls are single-shot:
// a failed call is converted to placeholder content by the caller, so
// retrying here would only delay the submission.
type CompletionClient interface {
	Generate(ctx context.Context, prompt string, temperature float64, maxTokens int) (*Generation, error)
	Model() string
}

type completionClient struct {
	log        *logger.Logger
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewCompletionClient(log *logger.Logger) (CompletionClient, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("missing OPENAI_API_KEY")
	}

	baseURL := utils.GetEnv("OPENAI_BASE_URL", "https://api.openai.com", log)
	model := utils.GetEnv("OPENAI_MODEL", "gpt-4o-mini", log)
	timeoutSec := utils.GetEnvAsInt("OPENAI_TIMEOUT_SECONDS", 30, log)
	if timeoutSec <= 0 {
		timeoutSec = 30
	}

	return &completionClient{
		log:        log.With("service", "CompletionClient"),
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
	}, nil
}

func (c *completionClient) Model() string {
	return c.model
}

type completionHTTPError struct {
	StatusCode int
	Body       string
}

func (e *completionHTTPError) Error() string {
	return fmt.Sprintf("completion api http %d: %s", e.StatusCode, e.Body)
}

type chatCompletionsRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionsResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage json.RawMessage `json:"usage"`
}

func (c *completionClient) Generate(ctx context.Context, prompt string, temperature float64, maxTokens int) (*Generation, error) {
	req := chatCompletionsRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(req); err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", &buf)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return nil, readErr
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &completionHTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var out chatCompletionsResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("completion decode error: %w; raw=%s", err, string(raw))
	}
	if len(out.Choices) == 0 {
		return nil, fmt.Errorf("completion response contained no choices")
	}
	return &Generation{Text: strings.TrimSpace(out.Choices[0].Message.Content), Usage: out.Usage}, nil
}
