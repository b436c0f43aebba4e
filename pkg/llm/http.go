package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"
)

// Transport retry policy: independent of any per-step retry configuration.
const (
	maxAttempts        = 3
	backoffBase        = 500 * time.Millisecond
	backoffCap         = 8 * time.Second
	defaultTimeoutSecs = 120

	// maxResponseBytes caps how much of a provider response is read.
	maxResponseBytes = 10 * 1024 * 1024
)

// HTTPClient talks to an OpenAI-compatible chat-completions endpoint.
type HTTPClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewHTTPClient builds a client for {baseURL}/chat/completions with bearer
// auth. The inner http.Client carries no timeout of its own; every request
// gets a per-call context deadline.
func NewHTTPClient(baseURL, token string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{},
	}
}

// chat-completions wire format.
type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature *float64  `json:"temperature,omitempty"`
	MaxTokens   *int      `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage *struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

// Complete runs one completion with transport-level retries: up to 3
// attempts with exponential backoff (base 500 ms, cap 8 s, jitter ±25%);
// quota errors double the computed backoff. Fatal kinds return immediately.
func (c *HTTPClient) Complete(ctx context.Context, req Request) (*Response, error) {
	timeout := time.Duration(defaultTimeoutSecs) * time.Second
	if req.TimeoutSecs > 0 {
		timeout = time.Duration(req.TimeoutSecs) * time.Second
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			wait := backoffFor(attempt-1, IsQuotaExceeded(lastErr))
			select {
			case <-ctx.Done():
				return nil, newError(KindTransientTransport, 0, ctx.Err())
			case <-time.After(wait):
			}
		}

		resp, err := c.do(ctx, req, timeout)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if !IsRetryable(err) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("llm call failed after %d attempts: %w", maxAttempts, lastErr)
}

func (c *HTTPClient) do(ctx context.Context, req Request, timeout time.Duration) (*Response, error) {
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	temp := req.Temperature
	body := chatRequest{
		Model:       req.Model,
		Messages:    req.Messages,
		Temperature: &temp,
	}
	if req.MaxTokens > 0 {
		body.MaxTokens = &req.MaxTokens
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, newError(KindSchemaError, 0, fmt.Errorf("encoding request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(callCtx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, newError(KindSchemaError, 0, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, newError(KindTransientTransport, 0, err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBytes))
	if err != nil {
		return nil, newError(KindTransientTransport, httpResp.StatusCode, fmt.Errorf("reading response: %w", err))
	}
	latency := time.Since(start).Milliseconds()

	if httpResp.StatusCode != http.StatusOK {
		return nil, classifyStatus(httpResp.StatusCode, raw)
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, newError(KindSchemaError, httpResp.StatusCode, fmt.Errorf("decoding response: %w", err))
	}
	if len(parsed.Choices) == 0 {
		return nil, newError(KindSchemaError, httpResp.StatusCode, fmt.Errorf("response has no choices"))
	}

	out := &Response{
		Text:      parsed.Choices[0].Message.Content,
		Model:     parsed.Model,
		LatencyMS: latency,
	}
	if out.Model == "" {
		out.Model = req.Model
	}

	if parsed.Usage != nil && (parsed.Usage.PromptTokens > 0 || parsed.Usage.CompletionTokens > 0) {
		out.InputTokens = parsed.Usage.PromptTokens
		out.OutputTokens = parsed.Usage.CompletionTokens
	} else {
		out.InputTokens = EstimateTokens(promptText(req.Messages))
		out.OutputTokens = EstimateTokens(out.Text)
		out.Estimated = true
	}
	return out, nil
}

// classifyStatus maps HTTP status codes onto the error taxonomy.
func classifyStatus(status int, body []byte) error {
	var er errorResponse
	_ = json.Unmarshal(body, &er)
	msg := er.Error.Message
	if msg == "" {
		msg = strings.TrimSpace(string(truncate(body, 200)))
	}
	base := fmt.Errorf("%s", msg)

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return newError(KindAuthFailure, status, base)
	case status == http.StatusTooManyRequests:
		return newError(KindQuotaExceeded, status, base)
	case status == http.StatusNotFound,
		status == http.StatusBadRequest && strings.Contains(strings.ToLower(msg), "model"):
		return newError(KindModelUnavailable, status, base)
	case status == http.StatusRequestTimeout || status >= 500:
		return newError(KindTransientTransport, status, base)
	default:
		return newError(KindSchemaError, status, base)
	}
}

func backoffFor(retry int, quota bool) time.Duration {
	wait := float64(backoffBase) * math.Pow(2, float64(retry-1))
	if quota {
		wait *= 2
	}
	if wait > float64(backoffCap) {
		wait = float64(backoffCap)
	}
	// Jitter ±25%.
	jitter := 0.75 + rand.Float64()*0.5
	return time.Duration(wait * jitter)
}

// EstimateTokens approximates a token count when the provider reports no
// usage: 1 token ≈ 0.75 words.
func EstimateTokens(text string) int {
	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}
	return int(math.Ceil(float64(words) / 0.75))
}

func promptText(messages []Message) string {
	var b strings.Builder
	for _, m := range messages {
		b.WriteString(m.Content)
		b.WriteString("\n")
	}
	return b.String()
}

func truncate(b []byte, n int) []byte {
	if len(b) <= n {
		return b
	}
	return b[:n]
}
