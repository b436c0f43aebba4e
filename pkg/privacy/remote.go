package privacy

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker"
)

// Transport retry policy for the removal service, aligned with the LLM
// client: ≤3 attempts, exponential backoff with jitter.
const (
	remoteMaxAttempts = 3
	remoteBackoffBase = 500 * time.Millisecond
	remoteBackoffCap  = 8 * time.Second

	defaultRemoteTimeout = 60 * time.Second
	maxRemoteResponse    = 32 * 1024 * 1024
)

// ErrRemoteUnavailable wraps any condition under which the remote service
// produced no usable result: transport exhaustion, open breaker, or 5xx.
var ErrRemoteUnavailable = errors.New("pii removal service unavailable")

// RemoteFilter calls the external removal service. Failures trip a circuit
// breaker; while the breaker is open, calls short-circuit immediately so the
// caller can fall back without waiting out timeouts.
type RemoteFilter struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
}

// NewRemoteFilter builds the client for {baseURL}/remove-pii with bearer
// auth. The breaker opens after 5 consecutive failures and half-opens after
// 30 seconds.
func NewRemoteFilter(baseURL, apiKey string) *RemoteFilter {
	return &RemoteFilter{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultRemoteTimeout},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "pii-remote",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		}),
	}
}

type removeRequest struct {
	Text                  string   `json:"text"`
	Language              string   `json:"language"`
	IncludeMetadata       bool     `json:"include_metadata"`
	CustomProtectionTerms []string `json:"custom_protection_terms,omitempty"`
}

type removeResponse struct {
	CleanedText      string                 `json:"cleaned_text"`
	ProcessingTimeMS int64                  `json:"processing_time_ms"`
	LanguageUsed     string                 `json:"language_used"`
	Metadata         map[string]interface{} `json:"metadata"`
}

// RemovePII calls the remote service through the breaker.
func (f *RemoteFilter) RemovePII(ctx context.Context, text, language string, protectedTerms []string) (*Result, error) {
	out, err := f.breaker.Execute(func() (interface{}, error) {
		return f.call(ctx, "/remove-pii", removeRequest{
			Text:                  text,
			Language:              language,
			IncludeMetadata:       true,
			CustomProtectionTerms: protectedTerms,
		})
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: circuit open", ErrRemoteUnavailable)
		}
		return nil, err
	}
	return out.(*Result), nil
}

// RemovePIIBatch cleans several texts in one round trip via the batch
// endpoint. Results come back in input order.
func (f *RemoteFilter) RemovePIIBatch(ctx context.Context, texts []string, language string, protectedTerms []string) ([]*Result, error) {
	type batchRequest struct {
		Texts                 []string `json:"texts"`
		Language              string   `json:"language"`
		IncludeMetadata       bool     `json:"include_metadata"`
		CustomProtectionTerms []string `json:"custom_protection_terms,omitempty"`
	}
	type batchResponse struct {
		Results []removeResponse `json:"results"`
	}

	body, err := json.Marshal(batchRequest{
		Texts:                 texts,
		Language:              language,
		IncludeMetadata:       true,
		CustomProtectionTerms: protectedTerms,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding batch request: %w", err)
	}

	raw, err := f.post(ctx, "/remove-pii/batch", body)
	if err != nil {
		return nil, err
	}

	var parsed batchResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("decoding batch response: %w", err)
	}
	if len(parsed.Results) != len(texts) {
		return nil, fmt.Errorf("batch returned %d results for %d texts", len(parsed.Results), len(texts))
	}

	results := make([]*Result, len(parsed.Results))
	for i, r := range parsed.Results {
		results[i] = toResult(r)
	}
	return results, nil
}

func (f *RemoteFilter) call(ctx context.Context, path string, req removeRequest) (*Result, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}
	raw, err := f.post(ctx, path, body)
	if err != nil {
		return nil, err
	}
	var parsed removeResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return toResult(parsed), nil
}

// post sends one request with transport retries. 4xx responses are not
// retried; network errors and 5xx are.
func (f *RemoteFilter) post(ctx context.Context, path string, body []byte) ([]byte, error) {
	var lastErr error
	for attempt := 1; attempt <= remoteMaxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(remoteBackoff(attempt - 1)):
			}
		}

		raw, retryable, err := f.doPost(ctx, path, body)
		if err == nil {
			return raw, nil
		}
		lastErr = err
		if !retryable {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: %v", ErrRemoteUnavailable, lastErr)
}

func (f *RemoteFilter) doPost(ctx context.Context, path string, body []byte) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("Content-Type", "application/json")
	if f.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.apiKey)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, true, err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxRemoteResponse))
	if err != nil {
		return nil, true, fmt.Errorf("reading response: %w", err)
	}
	switch {
	case resp.StatusCode == http.StatusOK:
		return raw, false, nil
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		return nil, true, fmt.Errorf("removal service returned %d", resp.StatusCode)
	default:
		return nil, false, fmt.Errorf("removal service rejected request with %d", resp.StatusCode)
	}
}

func remoteBackoff(retry int) time.Duration {
	wait := float64(remoteBackoffBase) * math.Pow(2, float64(retry-1))
	if wait > float64(remoteBackoffCap) {
		wait = float64(remoteBackoffCap)
	}
	return time.Duration(wait * (0.75 + rand.Float64()*0.5))
}

func toResult(r removeResponse) *Result {
	res := &Result{
		CleanedText:      r.CleanedText,
		ProcessingTimeMS: r.ProcessingTimeMS,
		LanguageUsed:     r.LanguageUsed,
		Placeholders:     make(map[string]int),
	}
	if counts, ok := r.Metadata["placeholders"].(map[string]interface{}); ok {
		for k, v := range counts {
			if n, ok := v.(float64); ok {
				res.Placeholders[k] = int(n)
			}
		}
	}
	return res
}
