package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completionBody(t *testing.T, content string, promptTokens, completionTokens int) []byte {
	t.Helper()
	body := map[string]interface{}{
		"model": "test-model",
		"choices": []map[string]interface{}{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	}
	if promptTokens > 0 || completionTokens > 0 {
		body["usage"] = map[string]int{
			"prompt_tokens":     promptTokens,
			"completion_tokens": completionTokens,
			"total_tokens":      promptTokens + completionTokens,
		}
	}
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	return raw
}

func TestCompleteHappyPath(t *testing.T) {
	var gotReq chatRequest
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/chat/completions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_, _ = w.Write(completionBody(t, "ARZTBRIEF", 120, 4))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, "secret-token")
	resp, err := client.Complete(context.Background(), Request{
		Model:       "Mistral-Nemo-Instruct-2407",
		Temperature: 0.2,
		MaxTokens:   64,
		Messages: []Message{
			{Role: RoleSystem, Content: "Du bist ein Klassifizierer."},
			{Role: RoleUser, Content: "Klassifiziere diesen Text."},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "ARZTBRIEF", resp.Text)
	assert.Equal(t, 120, resp.InputTokens)
	assert.Equal(t, 4, resp.OutputTokens)
	assert.False(t, resp.Estimated)
	assert.Equal(t, "Bearer secret-token", gotAuth)

	// Role separation survives the wire.
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, RoleSystem, gotReq.Messages[0].Role)
	assert.Equal(t, RoleUser, gotReq.Messages[1].Role)
	require.NotNil(t, gotReq.Temperature)
	assert.Equal(t, 0.2, *gotReq.Temperature)
	require.NotNil(t, gotReq.MaxTokens)
	assert.Equal(t, 64, *gotReq.MaxTokens)
}

func TestCompleteEstimatesTokensWithoutUsage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(completionBody(t, "drei kurze Worte", 0, 0))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, "")
	resp, err := client.Complete(context.Background(), Request{
		Model:    "m",
		Messages: []Message{{Role: RoleUser, Content: "eins zwei drei vier"}},
	})
	require.NoError(t, err)
	assert.True(t, resp.Estimated)
	assert.Equal(t, 4, resp.OutputTokens) // ceil(3/0.75)
	assert.Equal(t, 6, resp.InputTokens)  // ceil(4/0.75)
}

func TestCompleteRetriesTransient(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write(completionBody(t, "ok", 10, 1))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, "")
	resp, err := client.Complete(context.Background(), Request{
		Model:    "m",
		Messages: []Message{{Role: RoleUser, Content: "hallo"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Text)
	assert.Equal(t, int32(3), calls.Load())
}

func TestCompleteExhaustsRetries(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, "")
	_, err := client.Complete(context.Background(), Request{
		Model:    "m",
		Messages: []Message{{Role: RoleUser, Content: "hallo"}},
	})
	require.Error(t, err)
	assert.Equal(t, int32(maxAttempts), calls.Load())
	assert.Equal(t, KindTransientTransport, KindOf(err))
}

func TestCompleteFatalErrorsDoNotRetry(t *testing.T) {
	tests := []struct {
		name   string
		status int
		kind   ErrorKind
	}{
		{"auth failure", http.StatusUnauthorized, KindAuthFailure},
		{"forbidden", http.StatusForbidden, KindAuthFailure},
		{"unprocessable", http.StatusUnprocessableEntity, KindSchemaError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"error":{"message":"nope"}}`))
			}))
			defer server.Close()

			client := NewHTTPClient(server.URL, "")
			_, err := client.Complete(context.Background(), Request{
				Model:    "m",
				Messages: []Message{{Role: RoleUser, Content: "hallo"}},
			})
			require.Error(t, err)
			assert.Equal(t, tt.kind, KindOf(err))
			assert.False(t, IsRetryable(err))
			assert.Equal(t, int32(1), calls.Load(), "fatal errors must not retry")
		})
	}
}

func TestClassifyStatus(t *testing.T) {
	assert.Equal(t, KindQuotaExceeded, KindOf(classifyStatus(429, nil)))
	assert.Equal(t, KindModelUnavailable, KindOf(classifyStatus(404, nil)))
	assert.Equal(t, KindModelUnavailable,
		KindOf(classifyStatus(400, []byte(`{"error":{"message":"model not found"}}`))))
	assert.Equal(t, KindTransientTransport, KindOf(classifyStatus(408, nil)))
	assert.Equal(t, KindTransientTransport, KindOf(classifyStatus(500, nil)))
	assert.True(t, IsQuotaExceeded(classifyStatus(429, nil)))
}

func TestCompleteRespectsCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewHTTPClient(server.URL, "")
	_, err := client.Complete(ctx, Request{
		Model:    "m",
		Messages: []Message{{Role: RoleUser, Content: "hallo"}},
	})
	require.Error(t, err)
}

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, 0, EstimateTokens(""))
	assert.Equal(t, 2, EstimateTokens("ein"))        // ceil(1/0.75)
	assert.Equal(t, 4, EstimateTokens("a b c"))      // ceil(3/0.75)
	assert.Equal(t, 8, EstimateTokens("a b c d e f")) // ceil(6/0.75)
}
