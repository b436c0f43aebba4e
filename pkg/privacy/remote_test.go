package privacy

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

func TestRemoteFilterHappyPath(t *testing.T) {
	var gotReq removeRequest
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/remove-pii", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_ = json.NewEncoder(w).Encode(removeResponse{
			CleanedText:      "Patient [PATIENT_NAME], geb. [BIRTHDATE]",
			ProcessingTimeMS: 42,
			LanguageUsed:     "de",
			Metadata: map[string]interface{}{
				"placeholders": map[string]interface{}{
					"[PATIENT_NAME]": float64(1),
					"[BIRTHDATE]":    float64(1),
				},
			},
		})
	}))
	defer server.Close()

	filter := NewRemoteFilter(server.URL, "pii-key")
	result, err := filter.RemovePII(context.Background(), "Patient Max Beispiel, geb. 01.01.1970",
		"de", []string{"Levodopa"})
	require.NoError(t, err)

	assert.Equal(t, "Patient [PATIENT_NAME], geb. [BIRTHDATE]", result.CleanedText)
	assert.False(t, result.Degraded)
	assert.Equal(t, 1, result.Placeholders["[PATIENT_NAME]"])
	assert.Equal(t, "Bearer pii-key", gotAuth)
	assert.True(t, gotReq.IncludeMetadata)
	assert.Equal(t, []string{"Levodopa"}, gotReq.CustomProtectionTerms)
}

func TestRemoteFilterRetriesThenFails(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	filter := NewRemoteFilter(server.URL, "")
	_, err := filter.RemovePII(context.Background(), "text", "de", nil)
	require.ErrorIs(t, err, ErrRemoteUnavailable)
	assert.Equal(t, int32(remoteMaxAttempts), calls.Load())
}

func TestRemoteFilterBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	filter := NewRemoteFilter(server.URL, "")
	for i := 0; i < 5; i++ {
		_, err := filter.RemovePII(context.Background(), "text", "de", nil)
		require.Error(t, err)
	}

	before := calls.Load()
	_, err := filter.RemovePII(context.Background(), "text", "de", nil)
	require.ErrorIs(t, err, ErrRemoteUnavailable)
	assert.Equal(t, before, calls.Load(), "open breaker must short-circuit without hitting the wire")
}

func TestRemoteFilterBatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/remove-pii/batch", r.URL.Path)
		_, _ = w.Write([]byte(`{"results":[
			{"cleaned_text":"eins [NAME]","language_used":"de"},
			{"cleaned_text":"zwei","language_used":"de"}
		]}`))
	}))
	defer server.Close()

	filter := NewRemoteFilter(server.URL, "")
	results, err := filter.RemovePIIBatch(context.Background(), []string{"a", "b"}, "de", nil)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "eins [NAME]", results[0].CleanedText)
	assert.Equal(t, "zwei", results[1].CleanedText)
}

func TestServiceFallsBackToLocal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	service := NewService(NewRemoteFilter(server.URL, ""), true)
	result, err := service.RemovePII(context.Background(), "Termin am 01.02.2024", "de", nil)
	require.NoError(t, err)
	assert.True(t, result.Degraded)
	assert.Contains(t, result.CleanedText, PlaceholderDate)
}

func TestServiceRemoteDisabled(t *testing.T) {
	service := NewService(nil, false)
	result, err := service.RemovePII(context.Background(), "Tel: 030 1234567", "de", nil)
	require.NoError(t, err)
	assert.True(t, result.Degraded)
	assert.Contains(t, result.CleanedText, PlaceholderPhone)
}
