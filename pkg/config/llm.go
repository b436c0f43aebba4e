package config

import "time"

// LLMConfig holds the chat-completions provider settings. The model registry
// (names, prices, limits) lives in the database; this covers the transport.
type LLMConfig struct {
	// BaseURL is the provider root; the client appends /chat/completions.
	BaseURL string `yaml:"base_url"`

	// AccessToken is the bearer token. Populated from
	// OVH_AI_ENDPOINTS_ACCESS_TOKEN.
	AccessToken string `yaml:"access_token"`

	// RequestTimeout is the default per-call timeout. The model registry
	// may override it per model.
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// MaxResponseBytes caps the response body read.
	MaxResponseBytes int64 `yaml:"max_response_bytes"`

	Retry RetryConfig `yaml:"retry"`
}

// RetryConfig holds transport-level retry settings, applied inside the LLM
// client independently of per-step retry policies.
type RetryConfig struct {
	// MaxAttempts is the total number of attempts, first call included.
	MaxAttempts int `yaml:"max_attempts"`

	// BackoffBase is the initial backoff duration.
	BackoffBase time.Duration `yaml:"backoff_base"`

	// BackoffCap bounds the exponential growth.
	BackoffCap time.Duration `yaml:"backoff_cap"`

	// JitterPct spreads each backoff by ±N percent.
	JitterPct int `yaml:"jitter_pct"`
}

// DefaultLLMConfig returns the built-in LLM transport defaults.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		RequestTimeout:   120 * time.Second,
		MaxResponseBytes: 10 * 1024 * 1024,
		Retry:            DefaultRetryConfig(),
	}
}

// DefaultRetryConfig returns the built-in transport retry defaults.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		BackoffBase: 500 * time.Millisecond,
		BackoffCap:  8 * time.Second,
		JitterPct:   25,
	}
}
