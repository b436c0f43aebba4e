package config

import "time"

// PrivacyConfig holds the privacy filter settings: the remote PII service
// plus the circuit breaker guarding it.
type PrivacyConfig struct {
	// UseExternal selects the remote service. When false the local regex
	// filter runs exclusively and results are flagged degraded.
	UseExternal bool `yaml:"use_external"`

	// ExternalURL is the remote service root (POST /remove-pii).
	ExternalURL string `yaml:"external_url"`

	// APIKey is the bearer token for the remote service.
	APIKey string `yaml:"api_key"`

	// RequestTimeout bounds each remote call.
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// DefaultLanguage is passed when the job does not specify one.
	DefaultLanguage string `yaml:"default_language"`

	// BreakerFailures is the consecutive-failure count that trips the
	// circuit breaker into the local fallback.
	BreakerFailures int `yaml:"breaker_failures"`

	// BreakerCooldown is how long the breaker stays open before probing
	// the remote service again.
	BreakerCooldown time.Duration `yaml:"breaker_cooldown"`

	Retry RetryConfig `yaml:"retry"`
}

// DefaultPrivacyConfig returns the built-in privacy filter defaults.
func DefaultPrivacyConfig() *PrivacyConfig {
	return &PrivacyConfig{
		UseExternal:     false,
		RequestTimeout:  30 * time.Second,
		DefaultLanguage: "de",
		BreakerFailures: 5,
		BreakerCooldown: 30 * time.Second,
		Retry:           DefaultRetryConfig(),
	}
}
