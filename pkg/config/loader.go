package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// flagEnvPrefix marks environment variables that override database feature
// flags: FEATURE_FLAG_PII_ENABLED=false overrides the pii_enabled row.
const flagEnvPrefix = "FEATURE_FLAG_"

// Initialize builds the runtime configuration: built-in defaults, overlaid
// by the optional YAML file named in BEFUND_CONFIG, with the deployment
// environment variables winning last. The returned config is validated and
// ready for use.
func Initialize() (*Config, error) {
	cfg := &Config{
		Queue:         DefaultQueueConfig(),
		Retention:     DefaultRetentionConfig(),
		LLM:           DefaultLLMConfig(),
		Privacy:       DefaultPrivacyConfig(),
		Server:        DefaultServerConfig(),
		FlagOverrides: make(map[string]bool),
	}

	if path := os.Getenv("BEFUND_CONFIG"); path != "" {
		if err := applyOverlay(cfg, path); err != nil {
			return nil, err
		}
		cfg.configFile = path
	}

	applyEnv(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	slog.Info("Configuration initialized",
		"overlay", cfg.configFile != "",
		"workers", cfg.Queue.WorkerCount,
		"redis", cfg.Queue.RedisURL != "",
		"external_pii", cfg.Privacy.UseExternal,
		"flag_overrides", len(cfg.FlagOverrides))
	return cfg, nil
}

// applyOverlay merges a YAML file over the defaults. Environment references
// in the file use {{.VAR}} template syntax (see ExpandEnv).
func applyOverlay(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &LoadError{File: path, Err: err}
	}

	var overlay Config
	if err := yaml.Unmarshal(ExpandEnv(data), &overlay); err != nil {
		return &LoadError{File: path, Err: fmt.Errorf("%w: %v", ErrInvalidYAML, err)}
	}
	if err := mergo.Merge(cfg, &overlay, mergo.WithOverride); err != nil {
		return &LoadError{File: path, Err: err}
	}
	return nil
}

// applyEnv applies the deployment-contract environment variables. These win
// over both defaults and the YAML overlay.
func applyEnv(cfg *Config) {
	setString(&cfg.Queue.RedisURL, "REDIS_URL")
	setString(&cfg.LLM.BaseURL, "OVH_AI_BASE_URL")
	setString(&cfg.LLM.AccessToken, "OVH_AI_ENDPOINTS_ACCESS_TOKEN")
	setString(&cfg.Privacy.ExternalURL, "EXTERNAL_PII_URL")
	setString(&cfg.Privacy.APIKey, "EXTERNAL_PII_API_KEY")
	setString(&cfg.EncryptionKey, "ENCRYPTION_KEY")
	setString(&cfg.Server.APIKey, "API_KEY")

	if v := os.Getenv("USE_EXTERNAL_PII"); v != "" {
		cfg.Privacy.UseExternal = parseBool(v)
	}
	if v := os.Getenv("WORKER_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Queue.WorkerCount = n
		}
	}
	if v := os.Getenv("DATA_RETENTION_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Retention.DataRetentionHours = n
		}
	}
	if v := os.Getenv("JOB_TIMEOUT_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Queue.JobTimeout = time.Duration(n) * time.Minute
		}
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Addr = ":" + v
	}

	for _, env := range os.Environ() {
		name, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(name, flagEnvPrefix) {
			continue
		}
		flag := strings.ToLower(strings.TrimPrefix(name, flagEnvPrefix))
		if flag == "" {
			continue
		}
		cfg.FlagOverrides[flag] = parseBool(value)
	}
}

func setString(dst *string, envName string) {
	if v := os.Getenv(envName); v != "" {
		*dst = v
	}
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// validate rejects configurations that cannot run.
func validate(cfg *Config) error {
	if cfg.Queue.WorkerCount < 1 {
		return NewValidationError("queue", "worker_count", ErrInvalidValue)
	}
	if cfg.Queue.JobTimeout <= 0 {
		return NewValidationError("queue", "job_timeout", ErrInvalidValue)
	}
	if cfg.Queue.MaxJobRetries < 0 {
		return NewValidationError("queue", "max_job_retries", ErrInvalidValue)
	}
	if cfg.Retention.DataRetentionHours < 1 {
		return NewValidationError("retention", "data_retention_hours", ErrInvalidValue)
	}
	if cfg.LLM.Retry.MaxAttempts < 1 {
		return NewValidationError("llm", "retry.max_attempts", ErrInvalidValue)
	}
	if cfg.Privacy.UseExternal && cfg.Privacy.ExternalURL == "" {
		return NewValidationError("privacy", "external_url", ErrMissingRequiredField)
	}
	if cfg.Server.MaxUploadBytes <= 0 {
		return NewValidationError("server", "max_upload_bytes", ErrInvalidValue)
	}
	return nil
}
