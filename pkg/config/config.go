package config

// Config is the umbrella configuration object returned by Initialize() and
// used throughout the application. Sections come from built-in defaults,
// optionally overlaid by a YAML file, with environment variables winning for
// the operational knobs named in the deployment contract (DATABASE_URL,
// REDIS_URL, ENCRYPTION_KEY, ...).
type Config struct {
	configFile string // overlay path, empty when running on pure defaults+env

	Queue     *QueueConfig     `yaml:"queue"`
	Retention *RetentionConfig `yaml:"retention"`
	LLM       *LLMConfig       `yaml:"llm"`
	Privacy   *PrivacyConfig   `yaml:"privacy"`
	Server    *ServerConfig    `yaml:"server"`

	// EncryptionKey is the base64-encoded 32-byte master key sealing the
	// data encryption key at rest. Required outside of tests.
	EncryptionKey string `yaml:"encryption_key"`

	// FlagOverrides holds FEATURE_FLAG_* environment overrides, keyed by
	// lowercased flag name. They win over database rows.
	FlagOverrides map[string]bool `yaml:"-"`
}

// ConfigFile returns the overlay file path, if one was loaded.
func (c *Config) ConfigFile() string {
	return c.configFile
}

// FlagOverride reports the environment override for a feature flag, if any.
func (c *Config) FlagOverride(name string) (value, ok bool) {
	value, ok = c.FlagOverrides[name]
	return value, ok
}
