package config

import "time"

// ServerConfig holds the HTTP API settings.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `yaml:"addr"`

	// APIKey, when set, is required on every /api request via the
	// X-API-Key header. Empty disables authentication (local dev).
	APIKey string `yaml:"api_key"`

	// MaxUploadBytes caps multipart upload size.
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`

	// AllowedFileTypes lists accepted upload extensions, lowercase,
	// without the leading dot.
	AllowedFileTypes []string `yaml:"allowed_file_types"`

	// ShutdownTimeout bounds graceful HTTP shutdown.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DefaultServerConfig returns the built-in HTTP defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:             ":8080",
		MaxUploadBytes:   20 << 20,
		AllowedFileTypes: []string{"pdf", "png", "jpg", "jpeg", "tiff", "txt"},
		ShutdownTimeout:  10 * time.Second,
	}
}

// FileTypeAllowed reports whether ext (lowercase, no dot) is accepted.
func (c *ServerConfig) FileTypeAllowed(ext string) bool {
	for _, t := range c.AllowedFileTypes {
		if t == ext {
			return true
		}
	}
	return false
}
