package privacy

import (
	"context"
	"log/slog"
)

// Service is the composite filter the worker uses: remote first, local
// fallback when the remote path is disabled or yields no result.
type Service struct {
	remote *RemoteFilter
	local  *LocalFilter
	logger *slog.Logger

	// useRemote mirrors USE_EXTERNAL_PII. When false the remote client is
	// never consulted.
	useRemote bool
}

// NewService wires the composite filter. remote may be nil when no external
// service is configured.
func NewService(remote *RemoteFilter, useRemote bool) *Service {
	return &Service{
		remote:    remote,
		local:     NewLocalFilter(),
		logger:    slog.With("component", "privacy"),
		useRemote: useRemote && remote != nil,
	}
}

// RemovePII cleans text through the remote service, degrading to the local
// regex filter on any remote failure. The degraded path is always available
// and never returns an error.
func (s *Service) RemovePII(ctx context.Context, text, language string, protectedTerms []string) (*Result, error) {
	if s.useRemote {
		result, err := s.remote.RemovePII(ctx, text, language, protectedTerms)
		if err == nil {
			return result, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		s.logger.Warn("Remote PII removal failed, using local fallback", "error", err)
	}
	return s.local.RemovePII(ctx, text, language, protectedTerms)
}
