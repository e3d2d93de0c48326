// Package messaging selects and builds the messaging backend for the configured mode.
package messaging

import (
	"context"
	"fmt"
	"github.com/ilindan-dev/sns-notifier/internal/config"
	"github.com/ilindan-dev/sns-notifier/internal/domain/backend"
	"github.com/ilindan-dev/sns-notifier/internal/messaging/sns"
	"github.com/rs/zerolog"
)

// NewBackend returns the SNS backend in production mode and the LogBackend otherwise.
func NewBackend(cfg *config.Config, logger *zerolog.Logger) (backend.Backend, error) {
	log := logger.With().Str("component", "messaging").Logger()

	if cfg.Notifiers.Mode != config.ModeProduction {
		log.Info().Str("mode", cfg.Notifiers.Mode).Msg("using log backend, nothing will be delivered")
		return NewLogBackend(logger), nil
	}

	client, err := sns.NewClient(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sns backend: %w", err)
	}
	log.Info().Str("region", cfg.AWS.Region).Msg("sns backend enabled")
	return sns.NewBackend(client, logger), nil
}
