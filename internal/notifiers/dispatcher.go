package notifiers

import (
	"context"
	"fmt"
	"github.com/ilindan-dev/sns-notifier/internal/config"
	"github.com/ilindan-dev/sns-notifier/internal/domain/backend"
	"github.com/ilindan-dev/sns-notifier/internal/domain/model"
	"github.com/rs/zerolog"
)

// Dispatcher is a composite notifier that routes requests to the correct channel-specific notifier.
// It implements the Notifier interface itself and holds no per-request state.
type Dispatcher struct {
	notifiers map[model.Channel]Notifier
	logger    zerolog.Logger
}

// NewDispatcher creates a Dispatcher with one notifier per channel, all sharing the given backend.
func NewDispatcher(cfg *config.Config, b backend.Backend, logger *zerolog.Logger) *Dispatcher {
	log := logger.With().Str("component", "dispatcher").Logger()
	log.Info().Str("mode", cfg.Notifiers.Mode).Msg("initializing notifiers")

	return &Dispatcher{
		notifiers: map[model.Channel]Notifier{
			model.ChannelSMS:   NewSMSNotifier(b, logger),
			model.ChannelEmail: NewEmailNotifier(b, cfg.AWS.EmailTopicARN, logger),
			model.ChannelPush:  NewPushNotifier(b, logger),
		},
		logger: log,
	}
}

// Send implements the Notifier interface. It finds the correct notifier for the
// request's channel and delegates the send operation to it.
func (d *Dispatcher) Send(ctx context.Context, req model.Request) (model.DispatchOutcome, error) {
	notifier, ok := d.notifiers[req.Channel()]
	if !ok {
		d.logger.Error().Str("channel", string(req.Channel())).Msg("no notifier found for channel")
		return model.DispatchOutcome{}, fmt.Errorf("notifier for channel %s not found", req.Channel())
	}

	return notifier.Send(ctx, req)
}
