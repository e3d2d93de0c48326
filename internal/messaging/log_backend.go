package messaging

import (
	"context"
	"github.com/google/uuid"
	"github.com/ilindan-dev/sns-notifier/internal/domain/backend"
	"github.com/rs/zerolog"
)

// Ensure LogBackend implements the interface
var _ backend.Backend = (*LogBackend)(nil)

// LogBackend is a mock backend that implements the backend.Backend interface.
// It simply logs each call instead of reaching the messaging provider and
// returns a random UUID as the message ID. This is useful for development and testing.
type LogBackend struct {
	logger zerolog.Logger
}

// NewLogBackend creates a new instance of LogBackend.
func NewLogBackend(logger *zerolog.Logger) *LogBackend {
	return &LogBackend{
		logger: logger.With().Str("component", "log_backend").Logger(),
	}
}

// Publish implements the backend.Backend interface.
func (b *LogBackend) Publish(_ context.Context, in backend.PublishInput) (string, error) {
	id := uuid.NewString()
	b.logger.Info().
		Str("message_id", id).
		Str("phone_number", in.PhoneNumber).
		Str("topic_arn", in.TopicARN).
		Str("target_arn", in.TargetARN).
		Str("subject", in.Subject).
		Interface("attributes", in.Attributes).
		Msg(">>> MOCK PUBLISH: Notification dispatched")
	return id, nil
}

// PublishStructured implements the backend.Backend interface.
func (b *LogBackend) PublishStructured(_ context.Context, targetARN string, msg backend.StructuredMessage) (string, error) {
	id := uuid.NewString()
	protocols := make([]string, 0, len(msg))
	for p := range msg {
		protocols = append(protocols, p)
	}
	b.logger.Info().
		Str("message_id", id).
		Str("target_arn", targetARN).
		Strs("protocols", protocols).
		Msg(">>> MOCK PUBLISH: Structured notification dispatched")
	return id, nil
}

// Subscribe implements the backend.Backend interface.
func (b *LogBackend) Subscribe(_ context.Context, in backend.SubscribeInput) (string, error) {
	arn := in.TopicARN + ":" + uuid.NewString()
	b.logger.Info().
		Str("subscription_arn", arn).
		Str("protocol", in.Protocol).
		Str("endpoint", in.Endpoint).
		Interface("filter_policy", in.FilterPolicy).
		Msg(">>> MOCK SUBSCRIBE: Endpoint subscribed")
	return arn, nil
}
