package notifiers

import (
	"context"
	"fmt"
	"github.com/ilindan-dev/sns-notifier/internal/domain/backend"
	"github.com/ilindan-dev/sns-notifier/internal/domain/model"
	"github.com/rs/zerolog"
	"strings"
)

// EmailNotifier delivers email through a shared topic. Every recipient gets its own
// subscription with a filter policy, so a publish reaches only the address it names.
type EmailNotifier struct {
	backend  backend.Backend
	topicARN string
	logger   zerolog.Logger
}

// NewEmailNotifier creates a new instance of EmailNotifier.
func NewEmailNotifier(b backend.Backend, topicARN string, logger *zerolog.Logger) *EmailNotifier {
	return &EmailNotifier{
		backend:  b,
		topicARN: topicARN,
		logger:   logger.With().Str("component", "email_notifier").Logger(),
	}
}

// Send implements the Notifier interface for email.
// A successful subscribe is not rolled back when the publish that follows fails.
func (n *EmailNotifier) Send(ctx context.Context, req model.Request) (model.DispatchOutcome, error) {
	email, ok := req.(model.EmailRequest)
	if !ok {
		return model.DispatchOutcome{}, fmt.Errorf("invalid request for email channel: %T", req)
	}

	if email.Email == "" {
		return model.DispatchOutcome{}, model.NewValidationError(model.KindMissingField, "email",
			"Email address is required for email notifications")
	}
	// Intentionally minimal syntax check.
	if !strings.Contains(email.Email, "@") || !strings.Contains(email.Email, ".") {
		return model.DispatchOutcome{}, model.NewValidationError(model.KindInvalidEmailFormat, "email",
			"Invalid email format")
	}

	subscription, err := n.backend.Subscribe(ctx, backend.SubscribeInput{
		TopicARN: n.topicARN,
		Protocol: backend.ProtocolEmail,
		Endpoint: email.Email,
		FilterPolicy: map[string][]string{
			backend.AttrEmail: {email.Email},
		},
	})
	if err != nil {
		n.logger.Error().Err(err).Str("recipient", email.Email).Msg("failed to subscribe email")
		return model.DispatchOutcome{}, model.NewBackendError("subscribe email", err)
	}
	n.logger.Debug().Str("subscription", subscription).Str("recipient", email.Email).Msg("email subscribed")

	subject := email.Subject
	if subject == "" {
		subject = model.DefaultTitle
	}

	id, err := n.backend.Publish(ctx, backend.PublishInput{
		TopicARN: n.topicARN,
		Message:  email.Message,
		Subject:  subject,
		Attributes: map[string]string{
			backend.AttrEmail: email.Email,
		},
	})
	if err != nil {
		n.logger.Error().Err(err).Str("recipient", email.Email).Msg("failed to publish email")
		return model.DispatchOutcome{}, model.NewBackendError("publish email", err)
	}

	n.logger.Info().Str("message_id", id).Str("recipient", email.Email).Msg("email published successfully")
	return model.DispatchOutcome{MessageID: id}, nil
}
