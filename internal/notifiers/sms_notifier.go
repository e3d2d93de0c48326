package notifiers

import (
	"context"
	"fmt"
	"github.com/ilindan-dev/sns-notifier/internal/domain/backend"
	"github.com/ilindan-dev/sns-notifier/internal/domain/model"
	"github.com/rs/zerolog"
	"strings"
)

// SMSNotifier publishes text messages directly to a phone number.
type SMSNotifier struct {
	backend backend.Backend
	logger  zerolog.Logger
}

// NewSMSNotifier creates a new instance of SMSNotifier.
func NewSMSNotifier(b backend.Backend, logger *zerolog.Logger) *SMSNotifier {
	return &SMSNotifier{
		backend: b,
		logger:  logger.With().Str("component", "sms_notifier").Logger(),
	}
}

// Send implements the Notifier interface for SMS.
func (n *SMSNotifier) Send(ctx context.Context, req model.Request) (model.DispatchOutcome, error) {
	sms, ok := req.(model.SMSRequest)
	if !ok {
		return model.DispatchOutcome{}, fmt.Errorf("invalid request for sms channel: %T", req)
	}

	if sms.PhoneNumber == "" {
		return model.DispatchOutcome{}, model.NewValidationError(model.KindMissingField, "phone_number",
			"Phone number is required for SMS notifications")
	}
	if !strings.HasPrefix(sms.PhoneNumber, "+") {
		return model.DispatchOutcome{}, model.NewValidationError(model.KindInvalidPhoneFormat, "phone_number",
			"Phone number must include country code starting with '+'")
	}

	id, err := n.backend.Publish(ctx, backend.PublishInput{
		PhoneNumber: sms.PhoneNumber,
		Message:     sms.Message,
		Attributes: map[string]string{
			backend.AttrSMSType: backend.SMSTransactional,
		},
	})
	if err != nil {
		n.logger.Error().Err(err).Msg("failed to publish sms")
		return model.DispatchOutcome{}, model.NewBackendError("publish sms", err)
	}

	n.logger.Info().Str("message_id", id).Msg("sms published successfully")
	return model.DispatchOutcome{MessageID: id}, nil
}
