package service

import (
	"bytes"
	"context"
	"encoding/json"
	"github.com/ilindan-dev/sns-notifier/internal/domain/model"
	"github.com/ilindan-dev/sns-notifier/internal/notifiers"
	"github.com/ilindan-dev/sns-notifier/internal/validator"
	"github.com/rs/zerolog"
)

// NotificationService turns a raw request body into a dispatched notification.
// It orchestrates the validator and the channel dispatcher and keeps no state between calls.
type NotificationService struct {
	notifier notifiers.Notifier
	logger   zerolog.Logger
}

func NewNotificationService(dispatcher *notifiers.Dispatcher, logger *zerolog.Logger) *NotificationService {
	return newNotificationService(dispatcher, logger)
}

func newNotificationService(notifier notifiers.Notifier, logger *zerolog.Logger) *NotificationService {
	return &NotificationService{
		notifier: notifier,
		logger:   logger.With().Str("layer", "service").Logger(),
	}
}

// SendNotification decodes and validates body, routes it by its "type" field and
// dispatches it. Client mistakes are returned as *model.ValidationError or
// model.ErrInvalidJSON; backend failures as *model.BackendError.
func (s *NotificationService) SendNotification(ctx context.Context, body []byte) (model.DispatchOutcome, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		s.logger.Warn().Err(err).Msg("invalid json in request body")
		return model.DispatchOutcome{}, model.ErrInvalidJSON
	}

	if res := validator.Validate(decoded); !res.OK {
		s.logger.Warn().Str("field", res.Field).Str("reason", res.ErrorMessage).Msg("request failed validation")
		return model.DispatchOutcome{}, res.Err()
	}

	req, err := model.NewRequest(decoded.(map[string]any))
	if err != nil {
		s.logger.Warn().Err(err).Msg("invalid notification type")
		return model.DispatchOutcome{}, err
	}

	s.logger.Info().Str("channel", string(req.Channel())).Msg("dispatching notification")
	outcome, err := s.notifier.Send(ctx, req)
	if err != nil {
		return model.DispatchOutcome{}, err
	}

	s.logger.Info().Str("channel", string(req.Channel())).Str("message_id", outcome.MessageID).Msg("notification sent")
	return outcome, nil
}
