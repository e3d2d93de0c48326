package http

import (
	"errors"
	"github.com/ilindan-dev/sns-notifier/internal/domain/model"
	"github.com/rs/zerolog"
	"net/http"
)

// Client-facing messages.
const (
	MsgSent                = "Notification sent successfully"
	MsgMethodNotAllowed    = "Method not allowed"
	MsgInvalidJSON         = "Invalid JSON in request body"
	MsgInternalServerError = "Internal server error"
)

// Headers carried by every response of the notification endpoint.
const (
	ContentTypeJSON = "application/json"
	HSTSHeader      = "Strict-Transport-Security"
	HSTSValue       = "max-age=31536000; includeSubDomains"
)

// Success builds the 200 body for a dispatched notification.
func Success(outcome model.DispatchOutcome) (int, SendNotificationResponse) {
	return http.StatusOK, SendNotificationResponse{Message: MsgSent, MessageID: outcome.MessageID}
}

// ResponseFor is the single place where errors become HTTP statuses.
// Validation failures are returned verbatim; everything else is logged and hidden.
func ResponseFor(err error, logger zerolog.Logger) (int, ErrorResponse) {
	if errors.Is(err, model.ErrInvalidJSON) {
		return http.StatusBadRequest, ErrorResponse{Error: MsgInvalidJSON}
	}

	var verr *model.ValidationError
	if errors.As(err, &verr) {
		logger.Error().Str("kind", string(verr.Kind)).Str("field", verr.Field).Msgf("Validation error: %s", verr.Message)
		return http.StatusBadRequest, ErrorResponse{Error: verr.Message}
	}

	var berr *model.BackendError
	if errors.As(err, &berr) {
		logger.Error().Err(berr.Err).Str("op", berr.Op).Msg("messaging backend error")
		return http.StatusInternalServerError, ErrorResponse{Error: MsgInternalServerError}
	}

	logger.Error().Err(err).Msg("unexpected error")
	return http.StatusInternalServerError, ErrorResponse{Error: MsgInternalServerError}
}
