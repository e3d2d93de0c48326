// Package lambda exposes the notification service as an API Gateway proxy integration.
package lambda

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"github.com/aws/aws-lambda-go/events"
	deliveryHTTP "github.com/ilindan-dev/sns-notifier/internal/delivery/http"
	"github.com/ilindan-dev/sns-notifier/internal/service"
	"github.com/rs/zerolog"
	"net/http"
)

// Handler adapts API Gateway proxy events to the notification service.
// Status and body mapping is shared with the HTTP server.
type Handler struct {
	service *service.NotificationService
	logger  zerolog.Logger
}

// NewHandler creates a new instance of Handler.
func NewHandler(service *service.NotificationService, logger *zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger.With().Str("layer", "lambda_handler").Logger(),
	}
}

// Handle processes one API Gateway event. It never returns an error: every failure
// is expressed as an HTTP status in the proxy response.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	h.logger.Info().
		Str("httpMethod", req.HTTPMethod).
		Str("path", req.Path).
		Str("requestId", req.RequestContext.RequestID).
		Msg("received event")

	if req.HTTPMethod != http.MethodPost {
		return h.respond(http.StatusMethodNotAllowed, deliveryHTTP.ErrorResponse{Error: deliveryHTTP.MsgMethodNotAllowed}), nil
	}

	body := []byte(req.Body)
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			h.logger.Warn().Err(err).Msg("failed to decode base64 body")
			return h.respond(http.StatusBadRequest, deliveryHTTP.ErrorResponse{Error: deliveryHTTP.MsgInvalidJSON}), nil
		}
		body = decoded
	}

	outcome, err := h.service.SendNotification(ctx, body)
	if err != nil {
		status, resp := deliveryHTTP.ResponseFor(err, h.logger)
		return h.respond(status, resp), nil
	}

	status, resp := deliveryHTTP.Success(outcome)
	return h.respond(status, resp), nil
}

func (h *Handler) respond(status int, v any) events.APIGatewayProxyResponse {
	headers := map[string]string{
		"Content-Type":          deliveryHTTP.ContentTypeJSON,
		deliveryHTTP.HSTSHeader: deliveryHTTP.HSTSValue,
	}

	b, err := json.Marshal(v)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to marshal response")
		status = http.StatusInternalServerError
		b = []byte(`{"error":"` + deliveryHTTP.MsgInternalServerError + `"}`)
	}

	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    headers,
		Body:       string(b),
	}
}
