package notifiers

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/ilindan-dev/sns-notifier/internal/domain/backend"
	"github.com/ilindan-dev/sns-notifier/internal/domain/model"
	"github.com/rs/zerolog"
)

// Protocol keys of a structured push message.
const (
	ProtocolDefault = "default"
	ProtocolAPNS    = "APNS"
	ProtocolFCM     = "FCM"
)

type apnsAlert struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type apnsPayload struct {
	APS struct {
		Alert apnsAlert `json:"alert"`
		Sound string    `json:"sound"`
		Badge int       `json:"badge"`
	} `json:"aps"`
}

type fcmNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type fcmPayload struct {
	Notification fcmNotification `json:"notification"`
	Priority     string          `json:"priority"`
}

// PushNotifier publishes to a platform application endpoint (a registered device).
type PushNotifier struct {
	backend backend.Backend
	logger  zerolog.Logger
}

// NewPushNotifier creates a new instance of PushNotifier.
func NewPushNotifier(b backend.Backend, logger *zerolog.Logger) *PushNotifier {
	return &PushNotifier{
		backend: b,
		logger:  logger.With().Str("component", "push_notifier").Logger(),
	}
}

// Send implements the Notifier interface for push.
func (n *PushNotifier) Send(ctx context.Context, req model.Request) (model.DispatchOutcome, error) {
	push, ok := req.(model.PushRequest)
	if !ok {
		return model.DispatchOutcome{}, fmt.Errorf("invalid request for push channel: %T", req)
	}

	if push.EndpointARN == "" {
		return model.DispatchOutcome{}, model.NewValidationError(model.KindMissingField, "endpoint_arn",
			"Endpoint ARN is required for push notifications")
	}

	title := push.Title
	if title == "" {
		title = model.DefaultTitle
	}

	msg, err := BuildPushMessage(title, push.Message)
	if err != nil {
		return model.DispatchOutcome{}, fmt.Errorf("failed to build push payload: %w", err)
	}

	id, err := n.backend.PublishStructured(ctx, push.EndpointARN, msg)
	if err != nil {
		n.logger.Error().Err(err).Str("endpoint", push.EndpointARN).Msg("failed to publish push notification")
		return model.DispatchOutcome{}, model.NewBackendError("publish push", err)
	}

	n.logger.Info().Str("message_id", id).Str("endpoint", push.EndpointARN).Msg("push notification published successfully")
	return model.DispatchOutcome{MessageID: id}, nil
}

// BuildPushMessage renders the plain-text default plus the APNS and FCM payloads.
// Platform renderings are JSON documents embedded as strings.
func BuildPushMessage(title, body string) (backend.StructuredMessage, error) {
	var apns apnsPayload
	apns.APS.Alert = apnsAlert{Title: title, Body: body}
	apns.APS.Sound = "default"
	apns.APS.Badge = 1

	apnsJSON, err := json.Marshal(apns)
	if err != nil {
		return nil, fmt.Errorf("marshal apns payload: %w", err)
	}

	fcmJSON, err := json.Marshal(fcmPayload{
		Notification: fcmNotification{Title: title, Body: body},
		Priority:     "high",
	})
	if err != nil {
		return nil, fmt.Errorf("marshal fcm payload: %w", err)
	}

	return backend.StructuredMessage{
		ProtocolDefault: body,
		ProtocolAPNS:    string(apnsJSON),
		ProtocolFCM:     string(fcmJSON),
	}, nil
}
