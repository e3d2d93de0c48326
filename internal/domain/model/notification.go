package model

import (
	"fmt"
	"strings"
)

// Channel represents the notification delivery channel (e.g., sms, email, push).
type Channel string

const (
	ChannelSMS   Channel = "sms"
	ChannelEmail Channel = "email"
	ChannelPush  Channel = "push"
)

// DefaultTitle is used for the email subject and the push title when the request omits them.
const DefaultTitle = "Notification"

// ParseChannel case-folds the raw notification type and maps it to a known Channel.
func ParseChannel(raw string) (Channel, error) {
	switch c := Channel(strings.ToLower(raw)); c {
	case ChannelSMS, ChannelEmail, ChannelPush:
		return c, nil
	default:
		return "", NewValidationError(KindInvalidNotificationType, "type", "Invalid notification type")
	}
}

// Request is a validated notification request for exactly one channel.
// The set of implementations is closed: SMSRequest, EmailRequest and PushRequest.
type Request interface {
	Channel() Channel
	isRequest()
}

// SMSRequest is a text message addressed to a phone number.
type SMSRequest struct {
	Message     string
	PhoneNumber string // Expected in E.164 form, e.g. "+15551234567".
}

// EmailRequest is delivered through the email topic to a single address.
type EmailRequest struct {
	Message string
	Email   string
	Subject string
}

// PushRequest is delivered to a platform application endpoint.
type PushRequest struct {
	Message     string
	EndpointARN string
	Title       string
}

func (SMSRequest) Channel() Channel   { return ChannelSMS }
func (EmailRequest) Channel() Channel { return ChannelEmail }
func (PushRequest) Channel() Channel  { return ChannelPush }

func (SMSRequest) isRequest()   {}
func (EmailRequest) isRequest() {}
func (PushRequest) isRequest()  {}

// NewRequest builds the channel-specific request from a body that already passed
// schema validation. Channel fields are copied as-is: their presence is checked by
// the channel notifiers, not here.
func NewRequest(body map[string]any) (Request, error) {
	rawType, _ := body["type"].(string)
	message, _ := body["message"].(string)

	channel, err := ParseChannel(rawType)
	if err != nil {
		return nil, err
	}

	switch channel {
	case ChannelSMS:
		return SMSRequest{
			Message:     message,
			PhoneNumber: stringField(body, "phone_number", ""),
		}, nil
	case ChannelEmail:
		return EmailRequest{
			Message: message,
			Email:   stringField(body, "email", ""),
			Subject: stringField(body, "subject", DefaultTitle),
		}, nil
	case ChannelPush:
		return PushRequest{
			Message:     message,
			EndpointARN: stringField(body, "endpoint_arn", ""),
			Title:       stringField(body, "title", DefaultTitle),
		}, nil
	}
	return nil, fmt.Errorf("unhandled channel: %s", channel)
}

// stringField returns body[key] when it is a string, the fallback when the key is absent,
// and an empty string when the key holds a non-string value.
func stringField(body map[string]any, key, fallback string) string {
	v, ok := body[key]
	if !ok || v == nil {
		return fallback
	}
	s, _ := v.(string)
	return s
}

// ValidationResult is the outcome of schema validation of an inbound body.
type ValidationResult struct {
	OK           bool
	ErrorMessage string // Empty when OK.
	Kind         ValidationKind
	Field        string
}

// Err returns the result as a *ValidationError, or nil when the body is valid.
func (r ValidationResult) Err() error {
	if r.OK {
		return nil
	}
	return &ValidationError{Kind: r.Kind, Field: r.Field, Message: r.ErrorMessage}
}

// DispatchOutcome carries the identifier the backend assigned to a sent notification.
type DispatchOutcome struct {
	MessageID string
}
