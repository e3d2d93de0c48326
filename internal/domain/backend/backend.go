package backend

import (
	"context"
)

// Attribute keys understood by the messaging backend.
const (
	AttrSMSType      = "AWS.SNS.SMS.SMSType"
	SMSTransactional = "Transactional"
	AttrEmail        = "email"
)

// Subscription protocols.
const (
	ProtocolEmail = "email"
)

// PublishInput describes a plain-string publish. Exactly one of PhoneNumber,
// TopicARN or TargetARN addresses the message.
type PublishInput struct {
	PhoneNumber string
	TopicARN    string
	TargetARN   string
	Message     string
	Subject     string
	Attributes  map[string]string // String-typed message attributes.
}

// StructuredMessage maps a delivery protocol ("default", "APNS", "FCM", ...) to its rendering.
type StructuredMessage map[string]string

// SubscribeInput describes a topic subscription. FilterPolicy restricts delivery to
// messages whose attributes match.
type SubscribeInput struct {
	TopicARN     string
	Protocol     string
	Endpoint     string
	FilterPolicy map[string][]string
}

// Backend defines the contract for the external publish/subscribe messaging provider.
type Backend interface {
	// Publish sends a plain-string message and returns the provider-assigned message ID.
	Publish(ctx context.Context, in PublishInput) (string, error)

	// PublishStructured sends a per-protocol message to an endpoint.
	PublishStructured(ctx context.Context, targetARN string, msg StructuredMessage) (string, error)

	// Subscribe registers an endpoint on a topic and returns the subscription handle.
	Subscribe(ctx context.Context, in SubscribeInput) (string, error)
}
