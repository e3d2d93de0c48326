package sns

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/ilindan-dev/sns-notifier/internal/domain/backend"
	"github.com/rs/zerolog"
)

// Ensure Backend implements the domain interface at compile time.
var _ backend.Backend = (*Backend)(nil)

const (
	dataTypeString       = "String"
	messageStructureJSON = "json"
	attrFilterPolicy     = "FilterPolicy"
)

// API is the subset of *sns.Client used by Backend.
type API interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
	Subscribe(ctx context.Context, params *sns.SubscribeInput, optFns ...func(*sns.Options)) (*sns.SubscribeOutput, error)
}

// Backend implements backend.Backend on top of AWS SNS.
type Backend struct {
	api    API
	logger zerolog.Logger
}

// NewBackend creates a new instance of the SNS backend.
func NewBackend(api API, logger *zerolog.Logger) *Backend {
	return &Backend{
		api:    api,
		logger: logger.With().Str("component", "sns_backend").Logger(),
	}
}

// Publish sends a plain-string message to a phone number, topic or endpoint.
func (b *Backend) Publish(ctx context.Context, in backend.PublishInput) (string, error) {
	params := &sns.PublishInput{
		Message:           aws.String(in.Message),
		MessageAttributes: toMessageAttributes(in.Attributes),
	}
	switch {
	case in.PhoneNumber != "":
		params.PhoneNumber = aws.String(in.PhoneNumber)
	case in.TopicARN != "":
		params.TopicArn = aws.String(in.TopicARN)
	case in.TargetARN != "":
		params.TargetArn = aws.String(in.TargetARN)
	default:
		return "", fmt.Errorf("sns: publish: no destination")
	}
	if in.Subject != "" {
		params.Subject = aws.String(in.Subject)
	}

	out, err := b.api.Publish(ctx, params)
	if err != nil {
		return "", fmt.Errorf("sns: publish: %w", err)
	}
	return aws.ToString(out.MessageId), nil
}

// PublishStructured sends a per-protocol JSON message to a platform endpoint.
func (b *Backend) PublishStructured(ctx context.Context, targetARN string, msg backend.StructuredMessage) (string, error) {
	body, err := json.Marshal(msg)
	if err != nil {
		return "", fmt.Errorf("sns: failed to marshal structured message: %w", err)
	}

	out, err := b.api.Publish(ctx, &sns.PublishInput{
		TargetArn:        aws.String(targetARN),
		Message:          aws.String(string(body)),
		MessageStructure: aws.String(messageStructureJSON),
	})
	if err != nil {
		return "", fmt.Errorf("sns: publish structured: %w", err)
	}
	return aws.ToString(out.MessageId), nil
}

// Subscribe registers an endpoint on a topic with an optional filter policy.
func (b *Backend) Subscribe(ctx context.Context, in backend.SubscribeInput) (string, error) {
	params := &sns.SubscribeInput{
		TopicArn: aws.String(in.TopicARN),
		Protocol: aws.String(in.Protocol),
		Endpoint: aws.String(in.Endpoint),
	}
	if len(in.FilterPolicy) > 0 {
		policy, err := json.Marshal(in.FilterPolicy)
		if err != nil {
			return "", fmt.Errorf("sns: failed to marshal filter policy: %w", err)
		}
		params.Attributes = map[string]string{attrFilterPolicy: string(policy)}
	}

	out, err := b.api.Subscribe(ctx, params)
	if err != nil {
		return "", fmt.Errorf("sns: subscribe: %w", err)
	}

	// Email subscriptions stay "pending confirmation" until the recipient confirms.
	arn := aws.ToString(out.SubscriptionArn)
	b.logger.Debug().Str("subscription_arn", arn).Str("protocol", in.Protocol).Msg("subscription created")
	return arn, nil
}

func toMessageAttributes(attrs map[string]string) map[string]types.MessageAttributeValue {
	if len(attrs) == 0 {
		return nil
	}
	out := make(map[string]types.MessageAttributeValue, len(attrs))
	for k, v := range attrs {
		out[k] = types.MessageAttributeValue{
			DataType:    aws.String(dataTypeString),
			StringValue: aws.String(v),
		}
	}
	return out
}
