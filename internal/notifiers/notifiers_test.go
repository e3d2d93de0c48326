package notifiers_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilindan-dev/sns-notifier/internal/config"
	"github.com/ilindan-dev/sns-notifier/internal/domain/backend"
	"github.com/ilindan-dev/sns-notifier/internal/domain/model"
	"github.com/ilindan-dev/sns-notifier/internal/notifiers"
)

const topicARN = "arn:aws:sns:us-east-1:123456789012:email-notifications"

func nopLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

func requireValidationKind(t *testing.T, err error, kind model.ValidationKind) *model.ValidationError {
	t.Helper()
	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, kind, verr.Kind)
	return verr
}

// --- sms ---

func TestSMSNotifier_Success(t *testing.T) {
	b := newFakeBackend()
	n := notifiers.NewSMSNotifier(b, nopLogger())

	out, err := n.Send(context.Background(), model.SMSRequest{Message: "hi", PhoneNumber: "+15551234567"})
	require.NoError(t, err)
	assert.Equal(t, "msg-123", out.MessageID)

	require.Len(t, b.published, 1)
	in := b.published[0]
	assert.Equal(t, "+15551234567", in.PhoneNumber)
	assert.Equal(t, "hi", in.Message)
	assert.Empty(t, in.TopicARN)
	assert.Equal(t, backend.SMSTransactional, in.Attributes[backend.AttrSMSType])
}

func TestSMSNotifier_MissingPhone(t *testing.T) {
	b := newFakeBackend()
	n := notifiers.NewSMSNotifier(b, nopLogger())

	_, err := n.Send(context.Background(), model.SMSRequest{Message: "hi"})
	verr := requireValidationKind(t, err, model.KindMissingField)
	assert.Equal(t, "Phone number is required for SMS notifications", verr.Message)
	assert.Empty(t, b.calls)
}

func TestSMSNotifier_NoCountryCode(t *testing.T) {
	b := newFakeBackend()
	n := notifiers.NewSMSNotifier(b, nopLogger())

	_, err := n.Send(context.Background(), model.SMSRequest{Message: "hi", PhoneNumber: "15551234"})
	verr := requireValidationKind(t, err, model.KindInvalidPhoneFormat)
	assert.Contains(t, verr.Message, "country code")
	assert.Empty(t, b.calls, "backend must not be called for a malformed number")
}

func TestSMSNotifier_BackendFailure(t *testing.T) {
	b := newFakeBackend()
	b.publishErr = errBackendDown
	n := notifiers.NewSMSNotifier(b, nopLogger())

	_, err := n.Send(context.Background(), model.SMSRequest{Message: "hi", PhoneNumber: "+1555"})
	var berr *model.BackendError
	require.ErrorAs(t, err, &berr)
	assert.ErrorIs(t, err, errBackendDown)
}

func TestSMSNotifier_WrongVariant(t *testing.T) {
	n := notifiers.NewSMSNotifier(newFakeBackend(), nopLogger())
	_, err := n.Send(context.Background(), model.PushRequest{})
	require.Error(t, err)

	var verr *model.ValidationError
	assert.False(t, errors.As(err, &verr), "a routing bug is not a client error")
}

// --- email ---

func TestEmailNotifier_SubscribeThenPublish(t *testing.T) {
	b := newFakeBackend()
	n := notifiers.NewEmailNotifier(b, topicARN, nopLogger())

	out, err := n.Send(context.Background(), model.EmailRequest{Message: "body", Email: "user@example.com", Subject: "Hello"})
	require.NoError(t, err)
	assert.Equal(t, "msg-123", out.MessageID)
	assert.Equal(t, []string{"subscribe", "publish"}, b.calls)

	sub := b.subscribed[0]
	assert.Equal(t, topicARN, sub.TopicARN)
	assert.Equal(t, backend.ProtocolEmail, sub.Protocol)
	assert.Equal(t, "user@example.com", sub.Endpoint)
	assert.Equal(t, map[string][]string{"email": {"user@example.com"}}, sub.FilterPolicy)

	pub := b.published[0]
	assert.Equal(t, topicARN, pub.TopicARN)
	assert.Equal(t, "Hello", pub.Subject)
	assert.Equal(t, "body", pub.Message)
	assert.Equal(t, "user@example.com", pub.Attributes[backend.AttrEmail])
}

func TestEmailNotifier_DefaultSubject(t *testing.T) {
	b := newFakeBackend()
	n := notifiers.NewEmailNotifier(b, topicARN, nopLogger())

	_, err := n.Send(context.Background(), model.EmailRequest{Message: "body", Email: "user@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Notification", b.published[0].Subject)
}

func TestEmailNotifier_Validation(t *testing.T) {
	b := newFakeBackend()
	n := notifiers.NewEmailNotifier(b, topicARN, nopLogger())

	_, err := n.Send(context.Background(), model.EmailRequest{Message: "body"})
	verr := requireValidationKind(t, err, model.KindMissingField)
	assert.Equal(t, "Email address is required for email notifications", verr.Message)

	for _, addr := range []string{"not-an-email", "user@localhost", "user.example.com"} {
		_, err = n.Send(context.Background(), model.EmailRequest{Message: "body", Email: addr})
		verr = requireValidationKind(t, err, model.KindInvalidEmailFormat)
		assert.Equal(t, "Invalid email format", verr.Message)
	}
	assert.Empty(t, b.calls)
}

func TestEmailNotifier_SubscribeFailure(t *testing.T) {
	b := newFakeBackend()
	b.subscribeErr = errBackendDown
	n := notifiers.NewEmailNotifier(b, topicARN, nopLogger())

	_, err := n.Send(context.Background(), model.EmailRequest{Message: "body", Email: "user@example.com"})
	var berr *model.BackendError
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, "subscribe email", berr.Op)
	assert.Equal(t, []string{"subscribe"}, b.calls)
}

// The subscription created before a failed publish is left in place.
func TestEmailNotifier_PublishFailureAfterSubscribe(t *testing.T) {
	b := newFakeBackend()
	b.publishErr = errBackendDown
	n := notifiers.NewEmailNotifier(b, topicARN, nopLogger())

	_, err := n.Send(context.Background(), model.EmailRequest{Message: "body", Email: "user@example.com"})
	var berr *model.BackendError
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, "publish email", berr.Op)
	assert.Equal(t, []string{"subscribe", "publish"}, b.calls)
}

// --- push ---

func TestPushNotifier_StructuredPayload(t *testing.T) {
	b := newFakeBackend()
	n := notifiers.NewPushNotifier(b, nopLogger())

	out, err := n.Send(context.Background(), model.PushRequest{Message: "M", EndpointARN: "arn:xyz", Title: "T"})
	require.NoError(t, err)
	assert.Equal(t, "msg-123", out.MessageID)
	assert.Equal(t, []string{"publish_structured"}, b.calls)
	assert.Equal(t, "arn:xyz", b.targets[0])

	msg := b.structured[0]
	assert.Equal(t, "M", msg[notifiers.ProtocolDefault])

	var apns struct {
		APS struct {
			Alert struct {
				Title string `json:"title"`
				Body  string `json:"body"`
			} `json:"alert"`
			Sound string `json:"sound"`
			Badge int    `json:"badge"`
		} `json:"aps"`
	}
	require.NoError(t, json.Unmarshal([]byte(msg[notifiers.ProtocolAPNS]), &apns))
	assert.Equal(t, "T", apns.APS.Alert.Title)
	assert.Equal(t, "M", apns.APS.Alert.Body)
	assert.Equal(t, "default", apns.APS.Sound)
	assert.Equal(t, 1, apns.APS.Badge)

	var fcm struct {
		Notification struct {
			Title string `json:"title"`
			Body  string `json:"body"`
		} `json:"notification"`
		Priority string `json:"priority"`
	}
	require.NoError(t, json.Unmarshal([]byte(msg[notifiers.ProtocolFCM]), &fcm))
	assert.Equal(t, "T", fcm.Notification.Title)
	assert.Equal(t, "M", fcm.Notification.Body)
	assert.Equal(t, "high", fcm.Priority)
}

func TestPushNotifier_MissingEndpoint(t *testing.T) {
	b := newFakeBackend()
	n := notifiers.NewPushNotifier(b, nopLogger())

	_, err := n.Send(context.Background(), model.PushRequest{Message: "M"})
	verr := requireValidationKind(t, err, model.KindMissingField)
	assert.Equal(t, "Endpoint ARN is required for push notifications", verr.Message)
	assert.Empty(t, b.calls)
}

func TestPushNotifier_DefaultTitle(t *testing.T) {
	msg, err := notifiers.BuildPushMessage(model.DefaultTitle, "M")
	require.NoError(t, err)
	assert.Contains(t, msg[notifiers.ProtocolAPNS], `"title":"Notification"`)
}

// --- dispatcher ---

func TestDispatcher_RoutesByChannel(t *testing.T) {
	b := newFakeBackend()
	cfg := &config.Config{}
	cfg.AWS.EmailTopicARN = topicARN
	d := notifiers.NewDispatcher(cfg, b, nopLogger())

	_, err := d.Send(context.Background(), model.SMSRequest{Message: "hi", PhoneNumber: "+1555"})
	require.NoError(t, err)
	_, err = d.Send(context.Background(), model.EmailRequest{Message: "hi", Email: "a@b.co"})
	require.NoError(t, err)
	_, err = d.Send(context.Background(), model.PushRequest{Message: "hi", EndpointARN: "arn:xyz"})
	require.NoError(t, err)

	assert.Equal(t, []string{"publish", "subscribe", "publish", "publish_structured"}, b.calls)
	assert.Equal(t, topicARN, b.subscribed[0].TopicARN)
}
