package lambda_test

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilindan-dev/sns-notifier/internal/config"
	"github.com/ilindan-dev/sns-notifier/internal/delivery/lambda"
	"github.com/ilindan-dev/sns-notifier/internal/domain/backend"
	"github.com/ilindan-dev/sns-notifier/internal/notifiers"
	"github.com/ilindan-dev/sns-notifier/internal/service"
)

type stubBackend struct {
	err error
}

func (s *stubBackend) Publish(context.Context, backend.PublishInput) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "lambda-id", nil
}

func (s *stubBackend) PublishStructured(context.Context, string, backend.StructuredMessage) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "lambda-id", nil
}

func (s *stubBackend) Subscribe(context.Context, backend.SubscribeInput) (string, error) {
	return "sub", s.err
}

func newHandler(b backend.Backend) *lambda.Handler {
	l := zerolog.Nop()
	cfg := &config.Config{AWS: config.AWSConfig{EmailTopicARN: "arn:topic"}}
	svc := service.NewNotificationService(notifiers.NewDispatcher(cfg, b, &l), &l)
	return lambda.NewHandler(svc, &l)
}

func assertHeaders(t *testing.T, resp events.APIGatewayProxyResponse) {
	t.Helper()
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])
	assert.Equal(t, "max-age=31536000; includeSubDomains", resp.Headers["Strict-Transport-Security"])
}

func TestHandle_MethodNotAllowed(t *testing.T) {
	resp, err := newHandler(&stubBackend{}).Handle(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: http.MethodGet})
	require.NoError(t, err)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Method not allowed"}`, resp.Body)
	assertHeaders(t, resp)
}

func TestHandle_InvalidJSON(t *testing.T) {
	resp, err := newHandler(&stubBackend{}).Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Body:       "{oops",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Invalid JSON in request body"}`, resp.Body)
}

func TestHandle_Success(t *testing.T) {
	resp, err := newHandler(&stubBackend{}).Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Body:       `{"type":"sms","message":"hi","phone_number":"+15551234567"}`,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Notification sent successfully","messageId":"lambda-id"}`, resp.Body)
	assertHeaders(t, resp)
}

func TestHandle_Base64Body(t *testing.T) {
	body := base64.StdEncoding.EncodeToString([]byte(`{"type":"push","message":"M","endpoint_arn":"arn:xyz"}`))
	resp, err := newHandler(&stubBackend{}).Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod:      http.MethodPost,
		Body:            body,
		IsBase64Encoded: true,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandle_BackendError(t *testing.T) {
	resp, err := newHandler(&stubBackend{err: errors.New("InvalidParameter: secret")}).Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Body:       `{"type":"email","message":"hi","email":"a@b.co"}`,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Internal server error"}`, resp.Body)
	assert.NotContains(t, resp.Body, "secret")
}
