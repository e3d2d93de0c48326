package notifiers_test

import (
	"context"
	"errors"

	"github.com/ilindan-dev/sns-notifier/internal/domain/backend"
)

// fakeBackend records every call and returns canned results.
type fakeBackend struct {
	calls []string

	published    []backend.PublishInput
	structured   []backend.StructuredMessage
	targets      []string
	subscribed   []backend.SubscribeInput
	publishErr   error
	subscribeErr error
	messageID    string
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{messageID: "msg-123"}
}

func (f *fakeBackend) Publish(_ context.Context, in backend.PublishInput) (string, error) {
	f.calls = append(f.calls, "publish")
	f.published = append(f.published, in)
	if f.publishErr != nil {
		return "", f.publishErr
	}
	return f.messageID, nil
}

func (f *fakeBackend) PublishStructured(_ context.Context, targetARN string, msg backend.StructuredMessage) (string, error) {
	f.calls = append(f.calls, "publish_structured")
	f.targets = append(f.targets, targetARN)
	f.structured = append(f.structured, msg)
	if f.publishErr != nil {
		return "", f.publishErr
	}
	return f.messageID, nil
}

func (f *fakeBackend) Subscribe(_ context.Context, in backend.SubscribeInput) (string, error) {
	f.calls = append(f.calls, "subscribe")
	f.subscribed = append(f.subscribed, in)
	if f.subscribeErr != nil {
		return "", f.subscribeErr
	}
	return "arn:aws:sns:us-east-1:123:topic:sub-1", nil
}

var errBackendDown = errors.New("backend down")
