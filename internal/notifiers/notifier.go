package notifiers

import (
	"context"
	"github.com/ilindan-dev/sns-notifier/internal/domain/model"
)

// Notifier defines the interface for a single delivery channel.
// Each implementation accepts only its own model.Request variant.
type Notifier interface {
	// Send validates the channel-specific fields and hands the notification to the backend.
	Send(ctx context.Context, req model.Request) (model.DispatchOutcome, error)
}
