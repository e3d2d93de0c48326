package app

import (
	"context"
	"github.com/ilindan-dev/sns-notifier/internal/config"
	deliveryHTTP "github.com/ilindan-dev/sns-notifier/internal/delivery/http"
	deliveryLambda "github.com/ilindan-dev/sns-notifier/internal/delivery/lambda"
	"github.com/ilindan-dev/sns-notifier/internal/logger"
	"github.com/ilindan-dev/sns-notifier/internal/messaging"
	"github.com/ilindan-dev/sns-notifier/internal/notifiers"
	"github.com/ilindan-dev/sns-notifier/internal/service"
	"go.uber.org/fx"
	"net/http"
)

// CommonModule provides dependencies that are shared between the API and Lambda applications.
var CommonModule = fx.Options(
	fx.Provide(
		// Core components
		config.NewConfig,
		logger.NewLogger,

		// Messaging backend: SNS in production, log-only otherwise
		messaging.NewBackend,

		// Service Layer
		notifiers.NewDispatcher,
		service.NewNotificationService,
	),
)

// APIModule defines the Fx module for the HTTP API application.
var APIModule = fx.Options(
	CommonModule, // Include all shared components
	fx.Provide(
		// API-specific components
		deliveryHTTP.NewHandlers,
		deliveryHTTP.NewServer,
	),

	fx.Invoke(func(server *deliveryHTTP.Server, lc fx.Lifecycle) {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				go func() {
					if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
						panic(err)
					}
				}()
				return nil
			},
			OnStop: func(ctx context.Context) error {
				return server.Shutdown(ctx)
			},
		})
	}),
)

// LambdaModule defines the Fx module for the API Gateway Lambda function.
// The Lambda runtime owns the process loop, so the handler is populated rather than started.
var LambdaModule = fx.Options(
	CommonModule,
	fx.NopLogger,
	fx.Provide(deliveryLambda.NewHandler),
)
