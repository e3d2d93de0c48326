package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/ilindan-dev/sns-notifier/internal/app"
	deliveryLambda "github.com/ilindan-dev/sns-notifier/internal/delivery/lambda"
	"go.uber.org/fx"
	"log"
)

// main is the entry point for the AWS Lambda function behind API Gateway.
func main() {
	var handler *deliveryLambda.Handler

	application := fx.New(app.LambdaModule, fx.Populate(&handler))
	if err := application.Err(); err != nil {
		log.Fatalf("failed to build lambda application: %v", err)
	}

	lambda.Start(handler.Handle)
}
