package main

import (
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/diillson/aws-cost-alert-go/internal/adapter/driven/aws"
	"github.com/diillson/aws-cost-alert-go/internal/adapter/driven/config"
	"github.com/diillson/aws-cost-alert-go/internal/adapter/driven/export"
	"github.com/diillson/aws-cost-alert-go/internal/adapter/driving/lambda"
	"github.com/diillson/aws-cost-alert-go/pkg/console"
)

func main() {
	handler := lambda.NewHandler(
		config.NewConfigRepository(),
		export.NewExportRepository(),
		aws.NewAWSRepository,
		console.NewPlainConsole(),
	)
	awslambda.Start(handler.Handle)
}
