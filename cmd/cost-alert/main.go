package main

import (
	"fmt"
	"os"

	"github.com/diillson/aws-cost-alert-go/internal/adapter/driven/aws"
	"github.com/diillson/aws-cost-alert-go/internal/adapter/driven/config"
	"github.com/diillson/aws-cost-alert-go/internal/adapter/driven/export"
	"github.com/diillson/aws-cost-alert-go/internal/adapter/driving/cli"
	"github.com/diillson/aws-cost-alert-go/pkg/console"
	"github.com/diillson/aws-cost-alert-go/pkg/version"
)

func main() {
	// Inicializa os repositórios; o repositório AWS depende da configuração
	// resolvida, por isso é criado pela aplicação através da fábrica.
	configRepo := config.NewConfigRepository()
	exportRepo := export.NewExportRepository()
	consoleImpl := console.NewConsole()

	app := cli.NewCLIApp(
		version.Version,
		configRepo,
		exportRepo,
		aws.NewAWSRepository,
		consoleImpl,
	)

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
