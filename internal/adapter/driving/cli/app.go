package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/diillson/aws-cost-alert-go/internal/application/usecase"
	"github.com/diillson/aws-cost-alert-go/internal/domain/entity"
	"github.com/diillson/aws-cost-alert-go/internal/domain/repository"
	"github.com/diillson/aws-cost-alert-go/internal/shared/types"
	"github.com/diillson/aws-cost-alert-go/pkg/version"
	"github.com/spf13/cobra"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd    *cobra.Command
	configRepo repository.ConfigRepository
	exportRepo repository.ExportRepository
	newAWSRepo repository.AWSRepositoryFactory
	console    types.ConsoleInterface
	now        func() time.Time
	version    string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(
	versionStr string,
	configRepo repository.ConfigRepository,
	exportRepo repository.ExportRepository,
	newAWSRepo repository.AWSRepositoryFactory,
	console types.ConsoleInterface,
) *CLIApp {
	app := &CLIApp{
		configRepo: configRepo,
		exportRepo: exportRepo,
		newAWSRepo: newAWSRepo,
		console:    console,
		now:        time.Now,
		version:    versionStr,
	}

	rootCmd := &cobra.Command{
		Use:           "cost-alert",
		Short:         "Monthly AWS cost alert for every account of an organization",
		Version:       version.FormatVersion(),
		RunE:          app.runCommand,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{printf "AWS Cost Alert version: %s\n" .Version}}`)

	flags := rootCmd.PersistentFlags()
	flags.StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	flags.String("env-file", "", "Path to a .env file loaded before reading the environment")
	flags.StringP("threshold", "t", "", "Alert when an account's monthly spend is above this amount (THRESHOLD_AMOUNT)")
	flags.String("topic-arn", "", "SNS topic that receives the alerts (SNS_TOPIC_ARN)")
	flags.StringP("region", "r", "", "AWS region for SNS and S3 (default us-east-1)")
	flags.StringP("profile", "p", "", "AWS profile to use")
	flags.IntP("max-services", "m", types.DefaultMaxServices, "Number of top-costing services listed in each alert")
	flags.Int("concurrency", types.DefaultConcurrency, "Number of accounts processed in parallel")
	flags.StringSliceP("accounts", "a", nil, "Only report these account ids (comma-separated)")
	flags.Bool("dry-run", false, "Compose alerts without publishing them")
	flags.String("at", "", "Report the month before this date (YYYY-MM-DD) instead of the month before today")
	flags.StringP("report-name", "n", "", "Export the run summary with this base file name")
	flags.StringSliceP("report-type", "y", nil, "Specify report types: csv, json, pdf")
	flags.StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	flags.String("report-bucket", "", "S3 bucket that receives the exported reports (REPORT_BUCKET)")
	flags.Bool("no-banner", false, "Do not print the welcome banner")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
// Flags that were not given stay unset so they don't override the
// configuration file or the environment.
func (app *CLIApp) parseArgs(cmd *cobra.Command) (*types.CLIArgs, error) {
	flags := cmd.Flags()

	args := &types.CLIArgs{}
	args.ConfigFile, _ = flags.GetString("config-file")
	args.EnvFile, _ = flags.GetString("env-file")
	args.TopicARN, _ = flags.GetString("topic-arn")
	args.Region, _ = flags.GetString("region")
	args.Profile, _ = flags.GetString("profile")
	args.Accounts, _ = flags.GetStringSlice("accounts")
	args.At, _ = flags.GetString("at")
	args.ReportName, _ = flags.GetString("report-name")
	args.ReportType, _ = flags.GetStringSlice("report-type")
	args.Dir, _ = flags.GetString("dir")
	args.ReportBucket, _ = flags.GetString("report-bucket")

	if flags.Changed("threshold") {
		threshold, _ := flags.GetString("threshold")
		args.Threshold = &threshold
	}
	if flags.Changed("max-services") {
		maxServices, _ := flags.GetInt("max-services")
		args.MaxServices = &maxServices
	}
	if flags.Changed("concurrency") {
		concurrency, _ := flags.GetInt("concurrency")
		args.Concurrency = &concurrency
	}
	if flags.Changed("dry-run") {
		dryRun, _ := flags.GetBool("dry-run")
		args.DryRun = &dryRun
	}

	return args, nil
}

// resolveNow returns the invocation instant, honoring --at.
func (app *CLIApp) resolveNow(at string) (time.Time, error) {
	if at == "" {
		return app.now().UTC(), nil
	}
	t, err := time.Parse(entity.DateLayout, at)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", types.ErrInvalidDate, at)
	}
	return t, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, _ []string) error {
	if noBanner, _ := cmd.Flags().GetBool("no-banner"); !noBanner {
		displayWelcomeBanner(app.version)
		go version.CheckLatestVersion(app.version)
	}

	cliArgs, err := app.parseArgs(cmd)
	if err != nil {
		return err
	}

	cfg, err := app.configRepo.ResolveConfig(cliArgs)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	now, err := app.resolveNow(cliArgs.At)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	awsRepo := app.newAWSRepo(cfg.Region, cfg.Profile)

	status := app.console.Status("Resolving AWS identity...")
	callerID, err := awsRepo.GetCallerAccountID(ctx)
	status.Stop()
	if err != nil {
		app.console.LogWarning("Could not resolve caller identity: %s", err)
	} else {
		app.console.LogInfo("Running as account %s", callerID)
	}

	reportUseCase := usecase.NewReportUseCase(awsRepo, awsRepo, awsRepo, app.exportRepo, awsRepo, app.console)

	summary, runErr := reportUseCase.Run(ctx, cfg, now)
	if summary.Results != nil {
		reportUseCase.DisplaySummary(summary)
		reportUseCase.ExportSummary(ctx, cfg, summary)
	}
	return runErr
}
