package lambda

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/diillson/aws-cost-alert-go/internal/application/usecase"
	"github.com/diillson/aws-cost-alert-go/internal/domain/repository"
	"github.com/diillson/aws-cost-alert-go/internal/shared/types"
)

// Response is returned to the scheduler that invoked the function.
type Response struct {
	Result string `json:"Result"`
}

// Handler runs the report when triggered by a scheduled event.
// The event payload is ignored; all settings come from the environment.
type Handler struct {
	configRepo repository.ConfigRepository
	exportRepo repository.ExportRepository
	newAWSRepo repository.AWSRepositoryFactory
	console    types.ConsoleInterface
	now        func() time.Time
}

// NewHandler creates a new Lambda handler.
func NewHandler(
	configRepo repository.ConfigRepository,
	exportRepo repository.ExportRepository,
	newAWSRepo repository.AWSRepositoryFactory,
	console types.ConsoleInterface,
) *Handler {
	return &Handler{
		configRepo: configRepo,
		exportRepo: exportRepo,
		newAWSRepo: newAWSRepo,
		console:    console,
		now:        time.Now,
	}
}

// Handle resolves the configuration and processes every account. Exports, if
// configured, are written to the temporary directory since the function code
// directory is read-only.
func (h *Handler) Handle(ctx context.Context, _ json.RawMessage) (Response, error) {
	cfg, err := h.configRepo.ResolveConfig(nil)
	if err != nil {
		return Response{}, fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.Dir == "" {
		cfg.Dir = os.TempDir()
	}

	awsRepo := h.newAWSRepo(cfg.Region, cfg.Profile)
	reportUseCase := usecase.NewReportUseCase(awsRepo, awsRepo, awsRepo, h.exportRepo, awsRepo, h.console)

	summary, err := reportUseCase.Run(ctx, cfg, h.now().UTC())
	if summary.Results != nil {
		reportUseCase.ExportSummary(ctx, cfg, summary)
	}
	if err != nil {
		return Response{}, err
	}
	return Response{Result: "Ok"}, nil
}
