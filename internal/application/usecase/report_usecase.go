package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/diillson/aws-cost-alert-go/internal/domain/entity"
	"github.com/diillson/aws-cost-alert-go/internal/domain/repository"
	"github.com/diillson/aws-cost-alert-go/internal/shared/types"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ReportUseCase runs the monthly cost report for every account of the organization.
type ReportUseCase struct {
	accountRepo repository.AccountRepository
	notifier    repository.NotifierRepository
	exportRepo  repository.ExportRepository
	storageRepo repository.ReportStorageRepository
	aggregator  *CostAggregator
	console     types.ConsoleInterface
}

// NewReportUseCase creates a new report use case.
func NewReportUseCase(
	accountRepo repository.AccountRepository,
	costRepo repository.CostRepository,
	notifier repository.NotifierRepository,
	exportRepo repository.ExportRepository,
	storageRepo repository.ReportStorageRepository,
	console types.ConsoleInterface,
) *ReportUseCase {
	return &ReportUseCase{
		accountRepo: accountRepo,
		notifier:    notifier,
		exportRepo:  exportRepo,
		storageRepo: storageRepo,
		aggregator:  NewCostAggregator(costRepo),
		console:     console,
	}
}

// Run processa todas as contas para o mês anterior a now.
//
// O período é calculado uma vez e compartilhado entre as contas. A falha de
// uma conta não interrompe as demais: o resultado fica no RunSummary e o erro
// retornado junta todas as falhas. Só a falha ao listar contas aborta a execução.
func (uc *ReportUseCase) Run(ctx context.Context, cfg *types.Config, now time.Time) (entity.RunSummary, error) {
	period := entity.ComputeReportPeriod(now)
	summary := entity.RunSummary{
		RunID:     uuid.NewString(),
		Period:    period,
		Threshold: cfg.ThresholdAmount(),
		DryRun:    cfg.DryRun,
	}

	accounts, err := uc.accountRepo.ListAccounts(ctx)
	if err != nil {
		return summary, fmt.Errorf("failed to list accounts: %w", err)
	}

	accountIDs := uc.selectAccounts(accounts, cfg.Accounts)
	uc.console.LogInfo("Run %s: reporting %d account(s) for %s (threshold $%.2f)", summary.RunID, len(accountIDs), period, summary.Threshold)

	summary.Results = make([]entity.AccountResult, len(accountIDs))

	concurrency := cfg.Concurrency
	if concurrency < 1 {
		concurrency = types.DefaultConcurrency
	}

	if concurrency == 1 {
		for i, accountID := range accountIDs {
			summary.Results[i] = uc.ProcessAccount(ctx, cfg, accountID, period)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(concurrency)
		for i, accountID := range accountIDs {
			i, accountID := i, accountID
			g.Go(func() error {
				summary.Results[i] = uc.ProcessAccount(ctx, cfg, accountID, period)
				return nil
			})
		}
		_ = g.Wait()
	}

	if failed := summary.Failed(); len(failed) > 0 {
		uc.console.LogWarning("%d of %d account(s) failed", len(failed), len(summary.Results))
	}
	uc.console.LogInfo("%d alert(s) sent", summary.AlertsSent())

	return summary, summary.Err()
}

// ProcessAccount agrega, avalia e, se o limite foi ultrapassado, envia o alerta de uma conta.
func (uc *ReportUseCase) ProcessAccount(ctx context.Context, cfg *types.Config, accountID string, period entity.ReportPeriod) entity.AccountResult {
	result := entity.AccountResult{AccountID: accountID}
	uc.console.LogInfo("Analyzing account: %s", accountID)

	costs, err := uc.aggregator.AggregateCosts(ctx, accountID, period)
	if err != nil {
		return uc.fail(result, err)
	}

	total, exceeded := EvaluateThreshold(costs, cfg.ThresholdAmount())
	result.Report = &entity.AccountCostReport{
		AccountID:   accountID,
		Period:      period,
		RankedCosts: costs,
		TotalCost:   total,
	}
	result.Exceeded = exceeded
	uc.console.LogInfo("Account %s total cost: $%.2f", accountID, total)

	if !exceeded {
		return result
	}

	message := ComposeAlert(accountID, period, total, costs, cfg.MaxServices)
	if cfg.DryRun {
		uc.console.LogWarning("Dry run, alert not published: %s\n%s", message.Subject, message.Body)
		return result
	}

	messageID, err := uc.notifier.Publish(ctx, cfg.TopicARN, message)
	if err != nil {
		return uc.fail(result, fmt.Errorf("failed to publish alert: %w", err))
	}
	result.AlertSent = true
	result.MessageID = messageID
	uc.console.LogSuccess("Alert sent for account %s ($%.2f > $%.2f)", accountID, total, cfg.ThresholdAmount())

	return result
}

func (uc *ReportUseCase) fail(result entity.AccountResult, err error) entity.AccountResult {
	uc.console.LogError("Account %s failed: %s", result.AccountID, err)
	result.Err = err
	result.Error = err.Error()
	return result
}

// selectAccounts keeps active accounts in source order, restricted to
// requested when it is not empty.
func (uc *ReportUseCase) selectAccounts(accounts []entity.Account, requested []string) []string {
	wanted := make(map[string]bool, len(requested))
	for _, id := range requested {
		wanted[id] = true
	}

	ids := []string{}
	seen := make(map[string]bool, len(accounts))
	for _, account := range accounts {
		seen[account.ID] = true
		if len(wanted) > 0 && !wanted[account.ID] {
			continue
		}
		if !account.IsActive() {
			uc.console.LogWarning("Skipping account %s with status %s", account.ID, account.Status)
			continue
		}
		ids = append(ids, account.ID)
	}

	for _, id := range requested {
		if !seen[id] {
			uc.console.LogWarning("Account '%s' not found in organization", id)
		}
	}
	return ids
}
