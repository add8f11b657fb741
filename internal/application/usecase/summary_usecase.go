package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/diillson/aws-cost-alert-go/internal/domain/entity"
	"github.com/diillson/aws-cost-alert-go/internal/shared/types"
	"github.com/pterm/pterm"
)

// DisplaySummary imprime a tabela com o resultado de cada conta.
func (uc *ReportUseCase) DisplaySummary(summary entity.RunSummary) {
	table := uc.console.CreateTable()
	table.AddColumn("Account ID")
	table.AddColumn(fmt.Sprintf("Cost (%s)", summary.Period))
	table.AddColumn("Top Service")
	table.AddColumn("Status")
	table.AddColumn("Alert")

	for _, r := range summary.Results {
		cost, topService, status, alert := "-", "-", "", "No"

		switch {
		case !r.Success():
			status = pterm.FgRed.Sprintf("Error: %s", r.Error)
		case r.Exceeded:
			status = pterm.FgYellow.Sprintf("Above $%.2f", summary.Threshold)
		default:
			status = pterm.FgGreen.Sprint("OK")
		}

		if r.Report != nil {
			cost = fmt.Sprintf("$%.2f", r.Report.TotalCost)
			if len(r.Report.RankedCosts) > 0 {
				top := r.Report.RankedCosts[0]
				topService = fmt.Sprintf("%s: $%.2f", top.ServiceName, top.Cost)
			}
		}

		if r.AlertSent {
			alert = "Sent"
		} else if r.Exceeded && summary.DryRun {
			alert = "Dry run"
		}

		table.AddRow(r.AccountID, cost, topService, status, alert)
	}

	uc.console.Print(table.Render())
}

// ExportSummary exporta o resumo nos formatos configurados e, se houver
// bucket configurado, envia cada arquivo ao S3. Falhas são apenas registradas.
func (uc *ReportUseCase) ExportSummary(ctx context.Context, cfg *types.Config, summary entity.RunSummary) []string {
	if cfg.ReportName == "" || len(cfg.ReportType) == 0 {
		return nil
	}

	var paths []string
	for _, reportType := range cfg.ReportType {
		var (
			path string
			err  error
		)
		switch reportType {
		case "csv":
			path, err = uc.exportRepo.ExportSummaryToCSV(summary, cfg.ReportName, cfg.Dir)
		case "json":
			path, err = uc.exportRepo.ExportSummaryToJSON(summary, cfg.ReportName, cfg.Dir)
		case "pdf":
			path, err = uc.exportRepo.ExportSummaryToPDF(summary, cfg.ReportName, cfg.Dir)
		default:
			uc.console.LogWarning("Unsupported report type: %s", reportType)
			continue
		}
		if err != nil {
			uc.console.LogError("Failed to export to %s: %s", reportType, err)
			continue
		}
		uc.console.LogSuccess("Successfully exported to %s: %s", reportType, path)
		paths = append(paths, path)

		if cfg.ReportBucket != "" {
			uc.uploadReport(ctx, cfg.ReportBucket, summary.Period, path)
		}
	}
	return paths
}

func (uc *ReportUseCase) uploadReport(ctx context.Context, bucket string, period entity.ReportPeriod, path string) {
	file, err := os.Open(path)
	if err != nil {
		uc.console.LogError("Failed to open report %s: %s", path, err)
		return
	}
	defer file.Close()

	key := fmt.Sprintf("cost-alert/%s/%s", period.Start.Format("2006-01"), filepath.Base(path))
	uri, err := uc.storageRepo.PutReport(ctx, bucket, key, file)
	if err != nil {
		uc.console.LogError("Failed to upload report to bucket %s: %s", bucket, err)
		return
	}
	uc.console.LogSuccess("Report uploaded to %s", uri)
}
