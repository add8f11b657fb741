package repository

import (
	"github.com/diillson/aws-cost-alert-go/internal/domain/entity"
)

type ExportRepository interface {
	ExportSummaryToCSV(summary entity.RunSummary, filename, outputDir string) (string, error)
	ExportSummaryToJSON(summary entity.RunSummary, filename, outputDir string) (string, error)
	ExportSummaryToPDF(summary entity.RunSummary, filename, outputDir string) (string, error)
}
