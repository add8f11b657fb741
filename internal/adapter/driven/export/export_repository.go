package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/diillson/aws-cost-alert-go/internal/domain/entity"
	"github.com/diillson/aws-cost-alert-go/internal/domain/repository"
	"github.com/jung-kurt/gofpdf"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct {
	now func() time.Time
}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{now: time.Now}
}

func (r *ExportRepositoryImpl) ExportSummaryToCSV(summary entity.RunSummary, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	headers := []string{
		"AWS Account ID", "Period Start", "Period End", "Total Cost",
		"Threshold", "Exceeded", "Alert Sent", "Cost By Service", "Error",
	}
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, result := range summary.Results {
		total := ""
		if result.Report != nil {
			total = fmt.Sprintf("%.2f", result.Report.TotalCost)
		}
		record := []string{
			result.AccountID,
			summary.Period.StartDate(),
			summary.Period.EndDate(),
			total,
			fmt.Sprintf("%.2f", summary.Threshold),
			fmt.Sprintf("%t", result.Exceeded),
			fmt.Sprintf("%t", result.AlertSent),
			formatServiceCosts(result),
			result.Error,
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("error flushing CSV file: %w", err)
	}
	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportSummaryToJSON(summary entity.RunSummary, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(summary); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportSummaryToPDF(summary entity.RunSummary, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	drawSection := func(title string, content string) {
		if strings.TrimSpace(content) == "" {
			return
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)

		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.MultiCell(190, 5, tr(content), "", "L", false)
		pdf.Ln(8)
	}

	if len(summary.Results) == 0 {
		pdf.AddPage()
		drawSection("Cost Alert Summary", fmt.Sprintf("No accounts processed for %s.", summary.Period))
	}

	for i, result := range summary.Results {
		pdf.AddPage()

		pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
		pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 12, tr(fmt.Sprintf("  Account ID: %s", result.AccountID)), "", 1, "L", true, 0, "")

		pdf.SetFont("Arial", "", 10)
		pdf.SetFillColor(240, 240, 240)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Period: %s", summary.Period)), "", 1, "L", true, 0, "")
		pdf.Ln(10)

		var status strings.Builder
		if result.Report != nil {
			status.WriteString(fmt.Sprintf("Total cost: $%.2f\n", result.Report.TotalCost))
		}
		status.WriteString(fmt.Sprintf("Threshold: $%.2f\n", summary.Threshold))
		status.WriteString(fmt.Sprintf("Exceeded: %t\n", result.Exceeded))
		status.WriteString(fmt.Sprintf("Alert sent: %t\n", result.AlertSent))
		if result.Error != "" {
			status.WriteString(fmt.Sprintf("Error: %s\n", result.Error))
		}
		drawSection("Cost Summary", status.String())
		drawSection("Cost By Service", formatServiceCosts(result))

		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		footerText := fmt.Sprintf("AWS Cost Alert | run %s | %s", summary.RunID, r.now().Format("2006-01-02"))
		pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Page %d", i+1)), "", 0, "R", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}
	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

func formatServiceCosts(result entity.AccountResult) string {
	if result.Report == nil {
		return ""
	}
	var b strings.Builder
	for _, sc := range result.Report.RankedCosts {
		b.WriteString(fmt.Sprintf("%s: $%.2f\n", sc.ServiceName, sc.Cost))
	}
	return strings.TrimSpace(b.String())
}

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func (r *ExportRepositoryImpl) generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := r.now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}
