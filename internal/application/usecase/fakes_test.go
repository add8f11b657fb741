package usecase

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/diillson/aws-cost-alert-go/internal/domain/entity"
	"github.com/diillson/aws-cost-alert-go/internal/shared/types"
)

type fakeAccountRepo struct {
	accounts []entity.Account
	err      error
}

func (f *fakeAccountRepo) ListAccounts(ctx context.Context) ([]entity.Account, error) {
	return f.accounts, f.err
}

type fakeCostRepo struct {
	mu      sync.Mutex
	results map[string][]entity.CostResultByTime
	errs    map[string]error
	queries []entity.CostQuery
}

func (f *fakeCostRepo) GetCostAndUsage(ctx context.Context, query entity.CostQuery) ([]entity.CostResultByTime, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, query)
	if err := f.errs[query.AccountID]; err != nil {
		return nil, err
	}
	return f.results[query.AccountID], nil
}

type publishedMessage struct {
	topic   string
	message entity.AlertMessage
}

type fakeNotifier struct {
	mu        sync.Mutex
	published []publishedMessage
	err       error
}

func (f *fakeNotifier) Publish(ctx context.Context, topic string, message entity.AlertMessage) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	f.published = append(f.published, publishedMessage{topic: topic, message: message})
	return fmt.Sprintf("msg-%d", len(f.published)), nil
}

type fakeExportRepo struct {
	calls []string
	err   error
}

func (f *fakeExportRepo) ExportSummaryToCSV(summary entity.RunSummary, filename, outputDir string) (string, error) {
	return f.exportTo(outputDir, filename, "csv")
}

func (f *fakeExportRepo) ExportSummaryToJSON(summary entity.RunSummary, filename, outputDir string) (string, error) {
	return f.exportTo(outputDir, filename, "json")
}

func (f *fakeExportRepo) ExportSummaryToPDF(summary entity.RunSummary, filename, outputDir string) (string, error) {
	return f.exportTo(outputDir, filename, "pdf")
}

func (f *fakeExportRepo) exportTo(dir, name, ext string) (string, error) {
	f.calls = append(f.calls, ext)
	if f.err != nil {
		return "", f.err
	}
	path := filepath.Join(dir, name+"."+ext)
	if err := os.WriteFile(path, []byte(ext+" report"), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

type fakeStorage struct {
	keys   []string
	bodies []string
}

func (f *fakeStorage) PutReport(ctx context.Context, bucket, key string, body io.Reader) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	f.keys = append(f.keys, key)
	f.bodies = append(f.bodies, string(data))
	return "s3://" + bucket + "/" + key, nil
}

type recordingConsole struct {
	mu    sync.Mutex
	lines []string
}

func (c *recordingConsole) record(level, format string, a ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = append(c.lines, level+": "+fmt.Sprintf(format, a...))
}

func (c *recordingConsole) output() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return strings.Join(c.lines, "\n")
}

func (c *recordingConsole) Print(a ...interface{})                 { c.record("print", "%s", fmt.Sprint(a...)) }
func (c *recordingConsole) Printf(format string, a ...interface{}) { c.record("print", format, a...) }
func (c *recordingConsole) Println(a ...interface{})               { c.record("print", "%s", fmt.Sprint(a...)) }
func (c *recordingConsole) LogInfo(format string, a ...interface{}) {
	c.record("info", format, a...)
}
func (c *recordingConsole) LogWarning(format string, a ...interface{}) {
	c.record("warning", format, a...)
}
func (c *recordingConsole) LogError(format string, a ...interface{}) {
	c.record("error", format, a...)
}
func (c *recordingConsole) LogSuccess(format string, a ...interface{}) {
	c.record("success", format, a...)
}
func (c *recordingConsole) Status(message string) types.StatusHandle { return nopStatus{} }
func (c *recordingConsole) CreateTable() types.TableInterface        { return &fakeTable{} }

type nopStatus struct{}

func (nopStatus) Update(string) {}
func (nopStatus) Stop()         {}

type fakeTable struct {
	columns []string
	rows    [][]string
}

func (t *fakeTable) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

func (t *fakeTable) AddRow(cells ...interface{}) {
	row := make([]string, len(cells))
	for i, cell := range cells {
		row[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, row)
}

func (t *fakeTable) Render() string {
	var b strings.Builder
	b.WriteString(strings.Join(t.columns, " | "))
	for _, row := range t.rows {
		b.WriteString("\n" + strings.Join(row, " | "))
	}
	return b.String()
}

// serviceGroup builds a raw Cost Explorer group with an UnblendedCost amount.
func serviceGroup(name, amount string) entity.CostGroup {
	return entity.CostGroup{
		Keys:    []string{name},
		Metrics: map[string]string{entity.UnblendedCostMetric: amount},
	}
}

func monthlyResult(groups ...entity.CostGroup) []entity.CostResultByTime {
	return []entity.CostResultByTime{{Start: "2024-01-01", End: "2024-02-01", Groups: groups}}
}
