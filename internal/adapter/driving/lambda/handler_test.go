package lambda

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"testing"
	"time"

	"github.com/diillson/aws-cost-alert-go/internal/domain/entity"
	"github.com/diillson/aws-cost-alert-go/internal/domain/repository"
	"github.com/diillson/aws-cost-alert-go/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubConfigRepo struct {
	cfg *types.Config
	err error
}

func (s *stubConfigRepo) LoadConfigFile(string) (*types.Config, error) { return nil, nil }

func (s *stubConfigRepo) ResolveConfig(args *types.CLIArgs) (*types.Config, error) {
	return s.cfg, s.err
}

type stubAWSRepo struct {
	accounts  []string
	costs     map[string]string
	published []entity.AlertMessage
	region    string
}

func (s *stubAWSRepo) ListAccounts(ctx context.Context) ([]entity.Account, error) {
	var accounts []entity.Account
	for _, id := range s.accounts {
		accounts = append(accounts, entity.Account{ID: id, Status: entity.AccountStatusActive})
	}
	return accounts, nil
}

func (s *stubAWSRepo) GetCostAndUsage(ctx context.Context, query entity.CostQuery) ([]entity.CostResultByTime, error) {
	amount, ok := s.costs[query.AccountID]
	if !ok {
		return nil, errors.New("throttled")
	}
	return []entity.CostResultByTime{{Groups: []entity.CostGroup{{
		Keys:    []string{"Amazon EC2"},
		Metrics: map[string]string{entity.UnblendedCostMetric: amount},
	}}}}, nil
}

func (s *stubAWSRepo) Publish(ctx context.Context, topic string, message entity.AlertMessage) (string, error) {
	s.published = append(s.published, message)
	return "id", nil
}

func (s *stubAWSRepo) PutReport(ctx context.Context, bucket, key string, body io.Reader) (string, error) {
	return "s3://" + bucket + "/" + key, nil
}

func (s *stubAWSRepo) GetCallerAccountID(ctx context.Context) (string, error) {
	return "000000000000", nil
}

type nopExportRepo struct{}

func (nopExportRepo) ExportSummaryToCSV(entity.RunSummary, string, string) (string, error) {
	return "", nil
}
func (nopExportRepo) ExportSummaryToJSON(entity.RunSummary, string, string) (string, error) {
	return "", nil
}
func (nopExportRepo) ExportSummaryToPDF(entity.RunSummary, string, string) (string, error) {
	return "", nil
}

type silentConsole struct{}

func (silentConsole) Print(...interface{})              {}
func (silentConsole) Printf(string, ...interface{})     {}
func (silentConsole) Println(...interface{})            {}
func (silentConsole) LogInfo(string, ...interface{})    {}
func (silentConsole) LogWarning(string, ...interface{}) {}
func (silentConsole) LogError(string, ...interface{})   {}
func (silentConsole) LogSuccess(string, ...interface{}) {}
func (silentConsole) Status(string) types.StatusHandle  { return nil }
func (silentConsole) CreateTable() types.TableInterface { return nil }

func newTestHandler(cfg *types.Config, cfgErr error, awsRepo *stubAWSRepo) *Handler {
	h := NewHandler(&stubConfigRepo{cfg: cfg, err: cfgErr}, nopExportRepo{}, func(region, profile string) repository.AWSRepository {
		awsRepo.region = region
		return awsRepo
	}, silentConsole{})
	h.now = func() time.Time { return time.Date(2024, 2, 1, 6, 0, 0, 0, time.UTC) }
	return h
}

func testConfig() *types.Config {
	threshold := 100.0
	return &types.Config{
		Threshold:   &threshold,
		TopicARN:    "arn:aws:sns:us-east-1:1:alerts",
		Region:      "us-east-1",
		MaxServices: 10,
		Concurrency: 1,
	}
}

func TestHandle_ReturnsOk(t *testing.T) {
	awsRepo := &stubAWSRepo{
		accounts: []string{"111", "222"},
		costs:    map[string]string{"111": "150.00", "222": "20.00"},
	}

	resp, err := newTestHandler(testConfig(), nil, awsRepo).Handle(context.Background(), json.RawMessage(`{"source":"aws.events"}`))
	require.NoError(t, err)

	assert.Equal(t, Response{Result: "Ok"}, resp)
	assert.Equal(t, "us-east-1", awsRepo.region)
	require.Len(t, awsRepo.published, 1)
	assert.Equal(t, "AWS Account #111 spend from 2024-01-01 - 2024-01-31", awsRepo.published[0].Subject)

	body, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Result":"Ok"}`, string(body))
}

func TestHandle_AccountFailureFailsInvocation(t *testing.T) {
	awsRepo := &stubAWSRepo{
		accounts: []string{"111", "222"},
		costs:    map[string]string{"222": "500.00"},
	}

	resp, err := newTestHandler(testConfig(), nil, awsRepo).Handle(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "account 111")
	assert.Empty(t, resp.Result)
	assert.Len(t, awsRepo.published, 1)
}

func TestHandle_InvalidConfiguration(t *testing.T) {
	awsRepo := &stubAWSRepo{}

	_, err := newTestHandler(nil, types.ErrMissingThreshold, awsRepo).Handle(context.Background(), nil)
	assert.ErrorIs(t, err, types.ErrMissingThreshold)
	assert.Empty(t, awsRepo.region)
}

func TestHandle_DefaultsExportDirToTemp(t *testing.T) {
	cfg := testConfig()
	awsRepo := &stubAWSRepo{}

	_, err := newTestHandler(cfg, nil, awsRepo).Handle(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, os.TempDir(), cfg.Dir)
}
