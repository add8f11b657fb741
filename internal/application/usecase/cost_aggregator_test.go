package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diillson/aws-cost-alert-go/internal/domain/entity"
	"github.com/diillson/aws-cost-alert-go/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var january2024 = entity.ComputeReportPeriod(time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC))

func TestAggregateCosts_SortsDescending(t *testing.T) {
	repo := &fakeCostRepo{results: map[string][]entity.CostResultByTime{
		"111": monthlyResult(
			serviceGroup("Amazon S3", "300.00"),
			serviceGroup("AWS Lambda", "0.42"),
			serviceGroup("Amazon EC2", "500.0"),
			serviceGroup("Amazon RDS", "10"),
		),
	}}

	costs, err := NewCostAggregator(repo).AggregateCosts(context.Background(), "111", january2024)
	require.NoError(t, err)
	require.Len(t, costs, 4)

	assert.Equal(t, entity.ServiceCost{ServiceName: "Amazon EC2", Cost: 500}, costs[0])
	assert.Equal(t, entity.ServiceCost{ServiceName: "Amazon S3", Cost: 300}, costs[1])
	assert.Equal(t, entity.ServiceCost{ServiceName: "Amazon RDS", Cost: 10}, costs[2])
	assert.Equal(t, entity.ServiceCost{ServiceName: "AWS Lambda", Cost: 0.42}, costs[3])
}

func TestAggregateCosts_QueryShape(t *testing.T) {
	repo := &fakeCostRepo{}

	_, err := NewCostAggregator(repo).AggregateCosts(context.Background(), "222", january2024)
	require.NoError(t, err)
	require.Len(t, repo.queries, 1)

	q := repo.queries[0]
	assert.Equal(t, "222", q.AccountID)
	assert.Equal(t, january2024, q.Period)
	assert.Equal(t, "MONTHLY", q.Granularity)
	assert.Equal(t, "SERVICE", q.GroupBy)
	assert.Equal(t, "UnblendedCost", q.Metric)
}

func TestAggregateCosts_NoDataReturnsEmpty(t *testing.T) {
	repo := &fakeCostRepo{results: map[string][]entity.CostResultByTime{
		"111": monthlyResult(),
	}}

	costs, err := NewCostAggregator(repo).AggregateCosts(context.Background(), "111", january2024)
	require.NoError(t, err)
	assert.NotNil(t, costs)
	assert.Empty(t, costs)

	costs, err = NewCostAggregator(repo).AggregateCosts(context.Background(), "999", january2024)
	require.NoError(t, err)
	assert.Empty(t, costs)
}

func TestAggregateCosts_FlattensBucketsWithoutDedup(t *testing.T) {
	repo := &fakeCostRepo{results: map[string][]entity.CostResultByTime{
		"111": {
			{Start: "2024-01-01", Groups: []entity.CostGroup{serviceGroup("Amazon EC2", "5"), serviceGroup("Amazon S3", "1")}},
			{Start: "2024-01-15", Groups: []entity.CostGroup{serviceGroup("Amazon EC2", "7")}},
		},
	}}

	costs, err := NewCostAggregator(repo).AggregateCosts(context.Background(), "111", january2024)
	require.NoError(t, err)
	require.Len(t, costs, 3)
	assert.Equal(t, entity.ServiceCost{ServiceName: "Amazon EC2", Cost: 7}, costs[0])
	assert.Equal(t, entity.ServiceCost{ServiceName: "Amazon EC2", Cost: 5}, costs[1])
	assert.Equal(t, entity.ServiceCost{ServiceName: "Amazon S3", Cost: 1}, costs[2])
}

func TestAggregateCosts_MalformedData(t *testing.T) {
	tests := []struct {
		name  string
		group entity.CostGroup
	}{
		{"bad amount", serviceGroup("Amazon EC2", "12,50")},
		{"empty amount", serviceGroup("Amazon EC2", "")},
		{"missing metric", entity.CostGroup{Keys: []string{"Amazon EC2"}, Metrics: map[string]string{"BlendedCost": "1.00"}}},
		{"missing service name", entity.CostGroup{Metrics: map[string]string{entity.UnblendedCostMetric: "1.00"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeCostRepo{results: map[string][]entity.CostResultByTime{
				"111": monthlyResult(serviceGroup("Amazon S3", "1.00"), tt.group),
			}}

			costs, err := NewCostAggregator(repo).AggregateCosts(context.Background(), "111", january2024)
			require.Error(t, err)
			assert.ErrorIs(t, err, types.ErrMalformedCostData)
			assert.Nil(t, costs)
		})
	}
}

func TestAggregateCosts_SourceError(t *testing.T) {
	boom := errors.New("throttled")
	repo := &fakeCostRepo{errs: map[string]error{"111": boom}}

	_, err := NewCostAggregator(repo).AggregateCosts(context.Background(), "111", january2024)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "111")
}

func TestRankCosts_DescendingWithTies(t *testing.T) {
	costs := []entity.ServiceCost{
		{ServiceName: "a", Cost: 1},
		{ServiceName: "b", Cost: 9},
		{ServiceName: "c", Cost: 4},
		{ServiceName: "d", Cost: 9},
		{ServiceName: "e", Cost: 0},
		{ServiceName: "f", Cost: 4},
	}

	RankCosts(costs)

	// ties may come in any order, so only the descending property is checked
	for i := 0; i+1 < len(costs); i++ {
		assert.GreaterOrEqual(t, costs[i].Cost, costs[i+1].Cost)
	}
	assert.Equal(t, 9.0, costs[0].Cost)
	assert.Equal(t, 0.0, costs[len(costs)-1].Cost)
}
