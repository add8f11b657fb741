package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/diillson/aws-cost-alert-go/internal/domain/entity"
	"github.com/diillson/aws-cost-alert-go/internal/domain/repository"
	"github.com/diillson/aws-cost-alert-go/internal/shared/types"
)

// CostAggregator builds the ranked per-service costs of an account.
type CostAggregator struct {
	costRepo repository.CostRepository
}

// NewCostAggregator creates a new cost aggregator.
func NewCostAggregator(costRepo repository.CostRepository) *CostAggregator {
	return &CostAggregator{costRepo: costRepo}
}

// AggregateCosts consulta o custo não-mesclado (UnblendedCost) por serviço da
// conta no período e retorna a lista ordenada do maior para o menor custo.
// Uma conta sem dados retorna lista vazia, não erro.
func (a *CostAggregator) AggregateCosts(ctx context.Context, accountID string, period entity.ReportPeriod) ([]entity.ServiceCost, error) {
	results, err := a.costRepo.GetCostAndUsage(ctx, entity.CostQuery{
		AccountID:   accountID,
		Period:      period,
		Granularity: entity.GranularityMonthly,
		GroupBy:     entity.GroupByService,
		Metric:      entity.UnblendedCostMetric,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query costs for account %s: %w", accountID, err)
	}

	costs, err := flattenResults(results, entity.UnblendedCostMetric)
	if err != nil {
		return nil, fmt.Errorf("account %s: %w", accountID, err)
	}

	RankCosts(costs)
	return costs, nil
}

// flattenResults concatena os grupos de todos os buckets de tempo. Serviços
// repetidos em buckets diferentes não são somados.
func flattenResults(results []entity.CostResultByTime, metric string) ([]entity.ServiceCost, error) {
	costs := []entity.ServiceCost{}
	for _, bucket := range results {
		for _, group := range bucket.Groups {
			if len(group.Keys) == 0 || strings.TrimSpace(group.Keys[0]) == "" {
				return nil, fmt.Errorf("%w: group without service name in bucket %s", types.ErrMalformedCostData, bucket.Start)
			}
			serviceName := group.Keys[0]

			amount, ok := group.Metrics[metric]
			if !ok {
				return nil, fmt.Errorf("%w: service %q has no %s amount", types.ErrMalformedCostData, serviceName, metric)
			}
			cost, err := strconv.ParseFloat(strings.TrimSpace(amount), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: service %q amount %q: %v", types.ErrMalformedCostData, serviceName, amount, err)
			}

			costs = append(costs, entity.ServiceCost{ServiceName: serviceName, Cost: cost})
		}
	}
	return costs, nil
}

// RankCosts sorts costs in place, highest first. The relative order of
// services with equal cost is unspecified.
func RankCosts(costs []entity.ServiceCost) {
	sort.Slice(costs, func(i, j int) bool {
		return costs[i].Cost > costs[j].Cost
	})
}
