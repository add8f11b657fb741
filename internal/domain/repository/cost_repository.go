package repository

import (
	"context"

	"github.com/diillson/aws-cost-alert-go/internal/domain/entity"
)

// CostRepository queries grouped cost and usage data.
type CostRepository interface {
	GetCostAndUsage(ctx context.Context, query entity.CostQuery) ([]entity.CostResultByTime, error)
}
