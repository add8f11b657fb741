package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	ceTypes "github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/diillson/aws-cost-alert-go/internal/domain/entity"
)

// GetCostAndUsage consulta o Cost Explorer filtrando pela conta vinculada.
// O fim do período é inclusivo no domínio e exclusivo na API, por isso
// enviamos o dia seguinte ao último dia do mês.
func (r *AWSRepositoryImpl) GetCostAndUsage(ctx context.Context, query entity.CostQuery) ([]entity.CostResultByTime, error) {
	client, err := r.getServiceClient(ctx, serviceCostExplorer)
	if err != nil {
		return nil, err
	}
	ceClient := client.(CostExplorerAPI)

	input := &costexplorer.GetCostAndUsageInput{
		TimePeriod: &ceTypes.DateInterval{
			Start: aws.String(query.Period.StartDate()),
			End:   aws.String(query.Period.ExclusiveEnd().Format(entity.DateLayout)),
		},
		Granularity: ceTypes.Granularity(query.Granularity),
		Metrics:     []string{query.Metric},
		Filter: &ceTypes.Expression{
			Dimensions: &ceTypes.DimensionValues{
				Key:    ceTypes.DimensionLinkedAccount,
				Values: []string{query.AccountID},
			},
		},
		GroupBy: []ceTypes.GroupDefinition{
			{Type: ceTypes.GroupDefinitionTypeDimension, Key: aws.String(query.GroupBy)},
		},
	}

	var results []entity.CostResultByTime
	for {
		output, err := ceClient.GetCostAndUsage(ctx, input)
		if err != nil {
			return nil, wrapAPIError(fmt.Sprintf("error getting cost and usage for account %s", query.AccountID), err)
		}

		for _, byTime := range output.ResultsByTime {
			results = append(results, toCostResult(byTime))
		}

		if aws.ToString(output.NextPageToken) == "" {
			break
		}
		input.NextPageToken = output.NextPageToken
	}
	return results, nil
}

func toCostResult(byTime ceTypes.ResultByTime) entity.CostResultByTime {
	result := entity.CostResultByTime{}
	if byTime.TimePeriod != nil {
		result.Start = aws.ToString(byTime.TimePeriod.Start)
		result.End = aws.ToString(byTime.TimePeriod.End)
	}

	for _, group := range byTime.Groups {
		metrics := make(map[string]string, len(group.Metrics))
		for name, value := range group.Metrics {
			if value.Amount != nil {
				metrics[name] = *value.Amount
			}
		}
		result.Groups = append(result.Groups, entity.CostGroup{
			Keys:    group.Keys,
			Metrics: metrics,
		})
	}
	return result
}
