package usecase

import "github.com/diillson/aws-cost-alert-go/internal/domain/entity"

// EvaluateThreshold sums every cost and reports whether the total is strictly
// above the threshold. A total equal to the threshold does not alert.
func EvaluateThreshold(costs []entity.ServiceCost, threshold float64) (float64, bool) {
	var total float64
	for _, sc := range costs {
		total += sc.Cost
	}
	return total, total > threshold
}
