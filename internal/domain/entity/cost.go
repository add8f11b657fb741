package entity

// Cost Explorer query constants used by the aggregation.
const (
	GranularityMonthly  = "MONTHLY"
	GroupByService      = "SERVICE"
	UnblendedCostMetric = "UnblendedCost"
)

// ServiceCost represents a cost amount for a specific AWS service.
type ServiceCost struct {
	ServiceName string  `json:"service_name"`
	Cost        float64 `json:"cost"`
}

// CostQuery describes a grouped cost lookup for one linked account.
// Start and End are both inclusive calendar dates.
type CostQuery struct {
	AccountID   string
	Period      ReportPeriod
	Granularity string
	GroupBy     string
	Metric      string
}

// CostGroup is a single group as returned by the cost source. Metrics maps a
// metric name to its raw decimal amount; a metric without an amount is absent.
type CostGroup struct {
	Keys    []string
	Metrics map[string]string
}

// CostResultByTime is one time bucket of grouped results.
type CostResultByTime struct {
	Start  string
	End    string
	Groups []CostGroup
}

// AccountCostReport holds the ranked per-service costs for one account.
// TotalCost is the sum of every entry in RankedCosts, not just the reported ones.
type AccountCostReport struct {
	AccountID   string        `json:"account_id"`
	Period      ReportPeriod  `json:"period"`
	RankedCosts []ServiceCost `json:"ranked_costs"`
	TotalCost   float64       `json:"total_cost"`
}
