package types

// Default configuration values.
const (
	DefaultRegion      = "us-east-1"
	DefaultMaxServices = 10
	DefaultConcurrency = 1
	DefaultReportType  = "csv"
)

// Config is the configuration of one invocation. It is resolved once at
// startup and passed explicitly to every component.
type Config struct {
	Threshold    *float64 `json:"threshold_amount" yaml:"threshold_amount" toml:"threshold_amount"`
	TopicARN     string   `json:"sns_topic_arn" yaml:"sns_topic_arn" toml:"sns_topic_arn"`
	Region       string   `json:"region" yaml:"region" toml:"region"`
	Profile      string   `json:"profile" yaml:"profile" toml:"profile"`
	MaxServices  int      `json:"max_services" yaml:"max_services" toml:"max_services"`
	Concurrency  int      `json:"concurrency" yaml:"concurrency" toml:"concurrency"`
	Accounts     []string `json:"accounts" yaml:"accounts" toml:"accounts"`
	DryRun       bool     `json:"dry_run" yaml:"dry_run" toml:"dry_run"`
	ReportName   string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType   []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir          string   `json:"dir" yaml:"dir" toml:"dir"`
	ReportBucket string   `json:"report_bucket" yaml:"report_bucket" toml:"report_bucket"`
}

// ThresholdAmount returns the configured threshold, zero when unset.
func (c *Config) ThresholdAmount() float64 {
	if c == nil || c.Threshold == nil {
		return 0
	}
	return *c.Threshold
}
