package types

// CLIArgs represents the command-line arguments.
// Pointer and nil-slice fields are unset when the flag was not given.
type CLIArgs struct {
	ConfigFile   string
	EnvFile      string
	Threshold    *string
	TopicARN     string
	Region       string
	Profile      string
	MaxServices  *int
	Concurrency  *int
	Accounts     []string
	DryRun       *bool
	At           string
	ReportName   string
	ReportType   []string
	Dir          string
	ReportBucket string
}
