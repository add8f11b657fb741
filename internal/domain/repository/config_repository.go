package repository

import (
	"github.com/diillson/aws-cost-alert-go/internal/shared/types"
)

// ConfigRepository defines the interface for loading configuration.
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
	ResolveConfig(args *types.CLIArgs) (*types.Config, error)
}
