package repository

import (
	"context"
)

// AWSRepository defines the interface for AWS API interactions.
type AWSRepository interface {
	AccountRepository
	CostRepository
	NotifierRepository
	ReportStorageRepository

	// GetCallerAccountID returns the account the credentials belong to.
	GetCallerAccountID(ctx context.Context) (string, error)
}

// AWSRepositoryFactory builds an AWSRepository once region and profile are known.
type AWSRepositoryFactory func(region, profile string) AWSRepository
