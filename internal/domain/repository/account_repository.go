package repository

import (
	"context"

	"github.com/diillson/aws-cost-alert-go/internal/domain/entity"
)

// AccountRepository enumerates the accounts of the organization.
type AccountRepository interface {
	// ListAccounts returns every account, following pagination until exhausted.
	ListAccounts(ctx context.Context) ([]entity.Account, error)
}
