package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/organizations"
	"github.com/diillson/aws-cost-alert-go/internal/domain/entity"
)

// ListAccounts lists every account of the organization, page by page.
func (r *AWSRepositoryImpl) ListAccounts(ctx context.Context) ([]entity.Account, error) {
	client, err := r.getServiceClient(ctx, serviceOrganizations)
	if err != nil {
		return nil, err
	}
	orgClient := client.(OrganizationsAPI)

	accounts := []entity.Account{}
	paginator := organizations.NewListAccountsPaginator(orgClient, &organizations.ListAccountsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, wrapAPIError("error listing organization accounts", err)
		}
		for _, account := range page.Accounts {
			accounts = append(accounts, entity.Account{
				ID:     aws.ToString(account.Id),
				Name:   aws.ToString(account.Name),
				Email:  aws.ToString(account.Email),
				Status: string(account.Status),
			})
		}
	}
	return accounts, nil
}
