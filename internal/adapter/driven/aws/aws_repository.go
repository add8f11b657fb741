package aws

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/aws/aws-sdk-go-v2/service/organizations"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/smithy-go"
	"github.com/diillson/aws-cost-alert-go/internal/domain/repository"
)

// Cost Explorer and Organizations are global services served from us-east-1.
const globalRegion = "us-east-1"

// Service keys for the client cache.
const (
	serviceOrganizations = "organizations"
	serviceCostExplorer  = "costexplorer"
	serviceSNS           = "sns"
	serviceSTS           = "sts"
	serviceS3            = "s3"
)

// OrganizationsAPI is the subset of the Organizations client we use.
type OrganizationsAPI interface {
	ListAccounts(ctx context.Context, params *organizations.ListAccountsInput, optFns ...func(*organizations.Options)) (*organizations.ListAccountsOutput, error)
}

// CostExplorerAPI is the subset of the Cost Explorer client we use.
type CostExplorerAPI interface {
	GetCostAndUsage(ctx context.Context, params *costexplorer.GetCostAndUsageInput, optFns ...func(*costexplorer.Options)) (*costexplorer.GetCostAndUsageOutput, error)
}

// SNSAPI is the subset of the SNS client we use.
type SNSAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// STSAPI is the subset of the STS client we use.
type STSAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// S3API is the subset of the S3 client we use.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Clients pre-populates the client cache. Nil fields are created on demand.
type Clients struct {
	Organizations OrganizationsAPI
	CostExplorer  CostExplorerAPI
	SNS           SNSAPI
	STS           STSAPI
	S3            S3API
}

// AWSRepositoryImpl implementa o AWSRepository com cache de clientes.
type AWSRepositoryImpl struct {
	region      string
	profile     string
	cfg         *aws.Config
	clientCache map[string]interface{}
	mu          sync.Mutex
}

// NewAWSRepository cria uma nova implementação do AWSRepository.
// A configuração AWS (credenciais, região) só é carregada no primeiro uso.
func NewAWSRepository(region, profile string) repository.AWSRepository {
	return &AWSRepositoryImpl{
		region:      region,
		profile:     profile,
		clientCache: make(map[string]interface{}),
	}
}

// NewAWSRepositoryWithClients creates a repository backed by the given API
// implementations.
func NewAWSRepositoryWithClients(clients Clients) *AWSRepositoryImpl {
	r := &AWSRepositoryImpl{
		region:      globalRegion,
		clientCache: make(map[string]interface{}),
	}
	if clients.Organizations != nil {
		r.clientCache[serviceOrganizations] = clients.Organizations
	}
	if clients.CostExplorer != nil {
		r.clientCache[serviceCostExplorer] = clients.CostExplorer
	}
	if clients.SNS != nil {
		r.clientCache[serviceSNS] = clients.SNS
	}
	if clients.STS != nil {
		r.clientCache[serviceSTS] = clients.STS
	}
	if clients.S3 != nil {
		r.clientCache[serviceS3] = clients.S3
	}
	return r
}

// getAWSConfig must be called with r.mu held.
func (r *AWSRepositoryImpl) getAWSConfig(ctx context.Context) (aws.Config, error) {
	if r.cfg != nil {
		return *r.cfg, nil
	}

	opts := []func(*config.LoadOptions) error{}
	if r.region != "" {
		opts = append(opts, config.WithRegion(r.region))
	}
	if r.profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(r.profile))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}
	if cfg.Region == "" {
		cfg.Region = globalRegion
	}

	r.cfg = &cfg
	return cfg, nil
}

func (r *AWSRepositoryImpl) getServiceClient(ctx context.Context, service string) (interface{}, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if client, ok := r.clientCache[service]; ok {
		return client, nil
	}

	cfg, err := r.getAWSConfig(ctx)
	if err != nil {
		return nil, err
	}

	regionalCfg := cfg.Copy()

	var client interface{}
	switch service {
	case serviceOrganizations:
		regionalCfg.Region = globalRegion
		client = organizations.NewFromConfig(regionalCfg)
	case serviceCostExplorer:
		regionalCfg.Region = globalRegion
		client = costexplorer.NewFromConfig(regionalCfg)
	case serviceSNS:
		client = sns.NewFromConfig(regionalCfg)
	case serviceSTS:
		client = sts.NewFromConfig(regionalCfg)
	case serviceS3:
		client = s3.NewFromConfig(regionalCfg)
	default:
		return nil, fmt.Errorf("unsupported service: %s", service)
	}

	r.clientCache[service] = client
	return client, nil
}

// GetCallerAccountID returns the account id of the running credentials.
func (r *AWSRepositoryImpl) GetCallerAccountID(ctx context.Context) (string, error) {
	client, err := r.getServiceClient(ctx, serviceSTS)
	if err != nil {
		return "", err
	}
	stsClient := client.(STSAPI)

	result, err := stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", wrapAPIError("error getting caller identity", err)
	}
	return aws.ToString(result.Account), nil
}

// wrapAPIError adds the AWS error code, when there is one, to the message.
func wrapAPIError(msg string, err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%s (%s): %w", msg, apiErr.ErrorCode(), err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
