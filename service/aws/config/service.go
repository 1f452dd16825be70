package awsconfig

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
)

func NewService() *service {
	return &service{appID: "instance-advisor"}
}

// GetAWSCfg loads the default credential chain for region. An empty profile
// keeps the chain's own profile resolution.
func (s *service) GetAWSCfg(ctx context.Context, region, profile string) (aws.Config, error) {
	if region == "" {
		return aws.Config{}, fmt.Errorf("AWS region is required")
	}

	opts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
		config.WithAppID(s.appID),
	}
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return cfg, nil
}
