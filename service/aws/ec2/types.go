package awsec2

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/elC0mpa/instance-advisor/model"
)

type service struct {
	region string
	client ec2.DescribeInstanceTypesAPIClient
}

type EC2Service interface {
	// Generic interface methods (implements service.OfferSource)
	Provider() model.Provider
	ListOffers(ctx context.Context) ([]model.OfferRecord, error)

	// AWS-specific methods
	GetInstanceTypes(ctx context.Context) ([]types.InstanceTypeInfo, error)
}
