package awsec2

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/elC0mpa/instance-advisor/model"
)

func NewService(awsconfig aws.Config) *service {
	return &service{
		region: awsconfig.Region,
		client: ec2.NewFromConfig(awsconfig),
	}
}

var gigabitRegex = regexp.MustCompile(`([0-9]+(?:\.[0-9]+)?)\s*Gigabit`)

func (s *service) Provider() model.Provider {
	return model.ProviderAWS
}

// ListOffers implements service.OfferSource. EC2 capacity APIs carry no price,
// so PriceUSDPerHour stays absent.
func (s *service) ListOffers(ctx context.Context) ([]model.OfferRecord, error) {
	instanceTypes, err := s.GetInstanceTypes(ctx)
	if err != nil {
		return nil, err
	}

	offers := make([]model.OfferRecord, 0, len(instanceTypes))
	for _, info := range instanceTypes {
		offers = append(offers, s.toOffer(info))
	}
	return offers, nil
}

// GetInstanceTypes returns every current-generation instance type offered in
// the configured region
func (s *service) GetInstanceTypes(ctx context.Context) ([]types.InstanceTypeInfo, error) {
	input := &ec2.DescribeInstanceTypesInput{
		Filters: []types.Filter{
			{
				Name:   aws.String("current-generation"),
				Values: []string{"true"},
			},
		},
	}

	var instanceTypes []types.InstanceTypeInfo
	paginator := ec2.NewDescribeInstanceTypesPaginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe instance types: %w", err)
		}
		instanceTypes = append(instanceTypes, page.InstanceTypes...)
	}

	return instanceTypes, nil
}

func (s *service) toOffer(info types.InstanceTypeInfo) model.OfferRecord {
	offer := model.OfferRecord{
		Provider:     model.ProviderAWS,
		InstanceType: aws.String(string(info.InstanceType)),
		Region:       s.region,
		Security:     securityTier(info),
	}

	if info.VCpuInfo != nil && info.VCpuInfo.DefaultVCpus != nil {
		vcpus := int(*info.VCpuInfo.DefaultVCpus)
		offer.VCPUs = &vcpus
	}
	if info.MemoryInfo != nil && info.MemoryInfo.SizeInMiB != nil {
		memoryGB := float64(*info.MemoryInfo.SizeInMiB) / 1024
		offer.MemoryGB = &memoryGB
	}
	if info.NetworkInfo != nil {
		offer.Performance = performanceTier(aws.ToString(info.NetworkInfo.NetworkPerformance))
	}

	return offer
}

// performanceTier maps EC2 network performance labels such as "Moderate" or
// "Up to 12.5 Gigabit" onto performance tiers
func performanceTier(networkPerformance string) model.PerformanceTier {
	label := strings.ToLower(strings.TrimSpace(networkPerformance))
	switch label {
	case "very low", "low", "low to moderate":
		return model.PerformanceLow
	case "moderate":
		return model.PerformanceModerate
	case "high":
		return model.PerformanceHigh
	case "very high":
		return model.PerformanceVeryHigh
	}

	matches := gigabitRegex.FindStringSubmatch(networkPerformance)
	if len(matches) < 2 {
		return model.PerformanceUnrecognized
	}
	gbps, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return model.PerformanceUnrecognized
	}

	switch {
	case gbps < 5:
		return model.PerformanceModerate
	case gbps <= 10:
		return model.PerformanceHigh
	default:
		return model.PerformanceVeryHigh
	}
}

func securityTier(info types.InstanceTypeInfo) model.SecurityTier {
	switch {
	case info.NitroEnclavesSupport == types.NitroEnclavesSupportSupported:
		return model.SecurityHigh
	case info.Hypervisor == types.InstanceTypeHypervisorNitro:
		return model.SecurityAdvanced
	default:
		return model.SecurityBasic
	}
}
