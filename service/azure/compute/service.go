package azurecompute

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"
	"github.com/elC0mpa/instance-advisor/model"
)

func NewService(subscriptionID, location string, credential *Credential) (*service, error) {
	sizesClient, err := armcompute.NewVirtualMachineSizesClient(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create virtual machine sizes client: %w", err)
	}

	return &service{
		location:    location,
		sizesClient: sizesClient,
	}, nil
}

func (s *service) Provider() model.Provider {
	return model.ProviderAzure
}

// ListOffers implements service.OfferSource. VM size listings carry neither
// price nor qualitative tiers.
func (s *service) ListOffers(ctx context.Context) ([]model.OfferRecord, error) {
	sizes, err := s.GetVirtualMachineSizes(ctx)
	if err != nil {
		return nil, err
	}

	offers := make([]model.OfferRecord, 0, len(sizes))
	for _, size := range sizes {
		if size == nil {
			continue
		}

		offer := model.OfferRecord{
			Provider:     model.ProviderAzure,
			InstanceType: size.Name,
			Region:       s.location,
		}
		if size.NumberOfCores != nil {
			vcpus := int(*size.NumberOfCores)
			offer.VCPUs = &vcpus
		}
		if size.MemoryInMB != nil {
			memoryGB := float64(*size.MemoryInMB) / 1024
			offer.MemoryGB = &memoryGB
		}
		offers = append(offers, offer)
	}

	return offers, nil
}

// GetVirtualMachineSizes returns every VM size available in the location
func (s *service) GetVirtualMachineSizes(ctx context.Context) ([]*armcompute.VirtualMachineSize, error) {
	var sizes []*armcompute.VirtualMachineSize

	pager := s.sizesClient.NewListPager(s.location, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list virtual machine sizes: %w", err)
		}
		sizes = append(sizes, page.Value...)
	}

	return sizes, nil
}
