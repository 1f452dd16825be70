package azurecompute

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"
	"github.com/elC0mpa/instance-advisor/model"
)

type service struct {
	location    string
	sizesClient *armcompute.VirtualMachineSizesClient
}

type ComputeService interface {
	// Generic interface methods (implements service.OfferSource)
	Provider() model.Provider
	ListOffers(ctx context.Context) ([]model.OfferRecord, error)

	// Azure-specific methods
	GetVirtualMachineSizes(ctx context.Context) ([]*armcompute.VirtualMachineSize, error)
}

// Credential is passed to allow reuse across services
type Credential = azidentity.DefaultAzureCredential
