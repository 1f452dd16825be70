package azureconfig

import (
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
)

func NewService(subscriptionID, location string) (*service, error) {
	if subscriptionID == "" {
		return nil, fmt.Errorf("Azure subscription ID is required")
	}
	if location == "" {
		return nil, fmt.Errorf("Azure location is required")
	}

	// DefaultAzureCredential covers environment variables, managed identity
	// and the Azure CLI login
	credential, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure credential: %w", err)
	}

	return &service{
		subscriptionID: subscriptionID,
		location:       strings.ToLower(strings.ReplaceAll(location, " ", "")),
		credential:     credential,
	}, nil
}

func (s *service) GetCredential() *azidentity.DefaultAzureCredential {
	return s.credential
}

func (s *service) GetSubscriptionID() string {
	return s.subscriptionID
}

// GetLocation returns the location in ARM form, e.g. "eastus"
func (s *service) GetLocation() string {
	return s.location
}
