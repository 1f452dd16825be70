package gcpcompute

import (
	"context"
	"fmt"

	"github.com/elC0mpa/instance-advisor/model"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/compute/v1"
	"google.golang.org/api/option"
)

// NewService lists machine types of projectID. A non-empty region limits the
// listing to that region's zones.
func NewService(ctx context.Context, projectID, region string, creds *google.Credentials) (*service, error) {
	opts := []option.ClientOption{option.WithScopes(compute.ComputeReadonlyScope)}
	if creds != nil {
		opts = append(opts, option.WithCredentials(creds))
		if projectID == "" {
			projectID = creds.ProjectID
		}
	}

	computeClient, err := compute.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Compute client: %w", err)
	}

	return &service{
		projectID:     projectID,
		region:        region,
		computeClient: computeClient,
	}, nil
}

func (s *service) Provider() model.Provider {
	return model.ProviderGCP
}

// ListOffers implements service.OfferSource. Machine types repeat across the
// zones of a region and are reported once per region.
func (s *service) ListOffers(ctx context.Context) ([]model.OfferRecord, error) {
	zones, err := s.GetZones(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var offers []model.OfferRecord

	for _, zone := range zones {
		region := extractResourceName(zone.Region)

		machineTypes, err := s.GetMachineTypes(ctx, zone.Name)
		if err != nil {
			// Skip zones the project cannot use
			continue
		}

		for _, mt := range machineTypes {
			if mt.Deprecated != nil && mt.Deprecated.State != "" {
				continue
			}

			key := region + "/" + mt.Name
			if seen[key] {
				continue
			}
			seen[key] = true

			name := mt.Name
			vcpus := int(mt.GuestCpus)
			memoryGB := float64(mt.MemoryMb) / 1024
			offers = append(offers, model.OfferRecord{
				Provider:     model.ProviderGCP,
				InstanceType: &name,
				Region:       region,
				VCPUs:        &vcpus,
				MemoryGB:     &memoryGB,
			})
		}
	}

	return offers, nil
}

// GetZones returns the project's zones, limited to the configured region
func (s *service) GetZones(ctx context.Context) ([]*compute.Zone, error) {
	var zones []*compute.Zone

	call := s.computeClient.Zones.List(s.projectID)
	err := call.Pages(ctx, func(page *compute.ZoneList) error {
		for _, zone := range page.Items {
			if s.region != "" && extractResourceName(zone.Region) != s.region {
				continue
			}
			zones = append(zones, zone)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list zones: %w", err)
	}

	return zones, nil
}

// GetMachineTypes returns every machine type of a zone
func (s *service) GetMachineTypes(ctx context.Context, zone string) ([]*compute.MachineType, error) {
	var machineTypes []*compute.MachineType

	call := s.computeClient.MachineTypes.List(s.projectID, zone)
	err := call.Pages(ctx, func(page *compute.MachineTypeList) error {
		machineTypes = append(machineTypes, page.Items...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list machine types in %s: %w", zone, err)
	}

	return machineTypes, nil
}

// extractResourceName returns the last path segment of a resource URL
func extractResourceName(resourceURL string) string {
	for i := len(resourceURL) - 1; i >= 0; i-- {
		if resourceURL[i] == '/' {
			return resourceURL[i+1:]
		}
	}
	return resourceURL
}
