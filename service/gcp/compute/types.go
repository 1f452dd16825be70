package gcpcompute

import (
	"context"

	"github.com/elC0mpa/instance-advisor/model"
	"google.golang.org/api/compute/v1"
)

type service struct {
	projectID     string
	region        string
	computeClient *compute.Service
}

type ComputeService interface {
	// Generic interface methods (implements service.OfferSource)
	Provider() model.Provider
	ListOffers(ctx context.Context) ([]model.OfferRecord, error)

	// GCP-specific methods
	GetZones(ctx context.Context) ([]*compute.Zone, error)
	GetMachineTypes(ctx context.Context, zone string) ([]*compute.MachineType, error)
}
