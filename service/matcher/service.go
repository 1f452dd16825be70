package matcher

import (
	"context"
	"fmt"

	"github.com/elC0mpa/instance-advisor/model"
	svc "github.com/elC0mpa/instance-advisor/service"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// NewService queries providers in the given order. A nil providers slice
// means model.AllProviders.
func NewService(catalog svc.CatalogService, providers []model.Provider, logger logrus.FieldLogger) *service {
	if providers == nil {
		providers = model.AllProviders
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &service{
		catalog:   catalog,
		providers: providers,
		logger:    logger,
	}
}

// Match collects exact-capacity offers from every provider, tags them with
// their provider and applies defaults. The result is grouped by provider in
// service order and keeps each provider's own order. No match yields an empty
// slice.
func (s *service) Match(ctx context.Context, req model.Request) ([]model.Offer, error) {
	region := req.Region
	if req.AllRegions() {
		region = model.RegionAll
	}

	perProvider := make([][]model.OfferRecord, len(s.providers))

	g, gctx := errgroup.WithContext(ctx)
	for i, provider := range s.providers {
		g.Go(func() error {
			records, err := s.catalog.QueryByExactCapacity(gctx, provider, req.CPU, req.Memory, region)
			if err != nil {
				return fmt.Errorf("failed to query %s offers: %w", provider, err)
			}
			perProvider[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	offers := make([]model.Offer, 0)
	for i, records := range perProvider {
		for _, record := range records {
			if !matches(record, req, region) {
				continue
			}
			record.Provider = s.providers[i]
			offers = append(offers, record.WithDefaults())
		}
	}

	s.logger.WithFields(logrus.Fields{
		"cpu":     req.CPU,
		"memory":  req.Memory,
		"region":  region,
		"matched": len(offers),
	}).Debug("matched catalog offers")

	return offers, nil
}

// matches enforces the exact-match contract on whatever the catalog returned
func matches(record model.OfferRecord, req model.Request, region string) bool {
	if record.VCPUs == nil || *record.VCPUs != req.CPU {
		return false
	}
	if record.MemoryGB == nil || *record.MemoryGB != req.Memory {
		return false
	}
	if region != model.RegionAll && record.Region != region {
		return false
	}
	return true
}
