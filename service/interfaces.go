package service

import (
	"context"

	"github.com/elC0mpa/instance-advisor/model"
)

// CatalogService provides read-only access to provider offers
type CatalogService interface {
	// QueryByExactCapacity returns the provider's offers whose vCPU count and
	// memory equal the request exactly. Region model.RegionAll disables the
	// region filter. Returned records are owned by the caller.
	QueryByExactCapacity(ctx context.Context, provider model.Provider, cpu int, memory float64, region string) ([]model.OfferRecord, error)
}

// OfferSource lists the instance offers a provider currently sells
type OfferSource interface {
	Provider() model.Provider
	ListOffers(ctx context.Context) ([]model.OfferRecord, error)
}

// OfferSink persists ingested offers into a catalog backend
type OfferSink interface {
	StoreOffers(ctx context.Context, offers []model.OfferRecord) error
}
