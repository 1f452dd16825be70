package bqcatalog

import (
	"context"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/elC0mpa/instance-advisor/model"
)

type service struct {
	projectID string
	dataset   string
	table     string
	bqClient  *bigquery.Client
}

type BigQueryCatalogService interface {
	QueryByExactCapacity(ctx context.Context, provider model.Provider, cpu int, memory float64, region string) ([]model.OfferRecord, error)
	StoreOffers(ctx context.Context, offers []model.OfferRecord) error
	Close() error
}

// offerRow maps the offers table. Nullable columns stay nullable so absent
// source values reach the matcher as absent.
type offerRow struct {
	Provider        string               `bigquery:"provider"`
	InstanceType    bigquery.NullString  `bigquery:"instance_type"`
	Region          string               `bigquery:"region"`
	VCPUs           bigquery.NullInt64   `bigquery:"vcpus"`
	MemoryGB        bigquery.NullFloat64 `bigquery:"memory_gb"`
	PriceUSDPerHour bigquery.NullFloat64 `bigquery:"price_usd_per_hour"`
	Performance     bigquery.NullString  `bigquery:"performance"`
	Security        bigquery.NullString  `bigquery:"security"`
	IngestedAt      time.Time            `bigquery:"ingested_at"`
}
