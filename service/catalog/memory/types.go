package memorycatalog

import (
	"context"

	"github.com/elC0mpa/instance-advisor/model"
)

// service is immutable after construction and safe for concurrent reads
type service struct {
	offers map[model.Provider][]model.OfferRecord
}

type MemoryCatalogService interface {
	QueryByExactCapacity(ctx context.Context, provider model.Provider, cpu int, memory float64, region string) ([]model.OfferRecord, error)
	Offers() []model.OfferRecord
}

// catalogFile is the YAML document layout
type catalogFile struct {
	Offers []offerEntry `yaml:"offers"`
}

type offerEntry struct {
	Provider        string   `yaml:"provider"`
	InstanceType    *string  `yaml:"instance_type,omitempty"`
	Region          string   `yaml:"region"`
	VCPUs           *int     `yaml:"vcpus,omitempty"`
	MemoryGB        *float64 `yaml:"memory_gb,omitempty"`
	PriceUSDPerHour *float64 `yaml:"price_usd_per_hour,omitempty"`
	Performance     string   `yaml:"performance,omitempty"`
	Security        string   `yaml:"security,omitempty"`
}
