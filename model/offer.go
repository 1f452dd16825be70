package model

// Provider identifies the cloud an offer comes from
type Provider string

const (
	ProviderGCP     Provider = "GCP"
	ProviderAWS     Provider = "AWS"
	ProviderAzure   Provider = "Azure"
	ProviderOracle  Provider = "Oracle"
	ProviderAlibaba Provider = "Alibaba"
	ProviderIBM     Provider = "IBM"
)

// AllProviders lists every provider in matching order
var AllProviders = []Provider{
	ProviderGCP,
	ProviderAWS,
	ProviderAzure,
	ProviderOracle,
	ProviderAlibaba,
	ProviderIBM,
}

// RegionAll disables region filtering
const RegionAll = "all"

// UnknownInstanceType replaces a missing instance type name
const UnknownInstanceType = "Unknown"

// OfferRecord is a raw catalog row. Nil fields were absent at the source.
type OfferRecord struct {
	Provider        Provider
	InstanceType    *string
	Region          string
	VCPUs           *int
	MemoryGB        *float64
	PriceUSDPerHour *float64
	Performance     PerformanceTier
	Security        SecurityTier
}

// Offer is a catalog row with defaults applied
type Offer struct {
	Provider        Provider
	InstanceType    string
	Region          string
	VCPUs           int
	MemoryGB        float64
	PriceUSDPerHour float64
	Performance     PerformanceTier
	Security        SecurityTier
}

// WithDefaults fills absent fields so downstream stages never see nil values
func (r OfferRecord) WithDefaults() Offer {
	offer := Offer{
		Provider:     r.Provider,
		InstanceType: UnknownInstanceType,
		Region:       r.Region,
		Performance:  r.Performance,
		Security:     r.Security,
	}
	if r.InstanceType != nil {
		offer.InstanceType = *r.InstanceType
	}
	if r.VCPUs != nil {
		offer.VCPUs = *r.VCPUs
	}
	if r.MemoryGB != nil {
		offer.MemoryGB = *r.MemoryGB
	}
	if r.PriceUSDPerHour != nil {
		offer.PriceUSDPerHour = *r.PriceUSDPerHour
	}
	return offer
}

// NormalizedOffer carries the per-request derived criteria of an offer
type NormalizedOffer struct {
	Offer
	NormVCPU        float64
	NormMemory      float64
	NormPrice       float64
	NormPerformance float64
	NormSecurity    float64
}

// Value returns the normalized value of a criterion, 0 for unknown criteria
func (o NormalizedOffer) Value(c Criterion) float64 {
	switch c {
	case CriterionVCPU:
		return o.NormVCPU
	case CriterionMemory:
		return o.NormMemory
	case CriterionPrice:
		return o.NormPrice
	case CriterionPerformance:
		return o.NormPerformance
	case CriterionSecurity:
		return o.NormSecurity
	default:
		return 0
	}
}

// ScoredOffer is a normalized offer with the score of a single algorithm
type ScoredOffer struct {
	NormalizedOffer
	Score float64
}
