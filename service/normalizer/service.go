package normalizer

import "github.com/elC0mpa/instance-advisor/model"

func NewService() *service {
	return &service{}
}

// Normalize derives the criteria of every offer relative to this collection.
// The input is not modified and the output is freshly allocated.
//
// normVCPU and normMemory divide by the collection maximum and are 0 when the
// column has no positive value. normPrice is 1/price, 0 for rows whose price
// is absent or zero. Tiers map to their ordinals.
func (s *service) Normalize(offers []model.Offer) []model.NormalizedOffer {
	normalized := make([]model.NormalizedOffer, len(offers))
	if len(offers) == 0 {
		return normalized
	}

	var maxVCPU int
	var maxMemory float64
	for _, offer := range offers {
		if offer.VCPUs > maxVCPU {
			maxVCPU = offer.VCPUs
		}
		if offer.MemoryGB > maxMemory {
			maxMemory = offer.MemoryGB
		}
	}

	for i, offer := range offers {
		n := model.NormalizedOffer{
			Offer:           offer,
			NormPerformance: float64(offer.Performance.Ordinal()),
			NormSecurity:    float64(offer.Security.Ordinal()),
		}
		if maxVCPU > 0 {
			n.NormVCPU = float64(offer.VCPUs) / float64(maxVCPU)
		}
		if maxMemory > 0 {
			n.NormMemory = offer.MemoryGB / maxMemory
		}
		if offer.PriceUSDPerHour > 0 {
			n.NormPrice = 1 / offer.PriceUSDPerHour
		}
		normalized[i] = n
	}

	return normalized
}
