package response

import (
	"github.com/elC0mpa/instance-advisor/model"
)

// NoDataMessage is reported when no algorithm has a matching offer
const NoDataMessage = "No data available for the given inputs."

// ConvertRequest converts model.Request to response.Request
func ConvertRequest(req model.Request) Request {
	return Request{
		CPU:    req.CPU,
		Memory: req.Memory,
		Region: req.Region,
	}
}

// ConvertScoredOffers converts a ranking, numbering offers from 1. The result
// is never nil so empty rankings encode as [].
func ConvertScoredOffers(offers []model.ScoredOffer) []ScoredOffer {
	result := make([]ScoredOffer, 0, len(offers))
	for i, offer := range offers {
		result = append(result, ScoredOffer{
			Rank:            i + 1,
			Provider:        string(offer.Provider),
			InstanceType:    offer.InstanceType,
			Region:          offer.Region,
			VCPUs:           offer.VCPUs,
			MemoryGB:        offer.MemoryGB,
			PriceUSDPerHour: offer.PriceUSDPerHour,
			Performance:     offer.Performance.String(),
			Security:        offer.Security.String(),
			Score:           offer.Score,
		})
	}
	return result
}

// ConvertAHPWeighting keys the weights by criterion name
func ConvertAHPWeighting(weighting *model.AHPWeighting, criteria []model.Criterion) *AHPWeights {
	if weighting == nil {
		return nil
	}

	weights := make(map[string]float64, len(weighting.Weights))
	for i, w := range weighting.Weights {
		if i < len(criteria) {
			weights[string(criteria[i])] = w
		}
	}

	return &AHPWeights{
		Weights:          weights,
		LambdaMax:        weighting.LambdaMax,
		ConsistencyIndex: weighting.ConsistencyIndex,
		ConsistencyRatio: weighting.ConsistencyRatio,
	}
}

// ConvertAlgorithmResult converts model.AlgorithmResult to response.Recommendation
func ConvertAlgorithmResult(result model.AlgorithmResult) Recommendation {
	rec := Recommendation{
		Algorithm: string(result.Algorithm),
		Offers:    ConvertScoredOffers(result.Offers),
		Weights:   ConvertAHPWeighting(result.Weighting, model.AHPCriteria),
	}
	if result.Err != nil {
		rec.Error = result.Err.Error()
	}
	return rec
}

// ConvertRecommendations converts all three rankings of a request
func ConvertRecommendations(recs model.Recommendations) AllRecommendations {
	all := AllRecommendations{
		Request: ConvertRequest(recs.Request),
	}
	for _, result := range recs.Results() {
		all.Recommendations = append(all.Recommendations, ConvertAlgorithmResult(result))
	}
	if recs.Empty() {
		all.Message = NoDataMessage
	}
	return all
}
