package response

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/elC0mpa/instance-advisor/model"
)

func scoredOffer(name string, score float64) model.ScoredOffer {
	return model.ScoredOffer{
		NormalizedOffer: model.NormalizedOffer{Offer: model.Offer{
			Provider:        model.ProviderAWS,
			InstanceType:    name,
			Region:          "us-east",
			VCPUs:           4,
			MemoryGB:        16,
			PriceUSDPerHour: 0.2,
			Performance:     model.PerformanceHigh,
		}},
		Score: score,
	}
}

func TestConvertScoredOffers(t *testing.T) {
	got := ConvertScoredOffers([]model.ScoredOffer{scoredOffer("a", 0.9), scoredOffer("b", 0.4)})

	if len(got) != 2 || got[0].Rank != 1 || got[1].Rank != 2 {
		t.Fatalf("ConvertScoredOffers() = %+v", got)
	}
	if got[0].Provider != "AWS" || got[0].Performance != "High performance" || got[0].Security != "" {
		t.Errorf("unexpected conversion: %+v", got[0])
	}
}

func TestConvertEmptyRankingEncodesAsArray(t *testing.T) {
	data, err := json.Marshal(ConvertAlgorithmResult(model.AlgorithmResult{Algorithm: model.AlgorithmWSM}))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), `"offers":[]`) {
		t.Errorf("empty ranking encoded as %s", data)
	}
}

func TestConvertAlgorithmResult(t *testing.T) {
	rec := ConvertAlgorithmResult(model.AlgorithmResult{
		Algorithm: model.AlgorithmAHP,
		Offers:    []model.ScoredOffer{scoredOffer("a", 1.4)},
		Weighting: &model.AHPWeighting{Weights: []float64{0.4, 0.2, 0.4}, LambdaMax: 3},
	})

	if rec.Algorithm != "ahp" || rec.Weights == nil {
		t.Fatalf("ConvertAlgorithmResult() = %+v", rec)
	}
	if rec.Weights.Weights["performance"] != 0.4 || rec.Weights.Weights["memory"] != 0.2 || rec.Weights.Weights["price"] != 0.4 {
		t.Errorf("weights = %v", rec.Weights.Weights)
	}

	failed := ConvertAlgorithmResult(model.AlgorithmResult{
		Algorithm: model.AlgorithmAHP,
		Err:       errors.New("malformed comparison matrix: matrix is empty"),
	})
	if failed.Error == "" || len(failed.Offers) != 0 {
		t.Errorf("failed result = %+v", failed)
	}
}

func TestConvertRecommendations(t *testing.T) {
	req := model.Request{CPU: 4, Memory: 16, Region: model.RegionAll}

	empty := ConvertRecommendations(model.Recommendations{Request: req})
	if empty.Message != NoDataMessage || len(empty.Recommendations) != 3 {
		t.Errorf("empty recommendations = %+v", empty)
	}

	full := ConvertRecommendations(model.Recommendations{
		Request: req,
		WSM:     model.AlgorithmResult{Algorithm: model.AlgorithmWSM, Offers: []model.ScoredOffer{scoredOffer("a", 5)}},
	})
	if full.Message != "" || full.Request.CPU != 4 || full.Recommendations[0].Algorithm != "wsm" {
		t.Errorf("recommendations = %+v", full)
	}
}
