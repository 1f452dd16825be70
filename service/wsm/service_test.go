package wsm

import (
	"errors"
	"math"
	"testing"

	"github.com/elC0mpa/instance-advisor/model"
)

func normalized(name string, price, memory, perf float64) model.NormalizedOffer {
	return model.NormalizedOffer{
		Offer:           model.Offer{InstanceType: name},
		NormPrice:       price,
		NormMemory:      memory,
		NormPerformance: perf,
	}
}

func TestScore(t *testing.T) {
	offers := []model.NormalizedOffer{
		normalized("x", 2, 1, 1),
		normalized("y", 5, 1, 3),
		normalized("z", 1, 1, 4),
	}

	tests := []struct {
		name    string
		weights model.Weights
		want    []float64
	}{
		{
			name:    "price only",
			weights: model.Weights{model.CriterionPrice: 1},
			want:    []float64{2, 5, 1},
		},
		{
			name:    "mixed criteria",
			weights: model.Weights{model.CriterionPrice: 0.5, model.CriterionPerformance: 0.5},
			want:    []float64{1.5, 4, 2.5},
		},
		{
			name:    "unweighted criteria ignored",
			weights: model.Weights{model.CriterionSecurity: 1},
			want:    []float64{0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewService().Score(offers, tt.weights)
			if err != nil {
				t.Fatalf("Score() error = %v", err)
			}
			for i, w := range tt.want {
				if math.Abs(got[i].Score-w) > 1e-9 {
					t.Errorf("%s: score = %v, want %v", got[i].InstanceType, got[i].Score, w)
				}
				if got[i].InstanceType != offers[i].InstanceType {
					t.Errorf("score %d is for %s, want input order", i, got[i].InstanceType)
				}
			}
		})
	}
}

func TestScoreRejectsNegativeWeights(t *testing.T) {
	_, err := NewService().Score(nil, model.Weights{model.CriterionPrice: -0.5})
	if !errors.Is(err, model.ErrValidation) {
		t.Errorf("Score() error = %v, want ErrValidation", err)
	}
}

func TestScoreIsMonotonic(t *testing.T) {
	weights := model.Weights{model.CriterionPrice: 0.3, model.CriterionMemory: 0.7}
	base := normalized("base", 1, 0.5, 0)
	better := normalized("better", 1, 0.6, 0)

	got, err := NewService().Score([]model.NormalizedOffer{base, better}, weights)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if got[1].Score < got[0].Score {
		t.Errorf("raising a positively weighted criterion lowered the score: %v < %v", got[1].Score, got[0].Score)
	}
}
