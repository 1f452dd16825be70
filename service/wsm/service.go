package wsm

import (
	"github.com/elC0mpa/instance-advisor/model"
)

func NewService() *service {
	return &service{}
}

// Score computes the weighted sum of the normalized criteria named in weights.
// Scores keep the input order; ranking is left to the caller.
func (s *service) Score(offers []model.NormalizedOffer, weights model.Weights) ([]model.ScoredOffer, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}

	scored := make([]model.ScoredOffer, len(offers))
	for i, offer := range offers {
		var score float64
		for _, c := range model.AllCriteria {
			score += weights[c] * offer.Value(c)
		}
		scored[i] = model.ScoredOffer{
			NormalizedOffer: offer,
			Score:           score,
		}
	}

	return scored, nil
}
