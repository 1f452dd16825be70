package topsis

import (
	"github.com/elC0mpa/instance-advisor/model"
	"gonum.org/v1/gonum/floats"
)

// NewService ranks on the given weighted criteria, all treated as benefits.
// A nil slice means model.DefaultTOPSISCriteria.
func NewService(criteria []model.WeightedCriterion) *service {
	if criteria == nil {
		criteria = model.DefaultTOPSISCriteria()
	}
	return &service{criteria: criteria}
}

func (s *service) Criteria() []model.WeightedCriterion {
	return s.criteria
}

// Score assigns each offer its closeness coefficient D-/(D+ + D-) against the
// ideal and anti-ideal rows of the weighted, column-wise L2 normalized
// decision matrix. Columns that are entirely zero stay zero, and a row with
// D+ + D- == 0 scores 0. Scores keep the input order.
func (s *service) Score(offers []model.NormalizedOffer) []model.ScoredOffer {
	scored := make([]model.ScoredOffer, len(offers))
	if len(offers) == 0 {
		return scored
	}

	// columns[j] is the decision matrix column of criterion j
	columns := make([][]float64, len(s.criteria))
	ideal := make([]float64, len(s.criteria))
	antiIdeal := make([]float64, len(s.criteria))
	for j, wc := range s.criteria {
		column := make([]float64, len(offers))
		for i, offer := range offers {
			column[i] = offer.Value(wc.Criterion)
		}
		if norm := floats.Norm(column, 2); norm > 0 {
			floats.Scale(wc.Weight/norm, column)
		} else {
			floats.Scale(0, column)
		}
		columns[j] = column
		ideal[j] = floats.Max(column)
		antiIdeal[j] = floats.Min(column)
	}

	row := make([]float64, len(s.criteria))
	for i, offer := range offers {
		for j := range columns {
			row[j] = columns[j][i]
		}
		dPlus := floats.Distance(row, ideal, 2)
		dMinus := floats.Distance(row, antiIdeal, 2)

		var score float64
		if total := dPlus + dMinus; total > 0 {
			score = dMinus / total
		}
		scored[i] = model.ScoredOffer{
			NormalizedOffer: offer,
			Score:           score,
		}
	}

	return scored
}
