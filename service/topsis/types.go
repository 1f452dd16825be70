package topsis

import "github.com/elC0mpa/instance-advisor/model"

type service struct {
	criteria []model.WeightedCriterion
}

type TOPSISService interface {
	Score(offers []model.NormalizedOffer) []model.ScoredOffer
	Criteria() []model.WeightedCriterion
}
