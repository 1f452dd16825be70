package ahp

import "github.com/elC0mpa/instance-advisor/model"

type service struct {
	criteria []model.Criterion
}

type AHPService interface {
	Weights(matrix [][]float64) (*model.AHPWeighting, error)
	Score(offers []model.NormalizedOffer, weights []float64) ([]model.ScoredOffer, error)
	Criteria() []model.Criterion
}
