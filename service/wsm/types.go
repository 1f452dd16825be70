package wsm

import "github.com/elC0mpa/instance-advisor/model"

type service struct{}

type WSMService interface {
	Score(offers []model.NormalizedOffer, weights model.Weights) ([]model.ScoredOffer, error)
}
