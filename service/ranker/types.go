package ranker

import "github.com/elC0mpa/instance-advisor/model"

type service struct{}

type RankerService interface {
	Rank(offers []model.ScoredOffer) []model.ScoredOffer
	Top(offers []model.ScoredOffer, n int) []model.ScoredOffer
}
