package normalizer

import "github.com/elC0mpa/instance-advisor/model"

type service struct{}

type NormalizerService interface {
	Normalize(offers []model.Offer) []model.NormalizedOffer
}
