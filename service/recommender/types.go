package recommender

import (
	"context"

	"github.com/elC0mpa/instance-advisor/model"
	"github.com/elC0mpa/instance-advisor/service/ahp"
	"github.com/elC0mpa/instance-advisor/service/matcher"
	"github.com/elC0mpa/instance-advisor/service/normalizer"
	"github.com/elC0mpa/instance-advisor/service/ranker"
	"github.com/elC0mpa/instance-advisor/service/topsis"
	"github.com/elC0mpa/instance-advisor/service/wsm"
	"github.com/sirupsen/logrus"
)

type service struct {
	matcherService    matcher.MatcherService
	normalizerService normalizer.NormalizerService
	wsmService        wsm.WSMService
	ahpService        ahp.AHPService
	topsisService     topsis.TOPSISService
	rankerService     ranker.RankerService
	logger            logrus.FieldLogger
}

// Options carries the per-model configuration of RecommendAll. Zero values
// select the defaults.
type Options struct {
	Weights          model.Weights
	ComparisonMatrix [][]float64
}

type RecommenderService interface {
	RecommendWSM(ctx context.Context, req model.Request, weights model.Weights) ([]model.ScoredOffer, error)
	RecommendAHP(ctx context.Context, req model.Request, comparisonMatrix [][]float64) ([]model.ScoredOffer, error)
	RecommendTOPSIS(ctx context.Context, req model.Request) ([]model.ScoredOffer, error)
	RecommendAll(ctx context.Context, req model.Request, opts Options) (model.Recommendations, error)
}
