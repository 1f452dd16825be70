package recommender

import (
	"context"
	"sync"

	"github.com/elC0mpa/instance-advisor/model"
	"github.com/elC0mpa/instance-advisor/service/ahp"
	"github.com/elC0mpa/instance-advisor/service/matcher"
	"github.com/elC0mpa/instance-advisor/service/normalizer"
	"github.com/elC0mpa/instance-advisor/service/ranker"
	"github.com/elC0mpa/instance-advisor/service/topsis"
	"github.com/elC0mpa/instance-advisor/service/wsm"
	"github.com/sirupsen/logrus"
)

func NewService(matcherService matcher.MatcherService, logger logrus.FieldLogger) *service {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &service{
		matcherService:    matcherService,
		normalizerService: normalizer.NewService(),
		wsmService:        wsm.NewService(),
		ahpService:        ahp.NewService(nil),
		topsisService:     topsis.NewService(nil),
		rankerService:     ranker.NewService(),
		logger:            logger,
	}
}

// RecommendWSM ranks matching offers by a weighted sum. Nil weights select
// model.DefaultWSMWeights.
func (s *service) RecommendWSM(ctx context.Context, req model.Request, weights model.Weights) ([]model.ScoredOffer, error) {
	if weights == nil {
		weights = model.DefaultWSMWeights()
	}
	if err := weights.Validate(); err != nil {
		return nil, err
	}

	offers, err := s.normalizedOffers(ctx, req)
	if err != nil {
		return nil, err
	}

	return s.wsm(offers, weights)
}

// RecommendAHP ranks matching offers with weights derived from the comparison
// matrix. A nil matrix selects model.DefaultComparisonMatrix.
func (s *service) RecommendAHP(ctx context.Context, req model.Request, comparisonMatrix [][]float64) ([]model.ScoredOffer, error) {
	weighting, err := s.ahpWeighting(comparisonMatrix)
	if err != nil {
		return nil, err
	}

	offers, err := s.normalizedOffers(ctx, req)
	if err != nil {
		return nil, err
	}

	return s.ahp(offers, weighting)
}

// RecommendTOPSIS ranks matching offers by closeness to the ideal offer
func (s *service) RecommendTOPSIS(ctx context.Context, req model.Request) ([]model.ScoredOffer, error) {
	offers, err := s.normalizedOffers(ctx, req)
	if err != nil {
		return nil, err
	}

	return s.topsis(offers), nil
}

// RecommendAll matches and normalizes once, then runs the three models
// concurrently over the same read-only collection. A model failure is stored
// in its own result and does not affect the others. The returned error is
// only set when matching itself fails.
func (s *service) RecommendAll(ctx context.Context, req model.Request, opts Options) (model.Recommendations, error) {
	recs := model.Recommendations{
		Request: req,
		WSM:     model.AlgorithmResult{Algorithm: model.AlgorithmWSM},
		AHP:     model.AlgorithmResult{Algorithm: model.AlgorithmAHP},
		TOPSIS:  model.AlgorithmResult{Algorithm: model.AlgorithmTOPSIS},
	}

	offers, err := s.normalizedOffers(ctx, req)
	if err != nil {
		return recs, err
	}

	weights := opts.Weights
	if weights == nil {
		weights = model.DefaultWSMWeights()
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		recs.WSM.Offers, recs.WSM.Err = s.wsm(offers, weights)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		weighting, err := s.ahpWeighting(opts.ComparisonMatrix)
		if err != nil {
			recs.AHP.Err = err
			return
		}
		recs.AHP.Weighting = weighting
		recs.AHP.Offers, recs.AHP.Err = s.ahp(offers, weighting)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		recs.TOPSIS.Offers = s.topsis(offers)
	}()

	wg.Wait()

	for _, result := range recs.Results() {
		entry := s.logger.WithFields(logrus.Fields{
			"algorithm": result.Algorithm,
			"offers":    len(result.Offers),
		})
		if result.Err != nil {
			entry.WithError(result.Err).Warn("recommendation failed")
			continue
		}
		entry.Debug("recommendation ranked")
	}

	return recs, nil
}

func (s *service) normalizedOffers(ctx context.Context, req model.Request) ([]model.NormalizedOffer, error) {
	offers, err := s.matcherService.Match(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.normalizerService.Normalize(offers), nil
}

func (s *service) ahpWeighting(comparisonMatrix [][]float64) (*model.AHPWeighting, error) {
	if comparisonMatrix == nil {
		comparisonMatrix = model.DefaultComparisonMatrix()
	}

	weighting, err := s.ahpService.Weights(comparisonMatrix)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"weights":           weighting.Weights,
		"lambda_max":        weighting.LambdaMax,
		"consistency_ratio": weighting.ConsistencyRatio,
	}).Debug("derived AHP weights")

	return weighting, nil
}

func (s *service) wsm(offers []model.NormalizedOffer, weights model.Weights) ([]model.ScoredOffer, error) {
	scored, err := s.wsmService.Score(offers, weights)
	if err != nil {
		return nil, err
	}
	return s.rankerService.Rank(scored), nil
}

func (s *service) ahp(offers []model.NormalizedOffer, weighting *model.AHPWeighting) ([]model.ScoredOffer, error) {
	scored, err := s.ahpService.Score(offers, weighting.Weights)
	if err != nil {
		return nil, err
	}
	return s.rankerService.Rank(scored), nil
}

func (s *service) topsis(offers []model.NormalizedOffer) []model.ScoredOffer {
	return s.rankerService.Rank(s.topsisService.Score(offers))
}
