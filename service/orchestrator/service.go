package orchestrator

import (
	"context"
	"fmt"

	"github.com/elC0mpa/instance-advisor/model"
	"github.com/elC0mpa/instance-advisor/service/recommender"
	"github.com/elC0mpa/instance-advisor/utils"
	"github.com/sirupsen/logrus"
)

func NewService(recommenderService recommender.RecommenderService, logger logrus.FieldLogger) *service {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &service{
		recommenderService: recommenderService,
		logger:             logger,
	}
}

func (s *service) Orchestrate(ctx context.Context, flags model.Flags) error {
	req, err := model.ParseRequest(flags.CPU, flags.Memory, flags.Region)
	if err != nil {
		utils.StopSpinner()
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"cpu":    req.CPU,
		"memory": req.Memory,
		"region": req.Region,
	}).Info("ranking offers")

	recs, err := s.recommenderService.RecommendAll(ctx, req, recommender.Options{})
	if err != nil {
		utils.StopSpinner()
		return fmt.Errorf("failed to recommend offers: %w", err)
	}

	utils.StopSpinner()

	if recs.Empty() && !hasErrors(recs) {
		utils.DrawNoResults(req)
		return nil
	}

	for _, result := range recs.Results() {
		utils.DrawRecommendationTable(result, flags.Top)
		if flags.Chart && result.Err == nil {
			utils.DrawScoreChart(result, flags.Top)
		}
	}

	return nil
}

func hasErrors(recs model.Recommendations) bool {
	for _, result := range recs.Results() {
		if result.Err != nil {
			return true
		}
	}
	return false
}
