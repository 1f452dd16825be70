package orchestrator

import (
	"context"

	"github.com/elC0mpa/instance-advisor/model"
	"github.com/elC0mpa/instance-advisor/service/recommender"
	"github.com/sirupsen/logrus"
)

type service struct {
	recommenderService recommender.RecommenderService
	logger             logrus.FieldLogger
}

type OrchestratorService interface {
	Orchestrate(ctx context.Context, flags model.Flags) error
}
