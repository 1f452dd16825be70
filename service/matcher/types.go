package matcher

import (
	"context"

	"github.com/elC0mpa/instance-advisor/model"
	svc "github.com/elC0mpa/instance-advisor/service"
	"github.com/sirupsen/logrus"
)

type service struct {
	catalog   svc.CatalogService
	providers []model.Provider
	logger    logrus.FieldLogger
}

type MatcherService interface {
	Match(ctx context.Context, req model.Request) ([]model.Offer, error)
}
