package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/elC0mpa/instance-advisor/model"
	memorycatalog "github.com/elC0mpa/instance-advisor/service/catalog/memory"
	"github.com/elC0mpa/instance-advisor/service/flag"
	"github.com/elC0mpa/instance-advisor/service/matcher"
	"github.com/elC0mpa/instance-advisor/service/orchestrator"
	"github.com/elC0mpa/instance-advisor/service/recommender"
	"github.com/elC0mpa/instance-advisor/utils"
	"github.com/sirupsen/logrus"
)

func main() {
	utils.DrawBanner()

	flagService := flag.NewService()
	flags, err := flagService.GetParsedFlags()
	if err != nil {
		os.Exit(2)
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if level, err := logrus.ParseLevel(flags.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	catalog, err := memorycatalog.LoadFile(flags.CatalogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	utils.StartSpinner()

	matcherService := matcher.NewService(catalog, nil, logger)
	recommenderService := recommender.NewService(matcherService, logger)
	orchestratorService := orchestrator.NewService(recommenderService, logger)

	err = orchestratorService.Orchestrate(context.Background(), flags)
	if errors.Is(err, model.ErrValidation) {
		fmt.Fprintf(os.Stderr, "Please put relevant vCPU and Memory values: %v\n", err)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
