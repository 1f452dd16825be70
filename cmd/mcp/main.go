package main

import (
	"context"
	"fmt"
	"os"

	"github.com/elC0mpa/instance-advisor/cmd/mcp/tools"
	"github.com/elC0mpa/instance-advisor/service"
	bqcatalog "github.com/elC0mpa/instance-advisor/service/catalog/bigquery"
	memorycatalog "github.com/elC0mpa/instance-advisor/service/catalog/memory"
	"github.com/elC0mpa/instance-advisor/service/matcher"
	"github.com/elC0mpa/instance-advisor/service/recommender"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := LoadConfig()

	// stdout carries the protocol
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	catalog, closeCatalog, err := openCatalog(context.Background(), cfg)
	if err != nil {
		logger.WithError(err).Error("failed to open catalog")
		os.Exit(1)
	}
	defer closeCatalog()

	recommenderService := recommender.NewService(matcher.NewService(catalog, nil, logger), logger)

	s := server.NewMCPServer(
		"instance-advisor-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	tools.RegisterRecommendTools(s, recommenderService, logger)

	logger.WithField("backend", cfg.CatalogBackend).Info("serving MCP over stdio")
	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

func openCatalog(ctx context.Context, cfg *Config) (service.CatalogService, func(), error) {
	if cfg.UsesBigQuery() {
		if cfg.BigQueryProject == "" {
			return nil, nil, fmt.Errorf("BIGQUERY_PROJECT or GCP_PROJECT_ID is required for the bigquery backend")
		}
		catalog, err := bqcatalog.NewService(ctx, cfg.BigQueryProject, cfg.BigQueryDataset, cfg.BigQueryTable)
		if err != nil {
			return nil, nil, err
		}
		return catalog, func() { _ = catalog.Close() }, nil
	}

	catalog, err := memorycatalog.LoadFile(cfg.CatalogFile)
	if err != nil {
		return nil, nil, err
	}
	return catalog, func() {}, nil
}
