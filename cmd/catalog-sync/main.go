package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/elC0mpa/instance-advisor/service"
	awsconfig "github.com/elC0mpa/instance-advisor/service/aws/config"
	awsec2 "github.com/elC0mpa/instance-advisor/service/aws/ec2"
	azurecompute "github.com/elC0mpa/instance-advisor/service/azure/compute"
	azureconfig "github.com/elC0mpa/instance-advisor/service/azure/config"
	bqcatalog "github.com/elC0mpa/instance-advisor/service/catalog/bigquery"
	memorycatalog "github.com/elC0mpa/instance-advisor/service/catalog/memory"
	gcpcompute "github.com/elC0mpa/instance-advisor/service/gcp/compute"
	gcpconfig "github.com/elC0mpa/instance-advisor/service/gcp/config"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "catalog-sync",
		Usage: "Pull instance offers from cloud provider APIs into an offer catalog",
		Commands: []*cli.Command{
			pullCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error: ", err)
		os.Exit(1)
	}
}

var pullCmd = &cli.Command{
	Name:    "pull",
	Usage:   "Pull the offers of one provider and store them in the catalog",
	Aliases: []string{"p"},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "provider",
			Required: true,
			Usage:    "specify the provider to pull (aws, azure, gcp)",
		},
		&cli.StringFlag{
			Name:    "region",
			Aliases: []string{"location"},
			Usage:   "specify the provider region or Azure location",
		},
		&cli.StringFlag{
			Name:  "profile",
			Usage: "specify the AWS shared config profile",
		},
		&cli.StringFlag{
			Name:    "subscription",
			EnvVars: []string{"AZURE_SUBSCRIPTION_ID"},
			Usage:   "specify the Azure subscription ID",
		},
		&cli.StringFlag{
			Name:    "project",
			EnvVars: []string{"GCP_PROJECT_ID"},
			Usage:   "specify the GCP project ID, also used by the bigquery sink",
		},
		&cli.StringFlag{
			Name:  "sink",
			Value: "file",
			Usage: "specify the catalog backend (file, bigquery)",
		},
		&cli.StringFlag{
			Name:  "out",
			Value: "catalog.yaml",
			Usage: "specify the output catalog.yaml for the file sink",
		},
		&cli.StringFlag{
			Name:  "dataset",
			Value: "instance_advisor",
			Usage: "specify the BigQuery dataset",
		},
		&cli.StringFlag{
			Name:  "table",
			Value: "offers",
			Usage: "specify the BigQuery table",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Value: "info",
			Usage: "specify the log level (debug, info, warn, error)",
		},
	},
	Action: func(ctx *cli.Context) error {
		var (
			provider = strings.ToLower(ctx.String("provider"))
			region   = ctx.String("region")
			sinkName = strings.ToLower(ctx.String("sink"))
		)

		logger := logrus.New()
		logger.SetOutput(os.Stderr)
		level, err := logrus.ParseLevel(ctx.String("log-level"))
		if err != nil {
			return fmt.Errorf("invalid log-level: %w", err)
		}
		logger.SetLevel(level)

		if region == "" {
			return errors.New("region is required")
		}

		source, err := newSource(ctx.Context, ctx, provider, region)
		if err != nil {
			return err
		}

		sink, closeSink, err := newSink(ctx.Context, ctx, sinkName)
		if err != nil {
			return err
		}
		defer closeSink()

		return doPull(ctx.Context, source, sink, logger)
	},
}

func newSource(ctx context.Context, c *cli.Context, provider, region string) (service.OfferSource, error) {
	switch provider {
	case "aws":
		cfg, err := awsconfig.NewService().GetAWSCfg(ctx, region, c.String("profile"))
		if err != nil {
			return nil, err
		}
		return awsec2.NewService(cfg), nil

	case "azure":
		cfgService, err := azureconfig.NewService(c.String("subscription"), region)
		if err != nil {
			return nil, err
		}
		return azurecompute.NewService(cfgService.GetSubscriptionID(), cfgService.GetLocation(), cfgService.GetCredential())

	case "gcp":
		cfgService := gcpconfig.NewService(c.String("project"))
		creds, err := cfgService.GetCredentials(ctx)
		if err != nil {
			return nil, err
		}
		return gcpcompute.NewService(ctx, cfgService.GetProjectID(), region, creds)
	}

	return nil, fmt.Errorf("unsupported provider %q: expected aws, azure or gcp", provider)
}

func newSink(ctx context.Context, c *cli.Context, sinkName string) (service.OfferSink, func(), error) {
	switch sinkName {
	case "file":
		return &memorycatalog.FileSink{Path: c.String("out")}, func() {}, nil

	case "bigquery":
		if c.String("project") == "" {
			return nil, nil, errors.New("project is required for the bigquery sink")
		}
		catalog, err := bqcatalog.NewService(ctx, c.String("project"), c.String("dataset"), c.String("table"))
		if err != nil {
			return nil, nil, err
		}
		return catalog, func() { _ = catalog.Close() }, nil
	}

	return nil, nil, fmt.Errorf("unsupported sink %q: expected file or bigquery", sinkName)
}

func doPull(ctx context.Context, source service.OfferSource, sink service.OfferSink, logger logrus.FieldLogger) error {
	log := logger.WithField("provider", source.Provider())

	log.Info("listing offers")
	offers, err := source.ListOffers(ctx)
	if err != nil {
		return fmt.Errorf("failed to list %s offers: %w", source.Provider(), err)
	}
	if len(offers) == 0 {
		log.Warn("provider returned no offers, catalog left unchanged")
		return nil
	}

	if err := sink.StoreOffers(ctx, offers); err != nil {
		return fmt.Errorf("failed to store %s offers: %w", source.Provider(), err)
	}

	log.WithField("count", len(offers)).Info("offers stored")
	return nil
}
