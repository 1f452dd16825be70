package main

import (
	"os"
	"strings"
)

const (
	CatalogBackendFile     = "file"
	CatalogBackendBigQuery = "bigquery"
)

// Config holds environment-based configuration for the catalog backend
type Config struct {
	CatalogBackend string
	CatalogFile    string

	// BigQuery catalog configuration
	BigQueryProject string
	BigQueryDataset string
	BigQueryTable   string

	LogLevel string
}

// LoadConfig reads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		CatalogBackend:  strings.ToLower(getEnvOrDefault("CATALOG_BACKEND", CatalogBackendFile)),
		CatalogFile:     getEnvOrDefault("CATALOG_FILE", "catalog.yaml"),
		BigQueryProject: getEnvOrDefault("BIGQUERY_PROJECT", os.Getenv("GCP_PROJECT_ID")),
		BigQueryDataset: getEnvOrDefault("BIGQUERY_DATASET", "instance_advisor"),
		BigQueryTable:   getEnvOrDefault("BIGQUERY_TABLE", "offers"),
		LogLevel:        getEnvOrDefault("LOG_LEVEL", "info"),
	}
}

// UsesBigQuery returns true if offers are served from BigQuery
func (c *Config) UsesBigQuery() bool {
	return c.CatalogBackend == CatalogBackendBigQuery
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
