package gcpconfig

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/bigquery/v2"
	"google.golang.org/api/compute/v1"
)

// DefaultScopes cover the machine-type source and the BigQuery catalog
var DefaultScopes = []string{
	compute.ComputeReadonlyScope,
	bigquery.BigqueryScope,
}

// NewService resolves credentials for projectID. No scopes means
// DefaultScopes.
func NewService(projectID string, scopes ...string) *service {
	if len(scopes) == 0 {
		scopes = DefaultScopes
	}
	return &service{
		projectID: projectID,
		scopes:    scopes,
	}
}

func (s *service) GetCredentials(ctx context.Context) (*google.Credentials, error) {
	creds, err := google.FindDefaultCredentials(ctx, s.scopes...)
	if err != nil {
		return nil, fmt.Errorf("failed to find GCP default credentials: %w", err)
	}
	if s.projectID == "" && creds.ProjectID == "" {
		return nil, fmt.Errorf("GCP project ID is required")
	}
	return creds, nil
}

func (s *service) GetProjectID() string {
	return s.projectID
}

func (s *service) GetScopes() []string {
	return s.scopes
}
