package gcpconfig

import (
	"context"

	"golang.org/x/oauth2/google"
)

// service resolves Application Default Credentials for a fixed scope set
type service struct {
	projectID string
	scopes    []string
}

type ConfigService interface {
	GetCredentials(ctx context.Context) (*google.Credentials, error)
	GetProjectID() string
	GetScopes() []string
}
