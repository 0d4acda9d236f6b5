package notification

import (
	"context"
	"os"
	"strings"

	"rollcall/config"
	"rollcall/internal/domain/service"
	"rollcall/internal/errors"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// MessagingScope is the OAuth scope required by the v1 send API.
const MessagingScope = "https://www.googleapis.com/auth/firebase.messaging"

type staticCredentialProvider struct {
	credential string
	projectID  string
}

// Credential returns the configured string. Empty means simulated delivery.
func (p *staticCredentialProvider) Credential(_ context.Context) (string, string, error) {
	return p.credential, p.projectID, nil
}

type serviceAccountCredentialProvider struct {
	tokenSource oauth2.TokenSource
	projectID   string
}

// Credential mints (or reuses) an OAuth access token for the service account.
func (p *serviceAccountCredentialProvider) Credential(_ context.Context) (string, string, error) {
	token, err := p.tokenSource.Token()
	if err != nil {
		return "", "", errors.Wrap(err, "mint service account token")
	}

	return token.AccessToken, p.projectID, nil
}

// NewCredentialProvider selects the credential source named in the dispatch configuration.
func NewCredentialProvider(ctx context.Context, cfg *config.Config) (service.CredentialProvider, error) {
	dispatch := cfg.Dispatch

	switch dispatch.CredentialSource {
	case "", config.CredentialSourceStatic:
		return &staticCredentialProvider{
			credential: strings.TrimSpace(dispatch.Credential),
			projectID:  dispatch.ProjectID,
		}, nil

	case config.CredentialSourceServiceAccount:
		credentialsPath := ""
		fallbackProject := ""
		if cfg.Firebase != nil {
			credentialsPath = cfg.Firebase.CredentialsPath
			fallbackProject = cfg.Firebase.ProjectID
		}

		creds, err := loadGoogleCredentials(ctx, credentialsPath)
		if err != nil {
			return nil, err
		}

		projectID := firstNonEmpty(dispatch.ProjectID, creds.ProjectID, fallbackProject)
		if projectID == "" {
			return nil, errors.New("service account credential source needs a project id")
		}

		return &serviceAccountCredentialProvider{
			tokenSource: creds.TokenSource,
			projectID:   projectID,
		}, nil

	default:
		return nil, errors.Errorf("unknown credential source %q", dispatch.CredentialSource)
	}
}

func loadGoogleCredentials(ctx context.Context, credentialsPath string) (*google.Credentials, error) {
	if credentialsPath == "" {
		creds, err := google.FindDefaultCredentials(ctx, MessagingScope)
		if err != nil {
			return nil, errors.Wrap(err, "find default google credentials")
		}

		return creds, nil
	}

	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, errors.Wrapf(err, "read credentials file %s", credentialsPath)
	}

	creds, err := google.CredentialsFromJSON(ctx, data, MessagingScope)
	if err != nil {
		return nil, errors.Wrap(err, "parse service account credentials")
	}

	return creds, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}

	return ""
}
