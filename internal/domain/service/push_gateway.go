package service

import (
	"context"

	"rollcall/internal/domain/entity"
)

// PushAttempt is one request to the push provider over one route.
type PushAttempt struct {
	Dialect    entity.Dialect
	Credential string
	ProjectID  string
	Route      entity.Route
	Address    string
	Message    *entity.OutboundMessage
}

// PushGateway performs single network attempts and classifies the response.
type PushGateway interface {
	// Attempt sends once over attempt.Route. A returned error means the request
	// could not be built or sent; classified provider failures come back in the result.
	Attempt(ctx context.Context, attempt *PushAttempt) (*entity.AttemptResult, error)
}

// CredentialProvider yields the push credential for a batch. An empty string selects simulated mode.
type CredentialProvider interface {
	Credential(ctx context.Context) (credential string, projectID string, err error)
}
