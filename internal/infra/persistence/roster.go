// Package persistence selects the roster backend named in the configuration.
package persistence

import (
	"context"

	"rollcall/config"
	"rollcall/internal/domain/repository"
	"rollcall/internal/errors"
	"rollcall/internal/infra/persistence/firestore"
	"rollcall/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// RosterParams holds what either roster backend may need.
type RosterParams struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	DB     *gorm.DB
}

// NewRecipientRepository returns the SQL roster unless the Firestore backend is configured.
func NewRecipientRepository(params RosterParams) (repository.RecipientRepository, error) {
	roster := params.Config.Roster

	switch roster.Backend {
	case "", config.RosterBackendPostgres:
		return postgres.NewRecipientRepository(params.DB), nil

	case config.RosterBackendFirestore:
		client, err := firestore.NewClient(params.Ctx, params.Config)
		if err != nil {
			return nil, err
		}
		params.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})

		return firestore.NewRecipientRepository(client, roster.Collection), nil

	default:
		return nil, errors.Errorf("unknown roster backend %q", roster.Backend)
	}
}
