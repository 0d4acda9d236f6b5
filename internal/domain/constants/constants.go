// Package constants holds identifiers shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "development"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Staff roles carried in access tokens
const (
	RoleStaff = "staff"
	RoleAdmin = "admin"
)

// Pub/Sub message attributes
const (
	AttrBatchID   = "batch_id"
	AttrRequestID = "request_id"
)

// Query limits for delivery history
const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 500
)
