// Package constants defines values shared across layers.
package constants

// Environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderNoop   = "noop"
)

// Event types carried in the "event_type" message attribute.
const (
	EventTypeContextChanged      = "context.changed"
	EventTypeNotificationCreated = "notification.created"
)

// Roles carried in access token claims.
const (
	RoleUser     = "user"
	RoleBusiness = "business"
	RoleService  = "service"
)
