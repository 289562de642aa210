// Package constants holds shared domain-level constants.
package constants

// Runtime environment names.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub provider names accepted by the pubsub config.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Role names carried in JWT claims.
const (
	RoleCitizen = "citizen"
	RoleDriver  = "driver"
	RoleAdmin   = "admin"
)
