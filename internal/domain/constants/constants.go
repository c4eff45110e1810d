// Package constants holds shared domain-level constant values.
package constants

// Pub/Sub provider selection values.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Deployment environment names.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)
