// Package constants contains configuration values shared across layers.
package constants

// Environment names.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// In-flight guard providers.
const (
	InFlightProviderLocal = "local"
	InFlightProviderRedis = "redis"
)
