// Package constants holds configuration values shared across layers.
package constants

// Deployment environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Document store drivers
const (
	StoreDriverMemory    = "memory"
	StoreDriverFirestore = "firestore"
)

// Identity providers
const (
	AuthProviderLocal    = "local"
	AuthProviderFirebase = "firebase"
)

// Document store collections
const (
	CollectionOrders   = "orders"
	CollectionMenu     = "menu"
	CollectionProfiles = "users"
)
