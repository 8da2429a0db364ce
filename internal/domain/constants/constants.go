// Package constants holds string values shared across layers.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvLocal      = "local"
	EnvProduction = "production"
)

// Presence feed providers.
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Persistence drivers.
const (
	DatabaseDriverPostgres = "postgres"
	DatabaseDriverSQLite   = "sqlite"
)

// Host alerter kinds.
const (
	AlerterLog      = "log"
	AlerterFirebase = "firebase"
)

// Presence event kinds published on the feed.
const (
	PresenceKindOnline   = "online"
	PresenceKindOffline  = "offline"
	PresenceKindLocation = "location"
	PresenceKindStatus   = "status"
)
