// Package constants holds values shared by configuration and wiring.
package constants

const (
	// EnvDevelop is the env.env value for local development.
	EnvDevelop = "develop"

	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"

	AuthProviderFirebase = "firebase"
	AuthProviderLocal    = "local"

	DeadLetterDriverSQLite   = "sqlite"
	DeadLetterDriverPostgres = "postgres"

	// HeaderGuestToken carries a freshly provisioned guest token.
	HeaderGuestToken = "X-Guest-Token"
	// HeaderIdempotencyKey deduplicates order placement retries.
	HeaderIdempotencyKey = "Idempotency-Key"
)
