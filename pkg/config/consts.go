package config

// EnvPrefix namespaces every service-owned environment variable.
const EnvPrefix = "TCKT"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Environment variable names, kept as constants so tests and deployment
// manifests reference the same spelling.
const (
	EnvAppEnv   = "TCKT_APP_ENV"
	EnvPort     = "TCKT_APP_PORT"
	EnvLogLevel = "TCKT_LOG_LEVEL"

	EnvDBDSN      = "TCKT_DB_DSN"
	EnvDBHost     = "TCKT_DB_HOST"
	EnvDBPort     = "TCKT_DB_PORT"
	EnvDBUser     = "TCKT_DB_USER"
	EnvDBPassword = "TCKT_DB_PASSWORD"
	EnvDBName     = "TCKT_DB_NAME"

	EnvRequireTableNumber = "TCKT_REQUIRE_TABLE_NUMBER"
	EnvUseSQLite          = "TCKT_USE_SQLITE"
	EnvAutoMigrate        = "TCKT_AUTO_MIGRATE"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
