package config

const EnvPrefix = "PANTRY"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const (
	EnvAppEnv   = "APP_ENV"
	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvDBDSN      = "DB_DSN"
	EnvDBDriver   = "DB_DRIVER"
	EnvDBHost     = "DB_HOST"
	EnvDBPort     = "DB_PORT"
	EnvDBUser     = "DB_USER"
	EnvDBPassword = "DB_PASSWORD"
	EnvDBName     = "DB_NAME"

	EnvRedisURL = "REDIS_URL"
)

var dbEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
