package config

const (
	EnvPrefix = "PLUMBBID"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv = "PLUMBBID_APP_ENV"
	EnvPort   = "PLUMBBID_APP_PORT"

	EnvDBDSN  = "PLUMBBID_DB_DSN"
	EnvDBHost = "PLUMBBID_DB_HOST"
	EnvDBUser = "PLUMBBID_DB_USER"
	EnvDBName = "PLUMBBID_DB_NAME"

	EnvRedisURL = "PLUMBBID_REDIS_URL"
)

var partDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
