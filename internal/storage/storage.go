package storage

import (
	"net/url"
	"os"
	"strings"

	"wayfarer/internal/keyring"
	"wayfarer/internal/logger"
)

// ConnectionEnvVar overrides the keyring as the source of the PostgreSQL
// connection string.
const ConnectionEnvVar = "WAYFARER_DB_CONNECTION"

// IsPostgresTarget reports whether the config value is a PostgreSQL
// connection string rather than a SQLite file path.
func IsPostgresTarget(config string) bool {
	return strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://")
}

// HasEmbeddedCredentials reports whether a connection string carries a
// password inline. Those are rejected; credentials belong in the keyring,
// the environment, or .pgpass.
func HasEmbeddedCredentials(connStr string) bool {
	u, err := url.Parse(connStr)
	if err != nil || u.User == nil {
		return false
	}
	_, hasPassword := u.User.Password()
	return hasPassword
}

// ResolveConnectionString picks the effective PostgreSQL connection string:
// the environment variable wins, then the OS keyring, then the credential-free
// string from the command line.
func ResolveConnectionString(config string) string {
	if env := os.Getenv(ConnectionEnvVar); env != "" {
		return env
	}
	if stored, err := keyring.GetConnectionString(); err == nil && stored != "" {
		logger.Debug("Using connection string from OS keyring")
		return stored
	}
	return config
}
