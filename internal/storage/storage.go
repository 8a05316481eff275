package storage

import (
	"net/url"
	"strings"

	"github.com/ameridyn/pantheon/internal/storage/postgres"
	"github.com/ameridyn/pantheon/internal/storage/sqlite"
)

// NewSQLiteStore creates a Provider backed by a local SQLite file.
func NewSQLiteStore(path string) Provider {
	return sqlite.NewStore(path)
}

// NewPostgresStore creates a Provider backed by a remote PostgreSQL database.
func NewPostgresStore(connStr string) Provider {
	return postgres.NewStore(connStr)
}

// IsPostgresConnString reports whether the config value looks like a
// PostgreSQL connection string rather than a SQLite path.
func IsPostgresConnString(config string) bool {
	return strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://")
}

// HasEmbeddedCredentials reports whether a PostgreSQL connection string
// carries a password inline. Passwords belong in the OS keyring, the
// environment, or .pgpass, never in the config value itself.
func HasEmbeddedCredentials(connStr string) bool {
	if IsPostgresConnString(connStr) {
		u, err := url.Parse(connStr)
		if err != nil {
			return false
		}
		if u.User == nil {
			return false
		}
		_, hasPassword := u.User.Password()
		return hasPassword
	}

	// DSN format: space-separated key=value pairs
	for _, part := range strings.Fields(connStr) {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) == 2 && strings.EqualFold(kv[0], "password") {
			return true
		}
	}
	return false
}
