package config

const (
	// DefaultDatabasePath is the default path for the SQLite database
	DefaultDatabasePath = "./bookcafe.db"

	// DefaultCORSOrigin is the front-end allowed when CORS_ALLOWED_ORIGINS is unset
	DefaultCORSOrigin = "https://65070030-iot-cafe.vercel.app"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)
