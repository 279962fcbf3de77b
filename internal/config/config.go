package config // package config loads application configuration from environment variables

import (
    "log" // log is used to report configuration errors and halt execution
    "os"  // os provides access to environment variables
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Strings are used for identifiers, secrets and
// URLs; everything time- or size-shaped lives in the cache and rate-limit
// sub-configs loaded separately.
type Config struct {
    Env       string // application environment (e.g. "dev", "prod")
    Port      string // HTTP port to listen on
    DBUser    string // database username
    DBPass    string // database password (optional)
    DBHost    string // database host address
    DBPort    string // database port number
    DBName    string // database name
    JWTSecret string // secret for verifying app-issued bearer tokens (optional)
    BaseURL   string // canonical site origin used in share links and OG tags
    StaticDir string // directory of marketing/static assets served at /
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.  JWT_SECRET is
// deliberately optional: invite endpoints accept anonymous callers and the
// token only improves rate-limit keying when present.
func Load() Config {
    return Config{
        Env:       must("APP_ENV"),  // environment (dev/test/prod)
        Port:      must("APP_PORT"), // port to bind the HTTP server
        DBUser:    must("DB_USER"),  // database user
        DBPass:    os.Getenv("DB_PASS"),
        DBHost:    must("DB_HOST"),
        DBPort:    must("DB_PORT"),
        DBName:    must("DB_NAME"),
        JWTSecret: os.Getenv("JWT_SECRET"),
        BaseURL:   getenv("BASE_URL", "https://stackpoker.gg"),
        StaticDir: getenv("STATIC_DIR", "web/public"),
    }
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}
