package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Durable session storage (Redis)
	RedisAddr string
	RedisDB   int

	// Interval for the background session reconciliation tick.
	SessionCheckInterval time.Duration

	// AdminEmail is the canonical administrative address; the login
	// shortcut identifier normalizes to it, and an identity carrying it is
	// granted every permission.
	AdminEmail    string
	AdminShortcut string

	// Break-glass fallback: when the auth path fails for the administrative
	// shortcut, allow a local last-resort credential. Off by default; this
	// is a security-sensitive special case and must be enabled explicitly.
	BreakGlassEnabled  bool
	BreakGlassPassword string

	// Rate limit applied to the auth routes, in ulule/limiter notation
	// (e.g. "10-M" is ten requests per minute per IP).
	AuthRateLimit string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "finance-tracker-app")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("SESSION_CHECK_INTERVAL", "5m")
	viper.SetDefault("ADMIN_EMAIL", "admin@fintrack.local")
	viper.SetDefault("ADMIN_SHORTCUT", "admin")
	viper.SetDefault("BREAK_GLASS_ENABLED", false)
	viper.SetDefault("BREAK_GLASS_PASSWORD", "")
	viper.SetDefault("AUTH_RATE_LIMIT", "10-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiry, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiry = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiry)
	}
	cfg.JWTExpiryDuration = jwtExpiry
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.RedisAddr = viper.GetString("REDIS_ADDR")
	cfg.RedisDB = viper.GetInt("REDIS_DB")

	checkIntervalStr := viper.GetString("SESSION_CHECK_INTERVAL")
	checkInterval, err := time.ParseDuration(checkIntervalStr)
	if err != nil {
		checkInterval = 5 * time.Minute
		log.Printf("Warning: Invalid value for SESSION_CHECK_INTERVAL ('%s'). Defaulting to %s.\n", checkIntervalStr, checkInterval)
	}
	cfg.SessionCheckInterval = checkInterval

	cfg.AdminEmail = viper.GetString("ADMIN_EMAIL")
	cfg.AdminShortcut = viper.GetString("ADMIN_SHORTCUT")

	cfg.BreakGlassEnabled = viper.GetBool("BREAK_GLASS_ENABLED")
	cfg.BreakGlassPassword = viper.GetString("BREAK_GLASS_PASSWORD")
	if cfg.BreakGlassEnabled && cfg.BreakGlassPassword == "" {
		log.Println("Warning: BREAK_GLASS_ENABLED is set but BREAK_GLASS_PASSWORD is empty; the fallback will never match.")
	}
	if cfg.BreakGlassEnabled {
		log.Println("Warning: break-glass admin login fallback is ENABLED. Do not leave this on in production.")
	}

	cfg.AuthRateLimit = viper.GetString("AUTH_RATE_LIMIT")

	return cfg, nil
}
