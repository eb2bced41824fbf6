package config

import (
	"fmt"
	"log"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers understood by the application bootstrap.
const (
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	StoreDriver    string
	SQLitePath     string
	MigrationsPath string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	JWTSecret      string

	// Bookkeeping
	DefaultCalendar  string
	Timezone         string
	Location         *time.Location
	CurrencyDecimals int32

	VerificationCodeTTL      time.Duration
	VerificationCodeCapacity int

	SchedulerEnabled bool
	FYEnsureSchedule string

	RateLimit          string
	CORSAllowedOrigins []string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("STORE_DRIVER", StorePostgres)
	v.SetDefault("SQLITE_PATH", "bookkeeping.db")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	v.SetDefault("DEFAULT_CALENDAR", "gregorian")
	v.SetDefault("TIMEZONE", "UTC")
	v.SetDefault("CURRENCY_DECIMALS", 2)
	v.SetDefault("VERIFICATION_CODE_TTL", "5m")
	v.SetDefault("VERIFICATION_CODE_CAPACITY", 10000)
	v.SetDefault("SCHEDULER_ENABLED", true)
	v.SetDefault("FY_ENSURE_SCHEDULE", "@daily")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DatabaseURL:              v.GetString("PGSQL_URL"),
		StoreDriver:              strings.ToLower(v.GetString("STORE_DRIVER")),
		SQLitePath:               v.GetString("SQLITE_PATH"),
		MigrationsPath:           v.GetString("MIGRATIONS_PATH"),
		Port:                     v.GetString("PORT"),
		IsProduction:             v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:            v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:                v.GetString("JWT_SECRET"),
		DefaultCalendar:          strings.ToLower(v.GetString("DEFAULT_CALENDAR")),
		Timezone:                 v.GetString("TIMEZONE"),
		VerificationCodeCapacity: v.GetInt("VERIFICATION_CODE_CAPACITY"),
		SchedulerEnabled:         v.GetBool("SCHEDULER_ENABLED"),
		FYEnsureSchedule:         v.GetString("FY_ENSURE_SCHEDULE"),
		RateLimit:                v.GetString("RATE_LIMIT"),
	}

	switch cfg.StoreDriver {
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			log.Println("Warning: PGSQL_URL environment variable not set.")
		}
	case StoreSQLite:
	default:
		return nil, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.StoreDriver)
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", cfg.Timezone, err)
	}
	cfg.Location = loc

	decimals := v.GetInt("CURRENCY_DECIMALS")
	if decimals < 0 || decimals > 8 {
		return nil, fmt.Errorf("CURRENCY_DECIMALS must be between 0 and 8, got %d", decimals)
	}
	cfg.CurrencyDecimals = int32(decimals)

	ttlStr := v.GetString("VERIFICATION_CODE_TTL")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil || ttl <= 0 {
		ttl = 5 * time.Minute
		log.Printf("Warning: Invalid value for VERIFICATION_CODE_TTL ('%s'). Defaulting to %s.\n", ttlStr, ttl.String())
	}
	cfg.VerificationCodeTTL = ttl

	if cfg.VerificationCodeCapacity <= 0 {
		cfg.VerificationCodeCapacity = 10000
		log.Printf("Warning: VERIFICATION_CODE_CAPACITY must be positive. Defaulting to %d.\n", cfg.VerificationCodeCapacity)
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}
