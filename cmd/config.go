package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"parceltracker/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"

	CacheMemory = "memory"
	CacheRedis  = "redis"

	LogFormatJSON    = "json"
	LogFormatConsole = "console"
)

var defaults = map[string]any{
	"HTTP_PORT":                "8080",
	"DB_HOST":                  "localhost",
	"DB_PORT":                  "5432",
	"DB_USER":                  "",
	"DB_PASSWORD":              "",
	"DB_NAME":                  "",
	"DB_SSLMODE":               "disable",
	"STORAGE_DRIVER":           StoragePostgres,
	"CACHE_DRIVER":             CacheMemory,
	"CACHE_TTL":                "0s",
	"REDIS_ADDR":               "localhost:6379",
	"REDIS_PASSWORD":           "",
	"REDIS_DB":                 0,
	"LOG_LEVEL":                "info",
	"LOG_FORMAT":               LogFormatJSON,
	"DEBUG_ERRORS":             false,
	"CACHE_SWEEP_SCHEDULE":     "@every 1m",
	"PARCEL_REMINDER_SCHEDULE": "0 0 * * * *",
	"PARCEL_REMINDER_AGE":      "48h",
}

type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	StorageDriver string
	CacheDriver   string
	CacheTTL      time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	LogLevel    string
	LogFormat   string
	DebugErrors bool

	CacheSweepSchedule     string
	ParcelReminderSchedule string
	ParcelReminderAge      time.Duration
}

// LoadConfig reads envFile when it exists and then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	cfg := Config{
		HTTPPort: v.GetString("HTTP_PORT"),

		DBHost:     v.GetString("DB_HOST"),
		DBPort:     v.GetString("DB_PORT"),
		DBUser:     v.GetString("DB_USER"),
		DBPassword: v.GetString("DB_PASSWORD"),
		DBName:     v.GetString("DB_NAME"),
		DBSslMode:  v.GetString("DB_SSLMODE"),

		StorageDriver: v.GetString("STORAGE_DRIVER"),
		CacheDriver:   v.GetString("CACHE_DRIVER"),
		CacheTTL:      v.GetDuration("CACHE_TTL"),

		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		RedisDB:       v.GetInt("REDIS_DB"),

		LogLevel:    v.GetString("LOG_LEVEL"),
		LogFormat:   v.GetString("LOG_FORMAT"),
		DebugErrors: v.GetBool("DEBUG_ERRORS"),

		CacheSweepSchedule:     v.GetString("CACHE_SWEEP_SCHEDULE"),
		ParcelReminderSchedule: v.GetString("PARCEL_REMINDER_SCHEDULE"),
		ParcelReminderAge:      v.GetDuration("PARCEL_REMINDER_AGE"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.StorageDriver {
	case StoragePostgres, StorageMemory:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q, want %s or %s", c.StorageDriver, StoragePostgres, StorageMemory)
	}

	switch c.CacheDriver {
	case CacheMemory, CacheRedis:
	default:
		return fmt.Errorf("unknown CACHE_DRIVER %q, want %s or %s", c.CacheDriver, CacheMemory, CacheRedis)
	}

	switch c.LogFormat {
	case LogFormatJSON, LogFormatConsole:
	default:
		return fmt.Errorf("unknown LOG_FORMAT %q, want %s or %s", c.LogFormat, LogFormatJSON, LogFormatConsole)
	}

	if c.CacheTTL < 0 {
		return fmt.Errorf("CACHE_TTL must not be negative, got %s", c.CacheTTL)
	}
	if c.ParcelReminderAge <= 0 {
		return fmt.Errorf("PARCEL_REMINDER_AGE must be positive, got %s", c.ParcelReminderAge)
	}
	return nil
}

func (c Config) Postgres() postgres.Config {
	return postgres.Config{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		Name:     c.DBName,
		SSLMode:  c.DBSslMode,
	}
}

func (c Config) Addr() string {
	return "0.0.0.0:" + c.HTTPPort
}
