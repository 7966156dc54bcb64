package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every process-wide setting. It is built once at startup and
// passed to the constructors that need it.
type Config struct {
	// Application
	AppHost      string
	AppPort      string
	LogLevel     string
	LogFile      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// PostgreSQL
	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int
	DatabaseURL    string

	// Redis, disabled when RedisHost is empty
	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	NoteCacheTTL      time.Duration

	// Kafka, disabled when KafkaBrokers is empty
	KafkaBrokers []string
	KafkaTopic   string

	// JWT
	JWTSecretKey string
	JWTExp       time.Duration
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDB)
}

// RedisAddr returns the Redis address.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// Load reads environment variables, optionally seeded from an env file at path.
// A missing file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load env file %s: %w", path, err)
	}

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	var err error
	atoi := func(key, defaultValue string) int {
		if err != nil {
			return 0
		}
		var v int
		if v, err = strconv.Atoi(getEnv(key, defaultValue)); err != nil {
			err = fmt.Errorf("parse %s: %w", key, err)
		}
		return v
	}
	seconds := func(key, defaultValue string) time.Duration {
		return time.Duration(atoi(key, defaultValue)) * time.Second
	}

	cfg := &Config{
		AppHost:      getEnv("APP_HOST", "localhost"),
		AppPort:      getEnv("APP_PORT", "8080"),
		LogLevel:     getEnv("APP_LOG_LEVEL", "info"),
		LogFile:      getEnv("APP_LOG_FILE", ""),
		ReadTimeout:  seconds("HTTP_READ_TIMEOUT", "10"),
		WriteTimeout: seconds("HTTP_WRITE_TIMEOUT", "10"),
		IdleTimeout:  seconds("HTTP_IDLE_TIMEOUT", "60"),

		PGHost:         getEnv("POSTGRES_HOST", "localhost"),
		PGPort:         atoi("POSTGRES_PORT", "5432"),
		PGUser:         getEnv("POSTGRES_USER", "user"),
		PGPassword:     getEnv("POSTGRES_PASSWORD", "password"),
		PGDB:           getEnv("POSTGRES_DB", "notes"),
		PGMaxOpenConns: atoi("POSTGRES_MAX_OPEN_CONNS", "16"),
		PGMaxIdleConns: atoi("POSTGRES_MAX_IDLE_CONNS", "8"),
		DatabaseURL:    getEnv("DB_URL", ""),

		RedisHost:         getEnv("REDIS_HOST", ""),
		RedisPort:         atoi("REDIS_PORT", "6379"),
		RedisDB:           atoi("REDIS_DB", "0"),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisPoolSize:     atoi("REDIS_POOL_SIZE", "10"),
		RedisMinIdleConns: atoi("REDIS_MIN_IDLE_CONNS", "2"),
		NoteCacheTTL:      seconds("NOTE_CACHE_TTL_SECOND", "60"),

		KafkaTopic: getEnv("KAFKA_TOPIC", "note-events"),

		JWTSecretKey: getEnv("SECRET_KEY", getEnv("JWT_SECRET_KEY", "secret")),
		JWTExp:       seconds("JWT_EXP_SECOND", "900"),
	}
	if err != nil {
		return nil, err
	}

	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	return cfg, nil
}
