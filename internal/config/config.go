package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// StoreConfig holds the connection settings for one credentialed store.
// The primary and mapping stores live in different projects with their own
// credentials, so each gets an independent section and pool. Store sections
// are overridden from the environment via a per-store prefix
// (PRIMARY_STORE_*, MAPPING_STORE_*).
type StoreConfig struct {
	Host            string `yaml:"host"`
	Port            string `yaml:"port"`
	User            string `yaml:"user"`
	Password        string `yaml:"password"`
	DBName          string `yaml:"dbname"`
	SSLMode         string `yaml:"sslmode"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	ConnMaxLifetime string `yaml:"conn_max_lifetime"`
}

// ConnectionString returns the postgres connection string for the store
func (s StoreConfig) ConnectionString() string {
	sslMode := s.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		s.User,
		s.Password,
		s.Host,
		s.Port,
		s.DBName,
		sslMode,
	)
}

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	PrimaryStore StoreConfig `yaml:"primary_store"`
	MappingStore StoreConfig `yaml:"mapping_store"`

	Provider struct {
		Secret string `yaml:"secret" env:"PROVIDER_SECRET"`
		Issuer string `yaml:"issuer" env:"PROVIDER_ISSUER"`
	} `yaml:"provider"`

	Session struct {
		CookieName   string `yaml:"cookie_name" env:"SESSION_COOKIE_NAME"`
		CookieMaxAge string `yaml:"cookie_max_age" env:"SESSION_COOKIE_MAX_AGE"`
		StateTTL     string `yaml:"state_ttl" env:"SESSION_STATE_TTL"`
	} `yaml:"session"`

	Redis struct {
		Addr     string `yaml:"addr" env:"REDIS_ADDR"`
		Password string `yaml:"password" env:"REDIS_PASSWORD"`
		DB       int    `yaml:"db" env:"REDIS_DB"`
	} `yaml:"redis"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Config file is optional; env vars can carry the whole configuration
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}
	applyStoreEnv("PRIMARY_STORE", &config.PrimaryStore)
	applyStoreEnv("MAPPING_STORE", &config.MappingStore)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.PrimaryStore = StoreConfig{
		Host:            "localhost",
		Port:            "5432",
		User:            "postgres",
		Password:        "postgres",
		DBName:          "mentorlink",
		SSLMode:         "disable",
		MaxIdleConns:    5,
		MaxOpenConns:    20,
		ConnMaxLifetime: "1h",
	}

	config.MappingStore = StoreConfig{
		Host:            "localhost",
		Port:            "5432",
		User:            "postgres",
		Password:        "postgres",
		DBName:          "mentorlink_mapping",
		SSLMode:         "disable",
		MaxIdleConns:    2,
		MaxOpenConns:    10,
		ConnMaxLifetime: "1h",
	}

	config.Provider.Issuer = "provider.campus.edu"

	config.Session.CookieName = "session"
	config.Session.CookieMaxAge = "720h"
	config.Session.StateTTL = "720h"

	config.Redis.Addr = "localhost:6379"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// applyStoreEnv overrides one store section from prefixed env variables
func applyStoreEnv(prefix string, store *StoreConfig) {
	store.Host = GetEnv(prefix+"_HOST", store.Host)
	store.Port = GetEnv(prefix+"_PORT", store.Port)
	store.User = GetEnv(prefix+"_USER", store.User)
	store.Password = GetEnv(prefix+"_PASSWORD", store.Password)
	store.DBName = GetEnv(prefix+"_NAME", store.DBName)
	store.SSLMode = GetEnv(prefix+"_SSLMODE", store.SSLMode)
	store.MaxIdleConns = GetEnvAsInt(prefix+"_MAX_IDLE_CONNS", store.MaxIdleConns)
	store.MaxOpenConns = GetEnvAsInt(prefix+"_MAX_OPEN_CONNS", store.MaxOpenConns)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.PrimaryStore.Host == "" {
		return fmt.Errorf("primary store host is required")
	}

	if config.MappingStore.Host == "" {
		return fmt.Errorf("mapping store host is required")
	}

	if config.Provider.Secret == "" {
		return fmt.Errorf("provider secret is required")
	}

	if config.Session.CookieName == "" {
		return fmt.Errorf("session cookie name is required")
	}

	if _, err := time.ParseDuration(config.Session.CookieMaxAge); err != nil {
		return fmt.Errorf("invalid session cookie max age format: %w", err)
	}

	if _, err := time.ParseDuration(config.Session.StateTTL); err != nil {
		return fmt.Errorf("invalid session state TTL format: %w", err)
	}

	return nil
}

// CookieMaxAge returns the configured cookie lifetime
func (c *Config) CookieMaxAge() time.Duration {
	d, err := time.ParseDuration(c.Session.CookieMaxAge)
	if err != nil {
		return 720 * time.Hour
	}
	return d
}

// StateTTL returns the configured client state lifetime
func (c *Config) StateTTL() time.Duration {
	d, err := time.ParseDuration(c.Session.StateTTL)
	if err != nil {
		return 720 * time.Hour
	}
	return d
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetEnvAsInt gets an environment variable as an integer or returns a default value
func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
