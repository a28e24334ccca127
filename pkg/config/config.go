package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for the campaign query engine.
// Configuration can come from a YAML file (config.yaml) or environment
// variables; environment variables override YAML values. Secrets (database
// password, AI key) must only come from environment variables.
type Config struct {
	// Server configuration
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"127.0.0.1"`
	Port     string `yaml:"port" env:"PORT" env-default:"8080"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	Version  string `yaml:"-"` // Set at load time, not from config

	// Database configuration (PostgreSQL)
	Database DatabaseConfig `yaml:"database"`

	// AI model endpoint configuration
	AI AIConfig `yaml:"ai"`

	// Pre-execution guard configuration
	Guard GuardConfig `yaml:"guard"`

	// Loader configuration (one-shot spreadsheet ingest)
	Loader LoaderConfig `yaml:"loader"`
}

// DatabaseConfig holds PostgreSQL database configuration.
type DatabaseConfig struct {
	Host           string `yaml:"host" env:"PGHOST" env-default:"localhost"`
	Port           int    `yaml:"port" env:"PGPORT" env-default:"5432"`
	User           string `yaml:"user" env:"PGUSER" env-default:"postgres"`
	Password       string `yaml:"-" env:"PGPASSWORD"` // Secret - not in YAML
	Database       string `yaml:"database" env:"PGDATABASE" env-default:"postgres"`
	SSLMode        string `yaml:"ssl_mode" env:"PGSSLMODE" env-default:"disable"`
	MaxConnections int32  `yaml:"max_connections" env:"PGMAX_CONNECTIONS" env-default:"10"`

	// QueryTimeoutSeconds bounds a single statement execution. 0 disables it.
	QueryTimeoutSeconds int `yaml:"query_timeout_seconds" env:"PGQUERY_TIMEOUT_SECONDS" env-default:"30"`
}

// AIConfig holds the model provider configuration.
type AIConfig struct {
	Provider    string  `yaml:"provider" env:"AI_PROVIDER" env-default:"openai"`
	BaseURL     string  `yaml:"base_url" env:"AI_BASE_URL" env-default:"https://api.openai.com/v1"`
	Model       string  `yaml:"model" env:"AI_MODEL" env-default:"gpt-4o-mini"`
	APIKey      string  `yaml:"-" env:"AI_API_KEY"` // Secret - not in YAML
	Temperature float64 `yaml:"temperature" env:"AI_TEMPERATURE" env-default:"0.1"`

	// TimeoutSeconds bounds a single model call. 0 disables the deadline.
	TimeoutSeconds int `yaml:"timeout_seconds" env:"AI_TIMEOUT_SECONDS" env-default:"60"`
}

// GuardConfig holds the pre-execution guard toggles. Both default on.
type GuardConfig struct {
	ReadOnly       bool `yaml:"read_only" env:"GUARD_READ_ONLY" env-default:"true"`
	InjectionCheck bool `yaml:"injection_check" env:"GUARD_INJECTION_CHECK" env-default:"true"`
}

// LoaderConfig holds settings for the bulk data loader.
type LoaderConfig struct {
	SpreadsheetPath string `yaml:"spreadsheet_path" env:"LOADER_SPREADSHEET_PATH" env-default:"data/Sample_Campaign_Data.xlsx"`
	MigrationsPath  string `yaml:"migrations_path" env:"LOADER_MIGRATIONS_PATH" env-default:"migrations"`
}

// Load reads configuration from config.yaml with environment variable
// overrides. When the file is absent, configuration comes from environment
// variables and defaults alone.
func Load(version string) (*Config, error) {
	cfg := &Config{Version: version}

	if _, err := os.Stat("config.yaml"); err == nil {
		if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
			return nil, fmt.Errorf("failed to read config.yaml: %w", err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// QueryTimeout returns the configured statement deadline as a duration.
func (c *DatabaseConfig) QueryTimeout() time.Duration {
	return time.Duration(c.QueryTimeoutSeconds) * time.Second
}

// Timeout returns the configured model-call deadline as a duration.
func (c *AIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
