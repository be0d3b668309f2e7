package config

import (
	"fmt"
	"net/url"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for the analytics engine.
// Values come from config.yaml with environment variable overrides; secrets
// (PGPASSWORD, LLM_API_KEY) must only come from environment variables.
type Config struct {
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"127.0.0.1"`
	Port     string `yaml:"port" env:"PORT" env-default:"8080"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	Version  string `yaml:"-"` // Set at load time, not from config

	// MigrationsPath is the directory containing SQL migration files.
	MigrationsPath string `yaml:"migrations_path" env:"MIGRATIONS_PATH" env-default:"migrations"`

	Database DatabaseConfig `yaml:"database"`
	LLM      LLMConfig      `yaml:"llm"`
	Reports  ReportsConfig  `yaml:"reports"`
}

// DatabaseConfig holds PostgreSQL configuration for both the analytics data
// and the admin request table.
type DatabaseConfig struct {
	Host           string `yaml:"host" env:"PGHOST" env-default:"localhost"`
	Port           int    `yaml:"port" env:"PGPORT" env-default:"5432"`
	User           string `yaml:"user" env:"PGUSER" env-default:"analytics"`
	Password       string `yaml:"-" env:"PGPASSWORD"` // Secret - not in YAML
	Database       string `yaml:"database" env:"PGDATABASE" env-default:"analytics"`
	SSLMode        string `yaml:"ssl_mode" env:"PGSSLMODE" env-default:"disable"`
	MaxConnections int32  `yaml:"max_connections" env:"PGMAX_CONNECTIONS" env-default:"25"`
}

// URL builds a PostgreSQL connection URL with user-provided fields escaped, so
// special characters in passwords do not break URL parsing.
func (d *DatabaseConfig) URL() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(d.User),
		url.QueryEscape(d.Password),
		d.Host,
		d.Port,
		url.QueryEscape(d.Database),
		d.SSLMode,
	)
}

// LLMConfig holds provider selection and request shaping for the requirement
// interpreter. BaseURL is only consulted for OpenAI-compatible providers.
type LLMConfig struct {
	Provider       string  `yaml:"provider" env:"LLM_PROVIDER" env-default:"openai"`
	Model          string  `yaml:"model" env:"LLM_MODEL" env-default:"gpt-4o-mini"`
	BaseURL        string  `yaml:"base_url" env:"LLM_BASE_URL" env-default:""`
	APIKey         string  `yaml:"-" env:"LLM_API_KEY"` // Secret - not in YAML
	Temperature    float64 `yaml:"temperature" env:"LLM_TEMPERATURE" env-default:"0.1"`
	MaxTokens      int     `yaml:"max_tokens" env:"LLM_MAX_TOKENS" env-default:"500"`
	TimeoutSeconds int     `yaml:"timeout_seconds" env:"LLM_TIMEOUT_SECONDS" env-default:"30"`
}

// ReportsConfig holds row limit policy for report generation.
type ReportsConfig struct {
	DefaultRowLimit int `yaml:"default_row_limit" env:"REPORTS_DEFAULT_ROW_LIMIT" env-default:"100"`
	MaxRowLimit     int `yaml:"max_row_limit" env:"REPORTS_MAX_ROW_LIMIT" env-default:"1000"`
}

// Load reads configuration from config.yaml with environment variable
// overrides. If config.yaml does not exist, configuration comes from
// environment variables and defaults alone.
func Load(version string) (*Config, error) {
	cfg := &Config{Version: version}

	if _, err := os.Stat("config.yaml"); err == nil {
		if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
			return nil, fmt.Errorf("failed to read config.yaml: %w", err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment config: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.LLM.Provider == "" {
		return fmt.Errorf("llm provider must not be empty")
	}
	if c.LLM.Model == "" {
		return fmt.Errorf("llm model must not be empty")
	}
	if c.Reports.MaxRowLimit <= 0 {
		return fmt.Errorf("reports max_row_limit must be positive")
	}
	if c.Reports.DefaultRowLimit <= 0 || c.Reports.DefaultRowLimit > c.Reports.MaxRowLimit {
		return fmt.Errorf("reports default_row_limit must be in (0, %d]", c.Reports.MaxRowLimit)
	}
	return nil
}
