package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port            string `yaml:"port" env:"SERVER_PORT"`
		Mode            string `yaml:"mode" env:"SERVER_MODE"`
		ReadTimeout     string `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
		WriteTimeout    string `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
		ShutdownTimeout string `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
	} `yaml:"server"`

	App struct {
		Name        string `yaml:"name" env:"APP_NAME"`
		Version     string `yaml:"version" env:"APP_VERSION"`
		Environment string `yaml:"environment" env:"APP_ENV"`
	} `yaml:"app"`

	Database struct {
		Host                string `yaml:"host" env:"DB_HOST"`
		Port                string `yaml:"port" env:"DB_PORT"`
		User                string `yaml:"user" env:"DB_USER"`
		Password            string `yaml:"password" env:"DB_PASSWORD"`
		DBName              string `yaml:"dbname" env:"DB_NAME"`
		SSLMode             string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns        int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns        int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime     string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
		MigrationsDir       string `yaml:"migrations_dir" env:"DB_MIGRATIONS_DIR"`
		MigrationRetryDelay string `yaml:"migration_retry_delay" env:"DB_MIGRATION_RETRY_DELAY"`
		Seed                bool   `yaml:"seed" env:"DB_SEED"`
	} `yaml:"database"`

	Kubernetes struct {
		APIServer          string `yaml:"api_server" env:"KUBERNETES_API_SERVER"`
		TokenPath          string `yaml:"token_path" env:"KUBERNETES_TOKEN_PATH"`
		NamespacePath      string `yaml:"namespace_path" env:"KUBERNETES_NAMESPACE_PATH"`
		CAPath             string `yaml:"ca_path" env:"KUBERNETES_CA_PATH"`
		InsecureSkipVerify bool   `yaml:"insecure_skip_verify" env:"KUBERNETES_INSECURE_SKIP_VERIFY"`
		Timeout            string `yaml:"timeout" env:"KUBERNETES_TIMEOUT"`
	} `yaml:"kubernetes"`

	Diagnostics struct {
		DatabaseTimeout string `yaml:"database_timeout" env:"DIAGNOSTICS_DATABASE_TIMEOUT"`
	} `yaml:"diagnostics"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS"`
	} `yaml:"cors"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables.
// A missing file is not an error; defaults and environment still apply.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := applyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.ReadTimeout = "10s"
	config.Server.WriteTimeout = "30s"
	config.Server.ShutdownTimeout = "10s"

	config.App.Name = "studentrecords"
	config.App.Version = "1.0.0"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "studentrecords"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 2
	config.Database.MaxOpenConns = 10
	config.Database.ConnMaxLifetime = "1h"
	config.Database.MigrationsDir = "migrations"
	config.Database.MigrationRetryDelay = "10s"
	config.Database.Seed = true

	config.Kubernetes.APIServer = "https://kubernetes.default.svc"
	config.Kubernetes.TokenPath = "/var/run/secrets/kubernetes.io/serviceaccount/token"
	config.Kubernetes.NamespacePath = "/var/run/secrets/kubernetes.io/serviceaccount/namespace"
	config.Kubernetes.CAPath = "/var/run/secrets/kubernetes.io/serviceaccount/ca.crt"
	config.Kubernetes.Timeout = "5s"

	config.Diagnostics.DatabaseTimeout = "5s"

	config.CORS.AllowedOrigins = []string{"*"}

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if _, err := strconv.Atoi(config.Server.Port); err != nil {
		return fmt.Errorf("invalid server port %q: %w", config.Server.Port, err)
	}

	if config.Database.MaxOpenConns <= 0 {
		return fmt.Errorf("database max_open_conns must be positive")
	}

	durations := map[string]string{
		"server.read_timeout":            config.Server.ReadTimeout,
		"server.write_timeout":           config.Server.WriteTimeout,
		"server.shutdown_timeout":        config.Server.ShutdownTimeout,
		"database.conn_max_lifetime":     config.Database.ConnMaxLifetime,
		"database.migration_retry_delay": config.Database.MigrationRetryDelay,
		"kubernetes.timeout":             config.Kubernetes.Timeout,
		"diagnostics.database_timeout":   config.Diagnostics.DatabaseTimeout,
	}
	for key, value := range durations {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid duration for %s: %w", key, err)
		}
	}

	if _, err := url.ParseRequestURI(config.Kubernetes.APIServer); err != nil {
		return fmt.Errorf("invalid kubernetes api_server: %w", err)
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     c.Database.Host + ":" + c.Database.Port,
		Path:     "/" + c.Database.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(sslMode),
	}
	return u.String()
}

// IsProduction reports whether gin should run in release mode
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Mode, "production")
}

// GetEnv returns the environment variable when it is set and non-empty, otherwise defaultValue.
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// GetEnvAsBool gets an environment variable as a boolean or returns a default value
func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	switch strings.ToLower(valueStr) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}

	return defaultValue
}
