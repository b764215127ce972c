package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	JWT struct {
		Secret                string `yaml:"secret" env:"JWT_SECRET"`
		AccessTokenExpiration string `yaml:"access_token_expiration" env:"JWT_ACCESS_TOKEN_EXPIRATION"`
		Issuer                string `yaml:"issuer" env:"JWT_ISSUER"`
		AllowIDHeader         bool   `yaml:"allow_id_header" env:"JWT_ALLOW_ID_HEADER"`
	} `yaml:"jwt"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	Registry struct {
		IDStrategy    string `yaml:"id_strategy" env:"REGISTRY_ID_STRATEGY"`
		AcademicIDMax int64  `yaml:"academic_id_max" env:"REGISTRY_ACADEMIC_ID_MAX"`
		CourseIDMax   int64  `yaml:"course_id_max" env:"REGISTRY_COURSE_ID_MAX"`
	} `yaml:"registry"`

	Seed struct {
		Path string `yaml:"path" env:"SEED_PATH"`
	} `yaml:"seed"`

	// EnvOverrides lists the environment variables that replaced file values
	EnvOverrides []string `yaml:"-"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load default config with sane defaults
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
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
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	// JWT defaults
	config.JWT.AccessTokenExpiration = "24h"
	config.JWT.Issuer = "academics.local"
	config.JWT.AllowIDHeader = false

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"

	// Registry defaults
	config.Registry.IDStrategy = "sequential"
	config.Registry.AcademicIDMax = 1000000
	config.Registry.CourseIDMax = 10000
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	applied, err := processStructFields(config)
	if err != nil {
		return err
	}
	config.EnvOverrides = applied
	return nil
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if _, err := time.ParseDuration(config.JWT.AccessTokenExpiration); err != nil {
		return fmt.Errorf("invalid JWT access token expiration format: %w", err)
	}

	switch config.Registry.IDStrategy {
	case "sequential", "random":
	default:
		return fmt.Errorf("unknown registry id strategy %q", config.Registry.IDStrategy)
	}

	if config.Registry.AcademicIDMax <= 0 || config.Registry.CourseIDMax <= 0 {
		return fmt.Errorf("registry id ranges must be positive")
	}

	return nil
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

