package config

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type (
	// Config represents an application configuration.
	Config struct {
		// Key issued by the API provider; attached to every request.
		APIKey string `yaml:"api_key" env:"ORDRIN_API_KEY" validate:"required"`
		// Subconfigs.
		Servers Servers `yaml:"servers"`
		Session Session `yaml:"session"`
		HTTP    HTTP    `yaml:"http"`
		Logger  Logger  `yaml:"logger"`
	}
	// Base URLs of the remote API.
	Servers struct {
		// Order submission server.
		Order string `yaml:"order" env:"ORDRIN_ORDER_URL" validate:"required,url"`
		// User accounts server.
		User string `yaml:"user" env:"ORDRIN_USER_URL" validate:"required,url"`
	}
	// Account used for authenticated calls.
	Session struct {
		Email    string `yaml:"email" env:"ORDRIN_EMAIL" validate:"omitempty,email"`
		Password string `yaml:"password" env:"ORDRIN_PASSWORD"`
	}
	// Config for the outgoing HTTP client.
	HTTP struct {
		// Whole request timeout.
		Timeout time.Duration `yaml:"timeout" env:"ORDRIN_HTTP_TIMEOUT" env-default:"30s" validate:"gt=0"`
		// Minimum interval between requests. Zero disables rate limiting.
		RateInterval time.Duration `yaml:"rate_interval" env:"ORDRIN_RATE_INTERVAL" env-default:"0s" validate:"gte=0"`
		// Requests allowed in a burst.
		RateBurst int `yaml:"rate_burst" env:"ORDRIN_RATE_BURST" env-default:"1" validate:"gte=1"`
	}
	// Config for application's logger.
	Logger struct {
		// Path to store log files.
		Path string `yaml:"path" env:"LOG_PATH"`
		// Application logging level.
		Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info" validate:"omitempty,oneof=debug info warn error"`
		// Log files details.
		MaxSizeMB  int `yaml:"max_size_mb" env-default:"100"`
		MaxBackups int `yaml:"max_backups" env-default:"3"`
		MaxAgeDays int `yaml:"max_age_days" env-default:"28"`
	}
)

var validate = validator.New()

// Load returns a configuration read from the YAML file at path
// (if it is not empty) and then overridden by environment variables.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration against its constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid config: %s: failed on %q", verrs[0].Namespace(), verrs[0].Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// MustLoad returns an application configuration which is populated
// from the given configuration file and environment variables.
// The file path comes from the -config flag.
func MustLoad() *Config {
	configPath := flag.String("config", "", "path to the config file")
	flag.Parse()

	cfg, err := Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	return cfg
}
