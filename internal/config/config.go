package config

import (
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"os"
	"strings"
)

// Notifier modes.
const (
	// ModeLogOnly replaces the messaging backend with one that only logs.
	ModeLogOnly = "log_only"
	// ModeProduction publishes through AWS SNS.
	ModeProduction = "production"
)

// defaultConfigPath is read when CONFIG_PATH is not set. A missing file is not an error.
const defaultConfigPath = "configs/config.yaml"

// Config is the main struct that holds all configuration for the application.
type Config struct {
	Logger    LoggerConfig    `mapstructure:"logger"`
	HTTP      HTTPConfig      `mapstructure:"http"`
	AWS       AWSConfig       `mapstructure:"aws"`
	Notifiers NotifiersConfig `mapstructure:"notifiers"`
}

// LoggerConfig holds logging-specific settings.
type LoggerConfig struct {
	Level string `mapstructure:"level"`
	// Format is "console" for human-readable output or "json".
	Format string `mapstructure:"format" validate:"oneof=console json"`
}

// HTTPConfig holds HTTP server-specific settings.
type HTTPConfig struct {
	Port    string `mapstructure:"port" validate:"required"`
	GinMode string `mapstructure:"gin_mode" validate:"oneof=debug release test"`
}

// AWSConfig holds settings for reaching the SNS backend.
// Credentials come from the default AWS provider chain.
type AWSConfig struct {
	Region string `mapstructure:"region"`
	// Endpoint overrides the SNS endpoint, e.g. for LocalStack.
	Endpoint      string `mapstructure:"endpoint"`
	EmailTopicARN string `mapstructure:"email_topic_arn"`
}

// NotifiersConfig holds the backend selection.
type NotifiersConfig struct {
	// Mode can be "log_only" or "production".
	// In "log_only" mode, no call leaves the process.
	Mode string `mapstructure:"mode" validate:"oneof=log_only production"`
}

// NewConfig parses the YAML file and environment variables to return a configuration struct.
func NewConfig() (*Config, error) {
	v := viper.New()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}
	v.SetConfigFile(path)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("http.port", ":8080")
	v.SetDefault("http.gin_mode", "release")
	v.SetDefault("aws.region", "")
	v.SetDefault("aws.endpoint", "")
	v.SetDefault("notifiers.mode", ModeLogOnly)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// The topic is usually provisioned alongside the function and exported as EMAIL_TOPIC_ARN.
	if err := v.BindEnv("aws.email_topic_arn", "AWS_EMAIL_TOPIC_ARN", "EMAIL_TOPIC_ARN"); err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the loaded configuration for consistency.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Notifiers.Mode == ModeProduction {
		if err := validate.Var(c.AWS.EmailTopicARN, "required"); err != nil {
			return fmt.Errorf("config: aws.email_topic_arn is required in %s mode: %w", ModeProduction, err)
		}
	}
	return nil
}
