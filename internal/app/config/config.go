package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// CLOSURES_LOG_LEVEL=debug.
const EnvPrefix = "CLOSURES"

// Config holds all configuration for the application
type Config struct {
	// Environment (development, production, test)
	Environment string `mapstructure:"environment" validate:"oneof=development production test"`

	// Logging configuration
	LogLevel string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	LogFile  string `mapstructure:"log_file"`

	// Metrics configuration
	MetricsEnabled bool `mapstructure:"metrics_enabled"`

	// Identifier generator
	IDCount int `mapstructure:"id_count" validate:"min=1,max=1000"`

	// Friend list
	Friends      []string `mapstructure:"friends" validate:"dive,required"`
	RemoveFriend string   `mapstructure:"remove_friend"`

	// Course roster
	CourseTopic      string   `mapstructure:"course_topic" validate:"required"`
	CourseInstructor string   `mapstructure:"course_instructor" validate:"required"`
	Students         []string `mapstructure:"students" validate:"dive,required"`

	// Sum of multiples
	Values []int `mapstructure:"values"`
	Factor int   `mapstructure:"factor"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")

	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")

	v.SetDefault("metrics_enabled", true)

	v.SetDefault("id_count", 3)

	v.SetDefault("friends", []string{"Ana", "Bo", "Cy"})
	v.SetDefault("remove_friend", "Bo")

	v.SetDefault("course_topic", "Algebra")
	v.SetDefault("course_instructor", "Dr. Lee")
	v.SetDefault("students", []string{"Sam"})

	v.SetDefault("values", []int{1, 2, 3, 4, 5, 6})
	v.SetDefault("factor", 3)
}

// LoadConfig reads config.yaml from path, then applies environment overrides.
// A missing file is not an error; defaults and the environment still apply.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// CLOSURES_LOG_LEVEL -> log_level
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks field constraints declared in the struct tags
func (c *Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
