package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration for huggable.
// Mapstructure tags are used to map environment variables and config file keys.
type Config struct {
	OpenAIKey string `mapstructure:"OPENAI_API_KEY"`      // API key for OpenAI, overridable with --api-key
	Model     string `mapstructure:"HUGGABLE_MODEL"`      // Chat model used for generation, e.g. "gpt-4o"
	OutputDir string `mapstructure:"HUGGABLE_OUTPUT_DIR"` // Root directory for generated apps
	Port      int    `mapstructure:"HUGGABLE_PORT"`       // Default preview server port
}

// LoadConfig reads configuration from an optional config.yaml in path and
// from environment variables. Environment variables win over the file.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Defaults also register the keys so AutomaticEnv picks them up.
	v.SetDefault("OPENAI_API_KEY", "")
	v.SetDefault("HUGGABLE_MODEL", "gpt-4o")
	v.SetDefault("HUGGABLE_OUTPUT_DIR", "generated_apps")
	v.SetDefault("HUGGABLE_PORT", 8080)

	v.AutomaticEnv()

	err = v.ReadInConfig()
	if err != nil {
		// A missing config.yaml is fine, env vars and defaults cover everything.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Printf("Using configuration file: %s", v.ConfigFileUsed())
	}

	err = v.Unmarshal(&config)
	if err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	return config, nil
}
