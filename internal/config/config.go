package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	HTTPAddress string

	// Dialogue session storage. RedisAddr empty selects the in-memory store.
	RedisAddr  string
	SessionTTL time.Duration

	// Persistence of completed conversion/generation records. Empty DSN
	// disables persistence.
	PostgresDSN string

	// Generation providers. Empty keys disable a provider; with neither key
	// the generate endpoint serves templates and fallback blueprints only.
	OpenAIAPIKey    string
	AnthropicAPIKey string
	OpenAIModel     string
	AnthropicModel  string
	DefaultProvider string
}

// Load reads configuration from an optional yaml file and environment
// variables.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	envMappings := map[string]string{
		"HTTPAddress":     "HTTP_ADDRESS",
		"RedisAddr":       "REDIS_ADDR",
		"SessionTTL":      "SESSION_TTL",
		"PostgresDSN":     "POSTGRES_DSN",
		"OpenAIAPIKey":    "OPENAI_API_KEY",
		"AnthropicAPIKey": "ANTHROPIC_API_KEY",
		"OpenAIModel":     "OPENAI_MODEL",
		"AnthropicModel":  "ANTHROPIC_MODEL",
		"DefaultProvider": "DEFAULT_PROVIDER",
	}

	for configKey, envVar := range envMappings {
		if err := v.BindEnv(configKey, envVar); err != nil {
			log.Warn().Err(err).Msgf("Failed to bind environment variable %s for %s", envVar, configKey)
		}
	}

	v.SetConfigName("autoflow_config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.autoflow")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		log.Debug().Msg("Config file not found, using environment variables and defaults")
	} else {
		log.Info().Msgf("Using config file: %s", v.ConfigFileUsed())
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HTTPAddress", ":8080")
	v.SetDefault("SessionTTL", 30*time.Minute)
	v.SetDefault("OpenAIModel", "gpt-4")
	v.SetDefault("AnthropicModel", "claude-3-5-sonnet-20241022")
	v.SetDefault("DefaultProvider", "openai")
}
