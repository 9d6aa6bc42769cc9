// Package initialization wires the engine's components from configuration.
package initialization

import (
	"context"
	"fmt"

	"github.com/autoflow/autoflow/internal/config"
	"github.com/autoflow/autoflow/internal/controllers"
	"github.com/autoflow/autoflow/internal/storage"
	"github.com/autoflow/autoflow/pkg/converter"
	"github.com/autoflow/autoflow/pkg/diagnostics"
	"github.com/autoflow/autoflow/pkg/dialogue"
	"github.com/autoflow/autoflow/pkg/generation"
	"github.com/autoflow/autoflow/pkg/generation/anthropic"
	"github.com/autoflow/autoflow/pkg/generation/openai"
	"github.com/autoflow/autoflow/pkg/templates"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Container holds the wired application components.
type Container struct {
	Config *config.Config

	Registry       *converter.Registry
	Converter      *converter.Converter
	Analyzer       *diagnostics.Analyzer
	Library        *templates.Library
	Generator      *generation.Service
	Troubleshooter *dialogue.Troubleshooter
	Store          storage.RecordStore

	memorySessions *dialogue.MemoryStore
	redisClient    *redis.Client
	postgres       *storage.PostgresStore
}

// NewContainer builds all components from configuration. Optional backends
// (postgres, redis, LLM providers) degrade to local or disabled equivalents.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	c.Registry = converter.NewRegistry()
	c.Converter = converter.NewConverter(converter.ConverterDependencies{
		Registry: c.Registry,
	})
	c.Analyzer = diagnostics.NewAnalyzer(diagnostics.AnalyzerDependencies{
		Registry: c.Registry,
	})
	c.Library = templates.NewLibrary()

	c.Generator = generation.NewService(generation.ServiceDependencies{
		Model:   buildLanguageModel(cfg),
		Library: c.Library,
	})

	sessions, err := c.buildSessionStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	c.Troubleshooter = dialogue.NewTroubleshooter(dialogue.TroubleshooterDependencies{
		Analyzer: c.Analyzer,
		Sessions: sessions,
	})

	if cfg.PostgresDSN != "" {
		store, err := storage.NewPostgresStore(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("failed to connect record store: %w", err)
		}
		c.postgres = store
		c.Store = store
		log.Info().Msg("Record persistence enabled")
	} else {
		log.Info().Msg("No postgres DSN configured, record persistence disabled")
	}

	return c, nil
}

// BuildControllers assembles the HTTP controllers over the container.
func (c *Container) BuildControllers() (*controllers.ConversionController, *controllers.DialogueController, *controllers.TemplateController, *controllers.GenerationController) {
	conversion := controllers.NewConversionController(controllers.ConversionControllerDependencies{
		Converter: c.Converter,
		Analyzer:  c.Analyzer,
		Generator: c.Generator,
		Store:     c.Store,
	})
	dialogueController := controllers.NewDialogueController(controllers.DialogueControllerDependencies{
		Troubleshooter: c.Troubleshooter,
	})
	template := controllers.NewTemplateController(controllers.TemplateControllerDependencies{
		Library: c.Library,
	})
	generationController := controllers.NewGenerationController(controllers.GenerationControllerDependencies{
		Generator: c.Generator,
		Store:     c.Store,
	})

	return conversion, dialogueController, template, generationController
}

// Close releases backend resources held by the container.
func (c *Container) Close() {
	if c.memorySessions != nil {
		c.memorySessions.Stop()
	}
	if c.redisClient != nil {
		if err := c.redisClient.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close redis client")
		}
	}
	if c.postgres != nil {
		c.postgres.Close()
	}
}

func (c *Container) buildSessionStore(ctx context.Context, cfg *config.Config) (dialogue.Store, error) {
	if cfg.RedisAddr == "" {
		c.memorySessions = dialogue.NewMemoryStore(cfg.SessionTTL)
		log.Info().Dur("ttl", cfg.SessionTTL).Msg("Using in-memory dialogue session store")
		return c.memorySessions, nil
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect redis session store: %w", err)
	}
	c.redisClient = client

	log.Info().Str("addr", cfg.RedisAddr).Msg("Using redis dialogue session store")
	return dialogue.NewRedisStore(client, cfg.SessionTTL), nil
}

func buildLanguageModel(cfg *config.Config) generation.LanguageModel {
	switch {
	case cfg.DefaultProvider == "anthropic" && cfg.AnthropicAPIKey != "":
		return anthropic.New(cfg.AnthropicAPIKey, cfg.AnthropicModel)
	case cfg.OpenAIAPIKey != "":
		return openai.New(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	case cfg.AnthropicAPIKey != "":
		return anthropic.New(cfg.AnthropicAPIKey, cfg.AnthropicModel)
	default:
		log.Warn().Msg("No LLM provider configured, generation uses templates and fallback blueprints only")
		return nil
	}
}
