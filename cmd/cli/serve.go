package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/autoflow/autoflow/internal/config"
	"github.com/autoflow/autoflow/internal/initialization"
	"github.com/autoflow/autoflow/internal/server"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the AutoFlow API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	return cmd
}

func runServe() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	container, err := initialization.NewContainer(ctx, cfg)
	if err != nil {
		return err
	}
	defer container.Close()

	conversionController, dialogueController, templateController, generationController := container.BuildControllers()

	app := server.NewHTTPServer(server.HTTPServerDependencies{
		ConversionController: conversionController,
		DialogueController:   dialogueController,
		TemplateController:   templateController,
		GenerationController: generationController,
	})

	go func() {
		<-ctx.Done()
		log.Info().Msg("Shutting down server")
		if err := app.Shutdown(); err != nil {
			log.Error().Err(err).Msg("Server shutdown failed")
		}
	}()

	log.Info().Str("address", cfg.HTTPAddress).Msg("Starting AutoFlow API server")

	return app.Listen(cfg.HTTPAddress)
}
