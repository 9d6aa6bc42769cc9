package server

import (
	"time"

	"github.com/autoflow/autoflow/internal/controllers"
	"github.com/autoflow/autoflow/internal/version"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type HTTPServerDependencies struct {
	ConversionController *controllers.ConversionController
	DialogueController   *controllers.DialogueController
	TemplateController   *controllers.TemplateController
	GenerationController *controllers.GenerationController
}

func NewHTTPServer(deps HTTPServerDependencies) *fiber.App {
	router := fiber.New(fiber.Config{
		AppName: "autoflow-api",
		// Template names contain spaces, so :name arrives percent-encoded.
		UnescapePath: true,
	})

	router.Use(cors.New())
	router.Use(requestid.New())
	router.Use(logger.New())

	router.Get("/health", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":    "healthy",
			"service":   "autoflow-api",
			"version":   version.GetVersion(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	router.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := router.Group("/api")

	api.Post("/conversions", deps.ConversionController.Convert)
	api.Get("/conversions", deps.ConversionController.ListConversions)
	api.Post("/analyses", deps.ConversionController.Analyze)
	api.Post("/fixes", deps.ConversionController.Fix)

	api.Post("/dialogue", deps.DialogueController.Step)

	api.Get("/templates", deps.TemplateController.List)
	api.Get("/templates/:name", deps.TemplateController.Get)

	api.Post("/generations", deps.GenerationController.Generate)
	api.Get("/generations", deps.GenerationController.ListAutomations)

	return router
}
