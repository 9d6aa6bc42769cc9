package controllers

import (
	"time"

	"github.com/autoflow/autoflow/internal/metrics"
	"github.com/autoflow/autoflow/internal/storage"
	"github.com/autoflow/autoflow/pkg/domain"
	"github.com/autoflow/autoflow/pkg/generation"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// GenerationController serves natural-language automation generation.
type GenerationController struct {
	generator *generation.Service
	store     storage.RecordStore
}

type GenerationControllerDependencies struct {
	Generator *generation.Service
	Store     storage.RecordStore
}

func NewGenerationController(deps GenerationControllerDependencies) *GenerationController {
	return &GenerationController{
		generator: deps.Generator,
		store:     deps.Store,
	}
}

type GenerateAutomationRequest struct {
	TaskDescription string `json:"task_description"`
	Platform        string `json:"platform"`
}

// Generate produces an importable blueprint for a task description.
func (c *GenerationController) Generate(ctx fiber.Ctx) error {
	var req GenerateAutomationRequest

	if err := ctx.Bind().Body(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if req.TaskDescription == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Task description is required")
	}

	platform, err := domain.ParsePlatform(req.Platform)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	automation, err := c.generator.GenerateAutomation(ctx.RequestCtx(), req.TaskDescription, platform)
	if err != nil {
		log.Error().Err(err).Msg("Failed to generate automation")
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate automation")
	}

	source := "model"
	if automation.IsTemplate {
		source = "template"
	}
	metrics.GenerationsTotal.WithLabelValues(string(platform), source).Inc()

	if c.store != nil {
		record := storage.AutomationRecord{
			ID:              uuid.NewString(),
			UserID:          callerID(ctx),
			TaskDescription: req.TaskDescription,
			Platform:        platform,
			BlueprintJSON:   automation.BlueprintJSON,
			IsTemplate:      automation.IsTemplate,
			CreatedAt:       time.Now().UTC(),
		}
		if err := c.store.SaveAutomation(ctx.RequestCtx(), record); err != nil {
			log.Error().Err(err).Msg("Failed to persist automation record")
		}
	}

	return ctx.JSON(automation)
}

// ListAutomations returns the caller's recent generated automations.
func (c *GenerationController) ListAutomations(ctx fiber.Ctx) error {
	if c.store == nil {
		return ctx.JSON([]storage.AutomationRecord{})
	}

	records, err := c.store.ListAutomations(ctx.RequestCtx(), callerID(ctx), 50)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list automation records")
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list automations")
	}

	return ctx.JSON(records)
}
