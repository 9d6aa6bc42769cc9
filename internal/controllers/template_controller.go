package controllers

import (
	"errors"

	"github.com/autoflow/autoflow/pkg/domain"
	"github.com/autoflow/autoflow/pkg/templates"

	"github.com/gofiber/fiber/v3"
)

// TemplateController serves the canned automation template catalog.
type TemplateController struct {
	library *templates.Library
}

type TemplateControllerDependencies struct {
	Library *templates.Library
}

func NewTemplateController(deps TemplateControllerDependencies) *TemplateController {
	return &TemplateController{
		library: deps.Library,
	}
}

type TemplateSummary struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

type TemplateListResponse struct {
	Templates []TemplateSummary `json:"templates"`
}

type TemplateResponse struct {
	templates.Template
	Platform          domain.Platform `json:"platform"`
	BlueprintJSON     string          `json:"automation_json"`
	SetupInstructions string          `json:"setup_instructions"`
}

// List returns all available templates.
func (c *TemplateController) List(ctx fiber.Ctx) error {
	all := c.library.All()

	summaries := make([]TemplateSummary, 0, len(all))
	for _, t := range all {
		summaries = append(summaries, TemplateSummary{
			ID:          t.ID,
			Name:        t.Name,
			Category:    t.Category,
			Description: t.Description,
			Tags:        t.Tags,
		})
	}

	return ctx.JSON(TemplateListResponse{Templates: summaries})
}

// Get returns one template with its blueprint for the requested platform.
func (c *TemplateController) Get(ctx fiber.Ctx) error {
	name := ctx.Params("name")

	platform, err := domain.ParsePlatform(ctx.Query("platform", string(domain.PlatformMake)))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	t, err := c.library.Get(name)
	if err != nil {
		if errors.Is(err, domain.ErrTemplateNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Template not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load template")
	}

	return ctx.JSON(TemplateResponse{
		Template:          t,
		Platform:          platform,
		BlueprintJSON:     t.BlueprintJSON(platform),
		SetupInstructions: templates.SetupInstructionsFor(t, platform),
	})
}
