package controllers

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/autoflow/autoflow/internal/metrics"
	"github.com/autoflow/autoflow/internal/schemas"
	"github.com/autoflow/autoflow/internal/storage"
	"github.com/autoflow/autoflow/pkg/converter"
	"github.com/autoflow/autoflow/pkg/diagnostics"
	"github.com/autoflow/autoflow/pkg/domain"
	"github.com/autoflow/autoflow/pkg/generation"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ConversionController serves the conversion and diagnostic operations.
type ConversionController struct {
	converter *converter.Converter
	analyzer  *diagnostics.Analyzer
	generator *generation.Service
	store     storage.RecordStore
}

type ConversionControllerDependencies struct {
	Converter *converter.Converter
	Analyzer  *diagnostics.Analyzer
	Generator *generation.Service
	Store     storage.RecordStore
}

func NewConversionController(deps ConversionControllerDependencies) *ConversionController {
	return &ConversionController{
		converter: deps.Converter,
		analyzer:  deps.Analyzer,
		generator: deps.Generator,
		store:     deps.Store,
	}
}

type ConvertBlueprintRequest struct {
	SourcePlatform string `json:"source_platform"`
	TargetPlatform string `json:"target_platform"`
	BlueprintJSON  string `json:"blueprint_json"`
	UseAI          bool   `json:"use_ai,omitempty"`
}

// Convert translates a blueprint between the two platforms. Invalid JSON and
// equal source/target are rejected before the engine is invoked.
func (c *ConversionController) Convert(ctx fiber.Ctx) error {
	var req ConvertBlueprintRequest

	if err := ctx.Bind().Body(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	source, err := domain.ParsePlatform(req.SourcePlatform)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	target, err := domain.ParsePlatform(req.TargetPlatform)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if source == target {
		return fiber.NewError(fiber.StatusBadRequest, domain.ErrSamePlatform.Error())
	}

	if !json.Valid([]byte(req.BlueprintJSON)) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON format in blueprint")
	}

	if err := schemas.Validate(source, []byte(req.BlueprintJSON)); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	bp, err := domain.ParseBlueprint(source, []byte(req.BlueprintJSON))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	result := c.converter.Convert(bp, target)

	metrics.ConversionsTotal.WithLabelValues(string(source), string(target), strconv.FormatBool(result.Success)).Inc()
	metrics.FallbackSubstitutionsTotal.Add(float64(len(result.FallbackModules)))

	if req.UseAI && c.generator != nil && result.Success {
		if _, notes, aiErr := c.generator.ConvertBlueprint(ctx.RequestCtx(), req.BlueprintJSON, source, target); aiErr != nil {
			log.Warn().Err(aiErr).Msg("AI conversion notes unavailable")
		} else if notes != "" {
			result.Comments = append(result.Comments, notes)
		}
	}

	if c.store != nil && result.Success {
		record := storage.ConversionRecord{
			ID:              uuid.NewString(),
			UserID:          callerID(ctx),
			SourcePlatform:  source,
			TargetPlatform:  target,
			OriginalJSON:    req.BlueprintJSON,
			ConvertedJSON:   result.ConvertedJSON,
			ConversionNotes: result.Comments,
			CreatedAt:       time.Now().UTC(),
		}
		if err := c.store.SaveConversion(ctx.RequestCtx(), record); err != nil {
			log.Error().Err(err).Msg("Failed to persist conversion record")
		}
	}

	return ctx.JSON(result)
}

type AnalyzeBlueprintRequest struct {
	Platform      string `json:"platform"`
	BlueprintJSON string `json:"blueprint_json"`
}

type AnalyzeBlueprintResponse struct {
	Findings []domain.Finding `json:"findings"`
}

// Analyze flags structurally missing required fields in a blueprint.
func (c *ConversionController) Analyze(ctx fiber.Ctx) error {
	var req AnalyzeBlueprintRequest

	if err := ctx.Bind().Body(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	platform, err := domain.ParsePlatform(req.Platform)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	bp, err := domain.ParseBlueprint(platform, []byte(req.BlueprintJSON))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	findings := c.analyzer.Analyze(bp)
	for _, f := range findings {
		metrics.FindingsTotal.WithLabelValues(string(f.Severity)).Inc()
	}

	return ctx.JSON(AnalyzeBlueprintResponse{Findings: findings})
}

type FixBlueprintRequest struct {
	Platform      string           `json:"platform"`
	BlueprintJSON string           `json:"blueprint_json"`
	Findings      []domain.Finding `json:"findings"`
}

type FixBlueprintResponse struct {
	FixedJSON string `json:"fixed_json"`
}

// Fix applies placeholder values for the given findings and returns the
// patched document.
func (c *ConversionController) Fix(ctx fiber.Ctx) error {
	var req FixBlueprintRequest

	if err := ctx.Bind().Body(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	platform, err := domain.ParsePlatform(req.Platform)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	bp, err := domain.ParseBlueprint(platform, []byte(req.BlueprintJSON))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	fixed := c.analyzer.Fix(bp, req.Findings)

	encoded, err := json.MarshalIndent(fixed, "", "  ")
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to encode fixed blueprint")
	}

	return ctx.JSON(FixBlueprintResponse{FixedJSON: string(encoded)})
}

// ListConversions returns the caller's recent conversion records.
func (c *ConversionController) ListConversions(ctx fiber.Ctx) error {
	if c.store == nil {
		return ctx.JSON([]storage.ConversionRecord{})
	}

	records, err := c.store.ListConversions(ctx.RequestCtx(), callerID(ctx), 50)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list conversion records")
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list conversions")
	}

	return ctx.JSON(records)
}

// callerID identifies the caller for record ownership. Authorization itself
// is the account service's concern; an absent header means a guest call.
func callerID(ctx fiber.Ctx) string {
	if id := ctx.Get("X-User-ID"); id != "" {
		return id
	}
	return "guest"
}
