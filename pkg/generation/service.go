package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/autoflow/autoflow/pkg/domain"
	"github.com/autoflow/autoflow/pkg/templates"

	"github.com/rs/zerolog/log"
)

// Automation is a generated (or canned) automation ready to hand back to the
// caller: a summary, the importable blueprint JSON, and setup guidance.
type Automation struct {
	TaskDescription   string          `json:"task_description"`
	Platform          domain.Platform `json:"platform"`
	AutomationSummary string          `json:"automation_summary"`
	RequiredTools     []string        `json:"required_tools"`
	WorkflowSteps     []string        `json:"workflow_steps"`
	BlueprintJSON     string          `json:"automation_json"`
	SetupInstructions string          `json:"setup_instructions"`
	IsTemplate        bool            `json:"is_template"`
	TemplateID        string          `json:"template_id,omitempty"`
}

// Service produces blueprints from natural-language task descriptions and
// performs best-effort AI-backed blueprint conversion.
type Service struct {
	model   LanguageModel
	library *templates.Library
}

type ServiceDependencies struct {
	Model   LanguageModel
	Library *templates.Library
}

func NewService(deps ServiceDependencies) *Service {
	return &Service{
		model:   deps.Model,
		library: deps.Library,
	}
}

// ConvertBlueprint asks the language model for a conversion of the blueprint
// between the two platforms and extracts the JSON document plus conversion
// notes from the response. The extracted document is checked for JSON
// well-formedness only.
func (s *Service) ConvertBlueprint(ctx context.Context, blueprintJSON string, source, target domain.Platform) (string, string, error) {
	if s.model == nil {
		return "", "", fmt.Errorf("no language model configured")
	}

	content, err := s.model.Generate(ctx, GenerateRequest{
		System:      "You are an expert automation platform converter. Always provide complete, functional blueprint conversions.",
		Prompt:      conversionPrompt(blueprintJSON, source, target),
		MaxTokens:   3000,
		Temperature: 0.3,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to convert blueprint: %w", err)
	}

	converted := ExtractJSONBlock(content)
	notes := ExtractNotes(content)

	if !json.Valid([]byte(converted)) {
		return "", "", fmt.Errorf("model response did not contain a valid JSON blueprint")
	}

	return converted, notes, nil
}

// GenerateAutomation turns a task description into an importable blueprint.
// A matching template short-circuits the model; a model failure degrades to a
// deterministic fallback blueprint rather than an error.
func (s *Service) GenerateAutomation(ctx context.Context, task string, platform domain.Platform) (Automation, error) {
	if t, ok := s.library.Match(task); ok {
		return Automation{
			TaskDescription:   task,
			Platform:          platform,
			AutomationSummary: t.AutomationSummary,
			RequiredTools:     t.RequiredTools,
			WorkflowSteps:     t.WorkflowSteps,
			BlueprintJSON:     t.BlueprintJSON(platform),
			SetupInstructions: templates.SetupInstructionsFor(t, platform),
			IsTemplate:        true,
			TemplateID:        t.ID,
		}, nil
	}

	blueprintJSON := ""
	summary := fmt.Sprintf("Automation for: %s", task)

	if s.model != nil {
		content, err := s.model.Generate(ctx, GenerateRequest{
			System:      generationSystemPrompt(platform),
			Prompt:      generationPrompt(task, platform),
			MaxTokens:   3000,
			Temperature: 0.3,
		})
		if err != nil {
			log.Warn().Err(err).Str("model", s.model.ID()).Msg("Generation failed, using fallback blueprint")
		} else if extracted := ExtractJSONBlock(content); json.Valid([]byte(extracted)) {
			blueprintJSON = extracted
		}
	}

	if blueprintJSON == "" {
		blueprintJSON = FallbackBlueprint(task, platform)
	}

	return Automation{
		TaskDescription:   task,
		Platform:          platform,
		AutomationSummary: summary,
		RequiredTools:     []string{"Webhook - Receive the trigger event", "HTTP Request - Call the target service"},
		WorkflowSteps:     []string{"1. Receive the trigger event", "2. Forward the data to the target service"},
		BlueprintJSON:     blueprintJSON,
		SetupInstructions: "Import the blueprint, connect the listed apps and test before activating.",
	}, nil
}

// FallbackBlueprint is the minimal always-importable document returned when
// no model output is usable: a webhook trigger feeding an HTTP call.
func FallbackBlueprint(task string, platform domain.Platform) string {
	name := fmt.Sprintf("Automation - %s", truncate(task, 30))

	if platform == domain.PlatformMake {
		doc := domain.MakeScenario{
			Name: name,
			Flow: []domain.MakeModule{
				{
					ID:         1,
					Module:     "webhook:CustomWebHook",
					Version:    1,
					Parameters: map[string]any{"maxResults": 1},
					Mapper:     map[string]any{},
					Metadata:   map[string]any{"designer": map[string]any{"x": 0, "y": 0}},
				},
				{
					ID:         2,
					Module:     "http:ActionSendData",
					Version:    1,
					Parameters: map[string]any{"method": "POST"},
					Mapper:     map[string]any{"url": "https://api.example.com"},
					Metadata:   map[string]any{"designer": map[string]any{"x": 300, "y": 0}},
				},
			},
			Metadata: map[string]any{"instant": false, "version": 1, "zone": "eu1.make.com"},
		}
		encoded, _ := json.MarshalIndent(doc, "", "  ")
		return string(encoded)
	}

	doc := domain.N8NWorkflow{
		Name: name,
		Nodes: []domain.N8NNode{
			{
				Parameters:  map[string]any{"path": "automation", "httpMethod": "POST"},
				Name:        "Webhook",
				Type:        "n8n-nodes-base.webhook",
				TypeVersion: 1,
				Position:    [2]int{240, 300},
			},
			{
				Parameters:  map[string]any{"url": "https://api.example.com", "method": "POST"},
				Name:        "HTTP Request",
				Type:        "n8n-nodes-base.httpRequest",
				TypeVersion: 1,
				Position:    [2]int{460, 300},
			},
		},
		Connections: map[string]domain.NodeConnections{
			"Webhook": {Main: [][]string{{"HTTP Request"}}},
		},
		Active:    false,
		Settings:  map[string]any{"executionOrder": "v1"},
		VersionID: "1",
	}
	encoded, _ := json.MarshalIndent(doc, "", "  ")
	return string(encoded)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return strings.TrimSpace(string(runes[:n]))
}
