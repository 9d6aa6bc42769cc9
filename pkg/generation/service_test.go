package generation

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/autoflow/autoflow/pkg/domain"
	"github.com/autoflow/autoflow/pkg/templates"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubModel struct {
	response string
	err      error
	lastReq  GenerateRequest
}

func (m *stubModel) Generate(_ context.Context, req GenerateRequest) (string, error) {
	m.lastReq = req
	return m.response, m.err
}

func (m *stubModel) ID() string { return "stub" }

func newTestService(model LanguageModel) *Service {
	return NewService(ServiceDependencies{
		Model:   model,
		Library: templates.NewLibrary(),
	})
}

func TestGenerateAutomation_TemplateMatch(t *testing.T) {
	// A template match must never reach the model.
	service := newTestService(&stubModel{err: errors.New("model must not be called")})

	automation, err := service.GenerateAutomation(context.Background(), "set up a lead capture flow", domain.PlatformMake)
	require.NoError(t, err)

	assert.True(t, automation.IsTemplate)
	assert.Equal(t, "template_002", automation.TemplateID)
	assert.Equal(t, domain.PlatformMake, automation.Platform)
	assert.Contains(t, automation.SetupInstructions, "Make.com Import Instructions")

	_, err = domain.ParseBlueprint(domain.PlatformMake, []byte(automation.BlueprintJSON))
	assert.NoError(t, err)
}

func TestGenerateAutomation_ModelResponse(t *testing.T) {
	model := &stubModel{response: "```json\n{\"name\": \"Generated\", \"nodes\": [], \"connections\": {}}\n```"}
	service := newTestService(model)

	automation, err := service.GenerateAutomation(context.Background(), "watch a folder and post to slack", domain.PlatformN8N)
	require.NoError(t, err)

	assert.False(t, automation.IsTemplate)
	assert.JSONEq(t, `{"name": "Generated", "nodes": [], "connections": {}}`, automation.BlueprintJSON)
	assert.Equal(t, float32(0.3), model.lastReq.Temperature)
}

func TestGenerateAutomation_ModelFailureFallsBack(t *testing.T) {
	service := newTestService(&stubModel{err: errors.New("rate limited")})

	automation, err := service.GenerateAutomation(context.Background(), "watch a folder and post to slack", domain.PlatformN8N)
	require.NoError(t, err)

	bp, parseErr := domain.ParseBlueprint(domain.PlatformN8N, []byte(automation.BlueprintJSON))
	require.NoError(t, parseErr)
	assert.Equal(t, 2, bp.NodeCount())
}

func TestGenerateAutomation_NoModelUsesFallback(t *testing.T) {
	service := newTestService(nil)

	automation, err := service.GenerateAutomation(context.Background(), "forward form submissions somewhere", domain.PlatformMake)
	require.NoError(t, err)

	bp, parseErr := domain.ParseBlueprint(domain.PlatformMake, []byte(automation.BlueprintJSON))
	require.NoError(t, parseErr)
	assert.Equal(t, 2, bp.NodeCount())
}

func TestConvertBlueprint(t *testing.T) {
	model := &stubModel{response: "**CONVERTED N8N BLUEPRINT:**\n```json\n{\"name\": \"Converted\"}\n```\n**CONVERSION NOTES:**\n- Webhook became the trigger node"}
	service := newTestService(model)

	converted, notes, err := service.ConvertBlueprint(context.Background(), `{"name":"Source","flow":[]}`, domain.PlatformMake, domain.PlatformN8N)
	require.NoError(t, err)

	assert.JSONEq(t, `{"name": "Converted"}`, converted)
	assert.Equal(t, "- Webhook became the trigger node", notes)
	assert.Contains(t, model.lastReq.Prompt, `{"name":"Source","flow":[]}`)
}

func TestConvertBlueprint_InvalidModelJSON(t *testing.T) {
	service := newTestService(&stubModel{response: "```json\nnot json at all\n```"})

	_, _, err := service.ConvertBlueprint(context.Background(), `{}`, domain.PlatformMake, domain.PlatformN8N)
	assert.Error(t, err)
}

func TestConvertBlueprint_NoModel(t *testing.T) {
	service := newTestService(nil)

	_, _, err := service.ConvertBlueprint(context.Background(), `{}`, domain.PlatformMake, domain.PlatformN8N)
	assert.Error(t, err)
}

// Truncating the task for the document name must never split a rune.
func TestFallbackBlueprint_MultiByteTask(t *testing.T) {
	raw := FallbackBlueprint("публикация видео в социальных сетях каждый день", domain.PlatformMake)

	var doc domain.MakeScenario
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	assert.True(t, utf8.ValidString(doc.Name))
	// A split rune would surface as the replacement character after encoding.
	assert.NotContains(t, doc.Name, "�")
}

// The fallback must always be an importable two-step document on both
// platforms.
func TestFallbackBlueprint(t *testing.T) {
	for _, platform := range []domain.Platform{domain.PlatformMake, domain.PlatformN8N} {
		t.Run(string(platform), func(t *testing.T) {
			raw := FallbackBlueprint("a very long task description that should be truncated in the name", platform)
			require.True(t, json.Valid([]byte(raw)))

			bp, err := domain.ParseBlueprint(platform, []byte(raw))
			require.NoError(t, err)
			assert.Equal(t, 2, bp.NodeCount())
		})
	}
}
