package converter

import (
	"testing"

	"github.com/autoflow/autoflow/pkg/domain"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_Resolve(t *testing.T) {
	registry := NewRegistry()

	tests := []struct {
		name         string
		source       domain.Platform
		target       domain.Platform
		identifier   string
		expected     string
		wantFallback bool
	}{
		{
			name:       "make google sheets to n8n",
			source:     domain.PlatformMake,
			target:     domain.PlatformN8N,
			identifier: "google-sheets:AddRow",
			expected:   "n8n-nodes-base.googleSheets",
		},
		{
			name:       "make openai to n8n",
			source:     domain.PlatformMake,
			target:     domain.PlatformN8N,
			identifier: "openai:CreateChatCompletion",
			expected:   "n8n-nodes-base.openAi",
		},
		{
			name:       "instagram rides the http node",
			source:     domain.PlatformMake,
			target:     domain.PlatformN8N,
			identifier: "instagram:CreateMedia",
			expected:   "n8n-nodes-base.httpRequest",
		},
		{
			name:         "unmapped make module falls back",
			source:       domain.PlatformMake,
			target:       domain.PlatformN8N,
			identifier:   "salesforce:CreateLead",
			expected:     FallbackN8NType,
			wantFallback: true,
		},
		{
			name:       "n8n google sheets resolves to canonical make module",
			source:     domain.PlatformN8N,
			target:     domain.PlatformMake,
			identifier: "n8n-nodes-base.googleSheets",
			expected:   "google-sheets:AddRow",
		},
		{
			name:       "n8n openai resolves to canonical make module",
			source:     domain.PlatformN8N,
			target:     domain.PlatformMake,
			identifier: "n8n-nodes-base.openAi",
			expected:   "openai:CreateChatCompletion",
		},
		{
			name:       "n8n http resolves to canonical make module",
			source:     domain.PlatformN8N,
			target:     domain.PlatformMake,
			identifier: "n8n-nodes-base.httpRequest",
			expected:   "http:ActionSendData",
		},
		{
			name:       "reverse-only start node",
			source:     domain.PlatformN8N,
			target:     domain.PlatformMake,
			identifier: "n8n-nodes-base.start",
			expected:   "webhook:CustomWebHook",
		},
		{
			name:       "reverse-only if node",
			source:     domain.PlatformN8N,
			target:     domain.PlatformMake,
			identifier: "n8n-nodes-base.if",
			expected:   "builtin:Router",
		},
		{
			name:         "unmapped n8n node falls back",
			source:       domain.PlatformN8N,
			target:       domain.PlatformMake,
			identifier:   "n8n-nodes-base.airtable",
			expected:     FallbackMakeModule,
			wantFallback: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, fallback := registry.Resolve(tt.source, tt.target, tt.identifier)

			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.wantFallback, fallback)
		})
	}
}

// Resolving a fallback identifier must be a fixed point: the generic HTTP
// pass-through of each platform maps to the generic HTTP pass-through of the
// other, so repeated conversions cannot drift.
func TestRegistry_FallbackIsFixedPoint(t *testing.T) {
	registry := NewRegistry()

	makeSide, fallback := registry.Resolve(domain.PlatformN8N, domain.PlatformMake, FallbackN8NType)
	assert.False(t, fallback)
	assert.Equal(t, FallbackMakeModule, makeSide)

	n8nSide, fallback := registry.Resolve(domain.PlatformMake, domain.PlatformN8N, FallbackMakeModule)
	assert.False(t, fallback)
	assert.Equal(t, FallbackN8NType, n8nSide)
}

func TestRegistry_CategoryOf(t *testing.T) {
	registry := NewRegistry()

	tests := []struct {
		name       string
		platform   domain.Platform
		identifier string
		expected   Category
	}{
		{
			name:       "explicit spreadsheet category",
			platform:   domain.PlatformMake,
			identifier: "google-sheets:AddRow",
			expected:   CategorySpreadsheet,
		},
		{
			name:       "explicit ai category on n8n side",
			platform:   domain.PlatformN8N,
			identifier: "n8n-nodes-base.openAi",
			expected:   CategoryAICompletion,
		},
		{
			name:       "known identifier without category is generic",
			platform:   domain.PlatformMake,
			identifier: "wordpress:CreatePost",
			expected:   CategoryGeneric,
		},
		{
			name:       "unknown sheet identifier inferred by substring",
			platform:   domain.PlatformN8N,
			identifier: "n8n-nodes-base.smartsheet",
			expected:   CategorySpreadsheet,
		},
		{
			name:       "unknown openai identifier inferred by substring",
			platform:   domain.PlatformMake,
			identifier: "openai:CreateEmbedding",
			expected:   CategoryAICompletion,
		},
		{
			name:       "unknown identifier defaults to generic",
			platform:   domain.PlatformMake,
			identifier: "salesforce:CreateLead",
			expected:   CategoryGeneric,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, registry.CategoryOf(tt.platform, tt.identifier))
		})
	}
}

func TestRegistry_CredentialBlocks(t *testing.T) {
	registry := NewRegistry()

	assert.True(t, registry.RequiresCredentials("n8n-nodes-base.googleSheets"))
	assert.True(t, registry.RequiresCredentials("n8n-nodes-base.openAi"))
	assert.False(t, registry.RequiresCredentials("n8n-nodes-base.httpRequest"))

	block := registry.CredentialBlock("n8n-nodes-base.openAi")
	assert.Contains(t, block, "openAiApi")
}
