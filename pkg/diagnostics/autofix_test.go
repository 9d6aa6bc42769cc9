package diagnostics

import (
	"testing"

	"github.com/autoflow/autoflow/pkg/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFix_N8NWorkflow(t *testing.T) {
	analyzer := newTestAnalyzer()

	workflow := &domain.N8NWorkflow{
		Name: "Needs Fixes",
		Nodes: []domain.N8NNode{
			{Name: "Sheets", Type: "n8n-nodes-base.googleSheets", Parameters: map[string]any{}},
			{Name: "OpenAI", Type: "n8n-nodes-base.openAi"},
			{Name: "HTTP", Type: "n8n-nodes-base.httpRequest", Parameters: map[string]any{"method": "GET"}},
			{Name: "Set", Type: "n8n-nodes-base.set", Parameters: map[string]any{"keepOnlySet": true}},
		},
	}

	findings := analyzer.Analyze(workflow)
	require.Len(t, findings, 3)

	fixed, ok := analyzer.Fix(workflow, findings).(*domain.N8NWorkflow)
	require.True(t, ok)

	assert.Equal(t, "your-spreadsheet-id", fixed.Nodes[0].Parameters["sheetId"])
	assert.Equal(t, "gpt-4", fixed.Nodes[1].Parameters["model"])
	assert.Equal(t, "https://api.example.com", fixed.Nodes[2].Parameters["url"])

	// Untouched node keeps its parameters.
	assert.Equal(t, map[string]any{"keepOnlySet": true}, fixed.Nodes[3].Parameters)

	// The input document is never mutated.
	assert.NotContains(t, workflow.Nodes[0].Parameters, "sheetId")
	assert.Nil(t, workflow.Nodes[1].Parameters)
	assert.NotContains(t, workflow.Nodes[2].Parameters, "url")

	// The patched copy passes re-analysis.
	assert.Empty(t, analyzer.Analyze(fixed))
}

func TestFix_MakeScenario(t *testing.T) {
	analyzer := newTestAnalyzer()

	scenario := &domain.MakeScenario{
		Name: "Needs Fixes",
		Flow: []domain.MakeModule{
			{ID: 1, Module: "google-sheets:AddRow"},
			{ID: 2, Module: "openai:CreateChatCompletion"},
			{ID: 3, Module: "http:ActionSendData", Parameters: map[string]any{"method": "POST"}},
		},
	}

	findings := analyzer.Analyze(scenario)
	require.Len(t, findings, 3)

	fixed, ok := analyzer.Fix(scenario, findings).(*domain.MakeScenario)
	require.True(t, ok)

	assert.Equal(t, "{{connection.drive.spreadsheetId}}", fixed.Flow[0].Parameters["spreadsheetId"])
	assert.Equal(t, "gpt-4", fixed.Flow[1].Parameters["model"])
	// The URL placeholder lands in the mapper, matching where the analyzer
	// accepts it.
	assert.Equal(t, "https://api.example.com", fixed.Flow[2].Mapper["url"])

	assert.Nil(t, scenario.Flow[0].Parameters)
	assert.Nil(t, scenario.Flow[1].Parameters)
	assert.Nil(t, scenario.Flow[2].Mapper)

	assert.Empty(t, analyzer.Analyze(fixed))
}

func TestFix_SkipsUnknownDescriptions(t *testing.T) {
	analyzer := newTestAnalyzer()

	workflow := &domain.N8NWorkflow{
		Nodes: []domain.N8NNode{
			{Name: "HTTP", Type: "n8n-nodes-base.httpRequest"},
		},
	}

	findings := []domain.Finding{
		{Type: domain.FindingMissingParameter, NodeID: "HTTP", Description: "Something unrecognizable"},
		{Type: domain.FindingConnectionError, NodeID: "HTTP", Description: "Missing required URL parameter"},
	}

	fixed, ok := analyzer.Fix(workflow, findings).(*domain.N8NWorkflow)
	require.True(t, ok)
	assert.NotContains(t, fixed.Nodes[0].Parameters, "url")
}
