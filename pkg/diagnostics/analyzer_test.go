package diagnostics

import (
	"testing"

	"github.com/autoflow/autoflow/pkg/converter"
	"github.com/autoflow/autoflow/pkg/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAnalyzer() *Analyzer {
	return NewAnalyzer(AnalyzerDependencies{Registry: converter.NewRegistry()})
}

func TestAnalyze_N8NMissingURL(t *testing.T) {
	workflow := &domain.N8NWorkflow{
		Name: "Broken HTTP",
		Nodes: []domain.N8NNode{
			{Name: "HTTP Request", Type: "n8n-nodes-base.httpRequest", Parameters: map[string]any{"method": "GET"}},
		},
	}

	findings := newTestAnalyzer().Analyze(workflow)
	require.Len(t, findings, 1)

	finding := findings[0]
	assert.Equal(t, domain.FindingMissingParameter, finding.Type)
	assert.Equal(t, "HTTP Request", finding.NodeID)
	assert.Equal(t, "n8n-nodes-base.httpRequest", finding.NodeName)
	assert.Equal(t, "Missing required URL parameter", finding.Description)
	assert.Equal(t, "Add url parameter with target endpoint", finding.SuggestedFix)
	assert.Equal(t, domain.SeverityCritical, finding.Severity)
}

func TestAnalyze_MakeScenario(t *testing.T) {
	tests := []struct {
		name             string
		module           domain.MakeModule
		wantFindings     int
		wantDescription  string
		wantSuggestedFix string
	}{
		{
			name:             "spreadsheet missing id",
			module:           domain.MakeModule{ID: 1, Module: "google-sheets:AddRow"},
			wantFindings:     1,
			wantDescription:  "Missing required spreadsheet ID",
			wantSuggestedFix: "Add spreadsheet ID: {{connection.drive.spreadsheetId}}",
		},
		{
			name:         "spreadsheet with id passes",
			module:       domain.MakeModule{ID: 1, Module: "google-sheets:AddRow", Parameters: map[string]any{"spreadsheetId": "abc"}},
			wantFindings: 0,
		},
		{
			name:             "ai module missing model",
			module:           domain.MakeModule{ID: 1, Module: "openai:CreateChatCompletion"},
			wantFindings:     1,
			wantDescription:  "Missing required model parameter",
			wantSuggestedFix: "Add model parameter: 'gpt-4' or 'gpt-3.5-turbo'",
		},
		{
			name:             "http missing url in both maps",
			module:           domain.MakeModule{ID: 1, Module: "http:ActionSendData", Parameters: map[string]any{"method": "GET"}},
			wantFindings:     1,
			wantDescription:  "Missing required URL parameter",
			wantSuggestedFix: "Add URL in mapper or parameters",
		},
		{
			name:         "http url in mapper passes",
			module:       domain.MakeModule{ID: 1, Module: "http:ActionSendData", Mapper: map[string]any{"url": "https://example.com"}},
			wantFindings: 0,
		},
		{
			name:         "empty string counts as missing",
			module:       domain.MakeModule{ID: 1, Module: "openai:CreateChatCompletion", Parameters: map[string]any{"model": ""}},
			wantFindings: 1,
		},
		{
			name:         "uncovered category passes unconditionally",
			module:       domain.MakeModule{ID: 1, Module: "wordpress:CreatePost"},
			wantFindings: 0,
		},
		{
			name:         "instagram is generic despite its http mapping",
			module:       domain.MakeModule{ID: 1, Module: "instagram:CreateMedia", Mapper: map[string]any{"videoUrl": "{{1.link}}"}},
			wantFindings: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := newTestAnalyzer().Analyze(&domain.MakeScenario{Flow: []domain.MakeModule{tt.module}})
			require.Len(t, findings, tt.wantFindings)

			if tt.wantDescription != "" {
				assert.Equal(t, tt.wantDescription, findings[0].Description)
				assert.Equal(t, tt.wantSuggestedFix, findings[0].SuggestedFix)
			}
		})
	}
}

func TestAnalyze_UnknownModuleIDReported(t *testing.T) {
	scenario := &domain.MakeScenario{
		Flow: []domain.MakeModule{{Module: "http:ActionSendData"}},
	}

	findings := newTestAnalyzer().Analyze(scenario)
	require.Len(t, findings, 1)
	assert.Equal(t, "unknown", findings[0].NodeID)
}

// Findings come back in node order, so repeated analysis of the same document
// is byte-for-byte identical.
func TestAnalyze_Deterministic(t *testing.T) {
	workflow := &domain.N8NWorkflow{
		Nodes: []domain.N8NNode{
			{Name: "Sheets", Type: "n8n-nodes-base.googleSheets"},
			{Name: "OpenAI", Type: "n8n-nodes-base.openAi"},
			{Name: "HTTP", Type: "n8n-nodes-base.httpRequest"},
		},
	}

	analyzer := newTestAnalyzer()
	first := analyzer.Analyze(workflow)
	require.Len(t, first, 3)
	assert.Equal(t, []string{"Sheets", "OpenAI", "HTTP"}, []string{first[0].NodeID, first[1].NodeID, first[2].NodeID})

	for i := 0; i < 5; i++ {
		assert.Equal(t, first, analyzer.Analyze(workflow))
	}
}

func TestSummary(t *testing.T) {
	findings := []domain.Finding{
		{Description: "Missing required URL parameter", SuggestedFix: "Add url parameter with target endpoint"},
	}

	lines := Summary(findings)
	require.Len(t, lines, 1)
	assert.Equal(t, "• Missing required URL parameter - Add url parameter with target endpoint", lines[0])
}
