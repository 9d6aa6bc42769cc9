package dialogue

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/autoflow/autoflow/pkg/converter"
	"github.com/autoflow/autoflow/pkg/diagnostics"
	"github.com/autoflow/autoflow/pkg/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTroubleshooter(t *testing.T) *Troubleshooter {
	t.Helper()

	store := NewMemoryStore(time.Minute)
	t.Cleanup(store.Stop)

	return NewTroubleshooter(TroubleshooterDependencies{
		Analyzer: diagnostics.NewAnalyzer(diagnostics.AnalyzerDependencies{Registry: converter.NewRegistry()}),
		Sessions: store,
	})
}

func TestStep_FullDialogueWithModuleName(t *testing.T) {
	ts := newTestTroubleshooter(t)
	ctx := context.Background()
	sessionID := "session-1"

	reply, err := ts.Step(ctx, sessionID, "My make scenario keeps failing")
	require.NoError(t, err)
	assert.Equal(t, "What error message are you seeing? Please copy and paste the exact error from Make.com.", reply.Question)
	assert.Equal(t, []string{"Connection error", "Module error", "Data error", "Authentication error"}, reply.Options)

	reply, err = ts.Step(ctx, sessionID, "Error 400: invalid request")
	require.NoError(t, err)
	assert.Equal(t, "Which module/node is failing? You can paste your workflow JSON here, or tell me the specific module name.", reply.Question)
	assert.Equal(t, []string{"Google Sheets", "OpenAI", "HTTP Request", "WordPress", "Other"}, reply.Options)

	reply, err = ts.Step(ctx, sessionID, "Google Sheets")
	require.NoError(t, err)
	assert.Equal(t, "What input data triggered this error? Please share the specific values that caused the failure.", reply.Question)

	reply, err = ts.Step(ctx, sessionID, "A row with an empty email column")
	require.NoError(t, err)
	assert.True(t, reply.Done)
	assert.False(t, reply.HasFix)
	assert.Equal(t, "Based on your description, here are the most likely solutions:", reply.Analysis)
	assert.Equal(t, []string{
		"Ensure spreadsheet is shared with the service account",
		"Check that the spreadsheet ID is correct",
		"Verify the worksheet name/range is valid",
	}, reply.Suggestions)
}

func TestStep_UnknownPlatformReprompts(t *testing.T) {
	ts := newTestTroubleshooter(t)
	ctx := context.Background()

	reply, err := ts.Step(ctx, "session-2", "something is broken")
	require.NoError(t, err)
	assert.Equal(t, "Which platform are you using?", reply.Question)
	assert.Equal(t, []string{"Make.com", "n8n"}, reply.Options)

	// The session stays on the platform question until one is recognized.
	reply, err = ts.Step(ctx, "session-2", "I use n8n")
	require.NoError(t, err)
	assert.Contains(t, reply.Question, "exact error from n8n")
	assert.Equal(t, []string{"Node execution failed", "Connection error", "Credential error", "Workflow error"}, reply.Options)
}

func TestStep_PastedJSONJumpsToAnalysis(t *testing.T) {
	ts := newTestTroubleshooter(t)
	ctx := context.Background()
	sessionID := "session-3"

	_, err := ts.Step(ctx, sessionID, "n8n")
	require.NoError(t, err)
	_, err = ts.Step(ctx, sessionID, "Node execution failed")
	require.NoError(t, err)

	workflowJSON := `{
		"name": "Broken",
		"nodes": [
			{"name": "HTTP", "type": "n8n-nodes-base.httpRequest", "parameters": {"method": "GET"}}
		],
		"connections": {}
	}`

	reply, err := ts.Step(ctx, sessionID, workflowJSON)
	require.NoError(t, err)
	assert.True(t, reply.Done)
	assert.True(t, reply.HasFix)
	assert.Equal(t, "Found 1 issues in your workflow:", reply.Analysis)
	require.Len(t, reply.Errors, 1)
	assert.Equal(t, "• Missing required URL parameter - Add url parameter with target endpoint", reply.Errors[0])

	var fixed domain.N8NWorkflow
	require.NoError(t, json.Unmarshal([]byte(reply.FixedBlueprint), &fixed))
	require.Len(t, fixed.Nodes, 1)
	assert.Equal(t, "https://api.example.com", fixed.Nodes[0].Parameters["url"])
}

func TestStep_CleanBlueprintSuggestions(t *testing.T) {
	ts := newTestTroubleshooter(t)
	ctx := context.Background()
	sessionID := "session-4"

	_, err := ts.Step(ctx, sessionID, "make")
	require.NoError(t, err)
	_, err = ts.Step(ctx, sessionID, "Connection error")
	require.NoError(t, err)

	scenarioJSON := `{"name":"Fine","flow":[{"id":1,"module":"http:ActionSendData","mapper":{"url":"https://example.com"}}]}`

	reply, err := ts.Step(ctx, sessionID, scenarioJSON)
	require.NoError(t, err)
	assert.True(t, reply.Done)
	assert.False(t, reply.HasFix)
	assert.Equal(t, "Your workflow structure looks correct. The issue might be:", reply.Analysis)
	assert.Len(t, reply.Suggestions, 4)
}

func TestStep_GenericTipsForUnknownModule(t *testing.T) {
	ts := newTestTroubleshooter(t)
	ctx := context.Background()
	sessionID := "session-5"

	_, err := ts.Step(ctx, sessionID, "n8n")
	require.NoError(t, err)
	_, err = ts.Step(ctx, sessionID, "Workflow error")
	require.NoError(t, err)
	_, err = ts.Step(ctx, sessionID, "Some custom node")
	require.NoError(t, err)

	reply, err := ts.Step(ctx, sessionID, "weird payload")
	require.NoError(t, err)
	assert.True(t, reply.Done)
	assert.Equal(t, genericTips, reply.Suggestions)
}

func TestStep_NonObjectJSONTreatedAsModuleName(t *testing.T) {
	ts := newTestTroubleshooter(t)
	ctx := context.Background()
	sessionID := "session-6"

	_, err := ts.Step(ctx, sessionID, "n8n")
	require.NoError(t, err)
	_, err = ts.Step(ctx, sessionID, "Credential error")
	require.NoError(t, err)

	// A JSON array is not a blueprint document; it is treated as a module
	// name and the dialogue keeps asking for input data.
	reply, err := ts.Step(ctx, sessionID, `["not", "a", "workflow"]`)
	require.NoError(t, err)
	assert.False(t, reply.Done)
	assert.Contains(t, reply.Question, "What input data triggered this error?")
}

func TestStep_JSONNullTreatedAsModuleName(t *testing.T) {
	ts := newTestTroubleshooter(t)
	ctx := context.Background()
	sessionID := "session-8"

	_, err := ts.Step(ctx, sessionID, "n8n")
	require.NoError(t, err)
	_, err = ts.Step(ctx, sessionID, "Credential error")
	require.NoError(t, err)

	reply, err := ts.Step(ctx, sessionID, "null")
	require.NoError(t, err)
	assert.False(t, reply.Done)
	assert.Contains(t, reply.Question, "What input data triggered this error?")
}

func TestStep_TerminalSessionAsksForMore(t *testing.T) {
	ts := newTestTroubleshooter(t)
	ctx := context.Background()
	sessionID := "session-7"

	_, err := ts.Step(ctx, sessionID, "make")
	require.NoError(t, err)
	_, err = ts.Step(ctx, sessionID, "Module error")
	require.NoError(t, err)
	_, err = ts.Step(ctx, sessionID, "OpenAI")
	require.NoError(t, err)
	_, err = ts.Step(ctx, sessionID, "empty prompt")
	require.NoError(t, err)

	reply, err := ts.Step(ctx, sessionID, "hello again")
	require.NoError(t, err)
	assert.Equal(t, "I need more information to help you.", reply.Question)
}

func TestStep_SessionsAreIndependent(t *testing.T) {
	ts := newTestTroubleshooter(t)
	ctx := context.Background()

	_, err := ts.Step(ctx, "session-a", "make")
	require.NoError(t, err)

	reply, err := ts.Step(ctx, "session-b", "no platform mentioned")
	require.NoError(t, err)
	assert.Equal(t, "Which platform are you using?", reply.Question)
}
