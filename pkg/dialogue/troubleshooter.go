// Package dialogue drives the diagnostic conversation that elicits platform,
// error text and failing component from a user, then analyzes a captured
// blueprint or falls back to keyword-matched troubleshooting tips.
package dialogue

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"strings"
	"sync"

	"github.com/autoflow/autoflow/pkg/diagnostics"
	"github.com/autoflow/autoflow/pkg/domain"
)

// Reply is one turn of the diagnostic dialogue: either the next question with
// quick-reply options, or the terminal analysis.
type Reply struct {
	Question string   `json:"question,omitempty"`
	Options  []string `json:"options,omitempty"`

	Analysis       string   `json:"analysis,omitempty"`
	Errors         []string `json:"errors,omitempty"`
	Suggestions    []string `json:"suggestions,omitempty"`
	FixedBlueprint string   `json:"fixed_blueprint,omitempty"`
	HasFix         bool     `json:"has_fix"`
	Done           bool     `json:"done"`
}

// keywordTips are matched against the failing-module text in order, so
// replies stay deterministic when several keywords match.
var keywordTips = []struct {
	keyword string
	tips    []string
}{
	{"google sheets", []string{
		"Ensure spreadsheet is shared with the service account",
		"Check that the spreadsheet ID is correct",
		"Verify the worksheet name/range is valid",
	}},
	{"openai", []string{
		"Check your OpenAI API key is valid and has credits",
		"Verify the model name (use 'gpt-4' or 'gpt-3.5-turbo')",
		"Check if input text exceeds token limits",
	}},
	{"http", []string{
		"Verify the URL is accessible and correct",
		"Check authentication headers and API keys",
		"Ensure request format matches API requirements",
	}},
}

var genericTips = []string{
	"Check module configuration and required parameters",
	"Verify authentication and permissions",
	"Test with simpler input data",
}

// Troubleshooter runs the sequential diagnostic state machine. Steps for the
// same session id are serialized through a striped lock so concurrent
// messages cannot advance one session past different states.
type Troubleshooter struct {
	analyzer *diagnostics.Analyzer
	sessions Store
	locks    [64]sync.Mutex
}

type TroubleshooterDependencies struct {
	Analyzer *diagnostics.Analyzer
	Sessions Store
}

func NewTroubleshooter(deps TroubleshooterDependencies) *Troubleshooter {
	return &Troubleshooter{
		analyzer: deps.Analyzer,
		sessions: deps.Sessions,
	}
}

// Step feeds one user message into the session's state machine and returns
// the next question or the terminal analysis.
func (t *Troubleshooter) Step(ctx context.Context, sessionID, message string) (Reply, error) {
	lock := t.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	session, ok, err := t.sessions.Get(ctx, sessionID)
	if err != nil {
		return Reply{}, err
	}
	if !ok {
		session = Session{Step: StepInitial}
	}

	reply := t.advance(&session, message)

	if err := t.sessions.Put(ctx, sessionID, session); err != nil {
		return Reply{}, err
	}
	return reply, nil
}

func (t *Troubleshooter) advance(session *Session, message string) Reply {
	switch session.Step {
	case StepInitial:
		platform, err := domain.ParsePlatform(detectPlatform(message))
		if err != nil {
			return Reply{
				Question: "Which platform are you using?",
				Options:  []string{"Make.com", "n8n"},
			}
		}

		session.Platform = platform
		session.Step = StepGetError

		if platform == domain.PlatformMake {
			return Reply{
				Question: "What error message are you seeing? Please copy and paste the exact error from Make.com.",
				Options:  []string{"Connection error", "Module error", "Data error", "Authentication error"},
			}
		}
		return Reply{
			Question: "What error message are you seeing? Please copy and paste the exact error from n8n.",
			Options:  []string{"Node execution failed", "Connection error", "Credential error", "Workflow error"},
		}

	case StepGetError:
		session.ErrorMessage = message
		session.Step = StepGetModule
		return Reply{
			Question: "Which module/node is failing? You can paste your workflow JSON here, or tell me the specific module name.",
			Options:  []string{"Google Sheets", "OpenAI", "HTTP Request", "WordPress", "Other"},
		}

	case StepGetModule:
		if doc := asJSONObject(message); doc != nil {
			session.BlueprintJSON = doc
			session.Step = StepAnalyze
			return t.analyze(session)
		}

		session.FailingModule = message
		session.Step = StepGetInput
		return Reply{
			Question: "What input data triggered this error? Please share the specific values that caused the failure.",
			Options:  []string{"Empty data", "Wrong format", "Missing field", "Invalid URL"},
		}

	case StepGetInput:
		session.InputData = message
		session.Step = StepAnalyze
		return t.analyze(session)

	default:
		return Reply{Question: "I need more information to help you.", Options: []string{}}
	}
}

func (t *Troubleshooter) analyze(session *Session) Reply {
	if len(session.BlueprintJSON) > 0 {
		bp, err := domain.ParseBlueprint(session.Platform, session.BlueprintJSON)
		if err != nil {
			return Reply{
				Analysis:    "The workflow JSON you pasted could not be read as a blueprint:",
				Suggestions: []string{err.Error()},
				Done:        true,
			}
		}

		findings := t.analyzer.Analyze(bp)
		if len(findings) > 0 {
			fixed := t.analyzer.Fix(bp, findings)
			encoded, _ := json.MarshalIndent(fixed, "", "  ")

			return Reply{
				Analysis:       fmt.Sprintf("Found %d issues in your workflow:", len(findings)),
				Errors:         diagnostics.Summary(findings),
				FixedBlueprint: string(encoded),
				HasFix:         true,
				Done:           true,
			}
		}

		return Reply{
			Analysis: "Your workflow structure looks correct. The issue might be:",
			Suggestions: []string{
				"Check your API credentials and permissions",
				"Verify input data format matches expected schema",
				"Test with simpler data first",
				"Check rate limits on external APIs",
			},
			HasFix: false,
			Done:   true,
		}
	}

	module := strings.ToLower(session.FailingModule)
	suggestions := []string{}
	for _, entry := range keywordTips {
		if strings.Contains(module, entry.keyword) {
			suggestions = append(suggestions, entry.tips...)
		}
	}
	if len(suggestions) == 0 {
		suggestions = append(suggestions, genericTips...)
	}

	return Reply{
		Analysis:    "Based on your description, here are the most likely solutions:",
		Suggestions: suggestions,
		HasFix:      false,
		Done:        true,
	}
}

// detectPlatform extracts a platform name mentioned anywhere in free text.
func detectPlatform(message string) string {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "make"):
		return "make"
	case strings.Contains(lower, "n8n"):
		return "n8n"
	default:
		return ""
	}
}

// asJSONObject returns the message bytes when they decode to a JSON object.
func asJSONObject(message string) json.RawMessage {
	trimmed := strings.TrimSpace(message)
	var obj map[string]any
	// "null" unmarshals into a nil map, so check the map too.
	if err := json.Unmarshal([]byte(trimmed), &obj); err != nil || obj == nil {
		return nil
	}
	return json.RawMessage(trimmed)
}

func (t *Troubleshooter) sessionLock(sessionID string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(sessionID))
	return &t.locks[h.Sum32()%uint32(len(t.locks))]
}
