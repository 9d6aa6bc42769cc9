// Package templates holds the canned automation blueprints served when a
// task description matches a known template instead of going through the
// generation service.
package templates

import (
	"fmt"
	"strings"

	"github.com/autoflow/autoflow/pkg/domain"
)

// Template is one canned automation with importable blueprint JSON for both
// platforms.
type Template struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Category          string   `json:"category"`
	Description       string   `json:"description"`
	Tags              []string `json:"tags"`
	AutomationSummary string   `json:"automation_summary"`
	RequiredTools     []string `json:"required_tools"`
	WorkflowSteps     []string `json:"workflow_steps"`
	SetupInstructions string   `json:"setup_instructions"`
	MakeJSON          string   `json:"-"`
	N8NJSON           string   `json:"-"`
}

// BlueprintJSON returns the importable document for the requested platform.
func (t Template) BlueprintJSON(platform domain.Platform) string {
	if platform == domain.PlatformMake {
		return t.MakeJSON
	}
	return t.N8NJSON
}

// Library is the static catalog of templates.
type Library struct {
	templates []Template
}

func NewLibrary() *Library {
	return &Library{templates: catalog}
}

// All lists every template in catalog order.
func (l *Library) All() []Template {
	out := make([]Template, len(l.templates))
	copy(out, l.templates)
	return out
}

// Get returns a template by exact name.
func (l *Library) Get(name string) (Template, error) {
	for _, t := range l.templates {
		if t.Name == name {
			return t, nil
		}
	}
	return Template{}, fmt.Errorf("%w: %q", domain.ErrTemplateNotFound, name)
}

// Match reports whether a free-text task description asks for a template,
// either by mentioning its name or through the "use template:" prefix.
func (l *Library) Match(taskDescription string) (Template, bool) {
	task := strings.ToLower(strings.TrimSpace(taskDescription))

	for _, t := range l.templates {
		name := strings.ToLower(t.Name)
		if strings.Contains(task, name) || strings.Contains(name, task) {
			return t, true
		}
	}

	if rest, ok := strings.CutPrefix(task, "use template:"); ok {
		rest = strings.TrimSpace(rest)
		for _, t := range l.templates {
			if strings.Contains(rest, strings.ToLower(t.Name)) {
				return t, true
			}
		}
	}

	return Template{}, false
}

// SetupInstructionsFor appends the platform-specific import walkthrough to a
// template's base setup instructions.
func SetupInstructionsFor(t Template, platform domain.Platform) string {
	if platform == domain.PlatformMake {
		return t.SetupInstructions + "\n\n" + makeImportGuide
	}
	return t.SetupInstructions + "\n\n" + n8nImportGuide
}

const makeImportGuide = `**Make.com Import Instructions:**
1. Log in to your Make.com account
2. Click "Create a new scenario"
3. Click the "..." menu in the top right
4. Select "Import Blueprint"
5. Copy the JSON template above
6. Paste it into the import dialog
7. Click "Save" to import the blueprint
8. Follow the connection prompts for each app
9. Test the scenario before activating
10. Turn on the scenario to run automatically`

const n8nImportGuide = `**n8n Import Instructions:**
1. Open your n8n instance
2. Click the "+" to create a new workflow
3. Click the "..." menu in the top right
4. Select "Import from JSON"
5. Copy the JSON template above
6. Paste it into the import dialog
7. Click "Import" to load the workflow
8. Configure credentials for each node
9. Test the workflow execution
10. Activate the workflow`
