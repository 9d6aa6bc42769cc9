// Package diagnostics statically analyzes a blueprint against per-category
// required-field rules and proposes fixes for what it finds.
package diagnostics

import (
	"fmt"
	"strconv"

	"github.com/autoflow/autoflow/pkg/converter"
	"github.com/autoflow/autoflow/pkg/domain"
)

// requiredField is one category-specific structural check. Only the three
// most error-prone integration categories are covered; other nodes pass
// unconditionally.
type requiredField struct {
	key             string
	checkMapper     bool // also accept the field in the Make mapper map
	makeParamKey    string
	makeDescription string
	makeFix         string
	n8nDescription  string
	n8nFix          string
}

var requiredFields = map[converter.Category]requiredField{
	converter.CategorySpreadsheet: {
		key:             "sheetId",
		makeParamKey:    "spreadsheetId",
		makeDescription: "Missing required spreadsheet ID",
		makeFix:         "Add spreadsheet ID: {{connection.drive.spreadsheetId}}",
		n8nDescription:  "Missing required sheet ID",
		n8nFix:          "Add sheetId parameter with spreadsheet ID",
	},
	converter.CategoryAICompletion: {
		key:             "model",
		makeParamKey:    "model",
		makeDescription: "Missing required model parameter",
		makeFix:         "Add model parameter: 'gpt-4' or 'gpt-3.5-turbo'",
		n8nDescription:  "Missing required model parameter",
		n8nFix:          "Add model parameter: 'gpt-4' or 'gpt-3.5-turbo'",
	},
	converter.CategoryHTTP: {
		key:             "url",
		makeParamKey:    "url",
		checkMapper:     true,
		makeDescription: "Missing required URL parameter",
		makeFix:         "Add URL in mapper or parameters",
		n8nDescription:  "Missing required URL parameter",
		n8nFix:          "Add url parameter with target endpoint",
	},
}

// Analyzer walks a blueprint's node list and flags structurally missing
// required fields.
type Analyzer struct {
	registry *converter.Registry
}

type AnalyzerDependencies struct {
	Registry *converter.Registry
}

func NewAnalyzer(deps AnalyzerDependencies) *Analyzer {
	return &Analyzer{
		registry: deps.Registry,
	}
}

// Analyze returns the findings for a blueprint in node order. It never fails;
// a clean blueprint yields an empty list.
func (a *Analyzer) Analyze(bp domain.Blueprint) []domain.Finding {
	findings := []domain.Finding{}

	switch doc := bp.(type) {
	case *domain.MakeScenario:
		for _, module := range doc.Flow {
			rule, ok := requiredFields[a.registry.CategoryOf(domain.PlatformMake, module.Module)]
			if !ok {
				continue
			}

			present := fieldPresent(module.Parameters, rule.makeParamKey)
			if rule.checkMapper {
				present = present || fieldPresent(module.Mapper, rule.key)
			}
			if present {
				continue
			}

			findings = append(findings, domain.Finding{
				Type:         domain.FindingMissingParameter,
				NodeID:       moduleIDString(module),
				NodeName:     module.Module,
				Description:  rule.makeDescription,
				SuggestedFix: rule.makeFix,
				Severity:     domain.SeverityCritical,
			})
		}

	case *domain.N8NWorkflow:
		for _, node := range doc.Nodes {
			rule, ok := requiredFields[a.registry.CategoryOf(domain.PlatformN8N, node.Type)]
			if !ok {
				continue
			}

			if fieldPresent(node.Parameters, rule.key) {
				continue
			}

			findings = append(findings, domain.Finding{
				Type:         domain.FindingMissingParameter,
				NodeID:       nodeName(node),
				NodeName:     node.Type,
				Description:  rule.n8nDescription,
				SuggestedFix: rule.n8nFix,
				Severity:     domain.SeverityCritical,
			})
		}
	}

	return findings
}

func fieldPresent(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok || v == nil {
		return false
	}
	if s, isString := v.(string); isString && s == "" {
		return false
	}
	return true
}

func moduleIDString(module domain.MakeModule) string {
	if module.ID == 0 {
		return "unknown"
	}
	return strconv.Itoa(module.ID)
}

func nodeName(node domain.N8NNode) string {
	if node.Name == "" {
		return "unknown"
	}
	return node.Name
}

// Summary renders findings into the bullet form used by dialogue replies.
func Summary(findings []domain.Finding) []string {
	lines := make([]string, 0, len(findings))
	for _, f := range findings {
		lines = append(lines, fmt.Sprintf("• %s - %s", f.Description, f.SuggestedFix))
	}
	return lines
}
