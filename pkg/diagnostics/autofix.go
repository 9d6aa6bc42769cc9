package diagnostics

import (
	"strings"

	"github.com/autoflow/autoflow/pkg/domain"
)

// Placeholder values inserted by Fix for the known finding keywords.
const (
	placeholderMakeSpreadsheetID = "{{connection.drive.spreadsheetId}}"
	placeholderN8NSheetID        = "your-spreadsheet-id"
	placeholderModel             = "gpt-4"
	placeholderURL               = "https://api.example.com"
)

// Fix returns a patched copy of the blueprint with placeholder values set for
// each finding whose description matches a known keyword. The input document
// is never mutated; only nodes referenced by a finding change. Findings with
// no matching keyword are skipped.
func (a *Analyzer) Fix(bp domain.Blueprint, findings []domain.Finding) domain.Blueprint {
	switch doc := bp.(type) {
	case *domain.MakeScenario:
		return fixMake(doc.Clone(), findings)
	case *domain.N8NWorkflow:
		return fixN8N(doc.Clone(), findings)
	default:
		return bp
	}
}

func fixMake(scenario *domain.MakeScenario, findings []domain.Finding) *domain.MakeScenario {
	for _, finding := range findings {
		if finding.Type != domain.FindingMissingParameter {
			continue
		}

		for i := range scenario.Flow {
			module := &scenario.Flow[i]
			if moduleIDString(*module) != finding.NodeID {
				continue
			}

			description := strings.ToLower(finding.Description)
			switch {
			case strings.Contains(description, "spreadsheet"):
				setField(&module.Parameters, "spreadsheetId", placeholderMakeSpreadsheetID)
			case strings.Contains(description, "model"):
				setField(&module.Parameters, "model", placeholderModel)
			case strings.Contains(description, "url"):
				setField(&module.Mapper, "url", placeholderURL)
			}
		}
	}

	return scenario
}

func fixN8N(workflow *domain.N8NWorkflow, findings []domain.Finding) *domain.N8NWorkflow {
	for _, finding := range findings {
		if finding.Type != domain.FindingMissingParameter {
			continue
		}

		for i := range workflow.Nodes {
			node := &workflow.Nodes[i]
			if node.Name != finding.NodeID {
				continue
			}

			description := strings.ToLower(finding.Description)
			switch {
			case strings.Contains(description, "sheet"):
				setField(&node.Parameters, "sheetId", placeholderN8NSheetID)
			case strings.Contains(description, "model"):
				setField(&node.Parameters, "model", placeholderModel)
			case strings.Contains(description, "url"):
				setField(&node.Parameters, "url", placeholderURL)
			}
		}
	}

	return workflow
}

func setField(m *map[string]any, key string, value any) {
	if *m == nil {
		*m = map[string]any{}
	}
	(*m)[key] = value
}
