package domain

// FindingType classifies a diagnostic finding.
type FindingType string

const (
	FindingMissingParameter FindingType = "missing_parameter"
	FindingCredentialError  FindingType = "credential_error"
	FindingUnknownType      FindingType = "unknown_type"
	FindingConnectionError  FindingType = "connection_error"
	FindingUnmappedAction   FindingType = "unmapped_action"
)

// Severity grades how urgently a finding must be addressed before the
// blueprint can run.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// Finding is one diagnostic result produced by blueprint analysis. Findings
// are transient per-call output, never persisted.
type Finding struct {
	Type         FindingType `json:"type"`
	NodeID       string      `json:"node_id"`
	NodeName     string      `json:"node_name"`
	Description  string      `json:"description"`
	SuggestedFix string      `json:"suggested_fix"`
	Severity     Severity    `json:"severity"`
}
