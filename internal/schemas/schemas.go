// Package schemas structurally validates inbound blueprint documents before
// they reach the conversion engine, so shape mismatches surface as clear
// client errors instead of degraded conversions.
package schemas

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/autoflow/autoflow/pkg/domain"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed make_scenario.json
var makeSchemaJSON string

//go:embed n8n_workflow.json
var n8nSchemaJSON string

var (
	makeSchema = jsonschema.MustCompileString("make_scenario.json", makeSchemaJSON)
	n8nSchema  = jsonschema.MustCompileString("n8n_workflow.json", n8nSchemaJSON)
)

// Validate checks raw blueprint JSON against the declared platform's
// structural schema.
func Validate(platform domain.Platform, data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidBlueprint, err)
	}

	schema := n8nSchema
	if platform == domain.PlatformMake {
		schema = makeSchema
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBlueprintMismatch, err)
	}
	return nil
}
