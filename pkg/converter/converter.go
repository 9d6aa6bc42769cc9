package converter

import (
	"encoding/json"
	"fmt"

	"github.com/autoflow/autoflow/pkg/domain"

	"github.com/gosimple/slug"
	"github.com/rs/zerolog/log"
)

// Converter rebuilds a blueprint of one platform as the equivalent document of
// the other, preserving node order and re-linking the pipeline as a linear
// chain.
type Converter struct {
	registry *Registry
}

type ConverterDependencies struct {
	Registry *Registry
}

func NewConverter(deps ConverterDependencies) *Converter {
	return &Converter{
		registry: deps.Registry,
	}
}

// Convert translates a parsed blueprint into the target platform's document
// shape. It never returns an error: any failure during conversion is reported
// through a ConversionResult with Success=false.
func (c *Converter) Convert(bp domain.Blueprint, target domain.Platform) (result domain.ConversionResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("Blueprint conversion panicked")
			result = domain.ConversionResult{
				Success:         false,
				ConvertedJSON:   "",
				Warnings:        []string{fmt.Sprintf("Conversion failed: %v", r)},
				FallbackModules: []string{},
				Comments:        []string{},
			}
		}
	}()

	if bp.BlueprintPlatform() == target {
		return domain.ConversionResult{
			Success:         false,
			Warnings:        []string{fmt.Sprintf("Conversion failed: %v", domain.ErrSamePlatform)},
			FallbackModules: []string{},
			Comments:        []string{},
		}
	}

	switch doc := bp.(type) {
	case *domain.MakeScenario:
		return c.makeToN8N(doc)
	case *domain.N8NWorkflow:
		return c.n8nToMake(doc)
	default:
		return domain.ConversionResult{
			Success:         false,
			Warnings:        []string{fmt.Sprintf("Conversion failed: unsupported blueprint type %T", bp)},
			FallbackModules: []string{},
			Comments:        []string{},
		}
	}
}

func (c *Converter) makeToN8N(scenario *domain.MakeScenario) domain.ConversionResult {
	warnings := []string{}
	fallbackModules := []string{}
	comments := []string{}

	name := scenario.Name
	if name == "" {
		name = "Converted Workflow"
	}

	nodes := make([]domain.N8NNode, 0, len(scenario.Flow))
	nodeNames := make([]string, 0, len(scenario.Flow))

	for i, module := range scenario.Flow {
		moduleID := module.ID
		if moduleID == 0 {
			moduleID = i + 1
		}

		nodeType, fallback := c.registry.Resolve(domain.PlatformMake, domain.PlatformN8N, module.Module)
		if fallback {
			fallbackModules = append(fallbackModules, fmt.Sprintf("Module '%s' converted to HTTP Request", module.Module))
			warnings = append(warnings, fmt.Sprintf("No direct n8n equivalent for '%s', using HTTP Request", module.Module))
		}

		if len(module.Filter) > 0 {
			warnings = append(warnings, fmt.Sprintf("Conditional filter on module %d is not preserved; output chain is linear", moduleID))
		}

		category := c.registry.CategoryOf(domain.PlatformMake, module.Module)

		node := domain.N8NNode{
			Parameters:  ToN8NParameters(category, module.Parameters, module.Mapper),
			Name:        fmt.Sprintf("Step %d", moduleID),
			Type:        nodeType,
			TypeVersion: 1,
			Position:    [2]int{240 + i*220, 300},
		}

		if c.registry.RequiresCredentials(nodeType) {
			node.Credentials = c.registry.CredentialBlock(nodeType)
		}

		nodes = append(nodes, node)
		nodeNames = append(nodeNames, node.Name)
	}

	connections := map[string]domain.NodeConnections{}
	for i := 0; i < len(nodeNames)-1; i++ {
		connections[nodeNames[i]] = domain.NodeConnections{
			Main: [][]string{{nodeNames[i+1]}},
		}
	}

	workflow := domain.N8NWorkflow{
		Name:        name,
		Nodes:       nodes,
		Connections: connections,
		Active:      false,
		Settings:    map[string]any{"executionOrder": "v1"},
		VersionID:   "1",
		Meta:        map[string]any{"templateCredsSetupCompleted": false},
		ID:          slug.Make(name),
	}

	comments = append(comments, "Converted from Make.com scenario")
	comments = append(comments, fallbackModules...)

	return assembleResult(workflow, warnings, fallbackModules, comments)
}

func (c *Converter) n8nToMake(workflow *domain.N8NWorkflow) domain.ConversionResult {
	warnings := []string{}
	fallbackModules := []string{}
	comments := []string{}

	name := workflow.Name
	if name == "" {
		name = "Converted Scenario"
	}

	for source, conns := range workflow.Connections {
		if downstreamCount(conns) > 1 {
			warnings = append(warnings, fmt.Sprintf("Node '%s' fans out to multiple branches; output chain is linear", source))
		}
	}

	flow := make([]domain.MakeModule, 0, len(workflow.Nodes))

	for i, node := range workflow.Nodes {
		makeModule, fallback := c.registry.Resolve(domain.PlatformN8N, domain.PlatformMake, node.Type)
		if fallback {
			fallbackModules = append(fallbackModules, fmt.Sprintf("Node '%s' converted to HTTP module", node.Type))
			warnings = append(warnings, fmt.Sprintf("No direct Make.com equivalent for '%s', using HTTP module", node.Type))
		}

		category := c.registry.CategoryOf(domain.PlatformN8N, node.Type)

		flow = append(flow, domain.MakeModule{
			ID:         i + 1,
			Module:     makeModule,
			Version:    1,
			Parameters: ToMakeParameters(category, node.Parameters),
			Mapper:     map[string]any{},
			Metadata: map[string]any{
				"designer": map[string]any{
					"x": i * 300,
					"y": 0,
				},
			},
		})
	}

	scenario := domain.MakeScenario{
		Name: name,
		Flow: flow,
		Metadata: map[string]any{
			"instant": false,
			"version": 1,
			"scenario": map[string]any{
				"roundtrips": 1,
				"maxErrors":  3,
				"autoCommit": true,
				"sequential": false,
			},
			"designer": map[string]any{"orphans": []any{}},
			"zone":     "eu1.make.com",
		},
	}

	comments = append(comments, "Converted from n8n workflow")
	comments = append(comments, fallbackModules...)

	return assembleResult(scenario, warnings, fallbackModules, comments)
}

func downstreamCount(conns domain.NodeConnections) int {
	total := 0
	for _, branch := range conns.Main {
		total += len(branch)
	}
	return total
}

func assembleResult(doc any, warnings, fallbackModules, comments []string) domain.ConversionResult {
	encoded, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return domain.ConversionResult{
			Success:         false,
			Warnings:        append(warnings, fmt.Sprintf("Conversion failed: %v", err)),
			FallbackModules: fallbackModules,
			Comments:        comments,
		}
	}

	return domain.ConversionResult{
		Success:         true,
		ConvertedJSON:   string(encoded),
		Warnings:        warnings,
		FallbackModules: fallbackModules,
		Comments:        comments,
	}
}
