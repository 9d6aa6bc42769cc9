package domain

import (
	"encoding/json"
	"fmt"
)

// Blueprint is a platform-specific automation pipeline document. The two
// concrete variants are MakeScenario and N8NWorkflow; code that needs
// per-variant behavior type-switches on them.
type Blueprint interface {
	BlueprintPlatform() Platform
	NodeCount() int
}

// MakeScenario is the Make.com document shape: an ordered flow of modules
// with implicit linear connections.
type MakeScenario struct {
	Name     string         `json:"name"`
	Flow     []MakeModule   `json:"flow"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type MakeModule struct {
	ID         int            `json:"id"`
	Module     string         `json:"module"`
	Version    int            `json:"version,omitempty"`
	Parameters map[string]any `json:"parameters,omitempty"`
	Mapper     map[string]any `json:"mapper,omitempty"`
	Filter     map[string]any `json:"filter,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

func (s *MakeScenario) BlueprintPlatform() Platform { return PlatformMake }
func (s *MakeScenario) NodeCount() int              { return len(s.Flow) }

// ModuleByID returns the module with the given id.
func (s *MakeScenario) ModuleByID(id int) (*MakeModule, bool) {
	for i := range s.Flow {
		if s.Flow[i].ID == id {
			return &s.Flow[i], true
		}
	}
	return nil, false
}

// N8NWorkflow is the n8n document shape: nodes keyed by display name with an
// explicit adjacency map of connections.
type N8NWorkflow struct {
	Name        string                     `json:"name"`
	Nodes       []N8NNode                  `json:"nodes"`
	Connections map[string]NodeConnections `json:"connections"`
	Active      bool                       `json:"active"`
	Settings    map[string]any             `json:"settings,omitempty"`
	VersionID   string                     `json:"versionId,omitempty"`
	Meta        map[string]any             `json:"meta,omitempty"`
	ID          string                     `json:"id,omitempty"`
}

type N8NNode struct {
	Parameters  map[string]any `json:"parameters"`
	Name        string         `json:"name"`
	Type        string         `json:"type"`
	TypeVersion int            `json:"typeVersion"`
	Position    [2]int         `json:"position"`
	Credentials map[string]any `json:"credentials,omitempty"`
}

// NodeConnections lists the downstream node names per output of a node.
type NodeConnections struct {
	Main [][]string `json:"main"`
}

func (w *N8NWorkflow) BlueprintPlatform() Platform { return PlatformN8N }
func (w *N8NWorkflow) NodeCount() int              { return len(w.Nodes) }

// NodeByName returns the node with the given display name.
func (w *N8NWorkflow) NodeByName(name string) (*N8NNode, bool) {
	for i := range w.Nodes {
		if w.Nodes[i].Name == name {
			return &w.Nodes[i], true
		}
	}
	return nil, false
}

// ParseBlueprint decodes raw JSON into the document variant for the given
// platform.
func ParseBlueprint(platform Platform, data []byte) (Blueprint, error) {
	switch platform {
	case PlatformMake:
		var s MakeScenario
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidBlueprint, err)
		}
		return &s, nil
	case PlatformN8N:
		var w N8NWorkflow
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidBlueprint, err)
		}
		return &w, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlatform, platform)
	}
}

// Clone returns a structurally independent copy of the scenario. Patch
// operations must never alias maps with the caller's document.
func (s *MakeScenario) Clone() *MakeScenario {
	out := &MakeScenario{
		Name:     s.Name,
		Metadata: cloneMap(s.Metadata),
	}
	if s.Flow != nil {
		out.Flow = make([]MakeModule, len(s.Flow))
		for i, m := range s.Flow {
			out.Flow[i] = MakeModule{
				ID:         m.ID,
				Module:     m.Module,
				Version:    m.Version,
				Parameters: cloneMap(m.Parameters),
				Mapper:     cloneMap(m.Mapper),
				Filter:     cloneMap(m.Filter),
				Metadata:   cloneMap(m.Metadata),
			}
		}
	}
	return out
}

// Clone returns a structurally independent copy of the workflow.
func (w *N8NWorkflow) Clone() *N8NWorkflow {
	out := &N8NWorkflow{
		Name:      w.Name,
		Active:    w.Active,
		Settings:  cloneMap(w.Settings),
		VersionID: w.VersionID,
		Meta:      cloneMap(w.Meta),
		ID:        w.ID,
	}
	if w.Nodes != nil {
		out.Nodes = make([]N8NNode, len(w.Nodes))
		for i, n := range w.Nodes {
			out.Nodes[i] = N8NNode{
				Parameters:  cloneMap(n.Parameters),
				Name:        n.Name,
				Type:        n.Type,
				TypeVersion: n.TypeVersion,
				Position:    n.Position,
				Credentials: cloneMap(n.Credentials),
			}
		}
	}
	if w.Connections != nil {
		out.Connections = make(map[string]NodeConnections, len(w.Connections))
		for name, conns := range w.Connections {
			main := make([][]string, len(conns.Main))
			for i, branch := range conns.Main {
				main[i] = append([]string(nil), branch...)
			}
			out.Connections[name] = NodeConnections{Main: main}
		}
	}
	return out
}

func cloneMap(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch tv := v.(type) {
	case map[string]any:
		return cloneMap(tv)
	case []any:
		out := make([]any, len(tv))
		for i, item := range tv {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
