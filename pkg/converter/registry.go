package converter

import (
	"strings"

	"github.com/autoflow/autoflow/pkg/domain"
)

// Category is the integration family of an action, resolved once at registry
// build time. It selects the parameter translation and validation rules.
type Category string

const (
	CategorySpreadsheet  Category = "spreadsheet"
	CategoryAICompletion Category = "ai_completion"
	CategoryHTTP         Category = "http"
	CategoryGeneric      Category = "generic"
)

// Generic pass-through identifiers used when no mapping exists for an action.
const (
	FallbackN8NType    = "n8n-nodes-base.httpRequest"
	FallbackMakeModule = "http:ActionSendData"
)

// mapping relates a Make module identifier to its n8n node type. Several Make
// identifiers may share one n8n node type; the entry marked canonical wins the
// n8n-to-Make direction for that node type.
type mapping struct {
	Make                string
	N8N                 string
	Category            Category
	RequiresCredentials bool
	Canonical           bool
}

var mappings = []mapping{
	// Google services
	{Make: "google-sheets:WatchRows", N8N: "n8n-nodes-base.googleSheetsTrigger", Category: CategorySpreadsheet, RequiresCredentials: true, Canonical: true},
	{Make: "google-sheets:SearchRows", N8N: "n8n-nodes-base.googleSheets", Category: CategorySpreadsheet, RequiresCredentials: true},
	{Make: "google-sheets:AddRow", N8N: "n8n-nodes-base.googleSheets", Category: CategorySpreadsheet, RequiresCredentials: true, Canonical: true},
	{Make: "google-sheets:UpdateRow", N8N: "n8n-nodes-base.googleSheets", Category: CategorySpreadsheet, RequiresCredentials: true},
	{Make: "google-drive:WatchFiles", N8N: "n8n-nodes-base.googleDriveTrigger", Canonical: true},
	{Make: "google-drive:UploadFile", N8N: "n8n-nodes-base.googleDrive", Canonical: true},

	// OpenAI
	{Make: "openai:CreateChatCompletion", N8N: "n8n-nodes-base.openAi", Category: CategoryAICompletion, RequiresCredentials: true, Canonical: true},
	{Make: "openai:CreateImage", N8N: "n8n-nodes-base.openAi", Category: CategoryAICompletion, RequiresCredentials: true},
	{Make: "openai:CreateCompletion", N8N: "n8n-nodes-base.openAi", Category: CategoryAICompletion, RequiresCredentials: true},

	// HTTP and webhooks
	{Make: "http:ActionSendData", N8N: "n8n-nodes-base.httpRequest", Category: CategoryHTTP, Canonical: true},
	{Make: "http:ActionSendDataOAuth2", N8N: "n8n-nodes-base.httpRequest", Category: CategoryHTTP},
	{Make: "webhook:CustomWebHook", N8N: "n8n-nodes-base.webhook", Canonical: true},

	// WordPress
	{Make: "wordpress:CreatePost", N8N: "n8n-nodes-base.wordpress", RequiresCredentials: true, Canonical: true},
	{Make: "wordpress:UpdatePost", N8N: "n8n-nodes-base.wordpress", RequiresCredentials: true},
	{Make: "wordpress:GetPost", N8N: "n8n-nodes-base.wordpress", RequiresCredentials: true},

	// Social media. Instagram has no native n8n node, so it rides the HTTP
	// node in the forward direction only.
	{Make: "instagram:CreateMedia", N8N: "n8n-nodes-base.httpRequest"},
	{Make: "facebook:CreatePost", N8N: "n8n-nodes-base.facebookGraphApi", Canonical: true},
	{Make: "twitter:CreateTweet", N8N: "n8n-nodes-base.twitter", Canonical: true},
	{Make: "youtube:UploadVideo", N8N: "n8n-nodes-base.youTube", Canonical: true},

	// Built-in tools
	{Make: "builtin:Sleep", N8N: "n8n-nodes-base.wait", Canonical: true},
	{Make: "builtin:SetVariable", N8N: "n8n-nodes-base.set", Canonical: true},
	{Make: "builtin:TextAggregator", N8N: "n8n-nodes-base.merge", Canonical: true},
	{Make: "json:ParseJSON", N8N: "n8n-nodes-base.code", Canonical: true},

	// Email
	{Make: "email:ActionSendEmail", N8N: "n8n-nodes-base.emailSend", Canonical: true},
	{Make: "gmail:ActionSendEmail", N8N: "n8n-nodes-base.gmail", RequiresCredentials: true, Canonical: true},
	{Make: "gmail:TriggerWatchEmails", N8N: "n8n-nodes-base.gmail", RequiresCredentials: true},

	// CRM
	{Make: "hubspot:CreateContact", N8N: "n8n-nodes-base.hubspot", Canonical: true},
	{Make: "hubspot:UpdateContact", N8N: "n8n-nodes-base.hubspot"},
	{Make: "hubspot:SearchContacts", N8N: "n8n-nodes-base.hubspot"},
}

// reverseOnly covers n8n node types with no forward-table counterpart.
var reverseOnly = []mapping{
	{Make: "webhook:CustomWebHook", N8N: "n8n-nodes-base.start"},
	{Make: "builtin:Router", N8N: "n8n-nodes-base.if"},
}

// n8nCredentialBlocks holds the credential placeholder attached to converted
// nodes whose type needs a declared credential before import.
var n8nCredentialBlocks = map[string]map[string]any{
	"n8n-nodes-base.googleSheets":        {"googleSheetsOAuth2Api": map[string]any{"id": "google_sheets", "name": "Google Sheets"}},
	"n8n-nodes-base.googleSheetsTrigger": {"googleSheetsOAuth2Api": map[string]any{"id": "google_sheets", "name": "Google Sheets"}},
	"n8n-nodes-base.openAi":              {"openAiApi": map[string]any{"id": "openai", "name": "OpenAI"}},
	"n8n-nodes-base.wordpress":           {"wordpressApi": map[string]any{"id": "wordpress", "name": "WordPress"}},
	"n8n-nodes-base.gmail":               {"gmailOAuth2": map[string]any{"id": "gmail", "name": "Gmail"}},
}

// Registry holds the bidirectional action identifier mapping. Both direction
// tables are built from the same curated entry list, so the non-injective
// groups resolve through explicit canonical marks instead of insertion order.
type Registry struct {
	makeToN8N map[string]mapping
	n8nToMake map[string]mapping
}

func NewRegistry() *Registry {
	r := &Registry{
		makeToN8N: make(map[string]mapping, len(mappings)),
		n8nToMake: make(map[string]mapping, len(mappings)+len(reverseOnly)),
	}

	for _, m := range mappings {
		r.makeToN8N[m.Make] = m

		existing, ok := r.n8nToMake[m.N8N]
		if !ok || (m.Canonical && !existing.Canonical) {
			r.n8nToMake[m.N8N] = m
		}
	}

	for _, m := range reverseOnly {
		r.n8nToMake[m.N8N] = m
	}

	return r
}

// Resolve maps an action identifier from the source platform onto the target
// platform. Unmapped identifiers resolve to the target's generic HTTP
// pass-through action with fallback=true; Resolve never fails.
func (r *Registry) Resolve(source, target domain.Platform, identifier string) (string, bool) {
	if source == domain.PlatformMake && target == domain.PlatformN8N {
		if m, ok := r.makeToN8N[identifier]; ok {
			return m.N8N, false
		}
		return FallbackN8NType, true
	}

	if m, ok := r.n8nToMake[identifier]; ok {
		return m.Make, false
	}
	return FallbackMakeModule, true
}

// RequiresCredentials reports whether a converted n8n node of the given type
// needs a credential placeholder block.
func (r *Registry) RequiresCredentials(n8nType string) bool {
	_, ok := n8nCredentialBlocks[n8nType]
	return ok
}

// CredentialBlock returns the placeholder credentials for an n8n node type.
func (r *Registry) CredentialBlock(n8nType string) map[string]any {
	return n8nCredentialBlocks[n8nType]
}

// CategoryOf returns the category of an action identifier. Known identifiers
// carry an explicit category on their registry entry; unknown ones fall back
// to substring classification so that unmapped actions still pick up their
// family's translation and validation rules.
func (r *Registry) CategoryOf(platform domain.Platform, identifier string) Category {
	var m mapping
	var ok bool
	if platform == domain.PlatformMake {
		m, ok = r.makeToN8N[identifier]
	} else {
		m, ok = r.n8nToMake[identifier]
	}
	if ok {
		if m.Category == "" {
			return CategoryGeneric
		}
		return m.Category
	}
	return inferCategory(identifier)
}

// inferCategory classifies an identifier by substring, in priority order.
func inferCategory(identifier string) Category {
	lower := strings.ToLower(identifier)
	switch {
	case strings.Contains(lower, "sheet"):
		return CategorySpreadsheet
	case strings.Contains(lower, "openai"):
		return CategoryAICompletion
	case strings.Contains(lower, "http"):
		return CategoryHTTP
	default:
		return CategoryGeneric
	}
}
