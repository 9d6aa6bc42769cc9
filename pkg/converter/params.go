package converter

import "strings"

// ToN8NParameters rewrites a Make module's parameters and mapper into the n8n
// naming convention for the given category. Category paths copy only their
// known fields; the generic path unions parameters and mapper, with mapper
// winning on key collision. Lossy drops in the category paths are surfaced as
// warnings by the converter, not here.
func ToN8NParameters(category Category, params, mapper map[string]any) map[string]any {
	converted := map[string]any{}

	switch category {
	case CategorySpreadsheet:
		if v, ok := params["spreadsheetId"]; ok {
			converted["sheetId"] = v
		}
		if _, ok := params["worksheetId"]; ok {
			// n8n addresses worksheets by range, not id.
			converted["range"] = "A:Z"
		}

	case CategoryAICompletion:
		if v, ok := params["model"]; ok {
			converted["model"] = v
		}
		if v, ok := params["max_tokens"]; ok {
			converted["maxTokens"] = v
		}
		if v, ok := mapper["messages"]; ok {
			converted["messages"] = map[string]any{"values": v}
		}

	case CategoryHTTP:
		if v, ok := mapper["url"]; ok {
			converted["url"] = v
		}
		if v, ok := params["method"].(string); ok {
			converted["method"] = strings.ToUpper(v)
		}

	default:
		for k, v := range params {
			converted[k] = v
		}
		for k, v := range mapper {
			converted[k] = v
		}
	}

	return converted
}

// ToMakeParameters rewrites an n8n node's parameters into the Make naming
// convention for the given category.
func ToMakeParameters(category Category, params map[string]any) map[string]any {
	converted := map[string]any{}

	switch category {
	case CategorySpreadsheet:
		if v, ok := params["sheetId"]; ok {
			converted["spreadsheetId"] = v
		}
		if _, ok := params["range"]; ok {
			converted["worksheetId"] = "gid=0"
		}

	case CategoryAICompletion:
		if v, ok := params["model"]; ok {
			converted["model"] = v
		}
		if v, ok := params["maxTokens"]; ok {
			converted["max_tokens"] = v
		}

	case CategoryHTTP:
		if v, ok := params["url"]; ok {
			converted["url"] = v
		}
		if v, ok := params["method"].(string); ok {
			converted["method"] = strings.ToLower(v)
		}

	default:
		for k, v := range params {
			converted[k] = v
		}
	}

	return converted
}
