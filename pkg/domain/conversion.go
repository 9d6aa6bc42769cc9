package domain

// ConversionResult is the outcome of one blueprint conversion. It is built
// once per call and immutable after construction; a failed conversion carries
// an empty document and the failure text in Warnings.
type ConversionResult struct {
	Success         bool     `json:"success"`
	ConvertedJSON   string   `json:"converted_json"`
	Warnings        []string `json:"warnings"`
	FallbackModules []string `json:"fallback_modules"`
	Comments        []string `json:"comments"`
}
