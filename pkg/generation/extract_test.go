package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "fenced json block",
			content:  "Here is the conversion:\n```json\n{\"name\": \"Test\"}\n```\nDone.",
			expected: `{"name": "Test"}`,
		},
		{
			name:     "multiline document",
			content:  "```json\n{\n  \"name\": \"Test\",\n  \"nodes\": []\n}\n```",
			expected: "{\n  \"name\": \"Test\",\n  \"nodes\": []\n}",
		},
		{
			name:     "no fences yields everything collected",
			content:  "no code here",
			expected: "",
		},
		{
			name:     "unterminated block returns collected lines",
			content:  "```json\n{\"name\": \"Test\"}",
			expected: `{"name": "Test"}`,
		},
		{
			name:     "only first block is returned",
			content:  "```json\n{\"a\": 1}\n```\n```json\n{\"b\": 2}\n```",
			expected: `{"a": 1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractJSONBlock(tt.content))
		})
	}
}

func TestExtractNotes(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "notes after heading",
			content:  "```json\n{}\n```\n**CONVERSION NOTES:**\n- Mapped webhook to trigger\n- Dropped one filter",
			expected: "- Mapped webhook to trigger\n- Dropped one filter",
		},
		{
			name:     "no heading yields empty",
			content:  "just a response",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractNotes(tt.content))
		})
	}
}
