package generation

import (
	"fmt"
	"strings"

	"github.com/autoflow/autoflow/pkg/domain"
)

func platformLabel(p domain.Platform) string {
	if p == domain.PlatformMake {
		return "Make.com"
	}
	return "n8n"
}

func conversionPrompt(blueprintJSON string, source, target domain.Platform) string {
	srcLabel := platformLabel(source)
	tgtLabel := platformLabel(target)

	return fmt.Sprintf(`You are an expert no-code automation converter.

Convert this %[1]s automation blueprint to %[2]s format.

SOURCE PLATFORM: %[1]s
TARGET PLATFORM: %[2]s

SOURCE JSON:
%[3]s

Requirements:
1. Maintain the same workflow logic and functionality
2. Map equivalent modules/nodes between platforms
3. Preserve all data transformations and connections
4. Generate valid %[2]s JSON that can be imported
5. Include detailed conversion notes explaining any changes

Respond in this EXACT format:

**CONVERTED %[4]s BLUEPRINT:**

`+"```json"+`
[Provide the complete converted JSON here]
`+"```"+`

**CONVERSION NOTES:**
- List any module mappings that were changed
- Note any functionality differences
- Explain any manual adjustments needed
- Highlight any platform-specific features used

The converted JSON must be valid and importable into %[2]s.`,
		srcLabel, tgtLabel, blueprintJSON, strings.ToUpper(tgtLabel))
}

func generationSystemPrompt(platform domain.Platform) string {
	return fmt.Sprintf("You are an expert %s automation engineer. You must generate REAL, IMPORTABLE JSON that works in %[1]s.",
		platformLabel(platform))
}

func generationPrompt(task string, platform domain.Platform) string {
	return fmt.Sprintf(`Build a %s automation for this task:

%s

Respond with a single `+"```json"+` block containing the complete, importable blueprint. Use only real module/node identifiers.`,
		platformLabel(platform), task)
}
