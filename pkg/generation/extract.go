package generation

import "strings"

// ExtractJSONBlock pulls the contents of the first fenced ```json block out
// of model output.
func ExtractJSONBlock(content string) string {
	var out strings.Builder
	inBlock := false

	for _, line := range strings.Split(content, "\n") {
		switch {
		case strings.Contains(line, "```json"):
			inBlock = true
		case strings.Contains(line, "```") && inBlock:
			return strings.TrimSpace(out.String())
		case inBlock:
			out.WriteString(line)
			out.WriteString("\n")
		}
	}

	return strings.TrimSpace(out.String())
}

// ExtractNotes returns everything after the conversion-notes heading.
func ExtractNotes(content string) string {
	var out strings.Builder
	inNotes := false

	for _, line := range strings.Split(content, "\n") {
		if strings.Contains(line, "CONVERSION NOTES") {
			inNotes = true
			continue
		}
		if inNotes {
			out.WriteString(line)
			out.WriteString("\n")
		}
	}

	return strings.TrimSpace(out.String())
}
