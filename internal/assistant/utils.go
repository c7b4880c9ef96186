package assistant

import (
	"fmt"
	"strings"
)

// extractCode pulls python code out of a fenced markdown block. When
// the response carries no fences at all, the whole response is treated
// as code, which is what happens when the model follows the "code
// only" instruction literally.
func extractCode(response string) string {
	if idx := strings.Index(response, "```python"); idx != -1 {
		start := idx + len("```python")
		if end := strings.Index(response[start:], "```"); end != -1 {
			return strings.TrimSpace(response[start : start+end])
		}
	}

	if idx := strings.Index(response, "```"); idx != -1 {
		start := idx + len("```")
		if end := strings.Index(response[start:], "```"); end != -1 {
			return strings.TrimSpace(response[start : start+end])
		}
	}

	return strings.TrimSpace(response)
}

// extractExplanation returns the prose surrounding the first and last
// code fences, or empty when the response is code only.
func extractExplanation(response string) string {
	if !strings.Contains(response, "```") {
		return ""
	}

	var parts []string

	if first := strings.Index(response, "```"); first > 0 {
		if before := strings.TrimSpace(response[:first]); before != "" {
			parts = append(parts, before)
		}
	}

	if last := strings.LastIndex(response, "```"); last != -1 {
		afterStart := strings.Index(response[last:], "\n")
		if afterStart != -1 {
			if after := strings.TrimSpace(response[last+afterStart:]); after != "" {
				parts = append(parts, after)
			}
		}
	}

	return strings.Join(parts, "\n\n")
}

// enhancePrompt appends environment context to the user prompt so the
// model sees what is on screen in Revit.
func enhancePrompt(prompt string, context map[string]any) string {
	if len(context) == 0 {
		return prompt
	}

	var parts []string

	if view, ok := context["active_view"].(string); ok && view != "" {
		parts = append(parts, fmt.Sprintf("Active view: %s", view))
	}

	if selected, ok := context["selected_elements"].([]any); ok {
		parts = append(parts, fmt.Sprintf("Selected elements: %d", len(selected)))
	}

	if docInfo, ok := context["document_info"].(map[string]any); ok {
		if workshared, ok := docInfo["is_workshared"].(bool); ok {
			parts = append(parts, fmt.Sprintf("Workshared: %t", workshared))
		}
	}

	if len(parts) == 0 {
		return prompt
	}

	return fmt.Sprintf("%s\n\nContext:\n%s", prompt, strings.Join(parts, "\n"))
}

// checkWarnings inspects generated code for things the user should
// know before running it. Advisory only, never blocks execution.
func checkWarnings(code string, context map[string]any) []string {
	var warnings []string

	codeLower := strings.ToLower(code)

	if strings.Contains(codeLower, "delete") {
		warnings = append(warnings, "Code contains delete operations - ensure you have backups")
	}

	if !strings.Contains(codeLower, "transaction") {
		warnings = append(warnings, "Code may not be wrapped in a transaction - changes might not persist")
	}

	if isWorkshared(context) && !strings.Contains(codeLower, "worksharing") {
		warnings = append(warnings, "This is a workshared model - ensure proper element ownership")
	}

	return warnings
}

func isWorkshared(context map[string]any) bool {
	if context == nil {
		return false
	}

	if workshared, ok := context["is_workshared"].(bool); ok {
		return workshared
	}

	if docInfo, ok := context["document_info"].(map[string]any); ok {
		if workshared, ok := docInfo["is_workshared"].(bool); ok {
			return workshared
		}
	}

	return false
}
