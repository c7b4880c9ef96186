package assistant

import (
	"fmt"
	"strings"

	"codeberg.org/revbot/server/internal/retriever"
)

// assembles the complete system prompt with attributed documentation
// snippets appended after the core instructions
func buildSystemPrompt(docs []retriever.SearchResult) string {
	var builder strings.Builder

	builder.WriteString(getInstructions())

	if len(docs) > 0 {
		builder.WriteString("\n═══════════════════════════════════════════════════════════\n")
		builder.WriteString("RELEVANT DOCUMENTATION\n")
		builder.WriteString("═══════════════════════════════════════════════════════════\n\n")

		for _, doc := range docs {
			builder.WriteString("─────────────────────────────────────────\n")
			builder.WriteString(fmt.Sprintf("Source: %s\n", doc.Source()))
			builder.WriteString("─────────────────────────────────────────\n")
			builder.WriteString(doc.Snippet())
			builder.WriteString("\n\n")
		}
	}

	return builder.String()
}

// returns the core instructions
func getInstructions() string {
	return `You are an expert Revit API developer assistant. Your role is to help users write Python code for Revit automation using the Revit API and pyRevit.

Key guidelines:
1. Generate clean, well-structured Python code that follows Revit API best practices
2. Use appropriate error handling and transactions
3. Include necessary imports from Autodesk.Revit modules
4. Consider the user's context (active view, selection, etc.) when relevant
5. Explain complex operations clearly

When generating code:
- Always wrap document modifications in a Transaction
- Use proper element filtering and selection methods
- Handle units correctly (Revit internal units vs display units)
- Follow pyRevit conventions when applicable

Response format:
- Return the code in a single markdown code block
- Put any explanation before or after the code block, not inside it
`
}
