package retriever

import "sort"

const maxSnippetLen = 1500

// sorts results by descending similarity, drops duplicate IDs, and
// truncates to topK
func rankAndLimit(results []SearchResult, topK int) []SearchResult {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})

	seen := make(map[string]bool, len(results))
	ranked := make([]SearchResult, 0, len(results))

	for _, result := range results {
		if result.ID != "" && seen[result.ID] {
			continue
		}

		seen[result.ID] = true
		ranked = append(ranked, result)

		if len(ranked) == topK {
			break
		}
	}

	return ranked
}

// Source returns a short attribution label for a snippet, used when
// snippets are embedded in a generation prompt.
func (r SearchResult) Source() string {
	switch {
	case r.PageName != "" && r.SectionTitle != "":
		return r.PageName + " / " + r.SectionTitle
	case r.PageName != "":
		return r.PageName
	case r.PageURL != "":
		return r.PageURL
	default:
		return "documentation"
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}

	return s[:maxLen] + "..."
}

// Snippet returns the snippet content bounded to a prompt-friendly length.
func (r SearchResult) Snippet() string {
	return truncate(r.Content, maxSnippetLen)
}
