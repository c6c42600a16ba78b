package diagram

import "strings"

// Responses shorter than this cannot hold a root keyword plus one entity
// block and are rejected outright.
const minDiagramLength = 20

// PreservesEntities checks that an LLM-driven edit kept every entity of
// the original diagram and actually added at least one new one. Echoing
// the input unchanged counts as a failed addition. Invoked only against
// LLM output; synthesized fragments append by construction.
func PreservesEntities(newDiagram, originalDiagram string) bool {
	original := EntityNames(originalDiagram)
	updated := make(map[string]bool)
	for _, name := range EntityNames(newDiagram) {
		updated[strings.ToUpper(name)] = true
	}

	originalSet := make(map[string]bool)
	for _, name := range original {
		upper := strings.ToUpper(name)
		originalSet[upper] = true
		if !updated[upper] {
			return false
		}
	}

	return len(updated) > len(originalSet)
}

// LooksLikeDiagram is the structural floor a cleaned response must clear
// before it is returned to a caller: minimum size, the notation's root
// keyword somewhere in the text, and (for the ER notation) at least one
// parseable entity block.
func LooksLikeDiagram(text string, format Format) bool {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < minDiagramLength {
		return false
	}
	if !strings.Contains(strings.ToLower(trimmed), strings.ToLower(format.RootKeyword())) {
		return false
	}
	if format.Structured() && len(Parse(trimmed)) == 0 {
		return false
	}
	return true
}
