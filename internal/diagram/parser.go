package diagram

import (
	"regexp"
	"strings"

	"github.com/CodedGrimoire/ChartGenie/internal/models"
)

// Entity headers are recognized by a narrow pattern (upper-case/underscore
// identifier immediately followed by "{") so that prose lines containing
// braces in raw model output are not mistaken for blocks.
var entityHeaderRe = regexp.MustCompile(`^([A-Z][A-Z0-9_]*)\s*\{$`)

// Parse scans diagram text into its entity blocks. It tolerates arbitrary
// surrounding prose: lines outside a block are skipped, an unclosed block
// yields a partial entity, and malformed input never produces an error.
// Worst case the result is empty.
func Parse(text string) []models.Entity {
	var entities []models.Entity
	open := -1

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if m := entityHeaderRe.FindStringSubmatch(trimmed); m != nil {
			entities = append(entities, models.Entity{Name: m[1]})
			open = len(entities) - 1
			continue
		}
		if trimmed == "}" {
			open = -1
			continue
		}
		if open < 0 || isRelationshipLine(trimmed) {
			continue
		}
		entities[open].Fields = append(entities[open].Fields, trimmed)
	}

	return entities
}

// EntityNames returns the header names of text in source order.
func EntityNames(text string) []string {
	entities := Parse(text)
	names := make([]string, 0, len(entities))
	for _, e := range entities {
		names = append(names, e.Name)
	}
	return names
}

// Field lines never contain "--"; every Mermaid cardinality token does.
func isRelationshipLine(line string) bool {
	return strings.Contains(line, "--")
}
