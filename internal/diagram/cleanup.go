package diagram

import (
	"regexp"
	"strings"
)

var reasoningBlockRe = regexp.MustCompile(`(?s)<think>.*?</think>`)

// CleanResponse is the cheap cleanup pass over raw model output: drop
// reasoning blocks, drop code-fence marker lines (```mermaid, ```), trim.
// Total function; unusable input degrades to best-effort text for the
// downstream validator to reject.
func CleanResponse(raw string) string {
	text := reasoningBlockRe.ReplaceAllString(raw, "")

	var kept []string
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}

	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// ExtractDiagram is the escalation pass: locate the first line that begins
// with the notation's root keyword (case-insensitive), discard everything
// before it, and normalize the keyword to its canonical casing. When no
// such line exists the cheap-pass text is returned unchanged as a last
// resort.
func ExtractDiagram(raw string, format Format) string {
	cleaned := CleanResponse(raw)
	root := format.RootKeyword()

	lines := strings.Split(cleaned, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) < len(root) || !strings.EqualFold(trimmed[:len(root)], root) {
			continue
		}
		lines[i] = root + trimmed[len(root):]
		return strings.Join(lines[i:], "\n")
	}

	return cleaned
}
