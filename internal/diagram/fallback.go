package diagram

import "strings"

// Fallback deterministically produces a diagram when the LLM path is
// unusable. On an edit request it extends the current diagram with a
// synthesized table; when no table name can be extracted it returns the
// current diagram unchanged rather than failing, since the intended change
// is unknowable. On a fresh request it selects a canned template. Never
// returns an empty string.
func Fallback(userText, currentDiagram string) string {
	if currentDiagram != "" && IsModification(userText, true) {
		name, ok := ExtractTableName(userText)
		if !ok {
			return currentDiagram
		}

		existing := Parse(currentDiagram)
		upper := strings.ToUpper(identifier(name))
		for _, e := range existing {
			// Entity names are unique per diagram; a duplicate header
			// would corrupt it, so the edit becomes a no-op.
			if strings.EqualFold(e.Name, upper) {
				return currentDiagram
			}
		}

		fragment := SynthesizeTable(name, existing)
		return strings.TrimSpace(currentDiagram) + "\n" + fragment
	}

	return SelectTemplate(userText)
}
