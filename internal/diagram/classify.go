package diagram

import (
	"regexp"
	"strings"
)

// Strong keywords are unambiguous edit verbs: one hit classifies the
// request as a modification. Weak keywords show up in ordinary sentences
// too, so they additionally require a structural noun.
var strongEditWords = map[string]bool{
	"add": true, "include": true, "insert": true, "remove": true,
	"delete": true, "drop": true, "modify": true, "change": true,
	"update": true, "rename": true, "extend": true, "connect": true,
	"disconnect": true, "link": true, "attach": true,
}

var weakEditWords = map[string]bool{
	"need": true, "want": true, "also": true, "another": true,
	"more": true, "additional": true, "missing": true,
}

var structuralNouns = map[string]bool{
	"table": true, "tables": true, "entity": true, "entities": true,
	"field": true, "fields": true, "column": true, "columns": true,
	"relationship": true, "relationships": true, "model": true,
	"models": true,
}

var wordRe = regexp.MustCompile(`[a-z]+`)

// IsModification decides whether user text asks to edit the current
// diagram rather than create a fresh one. Always false when there is no
// diagram to modify.
func IsModification(text string, hasDiagram bool) bool {
	if !hasDiagram {
		return false
	}

	weak := false
	structural := false
	for _, word := range wordRe.FindAllString(strings.ToLower(text), -1) {
		if strongEditWords[word] {
			return true
		}
		if weakEditWords[word] {
			weak = true
		}
		if structuralNouns[word] {
			structural = true
		}
	}

	return weak && structural
}
