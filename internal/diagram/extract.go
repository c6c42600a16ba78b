package diagram

import (
	"regexp"
	"strings"
)

// Ordered phrasing patterns, first match wins. Each captures the candidate
// table name; a capture that lands on a stop word moves on to the next rule.
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\badd\s+(?:a\s+|an\s+|the\s+)?([a-z_]+)\s+table\b`),
	regexp.MustCompile(`\b(?:include|create|make)\s+(?:a\s+|an\s+|the\s+)?([a-z_]+)\s+table\b`),
	regexp.MustCompile(`\btable\s+(?:for|called|named)\s+([a-z_]+)`),
	regexp.MustCompile(`\b(?:need|want)\s+(?:a\s+|an\s+|another\s+)?([a-z_]+)\s+table\b`),
	regexp.MustCompile(`\badd\s+(?:a\s+|an\s+|the\s+)?([a-z_]+)\b`),
}

// Generic words that pattern captures may land on but that never name a
// table.
var stopWords = map[string]bool{
	"a": true, "an": true, "the": true, "another": true, "new": true,
	"more": true, "some": true, "my": true, "our": true, "this": true,
	"that": true, "it": true, "one": true, "to": true, "for": true,
	"with": true, "and": true, "please": true, "table": true,
	"tables": true, "entity": true, "entities": true, "field": true,
	"fields": true, "column": true, "columns": true, "data": true,
	"database": true, "diagram": true, "record": true, "records": true,
}

// Common business-entity nouns used as a last resort when no phrasing
// pattern matches. Singular forms only; plurals are normalized by
// stripping a trailing "s" (irregular plurals are out of scope).
var vocabulary = map[string]bool{
	"user": true, "customer": true, "product": true, "order": true,
	"payment": true, "review": true, "comment": true, "post": true,
	"category": true, "invoice": true, "shipment": true, "address": true,
	"cart": true, "employee": true, "department": true, "student": true,
	"course": true, "teacher": true, "enrollment": true, "doctor": true,
	"patient": true, "appointment": true, "prescription": true,
	"book": true, "author": true, "member": true, "loan": true,
	"supplier": true, "warehouse": true, "ticket": true, "event": true,
	"venue": true, "account": true, "transaction": true,
	"subscription": true, "plan": true, "project": true, "task": true,
}

// ExtractTableName parses free-form user text to a single candidate table
// name. Phrasing patterns are tried in order first; failing those, tokens
// are scanned against the noun vocabulary. Deterministic and side-effect
// free.
func ExtractTableName(text string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(text))

	for _, re := range namePatterns {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		word := singularize(m[1])
		if stopWords[word] {
			continue
		}
		return word, true
	}

	for _, tok := range strings.Fields(lower) {
		tok = strings.Trim(tok, ".,!?;:'\"()")
		if vocabulary[tok] {
			return tok, true
		}
		if singular := strings.TrimSuffix(tok, "s"); singular != tok && vocabulary[singular] {
			return singular, true
		}
	}

	return "", false
}

func singularize(word string) string {
	if singular := strings.TrimSuffix(word, "s"); singular != word && vocabulary[singular] {
		return singular
	}
	return word
}
