package diagram

import "strings"

// Format identifies one of the supported Mermaid diagram notations. Only
// FormatERD is parsed and synthesized; the others pass through the LLM and
// template paths as opaque text.
type Format string

const (
	FormatERD       Format = "erd"
	FormatFlowchart Format = "flowchart"
	FormatClass     Format = "class"
	FormatSequence  Format = "sequence"
)

var rootKeywords = map[Format]string{
	FormatERD:       "erDiagram",
	FormatFlowchart: "flowchart",
	FormatClass:     "classDiagram",
	FormatSequence:  "sequenceDiagram",
}

// ParseFormat maps a request format string to a Format. The empty string
// defaults to the ER notation.
func ParseFormat(s string) (Format, bool) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return FormatERD, true
	}
	if _, ok := rootKeywords[f]; ok {
		return f, true
	}
	return "", false
}

// RootKeyword returns the canonical first keyword of a diagram in this
// notation ("erDiagram" etc.).
func (f Format) RootKeyword() string {
	return rootKeywords[f]
}

// Structured reports whether the core understands this notation beyond
// treating it as opaque text.
func (f Format) Structured() bool {
	return f == FormatERD
}
