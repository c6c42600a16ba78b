package services

import (
	"fmt"
	"strings"

	"github.com/CodedGrimoire/ChartGenie/internal/diagram"
	"github.com/CodedGrimoire/ChartGenie/internal/models"
)

// The system instruction asks for preservation and code-only output, but
// it is only a prompting convention; the preservation validator is the
// actual guarantee.
const systemPrompt = `You are a database design assistant that produces Mermaid diagrams.
Respond with diagram code only - no prose, no explanations, no code fences.
When modifying an existing diagram, keep every existing entity exactly as it is and only add to it.`

func freshPrompt(message string, format diagram.Format, history []models.Exchange) string {
	var sb strings.Builder

	if len(history) > 0 {
		sb.WriteString("Conversation so far:\n")
		for _, ex := range history {
			sb.WriteString(fmt.Sprintf("- %s (%s)\n", ex.Message, ex.Summary))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Create a Mermaid %s diagram for the following description:\n%s",
		format.RootKeyword(), message))
	return sb.String()
}

func editPrompt(message, currentDiagram string, format diagram.Format) string {
	return fmt.Sprintf(`Here is the current Mermaid %s diagram:

%s

Apply this change: %s

Return the complete updated diagram. Every existing entity must still be present.`,
		format.RootKeyword(), currentDiagram, message)
}
