package diagram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizeTable_ReviewWithConnections(t *testing.T) {
	fragment := SynthesizeTable("review", entities("USER", "PRODUCT"))

	parsed := Parse(fragment)
	require.Len(t, parsed, 1)
	assert.Equal(t, "REVIEW", parsed[0].Name)

	assert.Contains(t, parsed[0].Fields, "int review_id PK")
	assert.Contains(t, parsed[0].Fields, "int rating")
	assert.Contains(t, parsed[0].Fields, "text comment")
	assert.Contains(t, parsed[0].Fields, "timestamp created_at")
	assert.Contains(t, parsed[0].Fields, "int user_id FK")
	assert.Contains(t, parsed[0].Fields, "int product_id FK")

	assert.Contains(t, fragment, "USER ||--o{ REVIEW : writes")
	assert.Contains(t, fragment, "PRODUCT ||--o{ REVIEW : receives")
}

func TestSynthesizeTable_UnknownNameGetsGenericFields(t *testing.T) {
	fragment := SynthesizeTable("widget", nil)

	parsed := Parse(fragment)
	require.Len(t, parsed, 1)
	assert.Equal(t, "WIDGET", parsed[0].Name)
	assert.Equal(t, []string{
		"int widget_id PK",
		"string name",
		"text description",
		"timestamp created_at",
	}, parsed[0].Fields)

	assert.NotContains(t, fragment, "--")
}

func TestSynthesizeTable_RelationshipLabels(t *testing.T) {
	fragment := SynthesizeTable("transaction", entities("ACCOUNT"))
	assert.Contains(t, fragment, "ACCOUNT ||--o{ TRANSACTION : records")

	// comment -> POST is a rule match with no verb entry, so the generic
	// label applies
	fragment = SynthesizeTable("comment", entities("POST"))
	assert.Contains(t, fragment, "POST ||--o{ COMMENT : has")
}

// Closure: balanced delimiters and every relationship endpoint is the new
// entity or one of the given existing entities, for arbitrary inputs.
func TestSynthesizeTable_Closure(t *testing.T) {
	cases := []struct {
		name     string
		existing []string
	}{
		{"review", []string{"USER", "PRODUCT"}},
		{"payment", []string{"ORDER", "CUSTOMER", "USER"}},
		{"gizmo", []string{"USER"}},
		{"appointment", nil},
		{"loan", []string{"MEMBER", "BOOK", "AUTHOR"}},
	}

	for _, tc := range cases {
		fragment := SynthesizeTable(tc.name, entities(tc.existing...))

		opens := strings.Count(fragment, "{")
		closes := strings.Count(fragment, "}")
		assert.Equal(t, opens, closes, "unbalanced delimiters for %q", tc.name)

		valid := map[string]bool{strings.ToUpper(tc.name): true}
		for _, e := range tc.existing {
			valid[e] = true
		}
		for _, line := range strings.Split(fragment, "\n") {
			line = strings.TrimSpace(line)
			if !strings.Contains(line, "--") {
				continue
			}
			parts := strings.Fields(line)
			require.GreaterOrEqual(t, len(parts), 3, "malformed relationship line %q", line)
			assert.True(t, valid[parts[0]], "unknown endpoint %q in %q", parts[0], line)
			assert.True(t, valid[parts[2]], "unknown endpoint %q in %q", parts[2], line)
		}
	}
}

func TestSynthesizeTable_AppendsToValidDiagram(t *testing.T) {
	current := `erDiagram
    USER {
        int user_id PK
        string name
    }`

	fragment := SynthesizeTable("post", Parse(current))
	combined := strings.TrimSpace(current) + "\n" + fragment

	assert.Equal(t, []string{"USER", "POST"}, EntityNames(combined))
}

func TestSynthesizeTable_NormalizesName(t *testing.T) {
	fragment := SynthesizeTable("  Order Item ", nil)
	parsed := Parse(fragment)
	require.Len(t, parsed, 1)
	assert.Equal(t, "ORDER_ITEM", parsed[0].Name)
	assert.Contains(t, parsed[0].Fields, "int order_item_id PK")
}
