package diagram

import (
	"fmt"
	"strings"

	"github.com/CodedGrimoire/ChartGenie/internal/models"
)

// New-entity relationships are always emitted as one (existing) to many
// (new). A one-to-one pair would be misclassified; accepted limitation of
// the heuristic path.
const oneToMany = "||--o{"

const defaultRelationshipLabel = "has"

// tableFields maps a lower-cased table name to its domain-specific field
// lines. Unknown names get genericFields.
var tableFields = map[string][]string{
	"user":         {"string email", "string password_hash"},
	"customer":     {"string email", "string phone"},
	"product":      {"decimal price", "int stock", "text description"},
	"order":        {"timestamp order_date", "string status", "decimal total_amount"},
	"payment":      {"decimal amount", "string method", "string status"},
	"review":       {"int rating", "text comment", "timestamp created_at"},
	"comment":      {"text content", "timestamp created_at"},
	"post":         {"string title", "text body", "timestamp published_at"},
	"invoice":      {"decimal amount", "date due_date", "string status"},
	"shipment":     {"string tracking_number", "date shipped_at", "string status"},
	"appointment":  {"date appointment_date", "string status"},
	"doctor":       {"string specialty", "string phone"},
	"patient":      {"date date_of_birth", "string phone"},
	"student":      {"string email", "date enrolled_at"},
	"course":       {"string title", "int credits"},
	"employee":     {"string email", "date hired_at", "decimal salary"},
	"department":   {"string location"},
	"book":         {"string isbn", "int published_year"},
	"author":       {"string bio"},
	"account":      {"string number", "decimal balance"},
	"transaction":  {"decimal amount", "string type", "timestamp occurred_at"},
	"subscription": {"date started_at", "date expires_at", "string status"},
}

var genericFields = []string{"text description", "timestamp created_at"}

// relationshipLabels is keyed by (existing entity lower-case, new table
// lower-case) and yields the verb phrase for the relationship line.
var relationshipLabels = map[string]map[string]string{
	"user": {
		"review": "writes", "comment": "writes", "order": "places",
		"post": "creates", "payment": "makes", "cart": "owns",
		"address": "has", "task": "assigned", "ticket": "buys",
		"subscription": "holds",
	},
	"product":   {"review": "receives", "order": "included_in", "cart": "added_to"},
	"customer":  {"order": "places", "invoice": "receives", "payment": "makes", "address": "has"},
	"order":     {"payment": "settled_by", "invoice": "billed_with", "shipment": "fulfilled_by"},
	"patient":   {"appointment": "books", "prescription": "receives"},
	"doctor":    {"appointment": "conducts", "prescription": "writes"},
	"student":   {"enrollment": "registers"},
	"course":    {"enrollment": "offers"},
	"member":    {"loan": "takes"},
	"book":      {"loan": "lent_via"},
	"department": {"employee": "employs"},
	"project":   {"task": "contains"},
	"account":   {"transaction": "records"},
	"plan":      {"subscription": "grants"},
	"event":     {"ticket": "sells"},
	"warehouse": {"shipment": "dispatches"},
}

// SynthesizeTable builds a complete new-entity fragment: primary key,
// domain field set, one foreign key per inferred connection, then a
// relationship line per connection. Appended to any valid diagram with a
// newline separator, the result stays parseable: every opened block is
// closed and every relationship endpoint is either the new entity or one
// of the given existing entities.
func SynthesizeTable(tableName string, existing []models.Entity) string {
	lower := identifier(tableName)
	upper := strings.ToUpper(lower)
	connections := InferConnections(lower, existing)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("    %s {\n", upper))
	sb.WriteString(fmt.Sprintf("        int %s_id PK\n", lower))
	sb.WriteString("        string name\n")

	fields, ok := tableFields[lower]
	if !ok {
		fields = genericFields
	}
	for _, f := range fields {
		sb.WriteString("        " + f + "\n")
	}

	for _, conn := range connections {
		sb.WriteString(fmt.Sprintf("        int %s_id FK\n", strings.ToLower(conn)))
	}
	sb.WriteString("    }\n")

	for _, conn := range connections {
		rel := models.Relationship{
			FromEntity:  strings.ToUpper(conn),
			ToEntity:    upper,
			Cardinality: oneToMany,
			Label:       relationshipLabel(conn, lower),
		}
		sb.WriteString(fmt.Sprintf("    %s %s %s : %s\n",
			rel.FromEntity, rel.Cardinality, rel.ToEntity, rel.Label))
	}

	return sb.String()
}

func relationshipLabel(connection, newLower string) string {
	if byNew, ok := relationshipLabels[strings.ToLower(connection)]; ok {
		if label, ok := byNew[newLower]; ok {
			return label
		}
	}
	return defaultRelationshipLabel
}

func identifier(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(name, " ", "_")
}
