package diagram

import (
	"strings"

	"github.com/CodedGrimoire/ChartGenie/internal/models"
)

// connectionRules maps a lower-cased table name to the entities it usually
// references. Best-effort domain knowledge for the fallback path, not
// ground truth.
var connectionRules = map[string][]string{
	"review":       {"USER", "PRODUCT"},
	"order":        {"USER", "CUSTOMER", "PRODUCT"},
	"payment":      {"ORDER", "USER", "CUSTOMER"},
	"comment":      {"USER", "POST"},
	"post":         {"USER"},
	"cart":         {"USER", "PRODUCT"},
	"address":      {"USER", "CUSTOMER"},
	"invoice":      {"ORDER", "CUSTOMER"},
	"shipment":     {"ORDER", "WAREHOUSE"},
	"appointment":  {"PATIENT", "DOCTOR"},
	"prescription": {"PATIENT", "DOCTOR"},
	"enrollment":   {"STUDENT", "COURSE"},
	"loan":         {"MEMBER", "BOOK"},
	"employee":     {"DEPARTMENT"},
	"task":         {"PROJECT", "USER"},
	"ticket":       {"EVENT", "USER"},
	"subscription": {"USER", "PLAN"},
	"transaction":  {"ACCOUNT"},
}

// InferConnections proposes which existing entities a new table should
// reference. An existing entity matches either forward (it is listed as a
// partner of the new name) or reverse (its own name keys a rule whose
// partner list contains the new name). Existing entities are processed in
// their given order so output is stable; duplicates are removed.
func InferConnections(newName string, existing []models.Entity) []string {
	lower := strings.ToLower(strings.TrimSpace(newName))
	upper := strings.ToUpper(lower)
	partners := connectionRules[lower]

	var connections []string
	seen := make(map[string]bool)

	for _, e := range existing {
		if seen[e.Name] {
			continue
		}
		if matchesForward(e.Name, partners) || matchesReverse(e.Name, upper) {
			seen[e.Name] = true
			connections = append(connections, e.Name)
		}
	}

	return connections
}

func matchesForward(entityName string, partners []string) bool {
	for _, p := range partners {
		if strings.EqualFold(entityName, p) {
			return true
		}
	}
	return false
}

func matchesReverse(entityName, newUpper string) bool {
	lower := strings.ToLower(entityName)
	for key, partners := range connectionRules {
		if !strings.Contains(lower, key) {
			continue
		}
		for _, p := range partners {
			if p == newUpper {
				return true
			}
		}
	}
	return false
}
