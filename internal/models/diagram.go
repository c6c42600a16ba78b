package models

// Entity is one table/node of an ER diagram. Fields hold the raw
// declaration lines ("int user_id PK") in source order.
type Entity struct {
	Name   string   `json:"name"`
	Fields []string `json:"fields"`
}

// Relationship is an association between two entity names. Instances are
// only ever written into diagram text; the parser treats relationship
// lines as opaque.
type Relationship struct {
	FromEntity  string `json:"from_entity"`
	ToEntity    string `json:"to_entity"`
	Cardinality string `json:"cardinality"` // "||--o{", "||--||", etc.
	Label       string `json:"label"`
}
