package diagram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTableName_PhrasingPatterns(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"add a review table", "review"},
		{"please add an order table to the diagram", "order"},
		{"Add a Review Table", "review"},
		{"create a shipment table", "shipment"},
		{"include a supplier table as well", "supplier"},
		{"I need another table for payments", "payment"},
		{"we want a booking table", "booking"},
		{"add invoices", "invoice"},
	}

	for _, tt := range tests {
		got, ok := ExtractTableName(tt.input)
		assert.True(t, ok, "input: %q", tt.input)
		assert.Equal(t, tt.want, got, "input: %q", tt.input)
	}
}

func TestExtractTableName_VocabularyScan(t *testing.T) {
	got, ok := ExtractTableName("our customers leave reviews on products")
	assert.True(t, ok)
	assert.Equal(t, "customer", got)
}

func TestExtractTableName_StopWordsRejected(t *testing.T) {
	_, ok := ExtractTableName("add another table")
	assert.False(t, ok)

	_, ok = ExtractTableName("please add the entity")
	assert.False(t, ok)
}

func TestExtractTableName_NoCandidate(t *testing.T) {
	_, ok := ExtractTableName("hello, how are you today?")
	assert.False(t, ok)

	_, ok = ExtractTableName("")
	assert.False(t, ok)
}

func TestExtractTableName_Deterministic(t *testing.T) {
	first, ok1 := ExtractTableName("add a review table")
	second, ok2 := ExtractTableName("add a review table")
	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.Equal(t, first, second)
}
