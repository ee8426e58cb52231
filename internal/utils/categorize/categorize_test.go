package categorize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	table := Table{
		{"SWIGGY", "FOOD"},
		{"GROCERY", "GROCERY SHOPPING"},
		{"FOOD", "FOOD"},
		{"RENT", "HOUSING"},
	}

	tests := []struct {
		name        string
		description string
		want        string
	}{
		{"single match", "Monthly rent payment", "HOUSING"},
		{"case insensitive", "swiggy order 1234", "FOOD"},
		{"no match", "NEFT TRANSFER", "Other"},
		{"empty description", "", "Other"},
		{
			// Two distinct labels both apply, sorted and hyphen-joined.
			"multi label",
			"FOOD WORLD GROCERY STORE",
			"FOOD-GROCERY SHOPPING",
		},
		{
			// SWIGGY and FOOD both map to FOOD; set semantics collapse them.
			"duplicate label collapses",
			"SWIGGY FOOD DELIVERY",
			"FOOD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.description, table))
		})
	}
}

// Permuting rules that map to the same labels must not change the output,
// since matched labels are deduplicated and sorted before joining.
func TestCategorize_TableOrderIndependent(t *testing.T) {
	forward := Table{{"FOOD", "FOOD"}, {"GROCERY", "GROCERY SHOPPING"}}
	reversed := Table{{"GROCERY", "GROCERY SHOPPING"}, {"FOOD", "FOOD"}}

	desc := "FOOD WORLD GROCERY STORE"
	assert.Equal(t, Categorize(desc, forward), Categorize(desc, reversed))
	assert.Equal(t, "FOOD-GROCERY SHOPPING", Categorize(desc, forward))
}

func TestCategorize_DefaultTable(t *testing.T) {
	table := DefaultTable()
	assert.Equal(t, "CASH WITHDRAWAL", Categorize("ATM WDL 500012", table))
	assert.Equal(t, "SALARY", Categorize("ACME CORP SALARY MAR", table))
	assert.Equal(t, "Other", Categorize("MISC NARRATION", table))
}

func TestSplitLabels(t *testing.T) {
	assert.Equal(t, []string{"FOOD", "GROCERY SHOPPING"}, SplitLabels("FOOD-GROCERY SHOPPING"))
	assert.Equal(t, []string{"HOUSING"}, SplitLabels("HOUSING"))
	assert.Equal(t, []string{Other}, SplitLabels(""))
	assert.Equal(t, []string{Other}, SplitLabels("-"))
}
