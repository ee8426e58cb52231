// Package categorize assigns category labels to transaction descriptions by
// keyword matching. A description can match several labels at once; bank
// narrations often carry both a merchant and a purpose signal, and the
// dashboard wants both facets in its aggregates.
package categorize

import (
	"sort"
	"strings"
)

// Other is the label applied when no keyword matches.
const Other = "Other"

// LabelSeparator joins the labels of a multi-label category string.
const LabelSeparator = "-"

// Rule maps a single keyword to a category label. Keywords are matched as
// substrings of the uppercased description.
type Rule struct {
	Keyword string
	Label   string
}

// Table is an ordered list of categorization rules. It is passed around as
// plain data rather than held as package state so deployments can swap it
// and tests can inject small tables.
type Table []Rule

// DefaultTable returns the built-in keyword table.
func DefaultTable() Table {
	return Table{
		{"SALARY", "SALARY"},
		{"PAYROLL", "SALARY"},
		{"ATM WDL", "CASH WITHDRAWAL"},
		{"ATM-CASH", "CASH WITHDRAWAL"},
		{"CASH WDL", "CASH WITHDRAWAL"},
		{"GROCERY", "GROCERY SHOPPING"},
		{"SUPERMARKET", "GROCERY SHOPPING"},
		{"BIGBASKET", "GROCERY SHOPPING"},
		{"FOOD", "FOOD"},
		{"RESTAURANT", "FOOD"},
		{"SWIGGY", "FOOD"},
		{"ZOMATO", "FOOD"},
		{"FUEL", "TRANSPORT"},
		{"PETROL", "TRANSPORT"},
		{"UBER", "TRANSPORT"},
		{"OLA", "TRANSPORT"},
		{"RENT", "HOUSING"},
		{"ELECTRICITY", "UTILITIES"},
		{"WATER BILL", "UTILITIES"},
		{"BROADBAND", "UTILITIES"},
		{"MOBILE RECHARGE", "UTILITIES"},
		{"NETFLIX", "ENTERTAINMENT"},
		{"SPOTIFY", "ENTERTAINMENT"},
		{"MOVIE", "ENTERTAINMENT"},
		{"AMAZON", "SHOPPING"},
		{"FLIPKART", "SHOPPING"},
		{"MYNTRA", "SHOPPING"},
		{"PHARMACY", "HEALTH"},
		{"HOSPITAL", "HEALTH"},
		{"INSURANCE", "INSURANCE"},
		{"MUTUAL FUND", "INVESTMENT"},
		{"SIP", "INVESTMENT"},
		{"FD BOOKING", "INVESTMENT"},
		{"EMI", "LOAN"},
		{"LOAN", "LOAN"},
		{"INTEREST", "INTEREST"},
		{"REFUND", "REFUND"},
	}
}

// Categorize returns the category string for a description: the set of
// matched labels sorted lexicographically and joined with "-", or Other when
// nothing matches. Duplicate labels from multiple matching keywords collapse,
// so the output is independent of rule order within the table.
func Categorize(description string, table Table) string {
	upper := strings.ToUpper(description)

	seen := make(map[string]struct{})
	var labels []string
	for _, rule := range table {
		if rule.Keyword == "" {
			continue
		}
		if !strings.Contains(upper, strings.ToUpper(rule.Keyword)) {
			continue
		}
		if _, dup := seen[rule.Label]; dup {
			continue
		}
		seen[rule.Label] = struct{}{}
		labels = append(labels, rule.Label)
	}

	if len(labels) == 0 {
		return Other
	}
	sort.Strings(labels)
	return strings.Join(labels, LabelSeparator)
}

// SplitLabels breaks a stored category string into its individual labels.
// A blank or separator-only category yields [Other].
func SplitLabels(category string) []string {
	var labels []string
	for _, part := range strings.Split(category, LabelSeparator) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			labels = append(labels, trimmed)
		}
	}
	if len(labels) == 0 {
		return []string{Other}
	}
	return labels
}
