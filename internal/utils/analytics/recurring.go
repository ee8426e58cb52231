package analytics

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/finance_dashboard_app/internal/core/domain"
	"github.com/SscSPs/finance_dashboard_app/internal/utils/dates"
)

// minRecurringCount is the smallest group that can form a pattern.
const minRecurringCount = 3

// maxIntervalVariation is the coefficient-of-variation cutoff: spacing with
// std/mean at or above this is too irregular to be a subscription, payroll
// or rent cadence.
const maxIntervalVariation = 0.5

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// NormalizeDescription reduces a narration to a grouping key: lowercased,
// runs of non-alphanumeric characters collapsed to single spaces, trimmed.
// "NETFLIX.COM *12345" and "netflix com 67890" still differ, but reference
// numbers separated by punctuation collapse into comparable keys.
func NormalizeDescription(description string) string {
	key := strings.ToLower(description)
	key = nonAlphanumeric.ReplaceAllString(key, " ")
	return strings.TrimSpace(key)
}

// DetectRecurring finds groups of three or more transactions that share a
// normalized description and recur at regular intervals. It returns a new
// slice with Recurring set on the members of accepted groups, leaving the
// input unmodified, together with one pattern per accepted group sorted by key.
func DetectRecurring(txns []domain.Transaction) ([]domain.Transaction, []domain.RecurringPattern) {
	annotated := make([]domain.Transaction, len(txns))
	copy(annotated, txns)
	for i := range annotated {
		annotated[i].Recurring = false
	}

	type member struct {
		index int
		date  time.Time
	}
	groups := make(map[string][]member)
	for i := range annotated {
		key := NormalizeDescription(annotated[i].Description)
		if key == "" {
			continue
		}
		parsed, ok := dates.ParseDate(annotated[i].Date)
		if !ok {
			continue
		}
		groups[key] = append(groups[key], member{index: i, date: parsed})
	}

	var patterns []domain.RecurringPattern
	for key, members := range groups {
		if len(members) < minRecurringCount {
			continue
		}

		sort.Slice(members, func(a, b int) bool {
			return members[a].date.Before(members[b].date)
		})

		var gaps []float64
		for i := 1; i < len(members); i++ {
			days := members[i].date.Sub(members[i-1].date).Hours() / 24
			if days > 0 {
				gaps = append(gaps, days)
			}
		}
		if len(gaps) == 0 {
			continue
		}

		avg := mean(gaps)
		if popStdDev(gaps, avg)/avg >= maxIntervalVariation {
			continue
		}

		for _, m := range members {
			annotated[m.index].Recurring = true
		}
		patterns = append(patterns, domain.RecurringPattern{
			Key:             key,
			Count:           len(members),
			AvgIntervalDays: avg,
			LastDate:        dates.FormatDate(members[len(members)-1].date),
		})
	}

	sort.Slice(patterns, func(a, b int) bool {
		return patterns[a].Key < patterns[b].Key
	})
	return annotated, patterns
}
