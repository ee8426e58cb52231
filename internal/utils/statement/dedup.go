package statement

import (
	"github.com/SscSPs/finance_dashboard_app/internal/core/domain"
)

// KeySet builds the set of dedup keys for a ledger snapshot.
func KeySet(txns []domain.Transaction) map[string]struct{} {
	keys := make(map[string]struct{}, len(txns))
	for i := range txns {
		keys[txns[i].DedupKey()] = struct{}{}
	}
	return keys
}

// FilterDuplicates partitions staged candidates against the keys of already
// persisted transactions, preserving input order for the accepted ones. A
// key seen twice within the same upload also counts as a duplicate.
//
// The existing set is a client-side snapshot: a concurrent insert from
// another session after the snapshot was taken will not be caught. That race
// is accepted; duplicates surface as a count for the user, never an error.
func FilterDuplicates(staged []domain.Transaction, existing map[string]struct{}) ([]domain.Transaction, int) {
	seen := make(map[string]struct{}, len(existing)+len(staged))
	for key := range existing {
		seen[key] = struct{}{}
	}

	fresh := make([]domain.Transaction, 0, len(staged))
	duplicates := 0
	for i := range staged {
		key := staged[i].DedupKey()
		if _, dup := seen[key]; dup {
			duplicates++
			continue
		}
		seen[key] = struct{}{}
		fresh = append(fresh, staged[i])
	}
	return fresh, duplicates
}
