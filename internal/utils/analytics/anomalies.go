package analytics

import (
	"sort"

	"github.com/SscSPs/finance_dashboard_app/internal/core/domain"
)

// AnomalyConfig tunes anomaly detection. Thresholds are parameters rather
// than constants so deployments can adjust sensitivity.
type AnomalyConfig struct {
	ModerateZ  float64
	SevereZ    float64
	MinSamples int
}

// DefaultAnomalyConfig returns the standard thresholds: z >= 2 is moderate,
// z >= 3 is severe, and a category needs at least 5 expense observations
// before its statistics are trusted.
func DefaultAnomalyConfig() AnomalyConfig {
	return AnomalyConfig{ModerateZ: 2.0, SevereZ: 3.0, MinSamples: 5}
}

// DetectAnomalies flags expense transactions whose absolute amount is a
// z-score outlier within their category. Categories with too few expense
// observations or zero variance (every value identical) produce no flags;
// statistical insufficiency is not an error. Results are ordered by
// descending z-score.
func DetectAnomalies(txns []domain.Transaction, cfg AnomalyConfig) []domain.AnomalyResult {
	if cfg.MinSamples <= 0 {
		cfg.MinSamples = DefaultAnomalyConfig().MinSamples
	}

	byCategory := make(map[string][]int)
	for i := range txns {
		if !txns[i].IsExpense() {
			continue
		}
		byCategory[txns[i].Category] = append(byCategory[txns[i].Category], i)
	}

	var results []domain.AnomalyResult
	for _, indices := range byCategory {
		if len(indices) < cfg.MinSamples {
			continue
		}

		values := make([]float64, len(indices))
		for j, idx := range indices {
			values[j] = txns[idx].Amount.Abs().InexactFloat64()
		}

		avg := mean(values)
		std := popStdDev(values, avg)
		if std == 0 {
			continue
		}

		for j, idx := range indices {
			z := (values[j] - avg) / std
			if z < cfg.ModerateZ {
				continue
			}
			severity := domain.SeverityModerate
			if z >= cfg.SevereZ {
				severity = domain.SeveritySevere
			}
			results = append(results, domain.AnomalyResult{
				TransactionID: txns[idx].ID,
				Date:          txns[idx].Date,
				Description:   txns[idx].Description,
				Amount:        txns[idx].Amount,
				Category:      txns[idx].Category,
				ZScore:        z,
				Severity:      severity,
			})
		}
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].ZScore > results[b].ZScore
	})
	return results
}
