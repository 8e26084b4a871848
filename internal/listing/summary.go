package listing

import (
	"math"
	"sort"
	"time"
)

// Summary holds aggregate statistics over a record collection.
type Summary struct {
	LatestUpdate time.Time
	// CountsByStatus only has keys for statuses present in the collection.
	CountsByStatus map[string]int
	// RateByCategory is the percentage of each category's records that carry
	// the rate status, rounded to one decimal.
	RateByCategory map[string]float64
	Total          int
}

// Count returns the number of records with status, zero when none.
func (s Summary) Count(status string) int {
	return s.CountsByStatus[status]
}

// Rate returns the rate for category. Categories without records rate 0.
func (s Summary) Rate(category string) float64 {
	return s.RateByCategory[category]
}

// Summarize counts records per status and computes, per category, the share
// of records whose status equals rateStatus. The result does not depend on
// the order of records.
func Summarize[R Record](records []R, rateStatus string) Summary {
	summary := Summary{
		CountsByStatus: make(map[string]int),
		RateByCategory: make(map[string]float64),
		Total:          len(records),
	}

	totals := make(map[string]int)
	hits := make(map[string]int)

	for _, r := range records {
		status := r.StatusValue()
		summary.CountsByStatus[status]++

		category := r.CategoryValue()
		totals[category]++
		if status == rateStatus {
			hits[category]++
		}

		if ts := r.Timestamp(); ts.After(summary.LatestUpdate) {
			summary.LatestUpdate = ts
		}
	}

	for category, total := range totals {
		summary.RateByCategory[category] = percentage(hits[category], total)
	}

	return summary
}

// percentage returns part/total*100 rounded to one decimal, or 0 when total is 0.
func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*1000) / 10
}

// DistinctCategories returns the sorted set of categories present in records.
// Empty categories are skipped.
func DistinctCategories[R Record](records []R) []string {
	return distinct(records, func(r R) string { return r.CategoryValue() })
}

// DistinctStatuses returns the sorted set of statuses present in records.
func DistinctStatuses[R Record](records []R) []string {
	return distinct(records, func(r R) string { return r.StatusValue() })
}

func distinct[R Record](records []R, key func(R) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range records {
		k := key(r)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
